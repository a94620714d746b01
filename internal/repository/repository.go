package repository

import (
	"context"
	"time"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users        Users
	Reservations Reservations
	Reviews      Reviews
	Hotels       Hotels
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:        newUserRepository(db),
		Reservations: newReservationRepository(db),
		Reviews:      newReviewRepository(db),
		Hotels:       newHotelRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	SetVerifyOtp(ctx context.Context, id uuid.UUID, code string, expireAt *time.Time) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	SetResetOtp(ctx context.Context, id uuid.UUID, code string, expireAt *time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateProfile(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Reservations interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]domain.Reservation, error)
	FindByNameAndPhone(ctx context.Context, name string, phone string) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Reviews interface {
	Create(ctx context.Context, review *domain.Review) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetAll(ctx context.Context, hotelID *uuid.UUID) ([]domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Hotels interface {
	GetAll(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
}
