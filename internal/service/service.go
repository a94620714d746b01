package service

import (
	"context"
	"time"

	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/repository"
	"github.com/hotel-booking/backend/internal/stats"
	"github.com/hotel-booking/backend/pkg/auth"
	"github.com/hotel-booking/backend/pkg/hash"
	"github.com/hotel-booking/backend/pkg/otp"

	"github.com/google/uuid"
)

type Services struct {
	Auth         Auth
	Users        Users
	Reservations Reservations
	Reviews      Reviews
	Hotels       Hotels
}

type Deps struct {
	Config          *config.Config
	Hasher          hash.PasswordHasher
	TokenManager    auth.TokenManager
	OtpGenerator    otp.Generator
	OtpGuard        AttemptGuard
	Notifier        Notifier
	VoucherRenderer VoucherRenderer
	Repos           *repository.Repositories
}

func NewServices(deps Deps) *Services {
	reservations := newReservationService(deps.Repos.Reservations, deps.VoucherRenderer)

	return &Services{
		Auth: newAuthService(deps.Repos.Users,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.OtpGuard,
			deps.Notifier,
			deps.Config.Auth,
		),
		Users:        newUserService(deps.Repos.Users),
		Reservations: reservations,
		Reviews:      newReviewService(deps.Repos.Reviews, deps.Repos.Hotels, reservations),
		Hotels:       newHotelService(deps.Repos.Hotels),
	}
}

// Notifier delivers account emails. Delivery is best effort: callers log failures and go on.
type Notifier interface {
	SendWelcome(ctx context.Context, email string, name string) error
	SendVerificationCode(ctx context.Context, email string, code string) error
	SendPasswordResetCode(ctx context.Context, email string, code string) error
}

// AttemptGuard counts failed attempts per key and locks the key once a limit is reached.
type AttemptGuard interface {
	Locked(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type VoucherRenderer interface {
	RenderReservation(reservation *domain.Reservation) ([]byte, error)
}

type Session struct {
	Token string
	TTL   time.Duration
	User  *domain.User
}

type Auth interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, email string, password string) (*Session, error)
	SendVerifyOtp(ctx context.Context, userID uuid.UUID) error
	VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error
	SendResetOtp(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email string, code string, newPassword string) error
	IsAuthenticated(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type Users interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.UserProfile) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Reservations interface {
	Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]domain.Reservation, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ReservationPatch) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ValidateBooking(ctx context.Context, bookingNumber string, pin string) (*domain.BookingCheck, error)
	StatusCounts(ctx context.Context) (stats.ReservationStatusCounts, error)
	Voucher(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type Reviews interface {
	Create(ctx context.Context, input ReviewInput) (*domain.Review, error)
	Submit(ctx context.Context, booking BookingCredentials, input ReviewInput) (*domain.Review, error)
	GetAll(ctx context.Context, hotelID *uuid.UUID) ([]domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ReviewPatch) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Metrics(ctx context.Context, hotelID *uuid.UUID) (stats.ReviewMetrics, error)
}

type Hotels interface {
	GetAll(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
}
