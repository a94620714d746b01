package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/repository"
	"github.com/hotel-booking/backend/internal/stats"
	"github.com/hotel-booking/backend/pkg/email"

	"github.com/google/uuid"
)

const (
	bookingNotFoundMessage = "No reservation found for this booking number and PIN"
	bookingValidMessage    = "Booking validated"
)

type ReservationInput struct {
	HotelName string
	Name      string
	Email     string
	Phone     string
	CheckIn   time.Time
	CheckOut  time.Time
	RoomType  string
	RoomCount int
	RoomPrice float64
	Message   string
}

type reservationService struct {
	reservationRepository repository.Reservations
	voucherRenderer       VoucherRenderer
	now                   func() time.Time
}

func newReservationService(reservationRepository repository.Reservations, voucherRenderer VoucherRenderer) *reservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		voucherRenderer:       voucherRenderer,
		now:                   time.Now,
	}
}

func validateReservation(r *domain.Reservation) error {
	if strings.TrimSpace(r.HotelName) == "" ||
		strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Phone) == "" ||
		strings.TrimSpace(r.RoomType) == "" ||
		r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return ErrMissingDetails
	}

	if !email.IsEmailValid(r.Email) {
		return validationError("invalid email")
	}

	if r.RoomPrice <= 0 {
		return validationError("room price must be a positive number")
	}

	if r.RoomCount < 1 {
		return validationError("room count must be at least 1")
	}

	if len([]rune(r.Message)) > domain.MaxReservationMessageLength {
		return validationError(fmt.Sprintf("message must be at most %d characters", domain.MaxReservationMessageLength))
	}

	if !r.Status.IsValid() {
		return ErrInvalidStatus
	}

	if err := domain.ValidateStay(r.CheckIn, r.CheckOut); err != nil {
		return ErrInvalidStay
	}

	return nil
}

func (s *reservationService) Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate reservation id failed: %w", err)
	}

	roomCount := input.RoomCount
	if roomCount == 0 {
		roomCount = 1
	}

	now := s.now()
	reservation := &domain.Reservation{
		ID:        id,
		HotelName: strings.TrimSpace(input.HotelName),
		Name:      strings.TrimSpace(input.Name),
		Email:     normalizeEmail(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		RoomType:  strings.TrimSpace(input.RoomType),
		RoomCount: roomCount,
		RoomPrice: input.RoomPrice,
		Message:   strings.TrimSpace(input.Message),
		Status:    domain.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateReservation(reservation); err != nil {
		return nil, err
	}

	if err := s.reservationRepository.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation failed: %w", err)
	}

	return reservation, nil
}

func (s *reservationService) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservationRepository.GetAll(ctx)
}

func (s *reservationService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	reservation, err := s.reservationRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation by id failed: %w", err)
	}
	return reservation, nil
}

// Update merges patch into the stored reservation; the stay is re-validated on the merged record.
func (s *reservationService) Update(ctx context.Context, id uuid.UUID, patch domain.ReservationPatch) (*domain.Reservation, error) {
	if patch.CheckIn != nil && patch.CheckOut != nil {
		if err := domain.ValidateStay(*patch.CheckIn, *patch.CheckOut); err != nil {
			return nil, ErrInvalidStay
		}
	}

	reservation, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reservation.Apply(patch)
	reservation.UpdatedAt = s.now()

	if err := validateReservation(reservation); err != nil {
		return nil, err
	}

	if err := s.reservationRepository.Update(ctx, reservation); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("update reservation failed: %w", err)
	}

	return reservation, nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if err := s.reservationRepository.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("update reservation status failed: %w", err)
	}

	return s.GetOneByID(ctx, id)
}

func (s *reservationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reservationRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	return nil
}

// ValidateBooking matches bookingNumber against the reservation name and pin against its phone.
func (s *reservationService) ValidateBooking(ctx context.Context, bookingNumber string, pin string) (*domain.BookingCheck, error) {
	bookingNumber = strings.TrimSpace(bookingNumber)
	pin = strings.TrimSpace(pin)
	if bookingNumber == "" || pin == "" {
		return nil, validationError("booking number and pin are required")
	}

	_, err := s.reservationRepository.FindByNameAndPhone(ctx, bookingNumber, pin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.BookingCheck{Valid: false, Message: bookingNotFoundMessage}, nil
		}
		return nil, fmt.Errorf("find reservation by booking failed: %w", err)
	}

	return &domain.BookingCheck{Valid: true, Message: bookingValidMessage}, nil
}

func (s *reservationService) StatusCounts(ctx context.Context) (stats.ReservationStatusCounts, error) {
	reservations, err := s.reservationRepository.GetAll(ctx)
	if err != nil {
		return stats.ReservationStatusCounts{}, fmt.Errorf("get reservations failed: %w", err)
	}
	return stats.CountReservationStatuses(reservations), nil
}

func (s *reservationService) Voucher(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if s.voucherRenderer == nil {
		return nil, ErrVoucherNotConfigured
	}

	reservation, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.voucherRenderer.RenderReservation(reservation)
	if err != nil {
		return nil, fmt.Errorf("render voucher failed: %w", err)
	}

	return doc, nil
}
