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

	"github.com/google/uuid"
)

type ReviewInput struct {
	HotelID uuid.UUID
	Name    string
	Rating  int
	Comment string
}

// BookingCredentials identify a stay: the booking number is the guest name, the pin is the phone.
type BookingCredentials struct {
	BookingNumber string
	Pin           string
}

type reviewService struct {
	reviewRepository repository.Reviews
	hotelRepository  repository.Hotels
	reservations     Reservations
	now              func() time.Time
}

func newReviewService(reviewRepository repository.Reviews, hotelRepository repository.Hotels, reservations Reservations) *reviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		hotelRepository:  hotelRepository,
		reservations:     reservations,
		now:              time.Now,
	}
}

func (s *reviewService) Create(ctx context.Context, input ReviewInput) (*domain.Review, error) {
	name := strings.TrimSpace(input.Name)
	comment := strings.TrimSpace(input.Comment)
	if input.HotelID == uuid.Nil || name == "" || comment == "" {
		return nil, ErrMissingDetails
	}

	if err := domain.ValidateRating(input.Rating); err != nil {
		return nil, ErrInvalidRating
	}

	if _, err := s.hotelRepository.GetOneByID(ctx, input.HotelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("get hotel by id failed: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate review id failed: %w", err)
	}

	review := &domain.Review{
		ID:        id,
		HotelID:   input.HotelID,
		Name:      name,
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}

	if err := s.reviewRepository.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review failed: %w", err)
	}

	return review, nil
}

// Submit creates a review on behalf of a guest whose booking credentials match a reservation.
func (s *reviewService) Submit(ctx context.Context, booking BookingCredentials, input ReviewInput) (*domain.Review, error) {
	check, err := s.reservations.ValidateBooking(ctx, booking.BookingNumber, booking.Pin)
	if err != nil {
		return nil, err
	}
	if !check.Valid {
		return nil, ErrBookingNotFound
	}

	return s.Create(ctx, input)
}

func (s *reviewService) GetAll(ctx context.Context, hotelID *uuid.UUID) ([]domain.Review, error) {
	return s.reviewRepository.GetAll(ctx, hotelID)
}

func (s *reviewService) Update(ctx context.Context, id uuid.UUID, patch domain.ReviewPatch) (*domain.Review, error) {
	if patch.Rating != nil {
		if err := domain.ValidateRating(*patch.Rating); err != nil {
			return nil, ErrInvalidRating
		}
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, validationError("name cannot be empty")
	}

	review, err := s.reviewRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review by id failed: %w", err)
	}

	review.Apply(patch)

	if err := s.reviewRepository.Update(ctx, review); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review failed: %w", err)
	}

	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("delete review failed: %w", err)
	}
	return nil
}

func (s *reviewService) Metrics(ctx context.Context, hotelID *uuid.UUID) (stats.ReviewMetrics, error) {
	reviews, err := s.reviewRepository.GetAll(ctx, hotelID)
	if err != nil {
		return stats.ReviewMetrics{}, fmt.Errorf("get reviews failed: %w", err)
	}
	return stats.ComputeReviewMetrics(reviews), nil
}
