package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/repository"

	"github.com/google/uuid"
)

type hotelService struct {
	hotelRepository repository.Hotels
}

func newHotelService(hotelRepository repository.Hotels) *hotelService {
	return &hotelService{
		hotelRepository: hotelRepository,
	}
}

func (s *hotelService) GetAll(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.City = strings.TrimSpace(filter.City)
	if filter.MinStars < 0 || filter.MinStars > 5 {
		return nil, validationError("min_stars must be between 0 and 5")
	}

	hotels, err := s.hotelRepository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get hotels failed: %w", err)
	}
	return hotels, nil
}

func (s *hotelService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	hotel, err := s.hotelRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("get hotel by id failed: %w", err)
	}
	return hotel, nil
}
