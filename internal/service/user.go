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

type userService struct {
	userRepository repository.Users
}

func newUserService(userRepository repository.Users) *userService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.GetAll(ctx)
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.UserProfile) (*domain.User, error) {
	if profile.Name != nil && strings.TrimSpace(*profile.Name) == "" {
		return nil, validationError("name cannot be empty")
	}

	user, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ApplyProfile(profile)

	if err := s.userRepository.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user profile failed: %w", err)
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user failed: %w", err)
	}
	return nil
}
