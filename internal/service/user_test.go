package service

import (
	"context"
	"testing"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(userRepositoryMock)
	s := newUserService(repo)

	user := &domain.User{ID: uuid.New(), Name: "Ana"}
	repo.On("GetOneByID", ctx, user.ID).Return(user, nil)
	repo.On("UpdateProfile", ctx, mock.Anything).Return(nil)

	name, phone := "Ana Lopez", "+34600000000"
	updated, err := s.UpdateProfile(ctx, user.ID, domain.UserProfile{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopez", updated.Name)
	assert.Equal(t, "+34600000000", updated.Phone.String)

	empty := " "
	_, err = s.UpdateProfile(ctx, user.ID, domain.UserProfile{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(userRepositoryMock)
	s := newUserService(repo)

	existing, missing := uuid.New(), uuid.New()
	repo.On("Delete", ctx, existing).Return(nil)
	repo.On("Delete", ctx, missing).Return(domain.ErrNotFound)
	repo.On("GetOneByID", ctx, missing).Return(nil, domain.ErrNotFound)

	require.NoError(t, s.Delete(ctx, existing))
	assert.ErrorIs(t, s.Delete(ctx, missing), ErrUserNotFound)

	_, err := s.GetOneByID(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHotelService(t *testing.T) {
	ctx := context.Background()
	repo := new(hotelRepositoryMock)
	s := newHotelService(repo)

	repo.On("GetAll", ctx, domain.HotelFilter{Search: "sea", City: "Valencia", MinStars: 4}).
		Return([]domain.Hotel{{Name: "Sea View"}}, nil)

	hotels, err := s.GetAll(ctx, domain.HotelFilter{Search: " sea ", City: "Valencia ", MinStars: 4})
	require.NoError(t, err)
	assert.Len(t, hotels, 1)

	_, err = s.GetAll(ctx, domain.HotelFilter{MinStars: 9})
	assert.ErrorIs(t, err, ErrValidation)

	missing := uuid.New()
	repo.On("GetOneByID", ctx, missing).Return(nil, domain.ErrNotFound)
	_, err = s.GetOneByID(ctx, missing)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}
