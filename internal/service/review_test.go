package service

import (
	"context"
	"testing"
	"time"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	reviews      *reviewRepositoryMock
	hotels       *hotelRepositoryMock
	reservations *reservationRepositoryMock
	service      *reviewService
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		reviews:      new(reviewRepositoryMock),
		hotels:       new(hotelRepositoryMock),
		reservations: new(reservationRepositoryMock),
	}
	f.service = newReviewService(f.reviews, f.hotels, newReservationService(f.reservations, nil))
	f.service.now = func() time.Time { return testNow }
	return f
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("creates review", func(t *testing.T) {
		f := newReviewFixture()
		f.hotels.On("GetOneByID", ctx, hotelID).Return(&domain.Hotel{ID: hotelID}, nil)
		f.reviews.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.HotelID == hotelID && r.Rating == 5 && r.Name == "Ana"
		})).Return(nil)

		review, err := f.service.Create(ctx, ReviewInput{HotelID: hotelID, Name: " Ana ", Rating: 5, Comment: "Lovely"})
		require.NoError(t, err)
		assert.Equal(t, testNow, review.CreatedAt)
		f.reviews.AssertExpectations(t)
	})

	for _, rating := range []int{0, 6, -1} {
		f := newReviewFixture()
		_, err := f.service.Create(ctx, ReviewInput{HotelID: hotelID, Name: "Ana", Rating: rating, Comment: "x"})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	t.Run("missing comment", func(t *testing.T) {
		f := newReviewFixture()
		_, err := f.service.Create(ctx, ReviewInput{HotelID: hotelID, Name: "Ana", Rating: 4})
		assert.ErrorIs(t, err, ErrMissingDetails)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newReviewFixture()
		f.hotels.On("GetOneByID", ctx, hotelID).Return(nil, domain.ErrNotFound)

		_, err := f.service.Create(ctx, ReviewInput{HotelID: hotelID, Name: "Ana", Rating: 4, Comment: "ok"})
		assert.ErrorIs(t, err, ErrHotelNotFound)
		f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReviewService_Submit(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	input := ReviewInput{HotelID: hotelID, Name: "Ana", Rating: 4, Comment: "Good stay"}

	t.Run("matching booking", func(t *testing.T) {
		f := newReviewFixture()
		f.reservations.On("FindByNameAndPhone", ctx, "Ana Lopez", "600").Return(&domain.Reservation{}, nil)
		f.hotels.On("GetOneByID", ctx, hotelID).Return(&domain.Hotel{ID: hotelID}, nil)
		f.reviews.On("Create", ctx, mock.Anything).Return(nil)

		review, err := f.service.Submit(ctx, BookingCredentials{BookingNumber: "Ana Lopez", Pin: "600"}, input)
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newReviewFixture()
		f.reservations.On("FindByNameAndPhone", ctx, "Ana Lopez", "999").Return(nil, domain.ErrNotFound)

		_, err := f.service.Submit(ctx, BookingCredentials{BookingNumber: "Ana Lopez", Pin: "999"}, input)
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.ErrorIs(t, err, ErrUnauthorized)
		f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReviewService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()
	stored := &domain.Review{ID: uuid.New(), Name: "Ana", Rating: 3, Comment: "ok"}
	missing := uuid.New()

	f.reviews.On("GetOneByID", ctx, stored.ID).Return(stored, nil)
	f.reviews.On("GetOneByID", ctx, missing).Return(nil, domain.ErrNotFound)
	f.reviews.On("Update", ctx, stored).Return(nil)
	f.reviews.On("Delete", ctx, stored.ID).Return(nil)
	f.reviews.On("Delete", ctx, missing).Return(domain.ErrNotFound)

	rating := 5
	updated, err := f.service.Update(ctx, stored.ID, domain.ReviewPatch{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	bad := 7
	_, err = f.service.Update(ctx, stored.ID, domain.ReviewPatch{Rating: &bad})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = f.service.Update(ctx, missing, domain.ReviewPatch{Rating: &rating})
	assert.ErrorIs(t, err, ErrReviewNotFound)

	require.NoError(t, f.service.Delete(ctx, stored.ID))
	assert.ErrorIs(t, f.service.Delete(ctx, missing), ErrReviewNotFound)
}

func TestReviewService_Metrics(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()
	hotelID := uuid.New()
	f.reviews.On("GetAll", ctx, &hotelID).Return([]domain.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 3}, {Rating: 1},
	}, nil)

	metrics, err := f.service.Metrics(ctx, &hotelID)
	require.NoError(t, err)
	assert.Equal(t, 4, metrics.TotalReviews)
	assert.Equal(t, 3.3, metrics.AverageRating)
	assert.Equal(t, 2, metrics.PositiveCount)
	assert.Equal(t, 1, metrics.NeutralCount)
	assert.Equal(t, 1, metrics.NegativeCount)
	assert.Equal(t, 0, metrics.Distribution[2])
}
