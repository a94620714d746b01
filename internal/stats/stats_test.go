package stats

import (
	"testing"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func reviews(ratings ...int) []domain.Review {
	out := make([]domain.Review, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, domain.Review{Rating: r})
	}
	return out
}

func TestComputeReviewMetrics_Empty(t *testing.T) {
	m := ComputeReviewMetrics(nil)

	assert.Equal(t, 0, m.TotalReviews)
	assert.Equal(t, 0.0, m.AverageRating)
	assert.Equal(t, 0, m.PositiveCount)
	assert.Equal(t, 0, m.NeutralCount)
	assert.Equal(t, 0, m.NegativeCount)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, m.Distribution)
}

func TestComputeReviewMetrics_Mixed(t *testing.T) {
	m := ComputeReviewMetrics(reviews(5, 3, 1))

	assert.Equal(t, 3, m.TotalReviews)
	assert.Equal(t, 3.0, m.AverageRating)
	assert.Equal(t, 1, m.PositiveCount)
	assert.Equal(t, 1, m.NeutralCount)
	assert.Equal(t, 1, m.NegativeCount)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 1, 4: 0, 5: 1}, m.Distribution)
}

func TestComputeReviewMetrics_Rounding(t *testing.T) {
	m := ComputeReviewMetrics(reviews(5, 4, 4))

	assert.Equal(t, 4.3, m.AverageRating)
	assert.Equal(t, 3, m.PositiveCount)
}

func TestCountReservationStatuses(t *testing.T) {
	c := CountReservationStatuses([]domain.Reservation{
		{Status: domain.ReservationPending},
		{Status: domain.ReservationPending},
		{Status: domain.ReservationConfirmed},
		{Status: domain.ReservationCancelled},
	})

	assert.Equal(t, ReservationStatusCounts{Total: 4, Pending: 2, Confirmed: 1, Cancelled: 1}, c)
}
