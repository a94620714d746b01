// Package stats computes dashboard aggregates over already fetched records.
package stats

import (
	"math"

	"github.com/hotel-booking/backend/internal/domain"
)

type ReviewMetrics struct {
	TotalReviews  int         `json:"total_reviews"`
	AverageRating float64     `json:"average_rating"`
	PositiveCount int         `json:"positive_count"`
	NeutralCount  int         `json:"neutral_count"`
	NegativeCount int         `json:"negative_count"`
	Distribution  map[int]int `json:"distribution"`
}

// ComputeReviewMetrics: positive is rating >= 4, neutral == 3, negative <= 2.
// The average is rounded to one decimal and is 0 for no reviews.
func ComputeReviewMetrics(reviews []domain.Review) ReviewMetrics {
	m := ReviewMetrics{
		TotalReviews: len(reviews),
		Distribution: make(map[int]int, domain.MaxRating),
	}
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		m.Distribution[r] = 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		m.Distribution[review.Rating]++

		switch {
		case review.Rating >= 4:
			m.PositiveCount++
		case review.Rating == 3:
			m.NeutralCount++
		default:
			m.NegativeCount++
		}
	}

	if m.TotalReviews > 0 {
		m.AverageRating = math.Round(float64(sum)/float64(m.TotalReviews)*10) / 10
	}

	return m
}

type ReservationStatusCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

func CountReservationStatuses(reservations []domain.Reservation) ReservationStatusCounts {
	c := ReservationStatusCounts{Total: len(reservations)}

	for _, r := range reservations {
		switch r.Status {
		case domain.ReservationPending:
			c.Pending++
		case domain.ReservationConfirmed:
			c.Confirmed++
		case domain.ReservationCancelled:
			c.Cancelled++
		}
	}

	return c
}
