package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	HotelID   uuid.UUID `db:"hotel_id" json:"hotel_id"`
	Name      string    `db:"name" json:"name"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

type ReviewPatch struct {
	Name    *string
	Rating  *int
	Comment *string
}

func (r *Review) Apply(p ReviewPatch) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}
