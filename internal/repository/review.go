package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hotel-booking/backend/internal/domain"
)

type reviewRepository struct {
	db *sqlx.DB
}

func newReviewRepository(db *sqlx.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
	INSERT INTO review (id, hotel_id, name, rating, comment, created_at)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.HotelID,
		review.Name,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db insert review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	const query = `
	SELECT bin_to_uuid(id) AS id, bin_to_uuid(hotel_id) AS hotel_id, name, rating, comment, created_at
	FROM review WHERE id = uuid_to_bin(?)
	`

	var review domain.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select review by id failed: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) GetAll(ctx context.Context, hotelID *uuid.UUID) ([]domain.Review, error) {
	query := `
	SELECT bin_to_uuid(id) AS id, bin_to_uuid(hotel_id) AS hotel_id, name, rating, comment, created_at
	FROM review`
	args := []interface{}{}

	if hotelID != nil {
		query += ` WHERE hotel_id = uuid_to_bin(?)`
		args = append(args, *hotelID)
	}

	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("select reviews failed: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	const query = `UPDATE review SET name = ?, rating = ?, comment = ? WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query, review.Name, review.Rating, review.Comment, review.ID)
	if err != nil {
		return fmt.Errorf("update review failed: %w", err)
	}

	return expectOneRow("repository.review.Update", res)
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM review WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}

	return expectOneRow("repository.review.Delete", res)
}
