package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hotel-booking/backend/internal/domain"
)

const hotelColumns = `bin_to_uuid(id) AS id, name, city, address, description, stars, price_from, rooms, created_at, updated_at`

type hotelRepository struct {
	db *sqlx.DB
}

func newHotelRepository(db *sqlx.DB) *hotelRepository {
	return &hotelRepository{
		db: db,
	}
}

func (r *hotelRepository) GetAll(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	if city := strings.TrimSpace(filter.City); city != "" {
		conditions = append(conditions, "city = ?")
		args = append(args, city)
	}

	if filter.MinStars > 0 {
		conditions = append(conditions, "stars >= ?")
		args = append(args, filter.MinStars)
	}

	query := `SELECT ` + hotelColumns + ` FROM hotel`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY name`

	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, query, args...); err != nil {
		return nil, fmt.Errorf("select hotels failed: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotel WHERE id = uuid_to_bin(?)`

	var hotel domain.Hotel
	if err := r.db.GetContext(ctx, &hotel, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select hotel by id failed: %w", err)
	}

	return &hotel, nil
}
