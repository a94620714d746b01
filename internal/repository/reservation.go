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

const reservationColumns = `bin_to_uuid(id) AS id, hotel_name, name, email, phone, check_in, check_out,
	room_type, room_count, room_price, message, status, created_at, updated_at`

type reservationRepository struct {
	db *sqlx.DB
}

func newReservationRepository(db *sqlx.DB) *reservationRepository {
	return &reservationRepository{
		db: db,
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const op = "repository.reservation.Create"

	const query = `
	INSERT INTO reservation
	(id, hotel_name, name, email, phone, check_in, check_out, room_type, room_count, room_price, message, status, created_at, updated_at)
	VALUES (uuid_to_bin(:id), :hotel_name, :name, :email, :phone, :check_in, :check_out, :room_type, :room_count, :room_price, :message, :status, :created_at, :updated_at)
	`

	res, err := r.db.NamedExecContext(ctx, query, reservation)
	if err != nil {
		return fmt.Errorf("%s: insert reservation failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *reservationRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservation WHERE id = uuid_to_bin(?)`

	var reservation domain.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select reservation by id failed: %w", err)
	}

	return &reservation, nil
}

// GetAll returns every reservation, newest first.
func (r *reservationRepository) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservation ORDER BY created_at DESC`

	reservations := make([]domain.Reservation, 0)
	if err := r.db.SelectContext(ctx, &reservations, query); err != nil {
		return nil, fmt.Errorf("select reservations failed: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) FindByNameAndPhone(ctx context.Context, name string, phone string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservation WHERE name = ? AND phone = ? ORDER BY created_at DESC LIMIT 1`

	var reservation domain.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, name, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select reservation by name and phone failed: %w", err)
	}

	return &reservation, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	const op = "repository.reservation.Update"

	const query = `
	UPDATE reservation SET
		hotel_name = :hotel_name, name = :name, email = :email, phone = :phone,
		check_in = :check_in, check_out = :check_out, room_type = :room_type,
		room_count = :room_count, room_price = :room_price, message = :message,
		status = :status, updated_at = :updated_at
	WHERE id = uuid_to_bin(:id)
	`

	res, err := r.db.NamedExecContext(ctx, query, reservation)
	if err != nil {
		return fmt.Errorf("%s: update reservation failed: %w", op, err)
	}

	return expectOneRow(op, res)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	const op = "repository.reservation.UpdateStatus"

	const query = `UPDATE reservation SET status = ?, updated_at = now() WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("%s: update reservation status failed: %w", op, err)
	}

	return expectOneRow(op, res)
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.reservation.Delete"

	const query = `DELETE FROM reservation WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: delete reservation failed: %w", op, err)
	}

	return expectOneRow(op, res)
}

// expectOneRow maps zero affected rows to domain.ErrNotFound.
func expectOneRow(op string, res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
