package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hotel-booking/backend/internal/db"
	"github.com/hotel-booking/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userColumns = `bin_to_uuid(id) AS id, name, email, password, role, is_account_verified,
	verify_otp, verify_otp_expire_at, reset_otp, reset_otp_expire_at,
	phone, birthday, gender, address, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, name, email, password, role, is_account_verified, created_at, updated_at)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.IsAccountVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user WHERE id = uuid_to_bin(?)`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user WHERE email = ?`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user ORDER BY created_at DESC`

	users := make([]domain.User, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("select users failed: %w", err)
	}
	return users, nil
}

// SetVerifyOtp stores a new verification code, an empty code with nil expiry clears it.
func (r *userRepository) SetVerifyOtp(ctx context.Context, id uuid.UUID, code string, expireAt *time.Time) error {
	const query = `
	UPDATE user SET verify_otp = ?, verify_otp_expire_at = ?, updated_at = now() WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, code, expireAt, id)
	if err != nil {
		return fmt.Errorf("update user verify otp failed: %w", err)
	}
	return expectOneRow("repository.user.SetVerifyOtp", res)
}

func (r *userRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const query = `
	UPDATE user SET is_account_verified = TRUE, verify_otp = '', verify_otp_expire_at = NULL, updated_at = now()
	WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("update user verified failed: %w", err)
	}
	return expectOneRow("repository.user.MarkVerified", res)
}

func (r *userRepository) SetResetOtp(ctx context.Context, id uuid.UUID, code string, expireAt *time.Time) error {
	const query = `
	UPDATE user SET reset_otp = ?, reset_otp_expire_at = ?, updated_at = now() WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, code, expireAt, id)
	if err != nil {
		return fmt.Errorf("update user reset otp failed: %w", err)
	}
	return expectOneRow("repository.user.SetResetOtp", res)
}

// UpdatePassword replaces the hash and consumes the reset code.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
	UPDATE user SET password = ?, reset_otp = '', reset_otp_expire_at = NULL, updated_at = now()
	WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update user password failed: %w", err)
	}
	return expectOneRow("repository.user.UpdatePassword", res)
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	const query = `
	UPDATE user SET name = ?, phone = ?, birthday = ?, gender = ?, address = ?, updated_at = now()
	WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, user.Name, user.Phone, user.Birthday, user.Gender, user.Address, user.ID)
	if err != nil {
		return fmt.Errorf("update user profile failed: %w", err)
	}
	return expectOneRow("repository.user.UpdateProfile", res)
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM user WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user failed: %w", err)
	}
	return expectOneRow("repository.user.Delete", res)
}
