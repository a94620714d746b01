package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/backend/internal/domain"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return sqlx.NewDb(mockDB, "mysql"), mock
}

var reservationRowColumns = []string{
	"id", "hotel_name", "name", "email", "phone", "check_in", "check_out",
	"room_type", "room_count", "room_price", "message", "status", "created_at", "updated_at",
}

func TestReservationRepository_Create(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReservationRepository(dbx)

	now := time.Now()
	reservation := &domain.Reservation{
		ID:        uuid.New(),
		HotelName: "Sea View",
		Name:      "BK100",
		Email:     "guest@example.com",
		Phone:     "9990000000",
		CheckIn:   now,
		CheckOut:  now.Add(48 * time.Hour),
		RoomType:  "deluxe",
		RoomCount: 1,
		RoomPrice: 120,
		Status:    domain.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO reservation").
		WithArgs(reservation.ID, "Sea View", "BK100", "guest@example.com", "9990000000",
			reservation.CheckIn, reservation.CheckOut, "deluxe", 1, 120.0, "", domain.ReservationPending, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), reservation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_GetAllNewestFirst(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReservationRepository(dbx)

	older := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	idNew, idOld := uuid.New(), uuid.New()

	rows := sqlmock.NewRows(reservationRowColumns).
		AddRow(idNew.String(), "Sea View", "A", "a@example.com", "111111111", older, newer, "std", 1, 80.0, "", "pending", newer, newer).
		AddRow(idOld.String(), "Sea View", "B", "b@example.com", "222222222", older, newer, "std", 1, 80.0, "", "confirmed", older, older)

	mock.ExpectQuery("SELECT .+ FROM reservation ORDER BY created_at DESC").WillReturnRows(rows)

	got, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, idNew, got[0].ID)
	assert.Equal(t, domain.ReservationConfirmed, got[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_FindByNameAndPhone_NotFound(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReservationRepository(dbx)

	mock.ExpectQuery("SELECT .+ FROM reservation WHERE name = \\? AND phone = \\?").
		WithArgs("BK100", "9990000000").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByNameAndPhone(context.Background(), "BK100", "9990000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Delete(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReservationRepository(dbx)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM reservation").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec("DELETE FROM reservation").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReservationRepository(dbx)
	id := uuid.New()

	mock.ExpectExec("UPDATE reservation SET status = \\?").
		WithArgs(domain.ReservationConfirmed, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.ReservationConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newUserRepository(dbx)

	mock.ExpectExec("INSERT INTO user").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := repo.Create(context.Background(), &domain.User{ID: uuid.New(), Email: "a@example.com", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newUserRepository(dbx)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "password", "role", "is_account_verified",
		"verify_otp", "verify_otp_expire_at", "reset_otp", "reset_otp_expire_at",
		"phone", "birthday", "gender", "address", "created_at", "updated_at",
	}).AddRow(id.String(), "Ann", "a@example.com", "hash", "admin", true,
		"", nil, "", nil, nil, nil, "", nil, now, now)

	mock.ExpectQuery("SELECT .+ FROM user WHERE email = \\?").WithArgs("a@example.com").WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.True(t, user.IsAdmin())
	assert.True(t, user.IsAccountVerified)
	assert.Nil(t, user.VerifyOtpExpireAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_MarkVerified(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newUserRepository(dbx)
	id := uuid.New()

	mock.ExpectExec("UPDATE user SET is_account_verified = TRUE, verify_otp = '', verify_otp_expire_at = NULL").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkVerified(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetAllByHotel(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReviewRepository(dbx)
	hotelID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "hotel_id", "name", "rating", "comment", "created_at"}).
		AddRow(uuid.New().String(), hotelID.String(), "Ann", 5, "great", time.Now())

	mock.ExpectQuery("SELECT .+ FROM review WHERE hotel_id = uuid_to_bin\\(\\?\\)").
		WithArgs(hotelID).
		WillReturnRows(rows)

	got, err := repo.GetAll(context.Background(), &hotelID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, hotelID, got[0].HotelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_UpdateNotFound(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newReviewRepository(dbx)
	review := &domain.Review{ID: uuid.New(), Name: "Ann", Rating: 4, Comment: "ok"}

	mock.ExpectExec("UPDATE review SET").
		WithArgs("Ann", 4, "ok", review.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), review), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_GetAllFilters(t *testing.T) {
	dbx, mock := setupMockDB(t)
	repo := newHotelRepository(dbx)

	rows := sqlmock.NewRows([]string{"id", "name", "city", "address", "description", "stars", "price_from", "rooms", "created_at", "updated_at"}).
		AddRow(uuid.New().String(), "Sea View", "Goa", "Beach rd", "by the sea", 4, 80.0, []byte(`[{"type":"deluxe","price":120,"capacity":2}]`), time.Now(), time.Now())

	mock.ExpectQuery("SELECT .+ FROM hotel WHERE \\(name LIKE \\? OR description LIKE \\?\\) AND city = \\? AND stars >= \\? ORDER BY name").
		WithArgs("%sea%", "%sea%", "Goa", 3).
		WillReturnRows(rows)

	got, err := repo.GetAll(context.Background(), domain.HotelFilter{Search: " sea ", City: "Goa", MinStars: 3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	room, ok := got[0].Room("deluxe")
	assert.True(t, ok)
	assert.Equal(t, 120.0, room.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
