package service

import (
	"context"
	"time"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/pkg/auth"
	"github.com/hotel-booking/backend/pkg/hash"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *userRepositoryMock) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *userRepositoryMock) SetVerifyOtp(ctx context.Context, id uuid.UUID, code string, expireAt *time.Time) error {
	return m.Called(ctx, id, code, expireAt).Error(0)
}

func (m *userRepositoryMock) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *userRepositoryMock) SetResetOtp(ctx context.Context, id uuid.UUID, code string, expireAt *time.Time) error {
	return m.Called(ctx, id, code, expireAt).Error(0)
}

func (m *userRepositoryMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *userRepositoryMock) UpdateProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type reservationRepositoryMock struct {
	mock.Mock
}

func (m *reservationRepositoryMock) Create(ctx context.Context, reservation *domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *reservationRepositoryMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *reservationRepositoryMock) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	reservations, _ := args.Get(0).([]domain.Reservation)
	return reservations, args.Error(1)
}

func (m *reservationRepositoryMock) FindByNameAndPhone(ctx context.Context, name string, phone string) (*domain.Reservation, error) {
	args := m.Called(ctx, name, phone)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *reservationRepositoryMock) Update(ctx context.Context, reservation *domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *reservationRepositoryMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *reservationRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type reviewRepositoryMock struct {
	mock.Mock
}

func (m *reviewRepositoryMock) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *reviewRepositoryMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *reviewRepositoryMock) GetAll(ctx context.Context, hotelID *uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, hotelID)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *reviewRepositoryMock) Update(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *reviewRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type hotelRepositoryMock struct {
	mock.Mock
}

func (m *hotelRepositoryMock) GetAll(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	args := m.Called(ctx, filter)
	hotels, _ := args.Get(0).([]domain.Hotel)
	return hotels, args.Error(1)
}

func (m *hotelRepositoryMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	hotel, _ := args.Get(0).(*domain.Hotel)
	return hotel, args.Error(1)
}

// plainHasher stores passwords with a prefix so tests can predict hashes.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hashed string, password string) error {
	if hashed != "hashed:"+password {
		return hash.ErrMismatchedPassword
	}
	return nil
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) NewSessionToken(userID uuid.UUID, role string) (string, time.Duration, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *tokenManagerMock) Parse(token string) (*auth.Identity, error) {
	args := m.Called(token)
	identity, _ := args.Get(0).(*auth.Identity)
	return identity, args.Error(1)
}

type fixedOtp string

func (f fixedOtp) RandomCode(int) string {
	return string(f)
}

// memoryGuard is an in-process AttemptGuard.
type memoryGuard struct {
	max      int
	failures map[string]int
	err      error
}

func newMemoryGuard(max int) *memoryGuard {
	return &memoryGuard{max: max, failures: map[string]int{}}
}

func (g *memoryGuard) Locked(_ context.Context, key string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return g.failures[key] >= g.max, nil
}

func (g *memoryGuard) Fail(_ context.Context, key string) error {
	if g.err != nil {
		return g.err
	}
	g.failures[key]++
	return nil
}

func (g *memoryGuard) Reset(_ context.Context, key string) error {
	if g.err != nil {
		return g.err
	}
	delete(g.failures, key)
	return nil
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) SendWelcome(ctx context.Context, email string, name string) error {
	return m.Called(ctx, email, name).Error(0)
}

func (m *notifierMock) SendVerificationCode(ctx context.Context, email string, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

func (m *notifierMock) SendPasswordResetCode(ctx context.Context, email string, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

type enqueuerMock struct {
	mock.Mock
}

func (m *enqueuerMock) EnqueueContext(ctx context.Context, t *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, t)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

type voucherRendererMock struct {
	mock.Mock
}

func (m *voucherRendererMock) RenderReservation(reservation *domain.Reservation) ([]byte, error) {
	args := m.Called(reservation)
	doc, _ := args.Get(0).([]byte)
	return doc, args.Error(1)
}
