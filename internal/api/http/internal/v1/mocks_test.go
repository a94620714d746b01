package v1

import (
	"context"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/service"
	"github.com/hotel-booking/backend/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input service.RegisterInput) (*service.Session, error) {
	args := m.Called(input)
	session, _ := args.Get(0).(*service.Session)
	return session, args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email string, password string) (*service.Session, error) {
	args := m.Called(email, password)
	session, _ := args.Get(0).(*service.Session)
	return session, args.Error(1)
}

func (m *authServiceMock) SendVerifyOtp(ctx context.Context, userID uuid.UUID) error {
	return m.Called(userID).Error(0)
}

func (m *authServiceMock) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	return m.Called(userID, code).Error(0)
}

func (m *authServiceMock) SendResetOtp(ctx context.Context, email string) error {
	return m.Called(email).Error(0)
}

func (m *authServiceMock) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	return m.Called(email, code, newPassword).Error(0)
}

func (m *authServiceMock) IsAuthenticated(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called()
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *userServiceMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.UserProfile) (*domain.User, error) {
	args := m.Called(id, profile)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *userServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

type reservationServiceMock struct {
	mock.Mock
}

func (m *reservationServiceMock) Create(ctx context.Context, input service.ReservationInput) (*domain.Reservation, error) {
	args := m.Called(input)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *reservationServiceMock) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called()
	reservations, _ := args.Get(0).([]domain.Reservation)
	return reservations, args.Error(1)
}

func (m *reservationServiceMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	args := m.Called(id)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *reservationServiceMock) Update(ctx context.Context, id uuid.UUID, patch domain.ReservationPatch) (*domain.Reservation, error) {
	args := m.Called(id, patch)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *reservationServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(id, status)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *reservationServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *reservationServiceMock) ValidateBooking(ctx context.Context, bookingNumber string, pin string) (*domain.BookingCheck, error) {
	args := m.Called(bookingNumber, pin)
	check, _ := args.Get(0).(*domain.BookingCheck)
	return check, args.Error(1)
}

func (m *reservationServiceMock) StatusCounts(ctx context.Context) (stats.ReservationStatusCounts, error) {
	args := m.Called()
	return args.Get(0).(stats.ReservationStatusCounts), args.Error(1)
}

func (m *reservationServiceMock) Voucher(ctx context.Context, id uuid.UUID) ([]byte, error) {
	args := m.Called(id)
	doc, _ := args.Get(0).([]byte)
	return doc, args.Error(1)
}

type reviewServiceMock struct {
	mock.Mock
}

func (m *reviewServiceMock) Create(ctx context.Context, input service.ReviewInput) (*domain.Review, error) {
	args := m.Called(input)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *reviewServiceMock) Submit(ctx context.Context, booking service.BookingCredentials, input service.ReviewInput) (*domain.Review, error) {
	args := m.Called(booking, input)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *reviewServiceMock) GetAll(ctx context.Context, hotelID *uuid.UUID) ([]domain.Review, error) {
	args := m.Called(hotelID)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *reviewServiceMock) Update(ctx context.Context, id uuid.UUID, patch domain.ReviewPatch) (*domain.Review, error) {
	args := m.Called(id, patch)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *reviewServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *reviewServiceMock) Metrics(ctx context.Context, hotelID *uuid.UUID) (stats.ReviewMetrics, error) {
	args := m.Called(hotelID)
	return args.Get(0).(stats.ReviewMetrics), args.Error(1)
}

type hotelServiceMock struct {
	mock.Mock
}

func (m *hotelServiceMock) GetAll(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	args := m.Called(filter)
	hotels, _ := args.Get(0).([]domain.Hotel)
	return hotels, args.Error(1)
}

func (m *hotelServiceMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	args := m.Called(id)
	hotel, _ := args.Get(0).(*domain.Hotel)
	return hotel, args.Error(1)
}
