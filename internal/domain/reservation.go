package domain

import (
	"time"

	"github.com/google/uuid"
)

const MaxReservationMessageLength = 500

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	HotelName string            `db:"hotel_name" json:"hotel_name"`
	Name      string            `db:"name" json:"name"`
	Email     string            `db:"email" json:"email"`
	Phone     string            `db:"phone" json:"phone"`
	CheckIn   time.Time         `db:"check_in" json:"check_in"`
	CheckOut  time.Time         `db:"check_out" json:"check_out"`
	RoomType  string            `db:"room_type" json:"room_type"`
	RoomCount int               `db:"room_count" json:"room_count"`
	RoomPrice float64           `db:"room_price" json:"room_price"`
	Message   string            `db:"message" json:"message,omitempty"`
	Status    ReservationStatus `db:"status" json:"status"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ValidateStay reports ErrInvalidStay unless checkOut is strictly after checkIn.
func ValidateStay(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidStay
	}
	return nil
}

// Nights is the number of nights between check-in and check-out.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Total is the price for the whole stay.
func (r *Reservation) Total() float64 {
	rooms := r.RoomCount
	if rooms < 1 {
		rooms = 1
	}
	return r.RoomPrice * float64(rooms) * float64(r.Nights())
}

// ReservationPatch holds the fields of an update, nil means unchanged.
type ReservationPatch struct {
	HotelName *string
	Name      *string
	Email     *string
	Phone     *string
	CheckIn   *time.Time
	CheckOut  *time.Time
	RoomType  *string
	RoomCount *int
	RoomPrice *float64
	Message   *string
	Status    *ReservationStatus
}

func (r *Reservation) Apply(p ReservationPatch) {
	if p.HotelName != nil {
		r.HotelName = *p.HotelName
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.CheckIn != nil {
		r.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		r.CheckOut = *p.CheckOut
	}
	if p.RoomType != nil {
		r.RoomType = *p.RoomType
	}
	if p.RoomCount != nil {
		r.RoomCount = *p.RoomCount
	}
	if p.RoomPrice != nil {
		r.RoomPrice = *p.RoomPrice
	}
	if p.Message != nil {
		r.Message = *p.Message
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// BookingCheck is the outcome of matching a booking reference against stored reservations.
type BookingCheck struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
