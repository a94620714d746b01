package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RoomType struct {
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

type RoomTypeList []RoomType

// Value stores the list as a JSON column.
func (l RoomTypeList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *RoomTypeList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for RoomTypeList: %T", value)
	}

	return json.Unmarshal(bytes, l)
}

type Hotel struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	City        string       `db:"city" json:"city"`
	Address     string       `db:"address" json:"address"`
	Description string       `db:"description" json:"description"`
	Stars       int          `db:"stars" json:"stars"`
	PriceFrom   float64      `db:"price_from" json:"price_from"`
	Rooms       RoomTypeList `db:"rooms" json:"rooms"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Room returns the room type with the given name.
func (h *Hotel) Room(roomType string) (RoomType, bool) {
	for _, r := range h.Rooms {
		if r.Type == roomType {
			return r, true
		}
	}
	return RoomType{}, false
}

type HotelFilter struct {
	Search   string
	City     string
	MinStars int
}
