package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fontCandidates = []string{
	filepath.Join("..", "..", "fonts", "DejaVuSans.ttf"),
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        uuid.New(),
		HotelName: "Grand Plaza",
		Name:      "Ana Lopez",
		Email:     "ana@example.com",
		Phone:     "+34 600 000 000",
		CheckIn:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		RoomType:  "Deluxe",
		RoomCount: 2,
		RoomPrice: 100,
		Status:    domain.ReservationConfirmed,
	}
}

func TestReservationFields(t *testing.T) {
	fields := reservationFields(testReservation())

	values := map[string]string{}
	for _, f := range fields {
		values[f.title] = f.value
	}

	assert.Equal(t, "3", values["Nights"])
	assert.Equal(t, "Deluxe x 2", values["Room"])
	assert.Equal(t, "600.00", values["Total"])
	assert.Equal(t, "01 May 2026", values["Check-in"])
	assert.NotContains(t, values, "Message")
}

func TestNewGenerator_MissingFont(t *testing.T) {
	_, err := NewGenerator(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestRenderReservation(t *testing.T) {
	var fontPath string
	for _, p := range fontCandidates {
		if _, err := os.Stat(p); err == nil {
			fontPath = p
			break
		}
	}
	if fontPath == "" {
		t.Skip("no TTF font available")
	}

	g, err := NewGenerator(fontPath)
	require.NoError(t, err)

	doc, err := g.RenderReservation(testReservation())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	second, err := g.RenderReservation(testReservation())
	require.NoError(t, err)
	assert.NotEmpty(t, second)
}
