package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hotel-booking/backend/internal/domain"

	"github.com/signintech/gopdf"
)

const (
	fontName   = "dejavu"
	dateLayout = "02 Jan 2006"
	pageBottom = 750
)

type Generator struct {
	font []byte
	now  func() time.Time
}

// NewGenerator loads the TTF font used for every rendered document.
func NewGenerator(fontPath string) (*Generator, error) {
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font %s failed: %w", fontPath, err)
	}

	return &Generator{font: font, now: time.Now}, nil
}

type field struct {
	title string
	value string
}

func reservationFields(r *domain.Reservation) []field {
	fields := []field{
		{"Reservation", r.ID.String()},
		{"Hotel", r.HotelName},
		{"Guest", r.Name},
		{"Email", r.Email},
		{"Phone", r.Phone},
		{"Check-in", r.CheckIn.Format(dateLayout)},
		{"Check-out", r.CheckOut.Format(dateLayout)},
		{"Nights", strconv.Itoa(r.Nights())},
		{"Room", fmt.Sprintf("%s x %d", r.RoomType, r.RoomCount)},
		{"Price per night", formatMoney(r.RoomPrice)},
		{"Total", formatMoney(r.Total())},
		{"Status", string(r.Status)},
	}
	if r.Message != "" {
		fields = append(fields, field{"Message", r.Message})
	}
	return fields
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderReservation builds a one page booking voucher.
func (g *Generator) RenderReservation(reservation *domain.Reservation) ([]byte, error) {
	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{
		PageSize: *gopdf.PageSizeA4,
		Unit:     gopdf.Unit_PT,
	})

	if err := doc.AddTTFFontData(fontName, g.font); err != nil {
		return nil, fmt.Errorf("add font failed: %w", err)
	}

	doc.AddPage()

	if err := g.addHeader(doc); err != nil {
		return nil, err
	}

	doc.SetY(100)
	for _, f := range reservationFields(reservation) {
		if err := addSection(doc, f.title, f.value); err != nil {
			return nil, err
		}
	}

	if err := g.addFooter(doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to output PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) addHeader(doc *gopdf.GoPdf) error {
	doc.SetFillColor(59, 130, 246)
	doc.RectFromUpperLeftWithStyle(0, 0, 595, 70, "F")

	doc.SetTextColor(255, 255, 255)
	if err := doc.SetFont(fontName, "", 24); err != nil {
		return fmt.Errorf("set font failed: %w", err)
	}
	doc.SetXY(50, 30)
	if err := doc.Cell(nil, "BOOKING VOUCHER"); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}
	doc.SetTextColor(0, 0, 0)

	return nil
}

func addSection(doc *gopdf.GoPdf, title, content string) error {
	y := doc.GetY() + 20
	if y > pageBottom {
		doc.AddPage()
		y = 50
	}

	doc.SetXY(50, y)
	if err := doc.SetFont(fontName, "", 12); err != nil {
		return fmt.Errorf("set font failed: %w", err)
	}
	doc.SetTextColor(0, 0, 0)
	if err := doc.Cell(nil, title); err != nil {
		return fmt.Errorf("write %s failed: %w", title, err)
	}

	doc.SetXY(200, y)
	if err := doc.SetFont(fontName, "", 11); err != nil {
		return fmt.Errorf("set font failed: %w", err)
	}
	doc.SetTextColor(50, 50, 50)
	if err := doc.MultiCell(&gopdf.Rect{W: 345, H: 15}, content); err != nil {
		return fmt.Errorf("write %s failed: %w", title, err)
	}

	return nil
}

func (g *Generator) addFooter(doc *gopdf.GoPdf) error {
	doc.SetXY(50, 780)
	if err := doc.SetFont(fontName, "", 9); err != nil {
		return fmt.Errorf("set font failed: %w", err)
	}
	doc.SetTextColor(150, 150, 150)
	if err := doc.Cell(nil, "Issued "+g.now().Format(dateLayout)); err != nil {
		return fmt.Errorf("write footer failed: %w", err)
	}
	return nil
}
