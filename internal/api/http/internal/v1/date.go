package v1

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// date accepts "2006-01-02" or an RFC 3339 timestamp.
type date time.Time

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = date(t)
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	*d = date(t)
	return nil
}

func (d date) Time() time.Time {
	return time.Time(d)
}

func (d *date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}
