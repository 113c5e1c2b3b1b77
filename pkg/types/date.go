package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a point in time decoded from either "2006-01-02" or RFC 3339.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// TimePtr converts an optional Date to an optional time.Time.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// FlexInt decodes an integer sent either as a JSON number or a numeric string.
// Fractions are truncated toward zero and out of range values saturate at the int bounds.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*i = FlexInt(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("invalid integer %q", raw)
	}
	if math.IsNaN(f) {
		return fmt.Errorf("invalid integer %q", raw)
	}

	switch {
	case f >= math.MaxInt:
		*i = FlexInt(math.MaxInt)
	case f <= math.MinInt:
		*i = FlexInt(math.MinInt)
	default:
		*i = FlexInt(int(f))
	}
	return nil
}

// IntPtr converts an optional FlexInt to an optional int.
func (i *FlexInt) IntPtr() *int {
	if i == nil {
		return nil
	}
	n := int(*i)
	return &n
}
