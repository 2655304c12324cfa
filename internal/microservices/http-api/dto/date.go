package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date on the wire. It decodes "2006-01-02", RFC 3339
// timestamps and epoch milliseconds; it always encodes as "2006-01-02".
// An empty string decodes like null and leaves the date unset.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid date %s: %w", b, err)
		}
		d.Time = truncateDay(time.UnixMilli(ms).UTC())
		return nil
	}

	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", b, err)
	}
	if s == "" {
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d.Time = truncateDay(t.UTC())
	return nil
}

// IsSet reports whether a date was decoded.
func (d *Date) IsSet() bool {
	return d != nil && !d.IsZero()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
