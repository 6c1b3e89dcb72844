package expiry

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts carry no time of day; the parsed value is a calendar date.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

// CardFace returns t as DD/MM/YYYY in loc for the card imprint. A nil loc
// prints t in its own location.
func CardFace(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return DayFace(t.Year(), t.Month(), t.Day())
}

// DayFace returns a calendar date as DD/MM/YYYY.
func DayFace(year int, month time.Month, day int) string {
	return fmt.Sprintf("%02d/%02d/%04d", day, int(month), year)
}

// ParseDate parses YYYY-MM-DD, DD/MM/YYYY or RFC 3339. dateOnly reports that
// s had no time of day; such values are midnight UTC of that calendar day.
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("date %q must be YYYY-MM-DD, RFC 3339 or DD/MM/YYYY", s)
}
