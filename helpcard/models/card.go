package models

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alovak/helpcard/internal/expiry"
)

// Member is one person covered by the card. Order is owned by the caller.
type Member struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Relation  string `json:"relation"`
	DOB       string `json:"dob"`
}

// Card is the display data for one membership card.
type Card struct {
	CardID     string   `json:"cardId"`
	IssueDate  Date     `json:"issueDate"`
	ExpiryDate Date     `json:"expiryDate"`
	HeadName   string   `json:"headName"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	Members    []Member `json:"members"`
	PlanName   string   `json:"planName"`
}

// DecodeCard reads one JSON card from r.
func DecodeCard(r io.Reader) (Card, error) {
	var card Card
	if err := json.NewDecoder(r).Decode(&card); err != nil {
		return card, fmt.Errorf("decode card: %w", err)
	}
	return card, nil
}

// Date is either a calendar date ("2025-03-07") or an instant (RFC 3339).
// A calendar date prints as the same day in every location.
type Date struct {
	time.Time
	dateOnly bool
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), dateOnly: true}
}

// DateOnly reports whether d is a calendar date without a time of day.
func (d Date) DateOnly() bool {
	return d.dateOnly
}

// Face returns d as DD/MM/YYYY. Instants are shown in loc; calendar dates
// ignore it.
func (d Date) Face(loc *time.Location) string {
	if d.dateOnly {
		return expiry.DayFace(d.Year(), d.Month(), d.Day())
	}
	return expiry.CardFace(d.Time, loc)
}

func (d Date) MarshalJSON() ([]byte, error) {
	switch {
	case d.IsZero():
		return []byte(`""`), nil
	case d.dateOnly:
		return json.Marshal(fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day()))
	default:
		return json.Marshal(d.Format(time.RFC3339Nano))
	}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, dateOnly, err := expiry.ParseDate(s)
	if err != nil {
		return err
	}
	*d = Date{Time: t, dateOnly: dateOnly}
	return nil
}
