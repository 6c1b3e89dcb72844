package cardview

import (
	"time"

	"github.com/alovak/helpcard/helpcard/models"
	"github.com/alovak/helpcard/internal/cardid"
)

// CardView holds the display strings for both panels of one card.
type CardView struct {
	Branding Branding     `json:"branding"`
	CardID   string       `json:"card_id"`
	Expiry   string       `json:"expiry"`
	Members  []MemberView `json:"members"`
	Address  string       `json:"address"`
	Phone    string       `json:"phone"`
}

type MemberView struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
}

// BuildView formats card for display. It reads card and never modifies it.
// loc applies only to an expiry that carries a time of day.
// IssueDate, HeadName and PlanName are part of the input but not shown.
func BuildView(card models.Card, b Branding, loc *time.Location) CardView {
	members := make([]MemberView, 0, len(card.Members))
	for _, m := range card.Members {
		members = append(members, MemberView{
			Name:     m.FirstName + " " + m.LastName,
			Relation: m.Relation,
		})
	}

	return CardView{
		Branding: b,
		CardID:   cardid.Group(card.CardID, cardid.BlockSize),
		Expiry:   card.ExpiryDate.Face(loc),
		Members:  members,
		Address:  card.Address,
		Phone:    card.Phone,
	}
}
