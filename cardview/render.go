package cardview

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/alovak/helpcard/helpcard/models"
	"github.com/rohanthewiz/element"
)

//go:embed card.css
var css string

// Renderer turns card data into two-panel HTML. It holds no per-card state and
// is safe for concurrent use.
type Renderer struct {
	branding Branding
	loc      *time.Location
}

type Option func(*Renderer)

// WithLocation sets the location an expiry instant is printed in. Calendar
// dates print as given regardless.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// New returns a Renderer. Empty branding fields fall back to DefaultBranding.
func New(b Branding, opts ...Option) *Renderer {
	r := &Renderer{
		branding: b.merge(DefaultBranding()),
		loc:      time.UTC,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Branding() Branding {
	return r.branding
}

func (r *Renderer) View(card models.Card) CardView {
	return BuildView(card, r.branding, r.loc)
}

// Render writes the front and back panels as an HTML fragment.
func (r *Renderer) Render(w io.Writer, card models.Card) error {
	b := element.NewBuilder()
	element.RenderComponents(b, cardComponent{view: r.View(card)})
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing card: %w", err)
	}
	return nil
}

// RenderPage writes a standalone HTML document containing the card.
func (r *Renderer) RenderPage(w io.Writer, card models.Card) error {
	b := element.NewBuilder()
	element.RenderComponents(b, pageComponent{view: r.View(card)})
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"+b.String()); err != nil {
		return fmt.Errorf("writing card page: %w", err)
	}
	return nil
}

func (r *Renderer) RenderString(card models.Card) (string, error) {
	b := element.NewBuilder()
	element.RenderComponents(b, cardComponent{view: r.View(card)})
	return b.String(), nil
}
