package cardview

import (
	"html"

	"github.com/rohanthewiz/element"
)

// element writes text and attribute values verbatim; every caller-supplied
// string goes through esc.
func esc(s string) string {
	return html.EscapeString(s)
}

type pageComponent struct {
	view CardView
}

func (p pageComponent) Render(b *element.Builder) (x any) {
	e, t := b.Ele, b.Text

	e("html", "lang", "en").R(
		e("head").R(
			e("meta", "charset", "utf-8").R(),
			e("meta", "name", "viewport", "content", "width=device-width, initial-scale=1").R(),
			e("title").R(t(esc(p.view.Branding.OrgName))),
		),
		e("body").R(
			cardComponent{view: p.view}.Render(b),
		),
	)
	return
}

type cardComponent struct {
	view CardView
}

func (c cardComponent) Render(b *element.Builder) (x any) {
	e, t := b.Ele, b.Text

	e("style").R(t(css))
	e("div", "class", "helpcard").R(
		frontPanel{view: c.view}.Render(b),
		backPanel{view: c.view}.Render(b),
	)
	return
}

type frontPanel struct {
	view CardView
}

func (f frontPanel) Render(b *element.Builder) (x any) {
	e, t := b.Ele, b.Text
	v := f.view

	e("section", "class", "helpcard__panel helpcard__panel--front").R(
		e("img", "class", "helpcard__watermark", "src", esc(v.Branding.WatermarkURL), "alt", "Card").R(),
		e("div", "class", "helpcard__header").R(
			orgHeading(b, v.Branding),
			e("img", "class", "helpcard__logo", "src", esc(v.Branding.LogoURL),
				"width", "45", "height", "45", "alt", "HelpCard").R(),
		),
		e("p", "class", "helpcard__id").R(t(esc(v.CardID))),
		e("div", "class", "helpcard__members").R(
			e("div", "class", "helpcard__label-row").R(
				icon(b, "users"),
				e("h3", "class", "helpcard__label").R(t("MEMBERS")),
			),
			e("div", "class", "helpcard__member-grid").R(
				func() (x any) {
					for _, m := range v.Members {
						e("div", "class", "helpcard__member").R(
							e("p", "class", "helpcard__member-name").R(t(esc(m.Name))),
							e("p", "class", "helpcard__member-relation").R(t(esc(m.Relation))),
						)
					}
					return
				}(),
			),
		),
		e("div", "class", "helpcard__expiry").R(
			e("p", "class", "helpcard__expiry-label").R(t("Expires On:")),
			e("p", "class", "helpcard__expiry-date").R(t(esc(v.Expiry))),
		),
	)
	return
}

type backPanel struct {
	view CardView
}

func (k backPanel) Render(b *element.Builder) (x any) {
	e, t := b.Ele, b.Text
	v := k.view

	e("section", "class", "helpcard__panel helpcard__panel--back").R(
		e("div", "class", "helpcard__header").R(
			orgHeading(b, v.Branding),
		),
		e("div", "class", "helpcard__contact").R(
			e("h2", "class", "helpcard__label").R(t("CONTACT INFORMATION")),
			contactRow(b, "map-pin", "Address", "helpcard__address", v.Address),
			contactRow(b, "phone", "Helpline", "helpcard__phone", v.Phone),
			contactRow(b, "mail", "Email", "helpcard__email", v.Branding.SupportEmail),
		),
		e("div", "class", "helpcard__disclaimer").R(
			func() (x any) {
				for _, line := range v.Branding.Disclaimer {
					e("p").R(t(esc(line)))
				}
				return
			}(),
		),
	)
	return
}

func orgHeading(b *element.Builder, br Branding) (x any) {
	e, t := b.Ele, b.Text

	e("div").R(
		e("h1", "class", "helpcard__org").R(t(esc(br.OrgName))),
		e("p", "class", "helpcard__subtitle").R(t(esc(br.Subtitle))),
	)
	return
}

func contactRow(b *element.Builder, iconName, label, class, value string) (x any) {
	e, t := b.Ele, b.Text

	e("div", "class", "helpcard__contact-row").R(
		e("span", "class", "helpcard__icon-badge").R(icon(b, iconName)),
		e("div").R(
			e("p", "class", "helpcard__contact-label").R(t(label)),
			e("p", "class", "helpcard__contact-value "+class).R(t(esc(value))),
		),
	)
	return
}

// shape is one SVG child: tag name followed by attribute pairs.
type shape []string

// 24x24 stroke icons shown next to section labels and contact rows.
var icons = map[string][]shape{
	"users": {
		{"path", "d", "M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"},
		{"circle", "cx", "9", "cy", "7", "r", "4"},
		{"path", "d", "M22 21v-2a4 4 0 0 0-3-3.87"},
		{"path", "d", "M16 3.13a4 4 0 0 1 0 7.75"},
	},
	"map-pin": {
		{"path", "d", "M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"},
		{"circle", "cx", "12", "cy", "10", "r", "3"},
	},
	"phone": {
		{"path", "d", "M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"},
	},
	"mail": {
		{"rect", "x", "2", "y", "4", "width", "20", "height", "16", "rx", "2"},
		{"path", "d", "m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"},
	},
}

func icon(b *element.Builder, name string) (x any) {
	e := b.Ele

	e("svg", "class", "helpcard__icon helpcard__icon--"+name, "viewBox", "0 0 24 24",
		"width", "12", "height", "12", "fill", "none", "stroke", "currentColor",
		"stroke-width", "2", "aria-hidden", "true").R(
		func() (x any) {
			for _, s := range icons[name] {
				e(s[0], s[1:]...).R()
			}
			return
		}(),
	)
	return
}
