package cardview

// Branding is the deployment-specific text and imagery printed on every card.
// Callers supply it once per Renderer; it never comes from card data.
type Branding struct {
	OrgName      string   `json:"org_name"`
	Subtitle     string   `json:"subtitle"`
	SupportEmail string   `json:"support_email"`
	Disclaimer   []string `json:"disclaimer"`
	// WatermarkURL is the front panel background image.
	WatermarkURL string `json:"watermark_url"`
	LogoURL      string `json:"logo_url"`
}

func DefaultBranding() Branding {
	return Branding{
		OrgName:      "CHAKDULALPUR ARUNADAY SANGHA",
		Subtitle:     "MEMBER CARE NETWORK",
		SupportEmail: "support@healthbridge.org",
		Disclaimer: []string{
			"This card for NGO members.",
			"There have no similarities with government scheme.",
		},
		WatermarkURL: "/assets/3hand.png",
		LogoURL:      "/assets/help-card-next.png",
	}
}

// merge fills empty fields of b from def.
func (b Branding) merge(def Branding) Branding {
	if b.OrgName == "" {
		b.OrgName = def.OrgName
	}
	if b.Subtitle == "" {
		b.Subtitle = def.Subtitle
	}
	if b.SupportEmail == "" {
		b.SupportEmail = def.SupportEmail
	}
	if b.Disclaimer == nil {
		b.Disclaimer = def.Disclaimer
	}
	if b.WatermarkURL == "" {
		b.WatermarkURL = def.WatermarkURL
	}
	if b.LogoURL == "" {
		b.LogoURL = def.LogoURL
	}
	return b
}
