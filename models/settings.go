package models

// SiteSettings is the single per-deployment settings document. The same
// shape is used on the wire and in the store.
type SiteSettings struct {
	HeroTitle    string  `json:"hero_title" bson:"hero_title"`
	HeroSubtitle string  `json:"hero_subtitle" bson:"hero_subtitle"`
	ContactEmail *string `json:"contact_email" bson:"contact_email" validate:"omitempty,email"`
	Phone        *string `json:"phone" bson:"phone"`
	Address      *string `json:"address" bson:"address"`
}

// DefaultSiteSettings returns the values seeded on first read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		HeroTitle:    "Premium White Goods",
		HeroSubtitle: "Reliable appliances for every home.",
	}
}
