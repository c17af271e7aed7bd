package model

// Country is a single market served by the help centre. Every country belongs
// to exactly one region; all countries in a region share one content bundle.
type Country struct {
	Code       string `json:"code" validate:"required,len=2"`
	Name       string `json:"name" validate:"required"`
	Language   string `json:"language"`
	Currency   string `json:"currency"`
	DateFormat string `json:"dateFormat"`
	Region     string `json:"region" validate:"required"`
	Default    bool   `json:"default,omitempty"`
}

// Region groups countries that share a content bundle, e.g. "uk-ireland"
// serves both gb and ie.
type Region struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Countries []Country `json:"countries"`
}

// CountryConfig is the per-country configuration handed to the front end
// after resolving a country code.
type CountryConfig struct {
	Country    Country  `json:"country"`
	Region     string   `json:"region"`
	Personas   []string `json:"personas"`
	Navigation []NavItem `json:"navigation"`
}

// NavItem is one entry in a country's site navigation.
type NavItem struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	External bool   `json:"external,omitempty"`
}

// SiteConfig is the region-level site configuration shared by every country
// in the bundle.
type SiteConfig struct {
	Personas     []string  `json:"personas"`
	Navigation   []NavItem `json:"navigation"`
	SupportEmail string    `json:"supportEmail,omitempty"`
}

// CreateRegionRequest is the admin payload for the region-creation flow.
type CreateRegionRequest struct {
	Code      string    `json:"code" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Countries []Country `json:"countries" binding:"required,min=1"`
}
