package model

const (
	ProductTypeCloud   = "cloud"
	ProductTypeDesktop = "desktop"
)

// Product is a catalog entry shown on the help-centre homepage. Personas
// control who sees it; an empty Countries list means every country in the
// region.
type Product struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" validate:"required,oneof=cloud desktop"`
	Personas    []string `json:"personas"`
	Categories  []string `json:"categories"`
	Icon        string   `json:"icon"`
	Countries   []string `json:"countries,omitempty"`
}

// CountryVisibility lets the by-country filter work over any content type
// that carries an optional country restriction.
func (p Product) CountryVisibility() []string { return p.Countries }

// HasPersona reports whether the product is visible to the given persona.
// A product with no personas is visible to everyone.
func (p Product) HasPersona(persona string) bool {
	if len(p.Personas) == 0 {
		return true
	}
	for _, v := range p.Personas {
		if v == persona {
			return true
		}
	}
	return false
}
