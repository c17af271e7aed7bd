package model

// ReleaseNote is one entry in a product's release-notes document.
type ReleaseNote struct {
	ID         string   `json:"id" validate:"required"`
	ProductID  string   `json:"productId"`
	Version    string   `json:"version"`
	Date       string   `json:"date"`
	Title      string   `json:"title"`
	Highlights []string `json:"highlights,omitempty"`
	Body       string   `json:"body,omitempty"`
	Countries  []string `json:"countries,omitempty"`
}

func (r ReleaseNote) CountryVisibility() []string { return r.Countries }

// ContactMethod is one way of reaching support (phone, chat, email, ...).
type ContactMethod struct {
	ID           string   `json:"id" validate:"required"`
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	Value        string   `json:"value"`
	OpeningHours string   `json:"openingHours,omitempty"`
	Personas     []string `json:"personas,omitempty"`
	Countries    []string `json:"countries,omitempty"`
}

func (c ContactMethod) CountryVisibility() []string { return c.Countries }

// ContactFormRequest is a message submitted through the contact form; it is
// relayed to the region's support address.
type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
