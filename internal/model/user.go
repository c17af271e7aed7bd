package model

// Personas used to filter product visibility.
const (
	PersonaCustomer   = "customer"
	PersonaAccountant = "accountant"
	PersonaPartner    = "partner"
	PersonaDeveloper  = "developer"
)

// User is a help-centre site user, persisted in the JSON file store. IDs are
// generated as user-<n> with n one past the highest existing numeric suffix.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Persona       string   `json:"persona"`
	OwnedProducts []string `json:"ownedProducts"`
	Favorites     []string `json:"favorites,omitempty"`
}

type CreateUserRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Persona       string   `json:"persona" binding:"required"`
	OwnedProducts []string `json:"ownedProducts"`
}

type UpdateUserRequest struct {
	Name          *string   `json:"name,omitempty"`
	Email         *string   `json:"email,omitempty" binding:"omitempty,email"`
	Persona       *string   `json:"persona,omitempty"`
	OwnedProducts *[]string `json:"ownedProducts,omitempty"`
	Favorites     *[]string `json:"favorites,omitempty"`
}
