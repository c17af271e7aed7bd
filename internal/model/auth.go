package model

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful admin login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// TokenClaims is the decoded admin token payload.
type TokenClaims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}
