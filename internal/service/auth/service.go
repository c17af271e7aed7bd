package auth

import (
	"context"
	"errors"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/pkg/auth"
	"github.com/helpcentre-io/helpcentre-api/pkg/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Config carries the admin credential material. PasswordHash is a bcrypt hash
// of the shared admin password.
type Config struct {
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	ExpiryHours  int    `mapstructure:"expiry_hours"`
}

type AuthServicer interface {
	Login(ctx context.Context, password string) (*model.TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error)
}

type Service struct {
	passwordHash string
	hasher       security.PasswordHasher
	jwtSvc       auth.JWTService
}

func NewService(cfg Config, jwtSvc auth.JWTService) *Service {
	return &Service{
		passwordHash: cfg.PasswordHash,
		hasher:       security.NewBcryptHasher(12),
		jwtSvc:       jwtSvc,
	}
}

// Login exchanges the shared admin password for a bearer token.
func (s *Service) Login(ctx context.Context, password string) (*model.TokenResponse, error) {
	if s.passwordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.passwordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiry, err := s.jwtSvc.GenerateAdminToken()
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{
		Token:     token,
		ExpiresIn: int(expiry.Seconds()),
	}, nil
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	return s.jwtSvc.ValidateToken(token)
}
