package auth

import (
	"context"
	"time"

	"github.com/frotaops/frota-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token carrying the
	// administrator's email and role claims.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, administrator *domain.Administrator) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing the administrator's identity if the token
	// is valid, or an error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Email identifies the administrator the token was issued for.
	Email string `json:"email,omitempty"`

	// Role is the administrator's authorization level. The route middleware
	// compares it against each route's required role set.
	Role domain.Role `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
