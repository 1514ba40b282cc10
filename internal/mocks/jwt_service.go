package mocks

import (
	"context"

	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil
	Token string
	// Claims are returned by ValidateToken when Err is nil
	Claims *auth.Claims
	// Err is returned by both operations when set
	Err error

	// Function fields for customizable behavior
	GenerateTokenFn func(ctx context.Context, administrator *domain.Administrator) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockJWTService implements auth.JWTService
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the JWTService interface
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	administrator *domain.Administrator,
) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, administrator)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements the JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}
