package mocks

import (
	"errors"

	"github.com/frotaops/frota-api/internal/service/auth"
)

// MockPasswordVerifier implements auth.PasswordVerifier and
// auth.PasswordHasher for testing
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match
	ShouldSucceed bool
	// HashResult is returned by Hash when HashError is nil
	HashResult string
	// HashError is returned by Hash when set
	HashError error
}

// Ensure MockPasswordVerifier implements both password interfaces
var (
	_ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
	_ auth.PasswordHasher   = (*MockPasswordVerifier)(nil)
)

// Compare implements the PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// Hash implements the PasswordHasher interface
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashError != nil {
		return "", m.HashError
	}
	if m.HashResult != "" {
		return m.HashResult, nil
	}
	return "hashed:" + password, nil
}
