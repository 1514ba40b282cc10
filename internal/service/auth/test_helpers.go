package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function.
// Intended for tests that need deterministic issuance and expiry times.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No leeway so expiry boundaries are exact in tests
	}
}
