package api

import (
	"errors"
	"net/http"

	"github.com/frotaops/frota-api/internal/api/shared"
	"github.com/frotaops/frota-api/internal/service/auth"
	"github.com/frotaops/frota-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	administratorStore store.AdministratorStore
	jwtService         auth.JWTService
	passwordVerifier   auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	administratorStore store.AdministratorStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		administratorStore: administratorStore,
		jwtService:         jwtService,
		passwordVerifier:   passwordVerifier,
	}
}

// Login handles the POST /administradores/login endpoint.
// Authentication failures always produce the same 401 body regardless of
// whether the email or the password was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request shape
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Get administrator by email
	administrator, err := h.administratorStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrAdministratorNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate", err)
		return
	}

	// Verify password using the injected verifier
	if err := h.passwordVerifier.Compare(administrator.PasswordHash, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Generate token
	token, err := h.jwtService.GenerateToken(r.Context(), administrator)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	// Return success response
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Email: administrator.Email,
		Role:  administrator.Role.String(),
		Token: token,
	})
}
