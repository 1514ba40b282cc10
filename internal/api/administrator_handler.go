package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/frotaops/frota-api/internal/api/shared"
	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/service/auth"
	"github.com/frotaops/frota-api/internal/store"
)

// AdministratorHandler handles administrator management API requests.
type AdministratorHandler struct {
	administratorStore store.AdministratorStore
	passwordHasher     auth.PasswordHasher
}

// NewAdministratorHandler creates a new AdministratorHandler with the given dependencies.
func NewAdministratorHandler(
	administratorStore store.AdministratorStore,
	passwordHasher auth.PasswordHasher,
) *AdministratorHandler {
	return &AdministratorHandler{
		administratorStore: administratorStore,
		passwordHasher:     passwordHasher,
	}
}

// Create handles the POST /administradores endpoint.
func (h *AdministratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AdministratorRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Run field validation; all violations are reported together
	input := domain.AdministratorInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if messages := input.Validate(); len(messages) > 0 {
		shared.RespondWithValidationErrors(w, r, messages)
		return
	}

	// Validation guarantees the role parses
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"Role must be Admin or Editor"})
		return
	}

	// Hash the password before it reaches the store
	hash, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create administrator", err)
		return
	}

	administrator := &domain.Administrator{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := h.administratorStore.Create(r.Context(), administrator); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create administrator", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/administradores/%d", administrator.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, AdministratorResponse{
		ID:    administrator.ID,
		Email: administrator.Email,
		Role:  administrator.Role.String(),
	})
}

// List handles the GET /administradores endpoint with optional pagination.
func (h *AdministratorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page parameter")
		return
	}

	administrators, err := h.administratorStore.List(r.Context(), page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list administrators", err)
		return
	}

	responses := make([]AdministratorResponse, 0, len(administrators))
	for _, a := range administrators {
		responses = append(responses, AdministratorResponse{
			ID:    a.ID,
			Email: a.Email,
			Role:  a.Role.String(),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles the GET /administradores/{id} endpoint.
func (h *AdministratorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	administrator, err := h.administratorStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAdministratorNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Administrator not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get administrator", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdministratorResponse{
		ID:    administrator.ID,
		Email: administrator.Email,
		Role:  administrator.Role.String(),
	})
}
