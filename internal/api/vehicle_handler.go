package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/frotaops/frota-api/internal/api/shared"
	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/store"
)

// VehicleHandler handles vehicle management API requests.
type VehicleHandler struct {
	vehicleStore store.VehicleStore
}

// NewVehicleHandler creates a new VehicleHandler with the given dependencies.
func NewVehicleHandler(vehicleStore store.VehicleStore) *VehicleHandler {
	return &VehicleHandler{
		vehicleStore: vehicleStore,
	}
}

// Create handles the POST /veiculos endpoint.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	input := domain.VehicleInput{Name: req.Name, Brand: req.Brand, Year: req.Year}
	if messages := input.Validate(); len(messages) > 0 {
		shared.RespondWithValidationErrors(w, r, messages)
		return
	}

	vehicle := &domain.Vehicle{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}
	if err := h.vehicleStore.Create(r.Context(), vehicle); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create vehicle", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/veiculos/%d", vehicle.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, vehicle)
}

// List handles the GET /veiculos endpoint with optional pagination.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page parameter")
		return
	}

	vehicles, err := h.vehicleStore.List(r.Context(), page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list vehicles", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicles)
}

// Get handles the GET /veiculos/{id} endpoint.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	vehicle, err := h.vehicleStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get vehicle", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicle)
}

// Update handles the PUT /veiculos/{id} endpoint.
// The same validation rules used on creation apply; the update replaces
// name, brand and year wholesale.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var req VehicleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	input := domain.VehicleInput{Name: req.Name, Brand: req.Brand, Year: req.Year}
	if messages := input.Validate(); len(messages) > 0 {
		shared.RespondWithValidationErrors(w, r, messages)
		return
	}

	vehicle := &domain.Vehicle{
		ID:    id,
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}
	if err := h.vehicleStore.Update(r.Context(), vehicle); err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to update vehicle", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicle)
}

// Delete handles the DELETE /veiculos/{id} endpoint.
// Deletion is permanent; deleting the same ID twice yields 404 on the
// second call.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := h.vehicleStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrVehicleNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete vehicle", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
