package store

import (
	"context"

	"github.com/frotaops/frota-api/internal/domain"
)

// VehicleStore defines the interface for vehicle persistence.
type VehicleStore interface {
	// Create saves a new vehicle to the store and assigns its ID.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by its unique ID.
	// Returns ErrVehicleNotFound if the vehicle does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)

	// List returns one page of vehicles ordered by ID.
	// Pages are 1-based and DefaultPageSize records long; page values
	// below 1 are treated as the first page.
	List(ctx context.Context, page int) ([]*domain.Vehicle, error)

	// Update replaces an existing vehicle's name, brand and year.
	// Returns ErrVehicleNotFound if the vehicle does not exist.
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// Delete removes a vehicle from the store by its ID.
	// Returns ErrVehicleNotFound if the vehicle does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id int64) error
}
