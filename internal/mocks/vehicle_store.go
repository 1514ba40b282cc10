package mocks

import (
	"context"
	"sort"

	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/store"
)

// MockVehicleStore implements store.VehicleStore for testing
type MockVehicleStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, vehicle *domain.Vehicle) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListFn    func(ctx context.Context, page int) ([]*domain.Vehicle, error)
	UpdateFn  func(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Vehicles    map[int64]*domain.Vehicle
	NextID      int64
	CreateError error
	GetError    error
}

// Ensure MockVehicleStore implements store.VehicleStore
var _ store.VehicleStore = (*MockVehicleStore)(nil)

// NewMockVehicleStore creates a new mock store with initialized defaults
func NewMockVehicleStore() *MockVehicleStore {
	return &MockVehicleStore{
		Vehicles: make(map[int64]*domain.Vehicle),
		NextID:   1,
	}
}

// Create implements the VehicleStore interface
func (m *MockVehicleStore) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, vehicle)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	vehicle.ID = m.NextID
	m.NextID++
	stored := *vehicle
	m.Vehicles[vehicle.ID] = &stored
	return nil
}

// GetByID implements the VehicleStore interface
func (m *MockVehicleStore) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	vehicle, exists := m.Vehicles[id]
	if !exists {
		return nil, store.ErrVehicleNotFound
	}
	copy := *vehicle
	return &copy, nil
}

// List implements the VehicleStore interface
func (m *MockVehicleStore) List(ctx context.Context, page int) ([]*domain.Vehicle, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	all := make([]*domain.Vehicle, 0, len(m.Vehicles))
	for _, vehicle := range m.Vehicles {
		all = append(all, vehicle)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return paginate(all, page), nil
}

// Update implements the VehicleStore interface
func (m *MockVehicleStore) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, vehicle)
	}

	if _, exists := m.Vehicles[vehicle.ID]; !exists {
		return store.ErrVehicleNotFound
	}
	stored := *vehicle
	m.Vehicles[vehicle.ID] = &stored
	return nil
}

// Delete implements the VehicleStore interface
func (m *MockVehicleStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Vehicles[id]; !exists {
		return store.ErrVehicleNotFound
	}
	delete(m.Vehicles, id)
	return nil
}
