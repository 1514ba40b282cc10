package mocks

import (
	"context"
	"sort"

	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/store"
)

// MockAdministratorStore implements store.AdministratorStore for testing
type MockAdministratorStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, administrator *domain.Administrator) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Administrator, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Administrator, error)
	ListFn       func(ctx context.Context, page int) ([]*domain.Administrator, error)

	// Data for default implementation
	Administrators map[int64]*domain.Administrator
	NextID         int64
	CreateError    error
	GetError       error
}

// Ensure MockAdministratorStore implements store.AdministratorStore
var _ store.AdministratorStore = (*MockAdministratorStore)(nil)

// NewMockAdministratorStore creates a new mock store with initialized defaults
func NewMockAdministratorStore() *MockAdministratorStore {
	return &MockAdministratorStore{
		Administrators: make(map[int64]*domain.Administrator),
		NextID:         1,
	}
}

// Create implements the AdministratorStore interface
func (m *MockAdministratorStore) Create(
	ctx context.Context,
	administrator *domain.Administrator,
) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, administrator)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Administrators {
		if existing.Email == administrator.Email {
			return store.ErrEmailExists
		}
	}

	administrator.ID = m.NextID
	m.NextID++
	m.Administrators[administrator.ID] = administrator
	return nil
}

// GetByID implements the AdministratorStore interface
func (m *MockAdministratorStore) GetByID(
	ctx context.Context,
	id int64,
) (*domain.Administrator, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	administrator, exists := m.Administrators[id]
	if !exists {
		return nil, store.ErrAdministratorNotFound
	}
	return administrator, nil
}

// GetByEmail implements the AdministratorStore interface
func (m *MockAdministratorStore) GetByEmail(
	ctx context.Context,
	email string,
) (*domain.Administrator, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, administrator := range m.Administrators {
		if administrator.Email == email {
			return administrator, nil
		}
	}
	return nil, store.ErrAdministratorNotFound
}

// List implements the AdministratorStore interface
func (m *MockAdministratorStore) List(
	ctx context.Context,
	page int,
) ([]*domain.Administrator, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	all := make([]*domain.Administrator, 0, len(m.Administrators))
	for _, administrator := range m.Administrators {
		all = append(all, administrator)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return paginate(all, page), nil
}

// paginate applies the store's 1-based fixed-size paging to a sorted slice.
func paginate[T any](all []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * store.DefaultPageSize
	if start >= len(all) {
		return []T{}
	}
	end := start + store.DefaultPageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
