package store

import (
	"context"

	"github.com/frotaops/frota-api/internal/domain"
)

// AdministratorStore defines the interface for administrator persistence.
type AdministratorStore interface {
	// Create saves a new administrator to the store and assigns its ID.
	// The administrator must already carry a hashed password; plaintext
	// passwords never reach the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, administrator *domain.Administrator) error

	// GetByID retrieves an administrator by their unique ID.
	// Returns ErrAdministratorNotFound if the administrator does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Administrator, error)

	// GetByEmail retrieves an administrator by their email address.
	// Returns ErrAdministratorNotFound if the administrator does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Administrator, error)

	// List returns one page of administrators ordered by ID.
	// Pages are 1-based and DefaultPageSize records long; page values
	// below 1 are treated as the first page.
	List(ctx context.Context, page int) ([]*domain.Administrator, error)
}
