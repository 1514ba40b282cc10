package postgres

import (
	"context"
	"log/slog"

	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/platform/logger"
	"github.com/frotaops/frota-api/internal/store"
)

// PostgresAdministratorStore implements the store.AdministratorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdministratorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdministratorStore creates a new PostgreSQL implementation of the
// AdministratorStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAdministratorStore(db store.DBTX, logger *slog.Logger) *PostgresAdministratorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdministratorStore{
		db:     db,
		logger: logger.With(slog.String("component", "administrator_store")),
	}
}

// Ensure PostgresAdministratorStore implements store.AdministratorStore interface
var _ store.AdministratorStore = (*PostgresAdministratorStore)(nil)

// Create implements store.AdministratorStore.Create
// It inserts a new administrator and fills in the store-assigned ID.
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresAdministratorStore) Create(
	ctx context.Context,
	administrator *domain.Administrator,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO administrators (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		administrator.Email,
		administrator.PasswordHash,
		administrator.Role.String(),
	).Scan(&administrator.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate email during administrator creation",
				slog.String("email", administrator.Email))
			return store.ErrEmailExists
		}

		log.Error("failed to create administrator",
			slog.String("error", err.Error()),
			slog.String("email", administrator.Email))
		return store.NewStoreError("administrator", "create", "failed to insert row", MapError(err))
	}

	log.Info("administrator created successfully",
		slog.Int64("administrator_id", administrator.ID),
		slog.String("role", administrator.Role.String()))
	return nil
}

// GetByID implements store.AdministratorStore.GetByID
// Returns store.ErrAdministratorNotFound if the administrator does not exist.
func (s *PostgresAdministratorStore) GetByID(
	ctx context.Context,
	id int64,
) (*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		WHERE id = $1
	`
	administrator, err := scanAdministrator(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrAdministratorNotFound
		}
		log.Error("failed to get administrator by id",
			slog.String("error", err.Error()),
			slog.Int64("administrator_id", id))
		return nil, store.NewStoreError("administrator", "get", "failed to scan row", err)
	}

	return administrator, nil
}

// GetByEmail implements store.AdministratorStore.GetByEmail
// Returns store.ErrAdministratorNotFound if the administrator does not exist.
func (s *PostgresAdministratorStore) GetByEmail(
	ctx context.Context,
	email string,
) (*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		WHERE email = $1
	`
	administrator, err := scanAdministrator(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrAdministratorNotFound
		}
		log.Error("failed to get administrator by email",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("administrator", "get", "failed to scan row", err)
	}

	return administrator, nil
}

// List implements store.AdministratorStore.List
// Pages are 1-based; values below 1 are treated as the first page.
func (s *PostgresAdministratorStore) List(
	ctx context.Context,
	page int,
) ([]*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * store.DefaultPageSize

	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, store.DefaultPageSize, offset)
	if err != nil {
		log.Error("failed to list administrators",
			slog.String("error", err.Error()),
			slog.Int("page", page))
		return nil, store.NewStoreError("administrator", "list", "failed to query page", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	administrators := []*domain.Administrator{}
	for rows.Next() {
		var a domain.Administrator
		var role string
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &role); err != nil {
			return nil, MapError(err)
		}
		a.Role = domain.Role(role)
		administrators = append(administrators, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return administrators, nil
}

// rowScanner abstracts *sql.Row for single-record scans.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdministrator(row rowScanner) (*domain.Administrator, error) {
	var a domain.Administrator
	var role string
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &role); err != nil {
		return nil, MapError(err)
	}
	a.Role = domain.Role(role)
	return &a, nil
}
