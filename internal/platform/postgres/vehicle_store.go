package postgres

import (
	"context"
	"log/slog"

	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/platform/logger"
	"github.com/frotaops/frota-api/internal/store"
)

// PostgresVehicleStore implements the store.VehicleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVehicleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVehicleStore creates a new PostgreSQL implementation of the
// VehicleStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresVehicleStore(db store.DBTX, logger *slog.Logger) *PostgresVehicleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVehicleStore{
		db:     db,
		logger: logger.With(slog.String("component", "vehicle_store")),
	}
}

// Ensure PostgresVehicleStore implements store.VehicleStore interface
var _ store.VehicleStore = (*PostgresVehicleStore)(nil)

// Create implements store.VehicleStore.Create
// It inserts a new vehicle and fills in the store-assigned ID.
func (s *PostgresVehicleStore) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO vehicles (name, brand, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Year,
	).Scan(&vehicle.ID)

	if err != nil {
		log.Error("failed to create vehicle",
			slog.String("error", err.Error()),
			slog.String("name", vehicle.Name))
		return store.NewStoreError("vehicle", "create", "failed to insert row", MapError(err))
	}

	log.Info("vehicle created successfully",
		slog.Int64("vehicle_id", vehicle.ID))
	return nil
}

// GetByID implements store.VehicleStore.GetByID
// Returns store.ErrVehicleNotFound if the vehicle does not exist.
func (s *PostgresVehicleStore) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, brand, year
		FROM vehicles
		WHERE id = $1
	`
	var v domain.Vehicle
	err := s.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Brand, &v.Year)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrVehicleNotFound
		}
		log.Error("failed to get vehicle by id",
			slog.String("error", err.Error()),
			slog.Int64("vehicle_id", id))
		return nil, store.NewStoreError("vehicle", "get", "failed to scan row", mapped)
	}

	return &v, nil
}

// List implements store.VehicleStore.List
// Pages are 1-based; values below 1 are treated as the first page.
func (s *PostgresVehicleStore) List(ctx context.Context, page int) ([]*domain.Vehicle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * store.DefaultPageSize

	query := `
		SELECT id, name, brand, year
		FROM vehicles
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, store.DefaultPageSize, offset)
	if err != nil {
		log.Error("failed to list vehicles",
			slog.String("error", err.Error()),
			slog.Int("page", page))
		return nil, store.NewStoreError("vehicle", "list", "failed to query page", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	vehicles := []*domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, MapError(err)
		}
		vehicles = append(vehicles, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return vehicles, nil
}

// Update implements store.VehicleStore.Update
// It replaces the vehicle's name, brand and year wholesale.
// Returns store.ErrVehicleNotFound if the vehicle does not exist.
func (s *PostgresVehicleStore) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE vehicles
		SET name = $1, brand = $2, year = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Year,
		vehicle.ID,
	)
	if err != nil {
		log.Error("failed to update vehicle",
			slog.String("error", err.Error()),
			slog.Int64("vehicle_id", vehicle.ID))
		return store.NewStoreError("vehicle", "update", "failed to exec statement", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrVehicleNotFound
	}

	log.Info("vehicle updated successfully",
		slog.Int64("vehicle_id", vehicle.ID))
	return nil
}

// Delete implements store.VehicleStore.Delete
// Returns store.ErrVehicleNotFound if the vehicle does not exist, so a
// second delete of the same ID reports not-found rather than success.
func (s *PostgresVehicleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM vehicles WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete vehicle",
			slog.String("error", err.Error()),
			slog.Int64("vehicle_id", id))
		return store.NewStoreError("vehicle", "delete", "failed to exec statement", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrVehicleNotFound
	}

	log.Info("vehicle deleted successfully",
		slog.Int64("vehicle_id", id))
	return nil
}
