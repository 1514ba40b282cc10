// Package main implements a small CLI that seeds an administrator account.
// Passwords are stored as bcrypt hashes, so seed data cannot live in plain
// SQL migrations; this command hashes the password at insertion time.
//
// Usage:
//
//	FROTA_DATABASE_URL=... FROTA_AUTH_JWT_SECRET=... \
//	  seed -email adm@teste.com -password 123456 -role Admin
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver

	"github.com/frotaops/frota-api/internal/config"
	"github.com/frotaops/frota-api/internal/domain"
	"github.com/frotaops/frota-api/internal/platform/logger"
	"github.com/frotaops/frota-api/internal/platform/postgres"
	"github.com/frotaops/frota-api/internal/service/auth"
)

func main() {
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", "", "administrator password (hashed before storage)")
	roleName := flag.String("role", "Admin", "administrator role (Admin or Editor)")
	flag.Parse()

	if err := run(*email, *password, *roleName); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(email, password, roleName string) error {
	input := domain.AdministratorInput{Email: email, Password: password, Role: roleName}
	if messages := input.Validate(); len(messages) > 0 {
		return fmt.Errorf("invalid administrator: %v", messages)
	}
	role, err := domain.ParseRole(roleName)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			appLogger.Error("Error closing database connection", "error", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	hash, err := auth.NewBcryptVerifier().Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	administrator := &domain.Administrator{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	administratorStore := postgres.NewPostgresAdministratorStore(db, appLogger)
	if err := administratorStore.Create(ctx, administrator); err != nil {
		return err
	}

	appLogger.Info("administrator seeded",
		"administrator_id", administrator.ID,
		"email", administrator.Email,
		"role", administrator.Role.String())
	return nil
}
