package db

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"coach-booking-api/internal/pkg/config"
	"coach-booking-api/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var ErrMigrationsNotFound = errs.New("migrations directory not found")

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies every migration under dir in the given direction.
// Running when already at the target version is not an error.
func Migrate(cfg config.DBConfig, dir string, direction Direction) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errs.Wrap(err, "failed to resolve migrations path")
	}

	m, err := migrate.New("file://"+abs, cfg.BuildDSN())
	if err != nil {
		return errs.Wrap(err, "failed to init migrations")
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	switch direction {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrapf(err, "migration %s failed", direction)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		slog.Info("migrations applied", "direction", direction, "version", version, "dirty", dirty)
	}
	return nil
}

// FindMigrationsDir walks up from the working directory looking for a
// migrations folder.
func FindMigrationsDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errs.Wrap(err, "failed to get working directory")
	}
	current := cwd
	for range 6 {
		candidate := filepath.Join(current, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", ErrMigrationsNotFound
}
