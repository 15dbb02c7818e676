// Package migration applies the PostgreSQL schema with golang-migrate. The
// schema ships inside the binary; a directory on disk can stand in for it
// while a migration is being written.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/owneriq/backend/migrations"
	"go.uber.org/zap"
)

type Migrator struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

// Source returns the embedded migrations, or dir when it is set.
func Source(dir string) fs.FS {
	if dir == "" {
		return migrations.FS
	}
	return os.DirFS(dir)
}

// Open prepares a migrator over db reading from Source(dir). Closing the
// migrator closes db as well.
func Open(db *sql.DB, dir string, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(Source(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return &Migrator{migrate: m, logger: logger.Named("migration")}, nil
}

// apply runs one golang-migrate operation. Having nothing to do is not an
// error.
func (m *Migrator) apply(op string, fn func() error) error {
	err := fn()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("Schema already up to date", zap.String("op", op))
		return nil
	case err != nil:
		return fmt.Errorf("migrate %s: %w", op, err)
	}
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	m.logger.Info("Migration applied", zap.String("op", op), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func (m *Migrator) Up() error { return m.apply("up", m.migrate.Up) }

func (m *Migrator) Down() error { return m.apply("down", m.migrate.Down) }

// Steps moves n migrations forward, or back when n is negative.
func (m *Migrator) Steps(n int) error {
	return m.apply(fmt.Sprintf("steps %d", n), func() error { return m.migrate.Steps(n) })
}

func (m *Migrator) GoTo(version uint) error {
	return m.apply(fmt.Sprintf("goto %d", version), func() error { return m.migrate.Migrate(version) })
}

// Version reports the applied version. An empty database is version 0.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force records version as applied without running anything. It clears the
// dirty flag left by a failed migration.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", zap.Int("version", version))
	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Drop removes every table in the database.
func (m *Migrator) Drop() error {
	m.logger.Warn("Dropping all database objects")
	if err := m.migrate.Drop(); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}
	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.migrate.Close()
	return errors.Join(srcErr, dbErr)
}
