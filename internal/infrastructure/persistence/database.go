// Package persistence stores the OwnerIQ aggregates in PostgreSQL through
// GORM. Every repository query is restricted to one owner with OwnerScope.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const pingInterval = time.Second

// Database owns the connection pool shared by all repositories.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the pool and waits up to cfg.ConnectTimeout for the
// server to answer, so the API can start alongside its database container.
// A nil gormLogger silences GORM.
func NewDatabase(ctx context.Context, cfg *config.DatabaseConfig, gormLogger gormlogger.Interface) (*Database, error) {
	if gormLogger == nil {
		gormLogger = gormlogger.Discard
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	d := &Database{DB: db}

	sqlDB, err := d.SQL()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := waitForPing(ctx, sqlDB, cfg.ConnectTimeout); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// waitForPing pings once per second until the server answers or timeout
// elapses. A non-positive timeout pings exactly once.
func waitForPing(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout <= 0 {
		return db.PingContext(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("database not reachable after %s: %w", timeout, err)
		case <-ticker.C:
		}
	}
}

// SQL returns the pool under GORM for migrations and pool metrics.
func (d *Database) SQL() (*sql.DB, error) {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("underlying sql.DB: %w", err)
	}
	return sqlDB, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.SQL()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping backs the readiness probe.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.SQL()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// OwnerScope restricts a query to one owner's rows. An empty owner is a
// programming error and panics instead of returning every owner's data.
func OwnerScope(ownerID string) func(db *gorm.DB) *gorm.DB {
	if ownerID == "" {
		panic("persistence: OwnerScope called without an owner id")
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// translateError maps the errors GORM translates from the driver onto
// domain errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.ErrInUse
	default:
		return err
	}
}
