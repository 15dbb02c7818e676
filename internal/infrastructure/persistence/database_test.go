package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newMockGorm opens a GORM postgres dialector over a sqlmock connection
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// newMockDatabase creates a Database instance with a mocked SQL connection
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockGorm(t)
	return &Database{DB: gormDB}, mock, mockDB
}

// setupSQLiteDB opens an in-memory SQLite database with every model migrated
func setupSQLiteDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	// every pooled connection would otherwise see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.PersonModel{},
		&models.AddressModel{},
		&models.EntityModel{},
		&models.PropertyModel{},
		&models.UtilityModel{},
		&models.ApplianceModel{},
		&models.InsurancePolicyModel{},
		&models.PropertyDocumentModel{},
		&models.OnboardingProfileModel{},
		&models.ImportBatchModel{},
		&models.DocumentTypeModel{},
		&models.DocumentUploadModel{},
		&models.OnboardingEventModel{},
		&models.MortgagePaymentModel{},
		&models.MortgageSummaryModel{},
	)
	require.NoError(t, err)
	return db
}

func TestDatabase_Ping(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	mock.ExpectPing()
	assert.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_Close(t *testing.T) {
	db, mock, _ := newMockDatabase(t)

	mock.ExpectClose()
	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_SQL(t *testing.T) {
	db, _, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	sqlDB, err := db.SQL()
	require.NoError(t, err)
	assert.Same(t, mockDB, sqlDB)
}

func TestWaitForPing(t *testing.T) {
	newPinger := func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return db, mock
	}

	t.Run("retries until the server answers", func(t *testing.T) {
		db, mock := newPinger(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing()

		require.NoError(t, waitForPing(context.Background(), db, 5*time.Second))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after the timeout", func(t *testing.T) {
		db, mock := newPinger(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err := waitForPing(context.Background(), db, 50*time.Millisecond)
		assert.ErrorContains(t, err, "database not reachable")
	})

	t.Run("zero timeout pings once", func(t *testing.T) {
		db, mock := newPinger(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		assert.Error(t, waitForPing(context.Background(), db, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOwnerScope(t *testing.T) {
	t.Run("adds owner filter", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		type Record struct {
			ID      uint
			OwnerID string
		}

		mock.ExpectQuery(`SELECT \* FROM "records" WHERE owner_id = \$1 AND id = \$2`).
			WithArgs("user-1", 7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(7, "user-1"))

		var results []Record
		err := db.DB.Scopes(OwnerScope("user-1")).Where("id = ?", 7).Find(&results).Error
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("parameterizes hostile owner ids", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		type Record struct {
			ID      uint
			OwnerID string
		}
		ownerID := "x'; DROP TABLE properties; --"

		mock.ExpectQuery(`SELECT \* FROM "records" WHERE owner_id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}))

		var results []Record
		require.NoError(t, db.DB.Scopes(OwnerScope(ownerID)).Find(&results).Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panics on empty owner", func(t *testing.T) {
		assert.Panics(t, func() { OwnerScope("") })
	})
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.Equal(t, shared.ErrNotFound, translateError(gorm.ErrRecordNotFound))
	assert.Equal(t, shared.ErrConflict, translateError(gorm.ErrDuplicatedKey))
	assert.Equal(t, shared.ErrInUse, translateError(gorm.ErrForeignKeyViolated))

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other))
}
