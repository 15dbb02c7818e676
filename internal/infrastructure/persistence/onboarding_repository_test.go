package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProfileRepository_Upsert(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormProfileRepository(db)
	ctx := context.Background()

	_, err := repo.FindByOwner(ctx, "user-1")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	p := onboarding.NewProfile("user-1")
	p.ApplyAnswers(onboarding.Answers{
		FullName:                "Jane Doe",
		Email:                   "jane@example.com",
		UserType:                onboarding.UserTypeInvestor,
		HasPrimaryResidence:     true,
		InvestmentPropertyCount: 2,
	})
	require.NoError(t, repo.Save(ctx, p))

	batchID := uuid.New()
	p.Progress(onboarding.StepDocuments, 2, &batchID)
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, onboarding.StatusInProgress, found.Status)
	assert.Equal(t, onboarding.StepDocuments, found.CurrentStep)
	assert.Equal(t, 2, found.PropertyIndex)
	require.NotNil(t, found.CurrentBatchID)
	assert.Equal(t, batchID, *found.CurrentBatchID)
	assert.Equal(t, 3, onboarding.TotalProperties(found.Answers()))
}

func TestGormBatchRepository(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()

	first := onboarding.NewDocumentBatch(uuid.New(), "user-1", property.KindPrimary, 1)
	second := onboarding.NewDocumentBatch(uuid.New(), "user-1", property.KindInvestment, 2)
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, onboarding.NewDocumentBatch(uuid.New(), "user-2", property.KindPrimary, 1)))

	list, err := repo.FindAllForOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, 8, list[1].DocumentsRequired)

	_, err = repo.FindByIDForOwner(ctx, "user-2", first.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	first.Status = onboarding.BatchCompleted
	require.NoError(t, repo.Save(ctx, first))
	open, err := repo.CountOpenForOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), open)

	require.NoError(t, repo.ResetForOwner(ctx, "user-1"))
	reloaded, err := repo.FindByIDForOwner(ctx, "user-1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.BatchPending, reloaded.Status)
}

func TestGormDocumentTypeRepository(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormDocumentTypeRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create([]models.DocumentTypeModel{
		{DocTypeID: "lease_agreement", Name: "Lease Agreement", IsRequiredForInvestor: true, SortOrder: 8, CreatedAt: time.Now()},
		{DocTypeID: "deed", Name: "Deed", IsRequiredForAll: true, SortOrder: 7, CreatedAt: time.Now()},
	}).Error)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "deed", all[0].DocTypeID)

	lease, err := repo.FindByID(ctx, "lease_agreement")
	require.NoError(t, err)
	assert.True(t, lease.RequiredFor(property.KindInvestment))
	assert.False(t, lease.RequiredFor(property.KindPrimary))

	_, err = repo.FindByID(ctx, "passport")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUploadRepository(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormUploadRepository(db)
	ctx := context.Background()
	batchID := uuid.New()

	u := onboarding.NewDocumentUpload(batchID, "user-1", "deed", "deed.pdf", "imports/user-1/x/1_deed.pdf", "application/pdf", 2048)
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, u.Validate())
	require.NoError(t, repo.Save(ctx, u))

	list, err := repo.FindByBatch(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, onboarding.UploadValidated, list[0].UploadStatus)

	_, err = repo.FindByIDForOwner(ctx, "user-2", u.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormEventLogRepository_FindRecent(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormEventLogRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, eventType := range []string{"onboarding.started", "onboarding.step_completed", "onboarding.document_uploaded"} {
		e, err := onboarding.NewLogEntry("user-1", eventType, onboarding.CategorySystem)
		require.NoError(t, err)
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		e.Metadata = map[string]any{"step": float64(i + 1)}
		require.NoError(t, repo.Append(ctx, e))
	}

	recent, err := repo.FindRecent(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "onboarding.document_uploaded", recent[0].EventType)
	assert.Equal(t, float64(3), recent[0].Metadata["step"])

	none, err := repo.FindRecent(ctx, "user-2", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
