package onboarding

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Idempotency outcomes reported to metrics
const (
	IdempotencyClaimed  = "claimed"
	IdempotencyReplayed = "replayed"
	IdempotencyInFlight = "in_flight"
)

// ErrFileTooLarge is returned when the decoded upload exceeds the size limit
var ErrFileTooLarge = shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum upload size")

// UploadConfig holds the upload limits
type UploadConfig struct {
	MaxFileSize       int64
	IdempotencyTTL    time.Duration
	AllowedExtensions []string
	DownloadURLTTL    time.Duration
}

// DocumentService manages document batches, uploads and the document catalog
type DocumentService struct {
	profiles       onboarding.ProfileRepository
	batches        onboarding.BatchRepository
	uploads        onboarding.UploadRepository
	docTypes       onboarding.DocumentTypeRepository
	txScope        TransactionScope
	storage        ObjectStorage
	idempotency    shared.IdempotencyStore
	config         UploadConfig
	eventPublisher shared.EventPublisher
	metrics        Metrics
	logger         *zap.Logger
	now            func() time.Time
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	profiles onboarding.ProfileRepository,
	batches onboarding.BatchRepository,
	uploads onboarding.UploadRepository,
	docTypes onboarding.DocumentTypeRepository,
	txScope TransactionScope,
	storage ObjectStorage,
	cfg UploadConfig,
	logger *zap.Logger,
) *DocumentService {
	if cfg.DownloadURLTTL == 0 {
		cfg.DownloadURLTTL = 15 * time.Minute
	}
	return &DocumentService{
		profiles: profiles,
		batches:  batches,
		uploads:  uploads,
		docTypes: docTypes,
		txScope:  txScope,
		storage:  storage,
		config:   cfg,
		metrics:  noopMetrics{},
		logger:   logger,
		now:      time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *DocumentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetIdempotencyStore enables Idempotency-Key handling for uploads
func (s *DocumentService) SetIdempotencyStore(store shared.IdempotencyStore) {
	s.idempotency = store
}

// SetMetrics sets the metrics sink
func (s *DocumentService) SetMetrics(m Metrics) {
	if m == nil {
		m = noopMetrics{}
	}
	s.metrics = m
}

// ListDocumentTypes lists the catalog. A property type narrows it to the
// types shown for that kind.
func (s *DocumentService) ListDocumentTypes(ctx context.Context, propertyType string) ([]DocumentTypeResponse, error) {
	types, err := s.docTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if propertyType != "" {
		kind := property.Kind(strings.ToLower(propertyType))
		if !kind.IsValid() {
			return nil, shared.NewDomainError("INVALID_PROPERTY_TYPE", "Property type must be primary or investment")
		}
		types = onboarding.FilterTypes(types, kind)
	}

	out := make([]DocumentTypeResponse, len(types))
	for i, t := range types {
		out[i] = DocumentTypeResponse{
			DocTypeID:             t.DocTypeID,
			Name:                  t.Name,
			Description:           t.Description,
			IsRequiredForAll:      t.IsRequiredForAll,
			IsRequiredForInvestor: t.IsRequiredForInvestor,
			IsOptional:            t.IsOptional,
			SortOrder:             t.SortOrder,
		}
	}
	return out, nil
}

// ListBatches lists the owner's batches by property index
func (s *DocumentService) ListBatches(ctx context.Context, ownerID string) ([]BatchResponse, error) {
	batches, err := s.batches.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]BatchResponse, len(batches))
	for i := range batches {
		out[i] = ToBatchResponse(&batches[i])
	}
	return out, nil
}

// CreateBatch opens a batch outside the wizard
func (s *DocumentService) CreateBatch(ctx context.Context, ownerID string, req CreateBatchRequest) (*BatchResponse, error) {
	postal, err := req.Address.Postal()
	if err != nil {
		return nil, err
	}
	kind := property.Kind(req.PropertyType)
	index := req.PropertyIndex
	if index == 0 {
		index = 1
	}

	batch := onboarding.NewDocumentBatch(uuid.Nil, ownerID, kind, index)
	batch.Address = postal
	batch.Refinanced = req.Refinanced
	if req.EntityID != nil && *req.EntityID != uuid.Nil {
		id := *req.EntityID
		batch.EntityID = &id
		batch.OwnedByCompany = true
	}

	if err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if batch.EntityID != nil {
			if _, err := repos.Entities().FindByIDForOwner(ctx, ownerID, *batch.EntityID); err != nil {
				return err
			}
		}
		return repos.Batches().Save(ctx, batch)
	}); err != nil {
		return nil, err
	}

	resp := ToBatchResponse(batch)
	return &resp, nil
}

// GetBatch returns a batch with its checklist
func (s *DocumentService) GetBatch(ctx context.Context, ownerID string, batchID uuid.UUID) (*BatchDetailResponse, error) {
	batch, err := s.batches.FindByIDForOwner(ctx, ownerID, batchID)
	if err != nil {
		return nil, err
	}
	checklist, err := batchChecklist(ctx, s.docTypes, s.uploads, batch)
	if err != nil {
		return nil, err
	}
	return &BatchDetailResponse{
		BatchResponse: ToBatchResponse(batch),
		Checklist:     toChecklistResponse(checklist),
	}, nil
}

// Checklist returns the document status of a batch
func (s *DocumentService) Checklist(ctx context.Context, ownerID string, batchID uuid.UUID) ([]ChecklistItemResponse, error) {
	batch, err := s.batches.FindByIDForOwner(ctx, ownerID, batchID)
	if err != nil {
		return nil, err
	}
	checklist, err := batchChecklist(ctx, s.docTypes, s.uploads, batch)
	if err != nil {
		return nil, err
	}
	return toChecklistResponse(checklist), nil
}

// CompleteBatch closes a batch. When no batch of the owner is left open the
// profile is marked completed.
func (s *DocumentService) CompleteBatch(ctx context.Context, ownerID string, batchID uuid.UUID) (*CompleteBatchResponse, error) {
	var (
		batch        *onboarding.DocumentBatch
		profile      *onboarding.Profile
		allCompleted bool
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		batch, err = repos.Batches().FindByIDForOwner(ctx, ownerID, batchID)
		if err != nil {
			return err
		}
		if err := batch.Complete(); err != nil {
			return err
		}
		if err := repos.Batches().Save(ctx, batch); err != nil {
			return err
		}

		open, err := repos.Batches().CountOpenForOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		allCompleted = open == 0

		profile, err = repos.Profiles().FindByOwner(ctx, ownerID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			profile = onboarding.NewProfile(ownerID)
		case err != nil:
			return err
		}
		if !allCompleted || profile.IsCompleted() {
			return nil
		}
		profile.Complete()
		return repos.Profiles().Save(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.eventPublisher, collectEvents(batch, profile))
	s.metrics.BatchCompleted()
	if allCompleted {
		s.metrics.OnboardingCompleted()
	}

	return &CompleteBatchResponse{
		Batch:            ToBatchResponse(batch),
		AllCompleted:     allCompleted,
		OnboardingStatus: string(profile.Status),
		CurrentStep:      int(profile.CurrentStep),
	}, nil
}

// Upload stores one document into a batch. A non-empty idempotencyKey makes
// retries of the same request return the first result.
func (s *DocumentService) Upload(ctx context.Context, ownerID, idempotencyKey string, req UploadRequest) (resp *UploadResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "DocumentService", "Upload",
		telemetry.WithAttribute(telemetry.SpanAttrOwnerID, ownerID),
		telemetry.WithAttribute(telemetry.SpanAttrBatchID, req.BatchID.String()),
		telemetry.WithAttribute(telemetry.SpanAttrDocType, req.DocTypeID),
	)
	var size int64
	defer func() {
		s.metrics.Upload(req.DocTypeID, size, err)
		telemetry.End(span, err)
	}()

	key := ""
	if idempotencyKey != "" && s.idempotency != nil {
		key = fmt.Sprintf("upload:%s:%s", ownerID, idempotencyKey)
		replay, claimErr := s.claim(ctx, key)
		if claimErr != nil || replay != nil {
			return replay, claimErr
		}
		defer func() {
			if err != nil {
				if relErr := s.idempotency.Release(context.WithoutCancel(ctx), key); relErr != nil {
					s.logger.Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(relErr))
				}
			}
		}()
	}

	data, contentType, err := decodeFileData(req.FileData)
	if err != nil {
		return nil, err
	}
	size = int64(len(data))
	if s.config.MaxFileSize > 0 && size > s.config.MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if err := s.checkExtension(req.FileName); err != nil {
		return nil, err
	}
	if req.ContentType != "" {
		contentType = req.ContentType
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	batch, err := s.batches.FindByIDForOwner(ctx, ownerID, req.BatchID)
	if err != nil {
		return nil, err
	}
	if !batch.Uploadable() {
		return nil, onboarding.ErrBatchNotUploadable
	}
	types, err := s.docTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !knownType(types, req.DocTypeID) {
		return nil, shared.NewDomainError("INVALID_DOC_TYPE", "Unknown document type: "+req.DocTypeID)
	}

	objectKey := onboarding.ObjectKey(ownerID, batch.ID, req.FileName, s.now())
	if err := s.storage.Upload(ctx, objectKey, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	upload := onboarding.NewDocumentUpload(batch.ID, ownerID, req.DocTypeID,
		onboarding.SanitizeFileName(req.FileName), objectKey, contentType, size)
	var profile *onboarding.Profile
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		batch, err = repos.Batches().FindByIDForOwner(ctx, ownerID, req.BatchID)
		if err != nil {
			return err
		}
		if !batch.Uploadable() {
			return onboarding.ErrBatchNotUploadable
		}
		if err := repos.Uploads().Save(ctx, upload); err != nil {
			return err
		}
		stored, err := repos.Uploads().FindByBatch(ctx, batch.ID)
		if err != nil {
			return err
		}
		if err := batch.RecordUpload(onboarding.CountRequiredUploaded(types, stored, batch.PropertyType)); err != nil {
			return err
		}
		if err := repos.Batches().Save(ctx, batch); err != nil {
			return err
		}
		profile, err = repos.Profiles().FindByOwner(ctx, ownerID)
		if errors.Is(err, shared.ErrNotFound) {
			profile, err = onboarding.NewProfile(ownerID), nil
		}
		return err
	})
	if err != nil {
		if delErr := s.storage.DeleteObject(context.WithoutCancel(ctx), objectKey); delErr != nil {
			s.logger.Warn("Failed to delete orphaned document", zap.String("key", objectKey), zap.Error(delErr))
		}
		return nil, err
	}

	batch.AddDomainEvent(onboarding.NewDocumentUploadedEvent(batch, upload))
	publish(ctx, s.eventPublisher, collectEvents(batch))

	resp = &UploadResponse{
		Upload:           ToUploadResponse(upload),
		Batch:            ToBatchResponse(batch),
		OnboardingStatus: string(profile.Status),
		CurrentStep:      int(profile.CurrentStep),
	}
	if url, _, urlErr := s.storage.GenerateDownloadURL(ctx, objectKey, s.config.DownloadURLTTL); urlErr == nil {
		resp.Upload.DownloadURL = url
	}

	if key != "" {
		s.remember(ctx, key, resp)
	}
	s.logger.Info("Document uploaded",
		zap.String("owner_id", ownerID),
		zap.String("batch_id", batch.ID.String()),
		zap.String("doc_type_id", req.DocTypeID),
		zap.Int64("size", size),
	)
	return resp, nil
}

// claim takes the idempotency key. It returns the stored response when the
// key was already completed, and CONFLICT while the first request is running.
func (s *DocumentService) claim(ctx context.Context, key string) (*UploadResponse, error) {
	claimed, err := s.idempotency.MarkProcessed(ctx, key, s.config.IdempotencyTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	if claimed {
		s.metrics.Idempotency(IdempotencyClaimed)
		return nil, nil
	}

	result, ok, err := s.idempotency.Result(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read idempotency result: %w", err)
	}
	if !ok {
		s.metrics.Idempotency(IdempotencyInFlight)
		return nil, shared.NewDomainError("CONFLICT", "A request with this Idempotency-Key is still in progress")
	}
	var resp UploadResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode idempotency result: %w", err)
	}
	resp.Replayed = true
	s.metrics.Idempotency(IdempotencyReplayed)
	return &resp, nil
}

// remember stores the response of a claimed key. A failure only costs the replay.
func (s *DocumentService) remember(ctx context.Context, key string, resp *UploadResponse) {
	body, err := json.Marshal(resp)
	if err == nil {
		err = s.idempotency.Complete(ctx, key, string(body))
	}
	if err != nil {
		s.logger.Warn("Failed to store idempotency result", zap.String("key", key), zap.Error(err))
	}
}

// ValidateUpload marks an upload as validated after checking its object exists
func (s *DocumentService) ValidateUpload(ctx context.Context, ownerID string, uploadID uuid.UUID) (*UploadResponse, error) {
	upload, err := s.uploads.FindByIDForOwner(ctx, ownerID, uploadID)
	if err != nil {
		return nil, err
	}
	exists, err := s.storage.ObjectExists(ctx, upload.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("DOCUMENT_MISSING", "Uploaded file no longer exists in storage")
	}
	if err := upload.Validate(); err != nil {
		return nil, err
	}
	if err := s.uploads.Save(ctx, upload); err != nil {
		return nil, err
	}

	batch, err := s.batches.FindByIDForOwner(ctx, ownerID, upload.BatchID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if errors.Is(err, shared.ErrNotFound) {
		profile, err = onboarding.NewProfile(ownerID), nil
	}
	if err != nil {
		return nil, err
	}
	return &UploadResponse{
		Upload:           ToUploadResponse(upload),
		Batch:            ToBatchResponse(batch),
		OnboardingStatus: string(profile.Status),
		CurrentStep:      int(profile.CurrentStep),
	}, nil
}

func (s *DocumentService) checkExtension(fileName string) error {
	if len(s.config.AllowedExtensions) == 0 {
		return nil
	}
	ext := strings.ToLower(path.Ext(onboarding.SanitizeFileName(fileName)))
	for _, allowed := range s.config.AllowedExtensions {
		if strings.EqualFold(ext, allowed) || strings.EqualFold(strings.TrimPrefix(ext, "."), allowed) {
			return nil
		}
	}
	return shared.NewDomainError("UNSUPPORTED_FILE_TYPE", fmt.Sprintf("File type %q is not allowed", ext))
}

func knownType(types []onboarding.DocumentType, docTypeID string) bool {
	for _, t := range types {
		if t.DocTypeID == docTypeID {
			return true
		}
	}
	return false
}

// decodeFileData decodes base64 file data, optionally wrapped in a data URL.
// The content type of a data URL is returned.
func decodeFileData(raw string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	contentType := ""
	if strings.HasPrefix(raw, "data:") {
		header, payload, found := strings.Cut(raw, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, "", shared.NewDomainError("INVALID_FILE_DATA", "File data must be base64 encoded")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		raw = payload
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "="))
	}
	if err != nil {
		return nil, "", shared.NewDomainError("INVALID_FILE_DATA", "File data must be base64 encoded")
	}
	if len(data) == 0 {
		return nil, "", shared.NewDomainError("INVALID_FILE_DATA", "File is empty")
	}
	return data, contentType, nil
}
