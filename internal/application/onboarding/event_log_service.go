package onboarding

import (
	"context"
	"strings"

	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RecentEventLimit is the number of entries returned by Recent
const RecentEventLimit = 100

// EventLogService records client-side onboarding events and lists the log
type EventLogService struct {
	repo   onboarding.EventLogRepository
	logger *zap.Logger
}

// NewEventLogService creates a new EventLogService
func NewEventLogService(repo onboarding.EventLogRepository, logger *zap.Logger) *EventLogService {
	return &EventLogService{repo: repo, logger: logger}
}

// Log appends a client-side event for the owner
func (s *EventLogService) Log(ctx context.Context, ownerID string, req LogEventRequest) (*LogEntryResponse, error) {
	entry, err := onboarding.NewLogEntry(ownerID, req.EventType, onboarding.EventCategory(req.EventCategory))
	if err != nil {
		return nil, err
	}
	entry.StepNumber = req.StepNumber
	entry.BatchID = req.BatchID
	entry.UploadID = req.UploadID
	entry.DocumentType = strings.TrimSpace(req.DocumentType)
	entry.Status = strings.TrimSpace(req.Status)
	entry.ErrorMessage = req.ErrorMessage
	entry.ErrorCode = req.ErrorCode
	if req.Metadata != nil {
		entry.Metadata = req.Metadata
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}
	resp := ToLogEntryResponse(entry)
	return &resp, nil
}

// Recent lists the owner's latest events, newest first
func (s *EventLogService) Recent(ctx context.Context, ownerID string) ([]LogEntryResponse, error) {
	entries, err := s.repo.FindRecent(ctx, ownerID, RecentEventLimit)
	if err != nil {
		return nil, err
	}
	out := make([]LogEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLogEntryResponse(&entries[i])
	}
	return out, nil
}

// EventLogProjector persists onboarding domain events into the event log.
// It is subscribed to the event bus; failures are logged and counted but
// never returned to the publisher.
type EventLogProjector struct {
	repo    onboarding.EventLogRepository
	metrics Metrics
	logger  *zap.Logger
}

// NewEventLogProjector creates a new EventLogProjector
func NewEventLogProjector(repo onboarding.EventLogRepository, m Metrics, logger *zap.Logger) *EventLogProjector {
	if m == nil {
		m = noopMetrics{}
	}
	return &EventLogProjector{repo: repo, metrics: m, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (p *EventLogProjector) EventTypes() []string {
	return []string{
		onboarding.EventTypeOnboardingStarted,
		onboarding.EventTypeStepCompleted,
		onboarding.EventTypeDocumentUploaded,
		onboarding.EventTypeBatchCompleted,
		onboarding.EventTypeOnboardingCompleted,
		onboarding.EventTypeProfileSaved,
	}
}

// Handle writes the event's log entry
func (p *EventLogProjector) Handle(ctx context.Context, event shared.DomainEvent) error {
	loggable, ok := event.(onboarding.Loggable)
	if !ok {
		return nil
	}
	entry := loggable.LogEntry()
	if err := p.repo.Append(ctx, entry); err != nil {
		p.metrics.EventLogFailure()
		p.logger.Error("Failed to write onboarding event log",
			zap.String("event_type", event.EventType()),
			zap.String("event_id", event.EventID().String()),
			zap.String("owner_id", event.OwnerID()),
			zap.Error(err),
		)
	}
	return nil
}
