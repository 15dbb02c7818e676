// Package portfolio serves the portfolio dashboard: KPIs over all of an
// owner's properties and subtotals per owning entity.
package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/portfolio"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PortfolioService computes portfolio summaries
type PortfolioService struct {
	properties property.PropertyRepository
	entities   ownership.EntityRepository
	format     formatter
	logger     *zap.Logger
}

// NewPortfolioService creates a new PortfolioService displaying USD
func NewPortfolioService(properties property.PropertyRepository, entities ownership.EntityRepository, logger *zap.Logger) *PortfolioService {
	return &PortfolioService{
		properties: properties,
		entities:   entities,
		format:     formatter{currency: valueobject.DefaultCurrency},
		logger:     logger,
	}
}

// SetCurrency changes the display currency. Amounts are not converted.
func (s *PortfolioService) SetCurrency(code string) {
	if code != "" {
		s.format.currency = valueobject.Currency(code)
	}
}

// Summary loads the owner's properties and entities concurrently and reduces
// them to KPIs and ownership groups
func (s *PortfolioService) Summary(ctx context.Context, ownerID string) (resp *PortfolioResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "PortfolioService", "Summary",
		telemetry.WithAttribute(telemetry.SpanAttrOwnerID, ownerID),
	)
	defer func() {
		telemetry.End(span, err)
	}()

	var (
		props    []property.Property
		entities []ownership.LegalEntity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		// zero page size loads every property in creation order
		props, err = s.properties.FindAllForOwner(gctx, ownerID, shared.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		entities, err = s.entities.FindAllForOwner(gctx, ownerID)
		return err
	})
	if err = g.Wait(); err != nil {
		s.logger.Error("Failed to load portfolio", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}

	byID := make(map[uuid.UUID]*property.Property, len(props))
	for i := range props {
		byID[props[i].ID] = &props[i]
	}
	groups := portfolio.GroupByEntity(props, entities)

	resp = &PortfolioResponse{
		Currency: string(s.format.currency),
		Summary:  s.format.summary(portfolio.Summarize(props)),
		Groups:   make([]GroupResponse, len(groups)),
	}
	for i, grp := range groups {
		resp.Groups[i] = s.format.group(grp, byID)
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrCount, len(props))
	return resp, nil
}
