// Package report renders the portfolio report as markdown, HTML or PDF.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	portfolioapp "github.com/owneriq/backend/internal/application/portfolio"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Report formats
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// PortfolioSource produces the portfolio a report is built from
type PortfolioSource interface {
	Summary(ctx context.Context, ownerID string) (*portfolioapp.PortfolioResponse, error)
}

// PDFRenderer prints an HTML page to PDF
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Metrics receives report counters. *metrics.Registry implements it.
type Metrics interface {
	Report(format string, err error)
}

type noopMetrics struct{}

func (noopMetrics) Report(string, error) {}

// Document is a rendered report
type Document struct {
	Format      string
	ContentType string
	FileName    string
	Body        []byte
}

// ReportService renders portfolio reports
type ReportService struct {
	portfolio PortfolioSource
	pdf       PDFRenderer
	metrics   Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewReportService creates a new ReportService. A nil pdf renderer disables
// the PDF format.
func NewReportService(portfolio PortfolioSource, pdf PDFRenderer, logger *zap.Logger) *ReportService {
	return &ReportService{
		portfolio: portfolio,
		pdf:       pdf,
		metrics:   noopMetrics{},
		logger:    logger,
		now:       time.Now,
	}
}

// SetMetrics sets the metrics sink
func (s *ReportService) SetMetrics(m Metrics) {
	if m == nil {
		m = noopMetrics{}
	}
	s.metrics = m
}

// Render builds the owner's portfolio report in the requested format.
// An empty format means markdown.
func (s *ReportService) Render(ctx context.Context, ownerID, format string) (doc *Document, err error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatMarkdown
	}
	ctx, span := telemetry.StartServiceSpan(ctx, "ReportService", "Render",
		telemetry.WithAttribute(telemetry.SpanAttrOwnerID, ownerID),
		telemetry.WithAttribute(telemetry.SpanAttrFormat, format),
	)
	defer func() {
		telemetry.End(span, err)
		s.metrics.Report(format, err)
	}()

	switch format {
	case FormatMarkdown, FormatHTML:
	case FormatPDF:
		if s.pdf == nil {
			return nil, shared.NewDomainError("NOT_IMPLEMENTED", "PDF reports are not enabled")
		}
	default:
		return nil, shared.NewDomainError("INVALID_FORMAT", "format must be markdown, html or pdf")
	}

	portfolio, err := s.portfolio.Summary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	md := Markdown(portfolio, now)
	base := "portfolio-report-" + now.Format("2006-01-02")

	if format == FormatMarkdown {
		return &Document{
			Format:      format,
			ContentType: "text/markdown; charset=utf-8",
			FileName:    base + ".md",
			Body:        []byte(md),
		}, nil
	}

	html, err := HTML(md)
	if err != nil {
		return nil, err
	}
	if format == FormatHTML {
		return &Document{
			Format:      format,
			ContentType: "text/html; charset=utf-8",
			FileName:    base + ".html",
			Body:        []byte(html),
		}, nil
	}

	pdf, err := s.pdf.RenderPDF(ctx, html)
	if err != nil {
		s.logger.Error("Failed to render PDF report", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to render pdf report: %w", err)
	}
	return &Document{
		Format:      format,
		ContentType: "application/pdf",
		FileName:    base + ".pdf",
		Body:        pdf,
	}, nil
}
