package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	portfolioapp "github.com/owneriq/backend/internal/application/portfolio"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPortfolioSource struct {
	mock.Mock
}

func (m *MockPortfolioSource) Summary(ctx context.Context, ownerID string) (*portfolioapp.PortfolioResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolioapp.PortfolioResponse), args.Error(1)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type formatCounter struct {
	formats []string
	errs    int
}

func (c *formatCounter) Report(format string, err error) {
	c.formats = append(c.formats, format)
	if err != nil {
		c.errs++
	}
}

func samplePortfolio() *portfolioapp.PortfolioResponse {
	return &portfolioapp.PortfolioResponse{
		Currency: "USD",
		Summary: portfolioapp.SummaryResponse{
			TotalProperties: 1,
			Formatted: portfolioapp.FormattedSummary{
				TotalMarketValue: "$400,000",
				TotalEquity:      "$200,000",
				PortfolioLTV:     "50.0%",
			},
		},
		Groups: []portfolioapp.GroupResponse{{
			Key:                "personal",
			Name:               "Personal Ownership",
			PropertyCount:      1,
			TotalValueDisplay:  "$400,000",
			TotalEquityDisplay: "$200,000",
			Properties: []portfolioapp.PropertyLine{{
				ID:           uuid.New(),
				Nickname:     "Maple | Duplex",
				PropertyType: "investment",
				Address:      "12 Maple St, Austin, TX 78701",
				MarketValue:  decimal.NewFromInt(400000),
				LoanBalance:  decimal.NewFromInt(200000),
				Equity:       decimal.NewFromInt(200000),
				MonthlyRent:  decimal.NewFromInt(2500),
			}},
		}},
	}
}

func newTestService(source PortfolioSource, pdf PDFRenderer) (*ReportService, *formatCounter) {
	svc := NewReportService(source, pdf, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC) }
	counter := &formatCounter{}
	svc.SetMetrics(counter)
	return svc, counter
}

func TestMarkdown(t *testing.T) {
	md := Markdown(samplePortfolio(), time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(md, "# Portfolio Report\n"))
	assert.Contains(t, md, "| Market value | $400,000 |")
	assert.Contains(t, md, "## Personal Ownership")
	assert.Contains(t, md, "1 property, value $400,000, equity $200,000")
	assert.Contains(t, md, `| Maple \| Duplex | Investment |`)
	assert.Contains(t, md, "| $400,000 | $200,000 | $200,000 | $2,500 |")
}

func TestMarkdown_Empty(t *testing.T) {
	md := Markdown(&portfolioapp.PortfolioResponse{Currency: "USD"}, time.Now())
	assert.Contains(t, md, "No properties yet.")
}

func TestHTML(t *testing.T) {
	html, err := HTML(Markdown(samplePortfolio(), time.Now()))
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Portfolio Report</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<h2>Personal Ownership</h2>")
	assert.Contains(t, html, "Maple | Duplex")
}

func TestReportService_Render(t *testing.T) {
	ctx := context.Background()
	source := new(MockPortfolioSource)
	source.On("Summary", ctx, "user-1").Return(samplePortfolio(), nil)

	t.Run("markdown by default", func(t *testing.T) {
		svc, counter := newTestService(source, nil)
		doc, err := svc.Render(ctx, "user-1", "")
		require.NoError(t, err)
		assert.Equal(t, FormatMarkdown, doc.Format)
		assert.Equal(t, "portfolio-report-2025-03-04.md", doc.FileName)
		assert.Contains(t, string(doc.Body), "## Personal Ownership")
		assert.Equal(t, []string{"markdown"}, counter.formats)
	})

	t.Run("html", func(t *testing.T) {
		svc, _ := newTestService(source, nil)
		doc, err := svc.Render(ctx, "user-1", "HTML")
		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
		assert.Contains(t, string(doc.Body), "<h2>Personal Ownership</h2>")
	})

	t.Run("pdf disabled", func(t *testing.T) {
		svc, counter := newTestService(source, nil)
		_, err := svc.Render(ctx, "user-1", "pdf")
		assert.ErrorIs(t, err, shared.ErrNotImplemented)
		assert.Equal(t, 1, counter.errs)
	})

	t.Run("pdf", func(t *testing.T) {
		pdf := new(MockPDFRenderer)
		pdf.On("RenderPDF", mock.Anything, mock.MatchedBy(func(html string) bool {
			return strings.Contains(html, "<h1>Portfolio Report</h1>")
		})).Return([]byte("%PDF-1.4"), nil)
		svc, _ := newTestService(source, pdf)

		doc, err := svc.Render(ctx, "user-1", "pdf")
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", doc.ContentType)
		assert.Equal(t, []byte("%PDF-1.4"), doc.Body)
	})

	t.Run("pdf failure", func(t *testing.T) {
		pdf := new(MockPDFRenderer)
		pdf.On("RenderPDF", mock.Anything, mock.Anything).Return(nil, errors.New("chrome not found"))
		svc, _ := newTestService(source, pdf)

		_, err := svc.Render(ctx, "user-1", "pdf")
		assert.ErrorContains(t, err, "chrome not found")
	})

	t.Run("unknown format", func(t *testing.T) {
		svc, _ := newTestService(source, nil)
		_, err := svc.Render(ctx, "user-1", "docx")
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_FORMAT", de.Code)
	})
}
