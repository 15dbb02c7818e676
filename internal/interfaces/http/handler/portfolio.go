package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portfolioapp "github.com/owneriq/backend/internal/application/portfolio"
	reportapp "github.com/owneriq/backend/internal/application/report"
)

// PortfolioHandler serves the portfolio dashboard and its report
type PortfolioHandler struct {
	BaseHandler
	portfolio *portfolioapp.PortfolioService
	reports   *reportapp.ReportService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolio *portfolioapp.PortfolioService, reports *reportapp.ReportService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio, reports: reports}
}

// Summary godoc
// @ID           getPortfolioSummary
// @Summary      Portfolio summary
// @Description  Totals, KPIs and properties grouped by owning entity
// @Tags         portfolio
// @Produce      json
// @Success      200 {object} APIResponse[portfolioapp.PortfolioResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /portfolio/summary [get]
func (h *PortfolioHandler) Summary(c *gin.Context) {
	resp, err := h.portfolio.Summary(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Report godoc
// @ID           getPortfolioReport
// @Summary      Portfolio report
// @Description  Markdown by default. HTML and PDF are sent as attachments.
// @Tags         portfolio
// @Produce      text/markdown
// @Produce      text/html
// @Produce      application/pdf
// @Param        format query string false "Report format" Enums(markdown, html, pdf) default(markdown)
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      501 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /portfolio/report [get]
func (h *PortfolioHandler) Report(c *gin.Context) {
	doc, err := h.reports.Render(c.Request.Context(), ownerID(c), c.Query("format"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if doc.Format != reportapp.FormatMarkdown {
		c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
