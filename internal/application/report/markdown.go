package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	portfolioapp "github.com/owneriq/backend/internal/application/portfolio"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Markdown renders the portfolio as a markdown document: the summary KPIs
// followed by one property table per ownership group.
func Markdown(p *portfolioapp.PortfolioResponse, generatedAt time.Time) string {
	var b strings.Builder
	s := p.Summary
	f := s.Formatted

	b.WriteString("# Portfolio Report\n\n")
	fmt.Fprintf(&b, "_Generated %s_\n\n", generatedAt.UTC().Format("January 2, 2006 15:04 MST"))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	rows := [][2]string{
		{"Properties", fmt.Sprintf("%d", s.TotalProperties)},
		{"Market value", f.TotalMarketValue},
		{"Loan balance", f.TotalLoanBalance},
		{"Equity", f.TotalEquity},
		{"Appreciation", f.TotalAppreciation},
		{"Average appreciation", f.AvgAppreciationPercent},
		{"Portfolio LTV", f.PortfolioLTV},
		{"Monthly rent", f.MonthlyRent},
		{"Annual NOI", f.AnnualNOI},
		{"Monthly cash flow", f.MonthlyCashFlow},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], r[1])
	}

	if len(p.Groups) == 0 {
		b.WriteString("\nNo properties yet.\n")
		return b.String()
	}

	currency := valueobject.Currency(p.Currency)
	title := cases.Title(language.AmericanEnglish)
	for _, g := range p.Groups {
		fmt.Fprintf(&b, "\n## %s\n\n", cell(g.Name))
		fmt.Fprintf(&b, "%d %s, value %s, equity %s\n\n", g.PropertyCount, plural(g.PropertyCount, "property", "properties"),
			g.TotalValueDisplay, g.TotalEquityDisplay)
		b.WriteString("| Property | Type | Address | Market value | Loan balance | Equity | Monthly rent |\n")
		b.WriteString("|---|---|---|---:|---:|---:|---:|\n")
		for _, line := range g.Properties {
			name := line.Nickname
			if name == "" {
				name = "Unnamed property"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				cell(name), title.String(line.PropertyType), cell(line.Address),
				money(line.MarketValue, currency), money(line.LoanBalance, currency),
				money(line.Equity, currency), money(line.MonthlyRent, currency))
		}
	}
	return b.String()
}

// markdownRenderer renders GitHub-style tables
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Portfolio Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem; color: #1f2933; }
h1 { font-size: 1.6rem; } h2 { font-size: 1.2rem; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; font-size: 0.85rem; }
th, td { border: 1px solid #d9e2ec; padding: 0.35rem 0.5rem; }
th { background: #f0f4f8; text-align: left; }
</style>
</head>
<body>
`

// HTML converts the markdown report into a standalone HTML page
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(htmlHead)
	if err := markdownRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report html: %w", err)
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.String(), nil
}

func money(d decimal.Decimal, currency valueobject.Currency) string {
	m, err := valueobject.NewMoney(d, currency)
	if err != nil {
		m = valueobject.USDAmount(d)
	}
	return m.DisplayWhole()
}

// cell escapes text for a markdown table cell
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
