package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"

	portfolioapp "github.com/owneriq/backend/internal/application/portfolio"
	reportapp "github.com/owneriq/backend/internal/application/report"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"github.com/owneriq/backend/internal/infrastructure/persistence"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	owner string
	raw   bool
	width int
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "render an owner's portfolio report in the terminal" }
func (*portfolioCmd) Usage() string {
	return `ownerctl portfolio -owner <user-id> [-raw] [-width <cols>]

  Builds the portfolio summary for the owner straight from the database
  and prints it as styled markdown.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "Owner (user id) to report on.")
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
	f.IntVar(&c.width, "width", 100, "Word wrap width for rendered output.")
}

func (c *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		fmt.Fprintln(os.Stderr, "Error: -owner is required")
		return subcommands.ExitUsageError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	log := zap.NewNop()
	db, err := persistence.NewDatabase(ctx, &cfg.Database, logger.NewGormLogger(log, logger.MapGormLogLevel("error")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	svc := portfolioapp.NewPortfolioService(
		persistence.NewGormPropertyRepository(db.DB),
		persistence.NewGormEntityRepository(db.DB),
		log,
	)
	svc.SetCurrency(cfg.Report.Currency)

	summary, err := svc.Summary(ctx, c.owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building portfolio for %q: %v\n", c.owner, err)
		return subcommands.ExitFailure
	}

	md := reportapp.Markdown(summary, time.Now())
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md, c.width)
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal and falls back to the plain source.
func printMarkdown(md string, width int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
