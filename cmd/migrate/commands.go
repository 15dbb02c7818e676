package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	_ "github.com/lib/pq"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"github.com/owneriq/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

// schemaEnv opens a migrator for the commands that touch the database.
type schemaEnv struct {
	dir *string
	log *zap.Logger
}

func (e *schemaEnv) run(ctx context.Context, fn func(*migration.Migrator) error) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		e.log.Error("Failed to load configuration", zap.Error(err))
		return subcommands.ExitFailure
	}
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		e.log.Error("Failed to open database", zap.Error(err))
		return subcommands.ExitFailure
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		e.log.Error("Database not reachable", zap.Error(err))
		return subcommands.ExitFailure
	}

	m, err := migration.Open(db, *e.dir, e.log)
	if err != nil {
		_ = db.Close()
		e.log.Error("Failed to prepare migrations", zap.Error(err))
		return subcommands.ExitFailure
	}
	defer func() { _ = m.Close() }()

	if err := fn(m); err != nil {
		e.log.Error("Migration failed", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// intArg parses the single positional argument of step, goto and force.
func intArg(f *flag.FlagSet, usage string) (int, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 0, false
	}
	n, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid number %q\n%s\n", f.Arg(0), usage)
		return 0, false
	}
	return n, true
}

type upCmd struct{ *schemaEnv }

func (*upCmd) Name() string           { return "up" }
func (*upCmd) Synopsis() string       { return "apply all pending migrations" }
func (*upCmd) Usage() string          { return "up\n" }
func (*upCmd) SetFlags(*flag.FlagSet) {}
func (c *upCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, (*migration.Migrator).Up)
}

type downCmd struct {
	*schemaEnv
	all bool
}

func (*downCmd) Name() string     { return "down" }
func (*downCmd) Synopsis() string { return "roll back every migration" }
func (*downCmd) Usage() string    { return "down -all\n\n  Use step -1 to roll back a single migration.\n" }
func (c *downCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Confirm rolling back every migration.")
}
func (c *downCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if !c.all {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	return c.run(ctx, (*migration.Migrator).Down)
}

type stepCmd struct{ *schemaEnv }

func (*stepCmd) Name() string           { return "step" }
func (*stepCmd) Synopsis() string       { return "apply n migrations, negative n rolls back" }
func (*stepCmd) Usage() string          { return "step <n>\n" }
func (*stepCmd) SetFlags(*flag.FlagSet) {}
func (c *stepCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	n, ok := intArg(f, c.Usage())
	if !ok || n == 0 {
		return subcommands.ExitUsageError
	}
	return c.run(ctx, func(m *migration.Migrator) error { return m.Steps(n) })
}

type gotoCmd struct{ *schemaEnv }

func (*gotoCmd) Name() string           { return "goto" }
func (*gotoCmd) Synopsis() string       { return "migrate up or down to a version" }
func (*gotoCmd) Usage() string          { return "goto <version>\n" }
func (*gotoCmd) SetFlags(*flag.FlagSet) {}
func (c *gotoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	v, ok := intArg(f, c.Usage())
	if !ok || v < 0 {
		return subcommands.ExitUsageError
	}
	return c.run(ctx, func(m *migration.Migrator) error { return m.GoTo(uint(v)) })
}

type versionCmd struct{ *schemaEnv }

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print the applied schema version" }
func (*versionCmd) Usage() string          { return "version\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}
func (c *versionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, func(m *migration.Migrator) error {
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version %d", version)
		if dirty {
			fmt.Print(" (dirty)")
		}
		fmt.Println()
		return nil
	})
}

type forceCmd struct{ *schemaEnv }

func (*forceCmd) Name() string     { return "force" }
func (*forceCmd) Synopsis() string { return "mark a version as applied and clear the dirty flag" }
func (*forceCmd) Usage() string {
	return "force <version>\n\n  Nothing is executed. Fix the schema by hand first.\n"
}
func (*forceCmd) SetFlags(*flag.FlagSet) {}
func (c *forceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	v, ok := intArg(f, c.Usage())
	if !ok {
		return subcommands.ExitUsageError
	}
	return c.run(ctx, func(m *migration.Migrator) error { return m.Force(v) })
}

type dropCmd struct {
	*schemaEnv
	confirm bool
}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "drop every table, data included" }
func (*dropCmd) Usage() string    { return "drop -confirm\n" }
func (c *dropCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.confirm, "confirm", false, "Required. All data is lost.")
}
func (c *dropCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if !c.confirm {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	return c.run(ctx, (*migration.Migrator).Drop)
}

type createCmd struct {
	dir         *string
	description string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "scaffold the next numbered migration pair" }
func (*createCmd) Usage() string    { return "create [-desc <text>] <name>\n" }
func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Description written into the up file header.")
}
func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	dir := *c.dir
	if dir == "" {
		dir = "migrations"
	}
	mf, err := migration.CreateMigration(dir, f.Arg(0), c.description)
	if err != nil {
		loggerArg(args).Error("Failed to create migration", zap.Error(err))
		return subcommands.ExitFailure
	}
	fmt.Println(mf.UpPath)
	fmt.Println(mf.DownPath)
	return subcommands.ExitSuccess
}

type listCmd struct{ dir *string }

func (*listCmd) Name() string           { return "list" }
func (*listCmd) Synopsis() string       { return "list the available migrations" }
func (*listCmd) Usage() string          { return "list\n" }
func (*listCmd) SetFlags(*flag.FlagSet) {}
func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	names, err := migration.ListMigrations(migration.Source(*c.dir))
	if err != nil {
		loggerArg(args).Error("Failed to list migrations", zap.Error(err))
		return subcommands.ExitFailure
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return subcommands.ExitSuccess
}
