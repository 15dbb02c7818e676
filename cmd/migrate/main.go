// Command migrate manages the OwnerIQ database schema. The server applies
// pending migrations on start; this tool covers everything else: rollbacks,
// forcing a dirty version and scaffolding new migration files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func main() {
	var (
		dir      string
		logLevel string
	)
	flag.StringVar(&dir, "path", "", "Migrations directory. Empty uses the migrations built into the binary.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error.")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	schema := &schemaEnv{dir: &dir}
	commander.Register(&upCmd{schemaEnv: schema}, "schema")
	commander.Register(&downCmd{schemaEnv: schema}, "schema")
	commander.Register(&stepCmd{schemaEnv: schema}, "schema")
	commander.Register(&gotoCmd{schemaEnv: schema}, "schema")
	commander.Register(&versionCmd{schemaEnv: schema}, "schema")
	commander.Register(&forceCmd{schemaEnv: schema}, "repair")
	commander.Register(&dropCmd{schemaEnv: schema}, "repair")
	commander.Register(&createCmd{dir: &dir}, "files")
	commander.Register(&listCmd{dir: &dir}, "files")

	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	schema.log = log

	status := commander.Execute(context.Background(), log)
	_ = logger.Sync(log)
	os.Exit(int(status))
}

func loggerArg(args []any) *zap.Logger {
	if len(args) > 0 {
		if log, ok := args[0].(*zap.Logger); ok {
			return log
		}
	}
	return zap.NewNop()
}
