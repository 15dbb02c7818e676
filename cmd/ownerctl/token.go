package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/owneriq/backend/internal/infrastructure/auth"
	"github.com/owneriq/backend/internal/infrastructure/config"
)

// tokenCmd mints HS256 tokens against the configured development secret.
type tokenCmd struct {
	subject string
	email   string
	role    string
	ttl     time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "mint a development bearer token" }
func (*tokenCmd) Usage() string {
	return `ownerctl token -sub <user-id> [-email <email>] [-role <role>] [-ttl <duration>]

  Signs a token with OWNERIQ_AUTH_JWT_SECRET. Only useful when the server
  verifies tokens with the shared secret rather than a JWKS endpoint.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "sub", "", "Subject (user id) of the token.")
	f.StringVar(&c.email, "email", "", "Email claim.")
	f.StringVar(&c.role, "role", "", "Role claim.")
	f.DurationVar(&c.ttl, "ttl", 0, "Token lifetime. Zero uses the configured default.")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.subject == "" {
		fmt.Fprintln(os.Stderr, "Error: -sub is required")
		return subcommands.ExitUsageError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	token, expiresAt, err := auth.NewJWTService(cfg.Auth).GenerateToken(auth.GenerateTokenInput{
		Subject: c.subject,
		Email:   c.email,
		Role:    c.role,
		TTL:     c.ttl,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", expiresAt.Format(time.RFC3339))
	return subcommands.ExitSuccess
}
