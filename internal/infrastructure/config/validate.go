package config

import (
	"errors"
	"fmt"
	"slices"
)

// validate reports every problem at once so a broken deployment can be
// fixed in one pass.
func (c *Config) validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	db := c.Database
	switch {
	case db.MaxOpenConns <= 0:
		add("database.max_open_conns must be positive")
	case db.MaxIdleConns < 0:
		add("database.max_idle_conns cannot be negative")
	case db.MaxIdleConns > db.MaxOpenConns:
		add("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)", db.MaxIdleConns, db.MaxOpenConns)
	}
	if p := c.Storage.Provider; p != "s3" && p != "local" {
		add("storage.provider must be s3 or local, got %q", p)
	}
	if c.Upload.MaxFileSize <= 0 {
		add("upload.max_file_size must be positive")
	}
	if r := c.Telemetry.SamplingRatio; r < 0 || r > 1 {
		add("telemetry.sampling_ratio must be between 0 and 1, got %g", r)
	}

	if c.IsProduction() {
		errs = append(errs, c.validateProduction()...)
	}
	return errors.Join(errs...)
}

// validateProduction rejects development conveniences.
func (c *Config) validateProduction() []error {
	var errs []error
	if c.Auth.JWKSURL == "" {
		switch {
		case c.Auth.JWTSecret == "":
			errs = append(errs, errors.New("auth.jwt_secret or auth.jwks_url is required in production"))
		case len(c.Auth.JWTSecret) < 32:
			errs = append(errs, errors.New("auth.jwt_secret must be at least 32 characters in production"))
		}
	}
	if c.Demo.Enabled {
		errs = append(errs, errors.New("demo.enabled must be false in production"))
	}
	if c.Database.Password == "" {
		errs = append(errs, errors.New("database.password is required in production"))
	}
	if c.Database.SSLMode == "disable" {
		errs = append(errs, errors.New("database.sslmode cannot be disable in production"))
	}
	if slices.Contains(c.HTTP.CORSAllowOrigins, "*") {
		errs = append(errs, errors.New("http.cors_allow_origins cannot contain * in production"))
	}
	if c.Telemetry.DBLogFullSQL {
		errs = append(errs, errors.New("telemetry.db_log_full_sql must be false in production"))
	}
	return errs
}
