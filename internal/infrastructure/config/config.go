// Package config reads the service configuration from config.toml and
// OWNERIQ_* environment variables with viper. Environment variables win over
// the file, and the file wins over the defaults in defaults.go.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Demo      DemoConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	Upload    UploadConfig
	Swagger   SwaggerConfig
	Telemetry TelemetryConfig
	Metrics   MetricsConfig
	Report    ReportConfig
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
	// SlowQueryThreshold logs statements slower than this at warn level
	SlowQueryThreshold time.Duration
	// ConnectTimeout bounds how long startup waits for the database
	ConnectTimeout time.Duration
}

// RedisConfig holds Redis connection settings.
// Redis only backs the upload idempotency store; when disabled an
// in-memory store is used.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig holds bearer token verification settings.
// Tokens are issued by the external auth service; this service only verifies them.
type AuthConfig struct {
	JWTSecret       string        // HS256 shared secret of the auth service
	JWKSURL         string        // when set, RS256/ES256 tokens are verified against this key set
	Issuers         []string      // accepted iss values (empty = any)
	Audience        string        // expected aud (empty = not checked)
	DevTokenTTL     time.Duration // lifetime of tokens minted by ownerctl
	DevTokenIssuer  string
	DevTokenSubject string
}

// DemoConfig enables the shared read-only demo data scope.
type DemoConfig struct {
	Enabled bool   // accept the demo token
	Token   string // bearer token accepted as the demo user
	UserID  string // user id the demo token maps to
}

type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// StorageConfig selects where uploaded documents are kept.
type StorageConfig struct {
	Provider        string // s3 or local
	Bucket          string
	Region          string
	Endpoint        string // custom endpoint for MinIO and other S3-compatible stores
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	UseSSL          bool
	PresignExpiry   time.Duration
	PublicURL       string // base URL used to build file URLs
	LocalDir        string // directory of the local provider
}

type UploadConfig struct {
	MaxFileSize       int64 // decoded bytes
	IdempotencyTTL    time.Duration
	AllowedExtensions []string
}

// SwaggerConfig guards the API docs under /swagger.
type SwaggerConfig struct {
	Enabled     bool
	RequireAuth bool     // require a bearer token
	AllowedIPs  []string // CIDR or plain IPs; empty allows all
}

// TelemetryConfig covers OTLP export and Pyroscope profiling.
type TelemetryConfig struct {
	Enabled           bool    // span export
	CollectorEndpoint string  // host:port of the OTLP/gRPC collector
	SamplingRatio     float64 // 0..1, applied to new root spans
	ServiceName       string
	Insecure          bool // plaintext gRPC, development only
	DBTraceEnabled    bool // otelgorm spans per statement
	DBLogFullSQL      bool // statement text with bound values in spans
	LogsEnabled       bool
	MetricsEnabled    bool
	MetricsInterval   time.Duration
	Profiling         ProfilingConfig
}

type ProfilingConfig struct {
	Enabled           bool
	ServerAddress     string
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string
}

// MetricsConfig exposes the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled   bool
	Path      string
	Namespace string
}

type ReportConfig struct {
	PDFEnabled     bool
	ChromeURL      string // remote debugging URL; empty starts a local headless Chrome
	RenderTimeout  time.Duration
	Currency       string
	PaperWidthInch float64
}

// Load reads ./config.toml, ./config/config.toml or
// /etc/owneriq/config.toml when one exists, then applies the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/owneriq")

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("OWNERIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:               v.GetString("database.host"),
			Port:               v.GetInt("database.port"),
			User:               v.GetString("database.user"),
			Password:           v.GetString("database.password"),
			DBName:             v.GetString("database.dbname"),
			SSLMode:            v.GetString("database.sslmode"),
			MaxOpenConns:       v.GetInt("database.max_open_conns"),
			MaxIdleConns:       v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime:    v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime:    v.GetInt("database.conn_max_idle_time"),
			SlowQueryThreshold: v.GetDuration("database.slow_query_threshold"),
			ConnectTimeout:     v.GetDuration("database.connect_timeout"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret:       v.GetString("auth.jwt_secret"),
			JWKSURL:         v.GetString("auth.jwks_url"),
			Issuers:         v.GetStringSlice("auth.issuers"),
			Audience:        v.GetString("auth.audience"),
			DevTokenTTL:     v.GetDuration("auth.dev_token_ttl"),
			DevTokenIssuer:  v.GetString("auth.dev_token_issuer"),
			DevTokenSubject: v.GetString("auth.dev_token_subject"),
		},
		Demo: DemoConfig{
			Enabled: v.GetBool("demo.enabled"),
			Token:   v.GetString("demo.token"),
			UserID:  v.GetString("demo.user_id"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			MaxBodySize:       v.GetInt64("http.max_body_size"),
			RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
			CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
		},
		Storage: StorageConfig{
			Provider:        v.GetString("storage.provider"),
			Bucket:          v.GetString("storage.bucket"),
			Region:          v.GetString("storage.region"),
			Endpoint:        v.GetString("storage.endpoint"),
			AccessKeyID:     v.GetString("storage.access_key_id"),
			SecretAccessKey: v.GetString("storage.secret_access_key"),
			UsePathStyle:    v.GetBool("storage.use_path_style"),
			UseSSL:          v.GetBool("storage.use_ssl"),
			PresignExpiry:   v.GetDuration("storage.presign_expiry"),
			PublicURL:       v.GetString("storage.public_url"),
			LocalDir:        v.GetString("storage.local_dir"),
		},
		Upload: UploadConfig{
			MaxFileSize:       v.GetInt64("upload.max_file_size"),
			IdempotencyTTL:    v.GetDuration("upload.idempotency_ttl"),
			AllowedExtensions: v.GetStringSlice("upload.allowed_extensions"),
		},
		Swagger: SwaggerConfig{
			Enabled:     v.GetBool("swagger.enabled"),
			RequireAuth: v.GetBool("swagger.require_auth"),
			AllowedIPs:  v.GetStringSlice("swagger.allowed_ips"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
			DBLogFullSQL:      v.GetBool("telemetry.db_log_full_sql"),
			LogsEnabled:       v.GetBool("telemetry.logs_enabled"),
			MetricsEnabled:    v.GetBool("telemetry.metrics_enabled"),
			MetricsInterval:   v.GetDuration("telemetry.metrics_interval"),
			Profiling: ProfilingConfig{
				Enabled:           v.GetBool("telemetry.profiling.enabled"),
				ServerAddress:     v.GetString("telemetry.profiling.server_address"),
				ApplicationName:   v.GetString("telemetry.profiling.application_name"),
				BasicAuthUser:     v.GetString("telemetry.profiling.basic_auth_user"),
				BasicAuthPassword: v.GetString("telemetry.profiling.basic_auth_password"),
			},
		},
		Metrics: MetricsConfig{
			Enabled:   v.GetBool("metrics.enabled"),
			Path:      v.GetString("metrics.path"),
			Namespace: v.GetString("metrics.namespace"),
		},
		Report: ReportConfig{
			PDFEnabled:     v.GetBool("report.pdf_enabled"),
			ChromeURL:      v.GetString("report.chrome_url"),
			RenderTimeout:  v.GetDuration("report.render_timeout"),
			Currency:       v.GetString("report.currency"),
			PaperWidthInch: v.GetFloat64("report.paper_width_inch"),
		},
	}
	if cfg.Telemetry.Profiling.ApplicationName == "" {
		cfg.Telemetry.Profiling.ApplicationName = cfg.Telemetry.ServiceName
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN renders a postgres:// URL with user and password escaped.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
