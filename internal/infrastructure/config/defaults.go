package config

import "time"

// defaults are registered with viper before any value is read. Keys absent
// here default to the zero value. CORS origins have no default: an empty
// list rejects every cross-origin request.
var defaults = map[string]any{
	"app.name": "owneriq-backend",
	"app.env":  "development",
	"app.port": "8080",

	"database.host":                 "localhost",
	"database.port":                 5432,
	"database.user":                 "postgres",
	"database.dbname":               "owneriq",
	"database.sslmode":              "disable",
	"database.max_open_conns":       25,
	"database.max_idle_conns":       5,
	"database.conn_max_lifetime":    60,
	"database.conn_max_idle_time":   30,
	"database.slow_query_threshold": 200 * time.Millisecond,
	"database.connect_timeout":      30 * time.Second,

	"redis.host": "localhost",
	"redis.port": 6379,

	"auth.dev_token_ttl":    24 * time.Hour,
	"auth.dev_token_issuer": "owneriq-dev",

	"demo.token":   "dummy-token",
	"demo.user_id": "dummy-id",

	"log.level":  "info",
	"log.format": "console",
	"log.output": "stdout",

	"http.read_timeout":        15 * time.Second,
	"http.write_timeout":       60 * time.Second,
	"http.idle_timeout":        60 * time.Second,
	"http.shutdown_timeout":    30 * time.Second,
	"http.max_header_bytes":    1 << 20,
	"http.max_body_size":       35 << 20, // a 25MB upload after base64
	"http.rate_limit_requests": 100,
	"http.rate_limit_window":   time.Minute,
	"http.cors_allow_methods":  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
	"http.cors_allow_headers":  []string{"Content-Type", "Authorization", "X-Request-ID", "X-Demo-Mode", "Idempotency-Key"},

	"storage.provider":       "local",
	"storage.region":         "us-east-1",
	"storage.bucket":         "owneriq-documents",
	"storage.presign_expiry": 15 * time.Minute,
	"storage.local_dir":      "./data/uploads",

	"upload.max_file_size":      25 << 20,
	"upload.idempotency_ttl":    24 * time.Hour,
	"upload.allowed_extensions": []string{".pdf", ".png", ".jpg", ".jpeg", ".heic", ".doc", ".docx", ".xls", ".xlsx", ".csv", ".txt"},

	"telemetry.collector_endpoint": "localhost:4317",
	"telemetry.sampling_ratio":     1.0,
	"telemetry.service_name":       "owneriq-backend",
	"telemetry.metrics_interval":   time.Minute,

	"metrics.path":      "/metrics",
	"metrics.namespace": "owneriq",

	"report.render_timeout":   30 * time.Second,
	"report.currency":        "USD",
	"report.paper_width_inch": 8.5,
}
