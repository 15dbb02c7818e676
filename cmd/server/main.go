package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	mortgageapp "github.com/owneriq/backend/internal/application/mortgage"
	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
	ownerapp "github.com/owneriq/backend/internal/application/owner"
	ownershipapp "github.com/owneriq/backend/internal/application/ownership"
	portfolioapp "github.com/owneriq/backend/internal/application/portfolio"
	propertyapp "github.com/owneriq/backend/internal/application/property"
	reportapp "github.com/owneriq/backend/internal/application/report"
	"github.com/owneriq/backend/internal/infrastructure/auth"
	"github.com/owneriq/backend/internal/infrastructure/cache"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"github.com/owneriq/backend/internal/infrastructure/event"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"github.com/owneriq/backend/internal/infrastructure/metrics"
	"github.com/owneriq/backend/internal/infrastructure/migration"
	"github.com/owneriq/backend/internal/infrastructure/persistence"
	"github.com/owneriq/backend/internal/infrastructure/printing"
	"github.com/owneriq/backend/internal/infrastructure/storage"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"github.com/owneriq/backend/internal/interfaces/http/handler"
	"github.com/owneriq/backend/internal/interfaces/http/middleware"
	"github.com/owneriq/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/owneriq/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			OwnerIQ API
//	@version		1.0
//	@description	Property owner onboarding, portfolio and mortgage API

//	@contact.name	OwnerIQ Engineering

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting OwnerIQ backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	collector := telemetry.Collector{Endpoint: cfg.Telemetry.CollectorEndpoint, Insecure: cfg.Telemetry.Insecure}
	service := telemetry.Service{Name: cfg.Telemetry.ServiceName, Version: version, Environment: cfg.App.Env}

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:       cfg.Telemetry.Enabled,
		Collector:     collector,
		Service:       service,
		SamplingRatio: cfg.Telemetry.SamplingRatio,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:   cfg.Telemetry.LogsEnabled,
		Collector: collector,
		Service:   service,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize OTEL logs", zap.Error(err))
	}
	if level, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		log = loggerProvider.Bridge(log, level)
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:        cfg.Telemetry.MetricsEnabled,
		Collector:      collector,
		Service:        service,
		ExportInterval: cfg.Telemetry.MetricsInterval,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize OTEL metrics", zap.Error(err))
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.Profiling.Enabled,
		ServerAddress:     cfg.Telemetry.Profiling.ServerAddress,
		ApplicationName:   cfg.Telemetry.Profiling.ApplicationName,
		BasicAuthUser:     cfg.Telemetry.Profiling.BasicAuthUser,
		BasicAuthPassword: cfg.Telemetry.Profiling.BasicAuthPassword,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Database.SlowQueryThreshold))
	db, err := persistence.NewDatabase(ctx, &cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
	}, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if meterProvider.IsEnabled() {
		sqlDB, err := db.SQL()
		if err != nil {
			log.Fatal("Failed to get connection pool", zap.Error(err))
		}
		poolMetrics, err := telemetry.RegisterDBPoolMetrics(meterProvider.Meter("owneriq/db"), sqlDB)
		if err != nil {
			log.Fatal("Failed to register pool metrics", zap.Error(err))
		}
		defer func() { _ = poolMetrics.Unregister() }()
	}

	if err := runMigrations(db, log); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	var registry *metrics.Registry
	if cfg.Metrics.Enabled {
		mcfg := metrics.DefaultConfig()
		mcfg.Namespace = cfg.Metrics.Namespace
		registry = metrics.New(mcfg)
	}

	// Repositories
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	docTypeRepo := persistence.NewGormDocumentTypeRepository(db.DB)
	uploadRepo := persistence.NewGormUploadRepository(db.DB)
	eventLogRepo := persistence.NewGormEventLogRepository(db.DB)
	entityRepo := persistence.NewGormEntityRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	utilityRepo := persistence.NewGormUtilityRepository(db.DB)
	applianceRepo := persistence.NewGormApplianceRepository(db.DB)
	policyRepo := persistence.NewGormInsurancePolicyRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	scheduleRepo := persistence.NewGormScheduleRepository(db.DB)
	personRepo := persistence.NewGormPersonRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus: onboarding events are projected into the event log
	eventBus := event.NewInMemoryEventBus(log)
	projector := onboardingapp.NewEventLogProjector(eventLogRepo, onboardingMetrics(registry), log)
	eventBus.Subscribe(projector, projector.EventTypes()...)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	objectStorage, err := storage.NewObjectStorage(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	idempotencyStore, err := cache.NewIdempotencyStore(cfg.Redis, !cfg.IsProduction(), log)
	if err != nil {
		log.Fatal("Failed to initialize idempotency store", zap.Error(err))
	}
	defer func() {
		_ = idempotencyStore.Close()
	}()

	// Application services
	profileService := onboardingapp.NewProfileService(profileRepo, txScope, log)
	profileService.SetEventPublisher(eventBus)

	wizardService := onboardingapp.NewWizardService(profileRepo, batchRepo, uploadRepo, docTypeRepo, txScope, log)
	wizardService.SetEventPublisher(eventBus)

	documentService := onboardingapp.NewDocumentService(profileRepo, batchRepo, uploadRepo, docTypeRepo, txScope, objectStorage,
		onboardingapp.UploadConfig{
			MaxFileSize:       cfg.Upload.MaxFileSize,
			IdempotencyTTL:    cfg.Upload.IdempotencyTTL,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
			DownloadURLTTL:    cfg.Storage.PresignExpiry,
		}, log)
	documentService.SetEventPublisher(eventBus)
	documentService.SetIdempotencyStore(idempotencyStore)

	eventLogService := onboardingapp.NewEventLogService(eventLogRepo, log)
	entityService := ownershipapp.NewEntityService(entityRepo, propertyRepo, log)
	personService := ownerapp.NewPersonService(personRepo, addressRepo, log)
	propertyService := propertyapp.NewPropertyService(propertyapp.Repositories{
		Properties: propertyRepo,
		Entities:   entityRepo,
		Utilities:  utilityRepo,
		Appliances: applianceRepo,
		Policies:   policyRepo,
		Documents:  documentRepo,
	}, log)

	portfolioService := portfolioapp.NewPortfolioService(propertyRepo, entityRepo, log)
	portfolioService.SetCurrency(cfg.Report.Currency)

	mortgageService := mortgageapp.NewMortgageService(propertyRepo, scheduleRepo, log)

	var pdfRenderer reportapp.PDFRenderer
	if cfg.Report.PDFEnabled {
		chrome := printing.NewChrome(printing.Options{
			RemoteURL: cfg.Report.ChromeURL,
			NoSandbox: true,
			Timeout:   cfg.Report.RenderTimeout,
			Paper:     printing.Paper{Width: cfg.Report.PaperWidthInch},
			Logger:    log,
		})
		defer func() {
			_ = chrome.Close()
		}()
		pdfRenderer = chrome
	}
	reportService := reportapp.NewReportService(portfolioService, pdfRenderer, log)

	if registry != nil {
		wizardService.SetMetrics(registry)
		documentService.SetMetrics(registry)
		mortgageService.SetMetrics(registry)
		reportService.SetMetrics(registry)
	}

	verifier, err := auth.NewVerifier(ctx, cfg.Auth, cfg.Demo, log)
	if err != nil {
		log.Fatal("Failed to initialize token verifier", zap.Error(err))
	}
	if closer, ok := verifier.(auth.Closer); ok {
		defer closer.Close()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Request-scoped logger and access log
	// 4. Tracing and metrics
	// 5. Security headers, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestContextLogger(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	if registry != nil {
		engine.Use(middleware.HTTPMetrics(registry, cfg.Metrics.Path, "/health"))
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", handler.NewSystemHandler(db, version).Health)
	if registry != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(registry.Handler()))
	}

	authMiddleware := middleware.Authenticate(verifier, log)

	engine.GET("/swagger/*any",
		middleware.DocsGuard(middleware.DocsConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, authMiddleware),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine)
	r.Use(authMiddleware)
	r.Use(middleware.DataScope(middleware.DataScopeConfig{
		DemoUserID:      cfg.Demo.UserID,
		AllowDemoHeader: true,
		Logger:          log,
	}))
	if cfg.HTTP.RateLimitEnabled {
		r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	r.Use(middleware.TracingAttributeInjector())

	r.Mount(router.APIGroups(router.Handlers{
		Onboarding: handler.NewOnboardingHandler(profileService, wizardService),
		Documents:  handler.NewDocumentHandler(documentService),
		Entities:   handler.NewEntityHandler(entityService),
		Events:     handler.NewEventHandler(eventLogService),
		Properties: handler.NewPropertyHandler(propertyService),
		Persons:    handler.NewPersonHandler(personService),
		Portfolio:  handler.NewPortfolioHandler(portfolioService, reportService),
		Mortgage:   handler.NewMortgageHandler(mortgageService),
	})...)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownTimeout := cfg.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Warn("Event bus did not drain", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Tracer provider shutdown failed", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Meter provider shutdown failed", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Profiler stop failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	if err := loggerProvider.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "logger provider shutdown failed: %v\n", err)
	}
}

// runMigrations applies the embedded migrations before serving. The migrator
// is left open: closing it would close the shared *sql.DB.
func runMigrations(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.SQL()
	if err != nil {
		return err
	}
	m, err := migration.Open(sqlDB, "", log)
	if err != nil {
		return err
	}
	return m.Up()
}

// onboardingMetrics avoids handing a typed nil registry to the projector
func onboardingMetrics(r *metrics.Registry) onboardingapp.Metrics {
	if r == nil {
		return nil
	}
	return r
}
