package telemetry

import (
	"errors"
	"fmt"
	"os"
	"sync"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"github.com/grafana/pyroscope-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

type ProfilerConfig struct {
	Enabled           bool
	ServerAddress     string // e.g. "http://pyroscope:4040"
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string
}

var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Profiler pushes continuous profiles to Pyroscope. The zero value is a
// stopped profiler.
type Profiler struct {
	mu       sync.Mutex
	profiler *pyroscope.Profiler
	logger   *zap.Logger
}

func NewProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger.Named("profiler")}
	if !cfg.Enabled {
		p.logger.Info("Continuous profiling disabled")
		return p, nil
	}

	var errs []error
	if cfg.ServerAddress == "" {
		errs = append(errs, errors.New("profiler server address is required"))
	}
	if cfg.ApplicationName == "" {
		errs = append(errs, errors.New("profiler application name is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	tags := map[string]string{}
	if host, err := os.Hostname(); err == nil {
		tags["hostname"] = host
	}

	prof, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.ApplicationName,
		ServerAddress:     cfg.ServerAddress,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		Logger:            p.logger.Sugar(),
		Tags:              tags,
		ProfileTypes:      profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	p.profiler = prof
	p.logger.Info("Continuous profiling enabled",
		zap.String("server", cfg.ServerAddress),
		zap.String("application", cfg.ApplicationName),
	)
	return p, nil
}

func (p *Profiler) IsEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profiler != nil
}

// Stop flushes the last profiles. Calling it again does nothing.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	prof := p.profiler
	p.profiler = nil
	p.mu.Unlock()

	if prof == nil {
		return nil
	}
	if err := prof.Stop(); err != nil {
		return fmt.Errorf("stop pyroscope: %w", err)
	}
	return nil
}

// EnableSpanProfiles wraps the global tracer provider so profiling samples
// carry the span id of the work they measured.
func (tp *TracerProvider) EnableSpanProfiles() {
	if tp.provider == nil {
		return
	}
	otel.SetTracerProvider(otelpyroscope.NewTracerProvider(tp.provider))
	tp.logger.Info("Span profiles enabled")
}
