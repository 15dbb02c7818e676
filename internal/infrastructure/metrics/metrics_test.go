package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	cfg := DefaultConfig()
	cfg.RuntimeCollectors = false
	return New(cfg)
}

func TestObserveHTTP(t *testing.T) {
	r := newTestRegistry()

	r.ObserveHTTP("GET", "/api/properties", 200, 10*time.Millisecond)
	r.ObserveHTTP("GET", "/api/properties", 201, 20*time.Millisecond)
	r.ObserveHTTP("POST", "/api/onboarding/upload", 413, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/api/properties", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("POST", "/api/onboarding/upload", "4xx")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.httpDuration))
}

func TestInFlight(t *testing.T) {
	r := newTestRegistry()

	done := r.InFlight()
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(r.httpInFlight))
}

func TestBusinessCounters(t *testing.T) {
	r := newTestRegistry()

	r.WizardEvent("submit_info", nil)
	r.WizardEvent("submit_setup", errors.New("refinanced required"))
	r.Upload("closing_alta", 2048, nil)
	r.Upload("closing_alta", 4096, errors.New("too large"))
	r.BatchCompleted()
	r.OnboardingCompleted()
	r.Idempotency("replayed")
	r.Report("pdf", nil)
	r.ScheduleGenerated()
	r.EventLogFailure()

	assert.Equal(t, 1.0, testutil.ToFloat64(r.wizardEvents.WithLabelValues("submit_info", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.wizardEvents.WithLabelValues("submit_setup", "error")))
	assert.Equal(t, 2048.0, testutil.ToFloat64(r.uploadBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.uploads.WithLabelValues("closing_alta", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.batches))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.completions))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.idempotency.WithLabelValues("replayed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.reports.WithLabelValues("pdf", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.schedules))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.eventsDropped))
}

func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveHTTP("GET", "/", 200, time.Second)
		r.InFlight()()
		r.WizardEvent("back", nil)
		r.Upload("x", 1, nil)
		r.Report("html", nil)
		r.EventLogFailure()
	})
}

func TestHandler(t *testing.T) {
	r := newTestRegistry()
	r.OnboardingCompleted()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "owneriq_onboarding_completed_total 1"))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(204))
	assert.Equal(t, "3xx", statusClass(304))
	assert.Equal(t, "4xx", statusClass(404))
	assert.Equal(t, "5xx", statusClass(503))
}
