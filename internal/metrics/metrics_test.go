package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCalculation(t *testing.T) {
	r := New()

	r.ObserveCalculation("api", StatusOK, 3, time.Millisecond)
	r.ObserveCalculation("api", StatusOK, 2, time.Millisecond)
	r.ObserveCalculation("api", StatusInvalid, 7, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.calculations.WithLabelValues("api", StatusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.calculations.WithLabelValues("api", StatusInvalid)))
	assert.Equal(t, float64(5), testutil.ToFloat64(r.trades))
}

func TestObserveCalculation_UnknownDurationSkipped(t *testing.T) {
	r := New()
	r.ObserveCalculation("cli", StatusOK, 1, 0)
	r.ObserveCalculation("cli", StatusOK, 1, 2*time.Millisecond)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, "mateprofit_calculation_duration_seconds_count 1")
	assert.Equal(t, float64(2), testutil.ToFloat64(r.calculations.WithLabelValues("cli", StatusOK)))
}

func TestObserveHTTPRequest(t *testing.T) {
	r := New()
	r.ObserveHTTPRequest("POST", "/api/v1/profit", 200)
	r.ObserveHTTPRequest("GET", "", 404)

	assert.Equal(t, float64(1), testutil.ToFloat64(r.httpRequests.WithLabelValues("POST", "/api/v1/profit", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveCalculation("cli", StatusOK, 1, time.Second)
		r.ObserveHTTPRequest("GET", "/", 200)
	})
}

func TestHandler_Exposition(t *testing.T) {
	r := New()
	r.ObserveCalculation("cli", StatusOK, 4, time.Millisecond)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `mateprofit_calculations_total{source="cli",status="ok"} 1`), body)
	assert.Contains(t, body, "mateprofit_trades_processed_total 4")
	assert.Contains(t, body, "go_goroutines")
}
