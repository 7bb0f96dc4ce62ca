package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel_catalog/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveConversion("ok", 3*time.Millisecond)
	observability.ObserveSeasonsBuilt(4)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "catalog_http_requests_total") {
		t.Fatalf("expected catalog_http_requests_total in output")
	}
	if !strings.Contains(out, "catalog_conversions_total") {
		t.Fatalf("expected catalog_conversions_total in output")
	}
	if !strings.Contains(out, "catalog_seasons_built_total") {
		t.Fatalf("expected catalog_seasons_built_total in output")
	}
}
