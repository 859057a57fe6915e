package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"otg-stream-overlay/internal/provider"
)

func TestProxyMarketChartForwardsVerbatim(t *testing.T) {
	market := &stubMarketProxy{up: &provider.Upstream{
		Status:      http.StatusTooManyRequests,
		Body:        []byte(`{"error":"rate limited"}`),
		ContentType: "application/json",
	}}
	r := newTestRouter(newTestHandler(&stubMetricsViewer{}, &stubSalesViewer{}, market, &stubSalesProxy{}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/market-chart?vs_currency=usd&days=7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected verbatim 429, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "rate limited") {
		t.Fatalf("expected verbatim body, got %s", w.Body.String())
	}
	if market.got.Get("days") != "7" {
		t.Fatalf("client query not forwarded: %v", market.got)
	}
}

func TestProxyMarketChartUpstreamFailure(t *testing.T) {
	market := &stubMarketProxy{err: errors.New("dial tcp: timeout")}
	r := newTestRouter(newTestHandler(&stubMetricsViewer{}, &stubSalesViewer{}, market, &stubSalesProxy{}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/market-chart", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestProxySalesMissingKeyFailsClosed(t *testing.T) {
	salesProxy := &stubSalesProxy{err: provider.ErrMissingAPIKey}
	r := newTestRouter(newTestHandler(&stubMetricsViewer{}, &stubSalesViewer{}, &stubMarketProxy{}, salesProxy))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/sales", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without key, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not configured") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestProxySalesVerbatim(t *testing.T) {
	salesProxy := &stubSalesProxy{up: &provider.Upstream{
		Status: http.StatusOK,
		Body:   []byte(`{"asset_events":[]}`),
	}}
	r := newTestRouter(newTestHandler(&stubMetricsViewer{}, &stubSalesViewer{}, &stubMarketProxy{}, salesProxy))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/sales?limit=5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type default, got %q", ct)
	}
	if w.Body.String() != `{"asset_events":[]}` {
		t.Fatalf("expected verbatim body, got %s", w.Body.String())
	}
}
