package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHealthCheck verifies the basic JSON payload and status.
func TestHealthCheck(t *testing.T) {
	gw := NewGateway(Config{}, &http.Client{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body["status"] != "healthy" || body["service"] != "api-gateway" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

// TestRouteHandler_TrackRoute proxies tracking lookups to track-svc.
func TestRouteHandler_TrackRoute(t *testing.T) {
	backendPath := ""
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	gw := NewGateway(Config{TrackSvcURL: ts.URL}, &http.Client{})

	req := httptest.NewRequest(http.MethodGet, "/api/track/101", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if backendPath != "/api/track/101" {
		t.Fatalf("expected /api/track/101, got %s", backendPath)
	}
}

// TestRouteHandler_OrderRoutes proxies everything else under /api to order-svc.
func TestRouteHandler_OrderRoutes(t *testing.T) {
	paths := []string{"/api/orders", "/api/orders/101/status", "/api/cart", "/api/restaurants"}

	for _, path := range paths {
		received := ""
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))

		gw := NewGateway(Config{OrderSvcURL: ts.URL}, &http.Client{})

		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		gw.RouteHandler(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rr.Code)
		}
		if received != path {
			t.Fatalf("%s: backend saw %s", path, received)
		}
		ts.Close()
	}
}

// TestRouteHandler_ForwardsIdentityHeaders makes sure the actor headers
// survive the hop to the backing service.
func TestRouteHandler_ForwardsIdentityHeaders(t *testing.T) {
	gotID, gotRole := "", ""
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-User-ID")
		gotRole = r.Header.Get("X-User-Role")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	gw := NewGateway(Config{OrderSvcURL: ts.URL}, &http.Client{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Role", "customer")
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	if gotID != "7" || gotRole != "customer" {
		t.Fatalf("identity headers not forwarded: id=%q role=%q", gotID, gotRole)
	}
}

// TestRouteHandler_BackendDown surfaces a 502.
func TestRouteHandler_BackendDown(t *testing.T) {
	gw := NewGateway(Config{OrderSvcURL: "http://127.0.0.1:1"}, &http.Client{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}
