package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockPool implements database.Pool for handler tests
type mockPool struct {
	pingErr error
}

func (m *mockPool) Ping(ctx context.Context) error { return m.pingErr }
func (m *mockPool) Close()                         {}

func TestKeepaliveRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handleKeepalive()(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != KeepaliveBody {
		t.Errorf("expected body %q, got %q", KeepaliveBody, string(body))
	}
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handleHealthz()(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != StatusOK {
		t.Errorf("expected status %q, got %q", StatusOK, resp.Status)
	}
}

func TestReadyz(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()

		handleReadyz(&mockPool{})(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}

		var resp HealthResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Status != StatusOK {
			t.Errorf("expected status %q, got %q", StatusOK, resp.Status)
		}
	})

	t.Run("database unreachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()

		handleReadyz(&mockPool{pingErr: errors.New("connection refused")})(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}

		var resp HealthResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Status != StatusUnavailable {
			t.Errorf("expected status %q, got %q", StatusUnavailable, resp.Status)
		}
		if resp.Message != ErrMsgDatabaseUnavailable {
			t.Errorf("expected message %q, got %q", ErrMsgDatabaseUnavailable, resp.Message)
		}
	})
}

func TestServerRoutes(t *testing.T) {
	srv := NewServer(0, &mockPool{})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			srv.httpServer.Handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("GET %s: expected status %d, got %d", tt.path, tt.wantStatus, rec.Code)
			}
		})
	}
}
