package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/auth"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/config"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/dashboard"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/healthlog"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "secret", ServerPort: ":0", SessionTTL: time.Hour, Timezone: "UTC"}
}

func TestHealthRoute(t *testing.T) {
	s := NewServer(testConfig(), nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestLogsWithoutDatabase(t *testing.T) {
	s := NewServer(testConfig(), nil, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/logs/", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for empty history: %v", err)
	}
	var records []healthlog.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil || len(records) != 0 {
		t.Fatalf("expected empty history, got %v (%v)", records, err)
	}
}

func TestDashboardRequiresToken(t *testing.T) {
	s := NewServer(testConfig(), nil, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/dashboard/", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionFlowWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewServer(testConfig(), nil, client)
	defer s.Stream.Close()

	resp, err := s.App.Test(httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("start session failed: %v", err)
	}
	var tokens auth.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		t.Fatalf("decode tokens: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/dashboard/workouts", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	resp, err = s.App.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("workout failed: %v", err)
	}
	var view dashboard.Dashboard
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.SessionID != tokens.SessionID || view.State.MicroWorkouts != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if !mr.Exists("session:" + tokens.SessionID + ":state") {
		t.Fatalf("expected session state in redis")
	}

	req = httptest.NewRequest(http.MethodPost, "/dashboard/save", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	resp, err = s.App.Test(req)
	if err != nil || resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected save to fail without a database")
	}
}

func TestItineraryRoute(t *testing.T) {
	s := NewServer(testConfig(), nil, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/itinerary/?date=2026-07-10&days=1", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200: %v", err)
	}
}
