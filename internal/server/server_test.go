package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cubs-led-scoreboard/internal/config"
	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/poller"
	"cubs-led-scoreboard/internal/schedule"
	"cubs-led-scoreboard/internal/state"
)

type stubState struct {
	snap state.Snapshot
	err  error
}

func (s *stubState) Current() state.Snapshot { return s.snap }
func (s *stubState) LastError() error        { return s.err }

func serve(t *testing.T, handler http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	h := NewHandler(&stubState{}, nil, nil, nil, nil)
	router := NewRouter(h, nil)

	rec := serve(t, router, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestReadyzReflectsPollerHealth(t *testing.T) {
	status := poller.Status{
		ConsecutiveFailures: 0,
		LastSuccess:         time.Now(),
	}
	h := NewHandler(&stubState{}, func() poller.Status { return status }, nil, nil, nil)
	router := NewRouter(h, nil)

	rec := serve(t, router, http.MethodGet, "/readyz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d, want 200", rec.Code)
	}

	status = poller.Status{
		ConsecutiveFailures: 5,
		LastError:           "schedule fetch failed",
	}
	rec = serve(t, router, http.MethodGet, "/readyz", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("not-ready status = %d, want 503", rec.Code)
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "not_ready" {
		t.Fatalf("body status = %v", body["status"])
	}
	if body["last_error"] != "schedule fetch failed" {
		t.Fatalf("last_error = %v", body["last_error"])
	}
}

func TestBoardStatusPayload(t *testing.T) {
	start := time.Date(2026, 8, 29, 18, 20, 0, 0, time.UTC)
	snap := state.Snapshot{
		Screen:  domain.ScreenInProgress,
		HasGame: true,
		Game: domain.GameRecord{
			GameID:         "745123",
			Status:         domain.StatusInProgress,
			HomeTeamName:   "Chicago Cubs",
			AwayTeamName:   "Milwaukee Brewers",
			HomeScore:      4,
			AwayScore:      2,
			ScheduledStart: start,
		},
		Result: schedule.Result{Date: start},
	}
	h := NewHandler(&stubState{snap: snap, err: errors.New("stale schedule")}, nil, nil, nil, time.UTC)
	router := NewRouter(h, nil)

	rec := serve(t, router, http.MethodGet, "/api/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body statusPayload
	decodeBody(t, rec, &body)
	if body.Screen != string(domain.ScreenInProgress) {
		t.Fatalf("screen = %q", body.Screen)
	}
	if body.Game == nil || body.Game.GameID != "745123" {
		t.Fatalf("game = %+v", body.Game)
	}
	if body.Game.HomeScore != 4 || body.Game.AwayScore != 2 {
		t.Fatalf("scores = %d-%d", body.Game.HomeScore, body.Game.AwayScore)
	}
	if body.Date != "2026-08-29" {
		t.Fatalf("date = %q", body.Date)
	}
	if body.LastError != "stale schedule" {
		t.Fatalf("last_error = %q", body.LastError)
	}
}

func TestBoardStatusOmitsGameWhenNoneScheduled(t *testing.T) {
	snap := state.Snapshot{
		Screen: domain.ScreenOffSeason,
		Result: schedule.Result{OffSeason: true},
	}
	h := NewHandler(&stubState{snap: snap}, nil, nil, nil, nil)
	router := NewRouter(h, nil)

	rec := serve(t, router, http.MethodGet, "/api/status", nil)
	var body statusPayload
	decodeBody(t, rec, &body)
	if !body.OffSeason {
		t.Fatal("expected off_season true")
	}
	if body.Game != nil {
		t.Fatalf("game = %+v, want nil", body.Game)
	}
}

func TestReloadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"enable_stocks": true}`), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	store, err := config.NewSettingsStore(path)
	if err != nil {
		t.Fatalf("NewSettingsStore: %v", err)
	}

	h := NewHandler(&stubState{}, nil, store, nil, nil)
	router := NewRouter(h, nil)

	if err := os.WriteFile(path, []byte(`{"enable_stocks": false}`), 0o644); err != nil {
		t.Fatalf("rewrite settings: %v", err)
	}
	rec := serve(t, router, http.MethodPost, "/api/settings/reload", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.Get().EnableStocks {
		t.Fatal("reload did not pick up the new settings")
	}

	// Reload is POST-only.
	rec = serve(t, router, http.MethodGet, "/api/settings/reload", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET reload status = %d, want 405", rec.Code)
	}
}

func TestReloadSettingsWithoutStore(t *testing.T) {
	h := NewHandler(&stubState{}, nil, nil, nil, nil)
	router := NewRouter(h, nil)

	rec := serve(t, router, http.MethodPost, "/api/settings/reload", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var sawID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawID = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	wrapped := LoggingMiddleware(nil, nil, inner)

	rec := serve(t, wrapped, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if sawID == "" {
		t.Fatal("request id missing from context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != sawID {
		t.Fatalf("header id %q != context id %q", got, sawID)
	}
}

func TestLoggingMiddlewarePreservesInboundRequestID(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := LoggingMiddleware(nil, nil, inner)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc123" {
		t.Fatalf("request id = %q, want abc123", got)
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	h := NewHandler(&stubState{}, nil, nil, nil, nil)
	srv := New("0", h, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
