package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cubs-led-scoreboard/internal/config"
	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/poller"
	"cubs-led-scoreboard/internal/state"
	"cubs-led-scoreboard/internal/timeutil"
)

// StateSource exposes the display state to the status endpoints.
type StateSource interface {
	Current() state.Snapshot
	LastError() error
}

// Handler wires the status routes to the display state.
type Handler struct {
	stateSrc StateSource
	pollerFn func() poller.Status
	settings *config.SettingsStore
	logger   *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(stateSrc StateSource, pollerFn func() poller.Status, settings *config.SettingsStore, logger *slog.Logger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		stateSrc: stateSrc,
		pollerFn: pollerFn,
		settings: settings,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the schedule poller is keeping up. The admin console
// polls this to show the board's connection health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.pollerFn == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.pollerFn()
	payload := map[string]any{
		"consecutive_failures": status.ConsecutiveFailures,
	}
	if !status.LastSuccess.IsZero() {
		payload["last_success"] = status.LastSuccess.In(h.loc).Format(time.RFC3339)
	}
	if status.LastError != "" {
		payload["last_error"] = status.LastError
	}
	if status.IsReady() {
		payload["status"] = "ready"
		h.writeJSON(w, http.StatusOK, payload)
		return
	}
	payload["status"] = "not_ready"
	h.writeJSON(w, http.StatusServiceUnavailable, payload)
}

type gamePayload struct {
	GameID         string `json:"game_id"`
	Status         string `json:"status"`
	HomeTeam       string `json:"home_team"`
	AwayTeam       string `json:"away_team"`
	HomeScore      int    `json:"home_score"`
	AwayScore      int    `json:"away_score"`
	ScheduledStart string `json:"scheduled_start,omitempty"`
	Doubleheader   string `json:"doubleheader,omitempty"`
}

type statusPayload struct {
	Screen    string       `json:"screen"`
	OffSeason bool         `json:"off_season"`
	Date      string       `json:"date,omitempty"`
	Game      *gamePayload `json:"game,omitempty"`
	LastError string       `json:"last_error,omitempty"`
}

// BoardStatus returns what the panel is showing right now.
func (h *Handler) BoardStatus(w http.ResponseWriter, r *http.Request) {
	snap := h.stateSrc.Current()
	payload := statusPayload{
		Screen:    string(snap.Screen),
		OffSeason: snap.Result.OffSeason,
	}
	if !snap.Result.Date.IsZero() {
		payload.Date = timeutil.FormatDate(snap.Result.Date)
	}
	if snap.HasGame {
		payload.Game = toGamePayload(snap.Game, h.loc)
	}
	if err := h.stateSrc.LastError(); err != nil {
		payload.LastError = err.Error()
	}
	h.writeJSON(w, http.StatusOK, payload)
}

// ReloadSettings re-reads the settings file. The admin console calls this
// after writing new toggles so they apply without a restart.
func (h *Handler) ReloadSettings(w http.ResponseWriter, r *http.Request) {
	if h.settings == nil {
		h.writeError(w, http.StatusNotFound, "settings not configured")
		return
	}
	if err := h.settings.Reload(); err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "settings reload failed", err)
		h.writeError(w, http.StatusInternalServerError, "reload failed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func toGamePayload(game domain.GameRecord, loc *time.Location) *gamePayload {
	p := &gamePayload{
		GameID:    game.GameID,
		Status:    string(game.Status),
		HomeTeam:  game.HomeTeamName,
		AwayTeam:  game.AwayTeamName,
		HomeScore: game.HomeScore,
		AwayScore: game.AwayScore,
	}
	if !game.ScheduledStart.IsZero() {
		p.ScheduledStart = game.ScheduledStart.In(loc).Format(time.RFC3339)
	}
	if game.Doubleheader != domain.DoubleheaderNone {
		p.Doubleheader = game.Doubleheader
	}
	return p
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(h.logger, "failed to encode response", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
