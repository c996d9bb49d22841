package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Timezone   string
}

// Client fetches schedules and live feeds from the MLB Stats API and maps
// them to domain models.
type Client struct {
	baseURL    string
	liveURL    string
	httpClient httpDoer
	loc        *time.Location
}

// NewClient constructs a Stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := normalizeBaseURL(cfg.BaseURL)
	return &Client{
		baseURL:    base,
		liveURL:    liveBaseURL(base),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		loc:        resolveLocation(cfg.Timezone),
	}
}

// Schedule retrieves the team's games for the given calendar day.
func (c *Client) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	req, err := c.buildScheduleRequest(ctx, date, teamID)
	if err != nil {
		return nil, err
	}

	var payload scheduleResponse
	if err := c.do(req, "schedule", &payload); err != nil {
		return nil, err
	}

	games := make([]domain.GameRecord, 0)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			games = append(games, mapGame(g))
		}
	}
	return games, nil
}

// LiveGame retrieves the live play snapshot for one game.
func (c *Client) LiveGame(ctx context.Context, gameID string) (providers.LiveGame, error) {
	url := fmt.Sprintf("%s/game/%s/feed/live", c.liveURL, gameID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return providers.LiveGame{}, err
	}

	var payload liveResponse
	if err := c.do(req, "live_game", &payload); err != nil {
		return providers.LiveGame{}, err
	}
	return mapLive(gameID, payload), nil
}

// Standings retrieves the division standings for the division teamID plays
// in. The standings endpoint groups records per division; the row set
// containing the team is the one the display wants.
func (c *Client) Standings(ctx context.Context, leagueID, teamID int) ([]providers.StandingRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/standings", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("leagueId", strconv.Itoa(leagueID))
	q.Set("hydrate", standingsHydrate)
	req.URL.RawQuery = q.Encode()

	var payload standingsResponse
	if err := c.do(req, "standings", &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload, teamID), nil
}

func (c *Client) buildScheduleRequest(ctx context.Context, date time.Time, teamID int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return nil, err
	}

	day := date.In(c.loc).Format("2006-01-02")
	q := req.URL.Query()
	q.Set("sportId", strconv.Itoa(sportIDMLB))
	q.Set("teamId", strconv.Itoa(teamID))
	q.Set("date", day)
	q.Set("hydrate", scheduleHydrate)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c *Client) do(req *http.Request, operation string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.UpstreamError{
			Provider:  providerName,
			Operation: operation,
			Message:   err.Error(),
			Transient: true,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.NewUpstreamError(providerName, operation, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &providers.UpstreamError{
			Provider:  providerName,
			Operation: operation,
			Message:   fmt.Sprintf("decode response: %v", err),
			Transient: false,
		}
	}
	return nil
}
