package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	defaultFlightsBaseURL = "https://opensky-network.org/api"

	// flightBoxDegrees is the half-width of the bounding box around the
	// panel's location, roughly 25km at Chicago's latitude.
	flightBoxDegrees = 0.25

	maxFlightLines = 8
)

// Flights lists aircraft currently overhead via the OpenSky states API.
type Flights struct {
	baseURL    string
	latitude   float64
	longitude  float64
	httpClient httpDoer
}

// FlightsConfig controls the flight tracker.
type FlightsConfig struct {
	BaseURL    string
	Latitude   float64
	Longitude  float64
	HTTPClient *http.Client
}

// NewFlights builds the overhead-flights provider.
func NewFlights(cfg FlightsConfig) *Flights {
	base := cfg.BaseURL
	if base == "" {
		base = defaultFlightsBaseURL
	}
	return &Flights{
		baseURL:    strings.TrimSuffix(base, "/"),
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// statesResponse carries OpenSky's positional arrays. Each state vector is
// a heterogeneous array; only callsign (1), altitude (7) and velocity (9)
// are read.
type statesResponse struct {
	States [][]any `json:"states"`
}

func (f *Flights) Fetch(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/states/all?lamin=%.4f&lomin=%.4f&lamax=%.4f&lomax=%.4f",
		f.baseURL,
		f.latitude-flightBoxDegrees, f.longitude-flightBoxDegrees,
		f.latitude+flightBoxDegrees, f.longitude+flightBoxDegrees,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flights: unexpected status %d", resp.StatusCode)
	}

	var payload statesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	lines := make([]string, 0, maxFlightLines)
	for _, vec := range payload.States {
		line, ok := formatState(vec)
		if !ok {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxFlightLines {
			break
		}
	}
	if len(lines) == 0 {
		lines = []string{"CLEAR SKIES OVERHEAD"}
	}
	return lines, nil
}

func formatState(vec []any) (string, bool) {
	if len(vec) < 10 {
		return "", false
	}
	callsign, _ := vec[1].(string)
	callsign = strings.TrimSpace(callsign)
	if callsign == "" {
		return "", false
	}
	altitude, _ := vec[7].(float64)
	velocity, _ := vec[9].(float64)

	// Meters to feet and m/s to knots.
	feet := int(altitude * 3.28084)
	knots := int(velocity * 1.94384)
	return fmt.Sprintf("%s %dFT %dKT", strings.ToUpper(callsign), feet, knots), true
}
