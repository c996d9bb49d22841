package config

import (
	"encoding/json"
	"os"
	"sync"
)

// Settings is the flat JSON settings file maintained by the admin console
// (an external collaborator). It carries content toggles, provider
// credentials and the free-text rotation message. Unknown keys are ignored
// so the file can grow without breaking older builds.
type Settings struct {
	ZipCode              string   `json:"zip_code"`
	WeatherAPIKey        string   `json:"weather_api_key"`
	CustomMessage        string   `json:"custom_message"`
	DisplayMode          string   `json:"display_mode"` // auto, weather_only, message_only
	EnableWeather        bool     `json:"enable_weather"`
	EnableSpringTraining bool     `json:"enable_spring_training"`
	EnableBears          bool     `json:"enable_bears"`
	EnableBearsNews      bool     `json:"enable_bears_news"`
	EnablePGA            bool     `json:"enable_pga"`
	EnablePGAFacts       bool     `json:"enable_pga_facts"`
	EnableTeamFacts      bool     `json:"enable_cubs_facts"`
	EnableTeamNews       bool     `json:"enable_cubs_news"`
	EnableBible          bool     `json:"enable_bible"`
	EnableNewsmax        bool     `json:"enable_newsmax"`
	EnableStocks         bool     `json:"enable_stocks"`
	EnableFlights        bool     `json:"enable_flights"`
	FlightLatitude       float64  `json:"flight_tracking_latitude"`
	FlightLongitude      float64  `json:"flight_tracking_longitude"`
	StockSymbols         []string `json:"stock_symbols"`
}

// DefaultSettings enables every segment and carries the traditional
// rotation message; used when the file is missing or a key is absent.
func DefaultSettings() Settings {
	return Settings{
		CustomMessage:        "GO CUBS GO! SEE YOU NEXT SEASON!",
		DisplayMode:          "auto",
		EnableWeather:        true,
		EnableSpringTraining: true,
		EnableBears:          true,
		EnableBearsNews:      true,
		EnablePGA:            true,
		EnablePGAFacts:       true,
		EnableTeamFacts:      true,
		EnableTeamNews:       true,
		EnableBible:          true,
		EnableNewsmax:        true,
		EnableStocks:         true,
		EnableFlights:        true,
		StockSymbols:         []string{"^DJI", "^GSPC", "^IXIC"},
	}
}

// SettingsStore owns the settings file. Reads are lock-guarded snapshots;
// Reload swaps the whole value so no caller observes a half-updated merge.
type SettingsStore struct {
	path string

	mu      sync.RWMutex
	current Settings
}

// NewSettingsStore reads the file at path, falling back to defaults when it
// does not exist. A present-but-malformed file is an error: settings
// problems are fatal at startup only.
func NewSettingsStore(path string) (*SettingsStore, error) {
	s := &SettingsStore{path: path, current: DefaultSettings()}
	if err := s.Reload(); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

// Get returns the current settings snapshot.
func (s *SettingsStore) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the settings file, merging onto defaults. On failure the
// previous snapshot stays in effect and the error is returned for logging.
func (s *SettingsStore) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	next := DefaultSettings()
	if err := json.Unmarshal(raw, &next); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return nil
}
