package config

// Config holds process-level runtime configuration, sourced from the
// environment. Content toggles and provider credentials live in the JSON
// settings file instead (see settings.go) so they can be changed without a
// restart.
type Config struct {
	Port         string
	Provider     string
	Driver       string
	TeamID       int
	Timezone     string
	PollInterval Duration
	TickInterval Duration
	LiveRefresh  Duration
	SettingsPath string
	FactsPath    string
	VersesPath   string
	CanvasWidth  int
	CanvasHeight int
	StatsAPI     StatsAPIConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Driver:       envOrDefault(envDriver, defaultDriver),
		TeamID:       intEnvOrDefault(envTeamID, defaultTeamID),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		TickInterval: durationEnvOrDefault(envTickInterval, defaultTickInterval),
		LiveRefresh:  durationEnvOrDefault(envLiveRefresh, defaultLiveRefresh),
		SettingsPath: envOrDefault(envSettingsPath, defaultSettingsPath),
		FactsPath:    envOrDefault(envFactsPath, defaultFactsPath),
		VersesPath:   envOrDefault(envVersesPath, defaultVersesPath),
		CanvasWidth:  intEnvOrDefault(envCanvasWidth, defaultCanvasWidth),
		CanvasHeight: intEnvOrDefault(envCanvasHeight, defaultCanvasHeight),
		StatsAPI:     loadStatsAPI(),
		Metrics:      loadMetrics(),
	}
}
