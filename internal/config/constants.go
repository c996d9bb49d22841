package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envDriver       = "DISPLAY_DRIVER"
	envTeamID       = "TEAM_ID"
	envTimezone     = "DISPLAY_TZ"
	envPollInterval = "POLL_INTERVAL"
	envTickInterval = "TICK_INTERVAL"
	envLiveRefresh  = "LIVE_REFRESH_INTERVAL"
	envSettingsPath = "SETTINGS_PATH"
	envFactsPath    = "FACTS_PATH"
	envVersesPath   = "VERSES_PATH"
	envCanvasWidth  = "CANVAS_WIDTH"
	envCanvasHeight = "CANVAS_HEIGHT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "statsapi"
	defaultDriver   = "terminal"
	// Cubs franchise ID in the MLB Stats API.
	defaultTeamID   = 112
	defaultTimezone = "America/Chicago"
	// Conservative schedule poll to respect the public Stats API.
	defaultPollInterval = 60 * Duration(time.Second)
	// Scroll tick; static screens repaint on the same cadence but only
	// refresh data per their own interval.
	defaultTickInterval = 20 * Duration(time.Millisecond)
	// Live box-score refresh during In Progress.
	defaultLiveRefresh  = 5 * Duration(time.Second)
	defaultSettingsPath = "config.json"
	defaultFactsPath    = "cubs_facts.json"
	defaultVersesPath   = "bible_verses.json"
	defaultCanvasWidth  = 96
	defaultCanvasHeight = 48
	defaultMetricsPort  = "9090"
)
