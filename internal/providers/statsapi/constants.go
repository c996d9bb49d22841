package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/Chicago"

	sportIDMLB       = 1
	scheduleHydrate  = "probablePitcher,seriesStatus"
	standingsHydrate = "team"

	providerName = "statsapi"
)
