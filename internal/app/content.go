package app

import (
	"time"

	"cubs-led-scoreboard/internal/config"
	"cubs-led-scoreboard/internal/content"
	"cubs-led-scoreboard/internal/metrics"
	"cubs-led-scoreboard/internal/offseason"
)

// Feed sources for the rotation segments.
const (
	cubsNewsFeedURL  = "https://www.espn.com/espn/rss/mlb/news"
	bearsNewsFeedURL = "https://www.espn.com/espn/rss/nfl/news"
	golfNewsFeedURL  = "https://www.espn.com/espn/rss/golf/news"
	newsmaxFeedURL   = "https://www.newsmax.com/rss/Newsfront/16"
)

// Content cache windows. News and markets can lag; weather and flights go
// stale fast.
const (
	newsTTL    = 30 * time.Minute
	weatherTTL = 10 * time.Minute
	stocksTTL  = 5 * time.Minute
	flightsTTL = 2 * time.Minute
	factsTTL   = time.Hour
)

// Wrigley Field, for the default flight-tracking box.
const (
	wrigleyLatitude  = 41.9484
	wrigleyLongitude = -87.6553
)

var golfFacts = []string{
	"THE PGA TOUR PLAYS NEARLY 50 EVENTS A YEAR",
	"A REGULATION GOLF HOLE IS 4.25 INCHES WIDE",
	"THE MASTERS HAS BEEN PLAYED AT AUGUSTA SINCE 1934",
	"A DOUBLE EAGLE IS ALSO CALLED AN ALBATROSS",
}

func (a *App) buildRotator(settings *config.SettingsStore, recorder *metrics.Recorder) *offseason.Rotator {
	snap := settings.Get()
	segments := offseason.BuildSegments(snap, a.buildSources(snap), nil)
	return offseason.New(segments, a.logger, recorder)
}

func (a *App) buildSources(settings config.Settings) offseason.Sources {
	src := offseason.Sources{
		BearsNews: content.NewCached(content.NewNews(bearsNewsFeedURL, []string{"Bears"}, 0), newsTTL),
		PGA:       content.NewCached(content.NewNews(golfNewsFeedURL, nil, 0), newsTTL),
		PGAFacts:  content.Static(golfFacts...),
		TeamFacts: content.NewCached(content.NewFacts(a.cfg.FactsPath), factsTTL),
		TeamNews:  content.NewCached(content.NewNews(cubsNewsFeedURL, []string{"Cubs"}, 0), newsTTL),
		Verses:    content.NewCached(content.NewFacts(a.cfg.VersesPath), factsTTL),
		Newsmax:   content.NewCached(content.NewNews(newsmaxFeedURL, nil, 0), newsTTL),
	}

	if settings.WeatherAPIKey != "" && settings.ZipCode != "" {
		src.Weather = content.NewCached(content.NewWeather(content.WeatherConfig{
			APIKey:  settings.WeatherAPIKey,
			ZipCode: settings.ZipCode,
		}), weatherTTL)
	}

	if len(settings.StockSymbols) > 0 {
		src.Stocks = content.NewCached(content.NewStocks(content.StocksConfig{
			Symbols: settings.StockSymbols,
		}), stocksTTL)
	}

	lat, lon := settings.FlightLatitude, settings.FlightLongitude
	if lat == 0 && lon == 0 {
		lat, lon = wrigleyLatitude, wrigleyLongitude
	}
	src.Flights = content.NewCached(content.NewFlights(content.FlightsConfig{
		Latitude:  lat,
		Longitude: lon,
	}), flightsTTL)

	return src
}
