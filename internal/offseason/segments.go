package offseason

import (
	"context"
	"fmt"
	"time"

	"cubs-led-scoreboard/internal/config"
	"cubs-led-scoreboard/internal/content"
)

// Segment display order and cadence. The message segment runs longer so the
// custom line and a fact both get a full pass.
const (
	segWeather   = "weather"
	segSpring    = "spring_training"
	segBears     = "bears_countdown"
	segBearsNews = "bears_news"
	segPGA       = "pga"
	segPGAFacts  = "pga_facts"
	segMessage   = "message"
	segTeamNews  = "cubs_news"
	segBible     = "bible"
	segNewsmax   = "newsmax"
	segStocks    = "stocks"
	segFlights   = "flights"

	messageDuration = 60 * time.Second
)

// springTrainingMonth/Day approximate the first Cactus League game.
const (
	springTrainingMonth = time.February
	springTrainingDay   = 21
)

// Sources carries the content providers each segment draws from. Nil entries
// leave the segment out even when its toggle is on.
type Sources struct {
	Weather   content.Provider
	BearsNews content.Provider
	PGA       content.Provider
	PGAFacts  content.Provider
	TeamFacts content.Provider
	TeamNews  content.Provider
	Verses    content.Provider
	Newsmax   content.Provider
	Stocks    content.Provider
	Flights   content.Provider
}

// BuildSegments assembles the rotation from the settings toggles, in the
// fixed display order. Season gates are attached here so the rotator itself
// stays schedule-agnostic. The display mode narrows the rotation: weather_only
// runs just the weather segment, message_only just the custom message, and
// auto the full set.
func BuildSegments(settings config.Settings, src Sources, now func() time.Time) []Segment {
	if now == nil {
		now = time.Now
	}

	var segs []Segment
	add := func(enabled bool, seg Segment) {
		if enabled && seg.Provider != nil {
			segs = append(segs, seg)
		}
	}

	message := func() Segment {
		provider := content.Static(settings.CustomMessage)
		if settings.EnableTeamFacts && src.TeamFacts != nil {
			provider = messageWithFact(settings.CustomMessage, src.TeamFacts)
		}
		return Segment{
			Name: segMessage, Title: "CUBS", Provider: provider,
			Duration: messageDuration,
		}
	}

	switch settings.DisplayMode {
	case "weather_only":
		add(true, Segment{Name: segWeather, Title: "WEATHER", Provider: src.Weather})
		if len(segs) == 0 && settings.CustomMessage != "" {
			segs = append(segs, message())
		}
		return segs
	case "message_only":
		if settings.CustomMessage != "" {
			segs = append(segs, message())
		}
		return segs
	}

	add(settings.EnableWeather, Segment{
		Name: segWeather, Title: "WEATHER", Provider: src.Weather,
	})
	add(settings.EnableBears, Segment{
		Name: segBears, Title: "BEARS", Provider: BearsCountdown(now),
		Active: FootballSeason,
	})
	add(settings.EnableBearsNews, Segment{
		Name: segBearsNews, Title: "BEARS NEWS", Provider: src.BearsNews,
		Active: FootballSeason,
	})
	add(settings.EnablePGA, Segment{
		Name: segPGA, Title: "PGA TOUR", Provider: src.PGA,
		Active: GolfSeason,
	})
	add(settings.EnablePGAFacts, Segment{
		Name: segPGAFacts, Title: "GOLF FACTS", Provider: src.PGAFacts,
		Active: GolfSeason,
	})

	if settings.CustomMessage != "" {
		segs = append(segs, message())
	}

	add(settings.EnableSpringTraining, Segment{
		Name: segSpring, Title: "SPRING TRAINING", Provider: SpringTrainingCountdown(now),
	})
	add(settings.EnableTeamNews, Segment{
		Name: segTeamNews, Title: "CUBS NEWS", Provider: src.TeamNews,
	})
	add(settings.EnableBible, Segment{
		Name: segBible, Title: "VERSE OF THE DAY", Provider: src.Verses,
	})
	add(settings.EnableNewsmax, Segment{
		Name: segNewsmax, Title: "HEADLINES", Provider: src.Newsmax,
	})
	add(settings.EnableStocks, Segment{
		Name: segStocks, Title: "MARKETS", Provider: src.Stocks,
	})
	add(settings.EnableFlights, Segment{
		Name: segFlights, Title: "OVERHEAD", Provider: src.Flights,
	})

	return segs
}

// messageWithFact prepends the custom message to one team fact per fetch.
func messageWithFact(message string, facts content.Provider) content.Provider {
	return content.ProviderFunc(func(ctx context.Context) ([]string, error) {
		lines, err := facts.Fetch(ctx)
		if err != nil || len(lines) == 0 {
			return []string{message}, nil
		}
		return append([]string{message}, lines[0]), nil
	})
}

// BearsCountdown counts down to the football season opener, taken as the
// first Sunday of September.
func BearsCountdown(now func() time.Time) content.ProviderFunc {
	return func(context.Context) ([]string, error) {
		t := now()
		if FootballSeason(t) {
			return []string{"BEARS FOOTBALL IS HERE  GO BEARS!"}, nil
		}
		opener := seasonOpener(t)
		days := int(opener.Sub(t).Hours() / 24)
		return []string{fmt.Sprintf("%d DAYS UNTIL BEARS FOOTBALL", days)}, nil
	}
}

// SpringTrainingCountdown counts down to the first Cactus League game,
// stepping from days to hours to minutes as it gets close.
func SpringTrainingCountdown(now func() time.Time) content.ProviderFunc {
	return func(context.Context) ([]string, error) {
		t := now()
		target := springTrainingDate(t)
		remaining := target.Sub(t)
		switch {
		case remaining <= 0:
			return []string{"SPRING TRAINING IS HERE!"}, nil
		case remaining >= 24*time.Hour:
			days := int(remaining.Hours() / 24)
			return []string{fmt.Sprintf("%d %s TILL SPRING TRAINING", days, plural(days, "DAY"))}, nil
		case remaining >= time.Hour:
			hours := int(remaining.Hours())
			return []string{fmt.Sprintf("%d %s TILL SPRING TRAINING", hours, plural(hours, "HOUR"))}, nil
		default:
			minutes := int(remaining.Minutes())
			if minutes < 1 {
				minutes = 1
			}
			return []string{fmt.Sprintf("%d %s TILL SPRING TRAINING", minutes, plural(minutes, "MINUTE"))}, nil
		}
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "S"
}

// springTrainingDate returns the upcoming spring training start. Once the
// current year's camp is two months gone the countdown rolls to next year.
func springTrainingDate(t time.Time) time.Time {
	target := time.Date(t.Year(), springTrainingMonth, springTrainingDay, 0, 0, 0, 0, t.Location())
	if t.After(target.AddDate(0, 2, 0)) {
		target = time.Date(t.Year()+1, springTrainingMonth, springTrainingDay, 0, 0, 0, 0, t.Location())
	}
	return target
}

// seasonOpener returns the first Sunday of September on or after t.
func seasonOpener(t time.Time) time.Time {
	year := t.Year()
	if t.Month() > time.September {
		year++
	}
	d := time.Date(year, time.September, 1, 12, 0, 0, 0, t.Location())
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
