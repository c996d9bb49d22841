package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2024-07-15")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-07-15" {
		t.Fatalf("FormatDate = %q, want 2024-07-15", got)
	}

	if _, err := ParseDate("07/15/2024"); err == nil {
		t.Fatal("expected error for non-canonical layout")
	}
}

func TestSameDateCrossesMidnightInLocation(t *testing.T) {
	chicago := ResolveLocation("America/Chicago")

	// 02:00 UTC is still the previous evening in Chicago.
	a := time.Date(2024, 7, 16, 2, 0, 0, 0, time.UTC)
	b := time.Date(2024, 7, 15, 18, 0, 0, 0, time.UTC)

	if !SameDate(a, b, chicago) {
		t.Fatal("expected same Chicago date")
	}
	if SameDate(a, b, time.UTC) {
		t.Fatal("expected different UTC dates")
	}
}

func TestWallClockHonorsDST(t *testing.T) {
	chicago := ResolveLocation("America/Chicago")

	// 19:05 CDT game in July is 00:05 UTC next day.
	summer := time.Date(2024, 7, 16, 0, 5, 0, 0, time.UTC)
	if got := WallClock(summer, chicago); got != "7:05" {
		t.Fatalf("summer WallClock = %q, want 7:05", got)
	}

	// Same UTC instant in January is 18:05 CST.
	winter := time.Date(2024, 1, 16, 0, 5, 0, 0, time.UTC)
	if got := WallClock(winter, chicago); got != "6:05" {
		t.Fatalf("winter WallClock = %q, want 6:05", got)
	}
}

func TestResolveLocationFallbacks(t *testing.T) {
	if loc := ResolveLocation("Not/AZone"); loc != time.UTC {
		t.Fatalf("unknown zone should fall back to UTC, got %v", loc)
	}
	if loc := ResolveLocation(""); loc.String() != DefaultLocation {
		t.Fatalf("empty zone should resolve to %s, got %v", DefaultLocation, loc)
	}
}
