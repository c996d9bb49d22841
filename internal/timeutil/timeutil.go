package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultLocation is the ballpark's time zone. The original deployment
// displayed Chicago wall-clock times with a hardcoded UTC offset; this
// version does the conversion properly, DST included.
const DefaultLocation = "America/Chicago"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDate reports whether a and b fall on the same calendar date in the
// given location.
func SameDate(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ResolveLocation loads a named zone, falling back to UTC when the name is
// unknown and to the ballpark zone when it is empty.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		name = DefaultLocation
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// WallClock renders a UTC instant as the 12-hour ballpark wall-clock time
// shown on the pregame screens, e.g. "7:05".
func WallClock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("3:04")
}
