package task

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDurationHours is the duration assumed for a task without an end
// time. Every drop branch that preserves duration falls back to it.
const DefaultDurationHours = 1.0

// ParseTimeToHours parses "HH:MM" or "HH:MM:SS" into fractional hours.
// Returns false for empty or malformed input; callers must treat that as
// "no time set", not as an error.
func ParseTimeToHours(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// HoursToTimeString converts fractional hours to a zero-padded "HH:MM:SS"
// string, rounding to the nearest minute and clamping to 23:59.
func HoursToTimeString(hours float64) string {
	mins := int(math.Round(hours * 60))
	if mins < 0 {
		mins = 0
	}
	if mins > 23*60+59 {
		mins = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d:00", mins/60, mins%60)
}

// DurationHours returns end minus start in fractional hours.
// If either time is absent or malformed it returns the default one-hour
// duration.
func DurationHours(start, end string) float64 {
	s, okStart := ParseTimeToHours(start)
	e, okEnd := ParseTimeToHours(end)
	if !okStart || !okEnd {
		return DefaultDurationHours
	}
	return e - s
}
