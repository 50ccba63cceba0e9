// ABOUTME: Duration utilities for the ISO 8601 encoding used by the YouTube API
// ABOUTME: Handles formatting into display labels and short-form classification

package duration

import (
	"fmt"
	"regexp"
	"strconv"
)

// iso8601Pattern matches durations like PT5M23S, PT1H2M3S or PT45S.
// Each component is optional; absent components count as zero.
var iso8601Pattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// shortFormMaxSeconds is the upper bound for short-form classification
const shortFormMaxSeconds = 60

// parse extracts hours, minutes and seconds from an ISO 8601 duration.
// Returns false when the input does not match the expected pattern.
func parse(raw string) (hours, minutes, seconds int, ok bool) {
	match := iso8601Pattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, 0, 0, false
	}

	hours = atoiOrZero(match[1])
	minutes = atoiOrZero(match[2])
	seconds = atoiOrZero(match[3])
	return hours, minutes, seconds, true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// Format converts an ISO 8601 duration to a display label ("PT5M23S" -> "5:23").
// Durations with hours render as H:MM:SS, others as M:SS.
// Returns an empty string for unparseable input; never panics.
func Format(raw string) string {
	if raw == "" {
		return ""
	}

	hours, minutes, seconds, ok := parse(raw)
	if !ok {
		return ""
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// TotalSeconds returns the duration's total length in seconds.
// The second return value is false when the input is unparseable.
func TotalSeconds(raw string) (int, bool) {
	hours, minutes, seconds, ok := parse(raw)
	if !ok {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

// IsShortForm reports whether a duration is 60 seconds or less.
// Unparseable input classifies as long-form (returns false) rather than
// being treated as an error.
func IsShortForm(raw string) bool {
	total, ok := TotalSeconds(raw)
	if !ok {
		return false
	}
	return total <= shortFormMaxSeconds
}
