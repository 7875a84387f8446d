package repository

import (
	"time"
)

// timeLayout is the canonical storage format for instants.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored instant. Stored values are always written by
// formatTime; a parse failure means external corruption and surfaces as the
// zero time rather than an error, keeping reads total.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
