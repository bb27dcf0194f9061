package suite

import (
	"testing"
	"time"
)

// GetDateTime returns a time.Time object from a string in the given zone.
// Example: GetDateTime(t, "2026-10-19 09:30", loc)
func GetDateTime(t *testing.T, incomingDateTime string, loc *time.Location) time.Time {
	t.Helper()

	dateTime, err := time.ParseInLocation("2006-01-02 15:04", incomingDateTime, loc)
	if err != nil {
		t.Fatalf("could not parse date time: %v", err)
	}
	return dateTime
}
