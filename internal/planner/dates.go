package planner

import (
	"strings"
	"time"
)

// LocalDateTimeLayout is the zone-less ISO-8601 form used in prompts and
// accepted from the model. Fractional seconds are tolerated on parse.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

const dateLayout = "2006-01-02"

// ParseDateTime reads an ISO-8601 date-time. Zone-less values are taken as UTC.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
