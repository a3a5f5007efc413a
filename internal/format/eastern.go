package format

import (
	"strings"
	"time"
)

const (
	isoLayout   = "2006-01-02T15:04:05"
	easternZone = "America/New_York"
)

// easternTimestamp converts a UTC ISO-8601 string to New York civil time.
//
// The DST window is computed from the US calendar rule instead of the tz
// database: second Sunday of March 02:00 EST until first Sunday of November
// 02:00 EDT. Text after the seconds field (fractions, offsets) is ignored and
// the value is always taken as UTC. On failure the input comes back as the
// date and "-" as the time.
func easternTimestamp(iso string) (date, clock string) {
	value := strings.TrimSuffix(strings.TrimSuffix(iso, "Z"), "z")
	if len(value) < len(isoLayout) {
		return iso, "-"
	}

	utc, err := time.Parse(isoLayout, value[:len(isoLayout)])
	if err != nil {
		return iso, "-"
	}

	local := utc.Add(easternOffset(utc))
	return local.Format("2006-01-02"), local.Format("15:04:05") + " " + easternZone
}

// easternOffset returns -4h inside the DST window and -5h outside it.
func easternOffset(utc time.Time) time.Duration {
	year := utc.Year()
	start := nthSunday(year, time.March, 2).Add(7 * time.Hour)
	end := nthSunday(year, time.November, 1).Add(6 * time.Hour)

	if !utc.Before(start) && utc.Before(end) {
		return -4 * time.Hour
	}
	return -5 * time.Hour
}

// nthSunday returns 00:00 UTC of the nth Sunday of the month.
func nthSunday(year int, month time.Month, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	toSunday := (7 - int(first.Weekday())) % 7
	return first.AddDate(0, 0, toSunday+7*(n-1))
}
