package ordering

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseTimeOnDate combines a calendar date with an "HH:MM" string in the
// date's location.
func parseTimeOnDate(date time.Time, timeStr string) (time.Time, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour: %w", err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// dateKey formats a timestamp as its calendar date, "2006-01-02".
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// startOfDay truncates a timestamp to midnight in its location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// roundUpToInterval rounds a timestamp up to the next interval boundary,
// counted in minutes from midnight. Timestamps already on a boundary are
// left unchanged.
func roundUpToInterval(t time.Time, intervalMinutes int) time.Time {
	if intervalMinutes <= 0 {
		return t
	}
	day := startOfDay(t)
	elapsed := t.Sub(day)
	interval := time.Duration(intervalMinutes) * time.Minute
	if rem := elapsed % interval; rem != 0 {
		elapsed += interval - rem
	}
	return day.Add(elapsed)
}
