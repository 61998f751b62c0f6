package ordering

import (
	"fmt"
	"time"

	"goldenfish/models"
)

// closureCovers reports whether the configured temporary closure is active
// for the given date. Bounds are inclusive calendar dates; a missing end date
// means the closure is open-ended.
func (e *Engine) closureCovers(date time.Time) bool {
	c := e.Config.Closure
	if !c.Enabled || c.StartDate == "" {
		return false
	}
	start, err := time.ParseInLocation(dateLayout, c.StartDate, date.Location())
	if err != nil {
		return false
	}
	day := startOfDay(date)
	if day.Before(start) {
		return false
	}
	if c.EndDate == "" {
		return true
	}
	end, err := time.ParseInLocation(dateLayout, c.EndDate, date.Location())
	if err != nil {
		return false
	}
	return !day.After(end)
}

// hoursFor resolves the opening window that applies to a date, checking the
// special-date table before the weekly default. The closure has already been
// handled by callers. A nil result means closed all day, with the reason.
func (e *Engine) hoursFor(date time.Time) (*models.DayHours, string) {
	if sd, ok := e.Config.SpecialDates[dateKey(date)]; ok {
		if !sd.Enabled || sd.Open == "" || sd.Close == "" {
			reason := sd.Reason
			if reason == "" {
				reason = "Closed today"
			}
			return nil, reason
		}
		return &models.DayHours{Open: sd.Open, Close: sd.Close, Enabled: true}, ""
	}

	hours, ok := e.Config.WeeklyHours[date.Weekday()]
	if !ok || !hours.Enabled || hours.Open == "" || hours.Close == "" {
		return nil, fmt.Sprintf("Closed on %ss", date.Weekday())
	}
	return &hours, ""
}

// openWindow turns a day's hours into concrete open/close timestamps,
// rolling the close into the next calendar day when it is at or before the
// open time (covers "00:00" and late-night closing).
func openWindow(date time.Time, hours models.DayHours) (time.Time, time.Time, error) {
	open, err := parseTimeOnDate(date, hours.Open)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse open time: %w", err)
	}
	close, err := parseTimeOnDate(date, hours.Close)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse close time: %w", err)
	}
	if !close.After(open) {
		close = close.AddDate(0, 0, 1)
	}
	return open, close, nil
}

// Status reports whether the restaurant can take orders at the given moment.
// Precedence: temporary closure, then special-date override, then weekly
// hours. Closed results carry a reason and, where one exists within the
// search horizon, the next opening time.
func (e *Engine) Status(now time.Time) models.RestaurantStatus {
	if e.closureCovers(now) {
		reason := e.Config.Closure.Reason
		if reason == "" {
			reason = "Temporarily closed"
		}
		status := models.RestaurantStatus{IsOpen: false, Reason: reason}
		if e.Config.Closure.EndDate != "" {
			status.NextOpen = e.NextOpenTime(now)
		}
		return status
	}

	// A late-night window from yesterday may still be open past midnight.
	yesterday := now.AddDate(0, 0, -1)
	if !e.closureCovers(yesterday) {
		if hours, _ := e.hoursFor(yesterday); hours != nil {
			open, close, err := openWindow(yesterday, *hours)
			if err == nil && close.After(startOfDay(now)) && now.Before(close) && !now.Before(open) {
				return models.RestaurantStatus{IsOpen: true, HoursToday: hours}
			}
		}
	}

	hours, reason := e.hoursFor(now)
	if hours == nil {
		return models.RestaurantStatus{IsOpen: false, Reason: reason, NextOpen: e.NextOpenTime(now)}
	}

	open, close, err := openWindow(now, *hours)
	if err != nil {
		return models.RestaurantStatus{IsOpen: false, Reason: "Opening hours unavailable", NextOpen: e.NextOpenTime(now)}
	}

	if now.Before(open) {
		return models.RestaurantStatus{
			IsOpen:     false,
			Reason:     fmt.Sprintf("Opens at %s", hours.Open),
			HoursToday: hours,
			NextOpen:   e.NextOpenTime(now),
		}
	}
	if !now.Before(close) {
		return models.RestaurantStatus{
			IsOpen:     false,
			Reason:     "Closed for the day",
			HoursToday: hours,
			NextOpen:   e.NextOpenTime(now),
		}
	}

	return models.RestaurantStatus{IsOpen: true, HoursToday: hours}
}
