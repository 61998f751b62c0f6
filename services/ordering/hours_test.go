package ordering

import (
	"testing"
	"time"

	"goldenfish/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
func day(dayOfMonth, hour, minute int) time.Time {
	return time.Date(2025, 6, dayOfMonth, hour, minute, 0, 0, time.UTC)
}

func testConfig() models.RestaurantConfig {
	return models.RestaurantConfig{
		Name: "Golden Fish",
		WeeklyHours: models.WeeklyHours{
			time.Tuesday:   {Open: "17:00", Close: "23:00", Enabled: true},
			time.Wednesday: {Open: "17:00", Close: "23:00", Enabled: true},
			time.Thursday:  {Open: "17:00", Close: "23:00", Enabled: true},
			time.Friday:    {Open: "17:00", Close: "00:00", Enabled: true},
			time.Saturday:  {Open: "17:00", Close: "00:00", Enabled: true},
			time.Sunday:    {Open: "17:00", Close: "22:30", Enabled: true},
		},
		LeadTimes: models.LeadTimeConfig{
			CollectionLeadTime: 15,
			DeliveryLeadTime:   45,
			TimeInterval:       15,
		},
		PricingMode: models.PricingByZone,
		Zones: models.DeliveryZones{
			"YO10":     {Fee: 2.50, Name: "York East"},
			"YO10 3":   {Fee: 2.00, Name: "Heslington"},
			"YO10 3BP": {Fee: 0.00, Name: "Campus"},
		},
	}
}

func TestStatusOpenWithinHours(t *testing.T) {
	e := NewEngine(testConfig())

	status := e.Status(day(3, 18, 0)) // Tuesday 18:00
	assert.True(t, status.IsOpen)
	require.NotNil(t, status.HoursToday)
	assert.Equal(t, "17:00", status.HoursToday.Open)
}

func TestStatusClosedAllDay(t *testing.T) {
	e := NewEngine(testConfig())

	status := e.Status(day(2, 18, 0)) // Monday, no hours configured
	assert.False(t, status.IsOpen)
	assert.Contains(t, status.Reason, "Monday")
	require.NotNil(t, status.NextOpen)
	assert.Equal(t, day(3, 17, 0), *status.NextOpen) // Tuesday 17:00
}

func TestStatusBeforeOpening(t *testing.T) {
	e := NewEngine(testConfig())

	status := e.Status(day(3, 12, 0)) // Tuesday noon
	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextOpen)
	assert.Equal(t, day(3, 17, 0), *status.NextOpen)
}

func TestStatusMidnightRollover(t *testing.T) {
	cfg := testConfig()
	cfg.WeeklyHours[time.Friday] = models.DayHours{Open: "17:00", Close: "01:00", Enabled: true}
	e := NewEngine(cfg)

	// Saturday 00:30 is still inside Friday's rolled-over window.
	status := e.Status(day(7, 0, 30))
	assert.True(t, status.IsOpen)

	// Once the rolled-over close passes, Saturday is closed until 17:00.
	status = e.Status(day(7, 1, 30))
	assert.False(t, status.IsOpen)
}

func TestStatusMidnightCloseIsBoundary(t *testing.T) {
	e := NewEngine(testConfig())

	// Friday closes at "00:00": Saturday 00:30 is past the boundary.
	status := e.Status(day(7, 0, 30))
	assert.False(t, status.IsOpen)

	// But 23:30 on Friday itself is open.
	status = e.Status(day(6, 23, 30))
	assert.True(t, status.IsOpen)
}

func TestStatusSpecialDateOverride(t *testing.T) {
	cfg := testConfig()
	cfg.SpecialDates = map[string]models.SpecialDate{
		"2025-06-03": {Enabled: false, Reason: "Closed for staff training"},
		"2025-06-04": {Open: "12:00", Close: "15:00", Enabled: true},
	}
	e := NewEngine(cfg)

	status := e.Status(day(3, 18, 0)) // Tuesday, normally open
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Closed for staff training", status.Reason)

	status = e.Status(day(4, 13, 0)) // Wednesday with lunch-only override
	assert.True(t, status.IsOpen)

	status = e.Status(day(4, 18, 0)) // Wednesday evening, outside the override
	assert.False(t, status.IsOpen)
}

func TestStatusTemporaryClosureWins(t *testing.T) {
	cfg := testConfig()
	cfg.SpecialDates = map[string]models.SpecialDate{
		"2025-06-04": {Open: "12:00", Close: "23:00", Enabled: true},
	}
	cfg.Closure = models.TemporaryClosure{
		Enabled:   true,
		Reason:    "Closed for refurbishment",
		StartDate: "2025-06-03",
		EndDate:   "2025-06-05",
	}
	e := NewEngine(cfg)

	// Closure overrides both the special date and weekly hours.
	status := e.Status(day(4, 13, 0))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Closed for refurbishment", status.Reason)
	require.NotNil(t, status.NextOpen)
	assert.Equal(t, day(6, 17, 0), *status.NextOpen) // Friday, first day after the window

	// The day after the closure ends behaves normally again.
	status = e.Status(day(6, 18, 0))
	assert.True(t, status.IsOpen)
}

func TestStatusUnboundedClosureHasNoNextOpen(t *testing.T) {
	cfg := testConfig()
	cfg.Closure = models.TemporaryClosure{
		Enabled:   true,
		Reason:    "Closed until further notice",
		StartDate: "2025-06-01",
	}
	e := NewEngine(cfg)

	status := e.Status(day(4, 18, 0))
	assert.False(t, status.IsOpen)
	assert.Nil(t, status.NextOpen)
}

func TestNextOpenTimeSkipsClosureAndDisabledDays(t *testing.T) {
	cfg := testConfig()
	cfg.Closure = models.TemporaryClosure{
		Enabled:   true,
		StartDate: "2025-06-03",
		EndDate:   "2025-06-04",
	}
	e := NewEngine(cfg)

	next := e.NextOpenTime(day(2, 10, 0)) // Monday morning
	require.NotNil(t, next)
	assert.Equal(t, day(5, 17, 0), *next) // Thursday: Mon closed, Tue-Wed closure
}

func TestNextOpenTimeTodayOnlyIfStillAhead(t *testing.T) {
	e := NewEngine(testConfig())

	next := e.NextOpenTime(day(3, 18, 0)) // Tuesday 18:00, already past opening
	require.NotNil(t, next)
	assert.Equal(t, day(4, 17, 0), *next) // Wednesday
}

func TestNextOpenTimeNilWhenNeverOpen(t *testing.T) {
	cfg := testConfig()
	cfg.WeeklyHours = models.WeeklyHours{}
	e := NewEngine(cfg)

	assert.Nil(t, e.NextOpenTime(day(2, 10, 0)))
}
