package ordering

import (
	"testing"
	"time"

	"goldenfish/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineAt(cfg models.RestaurantConfig, now time.Time) *Engine {
	e := NewEngine(cfg)
	e.Now = func() time.Time { return now }
	return e
}

func TestAvailableTimesFromOpening(t *testing.T) {
	now := day(3, 15, 0) // Tuesday 15:00, before opening
	e := engineAt(testConfig(), now)

	slots := e.AvailableTimes(models.ServiceDelivery, now)
	require.NotEmpty(t, slots)

	// 17:00 through 23:00 every 15 minutes, close inclusive.
	assert.Equal(t, day(3, 17, 0), slots[0])
	assert.Equal(t, day(3, 23, 0), slots[len(slots)-1])
	assert.Len(t, slots, 25)
}

func TestAvailableTimesRoundsUpToInterval(t *testing.T) {
	now := day(3, 17, 20) // Tuesday 17:20, already open
	e := engineAt(testConfig(), now)

	slots := e.AvailableTimes(models.ServiceCollection, now)
	require.NotEmpty(t, slots)

	// 17:20 + 15min lead = 17:35, rounded up to the 17:45 boundary.
	assert.Equal(t, day(3, 17, 45), slots[0])
}

func TestAvailableTimesRespectsLeadTimeAndInterval(t *testing.T) {
	now := day(3, 18, 0)
	e := engineAt(testConfig(), now)

	lead := time.Duration(e.Config.LeadTimes.DeliveryLeadTime) * time.Minute
	for _, slot := range e.AvailableTimes(models.ServiceDelivery, now) {
		assert.False(t, slot.Before(now.Add(lead)), "slot %v earlier than now+lead", slot)
		assert.Zero(t, slot.Minute()%15, "slot %v off the interval grid", slot)
	}
}

func TestAvailableTimesClosedDayIsEmpty(t *testing.T) {
	now := day(2, 12, 0) // Monday
	e := engineAt(testConfig(), now)

	assert.Empty(t, e.AvailableTimes(models.ServiceDelivery, now))
}

func TestAvailableTimesCrossesMidnight(t *testing.T) {
	now := day(6, 22, 0) // Friday 22:00
	cfg := testConfig()
	cfg.WeeklyHours[time.Friday] = models.DayHours{Open: "17:00", Close: "01:00", Enabled: true}
	e := engineAt(cfg, now)

	slots := e.AvailableTimes(models.ServiceCollection, now)
	require.NotEmpty(t, slots)
	assert.Equal(t, day(7, 1, 0), slots[len(slots)-1]) // last slot at the rolled-over close
}

func advanceConfig() models.RestaurantConfig {
	cfg := testConfig()
	cfg.AdvanceOrdering = models.AdvanceOrderingConfig{
		Enabled:               true,
		AllowClosedHourOrders: true,
		MinimumAdvanceTime:    30,
		MaxAdvanceDays:        2,
	}
	return cfg
}

func TestAdvanceOrderTimesDisabled(t *testing.T) {
	cfg := testConfig()
	e := NewEngine(cfg)

	assert.Empty(t, e.AdvanceOrderTimes(models.ServiceDelivery, day(2, 10, 0)))
}

func TestAdvanceOrderTimesSameDayOpening(t *testing.T) {
	e := NewEngine(advanceConfig())

	// Tuesday 10:00: restaurant opens later today at 17:00.
	slots := e.AdvanceOrderTimes(models.ServiceDelivery, day(3, 10, 0))
	require.NotEmpty(t, slots)

	// Day 0 starts at next opening + 30 minutes advance buffer.
	assert.Equal(t, day(3, 17, 30), slots[0])
}

func TestAdvanceOrderTimesSkipsClosedDays(t *testing.T) {
	e := NewEngine(advanceConfig())

	// Monday 10:00: Monday never opens, so the first slots are Tuesday's,
	// at opening + delivery lead time.
	slots := e.AdvanceOrderTimes(models.ServiceDelivery, day(2, 10, 0))
	require.NotEmpty(t, slots)
	assert.Equal(t, day(3, 17, 45), slots[0])
}

func TestAdvanceOrderTimesCappedAtFifty(t *testing.T) {
	cfg := advanceConfig()
	cfg.AdvanceOrdering.MaxAdvanceDays = 7
	e := NewEngine(cfg)

	slots := e.AdvanceOrderTimes(models.ServiceDelivery, day(2, 10, 0))
	assert.Len(t, slots, maxAdvanceSlots)

	horizon := day(2, 10, 0).AddDate(0, 0, cfg.AdvanceOrdering.MaxAdvanceDays+1)
	for _, slot := range slots {
		assert.True(t, slot.Before(horizon), "slot %v beyond the advance horizon", slot)
	}
}

func TestAdvanceOrderTimesNoOpeningAtAll(t *testing.T) {
	cfg := advanceConfig()
	cfg.Closure = models.TemporaryClosure{
		Enabled:   true,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	}
	e := NewEngine(cfg)

	assert.Empty(t, e.AdvanceOrderTimes(models.ServiceDelivery, day(2, 10, 0)))
}
