package ordering

import (
	"time"

	"goldenfish/models"
)

// maxAdvanceSlots caps advance-order generation across all days, so a
// misconfigured multi-day horizon cannot flood the slot picker.
const maxAdvanceSlots = 50

// defaultTimeInterval is the slot granularity used when none is configured,
// in minutes.
const defaultTimeInterval = 15

func (e *Engine) interval() time.Duration {
	minutes := e.Config.LeadTimes.TimeInterval
	if minutes <= 0 {
		minutes = defaultTimeInterval
	}
	return time.Duration(minutes) * time.Minute
}

// AvailableTimes returns the bookable slots for a date while the restaurant
// is (or will be) open on it: every interval-aligned time from
// max(now+leadTime, open) through close, inclusive. Closed dates yield an
// empty sequence; callers decide whether to fall back to advance ordering.
func (e *Engine) AvailableTimes(serviceType models.ServiceType, date time.Time) []time.Time {
	if e.closureCovers(date) {
		return nil
	}
	hours, _ := e.hoursFor(date)
	if hours == nil {
		return nil
	}
	open, close, err := openWindow(date, *hours)
	if err != nil {
		return nil
	}

	lead := time.Duration(e.Config.LeadTimes.LeadTime(serviceType)) * time.Minute
	earliest := e.clock().Add(lead)
	if open.After(earliest) {
		earliest = open
	}
	earliest = roundUpToInterval(earliest, e.Config.LeadTimes.TimeInterval)

	var slots []time.Time
	for t := earliest; !t.After(close); t = t.Add(e.interval()) {
		slots = append(slots, t)
	}
	return slots
}

// AdvanceOrderTimes generates slots for orders placed while the restaurant is
// closed, walking day 0 through maxAdvanceDays. Day 0 starts at the next
// opening plus the minimum advance buffer; later days start at opening plus
// the regular lead time. Days with no resolvable opening are skipped, and
// generation stops at the global slot cap.
func (e *Engine) AdvanceOrderTimes(serviceType models.ServiceType, from time.Time) []time.Time {
	adv := e.Config.AdvanceOrdering
	if !adv.Enabled || !adv.AllowClosedHourOrders {
		return nil
	}

	lead := time.Duration(e.Config.LeadTimes.LeadTime(serviceType)) * time.Minute
	var slots []time.Time

	for offset := 0; offset <= adv.MaxAdvanceDays; offset++ {
		day := from.AddDate(0, 0, offset)
		if e.closureCovers(day) {
			continue
		}
		hours, _ := e.hoursFor(day)
		if hours == nil {
			continue
		}
		open, close, err := openWindow(day, *hours)
		if err != nil {
			continue
		}

		var earliest time.Time
		if offset == 0 {
			next := e.NextOpenTime(from)
			if next == nil || dateKey(*next) != dateKey(day) {
				continue
			}
			earliest = next.Add(time.Duration(adv.MinimumAdvanceTime) * time.Minute)
		} else {
			earliest = open.Add(lead)
		}
		earliest = roundUpToInterval(earliest, e.Config.LeadTimes.TimeInterval)

		for t := earliest; !t.After(close); t = t.Add(e.interval()) {
			slots = append(slots, t)
			if len(slots) >= maxAdvanceSlots {
				return slots
			}
		}
	}
	return slots
}
