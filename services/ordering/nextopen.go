package ordering

import "time"

// nextOpenHorizonDays bounds the forward scan for the next opening. Anything
// further out is reported as "no opening found" and the caller surfaces an
// indefinite closure.
const nextOpenHorizonDays = 14

// NextOpenTime scans forward day by day for the next moment the restaurant
// opens, honouring temporary closures and special-date overrides. For the
// first day only openings still ahead of `from` count. Returns nil when no
// opening exists within the horizon.
func (e *Engine) NextOpenTime(from time.Time) *time.Time {
	for i := 0; i < nextOpenHorizonDays; i++ {
		day := from.AddDate(0, 0, i)
		if e.closureCovers(day) {
			continue
		}
		hours, _ := e.hoursFor(day)
		if hours == nil {
			continue
		}
		open, err := parseTimeOnDate(day, hours.Open)
		if err != nil {
			continue
		}
		if i == 0 && !open.After(from) {
			continue
		}
		return &open
	}
	return nil
}
