package models

import "time"

// DayHours is one day's opening window. Times are "HH:MM" in 24-hour local
// time. A close at or before the open time means the restaurant closes after
// midnight on the following calendar day ("00:00" is midnight).
type DayHours struct {
	Open    string `bson:"open" json:"open"`
	Close   string `bson:"close" json:"close"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// WeeklyHours maps a weekday (time.Weekday, 0=Sunday) to its hours.
// A missing or disabled entry means closed that day.
type WeeklyHours map[time.Weekday]DayHours

// SpecialDate overrides the weekly hours for a single calendar date
// ("2006-01-02"). Enabled=false marks a full-day closure, e.g. a holiday.
type SpecialDate struct {
	Open    string `bson:"open,omitempty" json:"open,omitempty"`
	Close   string `bson:"close,omitempty" json:"close,omitempty"`
	Enabled bool   `bson:"enabled" json:"enabled"`
	Reason  string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// TemporaryClosure closes the restaurant for a date range regardless of
// weekly or special-date hours. Bounds are inclusive "2006-01-02" dates;
// an empty EndDate means the closure is open-ended.
type TemporaryClosure struct {
	Enabled   bool   `bson:"enabled" json:"enabled"`
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
	StartDate string `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   string `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// RestaurantStatus is the answer to "can I order right now?". It is computed
// fresh per query and never stored.
type RestaurantStatus struct {
	IsOpen     bool       `json:"isOpen"`
	Reason     string     `json:"reason,omitempty"`
	HoursToday *DayHours  `json:"hoursToday,omitempty"`
	NextOpen   *time.Time `json:"nextOpen,omitempty"`
}
