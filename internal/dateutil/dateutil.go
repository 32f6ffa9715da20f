// Package dateutil provides the calendar-day identity type and the
// scheduled-weekday search used by the streak engines. All functions are pure;
// anything that needs "now" takes a Clock so tests can pin the day.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Day is a calendar-day identity in YYYY-MM-DD form. Two timestamps map to the
// same Day iff they fall on the same local calendar day.
type Day string

// DayOf normalizes a timestamp to its calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format(layoutISO))
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns the day at midnight local time. A zero time is returned for a
// malformed Day, which only arises from hand-built values.
func (d Day) Time() time.Time {
	t, err := time.ParseInLocation(layoutISO, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) String() string { return string(d) }

// AddDays returns the day n calendar days after d (negative n goes back).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the weekday index of t, 0 = Sunday.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// WeekdaySet is a set of scheduled weekdays indexed 0 (Sunday) through 6.
type WeekdaySet [7]bool

// AllWeekdays has every day set; with it, LastScheduledBefore is "yesterday".
var AllWeekdays = WeekdaySet{true, true, true, true, true, true, true}

var weekdayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// ParseWeekdaySet parses a comma-separated list of weekday names or indices,
// e.g. "mon,thu" or "1,4". An empty string yields the empty set.
func ParseWeekdaySet(s string) (WeekdaySet, error) {
	var set WeekdaySet
	s = strings.TrimSpace(s)
	if s == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if len(part) > 3 {
			part = part[:3]
		}
		if idx, ok := weekdayNames[part]; ok {
			set[idx] = true
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 || idx > 6 {
			return WeekdaySet{}, fmt.Errorf("invalid weekday: %q", part)
		}
		set[idx] = true
	}
	return set, nil
}

// WeekdaySetOf builds a set from weekday indices.
func WeekdaySetOf(days ...int) WeekdaySet {
	var set WeekdaySet
	for _, d := range days {
		if d >= 0 && d <= 6 {
			set[d] = true
		}
	}
	return set
}

// Contains reports whether weekday index d is scheduled.
func (w WeekdaySet) Contains(d int) bool {
	return d >= 0 && d <= 6 && w[d]
}

// Empty reports whether no weekday is scheduled.
func (w WeekdaySet) Empty() bool {
	return w == WeekdaySet{}
}

func (w WeekdaySet) String() string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var out []string
	for i, on := range w {
		if on {
			out = append(out, names[i])
		}
	}
	return strings.Join(out, ",")
}

// LastScheduledBefore scans backward from the day before t and returns the
// first day whose weekday is in the set. Seven days always covers a non-empty
// set; an empty set returns false.
func LastScheduledBefore(t time.Time, days WeekdaySet) (Day, bool) {
	if days.Empty() {
		return "", false
	}
	for i := 1; i <= 7; i++ {
		prev := t.AddDate(0, 0, -i)
		if days.Contains(Weekday(prev)) {
			return DayOf(prev), true
		}
	}
	return "", false
}

// ScheduledOn reports whether t's weekday is in the set.
func ScheduledOn(t time.Time, days WeekdaySet) bool {
	return days.Contains(Weekday(t))
}
