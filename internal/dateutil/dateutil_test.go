package dateutil

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		t.Fatalf("bad test time %q: %v", s, err)
	}
	return parsed
}

func TestDayOf_StripsTimeOfDay(t *testing.T) {
	morning := mustTime(t, "2024-01-01 06:30")
	night := mustTime(t, "2024-01-01 23:59")
	nextDay := mustTime(t, "2024-01-02 00:00")

	if DayOf(morning) != DayOf(night) {
		t.Errorf("same calendar day should normalize equal: %s vs %s", DayOf(morning), DayOf(night))
	}
	if DayOf(night) == DayOf(nextDay) {
		t.Error("different calendar days should not normalize equal")
	}
	if got := DayOf(morning); got != "2024-01-01" {
		t.Errorf("expected 2024-01-01, got %s", got)
	}
}

func TestDayTime_MidnightLocal(t *testing.T) {
	d := Day("2024-03-15")
	got := d.Time()
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
	if DayOf(got) != d {
		t.Errorf("round trip changed the day: %s", DayOf(got))
	}
}

func TestParseWeekdaySet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WeekdaySet
		wantErr bool
	}{
		{"empty", "", WeekdaySet{}, false},
		{"names", "mon,thu", WeekdaySetOf(1, 4), false},
		{"full names", "Monday,Thursday", WeekdaySetOf(1, 4), false},
		{"indices", "0,6", WeekdaySetOf(0, 6), false},
		{"mixed", "sun,3", WeekdaySetOf(0, 3), false},
		{"invalid name", "blursday", WeekdaySet{}, true},
		{"out of range", "7", WeekdaySet{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdaySet(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLastScheduledBefore(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := mustTime(t, "2024-01-01 12:00")

	tests := []struct {
		name  string
		from  time.Time
		days  WeekdaySet
		want  Day
		found bool
	}{
		{
			name:  "previous scheduled day in a mon/thu set, from monday",
			from:  monday,
			days:  WeekdaySetOf(1, 4),
			want:  "2023-12-28", // the Thursday before
			found: true,
		},
		{
			name:  "from thursday the match is monday",
			from:  mustTime(t, "2024-01-04 09:00"),
			days:  WeekdaySetOf(1, 4),
			want:  "2024-01-01",
			found: true,
		},
		{
			name:  "all weekdays means yesterday",
			from:  monday,
			days:  AllWeekdays,
			want:  "2023-12-31",
			found: true,
		},
		{
			name:  "same weekday only wraps a full week back",
			from:  monday,
			days:  WeekdaySetOf(1),
			want:  "2023-12-25",
			found: true,
		},
		{
			name:  "empty set finds nothing",
			from:  monday,
			days:  WeekdaySet{},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LastScheduledBefore(tt.from, tt.days)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestScheduledOn(t *testing.T) {
	monday := mustTime(t, "2024-01-01 12:00")
	if !ScheduledOn(monday, WeekdaySetOf(1)) {
		t.Error("Monday should be scheduled in a {Mon} set")
	}
	if ScheduledOn(monday, WeekdaySetOf(2)) {
		t.Error("Monday should not be scheduled in a {Tue} set")
	}
	if ScheduledOn(monday, WeekdaySet{}) {
		t.Error("nothing is scheduled in an empty set")
	}
}

func TestFixedClock_AdvanceDays(t *testing.T) {
	clock := &FixedClock{T: mustTime(t, "2024-01-01 08:00")}
	if Today(clock) != "2024-01-01" {
		t.Fatalf("unexpected today: %s", Today(clock))
	}
	clock.AdvanceDays(3)
	if Today(clock) != "2024-01-04" {
		t.Errorf("expected 2024-01-04 after advancing 3 days, got %s", Today(clock))
	}
}
