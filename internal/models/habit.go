package models

import (
	"time"

	"github.com/julianstephens/daybook/internal/dateutil"
)

// Habit represents a recurring practice scheduled on a subset of weekdays and
// tracked for consecutive completions.
//
// ID is the true key; Text is a display attribute and is not required to be
// unique. Streak only changes through the engine's done/undone/reset/rollover
// operations, and Done is true only between a completion and the next rollover
// or undo.
type Habit struct {
	ID       string              `json:"id"`
	Text     string              `json:"text"`
	Time     string              `json:"time"` // HH:MM reminder time
	Days     dateutil.WeekdaySet `json:"days"`
	Streak   int                 `json:"streak"`
	Done     bool                `json:"done"`
	LastDate *time.Time          `json:"last_date,omitempty"`
	// NotifyIDs holds scheduler handles released when the habit is deleted.
	NotifyIDs []string `json:"notify_ids,omitempty"`
}

// LastDay returns the calendar day of the last completion, or false when the
// habit has never been completed.
func (h Habit) LastDay() (dateutil.Day, bool) {
	if h.LastDate == nil {
		return "", false
	}
	return dateutil.DayOf(*h.LastDate), true
}
