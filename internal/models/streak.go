package models

import "time"

// StreakState is the singleton record of the user's overall consecutive
// journaling streak, independent of any single habit.
type StreakState struct {
	Streak   int        `json:"streak"`
	LastDate *time.Time `json:"last_date,omitempty"`
}
