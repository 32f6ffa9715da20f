package models

import "time"

// Task is a one-off to-do scheduled for a specific date.
type Task struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
	// NotifyID is the reminder handle, empty when no reminder was scheduled.
	NotifyID string `json:"notify_id,omitempty"`
}

// DoneTask is a completed task. Completion moves the task into a separate
// collection rather than flagging it in place.
type DoneTask struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Thought is a timestamped free-form note. Thoughts are listed and deleted by
// calendar-day equality, never by exact instant.
type Thought struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}
