// Package notify defines the reminder-scheduling collaborator used by habits
// and tasks. Delivery is out of scope for this core; implementations here hand
// back opaque handles that the engines store and later cancel.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/dateutil"
)

// Scheduler is the scheduling contract. Cancel failures are logged by callers,
// never propagated.
type Scheduler interface {
	// ScheduleAt registers a one-time reminder.
	ScheduleAt(t time.Time, label string) (string, error)
	// ScheduleWeekly registers a repeating reminder for each scheduled
	// weekday and returns one handle per registration.
	ScheduleWeekly(days dateutil.WeekdaySet, hour, minute int, label string) ([]string, error)
	// Cancel releases a previously returned handle. Unknown handles are a
	// no-op.
	Cancel(handle string) error
}

// LogScheduler is the default scheduler for the CLI: it records nothing and
// logs each call, standing in for a platform notification service.
type LogScheduler struct {
	Logger *log.Logger
}

func (s *LogScheduler) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

func (s *LogScheduler) ScheduleAt(t time.Time, label string) (string, error) {
	handle := uuid.New().String()
	s.logger().Debug("scheduled reminder", "at", t, "label", label, "handle", handle)
	return handle, nil
}

func (s *LogScheduler) ScheduleWeekly(days dateutil.WeekdaySet, hour, minute int, label string) ([]string, error) {
	var handles []string
	for wd := 0; wd < 7; wd++ {
		if !days.Contains(wd) {
			continue
		}
		handle := uuid.New().String()
		s.logger().Debug("scheduled weekly reminder",
			"weekday", wd, "hour", hour, "minute", minute, "label", label, "handle", handle)
		handles = append(handles, handle)
	}
	return handles, nil
}

func (s *LogScheduler) Cancel(handle string) error {
	s.logger().Debug("cancelled reminder", "handle", handle)
	return nil
}

// MemoryScheduler records scheduled and cancelled handles for tests.
type MemoryScheduler struct {
	mu        sync.Mutex
	next      int
	Scheduled []string
	Cancelled []string
}

func (s *MemoryScheduler) newHandle() string {
	s.next++
	return fmt.Sprintf("handle-%d", s.next)
}

func (s *MemoryScheduler) ScheduleAt(t time.Time, label string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.newHandle()
	s.Scheduled = append(s.Scheduled, h)
	return h, nil
}

func (s *MemoryScheduler) ScheduleWeekly(days dateutil.WeekdaySet, hour, minute int, label string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var handles []string
	for wd := 0; wd < 7; wd++ {
		if days.Contains(wd) {
			h := s.newHandle()
			s.Scheduled = append(s.Scheduled, h)
			handles = append(handles, h)
		}
	}
	return handles, nil
}

func (s *MemoryScheduler) Cancel(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancelled = append(s.Cancelled, handle)
	return nil
}
