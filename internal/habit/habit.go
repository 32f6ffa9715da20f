// Package habit implements the habit streak engine: creation, the done/undone
// toggle with its streak bookkeeping, and the daily rollover pass.
package habit

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/dateutil"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/notify"
	"github.com/julianstephens/daybook/internal/store"
)

// Service owns habit state. Storage failures degrade to defaults and are
// logged inside the store layer; scheduler failures are logged here. No
// operation returns an error to its caller.
type Service struct {
	store  *store.Store
	sched  notify.Scheduler
	clock  dateutil.Clock
	logger *log.Logger
}

func NewService(st *store.Store, sched notify.Scheduler, clock dateutil.Clock, logger *log.Logger) *Service {
	if clock == nil {
		clock = dateutil.SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: st, sched: sched, clock: clock, logger: logger}
}

// List returns all habits, oldest first.
func (s *Service) List() []models.Habit {
	return store.GetList[models.Habit](s.store, store.KeyHabits, "list habits")
}

// Get returns the habit with the given ID.
func (s *Service) Get(id string) (models.Habit, bool) {
	for _, h := range s.List() {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// FindByText returns the first habit whose text matches. Habit text is not
// unique; callers that need a stable address should use the ID.
func (s *Service) FindByText(text string) (models.Habit, bool) {
	for _, h := range s.List() {
		if h.Text == text {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Create appends a new habit with a zero streak and schedules its weekly
// reminders. A reminder scheduling failure is logged and the habit is created
// without handles.
func (s *Service) Create(text, timeStr string, days dateutil.WeekdaySet) models.Habit {
	habit := models.Habit{
		ID:   uuid.New().String(),
		Text: text,
		Time: timeStr,
		Days: days,
	}

	if s.sched != nil && !days.Empty() {
		hour, minute, ok := parseClockTime(timeStr)
		if ok {
			ids, err := s.sched.ScheduleWeekly(days, hour, minute, text)
			if err != nil {
				s.logger.Error("error scheduling habit reminders", "habit", text, "err", err)
			} else {
				habit.NotifyIDs = ids
			}
		}
	}

	store.UpdateList(s.store, store.KeyHabits, "create habit",
		func(habits []models.Habit) ([]models.Habit, bool) {
			return append(habits, habit), true
		})
	return habit
}

// Delete removes the habit and cancels its reminder handles. A missing ID is
// a silent no-op.
func (s *Service) Delete(id string) {
	var removed *models.Habit
	store.UpdateList(s.store, store.KeyHabits, "delete habit",
		func(habits []models.Habit) ([]models.Habit, bool) {
			for i, h := range habits {
				if h.ID == id {
					deleted := h
					removed = &deleted
					return append(habits[:i], habits[i+1:]...), true
				}
			}
			return habits, false
		})
	if removed == nil {
		return
	}
	for _, handle := range removed.NotifyIDs {
		if err := s.sched.Cancel(handle); err != nil {
			s.logger.Error("error cancelling habit reminder", "habit", removed.Text, "handle", handle, "err", err)
		}
	}
}

// MarkDone toggles the habit's done flag.
//
// Completing (false to true) continues the streak when the stored last
// completion falls on the last scheduled day before today, or on today itself
// (re-marking after an undo); any other last completion means the chain broke
// and the streak restarts at 1. The completion day is recorded only when today
// is one of the habit's scheduled weekdays.
//
// Undoing (true to false) decrements the streak, floored at zero. MarkUndone
// is the variant that clears the flag without touching the streak.
//
// An unknown ID is a logged no-op.
func (s *Service) MarkDone(id string) (models.Habit, bool) {
	now := s.clock.Now()
	today := dateutil.DayOf(now)

	var result models.Habit
	found := false
	store.UpdateList(s.store, store.KeyHabits, "update done status",
		func(habits []models.Habit) ([]models.Habit, bool) {
			for i, h := range habits {
				if h.ID != id {
					continue
				}
				found = true
				if h.Done {
					h.Done = false
					h.Streak = max(0, h.Streak-1)
				} else {
					h.Done = true
					h.Streak = s.continuedStreak(h, now)
					if dateutil.ScheduledOn(now, h.Days) {
						t := now
						h.LastDate = &t
					}
				}
				habits[i] = h
				result = h
				return habits, true
			}
			return habits, false
		})
	if !found {
		s.logger.Warn("no habit to mark done", "id", id, "day", today)
	}
	return result, found
}

// continuedStreak returns the streak value after a completion at now.
func (s *Service) continuedStreak(h models.Habit, now time.Time) int {
	last, hasLast := h.LastDay()
	if !hasLast {
		return 1
	}
	if last == dateutil.DayOf(now) {
		return h.Streak + 1
	}
	if expected, ok := dateutil.LastScheduledBefore(now, h.Days); ok && last == expected {
		return h.Streak + 1
	}
	return 1
}

// MarkUndone clears the done flag without touching the streak. The rollover
// pass uses this; an unknown ID is a no-op.
func (s *Service) MarkUndone(id string) (models.Habit, bool) {
	return s.updateOne(id, "update done status", func(h models.Habit) models.Habit {
		h.Done = false
		return h
	})
}

// ResetStreak zeroes the streak and clears the done flag.
func (s *Service) ResetStreak(id string) (models.Habit, bool) {
	return s.updateOne(id, "reset streak", func(h models.Habit) models.Habit {
		h.Streak = 0
		h.Done = false
		return h
	})
}

func (s *Service) updateOne(id, op string, fn func(models.Habit) models.Habit) (models.Habit, bool) {
	var result models.Habit
	found := false
	store.UpdateList(s.store, store.KeyHabits, op,
		func(habits []models.Habit) ([]models.Habit, bool) {
			for i, h := range habits {
				if h.ID == id {
					found = true
					habits[i] = fn(h)
					result = habits[i]
					return habits, true
				}
			}
			return habits, false
		})
	return result, found
}

// Rollover is the daily pass, run on entry into a new calendar day. For every
// habit scheduled on today's weekday it clears the done flag (a new scheduled
// occurrence has begun) and zeroes the streak when the chain is already broken,
// meaning the last completion was neither today nor the most recent scheduled
// day. Habits not scheduled today, and habits already completed today, are
// untouched. Applying the pass twice in the same day yields the same state.
func (s *Service) Rollover() []models.Habit {
	now := s.clock.Now()
	today := dateutil.DayOf(now)

	return store.UpdateList(s.store, store.KeyHabits, "rollover habits",
		func(habits []models.Habit) ([]models.Habit, bool) {
			changed := false
			for i, h := range habits {
				if !dateutil.ScheduledOn(now, h.Days) {
					continue
				}
				if last, ok := h.LastDay(); ok && last == today {
					continue
				}
				next := h
				next.Done = false
				if s.chainBroken(next, now) {
					next.Streak = 0
				}
				if next.Done != h.Done || next.Streak != h.Streak {
					habits[i] = next
					changed = true
				}
			}
			return habits, changed
		})
}

// chainBroken reports whether the habit's last completion misses the most
// recent scheduled day before now.
func (s *Service) chainBroken(h models.Habit, now time.Time) bool {
	last, hasLast := h.LastDay()
	if !hasLast {
		return h.Streak != 0
	}
	expected, ok := dateutil.LastScheduledBefore(now, h.Days)
	if !ok {
		return false
	}
	return last != expected
}

// parseClockTime parses "HH:MM".
func parseClockTime(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
