// Package journal implements the overall journaling streak: one singleton
// record tracking consecutive days on which the user wrote an end-of-day note.
package journal

import (
	"github.com/charmbracelet/log"

	"github.com/julianstephens/daybook/internal/dateutil"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/store"
)

// Service owns the user streak record. All operations degrade to the stored
// (or zero) state on storage failure; nothing propagates.
type Service struct {
	store  *store.Store
	clock  dateutil.Clock
	logger *log.Logger
}

func NewService(st *store.Store, clock dateutil.Clock, logger *log.Logger) *Service {
	if clock == nil {
		clock = dateutil.SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: st, clock: clock, logger: logger}
}

// Current returns the stored streak state, defaulting to a zero streak with no
// last date.
func (s *Service) Current() models.StreakState {
	return store.GetDoc(s.store, store.KeyUser, "get streak", models.StreakState{})
}

// RecordEntry advances the streak after a successful day-note save. The streak
// increments, stamping the last date, only when the previous entry covers
// yesterday; a same-day repeat save leaves the state as is, and a stale last
// date is left for Rollover to judge.
func (s *Service) RecordEntry() models.StreakState {
	now := s.clock.Now()
	yesterday := dateutil.DayOf(now.AddDate(0, 0, -1))

	return store.UpdateDoc(s.store, store.KeyUser, "update streak", models.StreakState{},
		func(state models.StreakState) (models.StreakState, bool) {
			if state.LastDate == nil {
				state.Streak = 1
				state.LastDate = &now
				return state, true
			}
			last := dateutil.DayOf(*state.LastDate)
			if last != yesterday {
				return state, false
			}
			state.Streak++
			state.LastDate = &now
			return state, true
		})
}

// Rollover is the new-day pass, run on app entry. A last entry older than
// yesterday means a day was missed: the streak resets to zero while the last
// date is preserved, so the record shows that a miss happened without
// recording when. A last entry from yesterday or today leaves the streak
// intact.
func (s *Service) Rollover() models.StreakState {
	now := s.clock.Now()
	today := dateutil.DayOf(now)
	yesterday := dateutil.DayOf(now.AddDate(0, 0, -1))

	return store.UpdateDoc(s.store, store.KeyUser, "update streak", models.StreakState{},
		func(state models.StreakState) (models.StreakState, bool) {
			if state.LastDate != nil {
				last := dateutil.DayOf(*state.LastDate)
				if last == today || last == yesterday {
					return state, false
				}
			}
			if state.Streak == 0 {
				return state, false
			}
			state.Streak = 0
			return state, true
		})
}

// Reset zeroes the streak explicitly, leaving the last date untouched.
func (s *Service) Reset() models.StreakState {
	return store.UpdateDoc(s.store, store.KeyUser, "set streak", models.StreakState{},
		func(state models.StreakState) (models.StreakState, bool) {
			if state.Streak == 0 {
				return state, false
			}
			state.Streak = 0
			return state, true
		})
}

// Increment bumps the streak unconditionally and stamps the last date. This is
// the explicit set action used by the note-saving flow when the caller has
// already decided the entry qualifies.
func (s *Service) Increment() models.StreakState {
	now := s.clock.Now()
	return store.UpdateDoc(s.store, store.KeyUser, "set streak", models.StreakState{},
		func(state models.StreakState) (models.StreakState, bool) {
			state.Streak++
			state.LastDate = &now
			return state, true
		})
}
