// Package records provides CRUD over daily plan/note entries, one-off tasks,
// completed tasks, and free-form thoughts. Day records are addressed by their
// YYYY-MM-DD key; thoughts keep full timestamps but always compare by calendar
// day.
package records

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/dateutil"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/notify"
	"github.com/julianstephens/daybook/internal/store"
)

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

// Days returns every stored day record.
func (s *Service) Days() []models.DayRecord {
	return store.GetList[models.DayRecord](s.store, store.KeyDays, "get days")
}

// ReadDay returns the record for a day.
func (s *Service) ReadDay(d dateutil.Day) (models.DayRecord, bool) {
	for _, rec := range s.Days() {
		if rec.Date == d {
			return rec, true
		}
	}
	return models.DayRecord{}, false
}

// ReadPlanDay returns the plan text for a day, empty when none is stored.
func (s *Service) ReadPlanDay(d dateutil.Day) string {
	rec, ok := s.ReadDay(d)
	if !ok {
		return ""
	}
	return rec.Plan
}

// SavePlanDay upserts only the plan field of a day record, leaving any other
// stored fields untouched.
func (s *Service) SavePlanDay(plan string, d dateutil.Day) models.DayRecord {
	var result models.DayRecord
	store.UpdateList(s.store, store.KeyDays, "save plan",
		func(days []models.DayRecord) ([]models.DayRecord, bool) {
			for i, rec := range days {
				if rec.Date == d {
					days[i].Plan = plan
					result = days[i]
					return days, true
				}
			}
			result = models.DayRecord{Date: d, Plan: plan}
			return append(days, result), true
		})
	return result
}

// SaveWriteDay upserts the note, rating, and streak snapshot of a day record.
// A rating outside 1 to 10 is stored as unrated. OnTime is computed at write
// time: whether the record's day is the current calendar day.
func (s *Service) SaveWriteDay(note string, rate, streak int, d dateutil.Day) models.DayRecord {
	var ratePtr *int
	if rate >= 1 && rate <= 10 {
		ratePtr = &rate
	}
	onTime := d == dateutil.Today(s.clock)

	var result models.DayRecord
	store.UpdateList(s.store, store.KeyDays, "save note",
		func(days []models.DayRecord) ([]models.DayRecord, bool) {
			for i, rec := range days {
				if rec.Date == d {
					days[i].Note = note
					days[i].Rate = ratePtr
					days[i].Streak = streak
					days[i].OnTime = onTime
					result = days[i]
					return days, true
				}
			}
			result = models.DayRecord{
				Date:   d,
				Note:   note,
				Rate:   ratePtr,
				OnTime: onTime,
				Streak: streak,
			}
			return append(days, result), true
		})
	return result
}

// CreateTask stores a one-off task and schedules its reminder. A scheduling
// failure is logged and the task is stored without a reminder handle.
func (s *Service) CreateTask(text string, date time.Time) models.Task {
	task := models.Task{
		ID:   uuid.New().String(),
		Text: text,
		Date: date,
	}
	if s.sched != nil {
		handle, err := s.sched.ScheduleAt(date, text)
		if err != nil {
			s.logger.Error("error scheduling task reminder", "task", text, "err", err)
		} else {
			task.NotifyID = handle
		}
	}
	store.UpdateList(s.store, store.KeyTasks, "create task",
		func(tasks []models.Task) ([]models.Task, bool) {
			return append(tasks, task), true
		})
	return task
}

// Tasks returns all open tasks.
func (s *Service) Tasks() []models.Task {
	return store.GetList[models.Task](s.store, store.KeyTasks, "get tasks")
}

// DeleteTask removes a task and cancels its reminder. Unknown IDs are a
// silent no-op.
func (s *Service) DeleteTask(id string) {
	s.removeTask(id, "delete task")
}

// CompleteTask moves a task into the completed collection and cancels its
// reminder. The completed copy keeps only the text and date.
func (s *Service) CompleteTask(id string) (models.DoneTask, bool) {
	task, ok := s.removeTask(id, "complete task")
	if !ok {
		return models.DoneTask{}, false
	}
	done := models.DoneTask{Text: task.Text, Date: task.Date}
	store.UpdateList(s.store, store.KeyDoneTasks, "complete task",
		func(tasks []models.DoneTask) ([]models.DoneTask, bool) {
			return append(tasks, done), true
		})
	return done, true
}

func (s *Service) removeTask(id, op string) (models.Task, bool) {
	var removed *models.Task
	store.UpdateList(s.store, store.KeyTasks, op,
		func(tasks []models.Task) ([]models.Task, bool) {
			for i, t := range tasks {
				if t.ID == id {
					deleted := t
					removed = &deleted
					return append(tasks[:i], tasks[i+1:]...), true
				}
			}
			return tasks, false
		})
	if removed == nil {
		return models.Task{}, false
	}
	if removed.NotifyID != "" {
		if err := s.sched.Cancel(removed.NotifyID); err != nil {
			s.logger.Error("error cancelling task reminder", "task", removed.Text, "err", err)
		}
	}
	return *removed, true
}

// DoneTasks returns all completed tasks.
func (s *Service) DoneTasks() []models.DoneTask {
	return store.GetList[models.DoneTask](s.store, store.KeyDoneTasks, "get done tasks")
}

// DeleteDoneTask removes the completed task matching text and exact date.
func (s *Service) DeleteDoneTask(text string, date time.Time) {
	store.UpdateList(s.store, store.KeyDoneTasks, "delete done task",
		func(tasks []models.DoneTask) ([]models.DoneTask, bool) {
			for i, t := range tasks {
				if t.Text == text && t.Date.Equal(date) {
					return append(tasks[:i], tasks[i+1:]...), true
				}
			}
			return tasks, false
		})
}

// CreateThought stores a free-form note stamped with the current instant.
func (s *Service) CreateThought(text string) models.Thought {
	thought := models.Thought{Text: text, Date: s.clock.Now()}
	store.UpdateList(s.store, store.KeyThoughts, "create thought",
		func(thoughts []models.Thought) ([]models.Thought, bool) {
			return append(thoughts, thought), true
		})
	return thought
}

// Thoughts returns every stored thought.
func (s *Service) Thoughts() []models.Thought {
	return store.GetList[models.Thought](s.store, store.KeyThoughts, "get thoughts")
}

// ThoughtsOn returns the thoughts recorded on the given calendar day.
func (s *Service) ThoughtsOn(d dateutil.Day) []models.Thought {
	var out []models.Thought
	for _, t := range s.Thoughts() {
		if dateutil.DayOf(t.Date) == d {
			out = append(out, t)
		}
	}
	return out
}

// DeleteThought removes thoughts matching the text and the calendar day of
// the given timestamp. Times of day are ignored; a timestamp on a different
// day leaves the store unchanged.
func (s *Service) DeleteThought(text string, date time.Time) {
	day := dateutil.DayOf(date)
	store.UpdateList(s.store, store.KeyThoughts, "delete thought",
		func(thoughts []models.Thought) ([]models.Thought, bool) {
			kept := thoughts[:0]
			changed := false
			for _, t := range thoughts {
				if t.Text == text && dateutil.DayOf(t.Date) == day {
					changed = true
					continue
				}
				kept = append(kept, t)
			}
			return kept, changed
		})
}
