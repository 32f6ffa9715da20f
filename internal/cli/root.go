package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/daybook/internal/dateutil"
	"github.com/julianstephens/daybook/internal/habit"
	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/records"
)

// Context carries the collaborators every command runs against.
type Context struct {
	Habits  *habit.Service
	Journal *journal.Service
	Records *records.Service
	Clock   dateutil.Clock
	Logger  *log.Logger
	// StorePath is the backing file or directory, used by backup.
	StorePath string
}

// resolveDay parses an optional date argument, defaulting to today.
func resolveDay(ctx *Context, s string) (dateutil.Day, error) {
	if s == "" {
		return dateutil.Today(ctx.Clock), nil
	}
	return dateutil.ParseDay(s)
}

// resolveHabit finds a habit by ID first, then by display text. Text is not
// unique; the first match wins.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	if h, ok := ctx.Habits.Get(ref); ok {
		return h, nil
	}
	if h, ok := ctx.Habits.FindByText(ref); ok {
		return h, nil
	}
	return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
