package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/dateutil"
	"github.com/julianstephens/daybook/internal/habit"
	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/notify"
	"github.com/julianstephens/daybook/internal/records"
	"github.com/julianstephens/daybook/internal/store"
)

var CLI struct {
	Version  kong.VersionFlag
	Store    string `help:"Store path: a .db file for SQLite or a directory for the file store." type:"path" default:"~/.config/daybook/store" env:"DAYBOOK_STORE"`
	LogLevel string `help:"Log level (debug|info|warn|error)." default:"warn" env:"DAYBOOK_LOG_LEVEL"`

	NewDay cli.NewDayCmd `cmd:"" name:"newday" help:"Run the daily rollover passes."`
	Streak cli.StreakCmd `cmd:"" help:"Show the journaling streak."`
	Backup cli.BackupCmd `cmd:"" help:"Snapshot the store."`
	Habit  struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits."`
		Done   cli.HabitDoneCmd   `cmd:"" help:"Toggle a habit's completion."`
		Undone cli.HabitUndoneCmd `cmd:"" help:"Clear a habit's done flag without touching its streak."`
		Reset  cli.HabitResetCmd  `cmd:"" help:"Zero a habit's streak."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Day struct {
		Plan cli.DayPlanCmd `cmd:"" help:"Save the day's plan."`
		Note cli.DayNoteCmd `cmd:"" help:"Save the end-of-day note and rating."`
		Show cli.DayShowCmd `cmd:"" help:"Show a day's record."`
		List cli.DayListCmd `cmd:"" help:"List day records."`
	} `cmd:"" help:"Manage day records."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a one-off task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Done   cli.TaskDoneCmd   `cmd:"" help:"Complete a task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Thought struct {
		Add    cli.ThoughtAddCmd    `cmd:"" help:"Jot a thought."`
		List   cli.ThoughtListCmd   `cmd:"" help:"List thoughts."`
		Delete cli.ThoughtDeleteCmd `cmd:"" help:"Delete a thought."`
	} `cmd:"" help:"Manage thoughts."`
}

func main() {
	// Optional .env for DAYBOOK_* settings; absence is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("daybook"),
		kong.Description("Personal journaling and habit streak tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	lvl, err := log.ParseLevel(CLI.LogLevel)
	if err != nil {
		lvl = log.WarnLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: lvl})

	backend, err := openBackend(CLI.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	st := store.New(backend, logger)
	defer st.Close()

	clock := dateutil.SystemClock{}
	sched := &notify.LogScheduler{Logger: logger}

	appCtx := &cli.Context{
		Habits:    habit.NewService(st, sched, clock, logger),
		Journal:   journal.NewService(st, clock, logger),
		Records:   records.NewService(st, sched, clock, logger),
		Clock:     clock,
		Logger:    logger,
		StorePath: CLI.Store,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openBackend picks the storage backend from the path shape: .db selects
// SQLite, anything else is treated as a directory for the file store.
func openBackend(path string) (store.Backend, error) {
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return store.NewSQLiteBackend(path)
	}
	return store.NewDiskvBackend(path)
}
