package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/dateutil"
)

type HabitAddCmd struct {
	Text     string `arg:"" help:"Habit text."`
	Time     string `short:"t" help:"Reminder time (HH:MM)." default:"08:00"`
	Weekdays string `short:"w" help:"Comma-separated scheduled weekdays (e.g. mon,thu or 1,4)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	days, err := dateutil.ParseWeekdaySet(c.Weekdays)
	if err != nil {
		return err
	}
	h := ctx.Habits.Create(c.Text, c.Time, days)
	fmt.Printf("Added habit: %s (ID: %s)\n", h.Text, h.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Habits.List()
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}
	fmt.Println(titleStyle.Render("Habits"))
	for _, h := range habits {
		mark := pendingStyle.Render("[ ]")
		if h.Done {
			mark = doneStyle.Render("[x]")
		}
		sched := h.Days.String()
		if h.Days.Empty() {
			sched = "unscheduled"
		}
		fmt.Printf("%s %s  %s  %s  %s\n",
			mark,
			h.Text,
			faintStyle.Render(sched+" "+h.Time),
			streakStyle.Render(fmt.Sprintf("streak %d", h.Streak)),
			faintStyle.Render(h.ID),
		)
	}
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit ID or text. Marking an already-done habit undoes it."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	updated, _ := ctx.Habits.MarkDone(h.ID)
	if updated.Done {
		fmt.Printf("Done: %s (streak %d)\n", updated.Text, updated.Streak)
	} else {
		fmt.Printf("Undone: %s (streak %d)\n", updated.Text, updated.Streak)
	}
	return nil
}

type HabitUndoneCmd struct {
	Habit string `arg:"" help:"Habit ID or text."`
}

func (c *HabitUndoneCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	updated, _ := ctx.Habits.MarkUndone(h.ID)
	fmt.Printf("Cleared: %s (streak %d)\n", updated.Text, updated.Streak)
	return nil
}

type HabitResetCmd struct {
	Habit string `arg:"" help:"Habit ID or text."`
}

func (c *HabitResetCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	updated, _ := ctx.Habits.ResetStreak(h.ID)
	fmt.Printf("Reset: %s (streak %d)\n", updated.Text, updated.Streak)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or text."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	ctx.Habits.Delete(h.ID)
	fmt.Printf("Deleted habit: %s\n", h.Text)
	return nil
}
