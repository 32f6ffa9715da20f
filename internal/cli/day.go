package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/dateutil"
)

type DayPlanCmd struct {
	Plan string `arg:"" help:"Plan text."`
	Date string `short:"d" help:"Day (YYYY-MM-DD), defaults to today."`
}

func (c *DayPlanCmd) Run(ctx *Context) error {
	d, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}
	rec := ctx.Records.SavePlanDay(c.Plan, d)
	fmt.Printf("Saved plan for %s\n", rec.Date)
	return nil
}

type DayNoteCmd struct {
	Note string `arg:"" help:"End-of-day note."`
	Rate int    `short:"r" help:"Self rating 1-10." default:"0"`
	Date string `short:"d" help:"Day (YYYY-MM-DD), defaults to today."`
}

func (c *DayNoteCmd) Run(ctx *Context) error {
	d, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}

	// Only a note written for the current day advances the journaling
	// streak; backfilled notes keep the stored streak snapshot.
	streak := ctx.Journal.Current().Streak
	if d == dateutil.Today(ctx.Clock) {
		streak = ctx.Journal.RecordEntry().Streak
	}

	rec := ctx.Records.SaveWriteDay(c.Note, c.Rate, streak, d)
	fmt.Printf("Saved note for %s (streak %d)\n", rec.Date, rec.Streak)
	return nil
}

type DayShowCmd struct {
	Date string `arg:"" optional:"" help:"Day (YYYY-MM-DD), defaults to today."`
}

func (c *DayShowCmd) Run(ctx *Context) error {
	d, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}
	rec, ok := ctx.Records.ReadDay(d)
	if !ok {
		fmt.Printf("No record for %s\n", d)
		return nil
	}
	fmt.Println(titleStyle.Render(string(rec.Date)))
	if rec.Plan != "" {
		fmt.Printf("Plan: %s\n", rec.Plan)
	}
	if rec.Note != "" {
		fmt.Printf("Note: %s\n", rec.Note)
	}
	if rec.Rate != nil {
		fmt.Printf("Rating: %d/10\n", *rec.Rate)
	}
	if !rec.OnTime {
		fmt.Println(faintStyle.Render("written late"))
	}
	return nil
}

type DayListCmd struct{}

func (c *DayListCmd) Run(ctx *Context) error {
	days := ctx.Records.Days()
	if len(days) == 0 {
		fmt.Println("No day records yet.")
		return nil
	}
	for _, rec := range days {
		rated := ""
		if rec.Rate != nil {
			rated = fmt.Sprintf(" %d/10", *rec.Rate)
		}
		fmt.Printf("%s%s  %s\n", rec.Date, rated, faintStyle.Render(rec.Plan))
	}
	return nil
}
