package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/dateutil"
)

// NewDayCmd runs the daily rollover passes: scheduled habits get their done
// flags cleared (and broken chains zeroed), and the journaling streak resets
// when yesterday went unjournaled. Safe to run more than once per day.
type NewDayCmd struct{}

func (c *NewDayCmd) Run(ctx *Context) error {
	habits := ctx.Habits.Rollover()
	state := ctx.Journal.Rollover()

	today := dateutil.Today(ctx.Clock)
	due := 0
	for _, h := range habits {
		if dateutil.ScheduledOn(today.Time(), h.Days) && !h.Done {
			due++
		}
	}
	fmt.Printf("%s: %d habit(s) due, journaling streak %d\n", today, due, state.Streak)
	return nil
}

// StreakCmd prints the journaling streak.
type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	state := ctx.Journal.Current()
	fmt.Println(streakStyle.Render(fmt.Sprintf("Journaling streak: %d", state.Streak)))
	if state.LastDate != nil {
		fmt.Println(faintStyle.Render("last entry " + formatDate(*state.LastDate)))
	}
	return nil
}
