package cli

import "fmt"

type ThoughtAddCmd struct {
	Text string `arg:"" help:"Thought text."`
}

func (c *ThoughtAddCmd) Run(ctx *Context) error {
	t := ctx.Records.CreateThought(c.Text)
	fmt.Printf("Noted at %s\n", formatDate(t.Date))
	return nil
}

type ThoughtListCmd struct {
	Date string `short:"d" help:"Only thoughts from this day (YYYY-MM-DD)."`
	All  bool   `short:"a" help:"List every stored thought."`
}

func (c *ThoughtListCmd) Run(ctx *Context) error {
	thoughts := ctx.Records.Thoughts()
	if !c.All {
		d, err := resolveDay(ctx, c.Date)
		if err != nil {
			return err
		}
		thoughts = ctx.Records.ThoughtsOn(d)
	}
	if len(thoughts) == 0 {
		fmt.Println("No thoughts.")
		return nil
	}
	for _, t := range thoughts {
		fmt.Printf("%s  %s\n", faintStyle.Render(formatDate(t.Date)), t.Text)
	}
	return nil
}

type ThoughtDeleteCmd struct {
	Text string `arg:"" help:"Thought text."`
	Date string `short:"d" help:"Calendar day of the thought (YYYY-MM-DD), defaults to today."`
}

func (c *ThoughtDeleteCmd) Run(ctx *Context) error {
	d, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}
	ctx.Records.DeleteThought(c.Text, d.Time())
	fmt.Println("Deleted.")
	return nil
}
