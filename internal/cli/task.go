package cli

import (
	"fmt"
	"time"
)

type TaskAddCmd struct {
	Text string `arg:"" help:"Task text."`
	Date string `short:"d" help:"Due date (YYYY-MM-DD), defaults to today."`
	Time string `short:"t" help:"Due time (HH:MM)." default:"09:00"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	d, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}
	due, err := time.ParseInLocation("2006-01-02 15:04", string(d)+" "+c.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", c.Time, err)
	}
	task := ctx.Records.CreateTask(c.Text, due)
	fmt.Printf("Added task: %s (ID: %s)\n", task.Text, task.ID)
	return nil
}

type TaskListCmd struct {
	Done bool `help:"List completed tasks instead."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if c.Done {
		done := ctx.Records.DoneTasks()
		if len(done) == 0 {
			fmt.Println("No completed tasks.")
			return nil
		}
		fmt.Println(titleStyle.Render("Completed"))
		for _, t := range done {
			fmt.Printf("%s %s  %s\n", doneStyle.Render("[x]"), t.Text, faintStyle.Render(formatDate(t.Date)))
		}
		return nil
	}

	tasks := ctx.Records.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No open tasks.")
		return nil
	}
	fmt.Println(titleStyle.Render("Tasks"))
	for _, t := range tasks {
		fmt.Printf("%s %s  %s  %s\n",
			pendingStyle.Render("[ ]"), t.Text, faintStyle.Render(formatDate(t.Date)), faintStyle.Render(t.ID))
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	done, ok := ctx.Records.CompleteTask(c.ID)
	if !ok {
		return fmt.Errorf("no task matching %q", c.ID)
	}
	fmt.Printf("Done: %s\n", done.Text)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	ctx.Records.DeleteTask(c.ID)
	fmt.Println("Deleted.")
	return nil
}
