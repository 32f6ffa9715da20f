package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/backup"
)

type BackupCmd struct {
	List bool `short:"l" help:"List existing snapshots instead of creating one."`
}

func (c *BackupCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.StorePath)

	if c.List {
		backups, err := m.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No backups yet.")
			return nil
		}
		for _, b := range backups {
			fmt.Printf("%s  %s\n", b.Timestamp.Format("2006-01-02 15:04"), b.Path)
		}
		return nil
	}

	dest, err := m.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Backed up store to %s\n", dest)
	return nil
}
