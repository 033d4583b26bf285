package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"boardquest/internal/catalog"
	"boardquest/internal/engine"
	"boardquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var project string
	var diff string
	var column string
	var priority int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the board",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t := svc.CreateTask(ctx, engine.CreateTaskInput{
				Title:       args[0],
				Description: desc,
				Project:     project,
				Difficulty:  catalog.TierKey(strings.ToUpper(diff)),
				Status:      engine.Status(strings.ToLower(column)),
				Priority:    priority,
			})
			if t == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Nothing created: title must not be empty"))
				return nil
			}

			tier := catalog.TierByKey(t.Difficulty)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				t.Title,
				ui.Muted.Render(fmt.Sprintf("[%s · %d pts · %s · #%s]", tier.Key, tier.Reward, t.Status, shortID(t.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Task description")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project name")
	cmd.Flags().StringVar(&diff, "diff", string(catalog.DefaultTier), "Difficulty (XS|S|M|L|XL)")
	cmd.Flags().StringVarP(&column, "column", "c", string(engine.StatusBacklog), "Column (backlog|todo|doing|done)")
	cmd.Flags().IntVar(&priority, "priority", 3, "Priority (1-5, 1 is highest)")

	return cmd
}
