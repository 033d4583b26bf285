package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boardquest/internal/catalog"
	"boardquest/internal/engine"
	"boardquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var filter string
	var project string
	var sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by column",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := svc.ListTasks(engine.Query{
				Filter:  filter,
				Project: project,
				Sort:    engine.SortKey(sortKey),
			})
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks match."))
				return nil
			}

			now := time.Now()
			for _, col := range engine.Columns {
				var inCol []engine.Task
				for _, t := range tasks {
					if t.Status == col {
						inCol = append(inCol, t)
					}
				}
				if len(inCol) == 0 {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.H2.Render(string(col)), ui.Muted.Render(fmt.Sprintf("(%d)", len(inCol))))
				for _, t := range inCol {
					printTaskLine(cmd, t, now)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Substring filter over title/description/project")
	cmd.Flags().StringVarP(&project, "project", "p", engine.ProjectFilterAll, "Project filter")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", string(engine.SortPriority), "Sort (priority|created|difficulty)")

	return cmd
}

func printTaskLine(cmd *cobra.Command, t engine.Task, now time.Time) {
	tier := catalog.TierByKey(t.Difficulty)
	meta := fmt.Sprintf("[%s · p%d · %s · #%s]", tier.Key, t.Priority, t.Project, shortID(t.ID))
	line := fmt.Sprintf("- %s %s", t.Title, ui.Muted.Render(meta))
	if t.TimerRunning {
		line += " " + ui.Good.Render(ui.IconTimer+" "+ui.FormatDuration(engine.Elapsed(t, now)))
	} else if t.TimeSpent > 0 {
		line += " " + ui.Muted.Render(ui.FormatDuration(engine.Elapsed(t, now)))
	}
	if t.Status == engine.StatusDone {
		line += " " + ui.Gold.Render(fmt.Sprintf("+%d %s", t.PointsAwarded, ui.IconPoints))
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
