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

func newEditCmd() *cobra.Command {
	var title string
	var desc string
	var project string
	var diff string
	var priority int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields (use 'move' to change its column)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			id, err := resolveTaskID(svc, args[0])
			if err != nil {
				return err
			}

			var in engine.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &desc
			}
			if cmd.Flags().Changed("project") {
				in.Project = &project
			}
			if cmd.Flags().Changed("diff") {
				k := catalog.TierKey(strings.ToUpper(diff))
				if !k.IsValid() {
					return fmt.Errorf("unknown difficulty %q", diff)
				}
				in.Difficulty = &k
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = &priority
			}

			t := svc.UpdateTask(ctx, id, in)
			if t == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Nothing changed: title must not be empty"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Updated"),
				t.Title,
				ui.Muted.Render(fmt.Sprintf("[%s · prio %d · %s · #%s]", t.Difficulty, t.Priority, t.Project, shortID(t.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&project, "project", "p", "", "New project")
	cmd.Flags().StringVar(&diff, "diff", "", "New difficulty (XS|S|M|L|XL)")
	cmd.Flags().IntVar(&priority, "priority", 0, "New priority (1-5)")

	return cmd
}
