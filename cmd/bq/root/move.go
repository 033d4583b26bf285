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

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <column>",
		Short: "Move a task to another column",
		Long:  "Move a task between backlog, todo, doing and done. Moving into done awards the difficulty's points; moving out of done revokes them.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and column are required")
			}
			if !engine.Status(strings.ToLower(args[1])).IsValid() {
				return fmt.Errorf("unknown column %q (backlog|todo|doing|done)", args[1])
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
			status := engine.Status(strings.ToLower(args[1]))

			ev, ok := svc.MoveTask(ctx, id, status)
			if !ok {
				return fmt.Errorf("no task matches %q", args[0])
			}
			t := svc.Task(id)

			switch e := ev.(type) {
			case engine.TaskCompleted:
				line := fmt.Sprintf("%s %s %s", ui.Good.Render(ui.IconDone+" Done"), t.Title, ui.Gold.Render(fmt.Sprintf("+%d %s", e.Reward, ui.IconPoints)))
				if svc.HasUpgrade(catalog.ItemConfetti) {
					line += " " + ui.IconConfetti
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			case engine.TaskReopened:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconUndo+" Reopened"), t.Title, ui.Muted.Render(fmt.Sprintf("(-%d %s)", e.Refund, ui.IconPoints)))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.Good.Render("Moved"), t.Title, ui.StatusText(string(status)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", svc.Points()))
			return nil
		},
	}

	return cmd
}
