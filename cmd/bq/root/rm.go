package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"boardquest/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  "Delete a task unconditionally. Deleting a done task does not claw back its points.",
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
			t := svc.Task(id)
			svc.DeleteTask(ctx, id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconTrash+" Deleted"), t.Title, ui.Muted.Render("#"+shortID(id)))
			return nil
		},
	}

	return cmd
}
