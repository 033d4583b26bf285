package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boardquest/internal/engine"
	"boardquest/internal/ui"
)

func newTimerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer <id>",
		Short: "Start or pause a task's timer",
		Long:  "Toggle time tracking for a task. Several tasks may track time at once; each keeps its own session.",
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
			svc.ToggleTimer(ctx, id)
			t := svc.Task(id)

			elapsed := ui.FormatDuration(engine.Elapsed(*t, time.Now()))
			if t.TimerRunning {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconTimer+" Started"), t.Title, ui.Muted.Render("("+elapsed+" so far)"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconTimer+" Paused"), t.Title, ui.Muted.Render("("+elapsed+" total)"))
			}
			return nil
		},
	}

	return cmd
}
