package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"boardquest/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all tasks, points, inventory and upgrades",
		Long:  "Wipe the whole board and economy in one step. Irreversible. Settings survive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ResetAll(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Everything reset: tasks, points, inventory, upgrades"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")

	return cmd
}
