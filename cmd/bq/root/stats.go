package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"boardquest/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show board statistics, points and inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.Stats()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Board Stats"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks", st.Total))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Done", st.Done))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("In progress", st.InProgress))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tracked time", ui.FormatDuration(st.TotalElapsed)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", ui.Gold.Render(fmt.Sprintf("%d %s", svc.Points(), ui.IconPoints))))

			if projects := svc.Projects(); len(projects) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Projects", strings.Join(projects, ", ")))
			}

			inv := svc.Inventory()
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconShop+" Inventory"))
			if len(inv) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Empty. Try 'bq shop'."))
				return nil
			}
			for _, rec := range inv {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", rec.Emoji, rec.Name)
			}
			return nil
		},
	}

	return cmd
}
