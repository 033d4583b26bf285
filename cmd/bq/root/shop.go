package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"boardquest/internal/catalog"
	"boardquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the upgrade shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Upgrade Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Gold.Render(fmt.Sprintf("%d %s", svc.Points(), ui.IconPoints))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, item := range catalog.ShopItems {
				var state string
				switch {
				case svc.HasUpgrade(item.ID):
					state = ui.Good.Render("owned")
				case svc.CanAfford(item.ID):
					state = ui.Gold.Render("affordable")
				default:
					state = ui.Muted.Render("too expensive")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n",
					item.Emoji,
					item.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, %d pts)", item.ID, item.Cost)),
					state)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Tip: finish L/XL tasks to earn points faster."))
			return nil
		},
	}

	return cmd
}
