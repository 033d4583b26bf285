package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"boardquest/internal/catalog"
	"boardquest/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy a shop upgrade",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required (see 'bq shop')")
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

			itemID := args[0]
			item, known := catalog.ItemByID(itemID)
			if !known {
				return fmt.Errorf("unknown item %q (see 'bq shop')", itemID)
			}

			rec, ok := svc.Purchase(ctx, itemID)
			if !ok {
				if svc.HasUpgrade(itemID) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s is already owned\n", ui.Muted.Render(ui.IconInfo), item.Name)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Not enough points: %s costs %d, you have %d\n",
					ui.Warn.Render(ui.IconWarn), item.Name, item.Cost, svc.Points())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconShop+" Bought"),
				rec.Emoji,
				rec.Name,
				ui.Muted.Render(fmt.Sprintf("(-%d %s)", item.Cost, ui.IconPoints)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", svc.Points()))
			return nil
		},
	}

	return cmd
}
