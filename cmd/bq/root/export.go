package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boardquest/internal/report"
	"boardquest/internal/ui"
)

func newExportCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board as json, csv or pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := report.NewExporter(svc).Export(format)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s %s\n", ui.Good.Render(ui.IconDone), output, ui.Muted.Render(fmt.Sprintf("(%d bytes)", len(data))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json|csv|pdf)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file ('-' for stdout)")

	return cmd
}
