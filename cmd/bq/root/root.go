package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boardquest/internal/ui"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "bq",
	Short:         "Boardquest — gamified kanban board with a points economy",
	Long:          "Boardquest is a local-first task board: four workflow columns, per-task time tracking, and a points shop fed by completed tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable diagnostic logging")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newMoveCmd(),
		newRmCmd(),
		newTimerCmd(),
		newListCmd(),
		newStatsCmd(),
		newShopCmd(),
		newBuyCmd(),
		newSettingsCmd(),
		newResetCmd(),
		newExportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
