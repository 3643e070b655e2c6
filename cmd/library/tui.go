package cmd

import (
	"github.com/kerbaras/library/pkg/app"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the catalog in a full-screen interface",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		controller, logger, err := newController(cmd)
		cobra.CheckErr(err)
		defer logger.Sync()

		cobra.CheckErr(app.NewApp(controller).Run())
	},
}
