package cmd

import (
	"os"

	"github.com/kerbaras/library/pkg/app"
	"github.com/kerbaras/library/pkg/services"
	"github.com/kerbaras/library/pkg/sources"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "A tiny library catalog",
	Long:  "Browse books by genre, borrow them and bring them back",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, logger, err := newController(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		return app.NewConsole(controller, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("seed", "s", "", "Seed file for the catalog (.yaml, .yml or .csv); built-in collection when empty")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log catalog operations to stderr")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(genresCmd)
}

// newController builds the catalog from the --seed flag. The catalog only
// lives as long as the command.
func newController(cmd *cobra.Command) (*services.LibraryController, *zap.Logger, error) {
	seed, _ := cmd.Flags().GetString("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger, err := services.NewLogger(verbose)
	if err != nil {
		return nil, nil, err
	}

	src, err := sources.Open(seed)
	if err != nil {
		return nil, nil, err
	}

	controller, err := services.NewLibraryControllerFromSource(src, logger)
	if err != nil {
		return nil, nil, err
	}
	return controller, logger, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
