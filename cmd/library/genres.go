package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres in the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		controller, logger, err := newController(cmd)
		cobra.CheckErr(err)
		defer logger.Sync()

		catalog := controller.Catalog()
		out := cmd.OutOrStdout()
		if catalog.Len() == 0 {
			fmt.Fprintln(out, "📚 The catalog is empty.")
			return
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("Genre", "On shelf", "Total")

		for _, genre := range catalog.Genres() {
			total, available := catalog.GenreCount(genre)
			t.Row(genre, fmt.Sprintf("%d", available), fmt.Sprintf("%d", total))
		}

		fmt.Fprintln(out, t)
	},
}
