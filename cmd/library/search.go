package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Look a book up by title",
	Long:  "Find a book by its exact title, ignoring case, and show whether it is on the shelf",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller, logger, err := newController(cmd)
		cobra.CheckErr(err)
		defer logger.Sync()

		title := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		item, err := controller.Find(title)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("Title", "Author", "Genre", "Status")

		status := styles.AvailabilityStyle(item.IsAvailable()).Render(styles.AvailabilityLabel(item.IsAvailable()))
		t.Row(truncateString(item.Title, 58), item.Author, item.Genre, status)

		fmt.Fprintln(out, t)
	},
}
