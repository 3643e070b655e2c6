package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/library/pkg/data"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [genre]",
	Short: "List the books on the shelf",
	Long:  "Display the available books of a genre, or of every genre, in a table",
	Run: func(cmd *cobra.Command, args []string) {
		controller, logger, err := newController(cmd)
		cobra.CheckErr(err)
		defer logger.Sync()

		var items []*data.Item
		heading := "📚 On the shelf"
		if len(args) > 0 {
			genre := strings.Join(args, " ")
			items = controller.Available(genre)
			heading = fmt.Sprintf("📚 Books in the %s genre", genre)
		} else {
			items = controller.AllAvailable()
		}

		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "Sorry, no books are available in that genre.")
			return
		}

		fmt.Fprintf(out, "\n%s (%d)\n\n", heading, len(items))
		fmt.Fprintln(out, itemTable(items).View())
	},
}

func itemTable(items []*data.Item) table.Model {
	columns := []table.Column{
		{Title: "Title", Width: 40},
		{Title: "Author", Width: 20},
		{Title: "Genre", Width: 18},
	}

	rows := []table.Row{}
	for _, item := range items {
		rows = append(rows, table.Row{
			truncateString(item.Title, 38),
			truncateString(item.Author, 18),
			item.Genre,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)
	// SetHeight takes the header's rendered height out of the viewport
	t.SetHeight(len(rows) + lipgloss.Height(s.Header.Render("Title")))

	return t
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
