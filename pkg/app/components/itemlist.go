package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/data"
)

type ItemList struct {
	Items         []*data.Item
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewItemList(emptyMessage string) *ItemList {
	return &ItemList{
		Items:         []*data.Item{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  emptyMessage,
	}
}

func (l *ItemList) SetItems(items []*data.Item) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *ItemList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *ItemList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *ItemList) Selected() *data.Item {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return l.Items[l.SelectedIndex]
}

func (l *ItemList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.UnsetMarginBottom().Render(item.Title)
		author := styles.SubtitleStyle.Render("by " + item.Author)
		genre := styles.MutedStyle.Render(item.Genre)
		status := styles.AvailabilityStyle(item.IsAvailable()).Render(styles.AvailabilityLabel(item.IsAvailable()))

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			author,
			lipgloss.JoinHorizontal(lipgloss.Top, genre, "  ", status),
		)

		b.WriteString(cardStyle.Width(l.Width - 4).Render(cardContent))
		b.WriteString("\n")
	}

	return b.String()
}
