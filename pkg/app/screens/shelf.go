package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/components"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/services"
)

// ShelfScreen lets the user pick a genre and borrow what is on the shelf.
type ShelfScreen struct {
	controller *services.LibraryController
	input      textinput.Model
	itemList   *components.ItemList
	genre      string
	status     string
	err        error
	width      int
	height     int
}

func NewShelfScreen(controller *services.LibraryController) *ShelfScreen {
	ti := textinput.New()
	ti.Placeholder = "Genre, e.g. Science Fiction"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return &ShelfScreen{
		controller: controller,
		input:      ti,
		itemList:   components.NewItemList("Sorry, no books are available in that genre."),
	}
}

func (s *ShelfScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Typing reports whether key presses go to the genre input.
func (s *ShelfScreen) Typing() bool {
	return s.input.Focused()
}

func (s *ShelfScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.itemList.Width = msg.Width - 4
		s.itemList.Height = msg.Height - 14

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "enter":
				s.genre = s.input.Value()
				s.status = ""
				s.err = nil
				s.refresh()
				s.input.Blur()
				return s, nil
			case "esc":
				s.input.Blur()
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "up", "k":
			s.itemList.Prev()
		case "down", "j":
			s.itemList.Next()
		case "/":
			s.input.SetValue("")
			s.input.Focus()
			return s, textinput.Blink
		case "b", "enter":
			if selected := s.itemList.Selected(); selected != nil {
				s.borrow(selected.Title)
			}
		}
	}

	return s, nil
}

func (s *ShelfScreen) View() string {
	header := styles.TitleStyle.Render("📚 Shelf")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	input := inputStyle.Render(s.input.View())

	var body string
	if s.genre != "" || !s.input.Focused() {
		body = styles.SubtitleStyle.Render(fmt.Sprintf("Books in the %s genre:", s.genre)) + "\n\n" + s.itemList.View()
	}

	var statusLine string
	switch {
	case s.err != nil:
		statusLine = styles.StatusCheckedOut.Render(s.err.Error()) + "\n"
	case s.status != "":
		statusLine = styles.StatusOnShelf.Render(s.status) + "\n"
	}

	help := styles.HelpStyle.Render(
		"enter: show genre • /: new genre • ↑/k ↓/j: move • b: borrow • tab: loans • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n%s", header, input, statusLine, body, help)
}

func (s *ShelfScreen) refresh() {
	s.itemList.SetItems(s.controller.Available(s.genre))
}

func (s *ShelfScreen) borrow(title string) {
	if err := s.controller.Borrow(title); err != nil {
		s.err = err
		s.status = ""
	} else {
		s.err = nil
		s.status = fmt.Sprintf("Borrowed %q. Enjoy!", title)
	}
	s.refresh()
}
