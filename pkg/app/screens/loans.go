package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/components"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/services"
)

// LoansScreen lists checked-out items and returns them.
type LoansScreen struct {
	controller *services.LibraryController
	itemList   *components.ItemList
	status     string
	err        error
	width      int
	height     int
}

func NewLoansScreen(controller *services.LibraryController) *LoansScreen {
	return &LoansScreen{
		controller: controller,
		itemList:   components.NewItemList("Nothing is checked out."),
	}
}

func (s *LoansScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *LoansScreen) Typing() bool {
	return false
}

func (s *LoansScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.itemList.Width = msg.Width - 4
		s.itemList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.itemList.Prev()
		case "down", "j":
			s.itemList.Next()
		case "r", "enter":
			if selected := s.itemList.Selected(); selected != nil {
				s.giveBack(selected.Title)
			}
		}
	}

	return s, nil
}

func (s *LoansScreen) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("📖 On loan (%d)", len(s.itemList.Items)))

	var statusLine string
	switch {
	case s.err != nil:
		statusLine = styles.StatusCheckedOut.Render(s.err.Error()) + "\n\n"
	case s.status != "":
		statusLine = styles.StatusOnShelf.Render(s.status) + "\n\n"
	}

	help := styles.HelpStyle.Render("↑/k ↓/j: move • r/enter: return • tab: shelf • q: quit")

	return fmt.Sprintf("%s\n%s%s\n%s", header, statusLine, s.itemList.View(), help)
}

func (s *LoansScreen) refresh() {
	s.itemList.SetItems(s.controller.Loans())
}

func (s *LoansScreen) giveBack(title string) {
	if err := s.controller.Return(title); err != nil {
		s.err = err
		s.status = ""
	} else {
		s.err = nil
		s.status = fmt.Sprintf("Returned %q. Thank you!", title)
	}
	s.refresh()
}
