package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/services"
)

type screenType int

const (
	shelfView screenType = iota
	loansView
)

// SwitchScreenMsg asks the root screen to show another tab.
type SwitchScreenMsg struct {
	Screen string
}

// RootScreen hosts the shelf and loans tabs. Catalog calls only happen in
// Update, on the program's event loop.
type RootScreen struct {
	controller *services.LibraryController

	currentView screenType
	shelf       *ShelfScreen
	loans       *LoansScreen

	width  int
	height int
}

func NewRootScreen(controller *services.LibraryController) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: shelfView,
		shelf:       NewShelfScreen(controller),
		loans:       NewLoansScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.shelf.Init()
}

func (r *RootScreen) typing() bool {
	return r.currentView == shelfView && r.shelf.Typing()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Both tabs need the size, not only the visible one
		r.shelf.Update(msg)
		r.loans.Update(msg)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !r.typing() {
				return r, tea.Quit
			}
		case "tab":
			next := "loans"
			if r.currentView == loansView {
				next = "shelf"
			}
			return r, func() tea.Msg { return SwitchScreenMsg{Screen: next} }
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "shelf":
			r.currentView = shelfView
			r.shelf.refresh()
			return r, nil
		case "loans":
			r.currentView = loansView
			return r, r.loans.Init()
		}
		return r, nil
	}

	// Forward message to active screen
	switch r.currentView {
	case shelfView:
		newModel, cmd := r.shelf.Update(msg)
		r.shelf = newModel.(*ShelfScreen)
		return r, cmd
	case loansView:
		newModel, cmd := r.loans.Update(msg)
		r.loans = newModel.(*LoansScreen)
		return r, cmd
	}

	return r, nil
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case shelfView:
		content = r.shelf.View()
	case loansView:
		content = r.loans.View()
	}

	return fmt.Sprintf("%s\n\n%s", r.renderTabs(), content)
}

func (r *RootScreen) renderTabs() string {
	shelfTab := "Shelf"
	loansTab := fmt.Sprintf("Loans (%d)", len(r.controller.Loans()))

	if r.currentView == shelfView {
		shelfTab = styles.ActiveTabStyle.Render(shelfTab)
		loansTab = styles.InactiveTabStyle.Render(loansTab)
	} else {
		shelfTab = styles.InactiveTabStyle.Render(shelfTab)
		loansTab = styles.ActiveTabStyle.Render(loansTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, shelfTab, loansTab)
}
