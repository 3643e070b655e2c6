package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/screens"
	"github.com/kerbaras/library/pkg/services"
)

type App struct {
	controller *services.LibraryController
}

func NewApp(controller *services.LibraryController) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
