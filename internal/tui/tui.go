package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/service"
	"github.com/study2skills/study2skills/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register/guest pages until a session is
// established or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserProfile, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, t.services.Auth),
		"login":    NewLoginModel(ctx, t.services.Auth),
		"register": NewRegisterModel(ctx, t.services.Auth),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserProfile{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserProfile{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authed {
		return models.UserProfile{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the dashboard for an established session. Returns logout
// true when the user asked to switch accounts rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.UserProfile) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
