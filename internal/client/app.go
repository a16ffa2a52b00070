package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/service"
	"github.com/study2skills/study2skills/internal/tui"
	"github.com/study2skills/study2skills/models"
)

// App runs the interactive client: restores (or establishes) a session,
// starts the automation engine and drives the TUI main loop until the user
// quits. Logout restarts the whole cycle with a fresh login flow.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: log.GetChildLogger()}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	user, ok := a.services.Auth.CurrentUser(ctx)
	if !ok {
		var err error
		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
	} else {
		a.logger.Info().Str("email", user.Email).Msg("session restored")
	}

	a.touchStreak(ctx, &user)

	defer a.services.Jobs.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.services.Jobs.Stop()
		if err = a.services.Auth.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		return a.Run()
	}

	return nil
}

// touchStreak records today's activity for persisted accounts. Guests keep
// their fabricated streak untouched.
func (a *App) touchStreak(ctx context.Context, user *models.UserProfile) {
	if user.IsGuest() {
		return
	}

	updated, err := a.services.Gamification.TouchStreak(ctx, *user, timeNow())
	if err != nil {
		a.logger.Warn().Err(err).Msg("streak update failed")
		return
	}
	*user = updated
}
