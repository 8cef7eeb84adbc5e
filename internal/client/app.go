package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/config"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/service"
	"github.com/MKhiriev/go-secret-keeper/internal/tui"
)

// App runs one client invocation: it opens the configured secret and
// either copies a field of it or shows it in the terminal UI.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	prompt   *tui.PasswordPrompt
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp builds the adapters, services and UI described by cfg.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	api, err := adapter.NewGraphQLSecretAPI(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create secret api: %w", err)
	}

	files, err := adapter.NewSharedFileTransfer(api, cfg.Adapter.FilesPath)
	if err != nil {
		return nil, fmt.Errorf("create file transfer: %w", err)
	}

	prompt := tui.NewPasswordPrompt()
	services := service.NewClientServices(api, files, prompt, tui.SystemClipboard{}, cfg, log)

	return newApp(cfg, services, prompt, log), nil
}

func newApp(cfg *config.ClientConfig, services *service.ClientServices, prompt *tui.PasswordPrompt, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		services: services,
		prompt:   prompt,
		ui:       tui.New(services.Workspace, services.Bus, prompt, cfg.App.DownloadDir, log),
		logger:   log,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	ws := a.services.Workspace

	if id := a.cfg.App.SecretID; id != "" {
		if _, err := ws.Open(ctx, id); err != nil {
			return fmt.Errorf("open secret %s: %w", id, err)
		}
		defer ws.Close()
	}

	if field := a.cfg.App.CopyField; field != "" {
		return a.copyField(ctx, field)
	}

	return a.ui.Run(ctx)
}

// copyField unlocks the open secret, asking for the key password on the
// terminal, and copies field to the clipboard.
func (a *App) copyField(ctx context.Context, field string) error {
	ws := a.services.Workspace

	if err := ws.Unlock(ctx); err != nil {
		if errors.Is(err, service.ErrPromptCancelled) {
			return err
		}
		return fmt.Errorf("%s: %w", service.UserMessage(err), err)
	}
	if err := ws.CopyField(field); err != nil {
		return fmt.Errorf("%s: %w", service.UserMessage(err), err)
	}

	a.logger.Info().Str("field", field).Msg("field copied to clipboard")
	return nil
}
