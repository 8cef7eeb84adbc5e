package tui

import (
	"context"

	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/notify"
	"github.com/MKhiriev/go-secret-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	workspace   service.SecretWorkspace
	bus         *notify.Bus
	prompt      *PasswordPrompt
	downloadDir string
	logger      *logger.Logger
}

// New returns a TUI over workspace. prompt must be the prompt the services
// were built with, so that password questions are drawn by the program.
// bus may be nil.
func New(workspace service.SecretWorkspace, bus *notify.Bus, prompt *PasswordPrompt, downloadDir string, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{workspace: workspace, bus: bus, prompt: prompt, downloadDir: downloadDir, logger: log}
}

// Run shows the active session until the user quits or ctx is done. Key
// events are applied to the session while the program runs.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var events <-chan notify.Event
	if t.bus != nil {
		sub := t.bus.Subscribe(notify.DefaultBuffer)
		defer t.bus.Unsubscribe(sub.ID)
		events = sub.C
	}

	program := tea.NewProgram(newSecretModel(ctx, t.workspace, t.downloadDir, events), tea.WithAltScreen(), tea.WithContext(ctx))

	t.prompt.Attach(program)
	defer t.prompt.Detach()

	go t.workspace.Watch(ctx)

	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Msg("terminal UI stopped")
		return err
	}
	return nil
}
