package tui

import (
	"github.com/MKhiriev/go-secret-keeper/internal/notify"
	"github.com/MKhiriev/go-secret-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type refreshMsg struct{}

type unlockDoneMsg struct {
	err error
}

type savedMsg struct {
	res service.SaveResult
	err error
}

type deletedMsg struct {
	err error
}

type downloadedMsg struct {
	path string
	err  error
}

// busEventMsg carries an event received from the notify bus.
type busEventMsg struct {
	event notify.Event
}

// waitEvent delivers the next bus event. A closed channel ends the loop.
func waitEvent(events <-chan notify.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return busEventMsg{event: e}
	}
}
