package tui

import (
	"strings"

	"github.com/MKhiriev/go-secret-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordRequestMsg asks the program to collect a password. Exactly one
// passwordReply is sent on reply.
type passwordRequestMsg struct {
	prompt string
	reply  chan<- passwordReply
}

type passwordReply struct {
	password string
	err      error
}

// promptModel is the masked password input shown over the secret view.
type promptModel struct {
	req   passwordRequestMsg
	input textinput.Model
}

func newPromptModel(req passwordRequestMsg) *promptModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &promptModel{req: req, input: input}
}

// Update handles a key press and reports whether the prompt was answered.
func (p *promptModel) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.enter):
		p.answer(passwordReply{password: p.input.Value()})
		return nil, true
	case key.Matches(msg, keys.esc):
		p.cancel()
		return nil, true
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd, false
}

func (p *promptModel) cancel() {
	p.answer(passwordReply{err: service.ErrPromptCancelled})
}

func (p *promptModel) answer(r passwordReply) {
	p.input.Reset()
	select {
	case p.req.reply <- r:
	default:
	}
}

func (p *promptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.req.prompt))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
