package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordPrompt_AttachedProgram(t *testing.T) {
	p := NewPasswordPrompt()
	p.send = func(msg tea.Msg) {
		req, ok := msg.(passwordRequestMsg)
		require.True(t, ok)
		assert.Equal(t, "Enter key password:", req.prompt)
		req.reply <- passwordReply{password: "kp"}
	}

	got, err := p.CollectPassword(context.Background(), "Enter key password:")
	require.NoError(t, err)
	assert.Equal(t, "kp", got)
}

func TestPasswordPrompt_AttachedProgramCancelled(t *testing.T) {
	p := NewPasswordPrompt()
	p.send = func(msg tea.Msg) {
		msg.(passwordRequestMsg).reply <- passwordReply{err: service.ErrPromptCancelled}
	}

	_, err := p.CollectPassword(context.Background(), "?")
	assert.ErrorIs(t, err, service.ErrPromptCancelled)
}

func TestPasswordPrompt_ContextDone(t *testing.T) {
	p := NewPasswordPrompt()
	p.send = func(tea.Msg) {}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.CollectPassword(ctx, "?")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPasswordPrompt_PipedInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "line", input: "s3cret\n", want: "s3cret"},
		{name: "windows line ending", input: "s3cret\r\n", want: "s3cret"},
		{name: "no trailing newline", input: "s3cret", want: "s3cret"},
		{name: "empty input", input: "", wantErr: service.ErrPromptCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPasswordPrompt()
			p.in = strings.NewReader(tt.input)
			p.out = &out

			got, err := p.CollectPassword(context.Background(), "Enter password to unlock")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter password to unlock")
		})
	}
}

func TestPasswordPrompt_Terminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	p := NewPasswordPrompt()
	p.in = f
	p.out = &out
	p.isTerminal = func(fd int) bool { return fd == int(f.Fd()) }
	p.readPassword = func(int) ([]byte, error) { return []byte("no-echo"), nil }

	got, err := p.CollectPassword(context.Background(), "Enter key password:")
	require.NoError(t, err)
	assert.Equal(t, "no-echo", got)
	assert.NotContains(t, out.String(), "no-echo")

	p.readPassword = func(int) ([]byte, error) { return nil, errors.New("interrupted") }
	_, err = p.CollectPassword(context.Background(), "Enter key password:")
	assert.Error(t, err)
}

// ── promptModel ──

func TestPromptModel(t *testing.T) {
	reply := make(chan passwordReply, 1)
	p := newPromptModel(passwordRequestMsg{prompt: "Enter key password:", reply: reply})

	_, done := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hunter2")})
	assert.False(t, done)
	assert.Contains(t, p.View(), "Enter key password:")
	assert.NotContains(t, p.View(), "hunter2")

	_, done = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	assert.Equal(t, passwordReply{password: "hunter2"}, <-reply)
}

func TestPromptModel_Esc(t *testing.T) {
	reply := make(chan passwordReply, 1)
	p := newPromptModel(passwordRequestMsg{prompt: "?", reply: reply})

	_, done := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, done)
	r := <-reply
	assert.ErrorIs(t, r.err, service.ErrPromptCancelled)

	// второй ответ не блокирует
	p.cancel()
}
