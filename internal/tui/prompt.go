// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-secret-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// PasswordPrompt implements [service.PasswordPrompt].
//
// While a program is attached the prompt is drawn by the program and the
// caller blocks until the user answers. Without a program the password is
// read from the terminal without echo, or as a plain line when stdin is
// not a terminal.
type PasswordPrompt struct {
	mu   sync.Mutex
	send func(tea.Msg)

	in           io.Reader
	out          io.Writer
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewPasswordPrompt returns a prompt reading from os.Stdin and writing the
// question to os.Stderr.
func NewPasswordPrompt() *PasswordPrompt {
	return &PasswordPrompt{
		in:           os.Stdin,
		out:          os.Stderr,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

// Attach routes prompts to prog until Detach is called.
func (p *PasswordPrompt) Attach(prog *tea.Program) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = prog.Send
}

func (p *PasswordPrompt) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = nil
}

// CollectPassword implements [service.PasswordPrompt].
func (p *PasswordPrompt) CollectPassword(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()

	if send != nil {
		return askProgram(ctx, send, prompt)
	}
	return p.readTerminal(prompt)
}

func askProgram(ctx context.Context, send func(tea.Msg), prompt string) (string, error) {
	reply := make(chan passwordReply, 1)
	send(passwordRequestMsg{prompt: prompt, reply: reply})

	select {
	case r := <-reply:
		return r.password, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *PasswordPrompt) readTerminal(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt+" ")

	if f, ok := p.in.(interface{ Fd() uintptr }); ok && p.isTerminal(int(f.Fd())) {
		password, err := p.readPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", service.ErrPromptCancelled
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
