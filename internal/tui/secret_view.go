package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/notify"
	"github.com/MKhiriev/go-secret-keeper/internal/service"
	"github.com/MKhiriev/go-secret-keeper/internal/utils"
	"github.com/MKhiriev/go-secret-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshInterval = time.Second
	activityLines   = 3
)

type viewMode int

const (
	modeView viewMode = iota
	modeEdit
	modeRename
	modeAttach
	modeConfirmDelete
)

// secretModel shows the active edit session and drives the workspace.
type secretModel struct {
	ctx         context.Context
	workspace   service.SecretWorkspace
	downloadDir string
	passwords   utils.PasswordOptions
	events      <-chan notify.Event

	snap   *snapshot
	cursor int
	reveal bool

	mode      viewMode
	input     textinput.Model
	editField string

	prompt  *promptModel
	pending []passwordRequestMsg

	busy     string
	status   string
	errMsg   string
	warnings []string
	activity []string
}

func newSecretModel(ctx context.Context, workspace service.SecretWorkspace, downloadDir string, events <-chan notify.Event) secretModel {
	m := secretModel{
		ctx:         ctx,
		workspace:   workspace,
		downloadDir: downloadDir,
		passwords:   utils.DefaultPasswordOptions(),
		events:      events,
	}
	m.refresh()
	return m
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (m secretModel) Init() tea.Cmd {
	return tea.Batch(refreshTick(), waitEvent(m.events))
}

// refresh re-reads the active session. Key events may close or reload it
// at any time.
func (m *secretModel) refresh() {
	var snap *snapshot
	err := m.workspace.WithActive(func(s *service.Session) error {
		snap = takeSnapshot(s)
		return nil
	})
	if err != nil {
		m.snap = nil
		m.cursor = 0
		return
	}

	m.snap = snap
	if m.cursor >= len(snap.rows) {
		m.cursor = len(snap.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *secretModel) setError(err error) {
	m.status = ""
	m.errMsg = errorText(err)
	if m.errMsg == "" {
		m.status = "Cancelled"
	}
}

func (m *secretModel) setStatus(status string) {
	m.errMsg = ""
	m.status = status
}

func (m secretModel) selected() (row, bool) {
	if m.snap == nil || m.cursor < 0 || m.cursor >= len(m.snap.rows) {
		return row{}, false
	}
	return m.snap.rows[m.cursor], true
}

func (m secretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordRequestMsg:
		if m.prompt == nil {
			m.prompt = newPromptModel(msg)
			return m, textinput.Blink
		}
		m.pending = append(m.pending, msg)
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, refreshTick()

	case busEventMsg:
		m.refresh()
		m.record(msg.event)
		return m, waitEvent(m.events)

	case unlockDoneMsg:
		m.busy = ""
		m.refresh()
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("Unlocked")
		return m, nil

	case savedMsg:
		return m.handleSaved(msg), nil

	case deletedMsg:
		m.busy = ""
		m.refresh()
		if msg.err != nil {
			m.errMsg = service.UserMessageOr(msg.err, app.MsgFailedToDelete)
			return m, nil
		}
		m.setStatus("Secret deleted")
		return m, nil

	case downloadedMsg:
		m.busy = ""
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("Saved to " + msg.path)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// record keeps a short log of bus events for the footer.
func (m *secretModel) record(e notify.Event) {
	var line string
	switch e := e.(type) {
	case notify.SecretUpdated:
		line = fmt.Sprintf("Secret %q saved", e.Secret.Name)
		if e.Created {
			line = fmt.Sprintf("Secret %q created", e.Secret.Name)
		}
	case notify.SecretDeleted:
		line = fmt.Sprintf("Secret %s deleted", e.SecretID)
	case notify.KeyUpdated:
		line = fmt.Sprintf("Key %q changed", e.Key.Name)
	case notify.KeyDeleted:
		line = fmt.Sprintf("Key %s removed", e.KeyID)
	default:
		return
	}

	m.activity = append(m.activity, line)
	if len(m.activity) > activityLines {
		m.activity = m.activity[len(m.activity)-activityLines:]
	}
}

func (m secretModel) handleSaved(msg savedMsg) secretModel {
	m.busy = ""
	m.refresh()
	m.warnings = msg.res.Warnings

	switch {
	case errors.Is(msg.err, service.ErrPromptCancelled):
		m.setStatus("Save cancelled")
	case msg.err != nil:
		m.status = ""
		m.errMsg = msg.res.Message
		if m.errMsg == "" {
			m.errMsg = service.UserMessageOr(msg.err, app.MsgFailedToSave)
		}
	case !msg.res.Applied:
		m.setStatus(app.MsgSecretClosed)
	default:
		m.setStatus("Saved")
	}
	return m
}

func (m secretModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		m.cancelPrompts()
		return m, tea.Quit
	}

	if m.prompt != nil {
		cmd, done := m.prompt.Update(msg)
		if done {
			m.nextPrompt()
		}
		return m, cmd
	}

	switch m.mode {
	case modeEdit, modeRename, modeAttach:
		return m.updateInput(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}

	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}
	if m.busy != "" || m.snap == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.snap.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.unlock):
		if !m.snap.locked {
			m.setStatus("Already unlocked")
			return m, nil
		}
		m.busy = "Unlocking"
		return m, m.cmdUnlock()
	case key.Matches(msg, keys.save):
		m.busy = "Saving"
		return m, m.cmdSave()
	case key.Matches(msg, keys.delete):
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.edit):
		m.startEdit()
	case key.Matches(msg, keys.rename):
		m.startInput(modeRename, "name", m.snap.name)
	case key.Matches(msg, keys.copy):
		m.copySelected()
	case key.Matches(msg, keys.generate):
		m.generatePassword()
	case key.Matches(msg, keys.attach):
		if !m.snap.isFiles() {
			m.setError(service.ErrUnsupportedOperation)
			return m, nil
		}
		m.startInput(modeAttach, "path to file", "")
	case key.Matches(msg, keys.remove):
		m.removeSelected()
	case key.Matches(msg, keys.download):
		r, ok := m.selected()
		if !ok || !m.snap.isFiles() {
			m.setError(service.ErrUnsupportedOperation)
			return m, nil
		}
		m.busy = "Downloading"
		return m, m.cmdDownload(r.index)
	}

	return m, nil
}

func (m *secretModel) nextPrompt() {
	m.prompt = nil
	if len(m.pending) > 0 {
		m.prompt = newPromptModel(m.pending[0])
		m.pending = m.pending[1:]
	}
}

func (m *secretModel) cancelPrompts() {
	for m.prompt != nil {
		m.prompt.cancel()
		m.nextPrompt()
	}
}

func (m *secretModel) startInput(mode viewMode, placeholder, value string) {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = 48
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()

	m.input = input
	m.mode = mode
}

func (m *secretModel) startEdit() {
	r, ok := m.selected()
	if !ok || r.field == "" {
		m.setError(service.ErrUnsupportedOperation)
		return
	}
	if r.status == editor.FieldLocked {
		m.setError(editor.ErrSecretLocked)
		return
	}
	m.editField = r.field
	m.startInput(modeEdit, strings.ToLower(r.label), r.value)
}

func (m secretModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeView
		return m, nil
	case key.Matches(msg, keys.enter):
		err := m.commitInput(m.input.Value())
		m.mode = modeView
		m.refresh()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *secretModel) commitInput(value string) error {
	switch m.mode {
	case modeEdit:
		field := m.editField
		return m.workspace.WithActive(func(s *service.Session) error {
			return s.Editor.Edit(field, value)
		})
	case modeRename:
		return m.workspace.WithActive(func(s *service.Session) error {
			s.Rename(strings.TrimSpace(value))
			return nil
		})
	case modeAttach:
		return m.attachFile(strings.TrimSpace(value))
	}
	return nil
}

func (m *secretModel) attachFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("attach %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("attach %q: %w", path, ErrNotAFile)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("attach %q: %w", path, err)
	}

	ctx := m.ctx
	file := models.PendingFile{Name: filepath.Base(path), Content: content}
	err = m.workspace.WithActive(func(s *service.Session) error {
		fe, ok := s.Editor.(*editor.FilesEditor)
		if !ok {
			return service.ErrUnsupportedOperation
		}
		return fe.AddPendingFile(ctx, file)
	})
	if err == nil {
		m.setStatus(fmt.Sprintf("%s (%s) attached, save to upload", file.Name, formatSize(file.Size())))
	}
	return err
}

func (m secretModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeView
		m.busy = "Deleting"
		return m, m.cmdDelete()
	case key.Matches(msg, keys.no):
		m.mode = modeView
	}
	return m, nil
}

func (m *secretModel) copySelected() {
	r, ok := m.selected()
	if !ok || r.field == "" {
		m.setError(service.ErrNothingToCopy)
		return
	}
	if err := m.workspace.CopyField(r.field); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fieldLabel(r.field) + " copied")
}

func (m *secretModel) generatePassword() {
	if _, err := m.workspace.GeneratePassword(m.passwords); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setStatus("Password generated and copied")
}

func (m *secretModel) removeSelected() {
	r, ok := m.selected()
	if !ok || !m.snap.isFiles() {
		m.setError(ErrNothingChosen)
		return
	}
	err := m.workspace.WithActive(func(s *service.Session) error {
		fe, ok := s.Editor.(*editor.FilesEditor)
		if !ok {
			return service.ErrUnsupportedOperation
		}
		return fe.RemoveEntry(r.index)
	})
	m.refresh()
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(r.value + " removed, save to apply")
}

func (m secretModel) cmdUnlock() tea.Cmd {
	ctx, ws := m.ctx, m.workspace
	return func() tea.Msg {
		return unlockDoneMsg{err: ws.Unlock(ctx)}
	}
}

func (m secretModel) cmdSave() tea.Cmd {
	ctx, ws := m.ctx, m.workspace
	return func() tea.Msg {
		res, err := ws.Save(ctx)
		return savedMsg{res: res, err: err}
	}
}

func (m secretModel) cmdDelete() tea.Cmd {
	ctx, ws := m.ctx, m.workspace
	return func() tea.Msg {
		return deletedMsg{err: ws.Delete(ctx)}
	}
}

func (m secretModel) cmdDownload(index int) tea.Cmd {
	ctx, ws, dir := m.ctx, m.workspace, m.downloadDir
	return func() tea.Msg {
		if dir == "" {
			return downloadedMsg{err: ErrNoDownloadDir}
		}
		name, content, err := ws.DownloadFile(ctx, index)
		if err != nil {
			return downloadedMsg{err: err}
		}
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return downloadedMsg{err: fmt.Errorf("create download directory: %w", err)}
		}
		path := filepath.Join(dir, filepath.Base(name))
		if err = os.WriteFile(path, content, 0o600); err != nil {
			return downloadedMsg{err: fmt.Errorf("write %q: %w", path, err)}
		}
		return downloadedMsg{path: path}
	}
}

func (m secretModel) View() string {
	if m.prompt != nil {
		return m.prompt.View()
	}
	if m.snap == nil {
		return renderPage(titleStyle.Render("SECRET"), app.MsgNoSecretOpen+m.footer(), "q: quit")
	}
	if m.mode == modeConfirmDelete {
		return overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", m.snap.name))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name      │ %s\n", valueOrDash(m.snap.name)))
	if m.snap.comments != "" {
		b.WriteString(fmt.Sprintf("Comments  │ %s\n", fitText(m.snap.comments, 48)))
	}
	b.WriteString(fmt.Sprintf("Key       │ %s\n", valueOrDash(m.snap.keyName)))
	b.WriteString("──────────┼────────────────────────────────────────────\n")

	if len(m.snap.rows) == 0 {
		b.WriteString("          │ -\n")
	}
	for i, r := range m.snap.rows {
		line := fmt.Sprintf("%-10s│ %s", fitText(r.label, 10), m.renderValue(r))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	switch m.mode {
	case modeEdit, modeRename, modeAttach:
		b.WriteString("\n[")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}

	b.WriteString(m.footer())

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m secretModel) title() string {
	state := "unlocked"
	if m.snap.locked {
		state = "locked"
	}
	if m.snap.isNew {
		state = "new"
	}
	return titleStyle.Render(fmt.Sprintf("%s  [%s]", strings.ToUpper(variantName(m.snap.variant)), state))
}

func (m secretModel) renderValue(r row) string {
	var v string
	switch {
	case r.status == editor.FieldLocked:
		v = lockedStyle.Render("[locked]")
	case r.value == "":
		v = "-"
	case r.sensitive && !m.reveal:
		v = "••••••••"
	default:
		v = fitText(r.value, 40)
	}
	if r.pending {
		v += helpStyle.Render(fmt.Sprintf("  (not uploaded, %s)", formatSize(r.size)))
	}
	if r.dirty {
		v += " *"
	}
	return v
}

func (m secretModel) footer() string {
	var b strings.Builder
	if m.busy != "" {
		b.WriteString("\n[" + m.busy + "...]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	for _, w := range m.warnings {
		b.WriteString("\n" + warnStyle.Render(w))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if len(m.activity) > 0 {
		b.WriteString("\n" + helpStyle.Render("Recent: "+strings.Join(m.activity, "; ")) + "\n")
	}
	return b.String()
}

func (m secretModel) hotKeys() string {
	switch m.mode {
	case modeEdit, modeRename, modeAttach:
		return "enter: apply │ esc: cancel"
	}

	parts := []string{"↑/↓: move", "u: unlock"}
	if m.snap.isFiles() {
		parts = append(parts, "a: attach", "x: remove", "o: download")
	} else {
		parts = append(parts, "e: edit", "c: copy", "v: reveal")
	}
	if m.snap.isWebsite() {
		parts = append(parts, "g: generate")
	}
	parts = append(parts, "r: rename", "s: save", "d: delete", "q: quit")
	return strings.Join(parts, " │ ")
}
