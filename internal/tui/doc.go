// Package tui is the terminal front end of the secret keeper client.
//
// It renders the active edit session of a [service.SecretWorkspace] and
// turns key presses into workspace operations. Long-running operations run
// as Bubble Tea commands; the key password prompt they may trigger is shown
// inside the running program by [PasswordPrompt].
package tui
