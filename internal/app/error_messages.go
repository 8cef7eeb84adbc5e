// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// secret keeper client.
//
// All Msg* constants are human-readable message strings shown to the user to
// describe the outcome of an unlock, save or file operation. Keeping them in
// one place ensures consistent wording between the editor, the services and
// the terminal UI.
package app

const (
	// MsgSecretNameRequired is shown when a secret is saved without a name.
	MsgSecretNameRequired = "Secret name is required"

	// MsgSecretTypeRequired is shown when a secret is saved without a type.
	MsgSecretTypeRequired = "Secret type is required"

	// MsgFailedToUnlock is the fallback shown when the server refused to
	// unlock a secret without saying why.
	MsgFailedToUnlock = "Failed to unlock secret"

	// MsgUnableToUnlock prefixes the server's explanation of a failed unlock.
	MsgUnableToUnlock = "Unable to unlock secret. "

	// MsgFailedToDecrypt is shown when a field cannot be decrypted locally,
	// usually because the key password is wrong.
	MsgFailedToDecrypt = "Failed to decrypt text"

	// MsgDataIntegrity is shown when an encrypted field lacks the id or the
	// algorithm tag needed to decrypt it.
	MsgDataIntegrity = "Unable to decrypt due to data integrity issue"

	// MsgUnsupportedAlgorithm is shown when a field is encrypted with an
	// algorithm the client does not implement.
	MsgUnsupportedAlgorithm = "Unsupported encryption algorithm"

	// MsgEmptySecret is shown when a files secret would be saved with no
	// attachment at all.
	MsgEmptySecret = "Unable to save empty secret"

	// MsgFailedToSaveFiles is shown when every new attachment failed to
	// upload and nothing else is left to save.
	MsgFailedToSaveFiles = "Failed to save secret files"

	// MsgFileDropped is formatted with the name of an attachment whose upload
	// failed while the rest of the save went through.
	MsgFileDropped = "Failed to upload %q, the file was not saved"

	// MsgReloadFailed is shown when a save succeeded but the stored state
	// could not be fetched back.
	MsgReloadFailed = "Secret saved, but reloading it failed"

	// MsgNoFilesAttached is shown when a files secret has no attachments.
	MsgNoFilesAttached = "No files attached to save"

	// MsgFileEmpty is shown when an empty file is attached.
	MsgFileEmpty = "File cannot be empty"

	// MsgFileTooLarge is shown when an attachment exceeds the size limit.
	MsgFileTooLarge = "File size exceeds maximum allowed size"

	// MsgFileNameExists is shown when an attachment name is already used.
	MsgFileNameExists = "Another file already exists with this name"

	// MsgTextTooLong is shown when a text blob exceeds the length limit.
	MsgTextTooLong = "Text exceeds maximum allowed length"

	// MsgSecretLocked is shown when an edit is attempted on a locked secret.
	MsgSecretLocked = "Unlock the secret before editing it"

	// MsgFailedToSave is the fallback shown when a save fails without a
	// message from the server.
	MsgFailedToSave = "Failed to save secret"

	// MsgFailedToDelete is the fallback shown when a delete fails without a
	// message from the server.
	MsgFailedToDelete = "Failed to delete secret"

	// MsgServerUnavailable is shown when the server cannot be reached.
	MsgServerUnavailable = "Network is unavailable or the server is down"

	// MsgSessionExpired is shown when the bearer token has expired.
	MsgSessionExpired = "Session expired, log in again"

	// MsgNothingToCopy is shown when a copy is requested for a field that
	// is locked or empty.
	MsgNothingToCopy = "Nothing to copy"

	// MsgNotSupported is shown for an action the open secret type lacks.
	MsgNotSupported = "Not available for this secret type"

	// MsgNoSecretOpen is shown when an action needs an open secret.
	MsgNoSecretOpen = "No secret is open"

	// MsgSecretClosed is shown when a result arrives for a secret that was
	// closed in the meantime.
	MsgSecretClosed = "The secret was closed before the operation finished"

	// MsgUnexpectedError is the last resort message.
	MsgUnexpectedError = "An unexpected error occurred"
)

// Prompt texts shown by the password prompt.
const (
	// PromptUnlockWithKey is formatted with the key name.
	PromptUnlockWithKey = "Enter key password for %q to unlock"

	PromptUnlock          = "Enter password to unlock"
	PromptKeyPassword     = "Enter key password:"
	PromptAccountPassword = "Enter account password:"
)
