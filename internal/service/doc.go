// Package service implements the client use-cases built on the secret
// editors: opening a secret into an edit session, unlocking it, the save
// state machine, deletion, copying fields, generating passwords and
// downloading attachments.
//
// Exactly one edit session is active at a time. Long running operations
// capture the session they started on and drop their result when the
// session was replaced in the meantime.
package service
