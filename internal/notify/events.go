package notify

import "github.com/MKhiriev/go-secret-keeper/models"

// Event is a change notification carried by the Bus.
type Event interface {
	// Topic names the kind of change, e.g. "secret.updated".
	Topic() string
}

// Topics of the events published by the client.
const (
	TopicSecretUpdated = "secret.updated"
	TopicSecretDeleted = "secret.deleted"
	TopicKeyUpdated    = "key.updated"
	TopicKeyDeleted    = "key.deleted"
)

// SecretUpdated is published after a secret was saved. Secret holds the
// state returned by the server; locked fields are ciphertext.
type SecretUpdated struct {
	Secret  models.Secret
	Created bool
}

func (SecretUpdated) Topic() string { return TopicSecretUpdated }

// SecretDeleted is published after a secret was removed.
type SecretDeleted struct {
	SecretID string
}

func (SecretDeleted) Topic() string { return TopicSecretDeleted }

// KeyUpdated is published when a key referenced by secrets changed. The
// key and secret-list views of the vault publish it; the edit engine only
// consumes it (see service.SecretWorkspace.Watch).
type KeyUpdated struct {
	Key models.Key
}

func (KeyUpdated) Topic() string { return TopicKeyUpdated }

// KeyDeleted is published when a key was removed. Like KeyUpdated it comes
// from outside the edit engine.
type KeyDeleted struct {
	KeyID string
}

func (KeyDeleted) Topic() string { return TopicKeyDeleted }
