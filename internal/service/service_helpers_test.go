package service

import (
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/mock"
	"github.com/MKhiriev/go-secret-keeper/internal/notify"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/MKhiriev/go-secret-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cipherText = "Y2lwaGVydGV4dA=="

func teamKey() *models.Key {
	return &models.Key{ID: "3", Name: "Team", Type: &models.KeyType{ID: "server_lock"}}
}

func websiteBundle(username, password *models.SecretComponent) *models.WebsitePasswordComponents {
	return &models.WebsitePasswordComponents{
		Website:  &models.SecretComponent{ID: "101", Value: "example.com"},
		Username: username,
		Password: password,
	}
}

func sealed(id string) *models.SecretComponent {
	return &models.SecretComponent{ID: id, Value: cipherText, Encrypted: true, EncryptionAlgorithm: models.AlgorithmAESCBCPKCS5}
}

func plainComponent(id, value string) *models.SecretComponent {
	return &models.SecretComponent{ID: id, Value: value}
}

// plainWebsiteSecret: секрет без шифрования, сразу доступный для редактирования
func plainWebsiteSecret() models.Secret {
	return models.Secret{
		ID:                        "s-1",
		Name:                      "Mail",
		Comments:                  "personal",
		Type:                      &models.SecretType{ID: models.SecretTypeWebsitePassword},
		Key:                       teamKey(),
		WebsitePasswordComponents: websiteBundle(plainComponent("102", "alice"), plainComponent("103", "s3cret")),
	}
}

// lockedWebsiteSecret: секрет с зашифрованными логином и паролем
func lockedWebsiteSecret() models.Secret {
	s := plainWebsiteSecret()
	s.WebsitePasswordComponents = websiteBundle(sealed("102"), sealed("103"))
	return s
}

type fixture struct {
	api    *mock.MockSecretAPI
	files  *mock.MockFileTransfer
	prompt *mock.MockPasswordPrompt
	clip   *mock.MockClipboard
	bus    *notify.Bus
	deps   editor.Deps
	saver  SaveCoordinator
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()
	fx := &fixture{
		api:    mock.NewMockSecretAPI(ctrl),
		files:  mock.NewMockFileTransfer(ctrl),
		prompt: mock.NewMockPasswordPrompt(ctrl),
		clip:   mock.NewMockClipboard(ctrl),
		bus:    notify.NewBus(logger.Nop()),
	}
	fx.deps = editor.Deps{API: fx.api, Files: fx.files, Limits: editor.Limits{MaxTextLength: 16}}
	fx.saver = NewSaveCoordinator(fx.api, fx.prompt, validators.NewSecretValidator(0), logger.Nop())
	return fx
}

// session загружает secret в редактор нужного типа
func (fx *fixture) session(t *testing.T, secret models.Secret) *Session {
	t.Helper()
	ed, err := editor.NewForSecret(secret, fx.deps)
	require.NoError(t, err)
	return NewSession("session-1", ed)
}

func (fx *fixture) workspace() *workspace {
	return NewSecretWorkspace(fx.deps, fx.saver, fx.prompt, fx.clip, fx.bus, logger.Nop()).(*workspace)
}

func value(t *testing.T, s *Session, field string) string {
	t.Helper()
	v, err := s.Editor.Value(field)
	require.NoError(t, err)
	return v
}
