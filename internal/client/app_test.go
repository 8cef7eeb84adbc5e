package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-secret-keeper/internal/app"
	"github.com/MKhiriev/go-secret-keeper/internal/config"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-secret-keeper/internal/service"
	"github.com/MKhiriev/go-secret-keeper/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(ws service.SecretWorkspace, appCfg config.ClientApp) *App {
	cfg := &config.ClientConfig{App: appCfg}
	return newApp(cfg, &service.ClientServices{Workspace: ws}, tui.NewPasswordPrompt(), logger.Nop())
}

func TestNewApp(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: config.DefaultRequestTimeout},
		Limits:  config.ClientLimits{MaxFileSize: config.DefaultMaxFileSize, MaxTextLength: config.DefaultMaxTextLength},
	}

	a, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, a.services.Workspace)
	assert.NotNil(t, a.services.Saver)

	var _ Client = a
}

func TestNewApp_BadAddress(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.ClientAdapter{RequestTimeout: config.DefaultRequestTimeout}}

	_, err := NewApp(cfg, logger.Nop())
	assert.Error(t, err)
}

func TestApp_CopyField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ws := servicemock.NewMockSecretWorkspace(ctrl)
	gomock.InOrder(
		ws.EXPECT().Open(gomock.Any(), "s-1").Return(&service.Session{}, nil),
		ws.EXPECT().Unlock(gomock.Any()).Return(nil),
		ws.EXPECT().CopyField("password").Return(nil),
		ws.EXPECT().Close(),
	)

	err := newTestApp(ws, config.ClientApp{SecretID: "s-1", CopyField: "password"}).Run(context.Background())
	assert.NoError(t, err)
}

func TestApp_CopyFieldFailures(t *testing.T) {
	tests := []struct {
		name      string
		unlockErr error
		copyErr   error
		wantErr   error
		wantText  string
	}{
		{
			name:      "unlock cancelled",
			unlockErr: service.ErrPromptCancelled,
			wantErr:   service.ErrPromptCancelled,
		},
		{
			name:     "nothing to copy",
			copyErr:  service.ErrNothingToCopy,
			wantErr:  service.ErrNothingToCopy,
			wantText: app.MsgNothingToCopy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ws := servicemock.NewMockSecretWorkspace(ctrl)
			ws.EXPECT().Open(gomock.Any(), "s-1").Return(&service.Session{}, nil)
			ws.EXPECT().Unlock(gomock.Any()).Return(tt.unlockErr)
			if tt.unlockErr == nil {
				ws.EXPECT().CopyField("password").Return(tt.copyErr)
			}
			ws.EXPECT().Close()

			err := newTestApp(ws, config.ClientApp{SecretID: "s-1", CopyField: "password"}).Run(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

func TestApp_OpenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	ws := servicemock.NewMockSecretWorkspace(ctrl)
	ws.EXPECT().Open(gomock.Any(), "s-1").Return(nil, boom)

	err := newTestApp(ws, config.ClientApp{SecretID: "s-1"}).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
