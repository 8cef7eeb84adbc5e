package service

import (
	"github.com/MKhiriev/go-secret-keeper/internal/adapter"
	"github.com/MKhiriev/go-secret-keeper/internal/config"
	"github.com/MKhiriev/go-secret-keeper/internal/editor"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/notify"
	"github.com/MKhiriev/go-secret-keeper/internal/validators"
	"github.com/MKhiriev/go-secret-keeper/internal/workers"
)

type ClientServices struct {
	Saver     SaveCoordinator
	Workspace SecretWorkspace
	Bus       *notify.Bus
}

func NewClientServices(api adapter.SecretAPI, files adapter.FileTransfer, prompt PasswordPrompt, clipboard Clipboard, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	validator := validators.NewSecretValidator(cfg.Limits.MaxFileSize)
	bus := notify.NewBus(log)

	deps := editor.Deps{
		API:       api,
		Files:     files,
		Validator: validator,
		Runner:    workers.NewBatch(cfg.Workers.UploadConcurrency),
		Limits: editor.Limits{
			MaxFileSize:   cfg.Limits.MaxFileSize,
			MaxTextLength: cfg.Limits.MaxTextLength,
		},
	}

	saver := NewSaveCoordinator(api, prompt, validator, log)

	return &ClientServices{
		Saver:     saver,
		Workspace: NewSecretWorkspace(deps, saver, prompt, clipboard, bus, log),
		Bus:       bus,
	}
}
