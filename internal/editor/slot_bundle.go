package editor

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/models"
)

type slotSpec struct {
	name      string
	sensitive bool
}

// layout maps a fixed-shape variant bundle to an ordered slot list and back.
// extract always returns one element per slot; the bool is false when the
// secret carries no bundle for the variant.
type layout struct {
	typeID   string
	slots    []slotSpec
	extract  func(models.Secret) ([]*models.SecretComponent, bool)
	compose  func(*models.Secret, []*models.SecretComponent)
	assemble func(*models.SecretInput, []*models.SecretComponentInput)
}

// slotBundle implements the fixed-shape part of VariantEditor on top of a
// layout. Variants embed it and add their own rules.
type slotBundle struct {
	layout layout
	deps   Deps
	log    *logger.Logger

	secret models.Secret
	fields fieldSet
}

func newSlotBundle(l layout, deps Deps) *slotBundle {
	b := &slotBundle{layout: l, deps: deps, log: deps.Logger}
	b.Load(models.Secret{Type: &models.SecretType{ID: l.typeID}})
	return b
}

func (b *slotBundle) Variant() string { return b.layout.typeID }

func (b *slotBundle) Secret() models.Secret {
	s := b.secret
	b.layout.compose(&s, b.fields.components())
	return s
}

func (b *slotBundle) Load(secret models.Secret) {
	components, _ := b.layout.extract(secret)

	b.secret = generalOnly(secret, b.layout.typeID)
	b.fields = make(fieldSet, len(b.layout.slots))
	for i, spec := range b.layout.slots {
		b.fields[i] = &slot{name: spec.name, sensitive: spec.sensitive, state: NewFieldState(components[i])}
	}
	b.log = b.deps.Logger.ForSecret(b.secret.ID, b.layout.typeID)
}

func (b *slotBundle) Locked() bool { return b.fields.locked() }

func (b *slotBundle) Fields() []FieldView { return b.fields.views() }

func (b *slotBundle) Edit(field, value string) error {
	if b.fields.locked() {
		return ErrSecretLocked
	}
	s, ok := b.fields.lookup(field)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return s.state.Edit(value)
}

func (b *slotBundle) Value(field string) (string, error) {
	s, ok := b.fields.lookup(field)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if s.state.Locked() {
		return "", ErrFieldLocked
	}
	return s.state.Display(), nil
}

func (b *slotBundle) PrepareUnlock(ctx context.Context, keyPassword string) (*Unlocked, error) {
	if !b.fields.locked() {
		return &Unlocked{Bundle: b.Secret(), apply: func() {}}, nil
	}

	u := newUnlocker(b.deps)
	fields := b.fields

	if isDirect(b.secret) {
		plain, err := u.direct(*b.secret.Key, keyPassword, fields)
		if err != nil {
			b.log.Warn().Err(err).Msg("direct unlock failed")
			return nil, err
		}

		bundle := b.secret
		components := fields.components()
		for i, c := range components {
			if fields[i].state.Locked() {
				components[i] = &models.SecretComponent{ID: c.ID, Value: plain[i]}
			}
		}
		b.layout.compose(&bundle, components)

		return &Unlocked{Bundle: bundle, apply: func() {
			for i, s := range fields {
				if s.state.Locked() {
					s.state.Unlock(plain[i])
				}
			}
		}}, nil
	}

	resp, err := u.escrowed(ctx, b.secret, keyPassword)
	if err != nil {
		b.log.Warn().Err(err).Msg("escrowed unlock failed")
		return nil, err
	}
	components, ok := b.layout.extract(resp)
	if !ok {
		return nil, fmt.Errorf("%w: response carries no %s bundle", ErrUnlockFailed, b.layout.typeID)
	}
	if err = checkPlaintext(components); err != nil {
		return nil, err
	}

	bundle := b.secret
	b.layout.compose(&bundle, components)

	return &Unlocked{Bundle: bundle, apply: func() {
		for i, s := range fields {
			s.state.unlockFrom(components[i])
		}
	}}, nil
}

func (b *slotBundle) Unlock(ctx context.Context, keyPassword string) (models.Secret, error) {
	return unlockNow(ctx, b, keyPassword)
}

func (b *slotBundle) SaveRequiresKeyPassword() bool { return b.fields.requiresKeyPassword() }

func (b *slotBundle) PrepareSave(models.SecretInput) (*Presave, error) { return &Presave{}, nil }

func (b *slotBundle) BeforeSave(context.Context, *models.SecretInput) error { return nil }

func (b *slotBundle) BuildUpdatePayload(input *models.SecretInput) {
	b.layout.assemble(input, b.fields.inputs())
}

func (b *slotBundle) Validate() error { return nil }

type preparer interface {
	PrepareUnlock(ctx context.Context, keyPassword string) (*Unlocked, error)
}

type savePreparer interface {
	PrepareSave(input models.SecretInput) (*Presave, error)
}

func beforeSaveNow(ctx context.Context, p savePreparer, input models.SecretInput) error {
	step, err := p.PrepareSave(input)
	if err != nil {
		return err
	}
	step.Run(ctx)
	return step.Apply()
}

func unlockNow(ctx context.Context, p preparer, keyPassword string) (models.Secret, error) {
	u, err := p.PrepareUnlock(ctx, keyPassword)
	if err != nil {
		return models.Secret{}, err
	}
	u.Apply()
	return u.Bundle, nil
}

// generalOnly strips every variant bundle from secret and fills in the type
// of a freshly synthesized secret.
func generalOnly(secret models.Secret, typeID string) models.Secret {
	general := secret.WithGeneral(models.Secret{})
	if general.Type == nil {
		general.Type = &models.SecretType{ID: typeID}
	}
	return general
}
