package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"remi-card/internal/domain/localizer"
	"remi-card/internal/domain/model"
	"remi-card/internal/ports"
)

var editorFields = []struct {
	name string
	kind model.FieldKind
}{
	{model.FieldDeviceID, model.FieldKindText},
	{model.FieldDeviceName, model.FieldKindText},
	{model.FieldShowFaceSelector, model.FieldKindSwitch},
	{model.FieldShowControls, model.FieldKindSwitch},
	{model.FieldShowTemperatureGraph, model.FieldKindSwitch},
	{model.FieldShowConnectivity, model.FieldKindSwitch},
	{model.FieldShowAlarmClocks, model.FieldKindSwitch},
	{model.FieldHoursToShow, model.FieldKindNumber},
}

type EditorService struct {
	repo      ports.CardConfigRepository
	publisher ports.ConfigChangedPublisher
	localizer *localizer.Localizer

	// mu serializes read-modify-write cycles on the stored record.
	mu sync.Mutex
}

func NewEditorService(repo ports.CardConfigRepository, publisher ports.ConfigChangedPublisher, l *localizer.Localizer) *EditorService {
	return &EditorService{
		repo:      repo,
		publisher: publisher,
		localizer: l,
	}
}

func (s *EditorService) Config(ctx context.Context) (*model.CardConfig, error) {
	return s.repo.Get(ctx)
}

// Form builds the labelled editor fields for the stored config.
func (s *EditorService) Form(ctx context.Context, language string) (*model.EditorForm, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	form := &model.EditorForm{
		Language: s.localizer.ServedLanguage(language),
		Config:   *cfg,
		Fields:   make([]model.EditorField, 0, len(editorFields)),
	}
	for _, f := range editorFields {
		form.Fields = append(form.Fields, model.EditorField{
			Name:  f.name,
			Kind:  f.kind,
			Label: s.localizer.LocalizeEditor(f.name, language),
			Value: fieldValue(*cfg, f.name),
		})
	}
	return form, nil
}

func fieldValue(cfg model.CardConfig, field string) interface{} {
	switch field {
	case model.FieldDeviceID:
		return cfg.DeviceID
	case model.FieldDeviceName:
		return cfg.DeviceNameOrEmpty()
	case model.FieldShowFaceSelector:
		return cfg.ShowFaceSelectorEnabled()
	case model.FieldShowControls:
		return cfg.ShowControlsEnabled()
	case model.FieldShowTemperatureGraph:
		return cfg.ShowTemperatureGraphEnabled()
	case model.FieldShowConnectivity:
		return cfg.ShowConnectivityEnabled()
	case model.FieldShowAlarmClocks:
		return cfg.ShowAlarmClocksEnabled()
	case model.FieldHoursToShow:
		return cfg.HoursToShowOrDefault()
	}
	return nil
}

// Change applies a single field edit, stores the result and publishes one
// ConfigChanged event carrying the whole record.
func (s *EditorService) Change(ctx context.Context, field string, value interface{}) (*model.CardConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := cfg.WithField(field, value)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Replace stores a complete record coming from the dashboard.
func (s *EditorService) Replace(ctx context.Context, cfg *model.CardConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: empty config", model.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, cfg)
}

// commit fails only when the record could not be stored. Once saved, a
// publish failure is logged and the edit still counts as applied.
func (s *EditorService) commit(ctx context.Context, cfg *model.CardConfig) error {
	if err := s.repo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save card config: %w", err)
	}
	if err := s.publisher.PublishConfigChanged(ctx, model.ConfigChanged{Config: *cfg}); err != nil {
		log.Printf("Error publishing config change: %v", err)
	}
	return nil
}
