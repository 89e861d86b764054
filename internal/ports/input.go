package ports

import (
	"context"
	"remi-card/internal/domain/model"
)

// EditorPort is what the HTTP adapter needs from the editor service.
type EditorPort interface {
	Config(ctx context.Context) (*model.CardConfig, error)
	Form(ctx context.Context, language string) (*model.EditorForm, error)
	Change(ctx context.Context, field string, value interface{}) (*model.CardConfig, error)
	Replace(ctx context.Context, cfg *model.CardConfig) error
}

type FacePort interface {
	Faces(language string) []model.FaceView
	Face(state, language string) model.FaceView
}

type LocalizerPort interface {
	Localize(key, language string) string
	Translations(language string) (string, model.Tree)
	Languages() []string
	ServedLanguage(language string) string
}
