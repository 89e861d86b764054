package ports

import (
	"context"
	"remi-card/internal/domain/model"
)

type TranslationSource interface {
	Load(ctx context.Context) (model.LanguageTable, error)
}
