package ports

import (
	"context"
	"remi-card/internal/domain/model"
)

type CardConfigRepository interface {
	Get(ctx context.Context) (*model.CardConfig, error)
	Save(ctx context.Context, config *model.CardConfig) error
}
