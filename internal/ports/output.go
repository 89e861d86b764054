package ports

import (
	"context"
	"remi-card/internal/domain/model"
)

// ConfigChangedPublisher reports card configuration edits upward.
type ConfigChangedPublisher interface {
	PublishConfigChanged(ctx context.Context, event model.ConfigChanged) error
}
