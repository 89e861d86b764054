package ports

import (
	"context"
)

type HomeAssistantPort interface {
	ConfigChangedPublisher
	GetLanguage(ctx context.Context) (string, error)
	FireEvent(ctx context.Context, eventType string, data interface{}) error
	Configure(url, token string)
	IsConfigured() bool
}
