package eventlog

import (
	"context"
	"encoding/json"
	"log"

	"remi-card/internal/domain/model"
)

// Publisher writes config changes to the log. It stands in for Home
// Assistant when no instance is configured.
type Publisher struct {
	logger *log.Logger
}

func NewPublisher(logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{logger: logger}
}

func (p *Publisher) PublishConfigChanged(ctx context.Context, event model.ConfigChanged) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	p.logger.Printf("%s: %s", model.ConfigChangedEventType, data)
	return nil
}
