package persistence

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"

	"remi-card/internal/domain/model"
)

type JSONConfigRepository struct {
	filepath string
	mu       sync.RWMutex
}

// Older editors stored hours_to_show as the raw text field value.
type legacyConfig struct {
	HoursToShow json.RawMessage `json:"hours_to_show"`
}

func NewJSONConfigRepository(filepath string) *JSONConfigRepository {
	return &JSONConfigRepository{filepath: filepath}
}

func (r *JSONConfigRepository) Get(ctx context.Context) (*model.CardConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.CardConfig{Type: model.CardType}, nil
		}
		return nil, err
	}

	var cfg model.CardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		var legacy legacyConfig
		if lerr := json.Unmarshal(data, &legacy); lerr != nil || !isQuoted(legacy.HoursToShow) {
			return nil, err
		}
		return r.migrate(data, legacy)
	}

	if cfg.Type == "" {
		cfg.Type = model.CardType
	}
	return &cfg, nil
}

func isQuoted(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '"'
}

func (r *JSONConfigRepository) migrate(data []byte, legacy legacyConfig) (*model.CardConfig, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	var text string
	if err := json.Unmarshal(legacy.HoursToShow, &text); err != nil {
		return nil, err
	}
	if hours, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil && hours >= 0 {
		fields["hours_to_show"] = json.RawMessage(strconv.FormatFloat(hours, 'f', -1, 64))
	} else {
		delete(fields, "hours_to_show")
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var cfg model.CardConfig
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, err
	}
	if cfg.Type == "" {
		cfg.Type = model.CardType
	}
	return &cfg, nil
}

func (r *JSONConfigRepository) Save(ctx context.Context, config *model.CardConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.filepath, data, 0644)
}
