package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"remi-card/internal/domain/model"
)

func TestJSONConfigRepository_Missing(t *testing.T) {
	repo := NewJSONConfigRepository(filepath.Join(t.TempDir(), "missing.json"))
	cfg, err := repo.Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, model.CardType, cfg.Type)
	assert.Empty(t, cfg.DeviceID)
}

func TestJSONConfigRepository_Migration(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "legacy.json")
	legacyData := `{
		"type": "custom:remi-card",
		"device_id": "abc123",
		"show_controls": false,
		"hours_to_show": "48"
	}`
	require.NoError(t, os.WriteFile(tmpFile, []byte(legacyData), 0644))

	repo := NewJSONConfigRepository(tmpFile)
	cfg, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.DeviceID)
	assert.False(t, cfg.ShowControlsEnabled())
	require.NotNil(t, cfg.HoursToShow)
	assert.Equal(t, 48.0, *cfg.HoursToShow)
}

func TestJSONConfigRepository_MigrationBadHours(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"device_id":"abc","hours_to_show":"soon"}`), 0644))

	cfg, err := NewJSONConfigRepository(tmpFile).Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cfg.HoursToShow)
	assert.Equal(t, 24.0, cfg.HoursToShowOrDefault())
	assert.Equal(t, model.CardType, cfg.Type)
}

func TestJSONConfigRepository_Corrupt(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"device_id": 12`), 0644))

	_, err := NewJSONConfigRepository(tmpFile).Get(context.Background())
	assert.Error(t, err)
}

func TestJSONConfigRepository_NewFormat(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")

	repo := NewJSONConfigRepository(tmpFile)
	name := "Nursery"
	hours := 12.0
	cfg := &model.CardConfig{
		Type:        model.CardType,
		DeviceID:    "abc123",
		DeviceName:  &name,
		HoursToShow: &hours,
	}

	err := repo.Save(context.Background(), cfg)
	assert.NoError(t, err)

	loaded, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Nil(t, loaded.ShowControls)
}
