package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cavern/internal/domain/entity"
	"github.com/younwookim/cavern/internal/infrastructure/config"
)

func TestLoadStage(t *testing.T) {
	cfg := &config.StageConfig{
		Name:     "test",
		TileSize: 32,
		Spawn:    config.PositionConfig{X: 64, Y: 96},
		Rows: []string{
			"####",
			"#..#",
			"####",
		},
		Mapping: map[string]string{
			"#": "wall",
			".": "empty",
		},
	}

	stage, err := LoadStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, stage.Width)
	assert.Equal(t, 3, stage.Height)
	assert.Equal(t, 32, stage.TileSize)
	assert.Equal(t, 64.0, stage.SpawnX)
	assert.Equal(t, 96.0, stage.SpawnY)

	assert.Equal(t, entity.TileWall, stage.GetTile(0, 0).Type)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(1, 1).Type)
	assert.Equal(t, entity.TileWall, stage.GetTile(2, 3).Type)
}

func TestLoadStageUnknownCharsAreEmpty(t *testing.T) {
	cfg := &config.StageConfig{
		Name:     "test",
		TileSize: 32,
		Rows:     []string{"#?x"},
		Mapping:  map[string]string{"#": "wall"},
	}

	stage, err := LoadStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, entity.TileWall, stage.GetTile(0, 0).Type)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 1).Type)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 2).Type)
}

func TestLoadStageUnknownMappingTypeIsEmpty(t *testing.T) {
	cfg := &config.StageConfig{
		Name:     "test",
		TileSize: 32,
		Rows:     []string{"s"},
		Mapping:  map[string]string{"s": "spike"},
	}

	stage, err := LoadStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 0).Type)
}

func TestLoadStageErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.StageConfig
	}{
		{
			name: "zero tile size",
			cfg: &config.StageConfig{
				Name: "bad",
				Rows: []string{"#"},
			},
		},
		{
			name: "negative tile size",
			cfg: &config.StageConfig{
				Name:     "bad",
				TileSize: -32,
				Rows:     []string{"#"},
			},
		},
		{
			name: "no rows",
			cfg: &config.StageConfig{
				Name:     "bad",
				TileSize: 32,
			},
		},
		{
			name: "ragged rows",
			cfg: &config.StageConfig{
				Name:     "bad",
				TileSize: 32,
				Rows:     []string{"####", "##"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStage(tt.cfg)
			assert.Error(t, err)
		})
	}
}
