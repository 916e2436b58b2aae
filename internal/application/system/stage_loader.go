package system

import (
	"fmt"

	"github.com/younwookim/cavern/internal/domain/entity"
	"github.com/younwookim/cavern/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity. Unknown characters
// and unknown mapping types load as empty tiles; malformed tile data never
// reaches the collision core as an error.
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive, got %d", cfg.Name, cfg.TileSize)
	}
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("stage %s: no rows", cfg.Name)
	}

	width := len(cfg.Rows[0])
	tiles := make([][]entity.Tile, len(cfg.Rows))
	for y, row := range cfg.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("stage %s: row %d has %d tiles, want %d", cfg.Name, y, len(row), width)
		}
		tiles[y] = make([]entity.Tile, width)
		for x, char := range row {
			mapping := cfg.Mapping[string(char)]
			if mapping == "wall" {
				tiles[y][x] = entity.Tile{Type: entity.TileWall}
			} else {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty}
			}
		}
	}

	return &entity.Stage{
		Width:    width,
		Height:   len(cfg.Rows),
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.Spawn.X,
		SpawnY:   cfg.Spawn.Y,
	}, nil
}
