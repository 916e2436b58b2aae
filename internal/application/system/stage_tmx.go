package system

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/cavern/internal/domain/entity"
)

// LoadTMXStage parses a Tiled .tmx file into a Stage entity. Every non-nil
// tile on the collision layer becomes a wall; the player spawn comes from a
// "PlayerSpawn" object group when present, otherwise the stage center.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMXStage(fsys fs.FS, tmxPath, collisionLayer string) (*entity.Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tiles := make([][]entity.Tile, levelMap.Height)
	for y := range tiles {
		tiles[y] = make([]entity.Tile, levelMap.Width)
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != collisionLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if !layer.Tiles[y*levelMap.Width+x].IsNil() {
					tiles[y][x] = entity.Tile{Type: entity.TileWall}
				}
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no layer named %q", tmxPath, collisionLayer)
	}

	stage := &entity.Stage{
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
		Tiles:    tiles,
		SpawnX:   float64(levelMap.Width * levelMap.TileWidth / 2),
		SpawnY:   float64(levelMap.Height * levelMap.TileHeight / 2),
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			stage.SpawnX = o.X
			stage.SpawnY = o.Y
			break
		}
	}

	return stage, nil
}
