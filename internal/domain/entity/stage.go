package entity

import "math"

// TileType represents the type of a tile.
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single tile in the stage.
type Tile struct {
	Type TileType
}

// CollisionTile is a tile returned from a collision query, tagged with its
// grid coordinates.
type CollisionTile struct {
	Type TileType
	Row  int
	Col  int
}

// Stage is the tile map the actors collide against. It is read-only during
// play; every actor runs its own update against the shared stage.
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// GetTile returns the tile at the given grid coordinates. Coordinates
// outside the stage report a wall so actors cannot leave the map.
func (s *Stage) GetTile(row, col int) Tile {
	if col < 0 || col >= s.Width || row < 0 || row >= s.Height {
		return Tile{Type: TileWall}
	}
	return s.Tiles[row][col]
}

// CollidingTiles returns every tile the rectangle overlaps, in row-major
// order: top row to bottom row, left column to right column. The order is
// part of the contract; collision resolution snaps against the first wall
// tile in this sequence. Zero-width or zero-height rectangles probe the
// single line of tiles under the edge.
func (s *Stage) CollidingTiles(r Rectangle) []CollisionTile {
	firstRow := s.gridIndex(r.Top())
	lastRow := s.gridIndex(r.Bottom())
	firstCol := s.gridIndex(r.Left())
	lastCol := s.gridIndex(r.Right())

	tiles := make([]CollisionTile, 0, (lastRow-firstRow+1)*(lastCol-firstCol+1))
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			tiles = append(tiles, CollisionTile{
				Type: s.GetTile(row, col).Type,
				Row:  row,
				Col:  col,
			})
		}
	}
	return tiles
}

func (s *Stage) gridIndex(worldCoord float64) int {
	return int(math.Floor(worldCoord / float64(s.TileSize)))
}
