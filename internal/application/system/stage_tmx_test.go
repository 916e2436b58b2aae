package system

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cavern/internal/domain/entity"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="tiles.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="collision" width="3" height="2">
  <data encoding="csv">
0,1,0,
1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="48" y="40"/>
 </objectgroup>
</map>
`

func testTMXFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/cave.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadTMXStage(t *testing.T) {
	stage, err := LoadTMXStage(testTMXFS(), "maps/cave.tmx", "collision")
	require.NoError(t, err)

	assert.Equal(t, 3, stage.Width)
	assert.Equal(t, 2, stage.Height)
	assert.Equal(t, 32, stage.TileSize)

	assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 0).Type)
	assert.Equal(t, entity.TileWall, stage.GetTile(0, 1).Type)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 2).Type)
	assert.Equal(t, entity.TileWall, stage.GetTile(1, 0).Type)
	assert.Equal(t, entity.TileWall, stage.GetTile(1, 2).Type)

	assert.Equal(t, 48.0, stage.SpawnX)
	assert.Equal(t, 40.0, stage.SpawnY)
}

func TestLoadTMXStageMissingLayer(t *testing.T) {
	_, err := LoadTMXStage(testTMXFS(), "maps/cave.tmx", "walls")
	assert.Error(t, err)
}

func TestLoadTMXStageMissingFile(t *testing.T) {
	_, err := LoadTMXStage(testTMXFS(), "maps/nope.tmx", "collision")
	assert.Error(t, err)
}
