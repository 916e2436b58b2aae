package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigFS() fstest.MapFS {
	return fstest.MapFS{
		"physics.json": &fstest.MapFile{Data: []byte(`{
			"display": {"screenWidth": 640, "screenHeight": 480, "scale": 2, "framerate": 60},
			"walk": {"acceleration": 0.001, "maxSpeed": 0.15, "friction": 0.0005},
			"fall": {"gravity": 0.0008, "maxSpeed": 0.3},
			"jump": {"speed": 0.25, "shortSpeed": 0.1, "airAcceleration": 0.0003, "gravity": 0.0003}
		}`)},
		"entities.json": &fstest.MapFile{Data: []byte(`{
			"player": {
				"collisionX": {"offsetX": 6, "offsetY": 10, "width": 20, "height": 12},
				"collisionY": {"offsetX": 10, "offsetY": 2, "width": 12, "height": 30},
				"maxHealth": 6,
				"invincibility": {"durationMs": 3000, "flashIntervalMs": 50}
			},
			"bat": {"angularVelocity": 0.12, "amplitude": 80, "bodySize": 32, "contactDamage": 1},
			"damageText": {"riseSpeed": 0.064, "maxOffset": 32, "durationMs": 2000}
		}`)},
		"stages/test.yaml": &fstest.MapFile{Data: []byte(`
name: test
tileSize: 32
spawn:
  x: 64
  y: 96
rows:
  - "####"
  - "#..#"
  - "####"
mapping:
  "#": wall
  ".": empty
bats:
  - x: 48
    y: 32
`)},
	}
}

func TestLoadAll(t *testing.T) {
	loader := NewFSLoader(testConfigFS())

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Physics.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Physics.Display.Framerate)
	assert.Equal(t, 0.001, cfg.Physics.Walk.Acceleration)
	assert.Equal(t, 0.3, cfg.Physics.Fall.MaxSpeed)
	assert.Equal(t, 0.25, cfg.Physics.Jump.Speed)

	assert.Equal(t, 6.0, cfg.Entities.Player.CollisionX.OffsetX)
	assert.Equal(t, 30.0, cfg.Entities.Player.CollisionY.Height)
	assert.Equal(t, 6, cfg.Entities.Player.MaxHealth)
	assert.Equal(t, 3000.0, cfg.Entities.Player.Invincibility.DurationMS)
	assert.Equal(t, 0.12, cfg.Entities.Bat.AngularVelocity)
	assert.Equal(t, 2000.0, cfg.Entities.DamageText.DurationMS)
}

func TestLoadStage(t *testing.T) {
	loader := NewFSLoader(testConfigFS())

	stage, err := loader.LoadStage("test")
	require.NoError(t, err)

	assert.Equal(t, "test", stage.Name)
	assert.Equal(t, 32, stage.TileSize)
	assert.Equal(t, 64.0, stage.Spawn.X)
	assert.Len(t, stage.Rows, 3)
	assert.Equal(t, "wall", stage.Mapping["#"])
	require.Len(t, stage.Bats, 1)
	assert.Equal(t, 48.0, stage.Bats[0].X)
}

func TestLoadMissingFiles(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{})

	_, err := loader.LoadPhysics()
	assert.Error(t, err)

	_, err = loader.LoadEntities()
	assert.Error(t, err)

	_, err = loader.LoadStage("missing")
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"physics.json": &fstest.MapFile{Data: []byte(`{not json`)},
	})

	_, err := loader.LoadPhysics()
	assert.Error(t, err)
}
