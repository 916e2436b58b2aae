package playing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cavern/internal/application/replay"
	"github.com/younwookim/cavern/internal/application/system"
)

func TestRecorderRoundtrip(t *testing.T) {
	recorder := NewRecorder("cave")

	recorder.RecordFrame(system.InputState{Right: true})
	recorder.RecordFrame(system.InputState{Right: true, JumpPressed: true})
	recorder.RecordFrame(system.InputState{})
	require.Equal(t, 3, recorder.FrameCount())

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, recorder.Save(path))

	data, err := replay.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cave", data.Stage)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.True(t, data.Frames[0].R)
	assert.True(t, data.Frames[1].JP)
	assert.Equal(t, 2, data.Frames[2].F)

	// The recording drives a replayer the same way live input would.
	r := replay.NewReplayer(*data)
	in, ok := r.GetInput()
	require.True(t, ok)
	assert.True(t, in.Right)
}

func TestRecorderSaveEmptyFails(t *testing.T) {
	recorder := NewRecorder("cave")

	err := recorder.Save(filepath.Join(t.TempDir(), "replay.json"))
	assert.Error(t, err)
}

func TestRecorderStop(t *testing.T) {
	recorder := NewRecorder("cave")
	recorder.RecordFrame(system.InputState{Left: true})

	recorder.Stop()
	recorder.RecordFrame(system.InputState{Right: true})

	assert.Equal(t, 1, recorder.FrameCount())
	assert.True(t, recorder.Data().Frames[0].L)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
