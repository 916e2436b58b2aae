package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Input represents one frame of input during playback.
type Input struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	JumpPressed  bool
	JumpReleased bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Load loads replay data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// The second return is false once playback has run out of frames.
func (r *Replayer) GetInput() (Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return Input{
		Left:         fi.L,
		Right:        fi.R,
		Up:           fi.U,
		Down:         fi.D,
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage name the session was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
