package audio

import (
	"fmt"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Output streams an Engine to the sound card.
type Output struct {
	player *ebaudio.Player
}

// NewOutput starts playing e through ebiten's audio context. Only one
// Output may exist per process.
func NewOutput(e *Engine) (*Output, error) {
	ctx := ebaudio.NewContext(e.SampleRate())
	p, err := ctx.NewPlayerF32(e)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.Play()
	return &Output{player: p}, nil
}

// Close stops playback.
func (o *Output) Close() error {
	return o.player.Close()
}
