// Package fx plays time-driven sprite sheet effects. Every transient visual
// in the game (explosions, hit flashes, level up, the self destruct sequence)
// is a Cue played against a timer.
package fx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/vmath"
)

// FrameCount is the number of cells in a 4x4 sheet.
const FrameCount = 16

// DefaultAlpha is the alpha test threshold most effects use.
const DefaultAlpha = 100

var cellOffset = [4]float32{0.75, 0.5, 0.25, 0}

// BillboardNormal faces effects toward the default camera.
var BillboardNormal = mgl32.Vec3{0, 0, -1}

// Cue describes one effect.
type Cue struct {
	Sheet          scene.Texture
	Normal         mgl32.Vec3
	Position       mgl32.Vec3
	Scale          mgl32.Vec3
	Duration       float32
	AlphaThreshold int
	Loop           bool
}

// EffectiveTime wraps elapsed into [0, duration) for looping cues and clamps
// it to duration otherwise.
func EffectiveTime(duration, elapsed float32, loop bool) float32 {
	if duration <= 0 {
		return 0
	}
	if loop {
		return float32(math.Mod(float64(elapsed), float64(duration)))
	}
	if elapsed > duration {
		return duration
	}
	return elapsed
}

// FrameAt maps a time to a sheet cell. The mapping counts down: frame 15 at
// the start, frame 0 once time reaches duration.
func FrameAt(duration, t float32) int {
	return int(vmath.Lerp(0, FrameCount-1, (duration-t)/duration))
}

// FrameUV returns the sheet offset of a frame.
func FrameUV(frame int) (u, v float32) {
	return cellOffset[frame%4], cellOffset[frame/4]
}

// Play draws the cell of c that corresponds to elapsed. Nothing is drawn when
// the effective time is zero. It reports whether a draw happened.
func Play(d scene.Drawer, c Cue, elapsed float32) bool {
	t := EffectiveTime(c.Duration, elapsed, c.Loop)
	if t <= 0 {
		return false
	}
	u, v := FrameUV(FrameAt(c.Duration, t))
	d.DrawBillboard(scene.Billboard{
		Texture:        c.Sheet,
		Normal:         c.Normal,
		Position:       c.Position,
		Scale:          c.Scale,
		U:              u,
		V:              v,
		AlphaThreshold: c.AlphaThreshold,
	})
	return true
}
