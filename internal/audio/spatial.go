package audio

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/vmath"
)

// Spatialize returns the gain and pan of a source heard by a listener at pos
// facing heading. Gain is 1 inside minDist and falls off as minDist/d, held
// at its maxDist value beyond that. Pan is -1 fully left to 1 fully right.
func Spatialize(pos, heading, source mgl32.Vec3, minDist, maxDist float32) (gain, pan float32) {
	offset := source.Sub(pos)
	d := offset.Len()
	if d > maxDist {
		d = maxDist
	}
	gain = 1
	if d > minDist {
		gain = minDist / d
	}
	if offset.Len() == 0 {
		return gain, 0
	}
	right := vmath.WorldUp.Cross(heading).Normalize()
	pan = mgl32.Clamp(right.Dot(offset.Normalize()), -1, 1)
	return gain, pan
}
