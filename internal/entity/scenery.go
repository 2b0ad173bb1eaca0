package entity

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Scenery tuning.
const (
	GroundInitZ       = -200
	StructureInterval = 1000 // world units travelled between spawn rolls
	StructureChance   = 0.10
	StructureSpawnZ   = 4000
	StructureTypes    = 4
	// StructureOffsetX is how far a one-sided structure sits from the lane.
	StructureOffsetX = 140
)

// Ground is the pair of ground tiles that leapfrog each other.
type Ground struct {
	Z [2]float32
}

// NewGround lays the two tiles end to end from GroundInitZ.
func NewGround() Ground {
	return Ground{Z: [2]float32{GroundInitZ, GroundInitZ + MaxGroundLength}}
}

// Scroll moves both tiles by distance. A tile that has fully passed the
// player is moved to the far end of the other one.
func (g *Ground) Scroll(distance float32) {
	const behind = GroundInitZ - MaxGroundLength
	switch {
	case g.Z[0] <= behind:
		g.Z[1] -= distance
		g.Z[0] = g.Z[1] + MaxGroundLength
	case g.Z[1] <= behind:
		g.Z[0] -= distance
		g.Z[1] = g.Z[0] + MaxGroundLength
	default:
		g.Z[0] -= distance
		g.Z[1] -= distance
	}
}

// Side is the side of the lane a structure stands on.
type Side int

// Structure sides.
const (
	SideLeft  Side = -1
	SideBoth  Side = 0
	SideRight Side = 1
)

// Structure is one piece of scenery.
type Structure struct {
	Type     int // 1..StructureTypes
	Side     Side
	Position mgl32.Vec3
	Spawned  bool
}

// Structures is the round robin scenery pool. A spawn overwrites the slot at
// the index whether or not it is in use.
type Structures struct {
	Slots    [MaxStructureCount]Structure
	index    int
	distance float32
}

// Reset clears every slot.
func (s *Structures) Reset() {
	*s = Structures{}
}

// Index is the next slot to be written.
func (s *Structures) Index() int { return s.index }

// Update scrolls spawned structures, recycles those behind the trailing
// ground tile and, every StructureInterval units, rolls for a new one. It
// returns the slot that was spawned this tick or -1.
func (s *Structures) Update(rng *rand.Rand, distance float32, paused bool) int {
	spawned := -1
	s.distance += distance
	if s.distance >= StructureInterval && !paused && StructureChance >= rng.Float32() {
		t := rng.IntN(StructureTypes) + 1
		side := SideRight
		if t == 2 {
			side = SideBoth
		} else if rng.Float32() > 0.5 {
			side = SideLeft
		}
		s.Slots[s.index] = Structure{
			Type:     t,
			Side:     side,
			Position: mgl32.Vec3{float32(side) * StructureOffsetX, 0, StructureSpawnZ},
			Spawned:  true,
		}
		spawned = s.index
		s.index = (s.index + 1) % MaxStructureCount
		s.distance = 0
	}

	for i := range s.Slots {
		st := &s.Slots[i]
		if !st.Spawned {
			continue
		}
		st.Position[2] -= distance
		if st.Position.Z() <= GroundInitZ-MaxGroundLength {
			st.Spawned = false
		}
	}
	return spawned
}
