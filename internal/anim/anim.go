// Package anim drives the player's motion clips and blend trees. The game
// only advances clips and sets blend weights; the resulting pose is handed to
// the renderer.
package anim

//go:generate go tool mockgen -destination=../mocks/animator_mock.go -package=mocks . Animator

import (
	"math"

	"chosenoffset.com/omegathunder/internal/render/scene"
)

// Clip names a motion clip.
type Clip int

// Motion clips.
const (
	ClipEntrance Clip = iota
	ClipRun
	ClipAimUp
	ClipAimDown
	ClipAimLeft
	ClipAimRight
	ClipSwing1
	ClipSwing2
	ClipTrip
	ClipSelfDestruct
	clipCount
)

// Node names a blend node of the movement tree.
type Node int

// Blend nodes.
const (
	NodeAimLR Node = iota
	NodeAimUD
	NodeAimUDLR
	NodeSwing
	NodeAdderAimSwing
	NodeAdderRunAim
	nodeCount
)

// Tree names a blend tree.
type Tree int

// Blend trees.
const (
	TreeEntrance Tree = iota
	TreeMovement
	TreeTrip
	TreeSelfDestruct
)

func (t Tree) String() string {
	switch t {
	case TreeEntrance:
		return "entrance"
	case TreeMovement:
		return "movement"
	case TreeTrip:
		return "trip"
	case TreeSelfDestruct:
		return "self_destruct"
	default:
		return "unknown"
	}
}

// Animator is the animation capability consumed by the game.
type Animator interface {
	// UpdateMotion moves a clip to the given time in seconds.
	UpdateMotion(clip Clip, seconds float32, loop bool)
	// SetBlend sets a node weight in [0,1].
	SetBlend(node Node, value float32)
	// UpdateTree evaluates a tree into the current pose.
	UpdateTree(tree Tree)
	// Pose returns the last evaluated pose.
	Pose() scene.Pose
}

// clipLengths in seconds.
var clipLengths = [clipCount]float32{
	ClipEntrance:     4.0,
	ClipRun:          0.7,
	ClipAimUp:        0.7,
	ClipAimDown:      0.7,
	ClipAimLeft:      0.7,
	ClipAimRight:     0.7,
	ClipSwing1:       0.5,
	ClipSwing2:       0.75,
	ClipTrip:         2.0,
	ClipSelfDestruct: 10.0,
}

// Length returns a clip's duration in seconds.
func Length(c Clip) float32 { return clipLengths[c] }

// Rig is the in-process Animator.
type Rig struct {
	phase  [clipCount]float32
	weight [nodeCount]float32
	pose   scene.Pose
}

// NewRig returns a rig with centred aim.
func NewRig() *Rig {
	r := &Rig{}
	r.weight[NodeAimLR] = 0.5
	r.weight[NodeAimUD] = 0.5
	r.weight[NodeAimUDLR] = 0.5
	r.weight[NodeAdderRunAim] = 1
	return r
}

// UpdateMotion sets a clip's normalized phase.
func (r *Rig) UpdateMotion(clip Clip, seconds float32, loop bool) {
	length := clipLengths[clip]
	p := seconds / length
	if loop {
		p = float32(math.Mod(float64(p), 1))
		if p < 0 {
			p++
		}
	} else if p > 1 {
		p = 1
	} else if p < 0 {
		p = 0
	}
	r.phase[clip] = p
}

// SetBlend clamps and stores a node weight.
func (r *Rig) SetBlend(node Node, value float32) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	r.weight[node] = value
}

// Phase returns a clip's normalized phase.
func (r *Rig) Phase(c Clip) float32 { return r.phase[c] }

// Blend returns a node weight.
func (r *Rig) Blend(n Node) float32 { return r.weight[n] }

// UpdateTree evaluates a tree.
func (r *Rig) UpdateTree(tree Tree) {
	p := scene.Pose{Tree: tree.String(), AimX: 0.5, AimY: 0.5}
	switch tree {
	case TreeEntrance:
		p.Phase = r.phase[ClipEntrance]
	case TreeMovement:
		aim := r.weight[NodeAdderRunAim]
		p.AimX = 0.5 + (r.weight[NodeAimLR]-0.5)*aim
		p.AimY = 0.5 + (r.weight[NodeAimUD]-0.5)*aim
		p.SwingType = r.weight[NodeSwing]
		p.Swing = r.weight[NodeAdderAimSwing]
		p.Phase = r.phase[ClipRun]
		if p.Swing > 0 {
			if p.SwingType > 0 {
				p.Phase = r.phase[ClipSwing2]
			} else {
				p.Phase = r.phase[ClipSwing1]
			}
		}
	case TreeTrip:
		p.Phase = r.phase[ClipTrip]
	case TreeSelfDestruct:
		p.Phase = r.phase[ClipSelfDestruct]
	}
	r.pose = p
}

// Pose returns the last evaluated pose.
func (r *Rig) Pose() scene.Pose { return r.pose }
