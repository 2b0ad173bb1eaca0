// Package position owns the player's lane position, heading and the chase
// camera that is tethered behind it.
package position

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/vmath"
)

// MoveFlags is a bit set of movement commands for one update.
type MoveFlags uint8

// Movement commands.
const (
	MoveForward MoveFlags = 1 << iota
	MoveBack
	MoveRight
	MoveLeft
)

// Rotation limits in degrees.
const (
	RotateUpMax    = -50
	RotateDownMax  = 50
	RotateLeftMax  = -80
	RotateRightMax = 80
)

// BoundaryX is the half width of the lane.
const BoundaryX = 98

const (
	cameraDistance   = 10
	scaleRotateSpeed = 0.25
	groundLift       = 0.05

	// DefaultTetherDistance is how far the camera trails the eye point.
	DefaultTetherDistance = 20
	// DefaultEyeLevel is the camera height above the player position.
	DefaultEyeLevel = 6
)

// Result is the outcome of one Update.
type Result struct {
	PositionChanged bool
	CameraChanged   bool
	Position        mgl32.Vec3
	Heading         mgl32.Vec3
	// XRotate and YRotate are the accumulated pitch and yaw, truncated to
	// whole degrees.
	XRotate int
	YRotate int
}

// Controller tracks position, heading and the camera view.
type Controller struct {
	position     mgl32.Vec3
	startHeading mgl32.Vec3
	heading      mgl32.Vec3
	speed        float32
	xRotate      float32
	yRotate      float32

	tether   float32
	eyeLevel float32

	eye  mgl32.Vec3
	view mgl32.Mat4
}

// NewController creates a controller at the given position and heading.
func NewController(start, heading mgl32.Vec3, moveSpeed float32) *Controller {
	c := &Controller{}
	c.Init(start, heading, moveSpeed)
	return c
}

// Init resets the controller and places the camera with one forced update.
func (c *Controller) Init(start, heading mgl32.Vec3, moveSpeed float32) {
	c.position = start
	c.heading = heading.Normalize()
	c.startHeading = c.heading
	c.speed = moveSpeed
	c.xRotate = 0
	c.yRotate = 0
	c.tether = DefaultTetherDistance
	c.eyeLevel = DefaultEyeLevel
	c.Update(0, 0, 0, 0, true)
}

// SetSpeed changes the strafe and move speed in units per second.
func (c *Controller) SetSpeed(speed float32) { c.speed = speed }

// SetTetherDistance changes how far the camera trails the player.
func (c *Controller) SetTetherDistance(d float32) { c.tether = d }

// SetEyeLevel changes the camera height above the player.
func (c *Controller) SetEyeLevel(d float32) { c.eyeLevel = d }

// Position returns the current position.
func (c *Controller) Position() mgl32.Vec3 { return c.position }

// Heading returns the current unit heading.
func (c *Controller) Heading() mgl32.Vec3 { return c.heading }

// StartHeading returns the heading the controller was initialised with.
func (c *Controller) StartHeading() mgl32.Vec3 { return c.startHeading }

// Rotation returns the accumulated pitch and yaw in degrees.
func (c *Controller) Rotation() (pitch, yaw float32) { return c.xRotate, c.yRotate }

// View returns the last computed view matrix.
func (c *Controller) View() mgl32.Mat4 { return c.view }

// Eye returns the last computed camera origin.
func (c *Controller) Eye() mgl32.Vec3 { return c.eye }

// smooth maps a raw mouse delta to sign(d)*floor(sqrt(|d|)).
func smooth(d int) int {
	s := int(math.Sqrt(math.Abs(float64(d))))
	if d < 0 {
		return -s
	}
	return s
}

// Update advances the controller by elapsedMs milliseconds.
func (c *Controller) Update(elapsedMs float32, move MoveFlags, xRotate, yRotate int, force bool) Result {
	var res Result
	moveAmount := elapsedMs / 1000 * c.speed

	xRotate = smooth(xRotate)
	yRotate = smooth(yRotate)

	c.xRotate = vmath.Clamp(c.xRotate+float32(xRotate)*scaleRotateSpeed, RotateUpMax, RotateDownMax)
	c.yRotate = vmath.Clamp(c.yRotate+float32(yRotate)*scaleRotateSpeed, RotateLeftMax, RotateRightMax)
	res.XRotate = int(c.xRotate)
	res.YRotate = int(c.yRotate)

	// always derived from the start heading so rotation never drifts
	if xRotate != 0 || yRotate != 0 {
		c.heading = vmath.RotateXY(c.startHeading, c.xRotate, c.yRotate).Normalize()
	}

	if move != 0 || force {
		if move&MoveForward != 0 {
			c.position = c.position.Add(c.heading.Mul(moveAmount))
		}
		if move&MoveBack != 0 {
			c.position = c.position.Sub(c.heading.Mul(moveAmount))
		}
		right := vmath.WorldUp.Cross(vmath.Forward).Normalize()
		if move&MoveRight != 0 {
			c.position = c.position.Add(right.Mul(moveAmount))
		}
		if move&MoveLeft != 0 {
			c.position = c.position.Sub(right.Mul(moveAmount))
		}
		res.PositionChanged = true
	}

	c.position[1] = 0
	c.position[2] = 0
	c.position[0] = vmath.Clamp(c.position[0], -BoundaryX, BoundaryX)

	if xRotate != 0 || yRotate != 0 || res.PositionChanged {
		c.updateCamera(c.heading)
		res.CameraChanged = true
	}

	res.Position = c.position
	res.Heading = c.heading
	return res
}

// LerpCameraStart blends the heading back toward the start heading. At
// timer == duration the heading snaps to the start heading exactly and the
// rotation accumulators are zeroed.
func (c *Controller) LerpCameraStart(timer, duration float32) mgl32.Vec3 {
	t := (duration - timer) / duration
	if t != 0 {
		x := float32(int(vmath.InverseLerp(c.xRotate, 0, t)))
		y := float32(int(vmath.InverseLerp(c.yRotate, 0, t)))
		c.heading = vmath.RotateXY(c.startHeading, x, y).Normalize()
	} else {
		c.heading = c.startHeading
	}

	c.updateCamera(c.heading)

	if t == 0 {
		c.xRotate = 0
		c.yRotate = 0
	}
	return c.heading
}

func (c *Controller) updateCamera(heading mgl32.Vec3) {
	from := c.position
	from[1] += c.eyeLevel
	to := from.Add(heading.Mul(cameraDistance))
	from = from.Sub(heading.Mul(c.tether))

	ray := vmath.Ray{Origin: from, Direction: heading}
	if p, ok := ray.IntersectPlane(vmath.GroundPlane, c.tether); ok {
		from = p
		from[1] += groundLift
	}

	c.eye = from
	c.view = vmath.LookAt(from, to, vmath.WorldUp)
}
