package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Skin selects the bird's color. Purely cosmetic.
type Skin int

const (
	SkinRed Skin = iota
	SkinBlue
	SkinYellow

	skinCount = 3
)

// String returns the skin name.
func (s Skin) String() string {
	switch s {
	case SkinRed:
		return "red"
	case SkinBlue:
		return "blue"
	default:
		return "yellow"
	}
}

// Bird is the player-controlled body. VelocityY drives both the vertical
// displacement and the visual tilt.
type Bird struct {
	Position  core.Vec2
	VelocityY float64
	Rotation  float64
	Frame     int
	Skin      Skin

	frameTimer Timer
	frames     int
}

// Pose is the read-only view of the bird handed to presentation.
type Pose struct {
	Position core.Vec2
	Rotation float64 // Radians, counter-clockwise, within [-π/2, π/2]
	Frame    int     // Wing animation frame
	Skin     Skin
}

func newBird(cfg config.FlappyBird, skin Skin) *Bird {
	return &Bird{
		Position:   core.Vec2{X: cfg.StartX, Y: cfg.StartY},
		Skin:       skin,
		frameTimer: NewTimer(cfg.FrameInterval),
		frames:     cfg.Frames,
	}
}

// Step integrates one tick. A flap overwrites the velocity instead of
// adding to it, and gravity is skipped on that tick.
func (b *Bird) Step(dt float64, flap bool, phys config.FlappyPhysics) {
	if flap {
		b.VelocityY = phys.FlapVelocity
	} else {
		b.VelocityY -= phys.Gravity * dt
	}
	b.Position.Y += b.VelocityY * dt
	b.Rotation = Tilt(b.VelocityY, phys.RotationScale)
}

// Animate advances the wing cycle.
func (b *Bird) Animate(dt float64) {
	if b.frames <= 0 {
		return
	}
	b.Frame = (b.Frame + b.frameTimer.Advance(dt)) % b.frames
}

// Box returns the collision box for the given hitbox size.
func (b *Bird) Box(hitbox core.Size) core.Box {
	return core.NewBox(b.Position, hitbox)
}

// Pose returns a snapshot of the bird for rendering.
func (b *Bird) Pose() Pose {
	return Pose{
		Position: b.Position,
		Rotation: b.Rotation,
		Frame:    b.Frame,
		Skin:     b.Skin,
	}
}

// Tilt maps a vertical velocity to a rotation in radians.
// The result is clamped to a quarter turn either way.
func Tilt(velocityY, scale float64) float64 {
	return core.ClampF(velocityY/scale, -0.5, 0.5) * math.Pi
}
