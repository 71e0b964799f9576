package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
// These are checked once at load time so spawning never sees an empty range.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Physics.Gravity >= 0, "physics.gravity must be >= 0, got %g", c.Physics.Gravity)
	check(c.Physics.ScrollSpeed >= 0, "physics.scroll_speed must be >= 0, got %g", c.Physics.ScrollSpeed)
	check(c.Physics.RotationScale > 0, "physics.rotation_scale must be > 0, got %g", c.Physics.RotationScale)

	check(c.World.HalfWidth > 0, "world.half_width must be > 0, got %g", c.World.HalfWidth)
	check(c.World.HalfHeight > 0, "world.half_height must be > 0, got %g", c.World.HalfHeight)

	check(c.Pipes.SpawnInterval > 0, "pipes.spawn_interval must be > 0, got %g", c.Pipes.SpawnInterval)
	check(c.Pipes.GapHeight > 0, "pipes.gap_height must be > 0, got %g", c.Pipes.GapHeight)
	check(c.GapRange() > 0, "pipes.gap_height (%g) must be smaller than world.half_height (%g)",
		c.Pipes.GapHeight, c.World.HalfHeight)
	check(c.Pipes.DespawnX < c.Pipes.SpawnX, "pipes.despawn_x (%g) must be left of pipes.spawn_x (%g)",
		c.Pipes.DespawnX, c.Pipes.SpawnX)
	check(c.Pipes.Hitbox.W > 0 && c.Pipes.Hitbox.H > 0, "pipes.hitbox must be positive, got %gx%g",
		c.Pipes.Hitbox.W, c.Pipes.Hitbox.H)

	check(c.Bird.Height > 0, "bird.height must be > 0, got %g", c.Bird.Height)
	check(c.Bird.Hitbox.W > 0 && c.Bird.Hitbox.H > 0, "bird.hitbox must be positive, got %gx%g",
		c.Bird.Hitbox.W, c.Bird.Hitbox.H)
	check(c.Bird.FrameInterval > 0, "bird.frame_interval must be > 0, got %g", c.Bird.FrameInterval)
	check(c.Bird.Frames > 0, "bird.frames must be > 0, got %d", c.Bird.Frames)
	check(c.FloorY() < c.CeilingY(), "bird start band is empty: floor limit %g >= ceiling limit %g",
		c.FloorY(), c.CeilingY())

	check(len(c.Floor.Segments) > 0, "floor.segments must not be empty")
	check(c.Floor.WrapOffset > c.Floor.WrapThreshold, "floor.wrap_offset (%g) must be greater than floor.wrap_threshold (%g)",
		c.Floor.WrapOffset, c.Floor.WrapThreshold)

	return errors.Join(errs...)
}
