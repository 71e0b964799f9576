// Package config provides YAML/TOML configuration loading and validation
// for the flappy engine.
package config

import "github.com/vovakirdan/flappy-arcade/internal/core"

// FlappyConfig contains every tunable constant of the simulation.
// World units have their origin at the screen center with +Y pointing up.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics" toml:"physics"`
	World   FlappyWorld   `yaml:"world" toml:"world"`
	Pipes   FlappyPipes   `yaml:"pipes" toml:"pipes"`
	Bird    FlappyBird    `yaml:"bird" toml:"bird"`
	Floor   FlappyFloor   `yaml:"floor" toml:"floor"`
}

// FlappyPhysics defines the integration constants.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity" toml:"gravity"`               // Downward acceleration, units/s²
	FlapVelocity  float64 `yaml:"flap_velocity" toml:"flap_velocity"`   // Velocity set by a flap, units/s
	ScrollSpeed   float64 `yaml:"scroll_speed" toml:"scroll_speed"`     // World scroll speed, units/s
	RotationScale float64 `yaml:"rotation_scale" toml:"rotation_scale"` // Velocity that maps to a half-turn tilt
}

// FlappyWorld defines the visible playfield.
type FlappyWorld struct {
	HalfWidth     float64 `yaml:"half_width" toml:"half_width"`
	HalfHeight    float64 `yaml:"half_height" toml:"half_height"`
	ScoreSentinel int     `yaml:"score_sentinel" toml:"score_sentinel"` // Score at the start of a run
}

// FlappyPipes defines obstacle spawning and geometry.
type FlappyPipes struct {
	SpawnInterval float64   `yaml:"spawn_interval" toml:"spawn_interval"` // Seconds between pairs
	GapHeight     float64   `yaml:"gap_height" toml:"gap_height"`
	BodyOffset    float64   `yaml:"body_offset" toml:"body_offset"` // Bottom pipe anchor distance below the gap draw
	SpawnX        float64   `yaml:"spawn_x" toml:"spawn_x"`
	DespawnX      float64   `yaml:"despawn_x" toml:"despawn_x"`
	Hitbox        core.Size `yaml:"hitbox" toml:"hitbox"`
}

// FlappyBird defines the bird's start pose, size and animation.
type FlappyBird struct {
	StartX        float64   `yaml:"start_x" toml:"start_x"`
	StartY        float64   `yaml:"start_y" toml:"start_y"`
	Height        float64   `yaml:"height" toml:"height"` // Sprite height, used for ceiling/floor limits
	Hitbox        core.Size `yaml:"hitbox" toml:"hitbox"`
	FrameInterval float64   `yaml:"frame_interval" toml:"frame_interval"` // Seconds per wing frame
	Frames        int       `yaml:"frames" toml:"frames"`
}

// FlappyFloor defines the scrolling ground strip.
type FlappyFloor struct {
	Y             float64   `yaml:"y" toml:"y"`
	HalfHeight    float64   `yaml:"half_height" toml:"half_height"`
	WrapThreshold float64   `yaml:"wrap_threshold" toml:"wrap_threshold"`
	WrapOffset    float64   `yaml:"wrap_offset" toml:"wrap_offset"`
	Segments      []float64 `yaml:"segments" toml:"segments"` // Initial X of each tile
}

// GapRange returns the half-open range [0, max) the gap anchor is drawn from.
func (c FlappyConfig) GapRange() float64 {
	return c.World.HalfHeight - c.Pipes.GapHeight
}

// CeilingY returns the highest bird Y that is not a collision.
func (c FlappyConfig) CeilingY() float64 {
	return c.World.HalfHeight - c.Bird.Height/2
}

// FloorY returns the lowest bird Y that is not a collision.
func (c FlappyConfig) FloorY() float64 {
	return -c.World.HalfHeight + c.Floor.HalfHeight + c.Bird.Height/2
}
