package config

import (
	_ "embed"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:       1000,
			FlapVelocity:  400,
			ScrollSpeed:   100,
			RotationScale: 3000,
		},
		World: FlappyWorld{
			HalfWidth:     144,
			HalfHeight:    256,
			ScoreSentinel: -1,
		},
		Pipes: FlappyPipes{
			SpawnInterval: 2,
			GapHeight:     125,
			BodyOffset:    320,
			SpawnX:        180,
			DespawnX:      -200,
			Hitbox:        core.Size{W: 52, H: 320},
		},
		Bird: FlappyBird{
			StartX:        -50,
			StartY:        0,
			Height:        24,
			Hitbox:        core.Size{W: 17, H: 12},
			FrameInterval: 0.3,
			Frames:        4,
		},
		Floor: FlappyFloor{
			Y:             -256,
			HalfHeight:    56,
			WrapThreshold: -144,
			WrapOffset:    144,
			Segments:      []float64{0, 144},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
