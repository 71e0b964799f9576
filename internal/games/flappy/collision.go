package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// CollisionKind tells what the bird hit.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionCeiling
	CollisionFloor
	CollisionObstacle
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionCeiling:
		return "ceiling"
	case CollisionFloor:
		return "floor"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Collision describes the first hit found in a tick.
type Collision struct {
	Kind       CollisionKind
	ObstacleID int // Set only for CollisionObstacle
}

// CollisionDetector tests the bird against the playfield bounds and pipes.
type CollisionDetector struct {
	ceilingY   float64
	floorY     float64
	birdHitbox core.Size
	pipeHitbox core.Size
}

// NewCollisionDetector derives the limits from the configuration.
func NewCollisionDetector(cfg config.FlappyConfig) CollisionDetector {
	return CollisionDetector{
		ceilingY:   cfg.CeilingY(),
		floorY:     cfg.FloorY(),
		birdHitbox: cfg.Bird.Hitbox,
		pipeHitbox: cfg.Pipes.Hitbox,
	}
}

// Check returns the first collision, if any.
// Each obstacle is tested at its own anchor, so both halves of a pair count.
func (d CollisionDetector) Check(bird *Bird, obstacles []Obstacle) (Collision, bool) {
	if bird == nil {
		return Collision{}, false
	}

	switch y := bird.Position.Y; {
	case y > d.ceilingY:
		return Collision{Kind: CollisionCeiling}, true
	case y < d.floorY:
		return Collision{Kind: CollisionFloor}, true
	}

	box := bird.Box(d.birdHitbox)
	for _, o := range obstacles {
		if box.Overlaps(o.Box(d.pipeHitbox)) {
			return Collision{Kind: CollisionObstacle, ObstacleID: o.ID}, true
		}
	}
	return Collision{}, false
}
