package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// RandSource is the randomness the spawner draws from.
// *rand.Rand satisfies it; tests inject fixed sequences.
type RandSource interface {
	Float64() float64 // Uniform in [0, 1)
	Intn(n int) int   // Uniform in [0, n)
}

// Obstacle is one half of a pipe pair.
type Obstacle struct {
	ID       int
	Position core.Vec2
	Kind     core.ObstacleKind
}

// Box returns the collision box for the given hitbox size.
func (o Obstacle) Box(hitbox core.Size) core.Box {
	return core.NewBox(o.Position, hitbox)
}

// ObstacleSpawner owns the live pipes, the spawn timer and the gap draw.
type ObstacleSpawner struct {
	cfg       config.FlappyPipes
	gapRange  float64
	field     ScrollField
	rng       RandSource
	timer     Timer
	obstacles []Obstacle
	nextID    int
}

// NewObstacleSpawner creates an empty spawner.
func NewObstacleSpawner(cfg config.FlappyConfig, field ScrollField, rng RandSource) *ObstacleSpawner {
	return &ObstacleSpawner{
		cfg:       cfg.Pipes,
		gapRange:  cfg.GapRange(),
		field:     field,
		rng:       rng,
		timer:     NewTimer(cfg.Pipes.SpawnInterval),
		obstacles: make([]Obstacle, 0, 8),
		nextID:    1,
	}
}

// Scroll moves every obstacle left and removes those past the despawn line.
// Returns the IDs that were removed.
func (s *ObstacleSpawner) Scroll(dt float64) []int {
	var removed []int
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Position.X = s.field.Advance(o.Position.X, dt)
		if o.Position.X < s.cfg.DespawnX {
			removed = append(removed, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
	return removed
}

// Advance runs the spawn timer and returns how many pairs are due.
func (s *ObstacleSpawner) Advance(dt float64) int {
	return s.timer.Advance(dt)
}

// SpawnPair draws a gap and adds a top and bottom pipe at the spawn line.
func (s *ObstacleSpawner) SpawnPair() (top, bottom Obstacle) {
	gap := s.rng.Float64() * s.gapRange

	top = Obstacle{
		ID:       s.allocID(),
		Position: core.Vec2{X: s.cfg.SpawnX, Y: gap + s.cfg.GapHeight},
		Kind:     core.ObstacleTop,
	}
	bottom = Obstacle{
		ID:       s.allocID(),
		Position: core.Vec2{X: s.cfg.SpawnX, Y: gap - s.cfg.BodyOffset},
		Kind:     core.ObstacleBottom,
	}
	s.obstacles = append(s.obstacles, top, bottom)
	return top, bottom
}

// Clear removes every obstacle and returns their IDs.
// The spawn timer keeps its elapsed time across runs.
func (s *ObstacleSpawner) Clear() []int {
	removed := make([]int, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		removed = append(removed, o.ID)
	}
	s.obstacles = s.obstacles[:0]
	return removed
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (s *ObstacleSpawner) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

func (s *ObstacleSpawner) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}
