// Package flappy implements the Flappy Bird simulation engine.
// The bird falls under gravity, rises on flaps, and must pass through pipe
// pairs that scroll in from the right. The engine is tick-driven and pure:
// hosts feed it deltas and inputs and render from its queries and events.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Game owns every simulation entity and the Menu/Playing/GameOver machine.
type Game struct {
	cfg        config.FlappyConfig
	rng        RandSource
	state      core.GameState
	pending    core.GameState
	hasPending bool

	bird       *Bird // nil outside Playing
	spawner    *ObstacleSpawner
	floor      *Floor
	collisions CollisionDetector
	score      Scoreboard

	lastCollision Collision
	tickCount     int
	events        []core.Event

	enterHooks []StateHook
	exitHooks  []StateHook
	clearHooks []func()
}

// New creates a game in the Menu state.
// The config is validated here so a bad config fails at startup rather
// than at the first spawn. A nil rng falls back to a time-seeded source.
func New(cfg config.FlappyConfig, rng RandSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	field := ScrollField{Speed: cfg.Physics.ScrollSpeed}
	return &Game{
		cfg:        cfg,
		rng:        rng,
		state:      core.StateMenu,
		spawner:    NewObstacleSpawner(cfg, field, rng),
		floor:      NewFloor(cfg.Floor, field),
		collisions: NewCollisionDetector(cfg),
		score:      NewScoreboard(cfg.World.ScoreSentinel),
	}, nil
}

// NewSeeded creates a game whose random draws are fully determined by seed.
func NewSeeded(cfg config.FlappyConfig, seed int64) (*Game, error) {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// Tick advances the simulation by dt seconds and returns what happened.
// Order: gate by state, physics, pipes and scrolling, collision, transition.
func (g *Game) Tick(dt float64, in core.InputFrame) []core.Event {
	if dt < 0 {
		dt = 0
	}
	g.tickCount++

	switch g.state {
	case core.StateMenu:
		g.floor.Scroll(dt)
		if in.Has(core.ActionStart) {
			g.request(core.StatePlaying)
		}
	case core.StatePlaying:
		g.stepPlaying(dt, in)
	case core.StateGameOver:
		if in.Has(core.ActionStart) {
			g.request(core.StatePlaying)
		}
	}

	g.applyTransition()

	events := g.events
	g.events = nil
	return events
}

// Advance ticks using the next delta from the clock.
func (g *Game) Advance(clock core.Clock, in core.InputFrame) []core.Event {
	return g.Tick(clock.Delta(), in)
}

func (g *Game) stepPlaying(dt float64, in core.InputFrame) {
	flap := in.Has(core.ActionFlap)
	g.bird.Step(dt, flap, g.cfg.Physics)
	if flap {
		g.emit(core.Flapped{})
	}
	g.bird.Animate(dt)

	for _, id := range g.spawner.Scroll(dt) {
		g.emit(core.ObstacleDespawned{ID: id})
	}
	for n := g.spawner.Advance(dt); n > 0; n-- {
		g.emit(core.ScoreChanged{Score: g.score.Increment()})
		top, bottom := g.spawner.SpawnPair()
		g.emit(core.ObstacleSpawned{ID: top.ID, Position: top.Position, Kind: top.Kind})
		g.emit(core.ObstacleSpawned{ID: bottom.ID, Position: bottom.Position, Kind: bottom.Kind})
	}

	g.floor.Scroll(dt)

	if c, hit := g.collisions.Check(g.bird, g.spawner.obstacles); hit {
		g.lastCollision = c
		g.request(core.StateGameOver)
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the active game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Score returns the raw score, which is the sentinel until the first pair spawns.
func (g *Game) Score() int {
	return g.score.Score()
}

// DisplayScore returns the score as shown to the player.
func (g *Game) DisplayScore() int {
	return g.score.Display()
}

// BirdPose returns the bird's pose. ok is false outside Playing.
func (g *Game) BirdPose() (pose Pose, ok bool) {
	if g.bird == nil {
		return Pose{}, false
	}
	return g.bird.Pose(), true
}

// BirdVelocity returns the bird's vertical velocity. ok is false outside Playing.
func (g *Game) BirdVelocity() (float64, bool) {
	if g.bird == nil {
		return 0, false
	}
	return g.bird.VelocityY, true
}

// Obstacles returns the live pipes in spawn order.
func (g *Game) Obstacles() []Obstacle {
	return g.spawner.Obstacles()
}

// FloorSegments returns the positions of the ground tiles.
func (g *Game) FloorSegments() []core.Vec2 {
	return g.floor.Segments()
}

// LastCollision returns what ended the most recent run.
// Kind is CollisionNone while a run is in progress or before the first run.
func (g *Game) LastCollision() Collision {
	return g.lastCollision
}

// Ticks returns how many ticks have been processed.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
