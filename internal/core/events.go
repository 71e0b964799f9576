package core

import "fmt"

// Event is something observable that happened during a tick.
// Hosts use events to drive presentation (sprites, audio, score text)
// without polling the whole simulation.
type Event interface {
	fmt.Stringer
	event()
}

// ObstacleSpawned is emitted once per pipe half when a pair is created.
type ObstacleSpawned struct {
	ID       int
	Position Vec2
	Kind     ObstacleKind
}

// ObstacleDespawned is emitted when a pipe half leaves the simulation,
// either by scrolling off-screen or by being cleared on restart.
type ObstacleDespawned struct {
	ID int
}

// ScoreChanged carries the raw score value after an update.
// The raw value may be the negative sentinel right after a restart.
type ScoreChanged struct {
	Score int
}

// StateChanged is emitted after a transition has been fully applied.
type StateChanged struct {
	From, To GameState
}

// Flapped is emitted when a flap input is applied to the bird.
type Flapped struct{}

func (ObstacleSpawned) event()   {}
func (ObstacleDespawned) event() {}
func (ScoreChanged) event()      {}
func (StateChanged) event()      {}
func (Flapped) event()           {}

func (e ObstacleSpawned) String() string {
	return fmt.Sprintf("ObstacleSpawned{id=%d kind=%s x=%.1f y=%.1f}", e.ID, e.Kind, e.Position.X, e.Position.Y)
}

func (e ObstacleDespawned) String() string {
	return fmt.Sprintf("ObstacleDespawned{id=%d}", e.ID)
}

func (e ScoreChanged) String() string {
	return fmt.Sprintf("ScoreChanged{score=%d}", e.Score)
}

func (e StateChanged) String() string {
	return fmt.Sprintf("StateChanged{%s -> %s}", e.From, e.To)
}

func (Flapped) String() string {
	return "Flapped"
}
