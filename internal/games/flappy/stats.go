package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Stats aggregates the events of a session.
type Stats struct {
	Ticks      int
	Runs       int // Times Playing was entered
	GameOvers  int
	Flaps      int
	Spawned    int // Pipe halves
	Despawned  int // Pipe halves, including clears on restart
	MaxScore   int // Highest displayed score seen
	FinalState core.GameState
}

// Observe folds one tick's events into the totals.
func (s *Stats) Observe(events []core.Event) {
	s.Ticks++
	for _, e := range events {
		switch ev := e.(type) {
		case core.Flapped:
			s.Flaps++
		case core.ObstacleSpawned:
			s.Spawned++
		case core.ObstacleDespawned:
			s.Despawned++
		case core.ScoreChanged:
			if ev.Score > s.MaxScore {
				s.MaxScore = ev.Score
			}
		case core.StateChanged:
			s.FinalState = ev.To
			switch ev.To {
			case core.StatePlaying:
				s.Runs++
			case core.StateGameOver:
				s.GameOvers++
			}
		}
	}
}
