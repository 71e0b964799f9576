package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// StateHook is called with the state being entered or exited.
type StateHook func(state core.GameState)

// OnEnter registers a hook that runs after a state's own setup.
// Hooks do not fire for the initial Menu state; read State() instead.
func (g *Game) OnEnter(h StateHook) {
	g.enterHooks = append(g.enterHooks, h)
}

// OnExit registers a hook that runs before a state's own teardown.
func (g *Game) OnExit(h StateHook) {
	g.exitHooks = append(g.exitHooks, h)
}

// OnClearPresentation registers a hook fired when leaving Menu or GameOver,
// the two states whose overlays belong to the presentation layer.
func (g *Game) OnClearPresentation(h func()) {
	g.clearHooks = append(g.clearHooks, h)
}

// request schedules a transition for the end of the tick.
// The first request in a tick wins; later ones are no-ops.
func (g *Game) request(to core.GameState) {
	if g.hasPending {
		return
	}
	g.pending = to
	g.hasPending = true
}

// applyTransition runs the scheduled transition, if any.
func (g *Game) applyTransition() {
	if !g.hasPending {
		return
	}
	from, to := g.state, g.pending
	g.hasPending = false

	for _, h := range g.exitHooks {
		h(from)
	}
	g.exit(from)

	g.state = to
	g.enter(to)
	for _, h := range g.enterHooks {
		h(to)
	}

	g.emit(core.StateChanged{From: from, To: to})
}

func (g *Game) exit(state core.GameState) {
	switch state {
	case core.StatePlaying:
		g.bird = nil
	case core.StateMenu, core.StateGameOver:
		for _, h := range g.clearHooks {
			h()
		}
	}
}

func (g *Game) enter(state core.GameState) {
	if state != core.StatePlaying {
		return
	}

	for _, id := range g.spawner.Clear() {
		g.emit(core.ObstacleDespawned{ID: id})
	}

	before := g.score.Score()
	g.score.Reset()
	if g.score.Score() != before {
		g.emit(core.ScoreChanged{Score: g.score.Score()})
	}

	g.lastCollision = Collision{}
	g.bird = newBird(g.cfg.Bird, Skin(g.rng.Intn(skinCount)))
}
