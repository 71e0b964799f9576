package flappy

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// seqRand replays a fixed list of draws.
type seqRand struct {
	floats []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.floats[r.i%len(r.floats)]
	r.i++
	return v
}

func (r *seqRand) Intn(int) int { return 0 }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestGame(t *testing.T, floats ...float64) *Game {
	t.Helper()
	if len(floats) == 0 {
		floats = []float64{0.5}
	}
	g, err := New(config.DefaultFlappyConfig(), &seqRand{floats: floats})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// startPlaying moves a fresh game from Menu into Playing without advancing time.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Tick(0, core.NewInputFrame(core.ActionStart))
	if g.State() != core.StatePlaying {
		t.Fatalf("state = %s, expected Playing", g.State())
	}
}

// hold puts the bird back at rest in the middle of the safe band.
func hold(g *Game) {
	g.bird.Position.Y = 0
	g.bird.VelocityY = 0
}

func countEvents[T core.Event](events []core.Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.GapHeight = 512

	if _, err := New(cfg, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)

	if g.State() != core.StateMenu {
		t.Errorf("initial state = %s, expected Menu", g.State())
	}
	if g.Score() != -1 || g.DisplayScore() != 0 {
		t.Errorf("initial score = %d (display %d), expected -1 (0)", g.Score(), g.DisplayScore())
	}
	if _, ok := g.BirdPose(); ok {
		t.Error("bird should not exist in Menu")
	}
	if len(g.Obstacles()) != 0 {
		t.Error("no obstacles should exist in Menu")
	}
}

func TestMenuIgnoresFlapAndScrollsFloor(t *testing.T) {
	g := newTestGame(t)

	events := g.Tick(1.0, core.NewInputFrame(core.ActionFlap))

	if len(events) != 0 {
		t.Errorf("flap in Menu should produce no events, got %v", events)
	}
	if g.State() != core.StateMenu {
		t.Errorf("flap should not leave Menu, state = %s", g.State())
	}
	if _, ok := g.BirdPose(); ok {
		t.Error("flap in Menu must not create a bird")
	}

	segs := g.FloorSegments()
	if len(segs) != 2 || !approx(segs[0].X, -100) || !approx(segs[1].X, 44) {
		t.Errorf("floor after 1s in Menu = %v, expected x=-100 and x=44", segs)
	}
}

func TestMenuStartEntersPlaying(t *testing.T) {
	g := newTestGame(t)

	events := g.Tick(0, core.NewInputFrame(core.ActionStart))

	want := core.StateChanged{From: core.StateMenu, To: core.StatePlaying}
	if len(events) != 1 || events[0] != want {
		t.Fatalf("events = %v, expected [%v]", events, want)
	}

	pose, ok := g.BirdPose()
	if !ok {
		t.Fatal("bird should exist after entering Playing")
	}
	if pose.Position != (core.Vec2{X: -50, Y: 0}) {
		t.Errorf("bird start = %+v, expected (-50, 0)", pose.Position)
	}
	if v, _ := g.BirdVelocity(); v != 0 {
		t.Errorf("bird start velocity = %f, expected 0", v)
	}
}

func TestGravityIntegration(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.Tick(0.1, core.NewInputFrame())

	v, _ := g.BirdVelocity()
	pose, _ := g.BirdPose()
	if !approx(v, -100) {
		t.Errorf("velocity after 0.1s = %f, expected -100", v)
	}
	if !approx(pose.Position.Y, -10) {
		t.Errorf("y after 0.1s = %f, expected -10", pose.Position.Y)
	}
	if !approx(pose.Rotation, Tilt(-100, 3000)) {
		t.Errorf("rotation = %f, expected %f", pose.Rotation, Tilt(-100, 3000))
	}

	// Velocity is linear in elapsed time regardless of sub-stepping
	g.Tick(0.05, core.NewInputFrame())
	g.Tick(0.05, core.NewInputFrame())
	v, _ = g.BirdVelocity()
	if !approx(v, -200) {
		t.Errorf("velocity after 0.2s = %f, expected -200", v)
	}
}

func TestFlapOverwritesVelocity(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	for _, before := range []float64{-350, 0, 1000} {
		hold(g)
		g.bird.VelocityY = before

		events := g.Tick(0.01, core.NewInputFrame(core.ActionFlap))

		v, _ := g.BirdVelocity()
		if v != 400 {
			t.Errorf("velocity after flap from %f = %f, expected 400", before, v)
		}
		if countEvents[core.Flapped](events) != 1 {
			t.Errorf("expected one Flapped event, got %v", events)
		}
	}
}

func TestScoreIncrementsOncePerFiring(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	var scores []int
	for i := 0; i < 32; i++ {
		hold(g)
		for _, e := range g.Tick(0.125, core.NewInputFrame()) {
			if sc, ok := e.(core.ScoreChanged); ok {
				scores = append(scores, sc.Score)
			}
		}
		if g.State() != core.StatePlaying {
			t.Fatalf("unexpected game over at tick %d: %+v", i, g.LastCollision())
		}
	}

	if !reflect.DeepEqual(scores, []int{0, 1}) {
		t.Errorf("score updates = %v, expected [0 1]", scores)
	}
	if g.DisplayScore() != 1 {
		t.Errorf("display score = %d, expected 1", g.DisplayScore())
	}
	if n := len(g.Obstacles()); n != 4 {
		t.Errorf("live obstacles = %d, expected 4", n)
	}
}

func TestLargeDeltaFiresEveryInterval(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	events := g.Tick(6.0, core.NewInputFrame())

	if n := countEvents[core.ScoreChanged](events); n != 3 {
		t.Errorf("ScoreChanged events = %d, expected 3", n)
	}
	if n := countEvents[core.ObstacleSpawned](events); n != 6 {
		t.Errorf("ObstacleSpawned events = %d, expected 6", n)
	}
	if g.Score() != 2 {
		t.Errorf("score = %d, expected 2", g.Score())
	}
	// The bird fell through the floor during the same step
	if g.State() != core.StateGameOver {
		t.Errorf("state = %s, expected GameOver", g.State())
	}
}

func TestSpawnedPairsShareX(t *testing.T) {
	g := newTestGame(t, 0.25, 0.75)
	startPlaying(t, g)

	var spawned []core.ObstacleSpawned
	for i := 0; i < 32; i++ {
		hold(g)
		for _, e := range g.Tick(0.125, core.NewInputFrame()) {
			if s, ok := e.(core.ObstacleSpawned); ok {
				spawned = append(spawned, s)
			}
		}
	}

	if len(spawned) != 4 {
		t.Fatalf("spawned halves = %d, expected 4", len(spawned))
	}
	gaps := []float64{0.25 * 131, 0.75 * 131}
	for i := 0; i < len(spawned); i += 2 {
		top, bottom := spawned[i], spawned[i+1]
		if top.Kind != core.ObstacleTop || bottom.Kind != core.ObstacleBottom {
			t.Errorf("pair %d kinds = %s/%s", i/2, top.Kind, bottom.Kind)
		}
		if top.Position.X != 180 || bottom.Position.X != 180 {
			t.Errorf("pair %d x = %f/%f, expected 180", i/2, top.Position.X, bottom.Position.X)
		}
		gap := gaps[i/2]
		if !approx(top.Position.Y, gap+125) || !approx(bottom.Position.Y, gap-320) {
			t.Errorf("pair %d y = %f/%f, expected %f/%f", i/2, top.Position.Y, bottom.Position.Y, gap+125, gap-320)
		}
	}
}

func TestObstaclePastDespawnLineIsRemoved(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.spawner.obstacles = append(g.spawner.obstacles, Obstacle{
		ID:       99,
		Position: core.Vec2{X: -199.9, Y: 1000},
		Kind:     core.ObstacleTop,
	})

	hold(g)
	events := g.Tick(0.00101, core.NewInputFrame()) // scrolls 0.101 to x=-200.001

	found := false
	for _, e := range events {
		if e == (core.ObstacleDespawned{ID: 99}) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ObstacleDespawned{99}, got %v", events)
	}
	for _, o := range g.Obstacles() {
		if o.ID == 99 {
			t.Error("obstacle past the despawn line should be gone")
		}
	}
}

func TestCollisionEndsRunSameTick(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(g *Game)
		wantKind CollisionKind
	}{
		{
			name:     "ceiling",
			setup:    func(g *Game) { g.bird.Position.Y = 250 },
			wantKind: CollisionCeiling,
		},
		{
			name:     "floor",
			setup:    func(g *Game) { g.bird.Position.Y = -189 },
			wantKind: CollisionFloor,
		},
		{
			name: "top pipe",
			setup: func(g *Game) {
				g.spawner.obstacles = append(g.spawner.obstacles,
					Obstacle{ID: 7, Position: core.Vec2{X: -50, Y: 150}, Kind: core.ObstacleTop})
			},
			wantKind: CollisionObstacle,
		},
		{
			name: "bottom pipe alone",
			setup: func(g *Game) {
				g.spawner.obstacles = append(g.spawner.obstacles,
					Obstacle{ID: 7, Position: core.Vec2{X: -30, Y: -150}, Kind: core.ObstacleBottom})
			},
			wantKind: CollisionObstacle,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			startPlaying(t, g)
			hold(g)
			tc.setup(g)

			events := g.Tick(0, core.NewInputFrame())

			if g.State() != core.StateGameOver {
				t.Fatalf("state = %s, expected GameOver", g.State())
			}
			last := events[len(events)-1]
			if last != (core.StateChanged{From: core.StatePlaying, To: core.StateGameOver}) {
				t.Errorf("last event = %v, expected Playing -> GameOver", last)
			}
			if c := g.LastCollision(); c.Kind != tc.wantKind {
				t.Errorf("collision kind = %s, expected %s", c.Kind, tc.wantKind)
			}
			if _, ok := g.BirdPose(); ok {
				t.Error("bird should be destroyed on leaving Playing")
			}
		})
	}
}

func TestNoCollisionInsideGap(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	hold(g)

	// Pair drawn at 0.5: top spans y 30.5..350.5, bottom spans -414.5..-94.5
	g.spawner.obstacles = append(g.spawner.obstacles,
		Obstacle{ID: 1, Position: core.Vec2{X: -50, Y: 0.5*131 + 125}, Kind: core.ObstacleTop},
		Obstacle{ID: 2, Position: core.Vec2{X: -50, Y: 0.5*131 - 320}, Kind: core.ObstacleBottom},
	)

	g.Tick(0, core.NewInputFrame())
	if g.State() != core.StatePlaying {
		t.Errorf("bird inside the gap should survive, hit %+v", g.LastCollision())
	}
}

func TestGameOverWaitsForStart(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	g.bird.Position.Y = 300
	g.Tick(0, core.NewInputFrame())

	floorBefore := g.FloorSegments()
	events := g.Tick(1.0, core.NewInputFrame(core.ActionFlap))

	if len(events) != 0 || g.State() != core.StateGameOver {
		t.Errorf("flap in GameOver should do nothing, got %v in %s", events, g.State())
	}
	if !reflect.DeepEqual(g.FloorSegments(), floorBefore) {
		t.Error("floor should not scroll in GameOver")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	for i := 0; i < 32; i++ {
		hold(g)
		g.Tick(0.125, core.NewInputFrame())
	}
	// Leave the spawn timer 1.5s into its interval
	for i := 0; i < 12; i++ {
		hold(g)
		g.Tick(0.125, core.NewInputFrame())
	}
	leftover := g.Obstacles()
	if len(leftover) == 0 || g.Score() != 1 {
		t.Fatalf("setup: obstacles=%d score=%d", len(leftover), g.Score())
	}

	g.bird.Position.Y = -300
	g.Tick(0, core.NewInputFrame())
	if g.State() != core.StateGameOver {
		t.Fatalf("setup: state = %s", g.State())
	}

	events := g.Tick(0, core.NewInputFrame(core.ActionStart))

	if g.State() != core.StatePlaying {
		t.Fatalf("state = %s, expected Playing", g.State())
	}
	if g.Score() != -1 {
		t.Errorf("score = %d, expected sentinel -1", g.Score())
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("obstacles = %d, expected 0", len(g.Obstacles()))
	}
	pose, ok := g.BirdPose()
	if !ok || pose.Position != (core.Vec2{X: -50, Y: 0}) {
		t.Errorf("bird pose = %+v (ok=%v), expected fresh bird at (-50, 0)", pose, ok)
	}
	if v, _ := g.BirdVelocity(); v != 0 {
		t.Errorf("velocity = %f, expected 0", v)
	}
	if c := g.LastCollision(); c.Kind != CollisionNone {
		t.Errorf("last collision should clear on restart, got %s", c.Kind)
	}

	if n := countEvents[core.ObstacleDespawned](events); n != len(leftover) {
		t.Errorf("despawn events = %d, expected %d", n, len(leftover))
	}
	if n := countEvents[core.ScoreChanged](events); n != 1 {
		t.Errorf("ScoreChanged events = %d, expected 1", n)
	}

	// The spawn timer keeps running across runs: 1.5s were already banked
	hold(g)
	if n := countEvents[core.ObstacleSpawned](g.Tick(0.25, core.NewInputFrame())); n != 0 {
		t.Errorf("no pair should spawn at 1.75s into the interval, got %d", n)
	}
	hold(g)
	if n := countEvents[core.ObstacleSpawned](g.Tick(0.25, core.NewInputFrame())); n != 2 {
		t.Errorf("spawned = %d after restart+0.5s, expected one pair", n)
	}
}

func TestStartWhilePlayingIsIgnored(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	for i := 0; i < 2; i++ {
		events := g.Tick(0.1, core.NewInputFrame(core.ActionStart))
		if countEvents[core.StateChanged](events) != 0 {
			t.Fatalf("start while Playing should not transition, got %v", events)
		}
	}

	pose, _ := g.BirdPose()
	if approx(pose.Position.Y, 0) {
		t.Error("start while Playing should not reset the bird")
	}
}

func TestStateHooksOrder(t *testing.T) {
	g := newTestGame(t)

	var calls []string
	g.OnExit(func(s core.GameState) { calls = append(calls, "exit:"+s.String()) })
	g.OnEnter(func(s core.GameState) { calls = append(calls, "enter:"+s.String()) })
	g.OnClearPresentation(func() { calls = append(calls, "clear") })

	startPlaying(t, g)
	g.bird.Position.Y = 300
	g.Tick(0, core.NewInputFrame())
	g.Tick(0, core.NewInputFrame(core.ActionStart))

	want := []string{
		"exit:Menu", "clear", "enter:Playing",
		"exit:Playing", "enter:GameOver",
		"exit:GameOver", "clear", "enter:Playing",
	}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("hook calls = %v\nexpected     %v", calls, want)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (*Game, Stats) {
		g, err := NewSeeded(config.DefaultFlappyConfig(), 12345)
		if err != nil {
			t.Fatalf("NewSeeded failed: %v", err)
		}
		var stats Stats
		clock := core.FixedClock{Step: 1.0 / 60}
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			if i == 0 {
				in.Set(core.ActionStart)
			}
			if i%20 == 0 {
				in.Set(core.ActionFlap)
			}
			stats.Observe(g.Advance(clock, in))
		}
		return g, stats
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("stats differ:\n%+v\n%+v", s1, s2)
	}
	if !reflect.DeepEqual(g1.Obstacles(), g2.Obstacles()) {
		t.Error("obstacles differ between identical runs")
	}
	if g1.Score() != g2.Score() || g1.State() != g2.State() {
		t.Errorf("final state differs: %d/%s vs %d/%s", g1.Score(), g1.State(), g2.Score(), g2.State())
	}
}

func TestScoreNeverDecreasesWhilePlaying(t *testing.T) {
	g, err := NewSeeded(config.DefaultFlappyConfig(), 7)
	if err != nil {
		t.Fatal(err)
	}
	startPlaying(t, g)

	last := g.Score()
	for i := 0; i < 400 && g.State() == core.StatePlaying; i++ {
		hold(g)
		g.Tick(0.05, core.NewInputFrame())
		if g.Score() < last {
			t.Fatalf("score went from %d to %d", last, g.Score())
		}
		last = g.Score()
	}
}
