package storage

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Frame is one recorded tick: the delta fed to the engine and the
// engine-visible inputs held during it.
type Frame struct {
	Delta float64
	Flap  bool
	Start bool
}

// Input rebuilds the input frame the engine saw.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	if f.Flap {
		in.Set(core.ActionFlap)
	}
	if f.Start {
		in.Set(core.ActionStart)
	}
	return in
}

// Recording is everything needed to re-simulate a session exactly:
// the seed of the random source, the configuration and every tick.
type Recording struct {
	ID        int64
	Seed      int64
	Config    config.FlappyConfig
	Frames    []Frame
	CreatedAt time.Time
}

// Duration returns the simulated time covered by the recording.
func (r Recording) Duration() float64 {
	total := 0.0
	for _, f := range r.Frames {
		total += f.Delta
	}
	return total
}

// Replay re-runs the recording on a fresh game seeded like the original.
// observe, if non-nil, receives each tick's events as they are produced.
func (r Recording) Replay(observe func(tick int, events []core.Event)) (*flappy.Game, flappy.Stats, error) {
	g, err := flappy.New(r.Config, rand.New(rand.NewSource(r.Seed)))
	if err != nil {
		return nil, flappy.Stats{}, fmt.Errorf("storage: cannot replay recording %d: %w", r.ID, err)
	}

	var stats flappy.Stats
	for i, f := range r.Frames {
		events := g.Tick(f.Delta, f.Input())
		stats.Observe(events)
		if observe != nil {
			observe(i, events)
		}
	}
	return g, stats, nil
}

// Recorder captures the ticks of a live session.
type Recorder struct {
	seed   int64
	cfg    config.FlappyConfig
	frames []Frame
}

// NewRecorder starts an empty recording for a game built from seed and cfg.
func NewRecorder(seed int64, cfg config.FlappyConfig) *Recorder {
	return &Recorder{
		seed:   seed,
		cfg:    cfg,
		frames: make([]Frame, 0, 1024),
	}
}

// Record appends one tick.
func (r *Recorder) Record(dt float64, in core.InputFrame) {
	r.frames = append(r.frames, Frame{
		Delta: dt,
		Flap:  in.Has(core.ActionFlap),
		Start: in.Has(core.ActionStart),
	})
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Recording returns a snapshot of what has been captured so far.
func (r *Recorder) Recording() Recording {
	frames := make([]Frame, len(r.frames))
	copy(frames, r.frames)
	return Recording{
		Seed:   r.seed,
		Config: r.cfg,
		Frames: frames,
	}
}
