package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ScrollField moves things left at a constant speed.
type ScrollField struct {
	Speed float64
}

// Advance returns x after dt seconds of scrolling.
func (f ScrollField) Advance(x, dt float64) float64 {
	return x - f.Speed*dt
}

// Floor is the tiled ground strip. Segments wrap around instead of
// despawning so the ground looks infinite.
type Floor struct {
	field     ScrollField
	y         float64
	threshold float64
	offset    float64
	segments  []float64
}

// NewFloor places the segments at their configured start positions.
func NewFloor(cfg config.FlappyFloor, field ScrollField) *Floor {
	segments := make([]float64, len(cfg.Segments))
	copy(segments, cfg.Segments)
	return &Floor{
		field:     field,
		y:         cfg.Y,
		threshold: cfg.WrapThreshold,
		offset:    cfg.WrapOffset,
		segments:  segments,
	}
}

// Scroll moves every segment and wraps the ones past the threshold.
func (f *Floor) Scroll(dt float64) {
	for i, x := range f.segments {
		x = f.field.Advance(x, dt)
		if x < f.threshold {
			x = f.offset
		}
		f.segments[i] = x
	}
}

// Segments returns the current segment positions.
func (f *Floor) Segments() []core.Vec2 {
	out := make([]core.Vec2, len(f.segments))
	for i, x := range f.segments {
		out[i] = core.Vec2{X: x, Y: f.y}
	}
	return out
}
