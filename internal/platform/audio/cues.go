// Package audio plays the game's sound cues through beep.
// Cues are synthesized procedurally so the binary ships no sample files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueWing  Cue = iota // Played on every flap
	CuePoint            // Played when the score becomes positive
	CueHit              // Played when a run ends
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueWing:
		return "wing"
	case CuePoint:
		return "point"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// CuesFor maps one tick's events to the cues they trigger, in event order.
func CuesFor(events []core.Event) []Cue {
	var cues []Cue
	for _, e := range events {
		switch ev := e.(type) {
		case core.Flapped:
			cues = append(cues, CueWing)
		case core.ScoreChanged:
			if ev.Score > 0 {
				cues = append(cues, CuePoint)
			}
		case core.StateChanged:
			if ev.To == core.StateGameOver {
				cues = append(cues, CueHit)
			}
		}
	}
	return cues
}

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a finite tone of the given shape.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over d with the given attack and release times.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or less is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue timings.
const (
	wingDuration   = 70 * time.Millisecond
	pointNote      = 90 * time.Millisecond
	hitDuration    = 220 * time.Millisecond
	attackTime     = 5 * time.Millisecond
	wingRelease    = 50 * time.Millisecond
	pointRelease   = 60 * time.Millisecond
	hitRelease     = 180 * time.Millisecond
	hitNoiseWeight = 0.6
)

// NewCue builds the streamer for a cue at the given volume.
// Returns nil for unknown cues.
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueWing:
		osc := NewOscillator(520, wingDuration, WaveSquare, rate)
		s = newVolume(NewEnvelope(osc, wingDuration, attackTime, wingRelease, rate), 0.4)

	case CuePoint:
		// B5 then E6
		n1 := NewEnvelope(NewOscillator(987.77, pointNote, WaveSine, rate), pointNote, attackTime, pointRelease, rate)
		n2 := NewEnvelope(NewOscillator(1318.51, pointNote, WaveSine, rate), pointNote, attackTime, pointRelease, rate)
		s = beep.Seq(n1, n2)

	case CueHit:
		noise := NewEnvelope(NewOscillator(0, hitDuration, WaveNoise, rate), hitDuration, attackTime, hitRelease, rate)
		thud := NewEnvelope(NewOscillator(90, hitDuration, WaveSaw, rate), hitDuration, attackTime, hitRelease, rate)
		s = beep.Mix(newVolume(noise, hitNoiseWeight), newVolume(thud, 1-hitNoiseWeight))

	default:
		return nil
	}
	return newVolume(s, volume)
}
