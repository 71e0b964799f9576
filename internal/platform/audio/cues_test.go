package audio

import (
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns every sample produced.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
		want   []Cue
	}{
		{"no events", nil, nil},
		{"flap", []core.Event{core.Flapped{}}, []Cue{CueWing}},
		{"first pair does not score", []core.Event{core.ScoreChanged{Score: 0}}, nil},
		{"positive score", []core.Event{core.ScoreChanged{Score: 1}}, []Cue{CuePoint}},
		{"reset to sentinel", []core.Event{core.ScoreChanged{Score: -1}}, nil},
		{
			"game over",
			[]core.Event{core.StateChanged{From: core.StatePlaying, To: core.StateGameOver}},
			[]Cue{CueHit},
		},
		{
			"start is silent",
			[]core.Event{core.StateChanged{From: core.StateMenu, To: core.StatePlaying}},
			nil,
		},
		{
			"order preserved",
			[]core.Event{
				core.Flapped{},
				core.ScoreChanged{Score: 4},
				core.ObstacleSpawned{ID: 1},
				core.StateChanged{From: core.StatePlaying, To: core.StateGameOver},
			},
			[]Cue{CueWing, CuePoint, CueHit},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CuesFor(tc.events); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("CuesFor() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		samples := drain(t, osc)

		if len(samples) != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, expected %d", wave, len(samples), testRate.N(100*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d = %v out of range or not mono", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // phase stays 0: constant +1
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, expected silent attack start", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if mid != 1 {
		t.Errorf("sustain sample = %f, expected 1", mid)
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.1 {
		t.Errorf("last sample = %f, expected near-silent release tail", last)
	}
}

func TestNewCue(t *testing.T) {
	tests := []struct {
		cue     Cue
		minLen  time.Duration
		maxPeak float64
	}{
		{CueWing, wingDuration, 0.5},
		{CuePoint, 2 * pointNote, 0.5},
		{CueHit, hitDuration, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			s := NewCue(tc.cue, testRate, 0.5)
			if s == nil {
				t.Fatal("NewCue returned nil")
			}
			samples := drain(t, s)
			if len(samples) < testRate.N(tc.minLen) {
				t.Errorf("cue length %d, expected at least %d", len(samples), testRate.N(tc.minLen))
			}
			for i, v := range samples {
				if v[0] > tc.maxPeak+1e-9 || v[0] < -tc.maxPeak-1e-9 {
					t.Fatalf("sample %d = %f exceeds volume %f", i, v[0], tc.maxPeak)
				}
			}
		})
	}

	if NewCue(Cue(99), testRate, 1) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	for _, v := range drain(t, NewCue(CueHit, testRate, 0)) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("sample %v, expected silence", v)
		}
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(false)

	// Dropped silently without a speaker
	p.PlayAll([]Cue{CueWing, CuePoint, CueHit})

	if !p.ToggleMute() || !p.Muted() {
		t.Error("ToggleMute should mute an unmuted player")
	}
	if p.ToggleMute() {
		t.Error("second ToggleMute should unmute")
	}
	p.Close()
}
