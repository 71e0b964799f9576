// Package tui hosts the flappy engine in a Bubble Tea program.
// It owns the wall clock, key mapping, rendering and the side effects the
// engine reports through events: sound cues, logging and recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate (ticks per second).
// The engine is fed measured wall time, so the rate only sets smoothness.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
