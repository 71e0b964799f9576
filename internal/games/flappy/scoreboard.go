package flappy

// Scoreboard counts spawned pipe pairs, starting from a sentinel so the
// first pair on screen reads as zero.
type Scoreboard struct {
	score    int
	sentinel int
}

// NewScoreboard creates a scoreboard at its sentinel value.
func NewScoreboard(sentinel int) Scoreboard {
	return Scoreboard{score: sentinel, sentinel: sentinel}
}

// Reset returns the score to the sentinel.
func (s *Scoreboard) Reset() {
	s.score = s.sentinel
}

// Increment adds one and returns the new raw score.
func (s *Scoreboard) Increment() int {
	s.score++
	return s.score
}

// Score returns the raw score, which may be the negative sentinel.
func (s Scoreboard) Score() int {
	return s.score
}

// Display returns the score as shown to the player (never below zero).
func (s Scoreboard) Display() int {
	if s.score < 0 {
		return 0
	}
	return s.score
}
