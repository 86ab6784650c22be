package widebird

import (
	"time"

	"github.com/vovakirdan/widebird/internal/core"
)

// Obstacle is one half of an obstacle pair.
// Obstacles are values and are never modified after generation.
type Obstacle struct {
	core.Rect
	Upper bool // Upper half hangs from the top, lower half stands on y=0
}

// World is an immutable snapshot of the playfield.
// Obstacles is append-only across successive snapshots of one playthrough,
// ordered by generation. That is also non-decreasing x order, except that a
// new batch may start up to a rounding error before the last obstacle of the
// previous one.
type World struct {
	Player    core.Rect
	Obstacles []Obstacle
	Score     int
	Rising    bool // The last tick applied a positive jump impulse
}

// Pairs returns the number of obstacle pairs in the world.
func (w World) Pairs() int {
	return len(w.Obstacles) / 2
}

// collides reports whether the player overlaps any obstacle.
func (w World) collides() bool {
	for _, o := range w.Obstacles {
		if o.Overlaps(w.Player) {
			return true
		}
	}
	return false
}

// ScoreOf counts obstacles whose left edge is strictly behind the player's
// left edge. Both halves of a pair share an x, so halving yields passed pairs.
func ScoreOf(player core.Rect, obstacles []Obstacle) int {
	behind := 0
	for _, o := range obstacles {
		if o.X < player.X {
			behind++
		}
	}
	return behind / 2
}

// Phase is the tag of a Session.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason tells which terminal check ended a playthrough.
type EndReason int

const (
	EndNone EndReason = iota
	EndGround
	EndCollision
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndGround:
		return "ground"
	case EndCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Session is the engine's state value. Every variant carries a World; the
// fields below World are only meaningful where noted.
type Session struct {
	Phase Phase
	World World

	StartedAt time.Time // Playing and Ended
	Ticks     int       // Playing and Ended: steps applied so far

	Score   int       // Ended: final score
	Best    int       // Ended: best score of this process, including Score
	EndedAt time.Time // Ended
	Reason  EndReason // Ended
}
