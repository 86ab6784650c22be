// Package autopilot steers a WideBird playthrough without a human: it aims
// the player at the middle of the next gap and jumps on the way down.
package autopilot

import (
	"github.com/vovakirdan/widebird/internal/games/widebird"
)

// DefaultBias keeps the aim slightly low so a late jump still clears the
// lower half.
const DefaultBias = 0.02

// Pilot decides, tick by tick, whether to jump.
// A Pilot follows one engine; it is not safe for concurrent use.
type Pilot struct {
	bias  float64 // Offset of the aim point below the gap center
	lastY float64
}

// New creates a pilot. bias lowers the aim point, trading headroom under
// the upper half for headroom over the lower half.
func New(bias float64) *Pilot {
	return &Pilot{bias: bias}
}

// ShouldJump inspects the session before a step and reports whether the
// driver should call Jump first.
func (p *Pilot) ShouldJump(s widebird.Session) bool {
	if s.Phase != widebird.PhasePlaying {
		return false
	}

	player := s.World.Player
	descending := s.Ticks == 0 || player.Y < p.lastY
	p.lastY = player.Y

	return descending && player.Y < p.Target(s.World)
}

// Target returns the player bottom the pilot aims for. It looks at the first
// pair the player has not fully cleared, together with every later pair that
// starts before that one ends, and aims at the middle of the opening they
// leave in common. With nothing ahead it aims at mid-screen.
func (p *Pilot) Target(w widebird.World) float64 {
	player := w.Player

	var first *widebird.Obstacle
	var low, high float64
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Upper || o.Right() <= player.X || i+1 >= len(w.Obstacles) {
			continue
		}
		upper := w.Obstacles[i+1]
		if first == nil {
			first = o
			low, high = o.Top(), upper.Y
			continue
		}
		if o.X >= first.Right() {
			break
		}
		low = max(low, o.Top())
		high = min(high, upper.Y)
	}

	if first == nil {
		return 0.5 - player.H/2
	}
	return (low+high)/2 - player.H/2 - p.bias
}
