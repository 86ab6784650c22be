package autopilot

import (
	"time"

	"github.com/vovakirdan/widebird/internal/games/widebird"
)

// Runner plays headless sessions on a manual clock.
type Runner struct {
	Engine   *widebird.Engine
	Clock    *widebird.ManualClock
	Pilot    *Pilot
	MaxTicks int // Steps after which a session is abandoned, 0 means no cap
}

// Play waits out any restart cool-down, starts a session and drives it to
// the end. The clock advances by one tick interval per step. The returned
// session is still Playing when MaxTicks cut it short.
func (r Runner) Play() widebird.Session {
	timing := r.Engine.Config().Timing

	for !r.Engine.CanStart() {
		r.Clock.Advance(timing.RestartCooldown())
	}
	r.Engine.Start()

	interval := timing.TickInterval()
	for r.Engine.Session().Phase == widebird.PhasePlaying {
		s := r.Engine.Session()
		if r.MaxTicks > 0 && s.Ticks >= r.MaxTicks {
			break
		}
		if r.Pilot.ShouldJump(s) {
			r.Engine.Jump()
		}
		r.Engine.Step()
		r.Clock.Advance(interval)
	}
	return r.Engine.Session()
}

// Elapsed is the simulated play time of s.
func Elapsed(s widebird.Session, interval time.Duration) time.Duration {
	return time.Duration(s.Ticks) * interval
}
