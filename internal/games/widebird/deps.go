package widebird

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Clock reports wall-clock time. It decides when a restart cool-down is over.
type Clock interface {
	Now() time.Time
}

// RandomSource yields independent uniform draws in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Deps carries the collaborators the engine does not own.
// Nil fields are replaced with production defaults by New.
type Deps struct {
	Clock  Clock
	Rand   RandomSource
	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = SystemClock{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Headless runs and tests use it to
// make cool-downs deterministic.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
