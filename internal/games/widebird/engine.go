// Package widebird implements the WideBird simulation: a body falls at a
// constant rate, jumps add a decaying upward impulse, and the world scrolls
// through procedurally generated obstacle pairs.
//
// The Engine is not safe for concurrent use. One goroutine drives Step on a
// fixed cadence and forwards Start and Jump; presentation reads Session once
// per frame.
package widebird

import (
	"github.com/vovakirdan/widebird/internal/config"
	"github.com/vovakirdan/widebird/internal/core"
)

// ID identifies the game in logs and the session ledger.
const ID = "widebird"

// Engine owns all world state and the session state machine.
type Engine struct {
	cfg       config.GameConfig
	deps      Deps
	generator *Generator

	session Session
	impulse float64 // Jump impulse accumulator
	best    int

	observers  []observer
	observerID int
}

type observer struct {
	id int
	fn func(Session)
}

// New creates an engine in the Waiting phase. cfg is expected to be valid.
func New(cfg config.GameConfig, deps Deps) *Engine {
	deps = deps.withDefaults()
	e := &Engine{
		cfg:       cfg,
		deps:      deps,
		generator: NewGenerator(cfg.Obstacles, deps.Rand),
	}
	e.session = Session{
		Phase: PhaseWaiting,
		World: World{Player: e.defaultPlayer()},
	}
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.GameConfig {
	return e.cfg
}

// Session returns the current state. The value must be treated as read-only.
func (e *Engine) Session() Session {
	return e.session
}

// Best returns the best score of all completed playthroughs of this process.
func (e *Engine) Best() int {
	return e.best
}

// CanStart reports whether Start would begin a new playthrough right now.
func (e *Engine) CanStart() bool {
	switch e.session.Phase {
	case PhaseWaiting:
		return true
	case PhasePlaying:
		return false
	case PhaseEnded:
		return e.deps.Clock.Now().Sub(e.session.EndedAt) >= e.cfg.Timing.RestartCooldown()
	default:
		return false
	}
}

// Subscribe registers fn to be called after every state replacement.
// fn runs synchronously on the driving goroutine and must not call back
// into the engine. The returned function removes the subscription.
func (e *Engine) Subscribe(fn func(Session)) (cancel func()) {
	e.observerID++
	id := e.observerID
	e.observers = append(e.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range e.observers {
			if o.id == id {
				e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// Start begins a new playthrough with a fresh world. It is ignored while
// playing and during the restart cool-down after a game over.
func (e *Engine) Start() {
	if !e.CanStart() {
		e.deps.Logger.Debug("start ignored", "phase", e.session.Phase)
		return
	}

	e.impulse = 0
	e.replace(Session{
		Phase: PhasePlaying,
		World: World{
			Player:    e.defaultPlayer(),
			Obstacles: e.generator.Batch(e.cfg.Obstacles.CreationLookahead),
		},
		StartedAt: e.deps.Clock.Now(),
	})
	e.deps.Logger.Debug("playthrough started", "obstacles", len(e.session.World.Obstacles))
}

// Jump adds one jump impulse. Only effective while playing. The accumulator
// is not clamped here, so several jumps within one tick stack.
func (e *Engine) Jump() {
	if e.session.Phase != PhasePlaying {
		return
	}
	e.impulse += e.cfg.Physics.JumpImpulse
}

// Step advances the simulation by one tick. It is a no-op unless playing.
func (e *Engine) Step() {
	if e.session.Phase != PhasePlaying {
		return
	}

	w := e.session.World
	score := ScoreOf(w.Player, w.Obstacles)

	// Terminal checks see the world as committed by the previous tick
	if w.Player.Y < e.cfg.World.GroundHeight {
		e.end(score, EndGround)
		return
	}
	if w.collides() {
		e.end(score, EndCollision)
		return
	}

	// Keep the stream populated: the threshold grows with distance travelled
	obstacles := w.Obstacles
	if float64(len(obstacles)) < w.Player.X*float64(e.cfg.Obstacles.PairCount*2) {
		obstacles = append(obstacles, e.generator.Batch(w.Player.X+e.cfg.Obstacles.CreationLookahead)...)
	}

	phys := e.cfg.Physics
	applied := e.impulse
	player := w.Player.MoveTo(
		w.Player.X+phys.HorizontalSpeed,
		core.ClampF(w.Player.Y+applied-phys.FallSpeed, 0, 1),
	)
	e.impulse = core.ClampF(e.impulse-phys.JumpDecay, 0, 1)

	next := e.session
	next.World = World{
		Player:    player,
		Obstacles: obstacles,
		Score:     score,
		Rising:    applied > 0,
	}
	next.Ticks++
	e.replace(next)
}

// end moves to the Ended phase, keeping the last committed world.
func (e *Engine) end(score int, reason EndReason) {
	e.best = max(e.best, score)

	next := e.session
	next.Phase = PhaseEnded
	next.Score = score
	next.Best = e.best
	next.EndedAt = e.deps.Clock.Now()
	next.Reason = reason
	e.replace(next)

	e.deps.Logger.Debug("game over", "reason", reason, "score", score, "best", e.best, "ticks", next.Ticks)
}

func (e *Engine) replace(s Session) {
	e.session = s
	for _, o := range e.observers {
		o.fn(s)
	}
}

func (e *Engine) defaultPlayer() core.Rect {
	p := e.cfg.Player
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
