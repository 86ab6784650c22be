package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/widebird/internal/games/widebird"
)

// Recorder writes a ledger row each time the engine enters the Ended phase.
type Recorder struct {
	store  *Store
	logger *log.Logger
	last   widebird.Phase

	recorded int
	failed   int
}

// NewRecorder creates a recorder writing to store. logger receives ledger
// failures as warnings and may be nil.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// Attach subscribes the recorder to e. The returned function detaches it.
func (r *Recorder) Attach(e *widebird.Engine) (detach func()) {
	r.last = e.Session().Phase
	return e.Subscribe(r.Observe)
}

// Observe handles one session replacement.
func (r *Recorder) Observe(s widebird.Session) {
	entered := s.Phase == widebird.PhaseEnded && r.last != widebird.PhaseEnded
	r.last = s.Phase
	if !entered {
		return
	}

	id, err := r.store.RecordSession(SessionRecord{
		GameID:    widebird.ID,
		Score:     s.Score,
		Best:      s.Best,
		Ticks:     s.Ticks,
		Pairs:     s.World.Pairs(),
		Reason:    s.Reason.String(),
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	})
	if err != nil {
		r.failed++
		if r.logger != nil {
			r.logger.Warn("session not recorded", "err", err)
		}
		return
	}

	r.recorded++
	if r.logger != nil {
		r.logger.Debug("session recorded", "id", id, "score", s.Score)
	}
}

// Recorded returns how many sessions were written.
func (r *Recorder) Recorded() int {
	return r.recorded
}

// Failed returns how many writes were lost.
func (r *Recorder) Failed() int {
	return r.failed
}
