package widebird

import (
	"github.com/vovakirdan/widebird/internal/config"
	"github.com/vovakirdan/widebird/internal/core"
)

// Generator produces batches of obstacle pairs.
type Generator struct {
	cfg config.ObstacleConfig
	rng RandomSource
}

// NewGenerator creates a generator drawing gap heights from rng.
func NewGenerator(cfg config.ObstacleConfig, rng RandomSource) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Batch returns cfg.PairCount pairs, the first one at startX and each next
// one Spacing further right. Every pair gets its own random gap base in
// [GapBaseMin, GapBaseMin+GapBaseRange). The lower half precedes the upper.
func (g *Generator) Batch(startX float64) []Obstacle {
	batch := make([]Obstacle, 0, g.cfg.PairCount*2)
	for i := 0; i < g.cfg.PairCount; i++ {
		x := startX + float64(i)*g.cfg.Spacing
		gapBase := g.cfg.GapBaseMin + g.rng.Float64()*g.cfg.GapBaseRange
		gapTop := gapBase + g.cfg.GapSize

		batch = append(batch,
			Obstacle{Rect: core.NewRect(x, 0, g.cfg.Width, gapBase)},
			Obstacle{Rect: core.NewRect(x, gapTop, g.cfg.Width, 1-gapTop), Upper: true},
		)
	}
	return batch
}
