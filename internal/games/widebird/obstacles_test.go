package widebird

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/widebird/internal/config"
)

func TestBatchLayout(t *testing.T) {
	cfg := config.DefaultGameConfig().Obstacles
	draws := []float64{0, 0.5, 0.25, 0.75, 0.999}
	g := NewGenerator(cfg, &scriptedRand{values: draws})

	batch := g.Batch(0.8)
	if len(batch) != 2*cfg.PairCount {
		t.Fatalf("batch size = %d, expected %d", len(batch), 2*cfg.PairCount)
	}

	for i := 0; i < cfg.PairCount; i++ {
		lower, upper := batch[2*i], batch[2*i+1]
		wantX := 0.8 + float64(i)*cfg.Spacing
		gapBase := 0.2 + draws[i]*0.3

		if lower.Upper || !upper.Upper {
			t.Errorf("pair %d: expected lower then upper", i)
		}
		if !approx(lower.X, wantX) || !approx(upper.X, wantX) {
			t.Errorf("pair %d: x = %v/%v, expected %v", i, lower.X, upper.X, wantX)
		}
		if lower.W != cfg.Width || upper.W != cfg.Width {
			t.Errorf("pair %d: widths %v/%v, expected %v", i, lower.W, upper.W, cfg.Width)
		}
		if lower.Y != 0 || !approx(lower.H, gapBase) {
			t.Errorf("pair %d: lower = %+v, expected y=0 h=%v", i, lower.Rect, gapBase)
		}
		if !approx(upper.Y, gapBase+cfg.GapSize) || !approx(upper.Top(), 1) {
			t.Errorf("pair %d: upper = %+v, expected to span %v..1", i, upper.Rect, gapBase+cfg.GapSize)
		}
		if gap := upper.Y - lower.Top(); !approx(gap, cfg.GapSize) {
			t.Errorf("pair %d: gap = %v, expected %v", i, gap, cfg.GapSize)
		}
	}
}

func TestBatchGapBaseRange(t *testing.T) {
	cfg := config.DefaultGameConfig().Obstacles
	g := NewGenerator(cfg, rand.New(rand.NewSource(1)))

	for n := 0; n < 200; n++ {
		for _, o := range g.Batch(float64(n)) {
			if o.Upper {
				continue
			}
			if o.H < 0.2 || o.H >= 0.5 {
				t.Fatalf("gap base %v outside [0.2, 0.5)", o.H)
			}
		}
	}
}

func TestBatchUsesOneDrawPerPair(t *testing.T) {
	cfg := config.DefaultGameConfig().Obstacles
	src := &scriptedRand{values: []float64{0.1}}
	g := NewGenerator(cfg, src)

	g.Batch(0)
	if src.next != cfg.PairCount {
		t.Errorf("draws = %d, expected one per pair (%d)", src.next, cfg.PairCount)
	}
}

func TestBatchSeededIsReproducible(t *testing.T) {
	cfg := config.DefaultGameConfig().Obstacles
	a := NewGenerator(cfg, rand.New(rand.NewSource(42))).Batch(0.8)
	b := NewGenerator(cfg, rand.New(rand.NewSource(42))).Batch(0.8)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScoreOf(t *testing.T) {
	batch := NewGenerator(config.DefaultGameConfig().Obstacles, &scriptedRand{values: []float64{0.5}}).Batch(0.8)
	player := func(x float64) World {
		w := World{Obstacles: batch}
		w.Player.X = x
		return w
	}

	tests := []struct {
		x    float64
		want int
	}{
		{0.1, 0},
		{0.8, 0}, // Strictly behind: equal x does not count
		{0.81, 1},
		{1.06, 2},
		{2.0, 5},
	}
	for _, tc := range tests {
		w := player(tc.x)
		if got := ScoreOf(w.Player, w.Obstacles); got != tc.want {
			t.Errorf("ScoreOf(x=%v) = %d, expected %d", tc.x, got, tc.want)
		}
	}
}
