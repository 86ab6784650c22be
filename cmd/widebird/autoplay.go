package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/widebird/internal/autopilot"
	"github.com/vovakirdan/widebird/internal/config"
	"github.com/vovakirdan/widebird/internal/games/widebird"
	"github.com/vovakirdan/widebird/internal/storage"
)

var (
	flagSessions int
	flagMaxTicks int
	flagBias     float64
	flagVerbose  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run headless sessions driven by the autopilot",
	Long: `Play sessions without a terminal UI. The autopilot decides when to
jump and the clock is simulated, so runs finish as fast as the machine
allows and the same seed always gives the same results.

Examples:
  widebird autoplay
  widebird autoplay --sessions 20 --seed 7
  widebird autoplay --max-ticks 5000 --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		logger := newLogger(os.Stderr, level)

		return runAutoplay(cmd.OutOrStdout(), cfg, logger, autoplayOptions{
			Sessions: flagSessions,
			MaxTicks: flagMaxTicks,
			Bias:     flagBias,
		})
	},
}

func init() {
	autoplayCmd.Flags().IntVar(&flagSessions, "sessions", 5, "Number of sessions to play")
	autoplayCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Abandon a session after this many ticks (0 = no cap)")
	autoplayCmd.Flags().Float64Var(&flagBias, "bias", autopilot.DefaultBias, "Aim this far below the middle of each gap")
	autoplayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine transitions")
}

type autoplayOptions struct {
	Sessions int
	MaxTicks int
	Bias     float64
}

func runAutoplay(w io.Writer, cfg config.GameConfig, logger *log.Logger, opts autoplayOptions) error {
	if opts.Sessions <= 0 {
		return fmt.Errorf("--sessions must be positive, got %d", opts.Sessions)
	}

	rng, seed := newRand()

	clock := widebird.NewManualClock(time.Unix(0, 0))
	engine := widebird.New(cfg, widebird.Deps{Clock: clock, Rand: rng, Logger: logger})

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		return err
	}
	defer store.Close()
	rec := storage.NewRecorder(store, logger)
	detach := rec.Attach(engine)

	logger.Info("autoplay", "sessions", opts.Sessions, "seed", seed, "max_ticks", opts.MaxTicks)

	runner := autopilot.Runner{
		Engine:   engine,
		Clock:    clock,
		Pilot:    autopilot.New(opts.Bias),
		MaxTicks: opts.MaxTicks,
	}
	interval := cfg.Timing.TickInterval()

	capped := 0
	for i := 1; i <= opts.Sessions; i++ {
		s := runner.Play()

		score, reason := s.Score, s.Reason.String()
		if s.Phase == widebird.PhasePlaying {
			// Never reaches Ended, so the ledger does not see it
			score, reason = s.World.Score, "capped"
			capped++
		}
		fmt.Fprintf(w, "session %3d  score %4d  ticks %6d  time %8s  %s\n",
			i, score, s.Ticks, autopilot.Elapsed(s, interval), reason)

		if s.Phase == widebird.PhasePlaying {
			// A playing engine never accepts Start again, so abandon it
			detach()
			engine = widebird.New(cfg, widebird.Deps{Clock: clock, Rand: rng, Logger: logger})
			detach = rec.Attach(engine)
			runner.Engine = engine
		}
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "recorded %d  failed %d  capped %d  best %d  avg %.2f  total ticks %d\n",
		rec.Recorded(), rec.Failed(), capped, stats.BestScore, stats.AvgScore, stats.TotalTicks)
	return nil
}
