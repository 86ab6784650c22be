package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/widebird/internal/config"
	"github.com/vovakirdan/widebird/internal/core"
	"github.com/vovakirdan/widebird/internal/games/widebird"
	"github.com/vovakirdan/widebird/internal/platform/tui"
	"github.com/vovakirdan/widebird/internal/storage"
)

var (
	flagLogFile string
	flagTick    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start WideBird in the terminal.

Controls:
  Enter/Click     - Play
  Space/Up/W      - Jump (play again after game over)
  Click           - Jump while playing
  Tab             - Session history
  Q/Ctrl+C        - Quit

After a game over, a new game can start once a second has passed.

Examples:
  widebird play
  widebird play --seed 42
  widebird play --tick 60ms --log-file /tmp/widebird.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
		c.Flags().DurationVar(&flagTick, "tick", 0, "Simulation tick (default from config)")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(out, log.DebugLevel)

	rng, seed := newRand()
	engine := widebird.New(cfg, widebird.Deps{Rand: rng, Logger: logger})
	interval := tickInterval(cfg, flagTick)
	logger.Info("starting", "seed", seed, "tick", interval)

	// The ledger is optional; the game runs without history if it fails
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("session ledger unavailable", "err", err)
	} else {
		defer store.Close()
		storage.NewRecorder(store, logger).Attach(engine)
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.Seed = seed

	return tui.Run(engine, store, tui.Options{
		Interval: interval,
		Logger:   logger,
		Runtime:  runtime,
	})
}

// tickInterval is the --tick flag when set, the configured tick otherwise.
func tickInterval(cfg config.GameConfig, flag time.Duration) time.Duration {
	if flag > 0 {
		return flag
	}
	return cfg.Timing.TickInterval()
}
