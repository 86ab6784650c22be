package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/widebird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in game configuration as YAML.

Copy it to ~/.widebird/configs/widebird.yaml or ./configs/widebird.yaml and
edit the values you want to change. Keys left out keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

// loadConfig loads the game configuration honoring --config.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newRand seeds a source from --seed, or from the clock when it is 0.
// The seed used is returned for logging.
func newRand() (*rand.Rand, int64) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
