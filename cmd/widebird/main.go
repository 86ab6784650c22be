// widebird is a side-scrolling one-button game for the terminal: keep the
// bird in the air and thread it through the gaps.
//
// Usage:
//
//	widebird                 - Play (same as widebird play)
//	widebird play            - Play in the terminal
//	widebird autoplay        - Let the autopilot play headless sessions
//	widebird config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible obstacle layouts
//	--config <path>   - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "widebird",
	Short: "WideBird - a one-button side scroller in your terminal",
	Long: `WideBird drops a bird into a stream of obstacle pairs. Jump to stay
airborne, pass through the gaps and don't touch the ground.

Available commands:
  play      - Play in the terminal (default)
  autoplay  - Run headless sessions driven by the autopilot
  config    - Print the default configuration

Examples:
  widebird
  widebird play --seed 42
  widebird autoplay --sessions 10
  widebird config > ~/.widebird/configs/widebird.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(configCmd)
}
