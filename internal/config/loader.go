package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "widebird.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.widebird/configs/widebird.yaml -> ./configs/widebird.yaml -> embedded default.
// Files overlay the defaults, so a file only needs the keys it changes.
// The result is validated before it is returned.
func Load(customPath string) (GameConfig, error) {
	cfg := embeddedDefaults()

	// A custom path is explicit, so any problem with it is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefaults()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, candidate.Validate()
	}

	return cfg, cfg.Validate()
}

// embeddedDefaults decodes the embedded YAML, falling back to the hardcoded
// defaults if the embed is unusable.
func embeddedDefaults() GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".widebird", "configs", filename)
}

// Validate reports every parameter that would make the simulation meaningless.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.GroundHeight >= 0 && c.World.GroundHeight < 1,
		"world.ground_height must be in [0, 1), got %v", c.World.GroundHeight)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X <= 1 && c.Player.Y >= 0 && c.Player.Y <= 1,
		"player position must be inside the unit square, got (%v, %v)", c.Player.X, c.Player.Y)

	o := c.Obstacles
	check(o.PairCount > 0, "obstacles.pair_count must be positive, got %d", o.PairCount)
	check(o.Width > 0, "obstacles.width must be positive, got %v", o.Width)
	check(o.Spacing > 0, "obstacles.spacing must be positive, got %v", o.Spacing)
	check(o.GapSize > 0, "obstacles.gap_size must be positive, got %v", o.GapSize)
	check(o.CreationLookahead >= 0, "obstacles.creation_lookahead must not be negative, got %v", o.CreationLookahead)
	check(o.GapBaseMin >= 0 && o.GapBaseRange >= 0,
		"obstacles.gap_base_min and gap_base_range must not be negative")
	check(o.GapBaseMin+o.GapBaseRange+o.GapSize <= 1,
		"obstacle gap does not fit: gap_base_min + gap_base_range + gap_size = %v > 1",
		o.GapBaseMin+o.GapBaseRange+o.GapSize)

	p := c.Physics
	check(p.HorizontalSpeed > 0, "physics.horizontal_speed must be positive, got %v", p.HorizontalSpeed)
	check(p.FallSpeed >= 0, "physics.fall_speed must not be negative, got %v", p.FallSpeed)
	check(p.JumpImpulse >= 0, "physics.jump_impulse must not be negative, got %v", p.JumpImpulse)
	check(p.JumpDecay >= 0, "physics.jump_decay must not be negative, got %v", p.JumpDecay)

	check(c.Timing.TickIntervalMs > 0, "timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMs)
	check(c.Timing.RestartCooldownMs >= 0, "timing.restart_cooldown_ms must not be negative, got %d", c.Timing.RestartCooldownMs)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}
