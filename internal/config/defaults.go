package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/widebird.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in WideBird configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			GroundHeight: 0.1,
		},
		Player: PlayerConfig{
			X:      0.1,
			Y:      0.5,
			Width:  0.05,
			Height: 0.05,
		},
		Obstacles: ObstacleConfig{
			PairCount:         5,
			Width:             0.065,
			Spacing:           0.25,
			GapSize:           0.3,
			CreationLookahead: 0.8,
			GapBaseMin:        0.2,
			GapBaseRange:      0.3,
		},
		Physics: PhysicsConfig{
			HorizontalSpeed: 0.002,
			FallSpeed:       0.01,
			JumpImpulse:     0.02,
			JumpDecay:       0.001,
		},
		Timing: TimingConfig{
			TickIntervalMs:    100,
			RestartCooldownMs: 1000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}

// TickInterval returns the step cadence as a duration.
func (c TimingConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// RestartCooldown returns the game-over cool-down as a duration.
func (c TimingConfig) RestartCooldown() time.Duration {
	return time.Duration(c.RestartCooldownMs) * time.Millisecond
}
