// Package config provides YAML-based game configuration loading and
// validation for WideBird. All lengths are in normalized world units where
// the playfield is the unit square.
package config

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Timing    TimingConfig   `yaml:"timing"`
}

// WorldConfig defines the static parts of the scene.
type WorldConfig struct {
	GroundHeight float64 `yaml:"ground_height"` // Player bottom below this ends the game
}

// PlayerConfig defines the default player rectangle.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines how obstacle pairs are generated.
type ObstacleConfig struct {
	PairCount         int     `yaml:"pair_count"`         // Pairs per generated batch
	Width             float64 `yaml:"width"`              // Width of every obstacle
	Spacing           float64 `yaml:"spacing"`            // Horizontal distance between pairs
	GapSize           float64 `yaml:"gap_size"`           // Vertical opening between lower and upper halves
	CreationLookahead float64 `yaml:"creation_lookahead"` // Distance ahead of the player where a batch starts
	GapBaseMin        float64 `yaml:"gap_base_min"`       // Lowest possible top of the lower half
	GapBaseRange      float64 `yaml:"gap_base_range"`     // Random spread added to GapBaseMin
}

// PhysicsConfig defines per-tick motion parameters.
type PhysicsConfig struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // Player x advance per tick
	FallSpeed       float64 `yaml:"fall_speed"`       // Constant downward drift per tick
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Added to the impulse accumulator per jump
	JumpDecay       float64 `yaml:"jump_decay"`       // Removed from the accumulator per tick
}

// TimingConfig defines wall-clock behavior of the driver and the engine.
type TimingConfig struct {
	TickIntervalMs    int `yaml:"tick_interval_ms"`    // Step cadence while playing
	RestartCooldownMs int `yaml:"restart_cooldown_ms"` // Minimum time in game over before a restart
}
