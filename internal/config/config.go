// Package config provides YAML-based game configuration loading for the
// Coin Collector game. Every gameplay constant lives here so that custom
// config files can retune the game without code changes.
package config

// CoinsConfig contains all configuration for the Coin Collector game.
// Positions and sizes are in world units; the world is a fixed virtual
// plane that the renderer projects onto the terminal.
type CoinsConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	PowerUps  PowerUpConfig  `yaml:"power_ups"`
	Particles ParticleConfig `yaml:"particles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Effects   EffectConfig   `yaml:"effects"`
}

// WorldConfig defines the virtual simulation plane.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`            // World units per tick
	BottomMargin    float64 `yaml:"bottom_margin"`    // Gap between player and bottom edge
	Lives           int     `yaml:"lives"`            // Starting lives per session
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Speed factor while boosted
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	MinWidth       int     `yaml:"min_width"` // Width rolled as an integer in [min, max)
	MaxWidth       int     `yaml:"max_width"`
	Height         float64 `yaml:"height"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added on every respawn
}

// CoinConfig defines falling coins.
type CoinConfig struct {
	Radius         float64 `yaml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added on every respawn
	BaseValue      int     `yaml:"base_value"`
	RareValue      int     `yaml:"rare_value"`
	RareChance     float64 `yaml:"rare_chance"` // Probability of the rare value per respawn
}

// PowerUpConfig defines falling power-ups.
type PowerUpConfig struct {
	Size        float64 `yaml:"size"`         // Power-ups are square
	FallSpeed   float64 `yaml:"fall_speed"`   // Constant, never incremented
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick spawn probability
	MaxActive   int     `yaml:"max_active"`   // Spawn suppressed at this many in flight
}

// ParticleConfig defines the cosmetic particle bursts.
type ParticleConfig struct {
	MinSize     int     `yaml:"min_size"` // Size rolled as an integer in [min, max]
	MaxSize     int     `yaml:"max_size"`
	VXRange     float64 `yaml:"vx_range"` // Horizontal velocity in [-range, range]
	VYMin       float64 `yaml:"vy_min"`   // Vertical velocity in [vy_min, vy_max]
	VYMax       float64 `yaml:"vy_max"`
	MinLifetime int     `yaml:"min_lifetime"` // Lifetime rolled in [min, max) ticks
	MaxLifetime int     `yaml:"max_lifetime"`
	ShrinkRate  float64 `yaml:"shrink_rate"` // Size lost per tick, floored at 0
	CoinBurst   int     `yaml:"coin_burst"`  // Particles per coin collection
	HitBurst    int     `yaml:"hit_burst"`   // Particles per obstacle hit
}

// SpawnConfig caps the level-derived entity counts.
// Obstacles grow by one every second level, coins by one every third,
// each capped at its max.
type SpawnConfig struct {
	BaseObstacles int `yaml:"base_obstacles"`
	MaxObstacles  int `yaml:"max_obstacles"`
	BaseCoins     int `yaml:"base_coins"`
	MaxCoins      int `yaml:"max_coins"`
}

// EffectConfig defines the timed player buffs.
type EffectConfig struct {
	DurationMS int64 `yaml:"duration_ms"` // Shield and boost window length
}
