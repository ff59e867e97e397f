package config

import (
	_ "embed"
)

//go:embed defaults/coins.yaml
var defaultCoinsYAML []byte

// DefaultCoinsConfig returns the default Coin Collector configuration.
// The values mirror defaults/coins.yaml and are the last-resort fallback
// if the embedded YAML cannot be parsed.
func DefaultCoinsConfig() CoinsConfig {
	return CoinsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 800,
		},
		Player: PlayerConfig{
			Width:           50,
			Height:          50,
			Speed:           10,
			BottomMargin:    10,
			Lives:           1,
			BoostMultiplier: 1.5,
		},
		Obstacles: ObstacleConfig{
			MinWidth:       100,
			MaxWidth:       200,
			Height:         20,
			BaseSpeed:      5.0,
			SpeedIncrement: 0.3,
		},
		Coins: CoinConfig{
			Radius:         15,
			BaseSpeed:      4.0,
			SpeedIncrement: 0.2,
			BaseValue:      1,
			RareValue:      5,
			RareChance:     0.10,
		},
		PowerUps: PowerUpConfig{
			Size:        30,
			FallSpeed:   3.0,
			SpawnChance: 0.05,
			MaxActive:   2,
		},
		Particles: ParticleConfig{
			MinSize:     2,
			MaxSize:     5,
			VXRange:     2.0,
			VYMin:       -5.0,
			VYMax:       -1.0,
			MinLifetime: 20,
			MaxLifetime: 40,
			ShrinkRate:  0.1,
			CoinBurst:   20,
			HitBurst:    30,
		},
		Spawn: SpawnConfig{
			BaseObstacles: 3,
			MaxObstacles:  5,
			BaseCoins:     2,
			MaxCoins:      5,
		},
		Effects: EffectConfig{
			DurationMS: 5000,
		},
	}
}
