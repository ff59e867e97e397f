package coins

import "math"

// Snapshot contains the complete simulation state in primitive fields.
// It exists for determinism checks: two sessions with the same seed and
// input script must produce identical snapshots tick for tick. There is
// no restore path.
type Snapshot struct {
	Tick  uint64
	Mode  int
	Score int
	Level int
	Lives int

	HighScore int
	DarkMode  bool
	Quitting  bool

	PlayerX float64
	PlayerY float64

	ShieldActive bool
	ShieldAt     int64
	BoostActive  bool
	BoostAt      int64

	// Flattened entity state (bools encoded as 0/1)
	ObstacleCount int
	ObstacleData  []float64 // X, Y, W, Speed per obstacle
	CoinCount     int
	CoinData      []float64 // X, Y, Speed, Value, Collected, Anim per coin
	PowerUpCount  int
	PowerUpData   []float64 // X, Y, Kind, Collected per power-up
	ParticleCount int
	ParticleData  []float64 // X, Y, VX, VY, Size, Lifetime per particle
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacleData := make([]float64, 0, len(g.obstacles)*4)
	for _, o := range g.obstacles {
		obstacleData = append(obstacleData, o.X, o.Y, o.W, o.Speed)
	}

	coinData := make([]float64, 0, len(g.coins)*6)
	for _, c := range g.coins {
		coinData = append(coinData, c.X, c.Y, c.Speed, float64(c.Value), boolF(c.Collected), float64(c.Anim))
	}

	powerUpData := make([]float64, 0, len(g.powerups)*4)
	for _, p := range g.powerups {
		powerUpData = append(powerUpData, p.X, p.Y, float64(p.Kind), boolF(p.Collected))
	}

	particleData := make([]float64, 0, len(g.particles)*6)
	for _, p := range g.particles {
		particleData = append(particleData, p.X, p.Y, p.VX, p.VY, p.Size, float64(p.Lifetime))
	}

	return Snapshot{
		Tick:  uint64(g.tick), //#nosec G115 -- tick count is always positive
		Mode:  int(g.mode),
		Score: g.score,
		Level: g.level,
		Lives: g.lives,

		HighScore: g.highScore,
		DarkMode:  g.darkMode,
		Quitting:  g.quitting,

		PlayerX: g.player.X,
		PlayerY: g.player.Y,

		ShieldActive: g.player.Shield.Active,
		ShieldAt:     g.player.Shield.ActivatedAt,
		BoostActive:  g.player.Boost.Active,
		BoostAt:      g.player.Boost.ActivatedAt,

		ObstacleCount: len(g.obstacles),
		ObstacleData:  obstacleData,
		CoinCount:     len(g.coins),
		CoinData:      coinData,
		PowerUpCount:  len(g.powerups),
		PowerUpData:   powerUpData,
		ParticleCount: len(g.particles),
		ParticleData:  particleData,
	}
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.DarkMode)
	h = h*31 + boolBit(snap.Quitting)

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	h = h*31 + boolBit(snap.ShieldActive)
	h = h*31 + uint64(snap.ShieldAt) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.BoostActive)
	h = h*31 + uint64(snap.BoostAt) //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.ObstacleCount) //#nosec G115 -- hash computation
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.CoinCount) //#nosec G115 -- hash computation
	for _, v := range snap.CoinData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.PowerUpCount) //#nosec G115 -- hash computation
	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	for _, v := range snap.ParticleData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
