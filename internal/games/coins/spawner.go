package coins

import (
	"math/rand"

	"github.com/amirjavarsineh/WARMUP/internal/config"
	"github.com/amirjavarsineh/WARMUP/internal/core"
)

// Spawner owns entity creation and recycling, and with them every
// random draw the simulation makes. Seeding the spawner pins the whole
// session.
type Spawner struct {
	rng *rand.Rand
	cfg config.CoinsConfig
}

// NewSpawner creates a spawner with its own seeded RNG stream.
func NewSpawner(seed int64, cfg config.CoinsConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// InitialCounts returns the obstacle and coin slot counts for a level.
// Obstacles gain a slot every second level and coins every third, both
// capped. The formulas are non-decreasing in level, so within a session
// collections only ever grow.
func (s *Spawner) InitialCounts(level int) (obstacles, coins int) {
	sp := s.cfg.Spawn
	obstacles = core.Min(sp.BaseObstacles+level/2, sp.MaxObstacles)
	coins = core.Min(sp.BaseCoins+level/3, sp.MaxCoins)
	return obstacles, coins
}

// NewObstacle creates an obstacle at base speed, parked above the top
// edge with a freshly rolled width and position.
func (s *Spawner) NewObstacle() *Obstacle {
	o := &Obstacle{
		H:     s.cfg.Obstacles.Height,
		Speed: s.cfg.Obstacles.BaseSpeed,
	}
	s.placeObstacle(o)
	return o
}

// RespawnObstacle recycles an obstacle: fresh width and position above
// the top edge, plus the permanent speed increment.
func (s *Spawner) RespawnObstacle(o *Obstacle) {
	s.placeObstacle(o)
	o.Speed += s.cfg.Obstacles.SpeedIncrement
}

func (s *Spawner) placeObstacle(o *Obstacle) {
	oc := s.cfg.Obstacles
	o.W = float64(oc.MinWidth + s.rng.Intn(oc.MaxWidth-oc.MinWidth))
	o.X = s.rng.Float64() * (s.cfg.World.Width - o.W)
	o.Y = -o.H
}

// NewCoin creates a coin above the top edge. New coins always carry the
// base value; rarity is only ever rolled on respawn.
func (s *Spawner) NewCoin() *Coin {
	c := &Coin{
		Radius: s.cfg.Coins.Radius,
		Speed:  s.cfg.Coins.BaseSpeed,
		Value:  s.cfg.Coins.BaseValue,
		Color:  core.ColorBrightYellow,
	}
	s.placeCoin(c)
	return c
}

// RespawnCoin recycles a coin: fresh position above the top edge, the
// permanent speed increment, and a fresh value roll.
func (s *Spawner) RespawnCoin(c *Coin) {
	s.placeCoin(c)
	c.Speed += s.cfg.Coins.SpeedIncrement
	c.Collected = false
	if s.rng.Float64() < s.cfg.Coins.RareChance {
		c.Value = s.cfg.Coins.RareValue
		c.Color = core.ColorMagenta
	} else {
		c.Value = s.cfg.Coins.BaseValue
		c.Color = core.ColorBrightYellow
	}
}

func (s *Spawner) placeCoin(c *Coin) {
	c.X = c.Radius + s.rng.Float64()*(s.cfg.World.Width-2*c.Radius)
	c.Y = -c.Radius
}

// RollPowerUpSpawn decides the per-tick probabilistic power-up spawn.
// The probability is rolled before the capacity check, so the RNG
// stream advances every tick whether or not there is room.
func (s *Spawner) RollPowerUpSpawn(active int) bool {
	roll := s.rng.Float64()
	return roll < s.cfg.PowerUps.SpawnChance && active < s.cfg.PowerUps.MaxActive
}

// NewPowerUp creates a power-up of uniformly random kind above the top
// edge.
func (s *Spawner) NewPowerUp() *PowerUp {
	pc := s.cfg.PowerUps
	p := &PowerUp{
		W:     pc.Size,
		H:     pc.Size,
		Speed: pc.FallSpeed,
		Kind:  PowerKind(s.rng.Intn(int(powerKindCount))),
	}
	p.X = s.rng.Float64() * (s.cfg.World.Width - p.W)
	p.Y = -p.H
	return p
}

// Burst creates n particles fanning out from a point in the given
// color.
func (s *Spawner) Burst(x, y float64, color core.Color, n int) []*Particle {
	out := make([]*Particle, n)
	for i := range out {
		out[i] = s.newParticle(x, y, color)
	}
	return out
}

func (s *Spawner) newParticle(x, y float64, color core.Color) *Particle {
	pc := s.cfg.Particles
	return &Particle{
		X:        x,
		Y:        y,
		VX:       -pc.VXRange + s.rng.Float64()*2*pc.VXRange,
		VY:       pc.VYMin + s.rng.Float64()*(pc.VYMax-pc.VYMin),
		Size:     float64(pc.MinSize + s.rng.Intn(pc.MaxSize-pc.MinSize+1)),
		Lifetime: pc.MinLifetime + s.rng.Intn(pc.MaxLifetime-pc.MinLifetime),
		Color:    color,
	}
}
