package coins

import "github.com/amirjavarsineh/WARMUP/internal/core"

// checkCollisions runs the per-frame overlap pass in a fixed order:
// coins first, then power-ups, then obstacles. All tests are AABB
// against the player; coins use the bounding square around their
// radius. Every obstacle is resolved independently even after a fatal
// hit, so a frame with several overlaps always drains them all.
func (g *Game) checkCollisions() {
	player := g.player.Rect()

	for _, c := range g.coins {
		if !c.Collected && player.Intersects(c.Rect()) {
			g.collectCoin(c)
		}
	}

	for _, p := range g.powerups {
		if !p.Collected && player.Intersects(p.Rect()) {
			g.collectPowerUp(p)
		}
	}
	alive := g.powerups[:0]
	for _, p := range g.powerups {
		if !p.Collected {
			alive = append(alive, p)
		}
	}
	g.powerups = alive

	for _, o := range g.obstacles {
		if player.Intersects(o.Rect()) {
			g.hitObstacle(o)
		}
	}
}

// collectCoin scores a coin. The particle burst inherits the coin's
// color before the respawn re-rolls it. The level check runs last and
// can advance the level at most once per collection.
func (g *Game) collectCoin(c *Coin) {
	c.Collected = true
	g.score += c.Value
	g.particles = append(g.particles, g.spawner.Burst(c.X, c.Y, c.Color, g.cfg.Particles.CoinBurst)...)
	g.spawner.RespawnCoin(c)

	if g.score/10 > g.level-1 {
		g.levelUp()
	}
}

// collectPowerUp applies a power-up's effect. The pickup itself is
// compacted out of the slice after the scan, not respawned.
func (g *Game) collectPowerUp(p *PowerUp) {
	p.Collected = true

	switch p.Kind {
	case PowerShield:
		g.player.Shield.Activate(g.nowMillis())
	case PowerBoost:
		g.player.Boost.Activate(g.nowMillis())
	case PowerLife:
		g.lives++
	}
}

// hitObstacle resolves an obstacle overlap. An active shield absorbs
// the hit for free; otherwise it costs a life. Either way the obstacle
// respawns above the top edge, which also moves it clear of the player
// so the same obstacle cannot trigger again next frame. A fatal hit
// ends the session without a burst.
func (g *Game) hitObstacle(o *Obstacle) {
	px, py := g.player.Rect().Center()

	if g.player.Shield.Active {
		g.player.Shield.Clear()
		g.spawner.RespawnObstacle(o)
		g.particles = append(g.particles, g.spawner.Burst(px, py, core.ColorCyan, g.cfg.Particles.HitBurst)...)
		return
	}

	g.lives--
	g.spawner.RespawnObstacle(o)
	if g.lives <= 0 {
		g.endSession()
		return
	}
	g.particles = append(g.particles, g.spawner.Burst(px, py, core.ColorRed, g.cfg.Particles.HitBurst)...)
}
