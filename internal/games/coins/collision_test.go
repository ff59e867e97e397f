package coins

import (
	"testing"

	"github.com/amirjavarsineh/WARMUP/internal/core"
)

func TestCoinCollection(t *testing.T) {
	g := newTestGame(t, 11)
	g.mode = ModePlaying

	c := g.coins[0]
	c.X, c.Y = g.player.Rect().Center()
	oldSpeed := c.Speed

	g.checkCollisions()

	if g.score != 1 {
		t.Errorf("expected score 1 after collecting a base coin, got %d", g.score)
	}
	if len(g.particles) != g.cfg.Particles.CoinBurst {
		t.Errorf("expected %d burst particles, got %d", g.cfg.Particles.CoinBurst, len(g.particles))
	}

	// The coin was recycled in place, not removed
	if c.Collected {
		t.Error("respawn should clear the collected flag")
	}
	if c.Y != -c.Radius {
		t.Errorf("respawned coin should sit above the top edge, got Y=%v", c.Y)
	}
	if c.Speed != oldSpeed+g.cfg.Coins.SpeedIncrement {
		t.Errorf("respawn should add the speed increment, got %v", c.Speed)
	}
	if len(g.coins) != 2 {
		t.Errorf("coin count should be unchanged, got %d", len(g.coins))
	}
}

func TestRareCoinScoresItsValue(t *testing.T) {
	g := newTestGame(t, 11)
	g.mode = ModePlaying

	c := g.coins[0]
	c.Value = g.cfg.Coins.RareValue
	c.Color = core.ColorMagenta
	c.X, c.Y = g.player.Rect().Center()

	g.checkCollisions()

	if g.score != 5 {
		t.Errorf("expected score 5 after a rare coin, got %d", g.score)
	}
	// The burst inherits the coin's color from before the respawn
	for i, p := range g.particles {
		if p.Color != core.ColorMagenta {
			t.Fatalf("particle %d should carry the rare coin color, got %v", i, p.Color)
		}
	}
}

func TestCollectedFlagSuppressesRecollection(t *testing.T) {
	g := newTestGame(t, 11)
	g.mode = ModePlaying

	c := g.coins[0]
	c.Collected = true
	c.X, c.Y = g.player.Rect().Center()

	g.checkCollisions()

	if g.score != 0 {
		t.Errorf("a coin already marked collected should not score, got %d", g.score)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	g := newTestGame(t, 11)
	g.mode = ModePlaying

	// Obstacle resting exactly on the player's top edge
	o := g.obstacles[0]
	o.X = g.player.X
	o.Y = g.player.Y - o.H
	g.lives = 2

	g.checkCollisions()

	if g.lives != 2 {
		t.Errorf("touching edges must not count as overlap, lives=%d", g.lives)
	}

	// One world unit deeper does collide
	o.Y += 1
	g.checkCollisions()
	if g.lives != 1 {
		t.Errorf("expected a hit once edges overlap, lives=%d", g.lives)
	}
}

func TestShieldPowerUp(t *testing.T) {
	g := newTestGame(t, 13)
	g.mode = ModePlaying

	px, py := g.player.Rect().Center()
	g.powerups = append(g.powerups, &PowerUp{
		X: px, Y: py, W: 30, H: 30, Kind: PowerShield,
	})

	g.checkCollisions()

	if !g.player.Shield.Active {
		t.Error("collecting a shield should activate the shield window")
	}
	if g.player.Shield.ActivatedAt != g.nowMillis() {
		t.Errorf("shield should be stamped with the current clock, got %d want %d",
			g.player.Shield.ActivatedAt, g.nowMillis())
	}
	if len(g.powerups) != 0 {
		t.Errorf("collected power-up should be removed, %d left", len(g.powerups))
	}
}

func TestBoostPowerUp(t *testing.T) {
	g := newTestGame(t, 13)
	g.mode = ModePlaying

	px, py := g.player.Rect().Center()
	g.powerups = append(g.powerups, &PowerUp{
		X: px, Y: py, W: 30, H: 30, Kind: PowerBoost,
	})

	g.checkCollisions()

	if !g.player.Boost.Active {
		t.Error("collecting a boost should activate the boost window")
	}
	if len(g.powerups) != 0 {
		t.Errorf("collected power-up should be removed, %d left", len(g.powerups))
	}
}

func TestExtraLifePowerUp(t *testing.T) {
	g := newTestGame(t, 13)
	g.mode = ModePlaying
	g.lives = 1

	px, py := g.player.Rect().Center()
	g.powerups = append(g.powerups, &PowerUp{
		X: px, Y: py, W: 30, H: 30, Kind: PowerLife,
	})

	g.checkCollisions()

	if g.lives != 2 {
		t.Errorf("extra life should raise lives to 2, got %d", g.lives)
	}
	if g.player.Shield.Active || g.player.Boost.Active {
		t.Error("extra life should not touch the effect windows")
	}
	if len(g.powerups) != 0 {
		t.Errorf("collected power-up should be removed, %d left", len(g.powerups))
	}
}

func TestMissedPowerUpKept(t *testing.T) {
	g := newTestGame(t, 13)
	g.mode = ModePlaying

	// In flight, nowhere near the player
	g.powerups = append(g.powerups, &PowerUp{
		X: 10, Y: 10, W: 30, H: 30, Kind: PowerShield,
	})

	g.checkCollisions()

	if len(g.powerups) != 1 {
		t.Errorf("an untouched power-up should stay in flight, got %d", len(g.powerups))
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	g := newTestGame(t, 17)
	g.mode = ModePlaying
	g.player.Shield.Activate(g.nowMillis())

	o := g.obstacles[0]
	o.X, o.Y = g.player.X, g.player.Y
	oldSpeed := o.Speed

	g.checkCollisions()

	if g.player.Shield.Active {
		t.Error("absorbing a hit should consume the shield")
	}
	if g.lives != g.cfg.Player.Lives {
		t.Errorf("shielded hit must not cost a life, lives=%d", g.lives)
	}
	if g.mode != ModePlaying {
		t.Errorf("shielded hit must not end the session, mode=%v", g.mode)
	}
	if o.Y != -o.H {
		t.Errorf("obstacle should respawn above the top edge, got Y=%v", o.Y)
	}
	if o.Speed != oldSpeed+g.cfg.Obstacles.SpeedIncrement {
		t.Errorf("respawn should add the speed increment, got %v", o.Speed)
	}
	if len(g.particles) != g.cfg.Particles.HitBurst {
		t.Errorf("expected %d absorb particles, got %d", g.cfg.Particles.HitBurst, len(g.particles))
	}
	for _, p := range g.particles {
		if p.Color != core.ColorCyan {
			t.Fatalf("absorb burst should be cyan, got %v", p.Color)
		}
	}
}

func TestHitCostsLife(t *testing.T) {
	g := newTestGame(t, 17)
	g.mode = ModePlaying
	g.lives = 2

	o := g.obstacles[0]
	o.X, o.Y = g.player.X, g.player.Y

	g.checkCollisions()

	if g.lives != 1 {
		t.Errorf("expected 1 life left, got %d", g.lives)
	}
	if g.mode != ModePlaying {
		t.Errorf("non-fatal hit must not end the session, mode=%v", g.mode)
	}
	if len(g.particles) != g.cfg.Particles.HitBurst {
		t.Errorf("expected %d hit particles, got %d", g.cfg.Particles.HitBurst, len(g.particles))
	}
	for _, p := range g.particles {
		if p.Color != core.ColorRed {
			t.Fatalf("hit burst should be red, got %v", p.Color)
		}
	}
}

func TestHitRelocationPreventsRetrigger(t *testing.T) {
	g := newTestGame(t, 17)
	g.mode = ModePlaying
	g.lives = 3

	o := g.obstacles[0]
	o.X, o.Y = g.player.X, g.player.Y

	g.checkCollisions()
	if g.lives != 2 {
		t.Fatalf("expected the first pass to cost a life, lives=%d", g.lives)
	}

	// The respawn moved the obstacle to the top edge, so the same
	// obstacle cannot charge a second life on the next pass.
	g.checkCollisions()
	if g.lives != 2 {
		t.Errorf("a respawned obstacle must not hit again, lives=%d", g.lives)
	}
}

func TestShieldPickupAbsorbsNextFrameHit(t *testing.T) {
	g := newTestGame(t, 17)
	g.mode = ModePlaying

	// Frame one: walk over a shield power-up.
	px, py := g.player.Rect().Center()
	g.powerups = append(g.powerups, &PowerUp{
		X: px, Y: py, W: 30, H: 30, Kind: PowerShield,
	})
	g.checkCollisions()
	if !g.player.Shield.Active {
		t.Fatal("shield should be active after the pickup")
	}

	// Frame two: an obstacle lands on the player.
	o := g.obstacles[0]
	o.X, o.Y = g.player.X, g.player.Y
	g.checkCollisions()

	if g.lives != g.cfg.Player.Lives {
		t.Errorf("the fresh shield should absorb the hit, lives=%d", g.lives)
	}
	if g.player.Shield.Active {
		t.Error("the absorbed hit should consume the shield")
	}
	if g.mode != ModePlaying {
		t.Errorf("session should survive the shielded hit, mode=%v", g.mode)
	}
}

func TestFatalHitSpawnsNoBurst(t *testing.T) {
	g := newTestGame(t, 17)
	g.mode = ModePlaying
	g.lives = 1

	o := g.obstacles[0]
	o.X, o.Y = g.player.X, g.player.Y

	g.checkCollisions()

	if g.mode != ModeGameOver {
		t.Fatalf("expected game over, got %v", g.mode)
	}
	if g.lives != 0 {
		t.Errorf("expected 0 lives, got %d", g.lives)
	}
	if len(g.particles) != 0 {
		t.Errorf("the fatal hit skips its burst, got %d particles", len(g.particles))
	}
	if o.Y != -o.H {
		t.Errorf("obstacle should still respawn on the fatal hit, got Y=%v", o.Y)
	}
}

func TestMultipleHitsSameFrame(t *testing.T) {
	g := newTestGame(t, 17)
	g.mode = ModePlaying
	g.lives = 2

	// Two obstacles on the player in the same frame: the first costs a
	// life with a burst, the second is fatal and silent.
	g.obstacles[0].X, g.obstacles[0].Y = g.player.X, g.player.Y
	g.obstacles[1].X, g.obstacles[1].Y = g.player.X, g.player.Y

	g.checkCollisions()

	if g.lives != 0 {
		t.Errorf("both overlaps should resolve, lives=%d", g.lives)
	}
	if g.mode != ModeGameOver {
		t.Errorf("expected game over after the second hit, mode=%v", g.mode)
	}
	if len(g.particles) != g.cfg.Particles.HitBurst {
		t.Errorf("only the first hit bursts, got %d particles", len(g.particles))
	}
}

func TestCollisionOrderCoinsBeforeObstacles(t *testing.T) {
	g := newTestGame(t, 19)
	g.mode = ModePlaying
	g.lives = 1
	g.score = 0

	// A coin and a fatal obstacle share the frame: the coin scores
	// first, and the record reflects it.
	store := &fakeStore{}
	g.store = store

	c := g.coins[0]
	c.X, c.Y = g.player.Rect().Center()
	o := g.obstacles[0]
	o.X, o.Y = g.player.X, g.player.Y

	g.checkCollisions()

	if g.mode != ModeGameOver {
		t.Fatalf("expected game over, got %v", g.mode)
	}
	if g.score != 1 {
		t.Errorf("the coin should score before the fatal hit, score=%d", g.score)
	}
	if len(store.saves) != 1 || store.saves[0] != 1 {
		t.Errorf("the record should include the same-frame coin, saves=%v", store.saves)
	}
}
