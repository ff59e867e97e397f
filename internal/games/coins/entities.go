package coins

import "github.com/amirjavarsineh/WARMUP/internal/core"

// Player is the catcher at the bottom of the world. It only ever moves
// horizontally; the vertical position is fixed at session start.
type Player struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Shield EffectWindow
	Boost  EffectWindow

	boostMult float64
}

// Rect returns the player's world-space bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Advance moves the player one tick in the held directions. The edge
// guard runs before the displacement: a step is allowed whenever the
// player is strictly inside the edge, even if it overshoots it, so the
// player can come to rest slightly past the boundary.
func (p *Player) Advance(left, right bool, worldW float64) {
	step := p.Speed
	if p.Boost.Active {
		step = p.Speed * p.boostMult
	}
	if left && p.X > 0 {
		p.X -= step
	}
	if right && p.X < worldW-p.W {
		p.X += step
	}
}

// Obstacle is a falling bar the player must dodge.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Advance moves the obstacle down by its current speed.
func (o *Obstacle) Advance() {
	o.Y += o.Speed
}

// OffScreen reports whether the obstacle's leading edge has dropped
// below the bottom of the world.
func (o *Obstacle) OffScreen(worldH float64) bool {
	return o.Y+o.H > worldH
}

// Rect returns the obstacle's world-space bounding box.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Coin is a falling collectible. X and Y are the center of the coin;
// collision uses the bounding square around its radius.
type Coin struct {
	X, Y      float64
	Radius    float64
	Speed     float64
	Value     int
	Color     core.Color
	Collected bool
	Anim      int
}

// Advance moves the coin down and ticks its animation counter. The
// counter is monotonic and only drives the cosmetic pulse.
func (c *Coin) Advance() {
	c.Y += c.Speed
	c.Anim++
}

// OffScreen reports whether the coin's leading edge has dropped below
// the bottom of the world.
func (c *Coin) OffScreen(worldH float64) bool {
	return c.Y+c.Radius > worldH
}

// Rect returns the bounding square around the coin.
func (c *Coin) Rect() core.RectF {
	return core.NewRectF(c.X-c.Radius, c.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}

// PowerKind identifies the effect a power-up grants.
type PowerKind int

const (
	PowerShield PowerKind = iota
	PowerBoost
	PowerLife

	powerKindCount // sentinel for uniform rolls
)

// String returns a human-readable name for the kind.
func (k PowerKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerBoost:
		return "boost"
	case PowerLife:
		return "extra-life"
	default:
		return "unknown"
	}
}

// Color returns the display color for the kind.
func (k PowerKind) Color() core.Color {
	switch k {
	case PowerShield:
		return core.ColorCyan
	case PowerBoost:
		return core.ColorOrange
	case PowerLife:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}

// Glyph returns the rune drawn for the kind.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerShield:
		return '◎'
	case PowerBoost:
		return '»'
	case PowerLife:
		return '♥'
	default:
		return '?'
	}
}

// PowerUp is a falling pickup. Unlike coins and obstacles it is not
// recycled: collected or missed, it is removed from play.
type PowerUp struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Kind      PowerKind
	Collected bool
}

// Advance moves the power-up down by its speed.
func (p *PowerUp) Advance() {
	p.Y += p.Speed
}

// OffScreen reports whether the power-up's leading edge has dropped
// below the bottom of the world.
func (p *PowerUp) OffScreen(worldH float64) bool {
	return p.Y+p.H > worldH
}

// Rect returns the power-up's world-space bounding box.
func (p *PowerUp) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Particle is a short-lived visual fragment spawned by collection and
// hit bursts. Particles never collide with anything.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Lifetime int
	Color    core.Color
}

// Advance applies one tick of drift, shrink, and aging. Size bottoms
// out at zero rather than going negative.
func (p *Particle) Advance(shrink float64) {
	p.X += p.VX
	p.Y += p.VY
	p.Lifetime--
	p.Size -= shrink
	if p.Size < 0 {
		p.Size = 0
	}
}

// Dead reports whether the particle's lifetime has run out.
func (p *Particle) Dead() bool {
	return p.Lifetime <= 0
}
