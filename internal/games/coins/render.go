package coins

import (
	"fmt"

	"github.com/amirjavarsineh/WARMUP/internal/core"
)

// Visual characters for rendering.
const (
	PlayerChar        = '█'
	ObstacleChar      = '█'
	CoinChar          = '●'
	CoinPulseChar     = '◉'
	ParticleLargeChar = '•'
	ParticleSmallChar = '·'
)

// coinPulsePeriod is the tick count per half-cycle of the coin pulse.
const coinPulsePeriod = 8

// palette bundles the colors switched by the dark-mode setting. The
// terminal's own background stays as it is; the palette only picks
// foregrounds that read well on either.
type palette struct {
	Text  core.Color
	Title core.Color
}

func (g *Game) palette() palette {
	if g.darkMode {
		return palette{Text: core.ColorWhite, Title: core.ColorBrightYellow}
	}
	return palette{Text: core.ColorGray, Title: core.ColorYellow}
}

// projection maps world units onto screen cells for one frame. It is
// rebuilt from the destination size on every render, so a terminal
// resize between frames just lands on a new projection.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, worldW, worldH float64) projection {
	return projection{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

func (pr projection) cellX(x float64) int { return int(x * pr.sx) }
func (pr projection) cellY(y float64) int { return int(y * pr.sy) }

// cellRect converts a world rect, keeping at least one cell per axis
// so small entities never vanish from coarse terminals.
func (pr projection) cellRect(r core.RectF) core.Rect {
	w := core.Max(1, int(r.W*pr.sx+0.5))
	h := core.Max(1, int(r.H*pr.sy+0.5))
	return core.NewRect(pr.cellX(r.X), pr.cellY(r.Y), w, h)
}

// Render draws the screen for the current mode into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst)
	case ModePlaying:
		g.renderPlaying(dst)
	case ModeGameOver:
		g.renderGameOver(dst)
	case ModeSettings:
		g.renderSettings(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	pal := g.palette()
	h := dst.Height()

	dst.DrawTextCenteredColor(h*3/16, "COIN COLLECTOR", pal.Title)
	dst.DrawTextCenteredColor(h*7/16, "1. Play Game", pal.Text)
	dst.DrawTextCenteredColor(h*8/16, "2. Settings", pal.Text)
	dst.DrawTextCenteredColor(h*9/16, "3. Quit", pal.Text)
	dst.DrawTextCenteredColor(h*10/16, fmt.Sprintf("High Score: %d", g.highScore), core.ColorGreen)
}

func (g *Game) renderSettings(dst *core.Screen) {
	pal := g.palette()
	h := dst.Height()

	dst.DrawTextCenteredColor(h*3/16, "SETTINGS", pal.Title)
	dst.DrawTextCenteredColor(h*6/16, "1. Theme: Dark/Light", pal.Text)

	mode, modeColor := "Dark", core.ColorGreen
	if !g.darkMode {
		mode, modeColor = "Light", core.ColorBlue
	}
	dst.DrawTextCenteredColor(h*7/16, fmt.Sprintf("(Currently: %s)", mode), modeColor)
	dst.DrawTextCenteredColor(h*13/16, "Press ESC to return to menu", pal.Text)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	pal := g.palette()
	h := dst.Height()

	dst.DrawTextCenteredColor(h*4/16, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCenteredColor(h*6/16, fmt.Sprintf("Score: %d", g.score), pal.Text)
	dst.DrawTextCenteredColor(h*7/16, fmt.Sprintf("High Score: %d", g.highScore), core.ColorGreen)
	dst.DrawTextCenteredColor(h*9/16, "Press ENTER to return to menu", pal.Text)
}

// renderPlaying projects the world onto the screen. Draw order is
// obstacles, coins, power-ups, particles, then the player, so the
// player stays visible through bursts. The HUD goes on top.
func (g *Game) renderPlaying(dst *core.Screen) {
	pr := newProjection(dst, g.cfg.World.Width, g.cfg.World.Height)
	pal := g.palette()

	for _, o := range g.obstacles {
		dst.DrawRectColor(pr.cellRect(o.Rect()), ObstacleChar, core.ColorRed)
	}

	for _, c := range g.coins {
		if c.Collected {
			continue
		}
		glyph := CoinChar
		if c.Anim/coinPulsePeriod%2 == 1 {
			glyph = CoinPulseChar
		}
		dst.SetCell(pr.cellX(c.X), pr.cellY(c.Y), glyph, c.Color)
	}

	for _, p := range g.powerups {
		cx, cy := p.Rect().Center()
		dst.SetCell(pr.cellX(cx), pr.cellY(cy), p.Kind.Glyph(), p.Kind.Color())
	}

	for _, p := range g.particles {
		if p.Size < 1 {
			continue
		}
		glyph := ParticleSmallChar
		if p.Size >= 3 {
			glyph = ParticleLargeChar
		}
		dst.SetCell(pr.cellX(p.X), pr.cellY(p.Y), glyph, p.Color)
	}

	playerColor := core.ColorBrightBlue
	if g.player.Shield.Active {
		playerColor = core.ColorCyan
	}
	dst.DrawRectColor(pr.cellRect(g.player.Rect()), PlayerChar, playerColor)

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), pal.Text)
	dst.DrawTextColor(1, 1, fmt.Sprintf("Level: %d", g.level), pal.Text)
	dst.DrawTextColor(1, 2, fmt.Sprintf("Lives: %d", g.lives), pal.Text)

	now := g.nowMillis()
	duration := g.cfg.Effects.DurationMS
	if g.player.Shield.Active {
		badge := fmt.Sprintf("SHIELD %ds", (g.player.Shield.Remaining(now, duration)+999)/1000)
		dst.DrawTextColor(dst.Width()-len(badge)-1, 0, badge, core.ColorCyan)
	}
	if g.player.Boost.Active {
		badge := fmt.Sprintf("SPEED BOOST %ds", (g.player.Boost.Remaining(now, duration)+999)/1000)
		dst.DrawTextColor(dst.Width()-len(badge)-1, 1, badge, core.ColorOrange)
	}
}
