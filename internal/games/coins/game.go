// Package coins implements the Coin Collector game: steer a catcher
// along the bottom of the world, collect falling coins, dodge falling
// obstacles, and pick up timed power-ups. The simulation runs on a
// fixed virtual plane; the renderer projects it onto whatever terminal
// size the platform hands it.
package coins

import (
	"github.com/amirjavarsineh/WARMUP/internal/config"
	"github.com/amirjavarsineh/WARMUP/internal/core"
	"github.com/amirjavarsineh/WARMUP/internal/registry"
)

func init() {
	registry.Register("coins", func() registry.Game {
		return New()
	})
}

// Mode identifies the screen the game is currently on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeSettings
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	case ModeSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ScoreStore is the persistence boundary for the single high-score
// integer. The real implementation lives in internal/storage; tests
// plug in fakes.
type ScoreStore interface {
	Load() int
	Save(value int) error
}

// nopStore keeps scores in memory only, for when no store is installed.
type nopStore struct{}

func (nopStore) Load() int      { return 0 }
func (nopStore) Save(int) error { return nil }

// Package-level wiring seams, set by the command layer before games are
// created through the registry.
var (
	configPath  string
	activeStore ScoreStore = nopStore{}
)

// SetConfigPath overrides the config search path for new games.
// An empty path restores the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetStore installs the high-score store picked up by new games.
// Passing nil restores the in-memory no-op store.
func SetStore(s ScoreStore) {
	if s == nil {
		activeStore = nopStore{}
		return
	}
	activeStore = s
}

// Game implements the Coin Collector simulation.
type Game struct {
	mode Mode

	player    Player
	obstacles []*Obstacle
	coins     []*Coin
	powerups  []*PowerUp
	particles []*Particle

	spawner *Spawner

	score     int
	level     int
	lives     int
	highScore int

	darkMode bool
	quitting bool

	store   ScoreStore
	cfg     config.CoinsConfig
	runtime core.RuntimeConfig
	tick    int
}

// New creates a new Coin Collector game instance.
func New() *Game {
	return &Game{store: activeStore}
}

// ID returns the unique game identifier.
func (g *Game) ID() string { return "coins" }

// Title returns the human-readable game title.
func (g *Game) Title() string { return "Coin Collector" }

// Reset loads configuration and the persisted high score, seeds the
// RNG from the runtime config, and puts the game on the menu screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg

	loaded, err := config.LoadCoins(configPath)
	if err != nil {
		loaded = config.DefaultCoinsConfig()
	}
	g.cfg = loaded

	g.spawner = NewSpawner(cfg.Seed, g.cfg)
	g.highScore = g.store.Load()

	g.mode = ModeMenu
	g.darkMode = true
	g.quitting = false
	g.tick = 0
	g.resetSession()
}

// resetSession returns score, level, lives, the player, and every
// entity collection to their session-start values. The spawner and its
// RNG stream carry over untouched.
func (g *Game) resetSession() {
	g.score = 0
	g.level = 1
	g.lives = g.cfg.Player.Lives
	g.player = g.newPlayer()

	obstacleCount, coinCount := g.spawner.InitialCounts(g.level)
	g.obstacles = make([]*Obstacle, 0, g.cfg.Spawn.MaxObstacles)
	for i := 0; i < obstacleCount; i++ {
		g.obstacles = append(g.obstacles, g.spawner.NewObstacle())
	}
	g.coins = make([]*Coin, 0, g.cfg.Spawn.MaxCoins)
	for i := 0; i < coinCount; i++ {
		g.coins = append(g.coins, g.spawner.NewCoin())
	}
	g.powerups = g.powerups[:0]
	g.particles = g.particles[:0]
}

func (g *Game) newPlayer() Player {
	pc := g.cfg.Player
	return Player{
		X:         g.cfg.World.Width/2 - pc.Width/2,
		Y:         g.cfg.World.Height - pc.Height - pc.BottomMargin,
		W:         pc.Width,
		H:         pc.Height,
		Speed:     pc.Speed,
		boostMult: pc.BoostMultiplier,
	}
}

// Step advances the game by one tick. Signals that make no sense in
// the current mode are ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.mode {
	case ModeMenu:
		g.stepMenu(in)
	case ModeSettings:
		g.stepSettings(in)
	case ModeGameOver:
		g.stepGameOver(in)
	case ModePlaying:
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

// stepMenu handles the menu screen. Start wins if several menu signals
// arrive in the same frame.
func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionStart):
		g.resetSession()
		g.mode = ModePlaying
	case in.Has(core.ActionSettings):
		g.mode = ModeSettings
	case in.Has(core.ActionQuit):
		g.quitting = true
	}
}

func (g *Game) stepSettings(in core.InputFrame) {
	switch {
	case in.Has(core.ActionToggle):
		g.darkMode = !g.darkMode
	case in.Has(core.ActionBack):
		g.mode = ModeMenu
	}
}

// stepGameOver waits for confirmation and returns to the menu. The
// session itself is not reset until the next start, so the final score
// stays visible on the menu's high-score line if it set a record.
func (g *Game) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.mode = ModeMenu
	}
}

// stepPlaying runs one simulation frame: player movement and effect
// expiry, then obstacle, coin, and power-up motion with recycling, then
// the probabilistic power-up spawn, then particle aging, and finally
// the collision pass.
func (g *Game) stepPlaying(in core.InputFrame) {
	now := g.nowMillis()
	worldH := g.cfg.World.Height

	g.player.Advance(in.Has(core.ActionLeft), in.Has(core.ActionRight), g.cfg.World.Width)
	g.player.Shield.Tick(now, g.cfg.Effects.DurationMS)
	g.player.Boost.Tick(now, g.cfg.Effects.DurationMS)

	for _, o := range g.obstacles {
		o.Advance()
		if o.OffScreen(worldH) {
			g.spawner.RespawnObstacle(o)
		}
	}

	for _, c := range g.coins {
		c.Advance()
		if c.OffScreen(worldH) {
			g.spawner.RespawnCoin(c)
		}
	}

	kept := g.powerups[:0]
	for _, p := range g.powerups {
		p.Advance()
		if !p.OffScreen(worldH) {
			kept = append(kept, p)
		}
	}
	g.powerups = kept

	if g.spawner.RollPowerUpSpawn(len(g.powerups)) {
		g.powerups = append(g.powerups, g.spawner.NewPowerUp())
	}

	alive := g.particles[:0]
	for _, p := range g.particles {
		p.Advance(g.cfg.Particles.ShrinkRate)
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	g.particles = alive

	g.checkCollisions()
}

// nowMillis converts the tick counter to the millisecond clock the
// effect windows run on. Derived from ticks rather than wall time so
// that replayed input produces identical sessions.
func (g *Game) nowMillis() int64 {
	return int64(g.tick) * 1000 / int64(g.runtime.TickRate)
}

// levelUp advances exactly one level and grows the entity collections
// to the new counts. Existing slots are reused, so accumulated speeds
// persist; in-flight power-ups and particles are untouched.
func (g *Game) levelUp() {
	g.level++
	obstacleCount, coinCount := g.spawner.InitialCounts(g.level)
	for len(g.obstacles) < obstacleCount {
		g.obstacles = append(g.obstacles, g.spawner.NewObstacle())
	}
	for len(g.coins) < coinCount {
		g.coins = append(g.coins, g.spawner.NewCoin())
	}
}

// endSession moves to the game-over screen, persisting the score first
// if it beats the stored record. A failed write must not block the
// transition, so the error is dropped.
func (g *Game) endSession() {
	g.mode = ModeGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		_ = g.store.Save(g.highScore)
	}
}

// State returns the current observable game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Lives:     g.lives,
		GameOver:  g.mode == ModeGameOver,
		Quit:      g.quitting,
	}
}
