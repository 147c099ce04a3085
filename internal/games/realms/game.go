// Package realms adapts the Tree of Realms simulation to the arcade
// platform: it samples core input, turns simulation events into banners
// and log lines, and renders the world into a cell screen.
package realms

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tree-of-realms/internal/config"
	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms/sim"
	"github.com/vovakirdan/tree-of-realms/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "realms"

// realmNames are shown when a level starts.
var realmNames = []string{
	"Rootlands",
	"Mossy Hollow",
	"Canopy Reach",
	"Stormcrown",
	"Skyheart",
}

// RealmName returns the display name of a 1-based level.
func RealmName(level int) string {
	if level >= 1 && level <= len(realmNames) {
		return realmNames[level-1]
	}
	return fmt.Sprintf("Realm %d", level)
}

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	// startLevel is the realm new runs begin in
	startLevel = 1

	logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the realm new runs begin in.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger routes game event logging. Nil discards it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LevelCount returns the number of realms in the active configuration.
func LevelCount() int {
	cfg, err := config.LoadRealms(configPath)
	if err != nil {
		cfg = config.DefaultRealmsConfig()
	}
	return cfg.Levels.Count
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

// Banner is a centered message drawn over the playfield.
type Banner struct {
	Text  string
	Color core.Color
	until uint64 // Last tick to show; 0 keeps it until replaced
}

// Options override the package-level settings for one game instance.
// Zero values fall back to the package settings.
type Options struct {
	Preset     config.DifficultyPreset
	StartLevel int
}

// Game implements registry.Game for Tree of Realms.
type Game struct {
	opts    Options
	world   *sim.World
	cfg     config.RealmsConfig
	runtime core.RuntimeConfig
	dt      time.Duration
	log     *log.Logger

	paused   bool
	gameOver bool
	victory  bool
	banner   *Banner
	pointer  core.Pointer

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a Tree of Realms game instance.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game whose runs use the given preset and start
// level. SSH sessions use it so that players do not share settings.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tree of Realms"
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger

	cfg, err := config.LoadRealms(configPath)
	if err != nil {
		g.log.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultRealmsConfig()
	}
	preset := difficultyPreset
	if g.opts.Preset != "" {
		preset = g.opts.Preset
	}
	if preset != "" {
		config.ApplyRealmsPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.dt = runtime.StepDuration()

	g.world = sim.New(cfg, runtime.Seed)
	level := startLevel
	if g.opts.StartLevel > 0 {
		level = g.opts.StartLevel
	}
	g.world.Init(level)

	g.paused = false
	g.gameOver = false
	g.victory = false
	g.pointer = core.Pointer{}
	g.showBanner(fmt.Sprintf("Realm %d: %s", g.world.Level(), RealmName(g.world.Level())), core.ColorBrightGreen, 90)

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.log.Info("run started", "seed", runtime.Seed, "level", g.world.Level(), "preset", string(preset))
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Pointer.Valid {
		g.pointer = in.Pointer
	}
	return g.StepInput(g.sampleInput(in))
}

// StepInput advances the game with input already in world units.
// Hosts that do not speak in screen cells call it directly.
func (g *Game) StepInput(in sim.Input) core.StepResult {
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	for _, e := range g.world.Step(in, g.dt) {
		g.handleEvent(e)
	}

	if g.banner != nil && g.banner.until != 0 && g.world.Tick() > g.banner.until {
		g.banner = nil
	}

	return core.StepResult{State: g.State()}
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunStats describes the run for the scoreboard.
func (g *Game) RunStats() registry.RunStats {
	stats := registry.RunStats{Outcome: "quit"}
	if g.world == nil {
		return stats
	}
	stats.Level = min(g.world.Level(), g.world.MaxLevel())
	stats.Kills = g.world.Kills()
	stats.Deaths = g.world.Deaths()
	if g.victory {
		stats.Outcome = "victory"
	}
	return stats
}

// World exposes the simulation for hosts that draw it themselves.
func (g *Game) World() *sim.World {
	return g.world
}

// Banner returns the message currently shown over the playfield.
func (g *Game) Banner() (Banner, bool) {
	if g.paused {
		return Banner{Text: "PAUSED - press P to resume", Color: core.ColorBrightYellow}, true
	}
	if g.banner == nil {
		return Banner{}, false
	}
	return *g.banner, true
}

func (g *Game) showBanner(text string, c core.Color, ticks uint64) {
	b := &Banner{Text: text, Color: c}
	if ticks > 0 {
		b.until = g.world.Tick() + ticks
	}
	g.banner = b
}

// handleEvent logs a simulation event and updates banners.
func (g *Game) handleEvent(e sim.Event) {
	switch e.Kind {
	case sim.EventLevelCleared:
		g.log.Info("level cleared", "next", e.Level, "score", g.world.Score(), "tick", e.Tick)
		if e.Level <= g.world.MaxLevel() {
			g.showBanner(fmt.Sprintf("%s cleared! The door opens...", RealmName(e.Level-1)), core.ColorBrightGreen, 0)
		}

	case sim.EventLevelStarted:
		g.log.Info("level started", "level", e.Level, "minions", len(g.world.Entities().Minions()))
		g.showBanner(fmt.Sprintf("Realm %d: %s", e.Level, RealmName(e.Level)), core.ColorBrightGreen, 90)

	case sim.EventVictory:
		g.gameOver = true
		g.victory = true
		g.log.Info("victory", "score", g.world.Score(), "kills", g.world.Kills(), "deaths", g.world.Deaths())
		g.showBanner("All realms restored! Press R to play again", core.ColorBrightYellow, 0)

	case sim.EventPlayerDefeated:
		g.log.Warn("player defeated", "level", e.Level, "deaths", g.world.Deaths())
		g.showBanner(fmt.Sprintf("Defeated! %s begins anew", RealmName(e.Level)), core.ColorBrightRed, 120)

	case sim.EventPlayerHit:
		g.log.Debug("player hit", "damage", e.Damage, "health", e.Health)

	case sim.EventWeaponChanged:
		g.log.Debug("weapon changed", "weapon", e.Weapon.String())

	default:
		g.log.Debug(e.Kind.String(), "id", e.ID, "tick", e.Tick)
	}
}
