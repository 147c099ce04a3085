package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tree-of-realms/internal/config"
)

// World is the complete simulation state. It is not safe for concurrent use;
// a single host loop owns it.
type World struct {
	cfg        Config
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	reg    *Registry
	sched  *Scheduler
	player Player

	level   int
	state   LevelState
	pending bool

	tick       uint64
	damageTick int
	lastShot   time.Duration
	hasShot    bool
	score      int
	kills      int
	deaths     int

	events []Event
}

// New creates a world. Call Init before stepping.
func New(cfg Config, seed int64) *World {
	return &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		reg:        NewRegistry(),
		sched:      NewScheduler(),
	}
}

// Init starts a fresh run at startLevel (clamped to 1..Levels.Count).
func (w *World) Init(startLevel int) {
	w.Teardown()
	w.sched.Bump()

	if startLevel < 1 {
		startLevel = 1
	}
	if startLevel > w.cfg.Levels.Count {
		startLevel = w.cfg.Levels.Count
	}

	w.level = startLevel
	w.tick = 0
	w.score = 0
	w.kills = 0
	w.deaths = 0
	w.hasShot = false
	w.events = nil

	w.player = Player{Radius: w.cfg.Player.Radius, Facing: Right}
	w.player.Health = w.cfg.Player.MaxHealth
	w.buildLevel()
}

// Teardown destroys every entity and cancels all scheduled tasks.
func (w *World) Teardown() {
	w.reg.Clear()
	w.sched.CancelAll()
}

// Step advances the world by one fixed step and returns what happened.
// Due tasks run first, then input, combat, AI, physics, damage and level
// progression. Once the run is completed the world is frozen.
func (w *World) Step(in Input, dt time.Duration) []Event {
	if w.state == StateCompleted {
		return nil
	}
	w.events = w.events[:0]

	w.sched.Advance(dt)
	w.sched.RunDue()
	w.tick++

	secs := dt.Seconds()

	w.updateWeapon(in)
	w.updatePlayerControl(in)
	w.updateCombat(in)
	w.updateMinionAI()

	w.integratePlayer(secs)
	w.integrateMinions(secs)
	w.integrateProjectiles(secs)
	w.resolveProjectileHits()

	w.updateDamage()
	w.checkLevelCleared()

	if len(w.events) == 0 {
		return nil
	}
	out := make([]Event, len(w.events))
	copy(out, w.events)
	return out
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	if e.Level == 0 {
		e.Level = w.level
	}
	w.events = append(w.events, e)
}

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Entities exposes the entity registry for rendering.
func (w *World) Entities() *Registry { return w.reg }

// Level returns the level counter. It exceeds MaxLevel once the run is completed.
func (w *World) Level() int { return w.level }

// MaxLevel returns the number of realms in a run.
func (w *World) MaxLevel() int { return w.cfg.Levels.Count }

// State returns the level progression state.
func (w *World) State() LevelState { return w.state }

// Pending reports whether a level transition is scheduled.
func (w *World) Pending() bool { return w.pending }

// Score returns the run score.
func (w *World) Score() int { return w.score }

// Kills returns the number of minions defeated this run.
func (w *World) Kills() int { return w.kills }

// Deaths returns how many times the player was defeated this run.
func (w *World) Deaths() int { return w.deaths }

// Tick returns the number of steps taken since Init.
func (w *World) Tick() uint64 { return w.tick }

// Now returns the simulation clock.
func (w *World) Now() time.Duration { return w.sched.Now() }

// Epoch returns the scheduler epoch.
func (w *World) Epoch() uint64 { return w.sched.Epoch() }

// Config returns the world's tuning.
func (w *World) Config() Config { return w.cfg }
