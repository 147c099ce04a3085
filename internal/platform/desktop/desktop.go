// Package desktop runs Tree of Realms in an Ebiten window. The logical
// screen is the simulation's world, so one pixel is one world unit and
// one Update is one fixed simulation step.
package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
	"github.com/vovakirdan/tree-of-realms/internal/storage"
)

// Options configure a desktop run.
type Options struct {
	Store    *storage.Store // Nil disables run recording
	Player   string
	Seed     int64
	TickRate int
	Scale    float64 // Window size relative to the world; 0 means 1
	Logger   *log.Logger
}

// Host adapts a realms.Game to ebiten.Game.
type Host struct {
	game     *realms.Game
	opts     Options
	in       inputSource
	runtime  core.RuntimeConfig
	log      *log.Logger
	started  time.Time
	runSaved bool
}

// NewHost starts a run and returns a host ready for ebiten.RunGame.
func NewHost(game *realms.Game, opts Options) *Host {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultTickRate
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := &Host{
		game: game,
		opts: opts,
		in:   ebitenInput{},
		log:  opts.Logger,
	}
	h.reset(opts.Seed)
	return h
}

func (h *Host) reset(seed int64) {
	// The terminal-size fields only matter to cell rendering; give the
	// game a screen large enough that it never reports "too small".
	h.runtime = core.RuntimeConfig{ScreenW: 200, ScreenH: 60, TickRate: h.opts.TickRate, Seed: seed}
	h.game.Reset(h.runtime)
	h.started = time.Now()
	h.runSaved = false
}

// Update advances the game by one step. Esc or Q ends the program.
func (h *Host) Update() error {
	if anyJustPressed(h.in, ebiten.KeyEscape, ebiten.KeyQ) {
		h.saveRun()
		return ebiten.Termination
	}
	if h.in.JustPressed(ebiten.KeyP) {
		h.game.TogglePause()
	}

	if h.game.State().GameOver {
		h.saveRun()
		if h.in.JustPressed(ebiten.KeyR) {
			h.reset(time.Now().UnixNano())
		}
		return nil
	}

	h.game.StepInput(sampleInput(h.in, h.game.World().Player()))
	if h.game.State().GameOver {
		h.saveRun()
	}
	return nil
}

// Layout fixes the logical screen to the world size.
func (h *Host) Layout(_, _ int) (int, int) {
	w := h.game.World().Config().World
	return int(w.Width), int(w.Height)
}

// saveRun records the run once, skipping runs without points.
func (h *Host) saveRun() {
	if h.runSaved {
		return
	}
	h.runSaved = true

	state := h.game.State()
	if h.opts.Store == nil || state.Score <= 0 {
		return
	}

	stats := h.game.RunStats()
	_, err := h.opts.Store.SaveRun(storage.Run{
		GameID:   h.game.ID(),
		Player:   h.opts.Player,
		Outcome:  stats.Outcome,
		Level:    stats.Level,
		Kills:    stats.Kills,
		Deaths:   stats.Deaths,
		Score:    state.Score,
		Duration: time.Since(h.started),
	})
	if err != nil {
		h.log.Warn("could not save run", "err", err)
		return
	}
	h.log.Info("run saved", "score", state.Score, "outcome", stats.Outcome)
}

// Run opens the window and blocks until it is closed.
func Run(game *realms.Game, opts Options) error {
	h := NewHost(game, opts)

	w, ht := h.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*h.opts.Scale), int(float64(ht)*h.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.opts.TickRate)

	return ebiten.RunGame(h)
}
