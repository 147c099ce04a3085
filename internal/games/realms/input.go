package realms

import (
	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms/sim"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// keyboardReach is how far ahead of the player a keyboard attack aims.
const keyboardReach = 100

// sampleInput converts a platform input frame into simulation input.
// Up doubles as jump, as in the arrow-key layout; the Attack key aims
// straight ahead for players without a mouse.
func (g *Game) sampleInput(in core.InputFrame) sim.Input {
	out := sim.Input{
		Left:         in.Has(core.ActionLeft),
		Right:        in.Has(core.ActionRight),
		Up:           in.Has(core.ActionUp),
		Down:         in.Has(core.ActionDown),
		Jump:         in.Has(core.ActionJump) || in.Has(core.ActionUp),
		ToggleWeapon: in.Has(core.ActionSwitchWeapon),
	}

	switch {
	case in.Has(core.ActionAttack):
		p := g.world.Player()
		out.PointerDown = true
		out.PointerX = p.X + float64(p.Facing)*keyboardReach
		out.PointerY = p.Y
	case in.Pointer.Valid:
		out.PointerDown = in.Pointer.Down
		out.PointerX, out.PointerY = g.view().ToWorld(in.Pointer.X, in.Pointer.Y)
	}
	return out
}

// view maps the world onto the playfield below the HUD.
func (g *Game) view() core.Viewport {
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, g.runtime.ScreenW, g.runtime.ScreenH-hudRows, hudRows)
}
