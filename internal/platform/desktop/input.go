package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tree-of-realms/internal/games/realms/sim"
)

// keyboardReach is how far ahead of the player the attack key aims.
const keyboardReach = 100

// inputSource is the slice of Ebiten's input state the host reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (int, int)
	MouseDown() bool
}

// ebitenInput reads the live keyboard and mouse.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenInput) MouseDown() bool               { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

func anyPressed(in inputSource, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(in inputSource, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.JustPressed(k) {
			return true
		}
	}
	return false
}

// sampleInput builds one frame of simulation input. The logical screen is
// the world, so cursor pixels are already world units.
func sampleInput(in inputSource, p sim.Player) sim.Input {
	up := anyPressed(in, ebiten.KeyW, ebiten.KeyArrowUp)
	out := sim.Input{
		Left:         anyPressed(in, ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:        anyPressed(in, ebiten.KeyD, ebiten.KeyArrowRight),
		Up:           up,
		Down:         anyPressed(in, ebiten.KeyS, ebiten.KeyArrowDown),
		Jump:         up || in.Pressed(ebiten.KeySpace),
		ToggleWeapon: anyJustPressed(in, ebiten.KeyE, ebiten.KeyTab),
		PointerDown:  in.MouseDown(),
	}

	cx, cy := in.Cursor()
	out.PointerX, out.PointerY = float64(cx), float64(cy)

	if anyPressed(in, ebiten.KeyF, ebiten.KeyJ) {
		out.PointerDown = true
		out.PointerX = p.X + float64(p.Facing)*keyboardReach
		out.PointerY = p.Y
	}
	return out
}
