package realms

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	MinionChar     = 'm'
	ProjectileChar = '•'
	PlatformChar   = '='
	StairChar      = 'H'
	DoorChar       = '▮'
	GroundChar     = '▓'
	CrosshairChar  = '+'
)

// Render draws the world, the HUD and the active banner.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	if g.screenTooSmall {
		msg := fmt.Sprintf("Terminal too small (need %dx%d)", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	v := g.view()
	g.drawGround(dst, v)
	g.drawGeometry(dst, v)
	g.drawActors(dst, v)
	g.drawHUD(dst)
	g.drawBanner(dst)
}

func (g *Game) drawGround(dst *core.Screen, v core.Viewport) {
	_, top := v.ToCell(0, g.cfg.World.GroundY)
	dst.FillBox(0, top, v.Cols-1, dst.Height()-1, GroundChar, core.ColorOrange)
}

func (g *Game) drawGeometry(dst *core.Screen, v core.Viewport) {
	ents := g.world.Entities()

	for _, s := range ents.Stairs() {
		box := s.Bounds()
		x0, y0 := v.ToCell(box.MinX, box.MinY)
		x1, y1 := v.ToCell(box.MaxX, box.MaxY)
		dst.FillBox(x0, y0, x1, y1, StairChar, core.ColorYellow)
	}

	// Platforms follow their tilt across the columns they span
	for _, p := range ents.Platforms() {
		box := p.Bounds()
		slope := math.Tan(p.Rotation * math.Pi / 180)
		x0, _ := v.ToCell(box.MinX, 0)
		x1, _ := v.ToCell(box.MaxX, 0)
		for cx := x0; cx <= x1; cx++ {
			wx, _ := v.ToWorld(cx, v.Top)
			_, cy := v.ToCell(wx, p.Y+(wx-p.X)*slope)
			dst.SetWithColor(cx, cy, PlatformChar, core.ColorGreen)
		}
	}

	if door, ok := ents.Door(); ok {
		x0, y0 := v.ToCell(door.X-door.W/2, door.Y-door.H/2)
		x1, y1 := v.ToCell(door.X+door.W/2, door.Y+door.H/2)
		dst.FillBox(x0, y0, x1, y1, DoorChar, core.ColorBrightGreen)
	}
}

func (g *Game) drawActors(dst *core.Screen, v core.Viewport) {
	ents := g.world.Entities()

	for _, m := range ents.Minions() {
		x, y := v.ToCell(m.X, m.Y)
		dst.SetWithColor(x, y, MinionChar, core.ColorBrightRed)
	}
	for _, pr := range ents.Projectiles() {
		x, y := v.ToCell(pr.X, pr.Y)
		dst.SetWithColor(x, y, ProjectileChar, core.ColorBrightYellow)
	}

	p := g.world.Player()
	if p.Weapon == sim.WeaponGun && g.pointer.Valid {
		dst.SetWithColor(g.pointer.X, g.pointer.Y, CrosshairChar, core.ColorGray)
	}

	color := core.ColorBrightCyan
	if p.Weapon == sim.WeaponGun {
		color = core.ColorBrightMagenta
	}
	x, y := v.ToCell(p.X, p.Y)
	dst.SetWithColor(x, y, PlayerChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player()
	maxHP := max(g.cfg.Player.MaxHealth, 1)

	// 10-segment health bar
	filled := core.Clamp(p.Health*10/maxHP, 0, 10)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	hpColor := core.ColorBrightGreen
	if p.Health*10 < maxHP*3 {
		hpColor = core.ColorBrightRed
	}

	dst.DrawTextWithColor(0, 0, "HP ", core.ColorWhite)
	dst.DrawTextWithColor(3, 0, bar, hpColor)

	dst.DrawTextWithColor(13, 0, fmt.Sprintf(" %3d  %s", p.Health, g.StatusLine()), core.ColorWhite)
}

// StatusLine is the HUD text shown after the health bar.
func (g *Game) StatusLine() string {
	level := min(g.world.Level(), g.world.MaxLevel())
	return fmt.Sprintf("Realm %d/%d  %-5s  Minions %2d  Score %d",
		level, g.world.MaxLevel(), g.world.Player().Weapon, len(g.world.Entities().Minions()), g.world.Score())
}

func (g *Game) drawBanner(dst *core.Screen) {
	b, ok := g.Banner()
	if !ok {
		return
	}
	y := hudRows + (dst.Height()-hudRows)/3
	dst.DrawTextCenteredWithColor(y, " "+b.Text+" ", b.Color)
}
