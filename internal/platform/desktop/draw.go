package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms/sim"
)

// Entity colors. Player, minion and door use fixed RGB values.
var (
	skyColor        = colornames.Midnightblue
	groundColor     = colornames.Saddlebrown
	grassColor      = colornames.Forestgreen
	platformColor   = colornames.Darkolivegreen
	stairColor      = colornames.Goldenrod
	stairRungColor  = colornames.Darkgoldenrod
	doorColor       = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	playerColor     = color.RGBA{0x34, 0x98, 0xdb, 0xff}
	gunColor        = colornames.Orchid
	minionColor     = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	projectileColor = colornames.Gold
	hudColor        = colornames.Whitesmoke
	hpBackColor     = colornames.Dimgray
	hpColor         = colornames.Limegreen
	hpLowColor      = colornames.Crimson
	bannerBack      = color.RGBA{0, 0, 0, 0xb0}
)

// bannerColors maps the game's terminal banner colors to window colors.
var bannerColors = map[core.Color]color.Color{
	core.ColorBrightGreen:  colornames.Lightgreen,
	core.ColorBrightYellow: colornames.Gold,
	core.ColorBrightRed:    colornames.Salmon,
	core.ColorBrightCyan:   colornames.Lightcyan,
}

func bannerColor(c core.Color) color.Color {
	if bc, ok := bannerColors[c]; ok {
		return bc
	}
	return hudColor
}

// Draw renders the world, the HUD and the active banner.
func (h *Host) Draw(screen *ebiten.Image) {
	w := h.game.World()
	cfg := w.Config().World
	screen.Fill(skyColor)

	vector.DrawFilledRect(screen, 0, float32(cfg.GroundY), float32(cfg.Width), float32(cfg.Height-cfg.GroundY), groundColor, false)
	vector.DrawFilledRect(screen, 0, float32(cfg.GroundY), float32(cfg.Width), 4, grassColor, false)

	ents := w.Entities()
	for _, s := range ents.Stairs() {
		drawStair(screen, s)
	}
	for _, p := range ents.Platforms() {
		drawPlatform(screen, p)
	}
	if door, ok := ents.Door(); ok {
		vector.DrawFilledRect(screen, float32(door.X-door.W/2), float32(door.Y-door.H/2), float32(door.W), float32(door.H), doorColor, false)
	}
	for _, m := range ents.Minions() {
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius), minionColor, true)
	}
	for _, pr := range ents.Projectiles() {
		vector.DrawFilledCircle(screen, float32(pr.X), float32(pr.Y), float32(pr.Radius), projectileColor, true)
	}
	drawPlayer(screen, w.Player())

	h.drawHUD(screen)
	h.drawBanner(screen)
}

// drawPlatform strokes the platform's center line at its tilt, using the
// platform height as the stroke width.
func drawPlatform(dst *ebiten.Image, b *sim.Block) {
	rad := b.Rotation * math.Pi / 180
	dx, dy := math.Cos(rad)*b.W/2, math.Sin(rad)*b.W/2
	vector.StrokeLine(dst, float32(b.X-dx), float32(b.Y-dy), float32(b.X+dx), float32(b.Y+dy), float32(b.H), platformColor, true)
}

func drawStair(dst *ebiten.Image, b *sim.Block) {
	x, y := float32(b.X-b.W/2), float32(b.Y-b.H/2)
	vector.StrokeRect(dst, x, y, float32(b.W), float32(b.H), 2, stairColor, false)
	for ry := y + 8; ry < y+float32(b.H); ry += 12 {
		vector.StrokeLine(dst, x, ry, x+float32(b.W), ry, 2, stairRungColor, false)
	}
}

func drawPlayer(dst *ebiten.Image, p sim.Player) {
	c := color.Color(playerColor)
	if p.Weapon == sim.WeaponGun {
		c = gunColor
	}
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
	// Facing marker
	ex := p.X + float64(p.Facing)*p.Radius*0.5
	vector.DrawFilledCircle(dst, float32(ex), float32(p.Y-p.Radius*0.3), 3, hudColor, true)
}

func (h *Host) drawHUD(dst *ebiten.Image) {
	w := h.game.World()
	p := w.Player()
	maxHP := max(w.Config().Player.MaxHealth, 1)

	const barW, barH = 120, 10
	vector.DrawFilledRect(dst, 10, 10, barW, barH, hpBackColor, false)
	fill := hpColor
	if p.Health*10 < maxHP*3 {
		fill = hpLowColor
	}
	vector.DrawFilledRect(dst, 10, 10, float32(barW*core.Clamp(p.Health, 0, maxHP)/maxHP), barH, fill, false)

	text.Draw(dst, fmt.Sprintf("%3d  %s", p.Health, h.game.StatusLine()), basicfont.Face7x13, 140, 20, hudColor)
}

func (h *Host) drawBanner(dst *ebiten.Image) {
	b, ok := h.game.Banner()
	if !ok {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Text)
	sw := dst.Bounds().Dx()
	x := (sw - bounds.Dx()) / 2
	y := dst.Bounds().Dy() / 3

	vector.DrawFilledRect(dst, float32(x-12), float32(y-18), float32(bounds.Dx()+24), 28, bannerBack, false)
	text.Draw(dst, b.Text, face, x, y, bannerColor(b.Color))
}
