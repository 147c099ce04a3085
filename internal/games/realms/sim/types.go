// Package sim implements the Tree of Realms simulation: a deterministic
// fixed-step world of one player, minion batches, platforms, stairs and
// projectiles. Hosts drive it through Init, Step and Teardown.
package sim

import (
	"math"

	"github.com/vovakirdan/tree-of-realms/internal/config"
)

// Config is the tunable parameter set for a World.
type Config = config.RealmsConfig

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return config.DefaultRealmsConfig()
}

// Weapon is the player's attack mode.
type Weapon int

const (
	WeaponMelee Weapon = iota
	WeaponGun
)

func (w Weapon) String() string {
	if w == WeaponGun {
		return "Gun"
	}
	return "Melee"
}

// LevelState is the level progression state.
type LevelState int

const (
	StateInProgress    LevelState = iota // Minions alive, gameplay running
	StateTransitioning                   // Level cleared, next realm scheduled
	StateCompleted                       // Final realm cleared, gameplay frozen
)

func (s LevelState) String() string {
	switch s {
	case StateTransitioning:
		return "transitioning"
	case StateCompleted:
		return "completed"
	default:
		return "in-progress"
	}
}

// Direction is a horizontal sign.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Box is an axis-aligned bounding box in world units.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func (b Box) Overlaps(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Player is the single controllable body.
type Player struct {
	X, Y     float64
	VX, VY   float64
	Radius   float64
	Health   int
	Weapon   Weapon
	Facing   Direction
	Grounded bool // Landed on ground or a platform top in the last resolution
	Climbing bool
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() Box {
	return circleBounds(p.X, p.Y, p.Radius)
}

// Minion is an enemy walker.
type Minion struct {
	ID          int
	X, Y        float64
	VX, VY      float64
	Radius      float64
	Wander      Direction
	WanderTimer int // Frames since the last direction roll
}

// Bounds returns the minion's bounding box.
func (m *Minion) Bounds() Box {
	return circleBounds(m.X, m.Y, m.Radius)
}

// Block is static level geometry: a platform, or a climbable stair.
// X and Y are the center; Rotation is in degrees.
type Block struct {
	ID        int
	X, Y      float64
	W, H      float64
	Rotation  float64
	Climbable bool
}

// Bounds returns the AABB of the rotated rectangle.
func (b *Block) Bounds() Box {
	rad := b.Rotation * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	halfW := (b.W*cos + b.H*sin) / 2
	halfH := (b.W*sin + b.H*cos) / 2
	return Box{
		MinX: b.X - halfW,
		MinY: b.Y - halfH,
		MaxX: b.X + halfW,
		MaxY: b.Y + halfH,
	}
}

// Projectile is a gun shot.
type Projectile struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Radius float64
	expiry TaskID
}

// Door marks a cleared level. It is purely visual.
type Door struct {
	X, Y float64
	W, H float64
}

func circleBounds(x, y, r float64) Box {
	return Box{MinX: x - r, MinY: y - r, MaxX: x + r, MaxY: y + r}
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
