package sim

import "math"

// groundedPredicate decides whether a jump may start: the player landed on
// the ground or a platform in the last resolution, or touches any platform
// or stair.
func (w *World) groundedPredicate() bool {
	if w.player.Grounded {
		return true
	}
	return w.overlapsAny(w.reg.platforms) || w.overlapsAny(w.reg.stairs)
}

func (w *World) overlapsAny(blocks []*Block) bool {
	pb := w.player.Bounds()
	for _, b := range blocks {
		if pb.Overlaps(b.Bounds()) {
			return true
		}
	}
	return false
}

// updatePlayerControl turns held input into player velocity.
func (w *World) updatePlayerControl(in Input) {
	p := &w.player
	speed := w.cfg.Player.MoveSpeed

	// Left takes precedence when both are held
	switch {
	case in.Left:
		p.VX = -speed
		p.Facing = Left
	case in.Right:
		p.VX = speed
		p.Facing = Right
	default:
		p.VX = 0
	}

	if in.Jump && w.groundedPredicate() {
		p.VY = -w.cfg.Player.JumpSpeed
		p.Grounded = false
	}

	p.Climbing = false
	if (in.Up || in.Down) && w.overlapsAny(w.reg.stairs) {
		p.Climbing = true
		if in.Up {
			p.VY = -w.cfg.Player.ClimbSpeed
		} else {
			p.VY = w.cfg.Player.ClimbSpeed
		}
	}
}

// integratePlayer applies gravity and velocity, lands the player on solid
// geometry and wraps it around every viewport edge.
func (w *World) integratePlayer(dt float64) {
	p := &w.player
	if !p.Climbing {
		p.VY += w.cfg.World.Gravity * dt
	}

	prevBottom := p.Y + p.Radius
	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.Grounded = w.land(&p.X, &p.Y, &p.VY, p.Radius, prevBottom, !p.Climbing)

	p.X = wrap(p.X, w.cfg.World.Width)
	p.Y = wrap(p.Y, w.cfg.World.Height)
	// Wrapping off the top can drop the player into the ground slab
	if p.Y+p.Radius > w.cfg.World.GroundY {
		p.Y = w.cfg.World.GroundY - p.Radius
		p.VY = math.Min(p.VY, 0)
		p.Grounded = true
	}
}

// integrateMinions moves minions under gravity. They collide with the side
// walls and turn around there.
func (w *World) integrateMinions(dt float64) {
	width := w.cfg.World.Width
	for _, m := range w.reg.minions {
		m.VY += w.cfg.World.Gravity * dt
		prevBottom := m.Y + m.Radius
		m.X += m.VX * dt
		m.Y += m.VY * dt
		w.land(&m.X, &m.Y, &m.VY, m.Radius, prevBottom, true)

		if m.X-m.Radius < 0 {
			m.X = m.Radius
			m.Wander = Right
			m.VX = math.Abs(m.VX)
		} else if m.X+m.Radius > width {
			m.X = width - m.Radius
			m.Wander = Left
			m.VX = -math.Abs(m.VX)
		}
	}
}

// land resolves a falling circle against the ground slab and, when
// platforms is set, the tops of platforms. Platforms only stop bodies
// coming from above. Returns true when the body ends up standing.
func (w *World) land(x, y, vy *float64, r, prevBottom float64, platforms bool) bool {
	const slack = 0.5
	ground := w.cfg.World.GroundY

	if *y+r >= ground {
		*y = ground - r
		if *vy > 0 {
			*vy = 0
		}
		return true
	}

	if !platforms || *vy < 0 {
		return false
	}

	bottom := *y + r
	for _, b := range w.reg.platforms {
		box := b.Bounds()
		if *x+r <= box.MinX || *x-r >= box.MaxX {
			continue
		}
		if prevBottom <= box.MinY+slack && bottom >= box.MinY {
			*y = box.MinY - r
			*vy = 0
			return true
		}
	}
	return false
}

// wrap maps v into [0, size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	if v < 0 || v >= size {
		v = math.Mod(v, size)
		if v < 0 {
			v += size
		}
	}
	return v
}
