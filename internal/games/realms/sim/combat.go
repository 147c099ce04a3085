package sim

import (
	"math"
	"time"
)

func (w *World) updateWeapon(in Input) {
	if !in.ToggleWeapon {
		return
	}
	if w.player.Weapon == WeaponMelee {
		w.player.Weapon = WeaponGun
	} else {
		w.player.Weapon = WeaponMelee
	}
	w.emit(Event{Kind: EventWeaponChanged, Weapon: w.player.Weapon})
}

// updateCombat resolves the attack for a held pointer.
func (w *World) updateCombat(in Input) {
	if !in.PointerDown {
		return
	}
	switch w.player.Weapon {
	case WeaponMelee:
		w.melee()
	case WeaponGun:
		w.fire(in.PointerX, in.PointerY)
	}
}

// melee destroys every minion strictly closer than the melee range.
// There is no cooldown; it applies on every frame the pointer is held.
func (w *World) melee() {
	p := &w.player
	reach := w.cfg.Combat.MeleeRange
	removed := w.reg.FilterMinions(func(m *Minion) bool {
		return distance(p.X, p.Y, m.X, m.Y) >= reach
	})
	for _, m := range removed {
		w.minionDefeated(m, WeaponMelee)
	}
}

// fire spawns a projectile toward (tx, ty) unless the gun is cooling down.
func (w *World) fire(tx, ty float64) {
	now := w.sched.Now()
	cooldown := time.Duration(w.cfg.Combat.RangedCooldownMs) * time.Millisecond
	if w.hasShot && now-w.lastShot < cooldown {
		return
	}
	w.lastShot = now
	w.hasShot = true

	p := &w.player
	dx, dy := tx-p.X, ty-p.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		dx, dy, length = float64(p.Facing), 0, 1
	}
	speed := w.cfg.Combat.ProjectileSpeed
	proj := w.reg.AddProjectile(p.X, p.Y, dx/length*speed, dy/length*speed, w.cfg.Combat.ProjectileRadius)

	id := proj.ID
	ttl := time.Duration(w.cfg.Combat.ProjectileTTLMs) * time.Millisecond
	proj.expiry = w.sched.After(ttl, func() {
		w.reg.RemoveProjectile(id)
	})

	w.emit(Event{Kind: EventShotFired, ID: id})
}

// integrateProjectiles moves shots in a straight line, wrapping at the edges.
func (w *World) integrateProjectiles(dt float64) {
	for _, pr := range w.reg.projectiles {
		pr.X = wrap(pr.X+pr.VX*dt, w.cfg.World.Width)
		pr.Y = wrap(pr.Y+pr.VY*dt, w.cfg.World.Height)
	}
}

// resolveProjectileHits retires projectiles that touched a minion (taking
// the minion with them), a platform, or the ground.
func (w *World) resolveProjectileHits() {
	ground := w.cfg.World.GroundY
	spent := w.reg.FilterProjectiles(func(pr *Projectile) bool {
		if pr.Y+pr.Radius >= ground {
			return false
		}
		for _, m := range w.reg.minions {
			if distance(pr.X, pr.Y, m.X, m.Y) < pr.Radius+m.Radius {
				if w.reg.RemoveMinion(m.ID) {
					w.minionDefeated(m, WeaponGun)
				}
				return false
			}
		}
		pb := circleBounds(pr.X, pr.Y, pr.Radius)
		for _, b := range w.reg.platforms {
			if pb.Overlaps(b.Bounds()) {
				return false
			}
		}
		return true
	})
	for _, pr := range spent {
		w.sched.Cancel(pr.expiry)
	}
}

func (w *World) minionDefeated(m *Minion, cause Weapon) {
	w.kills++
	w.score += w.cfg.Levels.PointsPerKill
	w.emit(Event{Kind: EventMinionDefeated, ID: m.ID, Cause: cause})
}
