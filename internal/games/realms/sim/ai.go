package sim

// updateMinionAI sets each minion's horizontal velocity: a wander direction
// re-rolled every WanderFrames, occasionally overridden by a slow drift
// toward the player.
func (w *World) updateMinionAI() {
	mc := w.cfg.Minions
	wander := w.difficulty.Speed(mc.WanderSpeed, w.level, int(w.tick))
	homing := w.difficulty.Speed(mc.HomingSpeed, w.level, int(w.tick))

	for _, m := range w.reg.minions {
		m.WanderTimer++
		if m.WanderTimer >= mc.WanderFrames {
			m.WanderTimer = 0
			m.Wander = w.rollDirection()
		}
		m.VX = wander * float64(m.Wander)

		if w.rng.Float64() < mc.HomingChance {
			switch {
			case w.player.X < m.X:
				m.VX = -homing
			case w.player.X > m.X:
				m.VX = homing
			default:
				m.VX = 0
			}
		}
	}
}

func (w *World) rollDirection() Direction {
	if w.rng.Intn(2) == 0 {
		return Left
	}
	return Right
}

// updateDamage advances the shared damage counter. When it fires, every
// minion within range hits the player once.
func (w *World) updateDamage() {
	mc := w.cfg.Minions
	w.damageTick++
	if w.damageTick < mc.DamageFrames {
		return
	}
	w.damageTick = 0

	p := &w.player
	hit := w.difficulty.Damage(mc.Damage, w.level, int(w.tick))
	total := 0
	for _, m := range w.reg.minions {
		if distance(p.X, p.Y, m.X, m.Y) < mc.DamageRange {
			total += hit
		}
	}
	if total == 0 {
		return
	}

	p.Health -= total
	if p.Health < 0 {
		p.Health = 0
	}
	w.emit(Event{Kind: EventPlayerHit, Damage: total, Health: p.Health})

	if p.Health <= 0 {
		w.defeat()
	}
}
