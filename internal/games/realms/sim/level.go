package sim

import "time"

// Door marker size in world units.
const (
	doorW = 50
	doorH = 80
)

// checkLevelCleared runs the progression state machine. It triggers in the
// same step the last minion dies, and only once: pending is set together
// with the check.
func (w *World) checkLevelCleared() {
	if w.state != StateInProgress || w.pending || len(w.reg.minions) > 0 {
		return
	}

	lc := w.cfg.Levels
	w.pending = true
	w.level++
	w.score += lc.PointsPerLevel
	w.reg.SpawnDoor(lc.DoorX, lc.DoorY, doorW, doorH)
	w.emit(Event{Kind: EventLevelCleared})

	if w.level > lc.Count {
		w.state = StateCompleted
		w.emit(Event{Kind: EventVictory})
		return
	}

	w.state = StateTransitioning
	w.sched.After(time.Duration(lc.TransitionMs)*time.Millisecond, w.startNextLevel)
}

// startNextLevel is the transition task.
func (w *World) startNextLevel() {
	w.buildLevel()
	w.emit(Event{Kind: EventLevelStarted})
}

// defeat rebuilds the whole scene at the current level. The epoch bump
// disarms any transition or projectile timer armed before the reset.
func (w *World) defeat() {
	w.deaths++
	w.sched.Bump()

	w.player.Health = w.cfg.Player.MaxHealth
	w.player.Weapon = WeaponMelee
	w.hasShot = false
	if w.level > w.cfg.Levels.Count {
		w.level = w.cfg.Levels.Count
	}
	w.buildLevel()

	w.emit(Event{Kind: EventPlayerDefeated, Health: w.player.Health})
}

// buildLevel clears the scene and generates the current level.
func (w *World) buildLevel() {
	for _, pr := range w.reg.Clear() {
		w.sched.Cancel(pr.expiry)
	}

	p := &w.player
	p.X = w.cfg.Player.SpawnX
	p.Y = w.cfg.Player.SpawnY
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.Climbing = false

	w.generateGeometry()
	w.spawnMinions()

	w.pending = false
	w.state = StateInProgress
	w.damageTick = 0
}

func (w *World) generateGeometry() {
	lc := w.cfg.Levels
	width := w.cfg.World.Width
	ground := w.cfg.World.GroundY

	for range w.randInt(lc.MinPlatforms, lc.MaxPlatforms) {
		pw := w.randFloat(lc.PlatformMinW, lc.PlatformMaxW)
		x := w.randFloat(pw/2, width-pw/2)
		y := w.randFloat(lc.PlatformMinY, lc.PlatformMaxY)
		tilt := w.randFloat(-lc.MaxTiltDeg, lc.MaxTiltDeg)
		w.reg.AddPlatform(x, y, pw, lc.PlatformH, tilt)
	}

	// Stairs stand on the ground slab
	for range w.randInt(lc.MinStairs, lc.MaxStairs) {
		x := w.randFloat(lc.StairW, width-lc.StairW)
		w.reg.AddStair(x, ground-lc.StairH/2, lc.StairW, lc.StairH)
	}
}

func (w *World) spawnMinions() {
	mc := w.cfg.Minions
	ground := w.cfg.World.GroundY
	lo := w.difficulty.MinBatch(mc.MinCount, mc.MaxCount, w.level, int(w.tick))

	for range w.randInt(lo, mc.MaxCount) {
		x := w.randFloat(mc.SpawnMinX, mc.SpawnMaxX)
		w.reg.AddMinion(x, ground-mc.Radius, mc.Radius, w.rollDirection())
	}
}

// randInt returns a value in [lo, hi].
func (w *World) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

// randFloat returns a value in [lo, hi).
func (w *World) randFloat(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}
