package sim

import (
	"testing"
	"time"
)

func TestMeleeRange(t *testing.T) {
	tests := []struct {
		dist   float64
		killed bool
	}{
		{0, true},
		{10, true},
		{49.9, true},
		{50, false},
		{80, false},
	}

	for _, tc := range tests {
		w := newWorld(quietConfig())
		p := w.Player()
		onlyMinionAt(w, p.X+tc.dist, p.Y)
		w.reg.AddMinion(700, 485, 15, Left) // keeps the level alive

		w.updateCombat(Input{PointerDown: true})

		killed := len(w.reg.minions) == 1
		if killed != tc.killed {
			t.Errorf("distance %v: killed=%v, expected %v", tc.dist, killed, tc.killed)
		}
	}
}

func TestMeleeHitsEveryMinionInRange(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+20, p.Y)
	w.reg.AddMinion(p.X-30, p.Y, 15, Left)
	w.reg.AddMinion(p.X, p.Y-40, 15, Left)
	w.reg.AddMinion(700, 485, 15, Left)

	events := w.Step(Input{PointerDown: true}, frame)

	if len(w.reg.minions) != 1 {
		t.Errorf("minions left = %d, expected 1", len(w.reg.minions))
	}
	if got := countEvents(events, EventMinionDefeated); got != 3 {
		t.Errorf("MinionDefeated events = %d, expected 3", got)
	}
	if w.Kills() != 3 || w.Score() != 30 {
		t.Errorf("kills=%d score=%d, expected 3 and 30", w.Kills(), w.Score())
	}
}

func TestMeleeNeedsPointer(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)

	w.Step(Input{}, frame)
	if len(w.reg.minions) != 1 {
		t.Error("minion should survive without an attack")
	}
}

func TestWeaponToggleIsEdgeTriggered(t *testing.T) {
	w := newWorld(quietConfig())

	events := w.Step(Input{ToggleWeapon: true}, frame)
	if w.Player().Weapon != WeaponGun {
		t.Fatalf("weapon = %s, expected Gun", w.Player().Weapon)
	}
	if !hasEvent(events, EventWeaponChanged) {
		t.Error("expected WeaponChanged event")
	}

	for range 5 {
		w.Step(Input{}, frame)
	}
	if w.Player().Weapon != WeaponGun {
		t.Error("weapon should stay Gun without a new press")
	}

	w.Step(Input{ToggleWeapon: true}, frame)
	if w.Player().Weapon != WeaponMelee {
		t.Error("second press should switch back to Melee")
	}
}

func TestRangedCooldown(t *testing.T) {
	w := newWorld(quietConfig())
	flatten(w)
	w.player.Weapon = WeaponGun
	onlyMinionAt(w, 700, 485)

	// Aim straight up so shots never meet the minion or the ground
	in := Input{PointerDown: true, PointerX: 100, PointerY: 0}
	var shots []time.Duration
	for range 120 {
		events := w.Step(in, frame)
		for range countEvents(events, EventShotFired) {
			shots = append(shots, w.Now())
		}
	}

	// 250ms is just over 15 frames, so a shot lands every 16th frame
	if len(shots) != 8 {
		t.Errorf("shots in 120 frames = %d, expected 8", len(shots))
	}
	for i := 1; i < len(shots); i++ {
		if gap := shots[i] - shots[i-1]; gap < 250*time.Millisecond {
			t.Errorf("shots %d and %d only %v apart", i-1, i, gap)
		}
	}
}

func TestProjectileFlightAndExpiry(t *testing.T) {
	w := newWorld(quietConfig())
	flatten(w)
	w.player.Weapon = WeaponGun
	onlyMinionAt(w, 700, 485)

	w.Step(Input{PointerDown: true, PointerX: 100, PointerY: 0}, frame)
	if len(w.reg.projectiles) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(w.reg.projectiles))
	}
	pr := w.reg.projectiles[0]
	if pr.VX != 0 || pr.VY != -400 {
		t.Errorf("projectile velocity = (%v, %v), expected (0, -400)", pr.VX, pr.VY)
	}

	for range 30 {
		w.Step(Input{}, frame)
	}
	if len(w.reg.projectiles) != 1 {
		t.Fatal("projectile should still fly at 0.5s")
	}

	for range 40 {
		w.Step(Input{}, frame)
	}
	if len(w.reg.projectiles) != 0 {
		t.Error("projectile should expire after 1000ms")
	}
	if w.sched.Pending() != 0 {
		t.Errorf("expiry task should be consumed, pending=%d", w.sched.Pending())
	}
}

func TestProjectileHitCancelsExpiry(t *testing.T) {
	w := newWorld(quietConfig())
	flatten(w)
	w.player.Weapon = WeaponGun
	target := onlyMinionAt(w, 100, 400)
	w.reg.AddMinion(700, 485, 15, Left)

	events := w.Step(Input{PointerDown: true, PointerX: 100, PointerY: 0}, frame)
	if !hasEvent(events, EventShotFired) {
		t.Fatal("expected a shot")
	}

	for range 20 {
		w.Step(Input{}, frame)
	}

	for _, m := range w.reg.minions {
		if m.ID == target.ID {
			t.Fatal("target minion should be destroyed")
		}
	}
	if len(w.reg.projectiles) != 0 {
		t.Error("projectile should be destroyed on hit")
	}
	if w.sched.Pending() != 0 {
		t.Errorf("expiry task should be cancelled, pending=%d", w.sched.Pending())
	}
	if w.Kills() != 1 {
		t.Errorf("kills = %d, expected 1", w.Kills())
	}
}

func TestProjectileStopsAtPlatform(t *testing.T) {
	w := newWorld(quietConfig())
	flatten(w)
	w.reg.AddPlatform(100, 380, 100, 16, 0)
	w.player.Weapon = WeaponGun
	onlyMinionAt(w, 700, 485)

	w.Step(Input{PointerDown: true, PointerX: 100, PointerY: 0}, frame)
	for range 20 {
		w.Step(Input{}, frame)
	}
	if len(w.reg.projectiles) != 0 {
		t.Error("projectile should be destroyed by the platform")
	}
}

func TestProjectileWrapsEdges(t *testing.T) {
	w := newWorld(quietConfig())
	pr := w.reg.AddProjectile(798, 200, 400, 0, 5)
	w.integrateProjectiles(frame.Seconds())
	if pr.X > 10 {
		t.Errorf("projectile should wrap to the left edge, X=%v", pr.X)
	}
}

func TestShotUsesFacingWhenPointerOnPlayer(t *testing.T) {
	w := newWorld(quietConfig())
	flatten(w)
	w.player.Weapon = WeaponGun
	w.player.Facing = Left

	w.fire(w.player.X, w.player.Y)
	pr := w.reg.projectiles[len(w.reg.projectiles)-1]
	if pr.VX != -400 || pr.VY != 0 {
		t.Errorf("velocity = (%v, %v), expected (-400, 0)", pr.VX, pr.VY)
	}
}
