package sim

import (
	"testing"
	"time"
)

func TestLastMeleeKillSetsPendingSameFrame(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)

	events := w.Step(Input{PointerDown: true}, frame)

	if len(w.reg.minions) != 0 {
		t.Fatalf("minions = %d, expected 0", len(w.reg.minions))
	}
	if !w.Pending() {
		t.Error("transition should be pending in the same frame")
	}
	if w.State() != StateTransitioning {
		t.Errorf("state = %s, expected transitioning", w.State())
	}
	if w.Level() != 2 {
		t.Errorf("level = %d, expected 2", w.Level())
	}
	if !hasEvent(events, EventMinionDefeated) || !hasEvent(events, EventLevelCleared) {
		t.Errorf("expected MinionDefeated and LevelCleared, got %v", events)
	}
	if _, ok := w.Entities().Door(); !ok {
		t.Error("door should be spawned on clear")
	}
}

func TestTransitionTriggersOnce(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)

	var events []Event
	events = append(events, w.Step(Input{PointerDown: true}, frame)...)
	for range 100 {
		events = append(events, w.Step(Input{PointerDown: true}, frame)...)
	}

	if got := countEvents(events, EventLevelCleared); got != 1 {
		t.Errorf("LevelCleared fired %d times, expected 1", got)
	}
	if w.Level() != 2 {
		t.Errorf("level = %d, expected 2", w.Level())
	}
	if hasEvent(events, EventLevelStarted) {
		t.Error("next level must wait for the 2000ms transition")
	}
}

func TestTransitionRebuildsLevel(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)
	w.Step(Input{PointerDown: true, Right: true}, frame)

	clearedAt := w.Now()
	events := stepUntil(t, w, EventLevelStarted, 200)
	if elapsed := w.Now() - clearedAt; elapsed < 2*time.Second {
		t.Errorf("level started after %v, expected at least 2s", elapsed)
	}

	if w.Pending() || w.State() != StateInProgress {
		t.Errorf("after transition: pending=%v state=%s", w.Pending(), w.State())
	}
	if n := len(w.reg.minions); n < 10 || n > 25 {
		t.Errorf("new batch = %d, expected 10..25", n)
	}
	if _, ok := w.Entities().Door(); ok {
		t.Error("door should be removed by the transition")
	}
	if p := w.Player(); p.X != 100 || p.Y != 480 {
		t.Errorf("player should be back at spawn, got (%v, %v)", p.X, p.Y)
	}
	for _, e := range events {
		if e.Kind == EventLevelStarted && e.Level != 2 {
			t.Errorf("LevelStarted level = %d, expected 2", e.Level)
		}
	}
}

func TestFullPlaythrough(t *testing.T) {
	w := newWorld(quietConfig())

	var cleared []int
	victory := false
	for !victory {
		if len(cleared) > 5 {
			t.Fatal("too many level clears")
		}
		w.reg.minions = nil

		events := w.Step(Input{}, frame)
		for _, e := range events {
			switch e.Kind {
			case EventLevelCleared:
				cleared = append(cleared, e.Level)
			case EventVictory:
				victory = true
			}
		}
		checkMinionInvariant(t, w)
		if !victory {
			stepUntil(t, w, EventLevelStarted, 200)
			checkMinionInvariant(t, w)
		}
	}

	expected := []int{2, 3, 4, 5, 6}
	if len(cleared) != len(expected) {
		t.Fatalf("cleared levels = %v, expected %v", cleared, expected)
	}
	for i := range expected {
		if cleared[i] != expected[i] {
			t.Errorf("cleared levels = %v, expected %v", cleared, expected)
			break
		}
	}

	if w.State() != StateCompleted {
		t.Errorf("state = %s, expected completed", w.State())
	}
	if w.Score() != 500 {
		t.Errorf("score = %d, expected 500", w.Score())
	}

	// Completed runs are frozen
	tick := w.Tick()
	snap := w.Snapshot()
	for range 200 {
		if events := w.Step(Input{Right: true, PointerDown: true}, frame); events != nil {
			t.Fatalf("completed world produced events: %v", events)
		}
	}
	after := w.Snapshot()
	if w.Tick() != tick || snap.Hash() != after.Hash() {
		t.Error("completed world must not change")
	}
}

// checkMinionInvariant asserts the minion list is empty iff a transition is
// pending or the run has ended.
func checkMinionInvariant(t *testing.T, w *World) {
	t.Helper()
	empty := len(w.reg.minions) == 0
	if empty != (w.Pending() || w.State() == StateCompleted) {
		t.Fatalf("minions empty=%v but pending=%v state=%s", empty, w.Pending(), w.State())
	}
}

func TestDefeatResetsScene(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	old := onlyMinionAt(w, p.X+10, p.Y)
	w.player.Health = 5
	w.player.Weapon = WeaponGun
	w.damageTick = w.cfg.Minions.DamageFrames - 1
	epoch := w.Epoch()

	events := w.Step(Input{}, frame)

	if !hasEvent(events, EventPlayerHit) || !hasEvent(events, EventPlayerDefeated) {
		t.Fatalf("expected PlayerHit and PlayerDefeated, got %v", events)
	}
	for _, e := range events {
		if e.Kind == EventPlayerHit && e.Health != 0 {
			t.Errorf("PlayerHit health = %d, expected 0", e.Health)
		}
	}

	got := w.Player()
	if got.Health != 100 {
		t.Errorf("health = %d, expected 100", got.Health)
	}
	if got.Weapon != WeaponMelee {
		t.Errorf("weapon = %s, expected Melee", got.Weapon)
	}
	if w.Deaths() != 1 {
		t.Errorf("deaths = %d, expected 1", w.Deaths())
	}
	if w.Epoch() <= epoch {
		t.Error("defeat should bump the epoch")
	}
	if w.Level() != 1 {
		t.Errorf("level = %d, expected 1", w.Level())
	}
	if n := len(w.reg.minions); n < 10 || n > 25 {
		t.Errorf("respawned batch = %d, expected 10..25", n)
	}
	for _, m := range w.reg.minions {
		if m.ID <= old.ID {
			t.Errorf("minion %d survived the reset", m.ID)
		}
	}
	if len(w.reg.platforms) == 0 {
		t.Error("geometry should be regenerated")
	}
}

func TestDamageSumsMinionsInRange(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)
	w.reg.AddMinion(p.X-10, p.Y, 15, Left)
	w.reg.AddMinion(p.X+200, p.Y, 15, Left)
	w.damageTick = w.cfg.Minions.DamageFrames - 1

	events := w.Step(Input{}, frame)

	if w.Player().Health != 90 {
		t.Errorf("health = %d, expected 90", w.Player().Health)
	}
	for _, e := range events {
		if e.Kind == EventPlayerHit && e.Damage != 10 {
			t.Errorf("damage = %d, expected 10", e.Damage)
		}
	}
}

func TestDamageTicksEverySixtyFrames(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)

	hits := 0
	for range 180 {
		hits += countEvents(w.Step(Input{}, frame), EventPlayerHit)
	}
	if hits != 3 {
		t.Errorf("hits in 180 frames = %d, expected 3", hits)
	}
	if w.Player().Health != 85 {
		t.Errorf("health = %d, expected 85", w.Player().Health)
	}
}

func TestStaleTransitionIgnoredAfterDefeat(t *testing.T) {
	w := newWorld(quietConfig())
	p := w.Player()
	onlyMinionAt(w, p.X+10, p.Y)

	w.Step(Input{PointerDown: true}, frame)
	if !w.Pending() {
		t.Fatal("transition should be pending")
	}

	// A minion reaches the player while the transition timer is armed
	w.reg.AddMinion(p.X+10, p.Y, 15, Left)
	w.player.Health = 5
	w.damageTick = w.cfg.Minions.DamageFrames - 1
	events := w.Step(Input{}, frame)
	if !hasEvent(events, EventPlayerDefeated) {
		t.Fatalf("expected defeat, got %v", events)
	}

	ids := make(map[int]bool)
	for _, m := range w.reg.minions {
		ids[m.ID] = true
	}
	level := w.Level()

	for range 180 {
		if events := w.Step(Input{}, frame); hasEvent(events, EventLevelStarted) {
			t.Fatal("stale transition timer fired after the reset")
		}
	}

	if w.Level() != level {
		t.Errorf("level changed from %d to %d", level, w.Level())
	}
	if len(w.reg.minions) != len(ids) {
		t.Fatalf("minion count changed: %d -> %d", len(ids), len(w.reg.minions))
	}
	for _, m := range w.reg.minions {
		if !ids[m.ID] {
			t.Errorf("minion %d appeared after the reset", m.ID)
		}
	}
	if w.Pending() {
		t.Error("pending flag should be cleared by the reset")
	}
}
