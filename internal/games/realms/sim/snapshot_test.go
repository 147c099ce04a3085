package sim

import "testing"

func scriptedInput(i int) Input {
	return Input{
		Left:         i%40 < 10,
		Right:        i%40 >= 20 && i%40 < 35,
		Jump:         i%50 == 0,
		Up:           i%70 < 10,
		ToggleWeapon: i == 100 || i == 400,
		PointerDown:  i%3 == 0,
		PointerX:     float64((i * 37) % 800),
		PointerY:     float64((i * 13) % 500),
	}
}

func runScript(seed int64, steps int) Snapshot {
	w := New(testConfig(), seed)
	w.Init(1)
	for i := range steps {
		w.Step(scriptedInput(i), frame)
	}
	return w.Snapshot()
}

func TestDeterminism(t *testing.T) {
	snap1 := runScript(12345, 900)
	snap2 := runScript(12345, 900)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Level != snap2.Level {
		t.Errorf("Runs diverged: score %d vs %d, level %d vs %d", snap1.Score, snap2.Score, snap1.Level, snap2.Level)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	snap1 := runScript(1, 0)
	snap2 := runScript(2, 0)
	if snap1.Hash() == snap2.Hash() {
		t.Error("different seeds should generate different levels")
	}
}

func TestInitResetsRun(t *testing.T) {
	w := New(testConfig(), 99)
	w.Init(1)
	for i := range 300 {
		w.Step(scriptedInput(i), frame)
	}

	w.Init(3)
	if w.Score() != 0 || w.Kills() != 0 || w.Deaths() != 0 || w.Tick() != 0 {
		t.Errorf("Init should reset counters: score=%d kills=%d deaths=%d tick=%d",
			w.Score(), w.Kills(), w.Deaths(), w.Tick())
	}
	if w.Level() != 3 || w.Player().Health != 100 {
		t.Errorf("level=%d health=%d", w.Level(), w.Player().Health)
	}
	if len(w.Entities().Projectiles()) != 0 || w.sched.Pending() != 0 {
		t.Error("Init should drop projectiles and timers")
	}
}

func TestTeardown(t *testing.T) {
	w := New(testConfig(), 5)
	w.Init(1)
	w.player.Weapon = WeaponGun
	w.Step(Input{PointerDown: true, PointerX: 100}, frame)

	w.Teardown()
	if w.Entities().Count() != 0 {
		t.Errorf("entities after Teardown = %d", w.Entities().Count())
	}
	if w.sched.Pending() != 0 {
		t.Errorf("tasks after Teardown = %d", w.sched.Pending())
	}
}
