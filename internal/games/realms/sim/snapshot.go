package sim

import "math"

// Snapshot is the observable world state in primitive types.
// Positions and velocities are stored in thousandths of a unit.
type Snapshot struct {
	Tick    uint64
	NowMs   int64
	Epoch   uint64
	Level   int
	State   int
	Pending bool

	Health int
	Weapon int
	Score  int
	Kills  int
	Deaths int

	PlayerData [4]int // X, Y, VX, VY

	// Each minion is 5 ints: ID, X, Y, VX, Wander
	MinionCount int
	MinionData  []int

	// Each projectile is 3 ints: ID, X, Y
	ProjectileCount int
	ProjectileData  []int

	// Each block is 4 ints: X, Y, W, Rotation
	PlatformData []int
	StairData    []int

	PendingTasks int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:    w.tick,
		NowMs:   w.sched.Now().Milliseconds(),
		Epoch:   w.sched.Epoch(),
		Level:   w.level,
		State:   int(w.state),
		Pending: w.pending,
		Health:  p.Health,
		Weapon:  int(p.Weapon),
		Score:   w.score,
		Kills:   w.kills,
		Deaths:  w.deaths,

		PlayerData: [4]int{milli(p.X), milli(p.Y), milli(p.VX), milli(p.VY)},

		MinionCount:     len(w.reg.minions),
		ProjectileCount: len(w.reg.projectiles),
		PendingTasks:    w.sched.Pending(),
	}

	snap.MinionData = make([]int, 0, len(w.reg.minions)*5)
	for _, m := range w.reg.minions {
		snap.MinionData = append(snap.MinionData, m.ID, milli(m.X), milli(m.Y), milli(m.VX), int(m.Wander))
	}

	snap.ProjectileData = make([]int, 0, len(w.reg.projectiles)*3)
	for _, pr := range w.reg.projectiles {
		snap.ProjectileData = append(snap.ProjectileData, pr.ID, milli(pr.X), milli(pr.Y))
	}

	snap.PlatformData = blockData(w.reg.platforms)
	snap.StairData = blockData(w.reg.stairs)
	return snap
}

func blockData(blocks []*Block) []int {
	data := make([]int, 0, len(blocks)*4)
	for _, b := range blocks {
		data = append(data, milli(b.X), milli(b.Y), milli(b.W), milli(b.Rotation))
	}
	return data
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.NowMs) //#nosec G115 -- hash computation
	h = h*31 + snap.Epoch
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Weapon) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Deaths) //#nosec G115 -- hash computation
	if snap.Pending {
		h = h*31 + 1
	}

	for _, v := range snap.PlayerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, data := range [][]int{snap.MinionData, snap.ProjectileData, snap.PlatformData, snap.StairData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + uint64(snap.PendingTasks) //#nosec G115 -- hash computation
	return h
}
