package sim

// Registry owns every non-player entity. IDs increase monotonically for the
// lifetime of the registry and are never reused, even after Clear.
type Registry struct {
	nextID int

	minions     []*Minion
	platforms   []*Block
	stairs      []*Block
	projectiles []*Projectile
	door        *Door
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) allocID() int {
	r.nextID++
	return r.nextID
}

// AddMinion creates a minion at (x, y).
func (r *Registry) AddMinion(x, y, radius float64, dir Direction) *Minion {
	m := &Minion{ID: r.allocID(), X: x, Y: y, Radius: radius, Wander: dir}
	r.minions = append(r.minions, m)
	return m
}

// AddPlatform creates a solid platform.
func (r *Registry) AddPlatform(x, y, w, h, rotation float64) *Block {
	b := &Block{ID: r.allocID(), X: x, Y: y, W: w, H: h, Rotation: rotation}
	r.platforms = append(r.platforms, b)
	return b
}

// AddStair creates a climbable stair.
func (r *Registry) AddStair(x, y, w, h float64) *Block {
	b := &Block{ID: r.allocID(), X: x, Y: y, W: w, H: h, Climbable: true}
	r.stairs = append(r.stairs, b)
	return b
}

// AddProjectile creates a projectile.
func (r *Registry) AddProjectile(x, y, vx, vy, radius float64) *Projectile {
	p := &Projectile{ID: r.allocID(), X: x, Y: y, VX: vx, VY: vy, Radius: radius}
	r.projectiles = append(r.projectiles, p)
	return p
}

// SpawnDoor places the level exit marker, replacing any previous one.
func (r *Registry) SpawnDoor(x, y, w, h float64) {
	r.door = &Door{X: x, Y: y, W: w, H: h}
}

// RemoveMinion destroys the minion with the given id.
func (r *Registry) RemoveMinion(id int) bool {
	for i, m := range r.minions {
		if m.ID == id {
			r.minions = append(r.minions[:i], r.minions[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveProjectile destroys the projectile with the given id.
func (r *Registry) RemoveProjectile(id int) bool {
	for i, p := range r.projectiles {
		if p.ID == id {
			r.projectiles = append(r.projectiles[:i], r.projectiles[i+1:]...)
			return true
		}
	}
	return false
}

// FilterMinions keeps minions for which keep returns true, in place,
// and returns the removed ones in their original order.
func (r *Registry) FilterMinions(keep func(*Minion) bool) []*Minion {
	var removed []*Minion
	n := 0
	for _, m := range r.minions {
		if keep(m) {
			r.minions[n] = m
			n++
		} else {
			removed = append(removed, m)
		}
	}
	clear(r.minions[n:])
	r.minions = r.minions[:n]
	return removed
}

// FilterProjectiles keeps projectiles for which keep returns true, in place,
// and returns the removed ones.
func (r *Registry) FilterProjectiles(keep func(*Projectile) bool) []*Projectile {
	var removed []*Projectile
	n := 0
	for _, p := range r.projectiles {
		if keep(p) {
			r.projectiles[n] = p
			n++
		} else {
			removed = append(removed, p)
		}
	}
	clear(r.projectiles[n:])
	r.projectiles = r.projectiles[:n]
	return removed
}

// Clear destroys every entity at once and returns the destroyed projectiles
// so their pending expiry tasks can be cancelled.
func (r *Registry) Clear() []*Projectile {
	projectiles := r.projectiles
	r.minions = nil
	r.platforms = nil
	r.stairs = nil
	r.projectiles = nil
	r.door = nil
	return projectiles
}

// Minions returns the live minions. Callers must not modify the slice.
func (r *Registry) Minions() []*Minion { return r.minions }

// Platforms returns the live platforms.
func (r *Registry) Platforms() []*Block { return r.platforms }

// Stairs returns the live stairs.
func (r *Registry) Stairs() []*Block { return r.stairs }

// Projectiles returns the live projectiles.
func (r *Registry) Projectiles() []*Projectile { return r.projectiles }

// Door returns the exit marker, if one is spawned.
func (r *Registry) Door() (Door, bool) {
	if r.door == nil {
		return Door{}, false
	}
	return *r.door, true
}

// Count returns the number of live entities.
func (r *Registry) Count() int {
	n := len(r.minions) + len(r.platforms) + len(r.stairs) + len(r.projectiles)
	if r.door != nil {
		n++
	}
	return n
}
