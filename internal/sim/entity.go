package sim

// Kind identifies what an entity is.
type Kind uint8

const (
	KindBush Kind = iota
	KindColumn
	KindProjectile
)

// String returns the logical asset name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBush:
		return "bush"
	case KindColumn:
		return "column"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// IsObstacle reports whether the kind is ground-anchored.
func (k Kind) IsObstacle() bool {
	return k == KindBush || k == KindColumn
}

// Entity is a live obstacle or projectile.
type Entity struct {
	Kind  Kind
	Lane  int     // Obstacles only
	X     float64 // Lateral world offset
	Depth float64 // Absolute world-Z
	Size  float64 // Multiplier around 1.0

	// Projectile state
	AnchorY  float64 // Muzzle screen Y at spawn
	SpawnX   float64 // Muzzle screen X at spawn
	ScreenX  float64 // Smoothed screen position
	ScreenY  float64
	Rel      float64 // Clamped relative depth
	Progress float64 // Normalized progress through [RelMin, RelMax]
	Drift    float64 // 0 at the muzzle, 1 once centered
	Age      int     // Frames alive
}

// RelDepth returns the entity's depth relative to worldZ. Ground-anchored
// kinds get the depth bias; projectiles do not.
func (e Entity) RelDepth(worldZ, bias float64) float64 {
	if e.Kind == KindProjectile {
		return e.Depth - worldZ
	}
	return e.Depth - worldZ + bias
}

// Registry owns every live entity.
type Registry struct {
	entities []Entity
}

// Add inserts an entity.
func (r *Registry) Add(e Entity) {
	r.entities = append(r.entities, e)
}

// RemoveWhere drops every entity matching pred and returns how many went.
// The survivors form a new live set in their original order.
func (r *Registry) RemoveWhere(pred func(Entity) bool) int {
	live := make([]Entity, 0, len(r.entities))
	for _, e := range r.entities {
		if !pred(e) {
			live = append(live, e)
		}
	}
	removed := len(r.entities) - len(live)
	r.entities = live
	return removed
}

// Count returns the number of entities whose kind matches filter.
// A nil filter counts everything.
func (r *Registry) Count(filter func(Kind) bool) int {
	if filter == nil {
		return len(r.entities)
	}
	n := 0
	for _, e := range r.entities {
		if filter(e.Kind) {
			n++
		}
	}
	return n
}

// Each calls fn with a pointer to every entity matching filter.
// Only the update pass mutates through it.
func (r *Registry) Each(filter func(Kind) bool, fn func(*Entity)) {
	for i := range r.entities {
		if filter == nil || filter(r.entities[i].Kind) {
			fn(&r.entities[i])
		}
	}
}

// Snapshot returns a copy of the live set for read-only passes.
func (r *Registry) Snapshot() []Entity {
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// IsProjectile is a Count/Each filter.
func IsProjectile(k Kind) bool {
	return k == KindProjectile
}

// IsObstacle is a Count/Each filter.
func IsObstacle(k Kind) bool {
	return k.IsObstacle()
}
