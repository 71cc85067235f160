package airwar

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/google/uuid"
)

// Entity is an opaque simulation object.
// It carries no type of its own: what it is (ship, hostile, projectile) is
// decided by the components attached to it.
//
// Entities are created by World.Spawn and destroyed by World.Despawn or
// Commands.Despawn. Destroying an entity also destroys its children.
type Entity struct {
	// id is the spawn sequence number, also the iteration order
	id uint64

	// uuid is the stable handle handed to collaborators outside the core
	uuid uuid.UUID

	// mask tracks which components are present (256 bits)
	mask Bitmask

	// components stores component pointers indexed by ComponentID
	components [MaxComponents]unsafe.Pointer

	// world is the World that owns this entity
	world *World

	// despawned indicates the entity has been destroyed
	despawned bool

	parent   *Entity
	children []*Entity
}

// ID returns the entity's spawn sequence number.
func (e *Entity) ID() uint64 {
	return e.id
}

// UUID returns the entity's external handle.
func (e *Entity) UUID() uuid.UUID {
	return e.uuid
}

// World returns the world that owns the entity.
func (e *Entity) World() *World {
	return e.world
}

// Despawned returns true if the entity has been destroyed.
func (e *Entity) Despawned() bool {
	return e.despawned
}

// Parent returns the entity this one is attached to, or nil.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns the entities attached to this one.
func (e *Entity) Children() []*Entity {
	return e.children
}

// Mask returns a copy of the entity's component bitmask.
func (e *Entity) Mask() Bitmask {
	return e.mask
}

// String returns a string representation of the entity for debugging.
func (e *Entity) String() string {
	var comps []string
	for id := range ComponentID(MaxComponents) {
		if e.mask.Has(id) {
			comps = append(comps, e.world.registry.name(id))
		}
	}
	return "Entity{ID: " + strconv.FormatUint(e.id, 10) + ", UUID: " + e.uuid.String() +
		", Components: [" + strings.Join(comps, ", ") + "]}"
}

// canRun checks if the entity passes the bitmask filter for a system.
func (e *Entity) canRun(meta *SystemMeta) bool {
	return e.mask.Matches(meta.RequireMask, meta.ExcludeMask)
}

func (e *Entity) setComponent(id ComponentID, ptr unsafe.Pointer) {
	e.components[id] = ptr
	e.mask.Set(id)
}

func (e *Entity) getComponent(id ComponentID) unsafe.Pointer {
	return e.components[id]
}

// detach unlinks the entity from its parent.
func (e *Entity) detach() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// clear drops every component. The entity keeps its identity so that
// stale references can still ask Despawned.
func (e *Entity) clear() {
	for id := range ComponentID(MaxComponents) {
		e.components[id] = nil
	}
	e.mask = Bitmask{}
}
