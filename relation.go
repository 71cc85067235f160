package airwar

import (
	"reflect"
)

// Relation is a weak reference from a component or resource to an entity.
// The type parameter T names the component the target is expected to carry.
// A relation whose target has been despawned resolves to nil.
//
// Usage:
//
//	type Anchor struct {
//	    Parent airwar.Relation[Transform] // follow the parent's Transform
//	}
type Relation[T any] struct {
	target *Entity
}

// Set sets the target entity for this relation.
func (r *Relation[T]) Set(target *Entity) {
	r.target = target
}

// Clear removes the target reference.
func (r *Relation[T]) Clear() {
	r.target = nil
}

// Get returns the target entity, or nil if not set or target is despawned.
func (r *Relation[T]) Get() *Entity {
	if r.target == nil {
		return nil
	}
	if r.target.despawned {
		r.target = nil
		return nil
	}
	return r.target
}

// Valid returns true if the target exists and has the required component.
func (r *Relation[T]) Valid() bool {
	return Has[T](r.Get())
}

// Target returns the raw target pointer, despawned or not.
func (r *Relation[T]) Target() *Entity {
	return r.target
}

// TargetType returns the reflect.Type of the component the target must have.
func (r *Relation[T]) TargetType() reflect.Type {
	return reflect.TypeFor[T]()
}

// isRelationType checks if a value is a *Relation[T].
func isRelationType(v any) bool {
	_, ok := v.(interface{ Target() *Entity })
	return ok
}

// Resolve retrieves the target entity and its component of type T.
// Returns (nil, nil, false) if the relation is unset or the target is despawned,
// and (target, nil, false) if the target lacks the component.
func Resolve[T any](r *Relation[T]) (*Entity, *T, bool) {
	e := r.Get()
	if e == nil {
		return nil, nil, false
	}
	comp := Get[T](e)
	if comp == nil {
		return e, nil, false
	}
	return e, comp, true
}
