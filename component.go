package airwar

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentID is a unique identifier for a component type within a World.
// Valid IDs range from 0 to 254.
type ComponentID uint8

// MaxComponents is the maximum number of component types supported.
const MaxComponents = 255

// componentRegistry assigns IDs to component types.
// Each World owns one registry; IDs are handed out in first-use order.
type componentRegistry struct {
	ids   map[reflect.Type]ComponentID
	names [MaxComponents]string
	next  int
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{ids: make(map[reflect.Type]ComponentID)}
}

// register returns the ID for t, assigning a new one on first use.
func (r *componentRegistry) register(t reflect.Type) ComponentID {
	if id, ok := r.ids[t]; ok {
		return id
	}
	if r.next >= MaxComponents {
		panic(fmt.Sprintf("airwar: component limit exceeded (max %d types)", MaxComponents))
	}

	id := ComponentID(r.next)
	r.next++
	r.ids[t] = id
	r.names[id] = t.Name()
	return id
}

// lookup returns the ID for t without registering it.
func (r *componentRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

func (r *componentRegistry) name(id ComponentID) string {
	return r.names[id]
}

func (r *componentRegistry) count() int {
	return r.next
}

// componentID returns the ComponentID for type T, registering it if needed.
func componentID[T any](r *componentRegistry) ComponentID {
	return r.register(reflect.TypeFor[T]())
}

// Add attaches a component to the entity.
// If a component of this type already exists, it is replaced.
// Adding to a despawned entity is a no-op.
//
// Zero-size structs make good tags:
//
//	type Hostile struct{}
//	airwar.Add(e, &Hostile{})
func Add[T any](e *Entity, component *T) {
	if e == nil || component == nil || e.despawned {
		return
	}
	e.setComponent(componentID[T](e.world.registry), unsafe.Pointer(component))
}

// Remove detaches a component from the entity.
func Remove[T any](e *Entity) {
	if e == nil || e.despawned {
		return
	}
	id, ok := e.world.registry.lookup(reflect.TypeFor[T]())
	if !ok {
		return
	}
	e.components[id] = nil
	e.mask.Clear(id)
}

// Get retrieves a component from the entity.
// Returns nil if the component is not present or the entity is despawned.
func Get[T any](e *Entity) *T {
	if e == nil || e.despawned {
		return nil
	}
	id, ok := e.world.registry.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	return (*T)(e.components[id])
}

// Has checks if a component type is present on the entity.
func Has[T any](e *Entity) bool {
	if e == nil || e.despawned {
		return false
	}
	id, ok := e.world.registry.lookup(reflect.TypeFor[T]())
	if !ok {
		return false
	}
	return e.mask.Has(id)
}

// Mask returns a bitmask holding the component type T.
// Combine masks with Or to build query filters.
func Mask[T any](w *World) Bitmask {
	var m Bitmask
	m.Set(componentID[T](w.registry))
	return m
}

// addAny attaches a component held in an interface value.
// The value must be a non-nil pointer to a struct.
func (w *World) addAny(e *Entity, component any) error {
	v := reflect.ValueOf(component)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("airwar: component must be a non-nil struct pointer, got %T", component)
	}
	id := w.registry.register(v.Type().Elem())
	e.setComponent(id, v.UnsafePointer())
	return nil
}

// ComponentName returns the name of the component type with the given ID.
func (w *World) ComponentName(id ComponentID) string {
	return w.registry.name(id)
}

// RegisteredComponentCount returns the number of registered component types.
func (w *World) RegisteredComponentCount() int {
	return w.registry.count()
}
