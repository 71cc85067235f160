package airwar

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// World owns every entity, component and resource of one simulation.
// It is not safe for concurrent use: all access happens on the goroutine
// that calls Tick (or Run).
type World struct {
	// registry holds component type registrations for this world
	registry *componentRegistry

	// bundles holds all registered bundles
	bundles []*Bundle

	// handlers holds all registered handler metadata
	handlers []*handlerMeta

	// entities holds live entities in spawn order
	entities []*Entity

	// byID and byUUID provide entity lookup
	byID   map[uint64]*Entity
	byUUID map[uuid.UUID]*Entity

	nextID uint64

	// resources holds world-level singletons keyed by their struct type
	resources map[reflect.Type]unsafe.Pointer

	// commands holds mutations deferred to the next stage boundary
	commands *Commands

	// scheduler runs loops every tick
	scheduler *Scheduler

	time     *Time
	tickRate time.Duration
	log      *slog.Logger
}

// Time is the built-in clock resource, advanced by the scheduler before
// the first stage of every tick.
type Time struct {
	// Delta is the duration simulated by the current tick
	Delta time.Duration

	// Elapsed is the total simulated duration, including this tick
	Elapsed time.Duration

	// Tick is the number of the current tick, starting at 1
	Tick uint64
}

// DeltaSeconds returns Delta in seconds.
func (t *Time) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// DefaultTickRate is the tick interval used by Run unless WithTickRate is given.
const DefaultTickRate = time.Second / 60

// newWorld creates an empty world.
func newWorld() *World {
	w := &World{
		registry:  newComponentRegistry(),
		byID:      make(map[uint64]*Entity),
		byUUID:    make(map[uuid.UUID]*Entity),
		resources: make(map[reflect.Type]unsafe.Pointer),
		tickRate:  DefaultTickRate,
		log:       slog.Default(),
	}
	w.commands = newCommands(w)
	w.scheduler = newScheduler(w)
	w.time = &Time{}
	w.AddResource(w.time)
	return w
}

// NewWorld creates a world with no systems. Entities and resources can be
// added directly and Tick only advances the clock. Use Builder to get a
// world with scheduled systems.
func NewWorld(opts ...Option) *World {
	w := newWorld()
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Logger returns the logger used by the world.
func (w *World) Logger() *slog.Logger {
	return w.log
}

// TickRate returns the tick interval used by Run.
func (w *World) TickRate() time.Duration {
	return w.tickRate
}

// Time returns the world clock.
func (w *World) Time() *Time {
	return w.time
}

// Commands returns the world's deferred command buffer.
func (w *World) Commands() *Commands {
	return w.commands
}

// Spawn creates an entity carrying the given components.
// Every component must be a non-nil pointer to a struct. The entity is
// visible to queries and systems immediately.
func (w *World) Spawn(components ...any) *Entity {
	return w.SpawnChild(nil, components...)
}

// SpawnChild creates an entity attached to parent. Despawning the parent
// despawns the child. A nil or despawned parent spawns a root entity.
func (w *World) SpawnChild(parent *Entity, components ...any) *Entity {
	w.nextID++
	e := &Entity{
		id:    w.nextID,
		uuid:  uuid.New(),
		world: w,
	}
	for _, c := range components {
		if err := w.addAny(e, c); err != nil {
			panic(fmt.Errorf("airwar: spawn: %w", err))
		}
	}
	if parent != nil && !parent.despawned {
		e.parent = parent
		parent.children = append(parent.children, e)
	}

	w.entities = append(w.entities, e)
	w.byID[e.id] = e
	w.byUUID[e.uuid] = e

	w.log.Debug("airwar: entity spawned", "entity", e.id, "uuid", e.uuid, "components", e.mask.Count())
	return e
}

// Despawn destroys the entity and, recursively, all of its children.
// Despawning an entity twice or a nil entity is a no-op.
func (w *World) Despawn(e *Entity) {
	if e == nil || e.despawned || e.world != w {
		return
	}

	for len(e.children) > 0 {
		w.Despawn(e.children[len(e.children)-1])
	}
	e.detach()

	e.despawned = true
	e.clear()
	delete(w.byID, e.id)
	delete(w.byUUID, e.uuid)

	// entities is sorted by id
	if i, ok := slices.BinarySearchFunc(w.entities, e.id, func(x *Entity, id uint64) int {
		return cmp.Compare(x.id, id)
	}); ok {
		w.entities = slices.Delete(w.entities, i, i+1)
	}

	w.log.Debug("airwar: entity despawned", "entity", e.id, "uuid", e.uuid)
}

// Entity returns the live entity with the given ID, or nil.
func (w *World) Entity(id uint64) *Entity {
	return w.byID[id]
}

// EntityByUUID returns the live entity with the given handle, or nil.
func (w *World) EntityByUUID(id uuid.UUID) *Entity {
	return w.byUUID[id]
}

// Entities returns a snapshot of all live entities in spawn order.
func (w *World) Entities() []*Entity {
	return slices.Clone(w.entities)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Query returns a snapshot of the live entities carrying every component in
// require and none in exclude, in spawn order.
//
//	hostiles := w.Query(airwar.Mask[Hostile](w), airwar.Mask[Player](w))
func (w *World) Query(require, exclude Bitmask) []*Entity {
	var result []*Entity
	for _, e := range w.entities {
		if e.mask.Matches(require, exclude) {
			result = append(result, e)
		}
	}
	return result
}

// Single returns the only live entity carrying T and its component.
// ok is false when no entity, or more than one, carries T.
func Single[T any](w *World) (e *Entity, comp *T, ok bool) {
	id, registered := w.registry.lookup(reflect.TypeFor[T]())
	if !registered {
		return nil, nil, false
	}
	for _, candidate := range w.entities {
		if !candidate.mask.Has(id) {
			continue
		}
		if e != nil {
			return nil, nil, false
		}
		e = candidate
	}
	if e == nil {
		return nil, nil, false
	}
	return e, (*T)(e.getComponent(id)), true
}

// AddResource registers a world-level singleton. res must be a non-nil
// pointer to a struct; a resource of the same type is replaced.
func (w *World) AddResource(res any) {
	v := reflect.ValueOf(res)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("airwar: resource must be a non-nil struct pointer, got %T", res))
	}
	w.resources[v.Type().Elem()] = v.UnsafePointer()
}

// Resource returns the world resource of type T, or nil.
func Resource[T any](w *World) *T {
	return (*T)(w.resource(reflect.TypeFor[T]()))
}

func (w *World) resource(t reflect.Type) unsafe.Pointer {
	return w.resources[t]
}

// Tick advances the simulation by dt: every stage runs in order and the
// deferred commands of each stage are applied before the next one starts.
// A panicking system aborts the tick and is reported as an error.
func (w *World) Tick(dt time.Duration) error {
	return w.scheduler.tick(dt)
}

// Run ticks the world at its tick rate until ctx is done or a tick fails.
// before, if not nil, is called ahead of every tick so the caller can feed
// input resources.
func (w *World) Run(ctx context.Context, before func(*World)) error {
	ticker := time.NewTicker(w.tickRate)
	defer ticker.Stop()

	w.log.Info("airwar: running", "tick_rate", w.tickRate, "entities", len(w.entities))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if before != nil {
				before(w)
			}
			if err := w.Tick(w.tickRate); err != nil {
				return fmt.Errorf("airwar: tick %d: %w", w.time.Tick, err)
			}
		}
	}
}
