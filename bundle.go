package airwar

import (
	"fmt"
	"reflect"
	"time"
)

// Condition decides, once per tick, whether a loop runs.
type Condition func(*World) bool

// Bundle groups related systems and resources together.
// Bundles are registered with the Builder and usually map to one gameplay
// feature (movement, collisions, game state).
type Bundle struct {
	name string

	// handlers holds event handler registrations
	handlers []any

	// loops holds loop system registrations
	loops []loopRegistration

	// startup holds systems run once by Builder.Init
	startup []Runnable

	// resources holds bundle-level resources (registered with the world)
	resources []any

	// meta holds computed metadata for systems
	handlerMeta []*handlerMeta
	loopMeta    []*SystemMeta
	startupMeta []*SystemMeta
}

// loopRegistration holds a loop system registration.
type loopRegistration struct {
	system     Runnable
	interval   time.Duration
	stage      Stage
	conditions []Condition
}

// NewBundle creates a new bundle with the given name.
func NewBundle(name string) *Bundle {
	return &Bundle{name: name}
}

// Name returns the bundle name.
func (b *Bundle) Name() string {
	return b.name
}

// Resource registers a bundle-level resource.
// These are available to all systems of the world.
func (b *Bundle) Resource(res any) *Bundle {
	b.resources = append(b.resources, res)
	return b
}

// Handler registers an event handler for this bundle.
// Handlers are struct pointers with one-argument methods such as
// HandleHit(*HostileDestroyed); see World.Dispatch.
func (b *Bundle) Handler(h any) *Bundle {
	b.handlers = append(b.handlers, h)
	return b
}

// Startup registers a system that runs once, after every resource is added
// and before the first tick.
func (b *Bundle) Startup(sys Runnable) *Bundle {
	b.startup = append(b.startup, sys)
	return b
}

// Loop registers a loop system for a stage.
// Interval of 0 means the loop runs every tick. A loop only runs on ticks
// where all of its conditions hold, and its interval only advances on those
// ticks.
func (b *Bundle) Loop(sys Runnable, interval time.Duration, stage Stage, conditions ...Condition) *Bundle {
	b.loops = append(b.loops, loopRegistration{
		system:     sys,
		interval:   interval,
		stage:      stage,
		conditions: conditions,
	})
	return b
}

// Build returns a callback function that returns this bundle.
// This allows for cleaner inline bundle initialization:
//
//	bund := airwar.NewBundle("movement").
//	    Loop(&MovementSystem{}, 0, airwar.EntityUpdates).
//	    Build()
//
//	w := airwar.NewBuilder().
//	    Bundle(bund).
//	    Init()
func (b *Bundle) Build() func(*World) *Bundle {
	return func(*World) *Bundle {
		return b
	}
}

// build analyzes all systems and computes metadata.
func (b *Bundle) build(registry *componentRegistry) error {
	for _, h := range b.handlers {
		meta, err := analyzeSystem(reflect.TypeOf(h), b, registry)
		if err != nil {
			return fmt.Errorf("bundle %s: %w", b.name, err)
		}
		b.handlerMeta = append(b.handlerMeta, analyzeHandler(h, meta))
	}

	for _, reg := range b.loops {
		if reg.stage < 0 || reg.stage >= stageCount {
			return fmt.Errorf("bundle %s: invalid stage %d", b.name, reg.stage)
		}
		meta, err := analyzeSystem(reflect.TypeOf(reg.system), b, registry)
		if err != nil {
			return fmt.Errorf("bundle %s: %w", b.name, err)
		}
		meta.Stage = reg.stage
		b.loopMeta = append(b.loopMeta, meta)
	}

	for _, sys := range b.startup {
		meta, err := analyzeSystem(reflect.TypeOf(sys), b, registry)
		if err != nil {
			return fmt.Errorf("bundle %s: %w", b.name, err)
		}
		b.startupMeta = append(b.startupMeta, meta)
	}

	return nil
}
