package airwar

import (
	"log/slog"
	"time"
)

// Builder configures a World before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	bundles   []func(*World) *Bundle
	resources []any
	options   []Option
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used by the engine. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithTickRate sets the interval used by World.Run.
func WithTickRate(d time.Duration) Option {
	return func(w *World) {
		if d > 0 {
			w.tickRate = d
		}
	}
}

// NewBuilder creates a new builder.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{options: opts}
}

// Bundle adds a bundle to the builder.
func (b *Builder) Bundle(callback func(*World) *Bundle) *Builder {
	b.bundles = append(b.bundles, callback)
	return b
}

// Resource adds a global resource available to all bundles.
func (b *Builder) Resource(res any) *Builder {
	b.resources = append(b.resources, res)
	return b
}

// Init builds the world: resources are added, systems are analyzed and
// scheduled, then startup systems run once. Misconfigured systems panic.
func (b *Builder) Init() *World {
	w := NewWorld(b.options...)

	// Add bundles
	for _, f := range b.bundles {
		w.bundles = append(w.bundles, f(w))
	}

	// Add global resources
	for _, res := range b.resources {
		w.AddResource(res)
	}

	for _, bundle := range w.bundles {
		for _, res := range bundle.resources {
			w.AddResource(res)
		}
	}

	// Build all systems
	for _, bundle := range w.bundles {
		if err := bundle.build(w.registry); err != nil {
			panic("airwar: failed to build systems: " + err.Error())
		}
	}

	// Schedule loops in bundle then registration order
	for _, bundle := range w.bundles {
		w.handlers = append(w.handlers, bundle.handlerMeta...)
		for i, reg := range bundle.loops {
			w.scheduler.addLoop(bundle.loopMeta[i], reg.system, reg.interval, reg.stage, reg.conditions)
		}
	}

	for _, bundle := range w.bundles {
		for i, sys := range bundle.startup {
			if err := w.scheduler.runOnce(bundle.startupMeta[i], sys); err != nil {
				panic("airwar: startup failed: " + err.Error())
			}
		}
	}

	w.log.Debug("airwar: world initialized",
		"bundles", len(w.bundles),
		"components", w.registry.count(),
		"entities", len(w.entities))

	return w
}

// Scheduler returns the world's scheduler.
func (w *World) Scheduler() *Scheduler {
	return w.scheduler
}

// Bundles returns the bundles registered with the world.
func (w *World) Bundles() []*Bundle {
	return w.bundles
}
