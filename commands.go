package airwar

// Commands buffers world mutations issued by systems. Buffered commands are
// applied in issue order when the current stage finishes, so every system of
// a stage observes the same set of entities.
//
// Usage:
//
//	type CleanupSystem struct {
//	    Entity   *airwar.Entity
//	    Commands *airwar.Commands
//	    _        airwar.With[Expired]
//	}
//
//	func (s *CleanupSystem) Run() {
//	    s.Commands.Despawn(s.Entity)
//	}
type Commands struct {
	world *World
	queue []func(*World)
}

func newCommands(w *World) *Commands {
	return &Commands{world: w, queue: make([]func(*World), 0, 16)}
}

// Despawn destroys the entity and its children at the end of the stage.
// Despawning the same entity more than once is harmless.
func (c *Commands) Despawn(e *Entity) {
	if e == nil {
		return
	}
	c.queue = append(c.queue, func(w *World) {
		w.Despawn(e)
	})
}

// Spawn creates an entity at the end of the stage.
func (c *Commands) Spawn(components ...any) {
	c.queue = append(c.queue, func(w *World) {
		w.Spawn(components...)
	})
}

// Exec runs fn against the world at the end of the stage.
func (c *Commands) Exec(fn func(*World)) {
	if fn == nil {
		return
	}
	c.queue = append(c.queue, fn)
}

// Len returns the number of pending commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// flush applies pending commands. Commands issued while flushing are applied
// in the same flush.
func (c *Commands) flush() {
	for i := 0; i < len(c.queue); i++ {
		c.queue[i](c.world)
		c.queue[i] = nil
	}
	c.queue = c.queue[:0]
}
