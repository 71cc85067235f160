// Package airwar provides the entity component engine behind the airwar
// arcade simulation.
//
// The engine provides:
//   - A World owning entities, components and resources
//   - Component-based data storage per entity, tags as zero-size components
//   - Declarative dependency injection via struct tags
//   - Weak relations between entities and parent/child despawn
//   - A five-stage tick scheduler with run conditions and deferred commands
//
// # Quick Start
//
//	bundle := airwar.NewBundle("movement").
//	    Resource(&Gravity{Y: -9.8}).
//	    Loop(&MovementSystem{}, 0, airwar.EntityUpdates)
//
//	w := airwar.NewBuilder().
//	    Bundle(bundle.Build()).
//	    Init()
//
//	w.Spawn(&Transform{}, &Velocity{})
//	if err := w.Tick(time.Second / 60); err != nil {
//	    return err
//	}
//
// # Components
//
// Components are plain Go structs attached to entities:
//
//	type Velocity struct {
//	    Value mgl64.Vec3
//	}
//
//	airwar.Add(e, &Velocity{})
//	v := airwar.Get[Velocity](e)
//	airwar.Remove[Velocity](e)
//
// # Systems
//
// Systems declare dependencies via struct tags. A system with an entity,
// component or phantom field runs once per matching entity; any other
// system runs once per tick:
//
//	type MovementSystem struct {
//	    Entity    *airwar.Entity
//	    Transform *Transform `airwar:"mut"`
//	    Velocity  *Velocity
//	    Time      *airwar.Time `airwar:"res"`
//	    Commands  *airwar.Commands
//	    _         airwar.Without[Frozen]
//	}
//
// # Tag Reference
//
//	(none)           Required read-only component
//	airwar:"mut"     Required mutable component
//	airwar:"opt"     Optional (nil if missing)
//	airwar:"opt,mut" Optional mutable
//	airwar:"rel"     Relation traversal through the previous component
//	airwar:"res"     World resource
//	airwar:"res,mut" Mutable resource
//
// Fields of any other type belong to the system and keep their value
// between runs.
package airwar

// Version is the engine version.
const Version = "1.0.0"
