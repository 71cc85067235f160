package airwar

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

type frozen struct{}

type link struct {
	Target Relation[position]
}

func TestSpawnAndComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(&position{X: 1, Y: 2})

	if p := Get[position](e); p == nil || p.X != 1 || p.Y != 2 {
		t.Fatalf("Get[position] = %v, want {1 2}", p)
	}
	if Has[velocity](e) {
		t.Fatalf("Has[velocity] = true before Add")
	}

	Add(e, &velocity{DX: 3})
	if v := Get[velocity](e); v == nil || v.DX != 3 {
		t.Fatalf("Get[velocity] = %v, want DX 3", v)
	}

	Remove[velocity](e)
	if Has[velocity](e) || Get[velocity](e) != nil {
		t.Fatalf("velocity still present after Remove")
	}
	if !strings.Contains(e.String(), "position") {
		t.Fatalf("String() = %q, want it to name position", e.String())
	}
}

func TestEntityLookup(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(&position{})
	b := w.Spawn(&position{})

	if a.ID() >= b.ID() {
		t.Fatalf("ids not increasing: %d then %d", a.ID(), b.ID())
	}
	if w.Entity(b.ID()) != b {
		t.Fatalf("Entity(%d) did not return b", b.ID())
	}
	if w.EntityByUUID(a.UUID()) != a {
		t.Fatalf("EntityByUUID did not return a")
	}

	w.Despawn(a)
	if w.Entity(a.ID()) != nil || w.EntityByUUID(a.UUID()) != nil {
		t.Fatalf("despawned entity still reachable")
	}
}

func TestDespawnIsRecursive(t *testing.T) {
	w := NewWorld()
	parent := w.Spawn(&position{})
	child := w.SpawnChild(parent, &position{})
	grandchild := w.SpawnChild(child, &position{})
	other := w.Spawn(&position{})

	w.Despawn(parent)

	for _, e := range []*Entity{parent, child, grandchild} {
		if !e.Despawned() {
			t.Fatalf("entity %d survived its ancestor", e.ID())
		}
		if Has[position](e) {
			t.Fatalf("entity %d kept its components", e.ID())
		}
	}
	if w.Len() != 1 || w.Entities()[0] != other {
		t.Fatalf("Entities() = %v, want only the unrelated entity", w.Entities())
	}

	// Twice is harmless
	w.Despawn(parent)
}

func TestDespawnChildDetaches(t *testing.T) {
	w := NewWorld()
	parent := w.Spawn(&position{})
	child := w.SpawnChild(parent, &position{})
	if child.Parent() != parent {
		t.Fatalf("child.Parent() = %v, want parent", child.Parent())
	}

	w.Despawn(child)
	if child.Parent() != nil {
		t.Fatalf("despawned child still points at its parent")
	}
	if len(parent.Children()) != 0 {
		t.Fatalf("parent still lists %d children", len(parent.Children()))
	}
	if parent.Despawned() {
		t.Fatalf("despawning a child despawned the parent")
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(&position{}, &velocity{})
	w.Spawn(&position{})
	c := w.Spawn(&position{}, &velocity{})
	w.Spawn(&position{}, &velocity{}, &frozen{})

	got := w.Query(Mask[position](w).Or(Mask[velocity](w)), Mask[frozen](w))
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("Query returned %v, want [a c] in spawn order", got)
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	if _, _, ok := Single[frozen](w); ok {
		t.Fatalf("Single ok on an unregistered component")
	}

	e := w.Spawn(&frozen{}, &position{X: 4})
	got, _, ok := Single[frozen](w)
	if !ok || got != e {
		t.Fatalf("Single = %v, %v, want e, true", got, ok)
	}

	w.Spawn(&frozen{})
	if _, _, ok := Single[frozen](w); ok {
		t.Fatalf("Single ok with two candidates")
	}
}

func TestRelation(t *testing.T) {
	w := NewWorld()
	target := w.Spawn(&position{X: 9})
	l := &link{}
	l.Target.Set(target)
	w.Spawn(l)

	if _, p, ok := Resolve(&l.Target); !ok || p.X != 9 {
		t.Fatalf("Resolve = %v, %v, want X 9", p, ok)
	}

	l.Target.Clear()
	if l.Target.Get() != nil || l.Target.Valid() {
		t.Fatalf("relation still resolves after Clear")
	}

	l.Target.Set(target)
	w.Despawn(target)
	if l.Target.Get() != nil || l.Target.Valid() {
		t.Fatalf("relation still resolves after its target was despawned")
	}
}

func TestResources(t *testing.T) {
	w := NewWorld()
	if Resource[position](w) != nil {
		t.Fatalf("Resource returned a value before AddResource")
	}
	w.AddResource(&position{X: 5})
	if r := Resource[position](w); r == nil || r.X != 5 {
		t.Fatalf("Resource[position] = %v, want X 5", r)
	}
	if Resource[Time](w) == nil {
		t.Fatalf("the clock resource is missing")
	}
}

func TestSpawnRejectsNonPointer(t *testing.T) {
	w := NewWorld()
	defer func() {
		if recover() == nil {
			t.Fatalf("Spawn accepted a non-pointer component")
		}
	}()
	w.Spawn(position{})
}

func TestTickAdvancesClock(t *testing.T) {
	w := NewWorld()
	for range 3 {
		if err := w.Tick(10 * time.Millisecond); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	clock := w.Time()
	if clock.Tick != 3 || clock.Elapsed != 30*time.Millisecond || clock.Delta != 10*time.Millisecond {
		t.Fatalf("clock = %+v, want tick 3, elapsed 30ms, delta 10ms", *clock)
	}
}

func TestBuilderOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewBuilder(WithLogger(logger), WithTickRate(5*time.Millisecond)).
		Bundle(NewBundle("empty").Build()).
		Init()

	if w.Logger() != logger {
		t.Fatalf("Logger() is not the configured logger")
	}
	if w.TickRate() != 5*time.Millisecond {
		t.Fatalf("TickRate() = %v, want 5ms", w.TickRate())
	}
	if b := w.Bundles(); len(b) != 1 || b[0].Name() != "empty" {
		t.Fatalf("Bundles() = %v, want [empty]", b)
	}

	// Zero and nil leave the defaults
	d := NewWorld(WithLogger(nil), WithTickRate(0))
	if d.TickRate() != DefaultTickRate || d.Logger() == nil {
		t.Fatalf("defaults lost: tick rate %v", d.TickRate())
	}
}
