package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/airwar"
)

func TestPairwiseDetectorThreshold(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		ra, rb   float64
		want     bool
	}{
		{"inside", 3, 5, 2, true},
		{"tangent", 7, 5, 2, false},
		{"apart", 7.5, 5, 2, false},
		{"just inside", 6.999, 5, 2, true},
		{"concentric", 0, 1, 1, true},
	}

	w := airwar.NewWorld()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := w.Spawn(&Player{}), w.Spawn(&Hostile{})
			bodies := []Body{
				{Entity: a, Position: mgl64.Vec3{0, 0, 0}, Radius: tt.ra},
				{Entity: b, Position: mgl64.Vec3{tt.distance, 0, 0}, Radius: tt.rb},
			}
			got := PairwiseDetector{}.Detect(bodies)
			if (len(got[0]) == 1) != tt.want || (len(got[1]) == 1) != tt.want {
				t.Fatalf("overlaps = %v, want mutual overlap %v", got, tt.want)
			}
			if tt.want && (got[0][0] != b || got[1][0] != a) {
				t.Fatalf("overlaps name the wrong entities")
			}
		})
	}
}

func TestPairwiseDetectorExcludesSelf(t *testing.T) {
	w := airwar.NewWorld()
	e := w.Spawn(&Player{})
	got := PairwiseDetector{}.Detect([]Body{{Entity: e, Radius: 10}})
	if len(got[0]) != 0 {
		t.Fatalf("a body overlaps itself: %v", got[0])
	}
}

func TestDetectionReplacesOverlaps(t *testing.T) {
	w := buildWorld(t, CollisionBundle(nil))
	a := w.Spawn(NewTransform(mgl64.Vec3{0, 0, 0}), NewCollider(1))
	b := w.Spawn(NewTransform(mgl64.Vec3{1, 0, 0}), NewCollider(1))
	c := w.Spawn(NewTransform(mgl64.Vec3{0, 1.5, 0}), NewCollider(1))

	tick(t, w, 1)
	ca := airwar.Get[Collider](a)
	if len(ca.Overlapping) != 2 || ca.Overlapping[0] != b || ca.Overlapping[1] != c {
		t.Fatalf("a overlaps %v, want [b c]", ca.Overlapping)
	}
	if !airwar.Get[Collider](b).Overlaps(a) || !airwar.Get[Collider](c).Overlaps(a) {
		t.Fatalf("overlap is not mutual")
	}

	airwar.Get[Transform](b).Translation = mgl64.Vec3{50, 0, 0}
	tick(t, w, 1)
	if ca.Overlaps(b) {
		t.Fatalf("stale overlap with b survived the next pass")
	}
	if len(airwar.Get[Collider](b).Overlapping) != 0 {
		t.Fatalf("b still lists overlaps after moving away")
	}
	if !ca.Overlaps(c) {
		t.Fatalf("a lost its overlap with c")
	}
}

func TestHostileHitsPlayer(t *testing.T) {
	w := buildWorld(t, CollisionBundle(nil))
	player := spawnPlayer(w, mgl64.Vec3{}, 5, 3)
	hostile := spawnHostile(w, mgl64.Vec3{3, 0, 0}, 2, 1)

	tick(t, w, 1)

	if !hostile.Despawned() {
		t.Fatalf("hostile survived the collision")
	}
	status := airwar.Get[Status](player)
	if status.Score != 1 {
		t.Fatalf("score = %d, want 1", status.Score)
	}
	if status.Health != 2 {
		t.Fatalf("health = %d, want 2", status.Health)
	}
}

func TestMissileDestroysHostile(t *testing.T) {
	w := buildWorld(t, CollisionBundle(nil))
	player := spawnPlayer(w, mgl64.Vec3{0, 0, -20}, 5, 3)
	hostile := spawnHostile(w, mgl64.Vec3{0, 0, 10}, 2.5, 2)
	missile := spawnMissile(w, mgl64.Vec3{0, 0, 8})

	tick(t, w, 1)

	if !hostile.Despawned() {
		t.Fatalf("hostile survived the missile")
	}
	if missile.Despawned() {
		t.Fatalf("missile was removed by the hit")
	}
	status := airwar.Get[Status](player)
	if status.Score != 1 || status.Health != 3 {
		t.Fatalf("status = %+v, want score 1, health 3", *status)
	}
}

func TestHostilesIgnoreEachOther(t *testing.T) {
	w := buildWorld(t, CollisionBundle(nil))
	player := spawnPlayer(w, mgl64.Vec3{0, 0, -50}, 5, 3)
	a := spawnHostile(w, mgl64.Vec3{0, 0, 0}, 2.5, 1)
	b := spawnHostile(w, mgl64.Vec3{1, 0, 0}, 2.5, 1)

	tick(t, w, 1)

	if a.Despawned() || b.Despawned() {
		t.Fatalf("overlapping hostiles destroyed each other")
	}
	if s := airwar.Get[Status](player); s.Score != 0 || s.Health != 3 {
		t.Fatalf("status changed to %+v", *s)
	}
}

func TestResolutionWithoutPlayer(t *testing.T) {
	w := buildWorld(t, CollisionBundle(nil))
	hostile := spawnHostile(w, mgl64.Vec3{}, 2.5, 1)
	missile := spawnMissile(w, mgl64.Vec3{1, 0, 0})

	tick(t, w, 1)

	if hostile.Despawned() || missile.Despawned() {
		t.Fatalf("resolution acted without a player")
	}
}

func TestFirstLethalHitFreezesResolution(t *testing.T) {
	w := buildWorld(t, CollisionBundle(nil))
	player := spawnPlayer(w, mgl64.Vec3{}, 5, 1)
	first := spawnHostile(w, mgl64.Vec3{4, 0, 0}, 2, 1)
	second := spawnHostile(w, mgl64.Vec3{-4, 0, 0}, 2, 1)

	tick(t, w, 1)

	status := airwar.Get[Status](player)
	if status.Health != 0 {
		t.Fatalf("health = %d, want 0", status.Health)
	}
	if status.Score != 1 {
		t.Fatalf("score = %d, want 1", status.Score)
	}
	if !first.Despawned() {
		t.Fatalf("the first hostile survived")
	}
	if second.Despawned() {
		t.Fatalf("the second hostile was resolved after the lethal hit")
	}

	// Further ticks change nothing
	tick(t, w, 3)
	if status.Health != 0 || status.Score != 1 || second.Despawned() {
		t.Fatalf("resolution continued after death: %+v", *status)
	}
}

func TestHostileScore(t *testing.T) {
	for health, want := range map[uint32]uint32{0: 0, 1: 1, 2: 3, 3: 5} {
		if got := HostileScore(health); got != want {
			t.Errorf("HostileScore(%d) = %d, want %d", health, got, want)
		}
	}
}
