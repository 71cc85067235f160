package game

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/airwar"
)

const testTick = 100 * time.Millisecond

// buildWorld builds a world with the default config and only the given bundles.
func buildWorld(t *testing.T, bundles ...*airwar.Bundle) *airwar.World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 7
	b := airwar.NewBuilder().Resource(&cfg).Resource(&Assets{})
	for _, bundle := range bundles {
		b.Bundle(bundle.Build())
	}
	return b.Init()
}

func tick(t *testing.T, w *airwar.World, n int) {
	t.Helper()
	for range n {
		if err := w.Tick(testTick); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
}

func spawnPlayer(w *airwar.World, at mgl64.Vec3, radius float64, health uint32) *airwar.Entity {
	return w.Spawn(NewTransform(at), NewCollider(radius), NewStatus(health, 0), &Player{})
}

func spawnHostile(w *airwar.World, at mgl64.Vec3, radius float64, health uint32) *airwar.Entity {
	return w.Spawn(NewTransform(at), NewCollider(radius), NewStatus(health, HostileScore(health)), &Hostile{})
}

func spawnMissile(w *airwar.World, at mgl64.Vec3) *airwar.Entity {
	return w.Spawn(NewTransform(at), NewCollider(1), NewStatus(1, 0), &Projectile{})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}
