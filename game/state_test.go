package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/airwar"
)

func stateWorld(t *testing.T) *airwar.World {
	return buildWorld(t, StateBundle(), StatusBundle(), InputBundle())
}

func TestPauseToggle(t *testing.T) {
	w := stateWorld(t)
	spawnPlayer(w, mgl64.Vec3{}, 5, 3)
	in := airwar.Resource[Input](w)

	if CurrentPhase(w) != Running {
		t.Fatalf("initial phase = %v, want running", CurrentPhase(w))
	}

	in.Pause = true
	tick(t, w, 1)
	if CurrentPhase(w) != Paused {
		t.Fatalf("phase = %v after pause input, want paused", CurrentPhase(w))
	}

	// Edge triggered: no input, no change
	tick(t, w, 2)
	if CurrentPhase(w) != Paused {
		t.Fatalf("pause did not hold without input")
	}

	in.Pause = true
	tick(t, w, 1)
	if CurrentPhase(w) != Running {
		t.Fatalf("phase = %v after second toggle, want running", CurrentPhase(w))
	}
}

func TestGameOverLatches(t *testing.T) {
	w := stateWorld(t)
	player := spawnPlayer(w, mgl64.Vec3{}, 5, 1)
	status := airwar.Get[Status](player)
	status.Score = 12

	tick(t, w, 1)
	if CurrentPhase(w) != Running {
		t.Fatalf("game over with health left")
	}

	status.Health = 0
	tick(t, w, 1)
	g := airwar.Resource[GameOver](w)
	if !g.Over || !g.WasOver {
		t.Fatalf("GameOver = %+v, want both latches set", *g)
	}
	if !airwar.Resource[Pause](w).Paused {
		t.Fatalf("pause not forced at game over")
	}

	// Pause input is ignored and the summary is never recreated
	for range 5 {
		airwar.Resource[Input](w).Pause = true
		tick(t, w, 1)
	}
	if CurrentPhase(w) != Over || !airwar.Resource[Pause](w).Paused {
		t.Fatalf("left game over: phase %v", CurrentPhase(w))
	}

	summaries := w.Query(airwar.Mask[Summary](w), airwar.Bitmask{})
	if len(summaries) != 1 {
		t.Fatalf("%d summaries, want exactly 1", len(summaries))
	}
	snap := TakeSnapshot(w)
	if snap.Summary == nil || snap.Summary.Message != "You died!" || snap.Summary.Score != 12 {
		t.Fatalf("snapshot summary = %+v", snap.Summary)
	}
	if snap.SummaryID != summaries[0].UUID() {
		t.Fatalf("snapshot names the wrong summary entity")
	}
}

func TestGameOverNeedsPlayer(t *testing.T) {
	w := stateWorld(t)
	tick(t, w, 3)
	if CurrentPhase(w) != Running {
		t.Fatalf("phase = %v without a player, want running", CurrentPhase(w))
	}
}

func TestStatusDisplay(t *testing.T) {
	w := stateWorld(t)
	player := spawnPlayer(w, mgl64.Vec3{}, 5, 3)
	airwar.Get[Status](player).Score = 4

	tick(t, w, 1)
	snap := TakeSnapshot(w)
	if !snap.HUD || snap.Health != 3 || snap.Score != 4 {
		t.Fatalf("snapshot = %+v, want visible HUD with health 3, score 4", snap)
	}

	airwar.Resource[Input](w).ToggleStatus = true
	tick(t, w, 1)
	if TakeSnapshot(w).HUD {
		t.Fatalf("HUD still visible after toggle")
	}
}

func TestTallyCountsEvents(t *testing.T) {
	w := buildWorld(t, StateBundle(), CollisionBundle(nil), InputBundle())
	spawnPlayer(w, mgl64.Vec3{}, 5, 3)
	spawnHostile(w, mgl64.Vec3{3, 0, 0}, 2, 1)

	tick(t, w, 1)
	tally := airwar.Resource[Tally](w)
	if tally.HostilesDestroyed != 1 || tally.HitsTaken != 1 {
		t.Fatalf("tally = %+v, want 1 destroyed, 1 hit", *tally)
	}
}
