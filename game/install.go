package game

import (
	"github.com/oriumgames/airwar"
)

// StateBundle owns the pause flag and the game-over machine. It must be
// installed first so the pause transition runs ahead of every gated loop.
func StateBundle() *airwar.Bundle {
	return airwar.NewBundle("state").
		Resource(&Pause{}).
		Resource(&GameOver{}).
		Resource(&Tally{}).
		Handler(&TallyHandler{}).
		Loop(&PauseSystem{}, 0, airwar.UserInput).
		Loop(&GameOverSystem{}, 0, airwar.GameOver).
		Loop(&SummarySystem{}, 0, airwar.GameOver, Ended)
}

// SpaceshipBundle spawns the player and maps input onto it.
func SpaceshipBundle() *airwar.Bundle {
	return airwar.NewBundle("spaceship").
		Startup(&SpawnSpaceship{}).
		Loop(&ShipControlSystem{}, 0, airwar.UserInput, Unpaused).
		Loop(&WeaponSystem{}, 0, airwar.UserInput, Unpaused).
		Loop(&ShieldSystem{}, 0, airwar.UserInput, Unpaused)
}

// HostileBundle spawns and spins asteroids.
func HostileBundle(cfg Config) *airwar.Bundle {
	return airwar.NewBundle("hostiles").
		Resource(NewRandom(cfg.Seed)).
		Loop(&SpawnerSystem{}, cfg.SpawnInterval, airwar.EntityUpdates, Unpaused).
		Loop(&SpinSystem{}, 0, airwar.EntityUpdates, Unpaused)
}

// MovementBundle integrates motion and carries anchored children along.
func MovementBundle() *airwar.Bundle {
	return airwar.NewBundle("movement").
		Loop(&AccelerationSystem{}, 0, airwar.EntityUpdates, Unpaused).
		Loop(&MovementSystem{}, 0, airwar.EntityUpdates, Unpaused).
		Loop(&FollowSystem{}, 0, airwar.EntityUpdates, Unpaused)
}

// CollisionBundle detects overlaps and resolves them. A nil detector uses
// PairwiseDetector.
func CollisionBundle(detector Detector) *airwar.Bundle {
	return airwar.NewBundle("collisions").
		Loop(&DetectionSystem{Detector: detector}, 0, airwar.CollisionDetection, Unpaused).
		Loop(&ResolutionSystem{}, 0, airwar.DespawnEntities, Unpaused)
}

// DespawnBundle removes entities that are no longer relevant.
func DespawnBundle() *airwar.Bundle {
	return airwar.NewBundle("despawn").
		Loop(&RelevanceSystem{}, 0, airwar.DespawnEntities, Unpaused)
}

// StatusBundle feeds the HUD and the debug print.
func StatusBundle() *airwar.Bundle {
	return airwar.NewBundle("status").
		Resource(&StatusDisplay{Visible: true}).
		Loop(&DebugSystem{}, 0, airwar.CollisionDetection).
		Loop(&StatusDisplaySystem{}, 0, airwar.GameOver)
}

// InputBundle clears the input at the end of every tick. It must be
// installed last.
func InputBundle() *airwar.Bundle {
	return airwar.NewBundle("input").
		Resource(&Input{}).
		Loop(&InputResetSystem{}, 0, airwar.GameOver)
}

// Install registers the whole game with b.
func Install(b *airwar.Builder, cfg Config, assets Assets) *airwar.Builder {
	return b.
		Resource(&cfg).
		Resource(&assets).
		Bundle(StateBundle().Build()).
		Bundle(SpaceshipBundle().Build()).
		Bundle(HostileBundle(cfg).Build()).
		Bundle(MovementBundle().Build()).
		Bundle(CollisionBundle(nil).Build()).
		Bundle(DespawnBundle().Build()).
		Bundle(StatusBundle().Build()).
		Bundle(InputBundle().Build())
}

// New builds a ready-to-tick world running the game.
func New(cfg Config, assets Assets, opts ...airwar.Option) *airwar.World {
	opts = append([]airwar.Option{airwar.WithTickRate(cfg.TickRate)}, opts...)
	return Install(airwar.NewBuilder(opts...), cfg, assets).Init()
}
