package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Config holds every gameplay tunable. It is added to the world as a
// resource by Install.
type Config struct {
	// TickRate is the simulated duration of one tick.
	TickRate time.Duration

	// Seed drives the hostile spawner. Zero picks a random seed.
	Seed uint64

	// DespawnDistance is how far from the player an entity may drift
	// before it is removed.
	DespawnDistance float64

	ShipStart         mgl64.Vec3
	ShipSpeed         float64
	ShipRotationSpeed float64
	ShipRollSpeed     float64
	ShipRadius        float64
	ShipHealth        uint32
	CameraOffset      mgl64.Vec3

	MissileSpeed         float64
	MissileSpawnDistance float64
	MissileRadius        float64
	MissileHealth        uint32

	SpawnInterval       time.Duration
	SpawnRangeX         [2]float64
	SpawnRangeZ         [2]float64
	HostileHealth       [2]uint32 // half-open; an empty range always yields the lower bound
	HostileSpeed        float64
	HostileAcceleration float64
	HostileSpin         float64
	HostileRadius       float64
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		TickRate:        time.Second / 60,
		DespawnDistance: 100,

		ShipStart:         mgl64.Vec3{0, 0, -20},
		ShipSpeed:         25,
		ShipRotationSpeed: 2.5,
		ShipRollSpeed:     2.5,
		ShipRadius:        5,
		ShipHealth:        3,
		CameraOffset:      mgl64.Vec3{0, 10, -30},

		MissileSpeed:         50,
		MissileSpawnDistance: 7.5,
		MissileRadius:        1,
		MissileHealth:        1,

		SpawnInterval:       time.Second,
		SpawnRangeX:         [2]float64{-25, 25},
		SpawnRangeZ:         [2]float64{0, 25},
		HostileHealth:       [2]uint32{1, 3},
		HostileSpeed:        5,
		HostileAcceleration: 1,
		HostileSpin:         2.5,
		HostileRadius:       2.5,
	}
}
