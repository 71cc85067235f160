package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/airwar"
)

// SpawnerSystem creates one hostile per run. It is scheduled on
// Config.SpawnInterval.
type SpawnerSystem struct {
	Commands *airwar.Commands
	Config   *Config `airwar:"res"`
	Random   *Random `airwar:"res,mut"`
	Assets   *Assets `airwar:"res"`
}

func (s *SpawnerSystem) Run() {
	cfg, r := s.Config, s.Random

	translation := mgl64.Vec3{
		r.Range(cfg.SpawnRangeX[0], cfg.SpawnRangeX[1]),
		0,
		r.Range(cfg.SpawnRangeZ[0], cfg.SpawnRangeZ[1]),
	}
	velocity := planar(r).Mul(cfg.HostileSpeed)
	acceleration := planar(r).Mul(cfg.HostileAcceleration)
	health := r.RangeUint(cfg.HostileHealth[0], cfg.HostileHealth[1])

	s.Commands.Spawn(
		NewTransform(translation),
		&Velocity{Value: velocity},
		&Acceleration{Value: acceleration},
		NewCollider(cfg.HostileRadius),
		NewStatus(health, HostileScore(health)),
		&Model{Handle: s.Assets.Asteroid},
		&Hostile{},
	)
}

// planar returns a random unit vector in the XZ plane, or zero.
func planar(r *Random) mgl64.Vec3 {
	v := mgl64.Vec3{r.Range(-1, 1), 0, r.Range(-1, 1)}
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return mgl64.Vec3{}
}
