package game

import (
	"log/slog"

	"github.com/oriumgames/airwar"
)

// SpawnSpaceship creates the player ship and its camera.
type SpawnSpaceship struct {
	World  *airwar.World
	Config *Config `airwar:"res"`
	Assets *Assets `airwar:"res"`
}

func (s *SpawnSpaceship) Run() {
	cfg := s.Config
	ship := s.World.Spawn(
		NewTransform(cfg.ShipStart),
		&Velocity{},
		&Acceleration{},
		NewCollider(cfg.ShipRadius),
		NewStatus(cfg.ShipHealth, 0),
		&Model{Handle: s.Assets.Spaceship},
		&Player{},
	)

	anchor := &Anchor{Offset: cfg.CameraOffset}
	anchor.Parent.Set(ship)
	s.World.SpawnChild(ship,
		NewTransform(cfg.ShipStart.Add(cfg.CameraOffset)),
		anchor,
		&Camera{},
	)

	slog.Debug("airwar: spaceship spawned", "uuid", ship.UUID(), "translation", cfg.ShipStart)
}

// ShipControlSystem steers the ship from the held movement inputs.
type ShipControlSystem struct {
	Transform *Transform   `airwar:"mut"`
	Velocity  *Velocity    `airwar:"mut"`
	Input     *Input       `airwar:"res"`
	Config    *Config      `airwar:"res"`
	Time      *airwar.Time `airwar:"res"`
	_         airwar.With[Player]
}

func (s *ShipControlSystem) Run() {
	in, cfg, dt := s.Input, s.Config, s.Time.DeltaSeconds()

	var movement, rotation, roll float64
	switch {
	case in.Forward:
		movement = cfg.ShipSpeed
	case in.Backward:
		movement = -cfg.ShipSpeed
	}
	switch {
	case in.Left:
		rotation = cfg.ShipRotationSpeed * dt
	case in.Right:
		rotation = -cfg.ShipRotationSpeed * dt
	}
	switch {
	case in.RollLeft:
		roll = -cfg.ShipRollSpeed * dt
	case in.RollRight:
		roll = cfg.ShipRollSpeed * dt
	}

	s.Transform.RotateY(rotation)
	s.Transform.RotateLocalZ(roll)
	s.Velocity.Value = s.Transform.Forward().Mul(-movement)
}

// WeaponSystem fires a missile on the fire input.
type WeaponSystem struct {
	Transform *Transform
	Commands  *airwar.Commands
	Input     *Input  `airwar:"res"`
	Config    *Config `airwar:"res"`
	Assets    *Assets `airwar:"res"`
	_         airwar.With[Player]
}

func (s *WeaponSystem) Run() {
	if !s.Input.Fire {
		return
	}
	cfg := s.Config
	forward := s.Transform.Forward()
	s.Commands.Spawn(
		NewTransform(s.Transform.Translation.Sub(forward.Mul(cfg.MissileSpawnDistance))),
		&Velocity{Value: forward.Mul(-cfg.MissileSpeed)},
		&Acceleration{},
		NewCollider(cfg.MissileRadius),
		NewStatus(cfg.MissileHealth, 0),
		&Model{Handle: s.Assets.Missile},
		&Projectile{},
	)
}

// ShieldSystem raises the shield while the shield input is held. The tag is
// attached when the stage ends so later loops of the stage see the old mask.
type ShieldSystem struct {
	Entity   *airwar.Entity
	Commands *airwar.Commands
	Input    *Input `airwar:"res"`
	_      airwar.With[Player]
	_      airwar.Without[Shield]
}

func (s *ShieldSystem) Run() {
	if !s.Input.Shield {
		return
	}
	e := s.Entity
	s.Commands.Exec(func(*airwar.World) {
		airwar.Add(e, &Shield{})
	})
}
