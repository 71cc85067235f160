package game

import (
	"github.com/oriumgames/airwar"
)

// AccelerationSystem integrates acceleration into velocity.
type AccelerationSystem struct {
	Velocity     *Velocity `airwar:"mut"`
	Acceleration *Acceleration
	Time         *airwar.Time `airwar:"res"`
}

func (s *AccelerationSystem) Run() {
	s.Velocity.Value = s.Velocity.Value.Add(s.Acceleration.Value.Mul(s.Time.DeltaSeconds()))
}

// MovementSystem integrates velocity into translation.
type MovementSystem struct {
	Transform *Transform `airwar:"mut"`
	Velocity  *Velocity
	Time      *airwar.Time `airwar:"res"`
}

func (s *MovementSystem) Run() {
	s.Transform.Translation = s.Transform.Translation.Add(s.Velocity.Value.Mul(s.Time.DeltaSeconds()))
}

// FollowSystem keeps anchored entities at their offset from the parent,
// in the parent's frame.
type FollowSystem struct {
	Anchor    *Anchor
	Parent    *Transform `airwar:"rel"`
	Transform *Transform `airwar:"mut"`
}

func (s *FollowSystem) Run() {
	s.Transform.Rotation = s.Parent.Rotation
	s.Transform.Translation = s.Parent.Translation.Add(s.Parent.Rotation.Rotate(s.Anchor.Offset))
}

// SpinSystem rolls hostiles about their own Z axis.
type SpinSystem struct {
	Transform *Transform   `airwar:"mut"`
	Time      *airwar.Time `airwar:"res"`
	Config    *Config      `airwar:"res"`
	_         airwar.With[Hostile]
}

func (s *SpinSystem) Run() {
	s.Transform.RotateLocalZ(s.Config.HostileSpin * s.Time.DeltaSeconds())
}
