package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/airwar"
)

// Body is one collider as seen by a Detector.
type Body struct {
	Entity   *airwar.Entity
	Position mgl64.Vec3
	Radius   float64
}

// Detector finds overlapping bodies. Detect returns, for every body, the
// entities overlapping it, in body order. A body never overlaps itself and
// spheres that only touch do not overlap.
type Detector interface {
	Detect(bodies []Body) [][]*airwar.Entity
}

// PairwiseDetector tests every ordered pair of bodies.
type PairwiseDetector struct{}

// Detect implements Detector.
func (PairwiseDetector) Detect(bodies []Body) [][]*airwar.Entity {
	result := make([][]*airwar.Entity, len(bodies))
	for i := range bodies {
		a := &bodies[i]
		for j := range bodies {
			if i == j {
				continue
			}
			b := &bodies[j]
			if a.Position.Sub(b.Position).Len() < a.Radius+b.Radius {
				result[i] = append(result[i], b.Entity)
			}
		}
	}
	return result
}

// DetectionSystem rebuilds every Collider's overlap set from the current
// transforms.
type DetectionSystem struct {
	World *airwar.World

	// Detector defaults to PairwiseDetector
	Detector Detector

	bodies []Body
}

func (s *DetectionSystem) Run() {
	w := s.World
	entities := w.Query(airwar.Mask[Transform](w).Or(airwar.Mask[Collider](w)), airwar.Bitmask{})

	s.bodies = s.bodies[:0]
	for _, e := range entities {
		s.bodies = append(s.bodies, Body{
			Entity:   e,
			Position: airwar.Get[Transform](e).Translation,
			Radius:   airwar.Get[Collider](e).Radius,
		})
	}

	detector := s.Detector
	if detector == nil {
		detector = PairwiseDetector{}
	}
	overlaps := detector.Detect(s.bodies)

	for i, body := range s.bodies {
		c := airwar.Get[Collider](body.Entity)
		c.Overlapping = append(c.Overlapping[:0], overlaps[i]...)
	}
	clear(s.bodies)
}

// ResolutionSystem applies the consequences of the overlaps found this tick.
// Hostiles are processed in spawn order and their overlaps in detection
// order; the first consequence processed wins.
type ResolutionSystem struct {
	World    *airwar.World
	Commands *airwar.Commands
}

func (s *ResolutionSystem) Run() {
	w := s.World

	var status *Status
	player, _, ok := airwar.Single[Player](w)
	if ok {
		status = airwar.Get[Status](player)
	}

	hostiles := w.Query(
		airwar.Mask[Hostile](w).Or(airwar.Mask[Collider](w)).Or(airwar.Mask[Status](w)),
		airwar.Mask[Player](w),
	)
	for _, h := range hostiles {
		collider := airwar.Get[Collider](h)
		for _, x := range collider.Overlapping {
			// Hostile against hostile has no effect
			if x.Despawned() || airwar.Has[Hostile](x) {
				continue
			}

			if status != nil {
				// A dead player freezes every further consequence
				if status.Health == 0 {
					return
				}
				s.Commands.Despawn(h)
				status.Score++
				w.Dispatch(h, &HostileDestroyed{Hostile: h, By: x, Score: status.Score})
			}

			if status != nil && x == player {
				status.Health--
				s.Commands.Despawn(h)
				w.Dispatch(player, &PlayerHit{Health: status.Health})
			}
		}
	}
}
