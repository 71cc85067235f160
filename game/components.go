package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/airwar"
)

// Transform is the world position and orientation of an entity.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// NewTransform returns an unrotated transform at translation.
func NewTransform(translation mgl64.Vec3) *Transform {
	return &Transform{Translation: translation, Rotation: mgl64.QuatIdent()}
}

// Forward returns the direction the entity faces (local -Z).
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// RotateY rotates the entity about the world Y axis.
func (t *Transform) RotateY(angle float64) {
	if angle == 0 {
		return
	}
	t.Rotation = mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Mul(t.Rotation).Normalize()
}

// RotateLocalZ rolls the entity about its own Z axis.
func (t *Transform) RotateLocalZ(angle float64) {
	if angle == 0 {
		return
	}
	t.Rotation = t.Rotation.Mul(mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})).Normalize()
}

// Distance returns the Euclidean distance between two translations.
func (t *Transform) Distance(other *Transform) float64 {
	return t.Translation.Sub(other.Translation).Len()
}

// Velocity is the change of translation per second.
type Velocity struct {
	Value mgl64.Vec3
}

// Acceleration is the change of velocity per second.
type Acceleration struct {
	Value mgl64.Vec3
}

// Collider is a bounding sphere centered on the entity's translation.
// Overlapping lists the entities whose spheres intersected this one during
// the last detection pass, in detection order.
type Collider struct {
	Radius      float64
	Overlapping []*airwar.Entity
}

// NewCollider returns a collider with no overlaps.
func NewCollider(radius float64) *Collider {
	return &Collider{Radius: radius}
}

// Overlaps reports whether e was found overlapping during the last pass.
func (c *Collider) Overlaps(e *airwar.Entity) bool {
	for _, o := range c.Overlapping {
		if o == e {
			return true
		}
	}
	return false
}

// Status holds the health and score counters of a damageable entity.
type Status struct {
	Health uint32
	Score  uint32
}

// NewStatus returns a status with the given counters.
func NewStatus(health, score uint32) *Status {
	return &Status{Health: health, Score: score}
}

// HostileScore is the score value a hostile carries at spawn.
// Tougher hostiles are worth more.
func HostileScore(health uint32) uint32 {
	if health == 0 {
		return 0
	}
	return 2*health - 1
}

// Player marks the player-controlled spaceship.
type Player struct{}

// Hostile marks an asteroid.
type Hostile struct{}

// Projectile marks a missile fired by the player.
type Projectile struct{}

// Shield marks a player with its shield raised.
type Shield struct{}

// Camera marks the camera attached to the player.
type Camera struct{}

// Anchor keeps an entity at a fixed offset from another entity's transform.
type Anchor struct {
	Parent airwar.Relation[Transform]
	Offset mgl64.Vec3
}

// Model carries the opaque asset handle an entity is drawn with.
type Model struct {
	Handle any
}

// Summary is the end-of-run display.
type Summary struct {
	Message string
	Score   uint32
}
