package airwar

// Stage represents a scheduling stage for system execution.
// Every tick runs the stages in declaration order:
// UserInput → EntityUpdates → CollisionDetection → DespawnEntities → GameOver.
// A stage finishes all of its systems, and its deferred commands are applied,
// before the next stage starts.
type Stage int

const (
	// UserInput samples player intent: pause toggles, steering, firing.
	UserInput Stage = iota

	// EntityUpdates advances the simulation: spawning, acceleration, movement.
	EntityUpdates

	// CollisionDetection rebuilds overlap sets from post-movement positions.
	CollisionDetection

	// DespawnEntities applies collision consequences and removes entities
	// that are no longer relevant.
	DespawnEntities

	// GameOver evaluates the end-of-run condition against final health.
	GameOver

	// stageCount is the total number of stages.
	stageCount
)

// Stages returns every stage in execution order.
func Stages() []Stage {
	return []Stage{UserInput, EntityUpdates, CollisionDetection, DespawnEntities, GameOver}
}

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case UserInput:
		return "UserInput"
	case EntityUpdates:
		return "EntityUpdates"
	case CollisionDetection:
		return "CollisionDetection"
	case DespawnEntities:
		return "DespawnEntities"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
