package game

import (
	"math/rand/v2"

	"github.com/oriumgames/airwar"
)

// Pause is the user-controlled pause flag.
type Pause struct {
	Paused bool
}

// GameOver records the end of the run. Over latches once the player's
// health reaches zero; WasOver latches once the summary has been created.
type GameOver struct {
	Over    bool
	WasOver bool
	Summary airwar.Relation[Summary]
}

// Input is the player intent sampled for the current tick. The driver sets
// fields before a tick; every field is cleared when the tick ends.
type Input struct {
	Forward   bool
	Backward  bool
	Left      bool
	Right     bool
	RollLeft  bool
	RollRight bool
	Shield    bool

	Fire         bool
	Pause        bool
	Debug        bool
	ToggleStatus bool
}

// Reset clears every signal.
func (in *Input) Reset() {
	*in = Input{}
}

// StatusDisplay is the HUD model: the player's counters as last seen and
// whether the HUD is shown.
type StatusDisplay struct {
	Visible bool
	Health  uint32
	Score   uint32
}

// Tally counts gameplay events for the end-of-run report.
type Tally struct {
	HostilesDestroyed uint32
	HitsTaken         uint32
}

// Assets holds the opaque model handles supplied by the host.
type Assets struct {
	Spaceship any
	Asteroid  any
	Missile   any
}

// Random is the seeded source used by the spawner.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a source seeded with seed, or a random seed when zero.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		return &Random{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Range returns a value in [lo, hi).
func (r *Random) Range(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// RangeUint returns a value in [lo, hi). An empty range yields lo.
func (r *Random) RangeUint(lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Uint32N(hi-lo)
}
