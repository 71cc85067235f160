package game

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/oriumgames/airwar"
)

// Phase is the top-level state of a run.
type Phase int

const (
	Running Phase = iota
	Paused
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "game over"
	default:
		return "unknown"
	}
}

// CurrentPhase derives the phase from the Pause and GameOver resources.
func CurrentPhase(w *airwar.World) Phase {
	if g := airwar.Resource[GameOver](w); g != nil && g.Over {
		return Over
	}
	if p := airwar.Resource[Pause](w); p != nil && p.Paused {
		return Paused
	}
	return Running
}

// Unpaused is the run condition of every gameplay loop.
func Unpaused(w *airwar.World) bool {
	p := airwar.Resource[Pause](w)
	return p == nil || !p.Paused
}

// Ended holds once the game-over latch is set.
func Ended(w *airwar.World) bool {
	g := airwar.Resource[GameOver](w)
	return g != nil && g.Over
}

// PauseSystem toggles the pause flag. After game over the flag is forced on.
type PauseSystem struct {
	Pause    *Pause    `airwar:"res,mut"`
	GameOver *GameOver `airwar:"res"`
	Input    *Input    `airwar:"res"`
}

func (s *PauseSystem) Run() {
	if s.GameOver.Over {
		s.Pause.Paused = true
		return
	}
	if s.Input.Pause {
		s.Pause.Paused = !s.Pause.Paused
		slog.Debug("airwar: pause toggled", "paused", s.Pause.Paused)
	}
}

// GameOverSystem latches game over once the player's health is zero.
type GameOverSystem struct {
	World    *airwar.World
	GameOver *GameOver `airwar:"res,mut"`
	Pause    *Pause    `airwar:"res,mut"`
}

func (s *GameOverSystem) Run() {
	if !s.GameOver.Over {
		if _, status, ok := playerStatus(s.World); ok && status.Health == 0 {
			s.GameOver.Over = true
			slog.Debug("airwar: game over latched", "score", status.Score)
		}
	}
	if s.GameOver.Over {
		s.Pause.Paused = true
	}
}

// SummarySystem creates the end-of-run display exactly once.
type SummarySystem struct {
	World    *airwar.World
	GameOver *GameOver    `airwar:"res,mut"`
	Time     *airwar.Time `airwar:"res"`
}

func (s *SummarySystem) Run() {
	if s.GameOver.WasOver {
		return
	}
	s.GameOver.WasOver = true

	var score uint32
	if _, status, ok := playerStatus(s.World); ok {
		score = status.Score
	}
	e := s.World.Spawn(&Summary{Message: "You died!", Score: score})
	s.GameOver.Summary.Set(e)
	s.World.Dispatch(e, &GameEnded{Score: score, Tick: s.Time.Tick})
}

// StatusDisplaySystem copies the player's counters into the HUD model and
// flips its visibility on the status toggle.
type StatusDisplaySystem struct {
	World   *airwar.World
	Display *StatusDisplay `airwar:"res,mut"`
	Input   *Input         `airwar:"res"`
}

func (s *StatusDisplaySystem) Run() {
	_, status, ok := playerStatus(s.World)
	if !ok {
		return
	}
	s.Display.Health = status.Health
	s.Display.Score = status.Score
	if s.Input.ToggleStatus {
		s.Display.Visible = !s.Display.Visible
	}
}

// DebugSystem logs the ship's state on the debug input.
type DebugSystem struct {
	Entity    *airwar.Entity
	Transform *Transform
	Status    *Status
	Input     *Input `airwar:"res"`
	_         airwar.With[Player]
}

func (s *DebugSystem) Run() {
	if !s.Input.Debug {
		return
	}
	slog.Info("airwar: spaceship",
		"uuid", s.Entity.UUID(),
		"translation", s.Transform.Translation,
		"health", s.Status.Health,
		"score", s.Status.Score)
}

// InputResetSystem clears the input once the tick has consumed it.
type InputResetSystem struct {
	Input *Input `airwar:"res,mut"`
}

func (s *InputResetSystem) Run() {
	s.Input.Reset()
}

// playerStatus returns the single player and its status.
func playerStatus(w *airwar.World) (*airwar.Entity, *Status, bool) {
	player, _, ok := airwar.Single[Player](w)
	if !ok {
		return nil, nil, false
	}
	status := airwar.Get[Status](player)
	return player, status, status != nil
}

// Snapshot is what the presentation layer draws.
type Snapshot struct {
	Phase     Phase
	Health    uint32
	Score     uint32
	HUD       bool
	Entities  int
	Destroyed uint32

	// Summary is set once the run has ended.
	Summary   *Summary
	SummaryID uuid.UUID
}

// TakeSnapshot reads the presentation state out of the world.
func TakeSnapshot(w *airwar.World) Snapshot {
	snap := Snapshot{
		Phase:    CurrentPhase(w),
		Entities: w.Len(),
	}
	if d := airwar.Resource[StatusDisplay](w); d != nil {
		snap.Health, snap.Score, snap.HUD = d.Health, d.Score, d.Visible
	}
	if t := airwar.Resource[Tally](w); t != nil {
		snap.Destroyed = t.HostilesDestroyed
	}
	if g := airwar.Resource[GameOver](w); g != nil {
		if e, summary, ok := airwar.Resolve(&g.Summary); ok {
			snap.Summary = summary
			snap.SummaryID = e.UUID()
		}
	}
	return snap
}
