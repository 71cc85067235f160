package game

import (
	"log/slog"

	"github.com/oriumgames/airwar"
)

// HostileDestroyed is dispatched when a hostile is removed by a collision.
// By is the entity it collided with.
type HostileDestroyed struct {
	Hostile *airwar.Entity
	By      *airwar.Entity
	Score   uint32
}

// PlayerHit is dispatched when a hostile collides with the player.
type PlayerHit struct {
	Health uint32
}

// GameEnded is dispatched once, when the summary is created.
type GameEnded struct {
	Score uint32
	Tick  uint64
}

// TallyHandler keeps the Tally resource up to date and logs gameplay events.
type TallyHandler struct {
	Tally *Tally       `airwar:"res,mut"`
	Time  *airwar.Time `airwar:"res"`
}

func (h *TallyHandler) HandleHostileDestroyed(ev *HostileDestroyed) {
	h.Tally.HostilesDestroyed++
	slog.Debug("airwar: hostile destroyed", "hostile", ev.Hostile.ID(), "by", ev.By.ID(), "score", ev.Score, "tick", h.Time.Tick)
}

func (h *TallyHandler) HandlePlayerHit(ev *PlayerHit) {
	h.Tally.HitsTaken++
	slog.Info("airwar: spaceship hit", "health", ev.Health, "tick", h.Time.Tick)
}

func (h *TallyHandler) HandleGameEnded(ev *GameEnded) {
	slog.Info("airwar: game over",
		"score", ev.Score,
		"tick", ev.Tick,
		"destroyed", h.Tally.HostilesDestroyed,
		"hits", h.Tally.HitsTaken)
}
