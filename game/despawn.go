package game

import (
	"github.com/oriumgames/airwar"
)

// RelevanceSystem removes entities that drifted too far from the player,
// along with their children. Without a player it does nothing.
type RelevanceSystem struct {
	World    *airwar.World
	Commands *airwar.Commands
	Config   *Config `airwar:"res"`
}

func (s *RelevanceSystem) Run() {
	w := s.World
	player, _, ok := airwar.Single[Player](w)
	if !ok {
		return
	}
	origin := airwar.Get[Transform](player)
	if origin == nil {
		return
	}

	for _, e := range w.Query(airwar.Mask[Transform](w), airwar.Mask[Player](w)) {
		if airwar.Get[Transform](e).Distance(origin) > s.Config.DespawnDistance {
			s.Commands.Despawn(e)
		}
	}
}
