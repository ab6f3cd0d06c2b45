package agent

import (
	"tron/game"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns an agent that picks uniformly among safe actions.
func NewRandom(seed uint64) Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) SelectAction(board *game.Board, playerID int) game.Action {
	actions := safeActions(board, playerID)
	if len(actions) == 0 {
		return game.Up
	}
	return actions[r.rng.Intn(len(actions))]
}
