package agent

import (
	"tron/experiments/metrics"
	"tron/game"
)

type Agent interface {
	// SelectAction chooses the next action for playerID without modifying board
	SelectAction(board *game.Board, playerID int) game.Action
}

// Reporter is implemented by agents that record statistics about their last
// decision.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

// safeActions returns the actions, in clockwise order, that are valid for
// playerID and leave it alive.
func safeActions(board *game.Board, playerID int) []game.Action {
	var actions []game.Action
	for _, action := range game.Actions {
		next, err := board.ApplyAction(playerID, action)
		if err != nil {
			continue
		}
		if player, _ := next.Player(playerID); player.IsAlive() {
			actions = append(actions, action)
		}
	}
	return actions
}
