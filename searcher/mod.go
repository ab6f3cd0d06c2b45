package searcher

import (
	"math"
	"tron/game"
)

// Scores for decided games, from the evaluating player's perspective
const MaxScore = math.MaxInt
const MinScore = math.MinInt

// Heuristic scores board for playerID: MinScore if the player is dead,
// MaxScore if every rival is dead, otherwise the zone control difference.
func Heuristic(board *game.Board, playerID int) int {
	players := board.Players()
	if playerID < 0 || playerID >= len(players) || !players[playerID].IsAlive() {
		return MinScore
	}
	rivalsAlive := false
	for _, player := range players {
		if player.ID != playerID && player.IsAlive() {
			rivalsAlive = true
		}
	}
	if !rivalsAlive {
		return MaxScore
	}
	return zoneControl(board, playerID)
}

// opponent returns the rival of playerID on a two-player board.
func opponent(playerID int) int {
	return 1 - playerID
}
