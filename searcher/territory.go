package searcher

import "tron/game"

// claim records the first player to reach a cell and how many steps it took.
type claim struct {
	player int
	steps  int
}

type visit struct {
	position game.Position
	steps    int
}

// zoneControl returns playerID's territory minus the largest rival territory.
func zoneControl(board *game.Board, playerID int) int {
	scores := territories(board)
	own := scores[playerID]

	best, found := 0, false
	for id, score := range scores {
		if id == playerID {
			continue
		}
		if !found || score > best {
			best, found = score, true
		}
	}
	return own - best
}

// territories floods the grid from every living player at once, one step per
// round, and sums the value of the cells each player reaches first. Cells
// reached by two players in the same round count for both.
func territories(board *game.Board) []int {
	players := board.Players()
	scores := make([]int, len(players))
	frontiers := make([][]visit, len(players))
	queued := make([]map[game.Position]bool, len(players))
	claims := make(map[game.Position]claim)

	for id, player := range players {
		queued[id] = make(map[game.Position]bool)
		if player.IsAlive() {
			start := player.State.Position
			frontiers[id] = append(frontiers[id], visit{position: start})
			queued[id][start] = true
		}
	}

	for !exhausted(frontiers) {
		for id := range frontiers {
			round := len(frontiers[id])
			for i := 0; i < round; i++ {
				current := frontiers[id][0]
				frontiers[id] = frontiers[id][1:]
				delete(queued[id], current.position)

				value, ok := cellValue(board, current.position)
				if !ok {
					continue
				}

				if prior, seen := claims[current.position]; seen {
					if prior.steps < current.steps || prior.player == id {
						continue
					}
					if prior.steps > current.steps {
						scores[prior.player] -= value
					}
				} else {
					claims[current.position] = claim{player: id, steps: current.steps}
				}
				scores[id] += value

				for _, action := range game.Actions {
					next, err := action.Target(current.position)
					if err != nil {
						continue
					}
					if _, seen := claims[next]; seen || queued[id][next] {
						continue
					}
					frontiers[id] = append(frontiers[id], visit{position: next, steps: current.steps + 1})
					queued[id][next] = true
				}
			}
		}
	}
	return scores
}

// cellValue is the territory worth of the cell at position. Walls, trails and
// positions past the grid cannot be entered.
func cellValue(board *game.Board, position game.Position) (int, bool) {
	cell, err := board.Cell(position)
	if err != nil {
		return 0, false
	}
	switch state := cell.State(); state.Kind {
	case game.Empty:
		return game.EMPTY_VALUE, true
	case game.PowerUpCell:
		return state.PowerUp.Value(), true
	case game.Occupied:
		return game.OCCUPIED_VALUE, true
	default:
		return 0, false
	}
}

func exhausted(frontiers [][]visit) bool {
	for _, frontier := range frontiers {
		if len(frontier) > 0 {
			return false
		}
	}
	return true
}
