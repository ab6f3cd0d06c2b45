package searcher

import "tron/game"

type cacheKey struct {
	board  string // Board.String()
	player int
}

// scoreCache memoizes Heuristic for the lifetime of one controller. Entries
// are never evicted.
type scoreCache struct {
	scores map[cacheKey]int
}

func newScoreCache() *scoreCache {
	return &scoreCache{scores: make(map[cacheKey]int)}
}

// score returns the heuristic value of board for playerID and whether it was
// already cached.
func (c *scoreCache) score(board *game.Board, playerID int) (int, bool) {
	key := cacheKey{board: board.String(), player: playerID}
	if score, ok := c.scores[key]; ok {
		return score, true
	}
	score := Heuristic(board, playerID)
	c.scores[key] = score
	return score, false
}

func (c *scoreCache) len() int {
	return len(c.scores)
}
