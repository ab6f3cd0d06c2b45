package searcher

import (
	"container/heap"
	"time"
	"tron/experiments/metrics"
	"tron/game"
	"tron/meta"

	"github.com/rs/zerolog/log"
)

type Option func(b *BestFirst)

// BestFirst picks actions by expanding the most promising boards first until
// its turn time runs out. Each expansion tries every action and assumes the
// opponent answers with the reply that is worst for us.
type BestFirst struct {
	turnTime time.Duration
	cache    *scoreCache
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

func WithTurnTime(turnTime time.Duration) Option {
	return func(b *BestFirst) {
		if turnTime > 0 {
			b.turnTime = turnTime
		}
	}
}

func WithMetrics() Option {
	return func(b *BestFirst) {
		b.metrics = metrics.NewCollector()
	}
}

func NewBestFirst(options ...Option) *BestFirst {
	b := &BestFirst{ // Default values
		turnTime: meta.TURN_TIME,
		cache:    newScoreCache(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// SelectAction returns the action with the best worst-case score found within
// the turn time, or Up when every action loses.
func (b *BestFirst) SelectAction(board *game.Board, playerID int) game.Action {
	start := time.Now()
	b.metrics.Start(b.turnTime)
	rival := opponent(playerID)

	queue := &frontier{}
	heap.Push(queue, &node{scores: []int{b.evaluate(board, playerID)}, state: board})

	bestAction := game.Up
	bestScore := MinScore
	decisive := false

search:
	for queue.Len() > 0 && time.Since(start) < b.turnTime {
		current := heap.Pop(queue).(*node)
		b.metrics.AddExpansion()

		for _, action := range game.Actions {
			afterUs, err := current.state.ApplyAction(playerID, action)
			if err != nil {
				continue
			}
			if player, _ := afterUs.Player(playerID); !player.IsAlive() {
				continue
			}

			// The rival passes when its move is invalid
			var worst *game.Board
			worstScore := MaxScore
			for i, reply := range game.Actions {
				afterThem, err := afterUs.ApplyAction(rival, reply)
				if err != nil {
					afterThem = afterUs
				}
				score := b.evaluate(afterThem, playerID)
				if i == 0 || score < worstScore {
					worst, worstScore = afterThem, score
				}
			}

			next := current.child(action, worstScore, worst)
			if worstScore > bestScore {
				bestAction, bestScore = next.actions[0], worstScore
				log.Debug().
					Int("player", playerID).
					Stringer("action", bestAction).
					Int("score", bestScore).
					Int("depth", len(next.actions)).
					Msg("search improved")

				if worstScore == MaxScore {
					decisive = true
					break search
				}
			}

			heap.Push(queue, next)
			b.metrics.ReachDepth(len(next.actions))
		}
	}

	b.last = b.metrics.Complete(bestScore, decisive, b.cache.len())
	log.Debug().
		Int("player", playerID).
		Stringer("action", bestAction).
		Int("score", bestScore).
		Bool("decisive", decisive).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")
	return bestAction
}

func (b *BestFirst) evaluate(board *game.Board, playerID int) int {
	score, cached := b.cache.score(board, playerID)
	b.metrics.AddEvaluation(cached)
	return score
}

// LastSearch returns statistics about the most recent SelectAction call. It
// is empty unless the searcher was built WithMetrics.
func (b *BestFirst) LastSearch() metrics.SearchMetric {
	return b.last
}
