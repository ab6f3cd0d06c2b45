package engine

import (
	"errors"
	"tron/experiments/metrics"
)

// NoWinner is reported when a game stops without a single survivor.
const NoWinner = -1

var (
	ErrGameOver   = errors.New("game is over - no moves allowed")
	ErrAgentCount = errors.New("number of agents does not match number of players")
)

type Phase int

const (
	Active Phase = iota
	Over
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
