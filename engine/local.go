package engine

import (
	"fmt"
	"time"
	"tron/agent"
	"tron/experiments/metrics"
	"tron/game"
	"tron/meta"
	"tron/utils"

	"github.com/rs/zerolog/log"
)

// Observer is called after every turn with the actions that were applied.
type Observer func(turn, playerID int, actions []game.Action, board *game.Board)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// Local runs a game in-process, asking each player's agent for actions in
// turn and applying them to the authoritative board.
type Local struct {
	board    *game.Board
	agents   []agent.Agent // Indexed by player ID
	phase    Phase
	turn     int
	alive    []int
	winner   int
	maxTurns int
	observer Observer
	moves    []metrics.MoveMetric
}

func NewLocal(board *game.Board, agents []agent.Agent, options ...Option) (*Local, error) {
	players := board.Players()
	if len(players) != len(agents) {
		return nil, fmt.Errorf("%w: %d agents for %d players", ErrAgentCount, len(agents), len(players))
	}

	alive := []int{}
	for _, player := range players {
		if player.IsAlive() {
			alive = append(alive, player.ID)
		}
	}

	e := &Local{
		board:    board,
		agents:   agents,
		phase:    Active,
		alive:    alive,
		winner:   NoWinner,
		maxTurns: meta.MAX_TURNS,
		observer: func(int, int, []game.Action, *game.Board) {},
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

func (e *Local) Board() *game.Board {
	return e.board
}

func (e *Local) Phase() Phase {
	return e.phase
}

func (e *Local) Turn() int {
	return e.turn
}

// Winner returns the last surviving player, or NoWinner while the game is on
// or when it ended in a draw.
func (e *Local) Winner() int {
	return e.winner
}

func (e *Local) Alive() []int {
	return append([]int(nil), e.alive...)
}

// RunTurn lets the player whose turn it is act once, or twice while it holds
// a boost. An action the board rejects ends the player's turn early. Dead
// players' turns are skipped.
func (e *Local) RunTurn() (int, []game.Action, error) {
	if e.phase == Over {
		return 0, nil, ErrGameOver
	}

	turn := e.turn
	active := turn % len(e.agents)
	e.turn++
	if utils.FindIndex(e.alive, active) < 0 {
		return active, nil, nil
	}

	player, err := e.board.Player(active)
	if err != nil {
		return active, nil, err
	}
	count := 1
	if player.State.Boost > 0 {
		count = 2
	}

	actions := []game.Action{}
	for i := 0; i < count; i++ {
		action := e.agents[active].SelectAction(e.board, active)

		next, err := e.board.ApplyAction(active, action)
		if err != nil {
			log.Warn().Err(err).Msgf("player %d cannot play %s, ending its turn", active, action)
			break
		}
		e.record(turn, active, action)
		e.board = next
		actions = append(actions, action)

		if player, _ := next.Player(active); !player.IsAlive() {
			e.eliminate(active)
			break
		}
	}

	e.observer(turn, active, actions, e.board)
	return active, actions, nil
}

func (e *Local) eliminate(playerID int) {
	e.alive = utils.Remove(e.alive, playerID)
	log.Info().Msgf("player %d has been eliminated", playerID)

	switch len(e.alive) {
	case 0:
		e.phase = Over
	case 1:
		e.phase = Over
		e.winner = e.alive[0]
	}
}

func (e *Local) record(turn, playerID int, action game.Action) {
	move := metrics.MoveMetric{Turn: turn, Player: playerID, Action: action.String()}
	if reporter, ok := e.agents[playerID].(agent.Reporter); ok {
		move.SearchMetric = reporter.LastSearch()
	}
	e.moves = append(e.moves, move)
}

// Run plays turns until the game is over or the turn limit is reached.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	log.Info().Msgf("starting a %dx%d game between %d players", e.board.Height(), e.board.Width(), len(e.agents))

	for e.phase == Active && e.turn < e.maxTurns {
		playerID, actions, err := e.RunTurn()
		if err != nil {
			log.Error().Err(err).Msgf("turn %d failed", e.turn)
			break
		}
		log.Debug().Msgf("turn %d: player %d played %v", e.turn-1, playerID, actions)
	}

	if e.phase == Active {
		log.Info().Msgf("stopped after %d turns without a winner", e.turn)
		e.phase = Over
	} else {
		log.Info().Msgf("game over after %d turns, winner: %d", e.turn, e.winner)
	}

	end := time.Now()
	return metrics.GameMetric{
		Winner:     e.winner,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalTurns: e.turn,
		TotalMoves: len(e.moves),
	}, e.moves
}
