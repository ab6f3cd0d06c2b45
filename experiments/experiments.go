package experiments

import (
	"errors"
	"fmt"
	"tron/agent"
	"tron/engine"
	"tron/experiments/metrics"
	"tron/game"
	"tron/meta"
	"tron/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindSearch    = "search"
	KindClockwise = "clockwise"
	KindRandom    = "random"
)

var ErrUnknownKind = errors.New("unknown agent kind")

// Settings describes the games of a matchup. Boards are scattered with walls
// and power-ups from Seed plus the game index when either count is positive.
type Settings struct {
	Name     string
	Root     string // Records are only written when set
	Height   int
	Width    int
	Games    int
	MaxTurns int
	Walls    int
	PowerUps int
	Seed     uint64
	Observer engine.Observer
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  [2]int // Indexed by player ID
	Draws int
	Dir   string // Where the records were written, if anywhere
}

// NewAgent builds the agent a config describes. Search agents record metrics.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case KindSearch:
		return searcher.NewBestFirst(searcher.WithTurnTime(config.TurnTime), searcher.WithMetrics()), nil
	case KindClockwise:
		return agent.NewClockwise(), nil
	case KindRandom:
		return agent.NewRandom(config.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}
}

// RunMatchUp plays settings.Games games with agent0 as player 0 and agent1 as
// player 1. Agents are rebuilt for every game so no search cache carries over.
func RunMatchUp(settings Settings, agent0, agent1 metrics.AgentConfig) (*Result, error) {
	if settings.Games <= 0 {
		settings.Games = 1
	}
	if settings.Height <= 0 {
		settings.Height = meta.HEIGHT
	}
	if settings.Width <= 0 {
		settings.Width = meta.WIDTH
	}

	result := &Result{}
	log.Info().Msgf("starting %s matchup between agent0=%+v and agent1=%+v...", settings.Name, agent0, agent1)

	for i := 0; i < settings.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, settings.Games)

		gameMetric, moveMetrics, err := runGame(settings, uint64(i), agent0, agent1)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := i + 1
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         id,
			Agent0:     agent0.ID,
			Agent1:     agent1.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
		if gameMetric.Winner == engine.NoWinner {
			result.Draws++
		} else {
			result.Wins[gameMetric.Winner]++
		}

		log.Info().Msgf("completed game %d of %d with winner: %d", i+1, settings.Games, gameMetric.Winner)
	}

	log.Info().Msgf("completed %s matchup: %d-%d with %d draws", settings.Name, result.Wins[0], result.Wins[1], result.Draws)

	if settings.Root == "" {
		return result, nil
	}
	dir, err := store(settings, []metrics.AgentConfig{agent0, agent1}, result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

// runGame executes a single game between two agents
func runGame(settings Settings, index uint64, config0, config1 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	options := []game.BoardOption{}
	if settings.Walls > 0 || settings.PowerUps > 0 {
		options = append(options, game.WithScatter(settings.Seed+index, settings.Walls, settings.PowerUps, meta.BOOST_DURATION))
	}
	board, err := game.NewBoard(settings.Height, settings.Width, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	// Random agents vary between games of the same matchup
	config0.Seed += index
	config1.Seed += index
	agent0, err := NewAgent(config0)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent1, err := NewAgent(config1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	engineOptions := []engine.Option{engine.WithMaxTurns(settings.MaxTurns)}
	if settings.Observer != nil {
		engineOptions = append(engineOptions, engine.WithObserver(settings.Observer))
	}
	e, err := engine.NewLocal(board, []agent.Agent{agent0, agent1}, engineOptions...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func store(settings Settings, configs []metrics.AgentConfig, result *Result) (string, error) {
	writer, err := metrics.NewWriter(settings.Root, settings.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
