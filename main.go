package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"tron/experiments"
	"tron/experiments/metrics"
	"tron/game"
	"tron/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	height := flag.Int("height", meta.HEIGHT, "Number of board rows")
	width := flag.Int("width", meta.WIDTH, "Number of board columns")
	turnTime := flag.Duration("turn-time", meta.TURN_TIME, "Search budget per action")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Turns after which a game is a draw")
	games := flag.Int("games", 1, "Number of games to play")
	p0 := flag.String("p0", experiments.KindSearch, "Agent for player 0: search, clockwise or random")
	p1 := flag.String("p1", experiments.KindSearch, "Agent for player 1: search, clockwise or random")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for scattered boards and random agents")
	walls := flag.Int("walls", 0, "Number of walls scattered on the board")
	powerUps := flag.Int("powerups", 0, "Number of power-ups scattered on the board")
	record := flag.String("record", "", "Directory to write game and move records to")
	quiet := flag.Bool("quiet", false, "Do not print the board after every turn")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if err := setLogLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logging")
	}

	settings := experiments.Settings{
		Name:     fmt.Sprintf("%s_vs_%s", *p0, *p1),
		Root:     *record,
		Height:   *height,
		Width:    *width,
		Games:    *games,
		MaxTurns: *maxTurns,
		Walls:    *walls,
		PowerUps: *powerUps,
		Seed:     *seed,
	}
	if !*quiet {
		settings.Observer = printBoard
	}

	agent0 := metrics.AgentConfig{ID: 0, Kind: *p0, TurnTime: *turnTime, Seed: *seed}
	agent1 := metrics.AgentConfig{ID: 1, Kind: *p1, TurnTime: *turnTime, Seed: *seed + 1}

	result, err := experiments.RunMatchUp(settings, agent0, agent1)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run games")
	}

	fmt.Printf("Player 0 won %d, player 1 won %d, %d draws\n", result.Wins[0], result.Wins[1], result.Draws)
	if result.Dir != "" {
		fmt.Printf("Records written to %s\n", result.Dir)
	}
}

func setLogLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func printBoard(turn, playerID int, actions []game.Action, board *game.Board) {
	fmt.Printf("Turn %d: player %d played %v\n%s\n", turn, playerID, actions, board)
}
