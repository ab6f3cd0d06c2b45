package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"
	"tron/agent"
	"tron/game"
	"tron/searcher"
)

// scripted replays a fixed sequence of actions.
type scripted struct {
	actions []game.Action
	calls   int
}

func (s *scripted) SelectAction(board *game.Board, playerID int) game.Action {
	action := s.actions[s.calls%len(s.actions)]
	s.calls++
	return action
}

func newBoard(t *testing.T, height, width int, options ...game.BoardOption) *game.Board {
	t.Helper()
	b, err := game.NewBoard(height, width, options...)
	if err != nil {
		t.Fatalf("expected a board, got %v", err)
	}
	return b
}

func newLocal(t *testing.T, b *game.Board, agents ...agent.Agent) *Local {
	t.Helper()
	e, err := NewLocal(b, agents)
	if err != nil {
		t.Fatalf("expected an engine, got %v", err)
	}
	return e
}

func TestNewLocal_AgentCount(t *testing.T) {
	_, err := NewLocal(newBoard(t, 3, 3), []agent.Agent{agent.NewClockwise()})
	if !errors.Is(err, ErrAgentCount) {
		t.Errorf("expected ErrAgentCount, got %v", err)
	}
}

func TestRunTurn_AlternatesPlayers(t *testing.T) {
	b := newBoard(t, 3, 3)
	e := newLocal(t, b,
		&scripted{actions: []game.Action{game.Right}},
		&scripted{actions: []game.Action{game.Up}},
	)

	playerID, actions, err := e.RunTurn()
	if err != nil || playerID != 0 || !reflect.DeepEqual(actions, []game.Action{game.Right}) {
		t.Fatalf("expected player 0 to play Right, got player=%d actions=%v err=%v", playerID, actions, err)
	}
	playerID, actions, err = e.RunTurn()
	if err != nil || playerID != 1 || !reflect.DeepEqual(actions, []game.Action{game.Up}) {
		t.Fatalf("expected player 1 to play Up, got player=%d actions=%v err=%v", playerID, actions, err)
	}

	if got := e.Board().String(); got != "#0*\n**1\n**#\n" {
		t.Errorf("unexpected board after two turns:\n%s", got)
	}
	if b.String() != "0**\n***\n**1\n" {
		t.Errorf("engine should not modify the board it was given")
	}
	if e.Turn() != 2 {
		t.Errorf("expected turn 2, got %d", e.Turn())
	}
}

func TestRunTurn_BoostGrantsTwoActions(t *testing.T) {
	b := newBoard(t, 3, 4, game.WithCell(game.NewPosition(0, 1), game.PowerUpState(game.NewDoubleSpeed(1))))
	e := newLocal(t, b,
		&scripted{actions: []game.Action{game.Right, game.Down, game.Down, game.Left, game.Up}},
		&scripted{actions: []game.Action{game.Up}},
	)

	_, actions, _ := e.RunTurn() // Picks up the boost
	if len(actions) != 1 {
		t.Fatalf("expected a single action before the boost, got %v", actions)
	}
	e.RunTurn()

	for turn := 2; turn <= 4; turn += 2 {
		_, actions, _ = e.RunTurn()
		if len(actions) != 2 {
			t.Errorf("turn %d: expected two actions while boosted, got %v", turn, actions)
		}
		e.RunTurn()
	}

	player, _ := e.Board().Player(0)
	if player.State.Position != game.NewPosition(1, 0) {
		t.Errorf("expected player 0 at (1, 0), got %s", player.State.Position)
	}
}

func TestRunTurn_InvalidActionEndsTurn(t *testing.T) {
	b := newBoard(t, 3, 3)
	e := newLocal(t, b,
		&scripted{actions: []game.Action{game.Up}},
		&scripted{actions: []game.Action{game.Up}},
	)

	playerID, actions, err := e.RunTurn()
	if err != nil {
		t.Fatalf("expected the turn to be skipped, got %v", err)
	}
	if playerID != 0 || len(actions) != 0 {
		t.Errorf("expected no actions for player 0, got %v", actions)
	}
	if e.Board() != b {
		t.Errorf("expected the board to stay the same")
	}
	if e.Phase() != Active {
		t.Errorf("expected the game to go on")
	}

	gameMetric, moves := e.Run()
	for _, move := range moves {
		if move.Player == 0 {
			t.Errorf("expected no moves recorded for rejected actions, got %+v", move)
		}
	}
	if gameMetric.TotalMoves != len(moves) {
		t.Errorf("expected %d total moves, got %d", len(moves), gameMetric.TotalMoves)
	}
}

func TestRunTurn_GameOver(t *testing.T) {
	b := newBoard(t, 2, 2)
	e := newLocal(t, b,
		&scripted{actions: []game.Action{game.Right}},
		&scripted{actions: []game.Action{game.Up}}, // Walks into player 0
	)

	e.RunTurn()
	e.RunTurn()

	if e.Phase() != Over {
		t.Fatalf("expected the game to be over")
	}
	if e.Winner() != 0 {
		t.Errorf("expected player 0 to win, got %d", e.Winner())
	}
	if !reflect.DeepEqual(e.Alive(), []int{0}) {
		t.Errorf("expected only player 0 alive, got %v", e.Alive())
	}

	_, _, err := e.RunTurn()
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestRun_StopsAtMaxTurns(t *testing.T) {
	b := newBoard(t, 10, 10)
	e, err := NewLocal(b, []agent.Agent{agent.NewClockwise(), agent.NewClockwise()}, WithMaxTurns(4))
	if err != nil {
		t.Fatal(err)
	}

	gameMetric, moves := e.Run()

	if gameMetric.Winner != NoWinner {
		t.Errorf("expected no winner, got %d", gameMetric.Winner)
	}
	if gameMetric.TotalTurns != 4 || len(moves) != 4 {
		t.Errorf("expected 4 turns and moves, got %d turns and %d moves", gameMetric.TotalTurns, len(moves))
	}
	if e.Phase() != Over {
		t.Errorf("expected the game to be stopped")
	}
}

func TestRun_PlaysToTheEnd(t *testing.T) {
	// Player 0 gets boxed in at the top right and passes, player 1 runs
	// into player 0's starting trail.
	b := newBoard(t, 2, 2)
	observed := 0
	e, err := NewLocal(b, []agent.Agent{agent.NewClockwise(), agent.NewClockwise()},
		WithObserver(func(turn, playerID int, actions []game.Action, board *game.Board) {
			observed++
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	gameMetric, moves := e.Run()

	if gameMetric.Winner != 0 {
		t.Errorf("expected player 0 to win, got %d", gameMetric.Winner)
	}
	if gameMetric.TotalTurns != 4 || len(moves) != 3 {
		t.Errorf("expected 4 turns and 3 moves, got %d turns and %d moves", gameMetric.TotalTurns, len(moves))
	}
	if observed != gameMetric.TotalTurns {
		t.Errorf("expected the observer to see %d turns, saw %d", gameMetric.TotalTurns, observed)
	}
}

func TestRun_RecordsSearchMetrics(t *testing.T) {
	b := newBoard(t, 4, 4)
	searching := searcher.NewBestFirst(searcher.WithTurnTime(10*time.Millisecond), searcher.WithMetrics())
	e, err := NewLocal(b, []agent.Agent{searching, agent.NewClockwise()}, WithMaxTurns(2))
	if err != nil {
		t.Fatal(err)
	}

	_, moves := e.Run()

	if len(moves) == 0 || moves[0].Player != 0 {
		t.Fatalf("expected a move from player 0, got %+v", moves)
	}
	if moves[0].Expansions == 0 || moves[0].Evaluations == 0 {
		t.Errorf("expected search metrics on the first move, got %+v", moves[0].SearchMetric)
	}
	if moves[1].Expansions != 0 {
		t.Errorf("expected no search metrics for a reactive agent, got %+v", moves[1].SearchMetric)
	}
}
