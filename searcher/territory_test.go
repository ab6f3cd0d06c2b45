package searcher

import (
	"testing"
	"tron/game"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, height, width int, options ...game.BoardOption) *game.Board {
	t.Helper()
	b, err := game.NewBoard(height, width, options...)
	require.NoError(t, err)
	return b
}

func at(row, column int) game.Position {
	return game.NewPosition(row, column)
}

func TestTerritories(t *testing.T) {
	t.Run("splits an open corridor evenly", func(t *testing.T) {
		b := mustBoard(t, 1, 4)

		require.Equal(t, []int{1, 1}, territories(b))
	})

	t.Run("walls cut a player off", func(t *testing.T) {
		b := mustBoard(t, 1, 5, game.WithCell(at(0, 3), game.WallState()))

		require.Equal(t, []int{2, 0}, territories(b))
	})

	t.Run("trails block like walls", func(t *testing.T) {
		b := mustBoard(t, 1, 5, game.WithCell(at(0, 1), game.OwnedBy(1)))

		require.Equal(t, []int{0, 2}, territories(b))
	})

	t.Run("power-ups are worth more than empty cells", func(t *testing.T) {
		b := mustBoard(t, 1, 4,
			game.WithCell(at(0, 1), game.PowerUpState(game.NewBomb())),
			game.WithCell(at(0, 2), game.PowerUpState(game.NewArmor())),
		)

		require.Equal(t, []int{game.BOMB_VALUE, game.ARMOR_VALUE}, territories(b))
	})

	t.Run("cells reached in the same round count for both", func(t *testing.T) {
		b := mustBoard(t, 1, 3, game.WithCell(at(0, 1), game.PowerUpState(game.NewDoubleSpeed(1))))

		require.Equal(t, []int{game.DOUBLE_SPEED_VALUE, game.DOUBLE_SPEED_VALUE}, territories(b))
	})

	t.Run("dead players claim nothing", func(t *testing.T) {
		b := mustBoard(t, 2, 3, game.WithCell(at(0, 1), game.WallState()))
		b, err := b.ApplyAction(0, game.Right)
		require.NoError(t, err)

		scores := territories(b)

		require.Equal(t, 0, scores[0])
		require.Equal(t, 3, scores[1], "Survivor should reach every open cell")
	})
}

func TestHeuristic(t *testing.T) {
	t.Run("a dead player scores the minimum", func(t *testing.T) {
		b := mustBoard(t, 1, 3, game.WithCell(at(0, 1), game.WallState()))
		b, err := b.ApplyAction(0, game.Right)
		require.NoError(t, err)

		require.Equal(t, MinScore, Heuristic(b, 0))
		require.Equal(t, MaxScore, Heuristic(b, 1))
	})

	t.Run("scores territory difference", func(t *testing.T) {
		b := mustBoard(t, 1, 5, game.WithCell(at(0, 3), game.WallState()))

		require.Equal(t, 2, Heuristic(b, 0))
		require.Equal(t, -2, Heuristic(b, 1))
	})

	t.Run("is zero-sum for two living players", func(t *testing.T) {
		b := mustBoard(t, 8, 9, game.WithScatter(3, 10, 8, 1))
		for turn := 0; turn < 6; turn++ {
			require.Equal(t, Heuristic(b, 0), -Heuristic(b, 1), "turn %d\n%s", turn, b)

			playerID := turn % 2
			for _, action := range game.Actions {
				next, err := b.ApplyAction(playerID, action)
				if err != nil {
					continue
				}
				if player, _ := next.Player(playerID); player.IsAlive() {
					b = next
					break
				}
			}
		}
	})
}

func TestScoreCache(t *testing.T) {
	b := mustBoard(t, 1, 5, game.WithCell(at(0, 3), game.WallState()))
	cache := newScoreCache()

	score, cached := cache.score(b, 0)
	require.Equal(t, 2, score)
	require.False(t, cached)

	score, cached = cache.score(b, 0)
	require.Equal(t, 2, score)
	require.True(t, cached, "Second lookup should hit the cache")

	score, cached = cache.score(b, 1)
	require.Equal(t, -2, score)
	require.False(t, cached, "Players should be cached separately")
	require.Equal(t, 2, cache.len())
}
