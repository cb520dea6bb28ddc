package agent

import (
	"bytes"
	"testing"

	"nim/game"
	"nim/searcher"

	"github.com/stretchr/testify/require"
)

func TestSearchFindMove(t *testing.T) {
	t.Run("plays and announces the minimax move", func(t *testing.T) {
		var out bytes.Buffer
		a := NewSearchAgent(searcher.NewMinimax(game.NewStandardRules(), searcher.WithDepth(3)), &out)

		got, err := a.FindMove(game.State{Red: 10, Blue: 10})

		require.NoError(t, err)
		require.Equal(t, game.Move{Pile: game.Red, Count: 1}, got)
		require.Equal(t, "Computer removes 1 red tokens.\n", out.String())
		require.Len(t, a.Metrics(), 1)
	})

	t.Run("reports no legal move", func(t *testing.T) {
		var out bytes.Buffer
		a := NewSearchAgent(searcher.NewMinimax(game.NewStandardRules()), &out)

		_, err := a.FindMove(game.State{})

		require.ErrorIs(t, err, game.ErrNoLegalMove)
		require.Equal(t, "No valid moves available for computer.\n", out.String())
		require.Empty(t, a.Metrics())
	})
}

func TestRandomFindMove(t *testing.T) {
	t.Run("always legal", func(t *testing.T) {
		a := NewRandomAgent(7)
		for i := 0; i < 200; i++ {
			s := game.State{Red: i % 4, Blue: 1 + i%3}
			got, err := a.FindMove(s)
			require.NoError(t, err)
			require.True(t, s.CanApply(got), "move %v from %v", got, s)
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		a, b := NewRandomAgent(42), NewRandomAgent(42)
		s := game.State{Red: 9, Blue: 9}
		for i := 0; i < 20; i++ {
			ma, err := a.FindMove(s)
			require.NoError(t, err)
			mb, err := b.FindMove(s)
			require.NoError(t, err)
			require.Equal(t, ma, mb)
		}
	})

	t.Run("reports no legal move", func(t *testing.T) {
		_, err := NewRandomAgent(1).FindMove(game.State{})
		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})
}
