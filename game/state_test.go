package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Run("accepts empty and positive piles", func(t *testing.T) {
		s, err := NewState(0, 4)
		require.NoError(t, err)
		require.Equal(t, State{Red: 0, Blue: 4}, s)
	})

	t.Run("rejects negative piles", func(t *testing.T) {
		_, err := NewState(-1, 4)
		require.ErrorIs(t, err, ErrNegativePile)
		_, err = NewState(3, -2)
		require.ErrorIs(t, err, ErrNegativePile)
	})
}

func TestScore(t *testing.T) {
	t.Run("values red at 2 and blue at 3", func(t *testing.T) {
		for red := 0; red <= 6; red++ {
			for blue := 0; blue <= 6; blue++ {
				s := State{Red: red, Blue: blue}
				require.Equal(t, 2*red+3*blue, s.Score())
				require.GreaterOrEqual(t, s.Score(), 0, "Score should never be negative")
				require.Equal(t, red == 0 && blue == 0, s.Score() == 0,
					"Score should be zero only when both piles are empty")
			}
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("removes tokens from the chosen pile", func(t *testing.T) {
		s := State{Red: 5, Blue: 4}

		got, err := s.Apply(Move{Pile: Red, Count: 3})
		require.NoError(t, err)
		require.Equal(t, State{Red: 2, Blue: 4}, got)

		got, err = s.Apply(Move{Pile: Blue, Count: 1})
		require.NoError(t, err)
		require.Equal(t, State{Red: 5, Blue: 3}, got)

		require.Equal(t, State{Red: 5, Blue: 4}, s, "Original state should not change")
	})

	t.Run("can empty a pile exactly", func(t *testing.T) {
		got, err := State{Red: 2, Blue: 1}.Apply(Move{Pile: Red, Count: 2})
		require.NoError(t, err)
		require.Equal(t, 0, got.Red)
	})

	t.Run("rejects taking more than the pile holds", func(t *testing.T) {
		s := State{Red: 1, Blue: 2}

		got, err := s.Apply(Move{Pile: Blue, Count: 3})
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, s, got, "Illegal move should not be clamped")
	})

	t.Run("rejects counts outside one to three", func(t *testing.T) {
		s := State{Red: 9, Blue: 9}
		for _, count := range []int{-1, 0, 4} {
			_, err := s.Apply(Move{Pile: Red, Count: count})
			require.ErrorIs(t, err, ErrIllegalMove, "count %d", count)
		}
	})

	t.Run("never produces negative piles", func(t *testing.T) {
		for red := 0; red <= 4; red++ {
			for blue := 0; blue <= 4; blue++ {
				s := State{Red: red, Blue: blue}
				for _, m := range allMoves {
					got, err := s.Apply(m)
					if err != nil {
						continue
					}
					require.GreaterOrEqual(t, got.Red, 0)
					require.GreaterOrEqual(t, got.Blue, 0)
				}
			}
		}
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("lists red before blue in ascending count", func(t *testing.T) {
		got := State{Red: 5, Blue: 5}.LegalMoves()

		require.Equal(t, []Move{
			{Red, 1}, {Red, 2}, {Red, 3},
			{Blue, 1}, {Blue, 2}, {Blue, 3},
		}, got)
	})

	t.Run("skips moves the pile cannot afford", func(t *testing.T) {
		got := State{Red: 1, Blue: 2}.LegalMoves()

		require.Equal(t, []Move{{Red, 1}, {Blue, 1}, {Blue, 2}}, got)
	})

	t.Run("only red one from a single red token", func(t *testing.T) {
		require.Equal(t, []Move{{Red, 1}}, State{Red: 1}.LegalMoves())
	})

	t.Run("none when both piles are empty", func(t *testing.T) {
		require.Empty(t, State{}.LegalMoves())
	})
}

func TestSuccessors(t *testing.T) {
	moves, states := State{Red: 2, Blue: 1}.Successors()

	require.Equal(t, []Move{{Red, 1}, {Red, 2}, {Blue, 1}}, moves)
	require.Equal(t, []State{{1, 1}, {0, 1}, {2, 0}}, states)
}

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		state State
		want  bool
	}{
		{State{0, 0}, true},
		{State{0, 3}, true},
		{State{4, 0}, true},
		{State{1, 1}, false},
		{State{10, 10}, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.state.IsTerminal(), "state %v", c.state)
	}
}
