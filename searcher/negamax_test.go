package searcher

import (
	"testing"

	"connect/experiments/metrics"
	"connect/game"

	"github.com/stretchr/testify/require"
)

func TestDropOrderIsCenterOut(t *testing.T) {
	require.Equal(t, []int{3, 4, 2, 5, 1, 6, 0}, dropOrder(7))
	require.Equal(t, []int{1, 2, 0, 3}, dropOrder(4))
	require.Equal(t, []int{0}, dropOrder(1))
}

// exhaustive is a reference full-width lookahead with no pruning,
// mirroring evaluate's contract: the opponent of player is on move at the
// current node and the returned value is from player's perspective.
func exhaustive(st *game.State, player game.Cell, plies, depth int) int {
	if plies == depth {
		return st.Goodness(player)
	}

	other := player.Other()
	best := -maxScore
	for column := 0; column < st.Index().Geom.Width; column++ {
		child := game.NewState(st.Index())
		child.CopyFrom(st)
		if _, ok := child.Drop(other, column); !ok {
			continue
		}

		var goodness int
		if child.Winner() == other {
			goodness = maxScore - (depth + 1)
		} else {
			goodness = exhaustive(child, other, plies, depth+1)
		}
		if goodness > best {
			best = goodness
		}
	}
	return -best
}

func TestPruningMatchesExhaustiveSearch(t *testing.T) {
	live := newLiveState(4, 4, 3)
	live.Drop(game.Player0, 1)
	live.Drop(game.Player1, 2)

	n := New(live, WithSeed(7))
	const plies = 4

	for _, column := range n.order {
		st := n.stack.push()
		if _, dropped := st.Drop(game.Player0, column); !dropped {
			n.stack.pop()
			continue
		}
		if st.Winner() == game.Player0 {
			n.stack.pop()
			continue
		}

		want := exhaustive(st, game.Player0, plies, 1)
		got := n.evaluate(game.Player0, plies, -maxScore, maxScore)
		require.Equal(t, want, got,
			"pruned search should compute the same value as the exhaustive search for column %d", column)

		n.stack.pop()
	}
}

func TestEvaluateSeesImmediateLoss(t *testing.T) {
	// Player 0 has an open three on the bottom row; with player 1 to move
	// inside the lookahead, every line of play where the threat stands
	// still ends in a player 0 win, so evaluating for player 0 after a
	// non-blocking move must still come out heavily positive.
	live := newLiveState(7, 6, 4)
	live.Drop(game.Player0, 1)
	live.Drop(game.Player1, 6)
	live.Drop(game.Player0, 2)
	live.Drop(game.Player1, 6)
	live.Drop(game.Player0, 3)
	// Threat: columns 0 and 4 both complete the row for player 0.

	n := New(live, WithSeed(1))
	st := n.stack.push()
	_, dropped := st.Drop(game.Player0, 5)
	require.True(t, dropped)

	// A double-ended threat cannot be blocked: the value must be a
	// depth-penalized win for player 0.
	got := n.evaluate(game.Player0, 4, -maxScore, maxScore)
	require.Greater(t, got, maxScore-int(MaxPlies)-1,
		"an unstoppable double threat should evaluate as a forced win")
	n.stack.pop()
}

func TestSearchMetricsAreConsistent(t *testing.T) {
	collector := metrics.NewCollector()
	live := newLiveState(7, 6, 4)
	live.Drop(game.Player0, 0) // off-center, so the opening shortcut is off

	n := New(live, WithSeed(3), WithMetrics(collector))
	_, _, ok := n.FindMove(game.Player1, 3)
	require.True(t, ok)

	m := collector.Last()
	require.Equal(t, 3, m.Plies)
	require.Positive(t, m.Nodes)
	require.GreaterOrEqual(t, m.Nodes, m.Leaves, "every leaf is also a node")
	require.Positive(t, m.Leaves, "a depth-3 search must reach leaves")
}

func TestPollCallbackFires(t *testing.T) {
	live := newLiveState(7, 6, 4)
	live.Drop(game.Player0, 0)

	n := New(live, WithSeed(2))
	calls := 0
	n.SetPoll(func() { calls++ }, 0) // zero interval polls at every node
	_, _, ok := n.FindMove(game.Player1, 4)
	require.True(t, ok)
	require.Positive(t, calls, "the poll callback should run during the search")
}
