package searcher

import (
	"fmt"
	"time"

	"connect/game"

	"github.com/rs/zerolog/log"
)

// standardOpening reports whether the known-optimal opening shortcut
// applies: on a standard 7x6 connect-4 board with at most one piece down,
// and any piece already down sitting in the center column, the center
// column is the proven best move (Allis, "A Knowledge-based Approach of
// Connect-Four", 1988).
func standardOpening(st *game.State) bool {
	g := st.Index().Geom
	if g.Width != 7 || g.Height != 6 || g.Connect != 4 {
		return false
	}
	if st.Pieces() >= 2 {
		return false
	}
	return st.Pieces() == 0 || st.Board()[3][0] != game.Empty
}

// FindMove picks the best column for player looking plies moves ahead and
// permanently plays it on the live state. It returns false only when every
// column is full. Among columns whose lookahead values tie, the choice is
// uniformly random: the k-th tied column replaces the current pick with
// probability 1/k, which keeps every tied column equally likely without
// remembering them all.
func (n *Negamax) FindMove(player game.Cell, plies int) (column, row int, ok bool) {
	if plies < 1 || plies > MaxPlies {
		panic(fmt.Sprintf("search depth %d out of range 1..%d", plies, MaxPlies))
	}
	if n.stack.depth != 0 {
		panic("FindMove entered with a speculative state on the stack")
	}
	live := n.stack.top()

	if standardOpening(live) {
		row, _ = live.Drop(player, 3)
		return 3, row, true
	}

	n.metrics.Start(plies)
	bestColumn := -1
	bestWorst := -maxScore
	ties := 0

	// Try a drop in every playable column and look ahead from each.
	for _, candidate := range n.order {
		st := n.stack.push()
		if _, dropped := st.Drop(player, candidate); !dropped {
			n.stack.pop()
			continue
		}

		// Nothing beats winning on the spot.
		if st.Winner() == player {
			bestColumn = candidate
			n.stack.pop()
			break
		}

		n.nextPoll = time.Now().Add(n.pollInterval)
		goodness := n.evaluate(player, plies, -maxScore, -bestWorst)

		if goodness > bestWorst {
			bestWorst = goodness
			bestColumn = candidate
			ties = 1
		} else if goodness == bestWorst {
			ties++
			if n.rng.Intn(ties) == 0 {
				bestColumn = candidate
			}
		}

		n.stack.pop()
	}

	metric := n.metrics.Complete()
	log.Debug().
		Int("plies", plies).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	if bestColumn < 0 {
		return -1, -1, false
	}
	row, _ = live.Drop(player, bestColumn)
	return bestColumn, row, true
}
