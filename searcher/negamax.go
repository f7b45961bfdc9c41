package searcher

import (
	"time"

	"connect/experiments/metrics"
	"connect/game"

	"golang.org/x/exp/rand"
)

// Negamax searches the game tree for one game. It owns the state stack and
// the column visiting order, and must only be used from a single
// goroutine; its one suspension point is the poll callback.
type Negamax struct {
	stack   *stack
	order   []int // columns, center first then alternating outward
	rng     *rand.Rand
	metrics metrics.Collector

	pollFunc     func()
	pollInterval time.Duration
	nextPoll     time.Time
}

type Option func(*Negamax)

// WithSeed fixes the random source used to break ties between equally
// good columns.
func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics records node and cutoff counts into collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(n *Negamax) {
		if collector != nil {
			n.metrics = collector
		}
	}
}

// New builds a searcher rooted at the live game state.
func New(live *game.State, options ...Option) *Negamax {
	n := &Negamax{
		stack:   newStack(live),
		order:   dropOrder(live.Index().Geom.Width),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// SetPoll installs fn to be invoked roughly every interval of wall-clock
// time while a search runs, or disables polling when fn is nil. The
// callback executes on the searching goroutine, so it must return promptly
// and must not call back into move-making operations.
func (n *Negamax) SetPoll(fn func(), interval time.Duration) {
	n.pollFunc = fn
	n.pollInterval = interval
}

// dropOrder lists the columns center first, then alternating outward. The
// central columns are tactically strongest; trying them first makes the
// alpha-beta cutoffs far more effective. The ordering never changes which
// move is chosen, only how much of the tree gets pruned.
func dropOrder(width int) []int {
	order := make([]int, width)
	column := (width - 1) / 2
	for i := 1; i <= width; i++ {
		order[i-1] = column
		if i%2 == 1 {
			column += i
		} else {
			column -= i
		}
	}
	return order
}

// evaluate returns the best goodness player can count on within plies
// moves of the root, assuming optimal play by both sides. The opponent of
// player is on move at the current node. alpha and beta bound the window
// for pruning; values outside it cannot affect the root choice.
func (n *Negamax) evaluate(player game.Cell, plies, alpha, beta int) int {
	if n.pollFunc != nil && !time.Now().Before(n.nextPoll) {
		n.nextPoll = n.nextPoll.Add(n.pollInterval)
		n.pollFunc()
	}
	n.metrics.AddNode()

	if plies == n.stack.depth {
		n.metrics.AddLeaf()
		return n.stack.top().Goodness(player)
	}

	other := player.Other()
	best := -maxScore
	maxab := alpha
	for _, column := range n.order {
		st := n.stack.push()
		if _, dropped := st.Drop(other, column); !dropped {
			n.stack.pop()
			continue
		}

		var goodness int
		if st.Winner() == other {
			goodness = maxScore - n.stack.depth
		} else {
			goodness = n.evaluate(other, plies, -beta, -maxab)
		}
		if goodness > best {
			best = goodness
			if best > maxab {
				maxab = best
			}
		}

		n.stack.pop()
		if best > beta {
			n.metrics.AddCutoff()
			break
		}
	}

	// What is good for the opponent is bad for player.
	return -best
}
