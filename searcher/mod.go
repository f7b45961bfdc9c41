// Package searcher picks computer moves for the connection game: a
// depth-limited negamax with alpha-beta pruning running over a stack of
// reusable game states, with center-out move ordering and randomized
// tie-breaking among equally good columns.
package searcher

import "math"

// MaxPlies bounds the search depth and with it the state stack. Exceeding
// it is a search misconfiguration, not a runtime condition.
const MaxPlies = 20

// maxScore doubles as the infinite window bound and the base value of an
// already-won position. Win values are penalized by the depth at which the
// win occurs, so the search prefers the fastest forced win and the most
// delayed forced loss.
const maxScore = math.MaxInt32
