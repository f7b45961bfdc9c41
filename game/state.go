package game

// State is one snapshot of a game in progress: board occupancy, both
// players' per-run score counters, both aggregate scores, the winner latch
// and the piece count. The search keeps a stack of states; exactly one,
// the live state, outlasts any search.
type State struct {
	index    *Index
	board    [][]Cell // board[col][row], row 0 at the bottom
	counters [2][]int
	scores   [2]int
	winner   Cell // Player0, Player1 or Empty
	pieces   int
}

// NewState allocates a blank state for the index's geometry. Every score
// counter starts at 1: each run is fully open to both players, so each
// aggregate starts at the run count.
func NewState(index *Index) *State {
	g := index.Geom
	s := &State{index: index, winner: Empty}

	s.board = make([][]Cell, g.Width)
	for col := range s.board {
		s.board[col] = make([]Cell, g.Height)
		for row := range s.board[col] {
			s.board[col][row] = Empty
		}
	}

	for p := 0; p < 2; p++ {
		s.counters[p] = make([]int, index.Count())
		for i := range s.counters[p] {
			s.counters[p][i] = 1
		}
		s.scores[p] = index.Count()
	}

	return s
}

// CopyFrom overwrites s with src. Both must share the same index. The
// backing storage of s is reused, never reallocated.
func (s *State) CopyFrom(src *State) {
	for col := range s.board {
		copy(s.board[col], src.board[col])
	}
	copy(s.counters[0], src.counters[0])
	copy(s.counters[1], src.counters[1])
	s.scores = src.scores
	s.winner = src.winner
	s.pieces = src.pieces
}

// Drop places a piece for player into column, letting it fall to the
// lowest empty row. It returns the landing row, or -1 and false when the
// column is already full, leaving the state untouched. Drop is the sole
// mutator of board occupancy.
func (s *State) Drop(player Cell, column int) (int, bool) {
	height := s.index.Geom.Height
	row := 0
	for row < height && s.board[column][row] != Empty {
		row++
	}
	if row == height {
		return -1, false
	}

	s.board[column][row] = player
	s.pieces++
	s.applyPlacement(player, column, row)
	return row, true
}

// Board exposes the occupancy grid, indexed [column][row] with row 0 at
// the bottom. Callers must treat it as read-only.
func (s *State) Board() [][]Cell { return s.board }

// Winner returns the latched winner, or Empty while the game is open.
func (s *State) Winner() Cell { return s.winner }

// Pieces returns how many pieces are on the board.
func (s *State) Pieces() int { return s.pieces }

// Full reports whether every board position is occupied.
func (s *State) Full() bool { return s.pieces == s.index.Geom.Cells() }

// Score returns player's aggregate score, the sum of their run counters.
func (s *State) Score(player Cell) int { return s.scores[player] }

// Counters exposes player's per-run score counters. Read-only.
func (s *State) Counters(player Cell) []int { return s.counters[player] }

// Index returns the win-run index this state was built against.
func (s *State) Index() *Index { return s.index }

// Goodness is how favorable the position is to player: their aggregate
// score minus the opponent's.
func (s *State) Goodness(player Cell) int {
	return s.scores[player] - s.scores[player.Other()]
}
