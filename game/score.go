package game

// applyPlacement folds a new piece at (col, row) into the score model. For
// every run through the cell the mover's counter doubles and the
// opponent's drops to zero, since the run can no longer be completed by
// them. The aggregates absorb exactly the deltas, so they always equal the
// counter sums without ever being recomputed from scratch. Cost is
// O(runs through one cell), independent of the total run count.
//
// The first counter to reach the magic number latches the winner; once
// set, the latch never changes for the rest of the game, so a move that
// completes several runs at once still names a single winner.
func (s *State) applyPlacement(player Cell, col, row int) {
	other := player.Other()
	magic := s.index.magic

	gained, lost := 0, 0
	for _, line := range s.index.LinesAt(col, row) {
		gained += s.counters[player][line]
		lost += s.counters[other][line]

		s.counters[player][line] <<= 1
		s.counters[other][line] = 0

		if s.counters[player][line] == magic && s.winner == Empty {
			s.winner = player
		}
	}

	s.scores[player] += gained
	s.scores[other] -= lost
}
