package game

// Index precomputes, for one board geometry, every straight run of Connect
// cells that could win the game. Runs get dense indices in a fixed scan
// order (all horizontals row by row, then verticals column by column, then
// forward diagonals, then backward diagonals) and each cell knows the runs
// passing through it. An Index is built once per game and is read-only
// afterwards, so the state stack can share a single instance.
type Index struct {
	Geom  Geometry
	magic int       // counter value of a completed run, 2^Connect
	lines [][]Coord // run index -> its cells in generation order
	cells [][]int   // col*Height+row -> indices of runs through the cell
}

// NewIndex enumerates the winning runs of g. Geometries too small to fit a
// single run yield an index with zero runs: a game nobody can win, which
// is legal. Non-positive dimensions panic.
func NewIndex(g Geometry) *Index {
	g.validate()

	ix := &Index{
		Geom:  g,
		magic: 1 << g.Connect,
		cells: make([][]int, g.Cells()),
	}
	n := g.Connect

	add := func(cells []Coord) {
		id := len(ix.lines)
		ix.lines = append(ix.lines, cells)
		for _, c := range cells {
			slot := c.Col*g.Height + c.Row
			ix.cells[slot] = append(ix.cells[slot], id)
		}
	}

	// Horizontal runs, row by row.
	for row := 0; row < g.Height; row++ {
		for col := 0; col+n <= g.Width; col++ {
			line := make([]Coord, n)
			for k := 0; k < n; k++ {
				line[k] = Coord{Col: col + k, Row: row}
			}
			add(line)
		}
	}

	// Vertical runs, column by column.
	for col := 0; col < g.Width; col++ {
		for row := 0; row+n <= g.Height; row++ {
			line := make([]Coord, n)
			for k := 0; k < n; k++ {
				line[k] = Coord{Col: col, Row: row + k}
			}
			add(line)
		}
	}

	// Forward diagonals, rising left to right.
	for row := 0; row+n <= g.Height; row++ {
		for col := 0; col+n <= g.Width; col++ {
			line := make([]Coord, n)
			for k := 0; k < n; k++ {
				line[k] = Coord{Col: col + k, Row: row + k}
			}
			add(line)
		}
	}

	// Backward diagonals, rising right to left.
	for row := 0; row+n <= g.Height; row++ {
		for col := g.Width - 1; col >= n-1; col-- {
			line := make([]Coord, n)
			for k := 0; k < n; k++ {
				line[k] = Coord{Col: col - k, Row: row + k}
			}
			add(line)
		}
	}

	return ix
}

// Count returns the number of winning runs on the board.
func (ix *Index) Count() int { return len(ix.lines) }

// Magic is the score-counter value that marks a completed run.
func (ix *Index) Magic() int { return ix.magic }

// LinesAt returns the indices of every run passing through (col, row). The
// returned slice is shared; callers must not modify it.
func (ix *Index) LinesAt(col, row int) []int {
	return ix.cells[col*ix.Geom.Height+row]
}

// Span returns the two endpoints of run i: the lowest cell first (the
// leftmost one for horizontal runs), then the highest.
func (ix *Index) Span(i int) (Coord, Coord) {
	cells := ix.lines[i]
	return cells[0], cells[len(cells)-1]
}
