// Package game models an N-in-a-row connection game on a rectangular
// board: the board geometry, the precomputed index of winning runs, and
// the incrementally scored game state.
package game

import "fmt"

// Cell is the content of one board position: a piece of player 0, a piece
// of player 1, or nothing.
type Cell int8

const (
	Player0 Cell = 0
	Player1 Cell = 1
	Empty   Cell = 2
)

// Other returns the opposing player. Only meaningful for player cells.
func (c Cell) Other() Cell { return c ^ 1 }

// RealPlayer maps an external parity-encoded player identifier to its
// player cell: even identifiers are player 0, odd identifiers player 1.
func RealPlayer(id int) Cell { return Cell(id & 1) }

// Coord addresses one board cell. Row 0 is the bottom row.
type Coord struct {
	Col int
	Row int
}

// Geometry fixes the board dimensions and the run length required to win.
type Geometry struct {
	Width   int
	Height  int
	Connect int
}

// Cells returns the total number of board positions.
func (g Geometry) Cells() int { return g.Width * g.Height }

func (g Geometry) validate() {
	if g.Width < 1 || g.Height < 1 || g.Connect < 1 {
		panic(fmt.Sprintf("invalid geometry %dx%d connect %d: all values must be positive",
			g.Width, g.Height, g.Connect))
	}
}
