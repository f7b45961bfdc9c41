package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// closedFormCount is the analytic number of winning runs on an x by y
// board with n to connect, used to cross-check the enumeration.
func closedFormCount(x, y, n int) int {
	switch {
	case x < n && y < n:
		return 0
	case x < n:
		return x * (y - n + 1)
	case y < n:
		return y * (x - n + 1)
	default:
		return 4*x*y - 3*x*n - 3*y*n + 3*x + 3*y - 4*n + 2*n*n + 2
	}
}

func TestIndexCount(t *testing.T) {
	cases := []struct {
		name                   string
		width, height, connect int
	}{
		{"standard", 7, 6, 4},
		{"tall", 4, 10, 4},
		{"wide", 12, 3, 4},
		{"square", 8, 8, 5},
		{"single column", 1, 8, 4},
		{"degenerate", 3, 3, 4},
		{"connect one", 2, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix := NewIndex(Geometry{Width: tc.width, Height: tc.height, Connect: tc.connect})
			require.Equal(t, closedFormCount(tc.width, tc.height, tc.connect), ix.Count(),
				"enumerated run count should match the closed form")
		})
	}
}

func TestIndexStandardBoardHasSixtyNineRuns(t *testing.T) {
	ix := NewIndex(Geometry{Width: 7, Height: 6, Connect: 4})
	require.Equal(t, 69, ix.Count())
}

func TestIndexMembership(t *testing.T) {
	ix := NewIndex(Geometry{Width: 7, Height: 6, Connect: 4})

	for i := 0; i < ix.Count(); i++ {
		require.Len(t, ix.lines[i], 4, "every run should have exactly Connect cells")
	}

	// The reverse map and the run lists must agree both ways.
	for col := 0; col < 7; col++ {
		for row := 0; row < 6; row++ {
			for _, line := range ix.LinesAt(col, row) {
				require.Contains(t, ix.lines[line], Coord{Col: col, Row: row},
					"reverse-mapped run should pass through the cell")
			}
		}
	}
	for i, cells := range ix.lines {
		for _, c := range cells {
			require.Contains(t, ix.LinesAt(c.Col, c.Row), i,
				"every cell of a run should map back to it")
		}
	}
}

func TestIndexSpan(t *testing.T) {
	ix := NewIndex(Geometry{Width: 7, Height: 6, Connect: 4})

	// The first run enumerated is the bottom-row horizontal at column 0.
	lo, hi := ix.Span(0)
	require.Equal(t, Coord{Col: 0, Row: 0}, lo)
	require.Equal(t, Coord{Col: 3, Row: 0}, hi)

	// Every span runs upward, or left to right on the same row.
	for i := 0; i < ix.Count(); i++ {
		lo, hi := ix.Span(i)
		if lo.Row == hi.Row {
			require.Less(t, lo.Col, hi.Col)
		} else {
			require.Less(t, lo.Row, hi.Row)
		}
	}
}

func TestIndexInvalidGeometryPanics(t *testing.T) {
	require.Panics(t, func() { NewIndex(Geometry{Width: 0, Height: 6, Connect: 4}) })
	require.Panics(t, func() { NewIndex(Geometry{Width: 7, Height: -1, Connect: 4}) })
	require.Panics(t, func() { NewIndex(Geometry{Width: 7, Height: 6, Connect: 0}) })
}
