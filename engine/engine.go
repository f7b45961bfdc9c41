// Package engine exposes the front-end-independent game surface: starting
// and ending games, applying human moves, requesting computer moves, and
// querying board, scores and outcome. Player identifiers are
// parity-encoded: even identifiers are player 0, odd identifiers player 1.
//
// All methods must be called from a single goroutine. Move-validity
// failures (bad or full column, full board) come back through ordinary
// results; contract violations (no game in progress, starting a second
// game, making moves from inside the poll callback) panic.
package engine

import (
	"time"

	"connect/game"
	"connect/searcher"
	"connect/utils"

	"github.com/rs/zerolog/log"
)

// Version identifies this engine implementation.
const Version = "connect engine 1.0"

// Engine drives a single game at a time.
type Engine struct {
	index  *game.Index
	live   *game.State
	search *searcher.Negamax

	pollFunc     func()
	pollInterval time.Duration
	searchOpts   []searcher.Option

	inProgress     bool
	moveInProgress bool
}

// New creates an engine with no game in progress. Options are forwarded to
// the searcher of each game started on it.
func New(options ...searcher.Option) *Engine {
	return &Engine{searchOpts: options}
}

// Poll registers fn to be called roughly every interval of wall-clock time
// while a computer move is being searched, for cancellation flags or UI
// refreshes. A nil fn disables polling, the default. May be called at any
// time, including mid-game. fn must not call MakeMove, AutoMove, EndGame
// or Reset.
func (e *Engine) Poll(fn func(), interval time.Duration) {
	e.pollFunc = fn
	e.pollInterval = interval
	if e.search != nil {
		e.search.SetPoll(fn, interval)
	}
}

// NewGame starts a game on a width x height board where connect pieces in
// a row win. It panics if a game is already in progress or a dimension is
// not positive. Boards too small to fit a single run are legal; such a
// game can only end in a tie.
func (e *Engine) NewGame(width, height, connect int) {
	if e.inProgress {
		panic("NewGame called while a game is in progress")
	}

	e.index = game.NewIndex(game.Geometry{Width: width, Height: height, Connect: connect})
	e.live = game.NewState(e.index)
	e.search = searcher.New(e.live, e.searchOpts...)
	e.search.SetPoll(e.pollFunc, e.pollInterval)
	e.inProgress = true

	log.Debug().
		Int("width", width).
		Int("height", height).
		Int("connect", connect).
		Int("lines", e.index.Count()).
		Msg("new game")
}

// MakeMove drops a piece for the given player into column. It returns the
// landing row, or false if the column is out of range or full.
func (e *Engine) MakeMove(player, column int) (int, bool) {
	e.requireGame()
	e.requireNoMoveInProgress()

	if column < 0 || column >= e.index.Geom.Width {
		return -1, false
	}
	return e.live.Drop(game.RealPlayer(player), column)
}

// AutoMove searches plies moves ahead (1..searcher.MaxPlies) and plays the
// best column for the given player. It returns false only when the board
// is completely full.
func (e *Engine) AutoMove(player, plies int) (column, row int, ok bool) {
	e.requireGame()
	e.requireNoMoveInProgress()

	e.moveInProgress = true
	defer func() { e.moveInProgress = false }()

	column, row, ok = e.search.FindMove(game.RealPlayer(player), plies)
	if ok {
		log.Debug().
			Int("player", int(game.RealPlayer(player))).
			Int("column", column).
			Int("row", row).
			Msg("computer move")
	}
	return column, row, ok
}

// Board returns the live board, indexed [column][row] with row 0 at the
// bottom. The caller must treat it as read-only; it becomes invalid once
// the game ends.
func (e *Engine) Board() [][]game.Cell {
	e.requireGame()
	return e.live.Board()
}

// Score returns the given player's aggregate score: a measure of how many
// winning runs are still open to them and how far along each one is.
func (e *Engine) Score(player int) int {
	e.requireGame()
	return e.live.Score(game.RealPlayer(player))
}

// IsWinner reports whether the given player has won.
func (e *Engine) IsWinner(player int) bool {
	e.requireGame()
	return e.live.Winner() == game.RealPlayer(player)
}

// IsTie reports whether the board is completely full with no winner.
func (e *Engine) IsTie() bool {
	e.requireGame()
	return e.live.Full() && e.live.Winner() == game.Empty
}

// WinSpan returns the endpoints of one completed run of the winner, lowest
// cell first. If several runs completed at once, one of them is reported.
// It panics when nobody has won.
func (e *Engine) WinSpan() (game.Coord, game.Coord) {
	e.requireGame()

	winner := e.live.Winner()
	if winner == game.Empty {
		panic("WinSpan called with no winner")
	}

	line := utils.FindIndex(e.live.Counters(winner), e.index.Magic())
	return e.index.Span(line)
}

// EndGame finishes the current game and releases its resources.
func (e *Engine) EndGame() {
	e.requireGame()
	e.requireNoMoveInProgress()

	e.index = nil
	e.live = nil
	e.search = nil
	e.inProgress = false

	log.Debug().Msg("game over")
}

// Reset returns the engine to its initial state: no game in progress and
// no poll callback.
func (e *Engine) Reset() {
	e.requireNoMoveInProgress()
	if e.inProgress {
		e.EndGame()
	}
	e.pollFunc = nil
	e.pollInterval = 0
}

func (e *Engine) requireGame() {
	if !e.inProgress {
		panic("no game in progress")
	}
}

func (e *Engine) requireNoMoveInProgress() {
	if e.moveInProgress {
		panic("game function called from inside the poll callback")
	}
}
