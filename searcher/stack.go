package searcher

import (
	"fmt"

	"connect/game"
)

// stack is an arena of game states indexed by search depth. Frame 0 is the
// live game; deeper frames are scratch copies for speculative moves. A
// slot is allocated the first time its depth is reached and then reused
// for the remainder of the game, so a search never allocates on a path it
// has visited before.
type stack struct {
	frames []*game.State
	depth  int
}

func newStack(live *game.State) *stack {
	return &stack{frames: []*game.State{live}}
}

// top returns the state at the current depth.
func (k *stack) top() *game.State { return k.frames[k.depth] }

// push copies the current top into the next slot and moves onto it.
func (k *stack) push() *game.State {
	if k.depth >= MaxPlies {
		panic(fmt.Sprintf("search deeper than %d plies", MaxPlies))
	}

	k.depth++
	if k.depth == len(k.frames) {
		k.frames = append(k.frames, game.NewState(k.frames[0].Index()))
	}
	k.frames[k.depth].CopyFrom(k.frames[k.depth-1])
	return k.frames[k.depth]
}

// pop retreats to the previous frame. Nothing is copied back: the lower
// frame was never touched while a higher one was current.
func (k *stack) pop() {
	if k.depth == 0 {
		panic("pop on an empty search stack")
	}
	k.depth--
}
