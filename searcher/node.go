package searcher

import (
	"tron/game"

	"golang.org/x/exp/slices"
)

// node is a frontier entry: the board reached by actions, together with the
// worst-case score recorded after each of them.
type node struct {
	scores  []int
	actions []game.Action
	state   *game.Board
}

// compare orders nodes by score path, then action path, then board.
func (n *node) compare(other *node) int {
	if c := slices.Compare(n.scores, other.scores); c != 0 {
		return c
	}
	if c := slices.Compare(n.actions, other.actions); c != 0 {
		return c
	}
	return n.state.Compare(other.state)
}

// child extends the node's paths by one action and its worst-case outcome.
func (n *node) child(action game.Action, score int, state *game.Board) *node {
	return &node{
		scores:  append(slices.Clone(n.scores), score),
		actions: append(slices.Clone(n.actions), action),
		state:   state,
	}
}

// frontier is a max-heap of nodes for container/heap.
type frontier []*node

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].compare(f[j]) > 0 }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(*node)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return x
}
