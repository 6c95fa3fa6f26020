package search

import "github.com/seekerror/chass/pkg/chess"

const (
	chainBlockLengthLog = 12
	chainBlockLength    = 1 << chainBlockLengthLog
	chainBlockMask      = chainBlockLength - 1
)

// Node is one entry in a PositionChain: a packed position reached during the
// search, the move that produced it, and the index of the position it was
// produced from (or -1 for the roots of the search).
type Node struct {
	Position chess.PackedPosition
	Move     chess.Move
	Parent   int
}

// Level records the half-open index range [StartingIndex, StartingIndex+Length)
// of the nodes added between two calls to PositionChain.StartNextLevel.
type Level struct {
	StartingIndex, Length int
}

// PositionChain is an append-only, block-chunked store of every position a
// breadth-first search (forward or retrograde) visits, addressed by a dense integer index
// rather than a pointer. Appending in fixed-size blocks (rather than one flat
// growing slice) keeps reallocation from ever copying positions already handed
// out as parent indices; a search frontier that runs into the tens of millions
// of positions never needs to move memory that earlier levels still reference.
type PositionChain struct {
	blocks [][]Node
	levels []Level
}

// NewPositionChain returns an empty chain with its first (empty) level started.
func NewPositionChain() *PositionChain {
	return &PositionChain{levels: []Level{{0, 0}}}
}

// Add appends a node to the chain's current level and returns its index.
func (c *PositionChain) Add(position chess.PackedPosition, move chess.Move, parent int) int {
	if len(c.blocks) == 0 || len(c.blocks[len(c.blocks)-1]) == chainBlockLength {
		c.blocks = append(c.blocks, make([]Node, 0, chainBlockLength))
	}
	block := &c.blocks[len(c.blocks)-1]
	*block = append(*block, Node{Position: position, Move: move, Parent: parent})
	index := c.levels[len(c.levels)-1].StartingIndex + c.levels[len(c.levels)-1].Length

	last := &c.levels[len(c.levels)-1]
	last.Length++
	return index
}

// Get returns the node at index, which must have been returned by a prior Add.
func (c *PositionChain) Get(index int) Node {
	return c.blocks[index>>chainBlockLengthLog][index&chainBlockMask]
}

// StartNextLevel closes the current level and opens a new, empty one
// immediately following it.
func (c *PositionChain) StartNextLevel() {
	last := c.levels[len(c.levels)-1]
	c.levels = append(c.levels, Level{StartingIndex: last.StartingIndex + last.Length, Length: 0})
}

// LastLevel returns the level currently being filled by Add.
func (c *PositionChain) LastLevel() Level {
	return c.levels[len(c.levels)-1]
}

// SecondLastLevel returns the level immediately preceding LastLevel. It panics
// if fewer than two levels have been started.
func (c *PositionChain) SecondLastLevel() Level {
	return c.levels[len(c.levels)-2]
}

// LevelCount returns the number of levels started so far, including the
// currently-open one.
func (c *PositionChain) LevelCount() int {
	return len(c.levels)
}

// Path reconstructs the sequence of moves leading from a root (Parent == -1)
// to index, in the order they were played — oldest move first. The root's own
// (placeholder) Move is included as the first element.
func (c *PositionChain) Path(index int) []chess.Move {
	var moves []chess.Move
	for index != -1 {
		node := c.Get(index)
		moves = append(moves, node.Move)
		index = node.Parent
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
