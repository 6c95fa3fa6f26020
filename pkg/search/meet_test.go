package search_test

import (
	"testing"

	"github.com/seekerror/chass/pkg/chess"
	"github.com/seekerror/chass/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeeterInTheMiddleFindsSingleMoveSequence(t *testing.T) {
	start := (chess.Analyzer{}).GetStartingPosition()
	target := start.Clone()
	e4 := chess.Move{Kind: chess.Pawn, Side: chess.White, Type: chess.SimpleMove,
		From: chess.Square{File: chess.FileE, Rank: chess.Rank2}, To: chess.Square{File: chess.FileE, Rank: chess.Rank4}}
	(chess.Advancer{}).Advance(target, e4)

	var found []chess.Move
	var calls int
	m := search.NewMeeterInTheMiddle(func(position *chess.Position, moves []chess.Move, depth int) {
		calls++
		found = moves
		assert.Equal(t, 1, depth)
	}, nil)

	m.Search(target, 1)

	require.Equal(t, 1, calls)
	require.Len(t, found, 1)
	assert.True(t, found[0].SameAs(e4))
}
