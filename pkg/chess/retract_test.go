package chess_test

import (
	"testing"

	"github.com/seekerror/chass/pkg/chess"
	"github.com/stretchr/testify/assert"
)

// TestRetractIsInverseOfAdvance applies a move forward then retracts it, and
// checks the placement and turn return to where they started.
func TestRetractIsInverseOfAdvance(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.AddPiece(chess.Square{File: chess.FileD, Rank: chess.Rank4}, chess.Knight, chess.White)
	p.AddPiece(chess.Square{File: chess.FileF, Rank: chess.Rank5}, chess.Pawn, chess.Black)
	p.SetTurn(chess.White)
	before := p.ToFENPlacement(true)

	move := chess.Move{Kind: chess.Knight, Side: chess.White, Type: chess.Capture,
		From: chess.Square{File: chess.FileD, Rank: chess.Rank4}, To: chess.Square{File: chess.FileF, Rank: chess.Rank5}, CapturedPiece: chess.Pawn}

	(chess.Advancer{}).Advance(p, move)
	assert.NotEqual(t, before, p.ToFENPlacement(true))

	(chess.Retractor{}).Retract(p, move)
	assert.Equal(t, before, p.ToFENPlacement(true))
}

func TestRetractorEnumerateMovesEmptyAtGameStart(t *testing.T) {
	start := (chess.Analyzer{}).GetStartingPosition()
	moves := (chess.Retractor{}).EnumerateMoves(start)
	assert.Empty(t, moves)
}

func TestRetractorEnumerateMovesIncludesSimpleRetraction(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.AddPiece(chess.Square{File: chess.FileD, Rank: chess.Rank4}, chess.Knight, chess.White)
	p.SetTurn(chess.Black)
	p.SetFullMoves(true, 5)
	p.SetHalfMoves(true, 3)

	moves := (chess.Retractor{}).EnumerateMoves(p)
	found := false
	for _, m := range moves {
		if m.Kind == chess.Knight && m.To == (chess.Square{File: chess.FileD, Rank: chess.Rank4}) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRetractEnPassant(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileD, Rank: chess.Rank6}, chess.Pawn, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.SetTurn(chess.Black)

	move := chess.Move{Kind: chess.Pawn, Side: chess.White, Type: chess.EnPassant,
		From: chess.Square{File: chess.FileE, Rank: chess.Rank5}, To: chess.Square{File: chess.FileD, Rank: chess.Rank6}, CapturedPiece: chess.Pawn}

	(chess.Retractor{}).Retract(p, move)

	assert.True(t, p.IsSquareEmpty(chess.Square{File: chess.FileD, Rank: chess.Rank6}))
	_, ok := p.GetSquareInfo(chess.Square{File: chess.FileE, Rank: chess.Rank5})
	assert.True(t, ok)
	captured, ok := p.GetSquareInfo(chess.Square{File: chess.FileD, Rank: chess.Rank5})
	assert.True(t, ok)
	assert.Equal(t, chess.Pawn, captured.Kind)
	assert.Equal(t, chess.Black, captured.Side)

	ept, epf := p.EnPassant()
	assert.Equal(t, chess.True, ept)
	assert.Equal(t, chess.FileD, epf)
}
