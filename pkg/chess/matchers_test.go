package chess_test

import (
	"testing"

	"github.com/seekerror/chass/pkg/chess"
	"github.com/stretchr/testify/assert"
)

func uniformMap(value int) [chess.NumRanks][chess.NumFiles]int {
	var m [chess.NumRanks][chess.NumFiles]int
	for r := range m {
		for f := range m[r] {
			m[r][f] = value
		}
	}
	return m
}

func TestZeroMatcherSumsPerPiece(t *testing.T) {
	m := uniformMap(3)
	z := chess.NewZeroMatcher(chess.Pawn, m)
	z.Add(chess.Piece{Kind: chess.Pawn, Side: chess.White, Square: chess.Square{File: chess.FileA, Rank: chess.Rank2}})
	z.Add(chess.Piece{Kind: chess.Pawn, Side: chess.White, Square: chess.Square{File: chess.FileB, Rank: chess.Rank2}})
	z.Add(chess.Piece{Kind: chess.Knight, Side: chess.White, Square: chess.Square{File: chess.FileB, Rank: chess.Rank1}})
	assert.Equal(t, 6, z.Count())
}

func TestSingleMatcherKeepsCheapestOriginal(t *testing.T) {
	original := uniformMap(0)
	promoted := uniformMap(5)
	s := chess.NewSingleMatcher(chess.Queen, original, promoted)
	s.Add(chess.Piece{Kind: chess.Queen, Side: chess.White, Square: chess.Square{File: chess.FileD, Rank: chess.Rank1}})
	s.Add(chess.Piece{Kind: chess.Queen, Side: chess.White, Square: chess.Square{File: chess.FileA, Rank: chess.Rank1}})
	// Two queens, each costs 5 if treated as promoted, 0 if treated as original;
	// exactly one gets to be the original, so total is 5 + 5 - 5 = 5.
	assert.Equal(t, 5, s.Count())
}

func TestDoubleMatcherKeepsTwoCheapestOriginals(t *testing.T) {
	original := uniformMap(0)
	promoted := uniformMap(5)
	d := chess.NewDoubleMatcher(chess.Rook, original, promoted)
	d.Add(chess.Piece{Kind: chess.Rook, Side: chess.White, Square: chess.Square{File: chess.FileA, Rank: chess.Rank1}})
	d.Add(chess.Piece{Kind: chess.Rook, Side: chess.White, Square: chess.Square{File: chess.FileH, Rank: chess.Rank1}})
	// Two rooks on opposite wings, both free as originals: total cost 0.
	assert.Equal(t, 0, d.Count())
}

func TestRequiredMovesAcceptStartingArray(t *testing.T) {
	// Every piece on its home square must be charged zero required moves, or the
	// validator would reject the starting position itself.
	start := (chess.Analyzer{}).GetStartingPosition()
	assert.True(t, (chess.Validator{}).Validate(start))
}

func TestRequiredMovesDoublePushCostsOne(t *testing.T) {
	start := (chess.Analyzer{}).GetStartingPosition()
	p := start.Clone()
	p.RemovePiece(chess.Square{File: chess.FileE, Rank: chess.Rank2})
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank4}, chess.Pawn, chess.White)
	p.SetTurn(chess.Black)
	// White has completed one move; a pawn on e4 needs exactly one (the double
	// push), so the bound holds.
	assert.True(t, (chess.Validator{}).Validate(p))

	p = start.Clone()
	p.RemovePiece(chess.Square{File: chess.FileE, Rank: chess.Rank2})
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank5}, chess.Pawn, chess.White)
	p.SetTurn(chess.Black)
	// A pawn on e5 needs two moves, but White has only completed one.
	assert.False(t, (chess.Validator{}).Validate(p))
}

func TestRequiredMovesRejectTooFastKnight(t *testing.T) {
	start := (chess.Analyzer{}).GetStartingPosition()
	p := start.Clone()
	p.RemovePiece(chess.Square{File: chess.FileB, Rank: chess.Rank1})
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank5}, chess.Knight, chess.White)
	p.SetTurn(chess.White)
	p.SetHalfMoves(false, 0)

	// The g1 knight is still home, so the e5 knight counts as the b1 one, which
	// needs three moves to reach e5.
	p.SetFullMoves(true, 2) // White has completed one move
	assert.False(t, (chess.Validator{}).Validate(p))

	p.SetFullMoves(true, 4) // White has completed three moves
	assert.True(t, (chess.Validator{}).Validate(p))
}

func TestDoubleMatcherWithExtraPromotedPiece(t *testing.T) {
	original := uniformMap(0)
	promoted := uniformMap(5)
	d := chess.NewDoubleMatcher(chess.Rook, original, promoted)
	d.Add(chess.Piece{Kind: chess.Rook, Side: chess.White, Square: chess.Square{File: chess.FileA, Rank: chess.Rank1}})
	d.Add(chess.Piece{Kind: chess.Rook, Side: chess.White, Square: chess.Square{File: chess.FileH, Rank: chess.Rank1}})
	d.Add(chess.Piece{Kind: chess.Rook, Side: chess.White, Square: chess.Square{File: chess.FileD, Rank: chess.Rank4}})
	// A third rook must be charged as promoted: total cost 5.
	assert.Equal(t, 5, d.Count())
}
