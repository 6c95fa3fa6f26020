package chess_test

import (
	"testing"

	"github.com/seekerror/chass/pkg/chess"
	"github.com/stretchr/testify/assert"
)

func TestPositionAddRemoveMovePiece(t *testing.T) {
	p := chess.NewPosition()
	a1 := chess.Square{File: chess.FileA, Rank: chess.Rank1}
	b1 := chess.Square{File: chess.FileB, Rank: chess.Rank1}
	c1 := chess.Square{File: chess.FileC, Rank: chess.Rank1}

	p.AddPiece(a1, chess.Rook, chess.White)
	p.AddPiece(b1, chess.Knight, chess.White)
	p.AddPiece(c1, chess.Bishop, chess.White)

	assert.Len(t, p.GetPieces(chess.White), 3)

	// Removing the middle piece (index 1) swaps in the last piece (Bishop from c1).
	p.RemovePiece(b1)
	assert.Len(t, p.GetPieces(chess.White), 2)
	assert.True(t, p.IsSquareEmpty(b1))

	piece, ok := p.GetSquareInfo(c1)
	assert.True(t, ok)
	assert.Equal(t, chess.Bishop, piece.Kind)

	p.MovePiece(a1, b1)
	assert.True(t, p.IsSquareEmpty(a1))
	moved, ok := p.GetSquareInfo(b1)
	assert.True(t, ok)
	assert.Equal(t, chess.Rook, moved.Kind)
	assert.Equal(t, b1, moved.Square)
}

func TestPositionPackUnpackRoundTrip(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.AddPiece(chess.Square{File: chess.FileA, Rank: chess.Rank2}, chess.Pawn, chess.White)
	p.SetTurn(chess.Black)
	p.SetCastling(chess.White, chess.Kingside, chess.True)
	p.SetCastling(chess.White, chess.Queenside, chess.False)
	p.SetCastling(chess.Black, chess.Kingside, chess.Unknown)
	p.SetCastling(chess.Black, chess.Queenside, chess.True)
	p.SetEnPassant(chess.True, chess.FileD)
	p.SetHalfMoves(true, 12)
	p.SetFullMoves(true, 34)

	packed := p.Pack()
	unpacked := chess.Unpack(packed)

	assert.Equal(t, p.ToFENPlacement(true), unpacked.ToFENPlacement(true))
	assert.Equal(t, p.Castling(chess.White, chess.Kingside), unpacked.Castling(chess.White, chess.Kingside))
	assert.Equal(t, p.Castling(chess.White, chess.Queenside), unpacked.Castling(chess.White, chess.Queenside))
	assert.Equal(t, p.Castling(chess.Black, chess.Kingside), unpacked.Castling(chess.Black, chess.Kingside))
	assert.Equal(t, p.Castling(chess.Black, chess.Queenside), unpacked.Castling(chess.Black, chess.Queenside))

	ept, epf := unpacked.EnPassant()
	assert.Equal(t, chess.True, ept)
	assert.Equal(t, chess.FileD, epf)

	assert.True(t, unpacked.HalfMoveLog())
	assert.Equal(t, 12, unpacked.HalfMoves())
	assert.True(t, unpacked.FullMoveLog())
	assert.Equal(t, 34, unpacked.FullMoves())
}

func TestPositionGetCompletedMovesAndPlyCounter(t *testing.T) {
	p := chess.NewPosition()
	p.SetFullMoves(true, 5)
	p.SetTurn(chess.White)
	assert.Equal(t, 4, p.GetCompletedMoves(chess.White))
	assert.Equal(t, 4, p.GetCompletedMoves(chess.Black))
	assert.Equal(t, 9, p.PlyCounter())

	p.SetTurn(chess.Black)
	assert.Equal(t, 5, p.GetCompletedMoves(chess.White))
	assert.Equal(t, 4, p.GetCompletedMoves(chess.Black))
	assert.Equal(t, 10, p.PlyCounter())
}

func TestPositionCanBeSpecializationOf(t *testing.T) {
	base := chess.NewPosition()
	base.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	base.SetCastling(chess.White, chess.Kingside, chess.Unknown)
	base.SetEnPassant(chess.Unknown, 0)

	specific := base.Clone()
	specific.SetCastling(chess.White, chess.Kingside, chess.True)
	specific.SetEnPassant(chess.True, chess.FileC)

	assert.True(t, specific.CanBeSpecializationOf(base))
	assert.False(t, base.CanBeSpecializationOf(specific))

	mismatched := base.Clone()
	mismatched.SetEnPassant(chess.True, chess.FileD)
	other := base.Clone()
	other.SetEnPassant(chess.True, chess.FileC)
	assert.False(t, mismatched.CanBeSpecializationOf(other))
}
