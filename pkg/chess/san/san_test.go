package san_test

import (
	"testing"

	"github.com/seekerror/chass/pkg/chess"
	"github.com/seekerror/chass/pkg/chess/san"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretPawnAndKnightMoves(t *testing.T) {
	p := (chess.Analyzer{}).GetStartingPosition()

	move, check, mate, err := san.Interpret("e4", p)
	require.NoError(t, err)
	assert.False(t, check)
	assert.False(t, mate)
	assert.Equal(t, chess.Pawn, move.Kind)
	assert.Equal(t, chess.Square{File: chess.FileE, Rank: chess.Rank4}, move.To)

	move, _, _, err = san.Interpret("Nf3", p)
	require.NoError(t, err)
	assert.Equal(t, chess.Knight, move.Kind)
	assert.Equal(t, chess.Square{File: chess.FileF, Rank: chess.Rank3}, move.To)
}

func TestInterpretCapture(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.AddPiece(chess.Square{File: chess.FileD, Rank: chess.Rank4}, chess.Knight, chess.White)
	p.AddPiece(chess.Square{File: chess.FileF, Rank: chess.Rank5}, chess.Pawn, chess.Black)
	p.SetTurn(chess.White)

	move, _, _, err := san.Interpret("Nxf5", p)
	require.NoError(t, err)
	assert.Equal(t, chess.Capture, move.Type)
	assert.Equal(t, chess.Pawn, move.CapturedPiece)
}

func TestInterpretCheckAndMateSuffixes(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileA, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.AddPiece(chess.Square{File: chess.FileH, Rank: chess.Rank1}, chess.Rook, chess.White)
	p.SetTurn(chess.White)

	_, check, mate, err := san.Interpret("Re1+", p)
	require.NoError(t, err)
	assert.True(t, check)
	assert.False(t, mate)

	_, check, mate, err = san.Interpret("Re1#", p)
	require.NoError(t, err)
	assert.False(t, check)
	assert.True(t, mate)
}

func TestInterpretCastling(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileH, Rank: chess.Rank1}, chess.Rook, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.SetTurn(chess.White)
	p.SetCastling(chess.White, chess.Kingside, chess.True)

	move, _, _, err := san.Interpret("O-O", p)
	require.NoError(t, err)
	assert.Equal(t, chess.KingsideCastling, move.Type)
}

func TestInterpretPromotion(t *testing.T) {
	p := chess.NewPosition()
	p.AddPiece(chess.Square{File: chess.FileA, Rank: chess.Rank7}, chess.Pawn, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank1}, chess.King, chess.White)
	p.AddPiece(chess.Square{File: chess.FileE, Rank: chess.Rank8}, chess.King, chess.Black)
	p.SetTurn(chess.White)

	move, _, _, err := san.Interpret("a8=Q", p)
	require.NoError(t, err)
	assert.Equal(t, chess.Promotion, move.Type)
	assert.Equal(t, chess.Queen, move.PromotedPiece)
}

func TestInterpretNoMatchingMoveErrors(t *testing.T) {
	p := (chess.Analyzer{}).GetStartingPosition()
	_, _, _, err := san.Interpret("Qh5", p)
	assert.Error(t, err)
}
