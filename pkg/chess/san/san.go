// Package san interprets short algebraic notation ("Nf3", "exd5", "O-O+") against
// a position's legal moves. It exists for test fixtures — chass itself only ever
// emits long algebraic notation (see pkg/chess's Move.ToLongAlgebraic) — so this
// package trades some performance for a parser that reads naturally against the
// notation a human would type into a test table.
package san

import (
	"fmt"

	"github.com/seekerror/chass/pkg/chess"
)

// Interpret matches notation against position's legal moves, returning the unique
// move it denotes along with whether the notation itself claimed check ('+') or
// mate ('#'). It returns an error if notation is malformed or ambiguous, or if it
// matches zero or more than one legal move.
func Interpret(notation string, position *chess.Position) (chess.Move, bool, bool, error) {
	left := notation
	check, mate := false, false
	if len(left) > 0 {
		switch left[len(left)-1] {
		case '+':
			check = true
			left = left[:len(left)-1]
		case '#':
			mate = true
			left = left[:len(left)-1]
		}
	}

	if castlingType, ok := chess.ParseCastlingNotation(left); ok {
		return matchCastling(position, castlingType, check, mate)
	}

	var promotion bool
	promotedPiece := chess.King
	if len(left) >= 2 && left[len(left)-2] == '=' {
		promotion = true
		kind, ok := chess.ParseKind(rune(left[len(left)-1]))
		if !ok {
			return chess.Move{}, false, false, fmt.Errorf("unknown promoted piece in %q", notation)
		}
		promotedPiece = kind
		left = left[:len(left)-2]
	}

	if len(left) < 2 {
		return chess.Move{}, false, false, fmt.Errorf("unexpectedly short notation: %q", notation)
	}

	targetRank, ok := chess.ParseRank(rune(left[len(left)-1]))
	if !ok {
		return chess.Move{}, false, false, fmt.Errorf("unknown rank in %q", notation)
	}
	left = left[:len(left)-1]

	targetFile, ok := chess.ParseFile(rune(left[len(left)-1]))
	if !ok {
		return chess.Move{}, false, false, fmt.Errorf("unknown file in %q", notation)
	}
	left = left[:len(left)-1]

	capture := false
	if len(left) > 0 && left[len(left)-1] == 'x' {
		capture = true
		left = left[:len(left)-1]
	}

	piece := chess.Pawn
	startingFile, startingRank := -1, -1
	switch len(left) {
	case 0:
		piece = chess.Pawn
	case 1:
		if f, ok := chess.ParseFile(rune(left[0])); ok {
			piece = chess.Pawn
			startingFile = int(f)
		} else if k, ok := chess.ParseKind(rune(left[0])); ok {
			piece = k
		} else {
			return chess.Move{}, false, false, fmt.Errorf("unrecognized prefix %q in %q", left, notation)
		}
	case 2:
		k, ok := chess.ParseKind(rune(left[0]))
		if !ok {
			return chess.Move{}, false, false, fmt.Errorf("unknown piece in %q", notation)
		}
		piece = k
		if f, ok := chess.ParseFile(rune(left[1])); ok {
			startingFile = int(f)
		} else if rk, ok := chess.ParseRank(rune(left[1])); ok {
			startingRank = int(rk)
		} else {
			return chess.Move{}, false, false, fmt.Errorf("unrecognized disambiguation %q in %q", string(left[1]), notation)
		}
	case 3:
		k, ok := chess.ParseKind(rune(left[0]))
		if !ok {
			return chess.Move{}, false, false, fmt.Errorf("unknown piece in %q", notation)
		}
		piece = k
		f, ok := chess.ParseFile(rune(left[1]))
		if !ok {
			return chess.Move{}, false, false, fmt.Errorf("unknown file in %q", notation)
		}
		startingFile = int(f)
		rk, ok := chess.ParseRank(rune(left[2]))
		if !ok {
			return chess.Move{}, false, false, fmt.Errorf("unknown rank in %q", notation)
		}
		startingRank = int(rk)
	default:
		return chess.Move{}, false, false, fmt.Errorf("can't parse prefix %q in %q", left, notation)
	}

	legalMoves := (chess.Advancer{}).GetLegalMoves(position, false)
	var matchIdx = -1
	for i, move := range legalMoves {
		if !candidateMatches(move, piece, targetFile, targetRank, startingFile, startingRank, capture, promotion, promotedPiece) {
			continue
		}
		if matchIdx != -1 {
			return chess.Move{}, false, false, fmt.Errorf("ambiguous move %q; could be either %v or %v", notation, move, legalMoves[matchIdx])
		}
		matchIdx = i
	}
	if matchIdx == -1 {
		return chess.Move{}, false, false, fmt.Errorf("notation %q matches no legal move", notation)
	}
	return legalMoves[matchIdx], check, mate, nil
}

func candidateMatches(move chess.Move, piece chess.Kind, targetFile chess.File, targetRank chess.Rank, startingFile, startingRank int, capture, promotion bool, promotedPiece chess.Kind) bool {
	if move.Type == chess.KingsideCastling || move.Type == chess.QueensideCastling {
		return false
	}
	if move.Kind != piece || move.To.File != targetFile || move.To.Rank != targetRank {
		return false
	}
	if startingFile != -1 && int(move.From.File) != startingFile {
		return false
	}
	if startingRank != -1 && int(move.From.Rank) != startingRank {
		return false
	}

	if piece == chess.Pawn {
		if promotion {
			isCapture := move.Type == chess.PromotionWithCapture
			return (capture == isCapture) && move.PromotedPiece == promotedPiece
		}
		if move.Type == chess.Promotion || move.Type == chess.PromotionWithCapture {
			return false
		}
		isCapture := move.Type == chess.Capture || move.Type == chess.EnPassant
		return capture == isCapture
	}
	return (move.Type == chess.Capture) == capture
}

func matchCastling(position *chess.Position, castlingType chess.MoveType, check, mate bool) (chess.Move, bool, bool, error) {
	legalMoves := (chess.Advancer{}).GetLegalMoves(position, false)
	for _, move := range legalMoves {
		if move.Type == castlingType {
			return move, check, mate, nil
		}
	}
	return chess.Move{}, false, false, fmt.Errorf("no legal castling move of the requested side is available")
}
