// Package fen reads and writes chess positions in an extended FEN notation that
// additionally allows '?' in place of any of the castling, en-passant, or move
// counter fields to mark that field as unknown (an omitted field reads the same) —
// the fields a retrograde search reasons about as Ternary rather than bool.
package fen

import (
	"fmt"
	"strings"

	"github.com/seekerror/chass/pkg/chess"
)

const maxCounter = 30000

// Initial is the standard starting position in this package's notation.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type reader struct {
	fen    string
	cursor int
}

func (r *reader) ensureCharsLeft(warnSpace bool) error {
	if r.cursor >= len(r.fen) {
		suffix := ""
		if warnSpace {
			suffix = " (did you leave whitespace after the notation?)"
		}
		return fmt.Errorf("unexpected end of record after position %d%s", r.cursor, suffix)
	}
	return nil
}

func (r *reader) tryReadSpace() (bool, error) {
	if r.cursor >= len(r.fen) {
		return false, nil
	}
	if r.fen[r.cursor] != ' ' {
		return false, fmt.Errorf("expected space at position %d", r.cursor+1)
	}
	r.cursor++
	return true, nil
}

func parsePiece(c byte) (chess.Kind, chess.Side, bool) {
	side := chess.White
	if c >= 'a' && c <= 'z' {
		side = chess.Black
	}
	kind, ok := chess.ParseKind(rune(c))
	return kind, side, ok
}

// Decode parses an extended-FEN position. Piece placement and the side to move
// are mandatory; castling, en-passant, and the move counters are each optional —
// omitted entirely (record ends early) or given as '?' both leave that field
// Unknown/unlogged, matching Position's default. A real token for a field still
// permits '-' to mean "definitely none" and, for the move counters, a decimal
// count up to 30000.
func Decode(record string) (*chess.Position, error) {
	if record == "" {
		return nil, fmt.Errorf("no input was provided")
	}
	position := chess.NewPosition()
	r := &reader{fen: record}

	if err := readPlacement(r, position); err != nil {
		return nil, err
	}
	if err := readSide(r, position); err != nil {
		return nil, err
	}
	if err := readCastling(r, position); err != nil {
		return nil, err
	}
	if err := readEnPassant(r, position); err != nil {
		return nil, err
	}
	if err := readMoveCounter(r, position, true); err != nil {
		return nil, err
	}
	if err := readMoveCounter(r, position, false); err != nil {
		return nil, err
	}
	for r.cursor < len(r.fen) && r.fen[r.cursor] == ' ' {
		r.cursor++
	}
	if r.cursor != len(r.fen) {
		return nil, fmt.Errorf("unexpected continuation of record after position %d", r.cursor)
	}
	return position, nil
}

func readPlacement(r *reader, position *chess.Position) error {
	rank, file := chess.Rank8, chess.File(0)
	for {
		if r.cursor >= len(r.fen) || r.fen[r.cursor] == ' ' {
			return fmt.Errorf("piece placement description ended unexpectedly after position %d", r.cursor)
		}
		c := r.fen[r.cursor]
		if file == chess.NumFiles && c != '/' {
			return fmt.Errorf("too many squares in piece placement description for rank %d", rank+1)
		}
		switch {
		case c == '/':
			if file != chess.NumFiles {
				return fmt.Errorf("too few squares in piece placement description for rank %d", rank+1)
			}
			file = 0
			rank--
		case c >= '1' && c <= '8':
			file += chess.File(c - '0')
			if file > chess.NumFiles {
				return fmt.Errorf("too many squares in piece placement description for rank %d", rank+1)
			}
		default:
			kind, side, ok := parsePiece(c)
			if !ok {
				return fmt.Errorf("invalid character %q at position %d in piece placement description", c, r.cursor+1)
			}
			position.AddPiece(chess.Square{File: file, Rank: rank}, kind, side)
			file++
		}
		r.cursor++
		if file == chess.NumFiles && rank == chess.Rank1 {
			break
		}
	}
	return nil
}

func readSide(r *reader, position *chess.Position) error {
	if r.cursor >= len(r.fen) {
		return fmt.Errorf("turn must be specified for the position")
	}
	if r.fen[r.cursor] != ' ' {
		return fmt.Errorf("expected space at position %d", r.cursor+1)
	}
	r.cursor++
	if err := r.ensureCharsLeft(false); err != nil {
		return err
	}
	side, ok := chess.ParseSide(rune(r.fen[r.cursor]))
	if !ok {
		return fmt.Errorf("invalid character %q at position %d (expected 'w' for white or 'b' for black)", r.fen[r.cursor], r.cursor+1)
	}
	position.SetTurn(side)
	r.cursor++
	return nil
}

func readCastling(r *reader, position *chess.Position) error {
	had, err := r.tryReadSpace()
	if err != nil || !had {
		return err
	}
	if err := r.ensureCharsLeft(true); err != nil {
		return err
	}
	if r.fen[r.cursor] == '?' {
		r.cursor++
		return nil
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		position.SetCastling(side, chess.Kingside, chess.False)
		position.SetCastling(side, chess.Queenside, chess.False)
	}
	if r.fen[r.cursor] == '-' {
		r.cursor++
		return nil
	}
	if r.fen[r.cursor] == ' ' {
		return fmt.Errorf("unexpected space at position %d (expected 'K', 'Q', 'k', or 'q'; you can also use '-' or '?' for the whole castling slot)", r.cursor+1)
	}
	for r.cursor < len(r.fen) {
		c := r.fen[r.cursor]
		if c == ' ' {
			break
		}
		switch c {
		case 'K':
			position.SetCastling(chess.White, chess.Kingside, chess.True)
		case 'Q':
			position.SetCastling(chess.White, chess.Queenside, chess.True)
		case 'k':
			position.SetCastling(chess.Black, chess.Kingside, chess.True)
		case 'q':
			position.SetCastling(chess.Black, chess.Queenside, chess.True)
		default:
			return fmt.Errorf("invalid character %q at position %d (expected 'K', 'Q', 'k', or 'q'; you can also use '-' or '?' for the whole castling slot)", c, r.cursor+1)
		}
		r.cursor++
	}
	return nil
}

func readEnPassant(r *reader, position *chess.Position) error {
	had, err := r.tryReadSpace()
	if err != nil || !had {
		return err
	}
	if err := r.ensureCharsLeft(true); err != nil {
		return err
	}
	c := r.fen[r.cursor]
	r.cursor++
	switch {
	case c == '-':
		position.SetEnPassant(chess.False, 0)
	case c >= 'a' && c <= 'h':
		file, _ := chess.ParseFile(rune(c))
		position.SetEnPassant(chess.True, file)
		if r.cursor >= len(r.fen) {
			return fmt.Errorf("unexpected end of record after position %d (expected rank of the en passant square)", r.cursor)
		}
		expected := byte('6')
		if position.Turn() == chess.Black {
			expected = '3'
		}
		if rank := r.fen[r.cursor]; rank != expected {
			return fmt.Errorf("unexpected rank %q at position %d (expected %q)", rank, r.cursor+1, expected)
		}
		r.cursor++
	case c != '?':
		return fmt.Errorf("invalid character %q at position %d (expected '-', '?', or file 'a' through 'h' for the en passant square)", c, r.cursor)
	}
	return nil
}

func readMoveCounter(r *reader, position *chess.Position, halfMoves bool) error {
	had, err := r.tryReadSpace()
	if err != nil || !had {
		return err
	}
	if err := r.ensureCharsLeft(true); err != nil {
		return err
	}
	if r.fen[r.cursor] == '?' {
		r.cursor++
		return nil
	}
	label := "full"
	if halfMoves {
		label = "half"
	}
	if r.fen[r.cursor] == ' ' {
		return fmt.Errorf("unexpected space at position %d (expected %s-move counter instead)", r.cursor+1, label)
	}
	moves := 0
	for r.cursor < len(r.fen) {
		c := r.fen[r.cursor]
		if c == ' ' {
			break
		}
		if c < '0' || c > '9' {
			return fmt.Errorf("invalid character %q at position %d (expected a digit of the %s-move counter; you can also use '?' for the slot)", c, r.cursor+1, label)
		}
		moves = moves*10 + int(c-'0')
		if moves > maxCounter {
			return fmt.Errorf("%s-move counter is too large", label)
		}
		r.cursor++
	}
	if halfMoves {
		position.SetHalfMoves(true, moves)
	} else {
		position.SetFullMoves(true, moves)
	}
	return nil
}

// Encode renders position back into extended-FEN. An unlogged en-passant or move
// counter field is written as '?'; the castling field is '?' only when all four
// rights are Unknown, and otherwise lists just the rights that are True (or '-').
func Encode(position *chess.Position) string {
	var sb strings.Builder
	sb.WriteString(position.ToFENPlacement(true))

	sb.WriteString(" ")
	sb.WriteString(encodeCastling(position))

	sb.WriteString(" ")
	ep, file := position.EnPassant()
	switch ep {
	case chess.True:
		sb.WriteString(file.String())
		if position.Turn() == chess.White {
			sb.WriteString("6")
		} else {
			sb.WriteString("3")
		}
	case chess.False:
		sb.WriteString("-")
	default:
		sb.WriteString("?")
	}

	sb.WriteString(" ")
	if position.HalfMoveLog() {
		fmt.Fprintf(&sb, "%d", position.HalfMoves())
	} else {
		sb.WriteString("?")
	}

	sb.WriteString(" ")
	if position.FullMoveLog() {
		fmt.Fprintf(&sb, "%d", position.FullMoves())
	} else {
		sb.WriteString("?")
	}

	return sb.String()
}

func encodeCastling(position *chess.Position) string {
	anyKnown := false
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, cs := range []chess.CastlingSide{chess.Kingside, chess.Queenside} {
			if position.Castling(side, cs) != chess.Unknown {
				anyKnown = true
			}
		}
	}
	if !anyKnown {
		return "?"
	}

	var sb strings.Builder
	if position.Castling(chess.White, chess.Kingside) == chess.True {
		sb.WriteString("K")
	}
	if position.Castling(chess.White, chess.Queenside) == chess.True {
		sb.WriteString("Q")
	}
	if position.Castling(chess.Black, chess.Kingside) == chess.True {
		sb.WriteString("k")
	}
	if position.Castling(chess.Black, chess.Queenside) == chess.True {
		sb.WriteString("q")
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
