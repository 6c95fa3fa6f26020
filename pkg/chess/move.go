package chess

import "strings"

// MoveType distinguishes move variants with different invariants: a Capture carries
// CapturedPiece, a Promotion carries PromotedPiece, an EnPassant carries both
// implicitly (always a pawn captured en route), and the two castling variants carry
// neither. King is used as the "no piece" sentinel for CapturedPiece/PromotedPiece
// on variants that don't carry one, avoiding a seventh Kind value: King can never
// be captured or promoted to.
type MoveType uint8

const (
	SimpleMove MoveType = iota
	Promotion
	Capture
	PromotionWithCapture
	EnPassant
	KingsideCastling
	QueensideCastling
)

// Move is a not-necessarily-legal move together with the context needed to apply or
// retract it: the moving piece's kind and side, the move's variant, its endpoints,
// and (only where the variant calls for it) the captured or promoted piece.
type Move struct {
	Kind          Kind
	Side          Side
	Type          MoveType
	From, To      Square
	CapturedPiece Kind // meaningful iff Type captures
	PromotedPiece Kind // meaningful iff Type promotes
}

func isCapture(t MoveType) bool {
	return t == Capture || t == PromotionWithCapture || t == EnPassant
}

func isPromotion(t MoveType) bool {
	return t == Promotion || t == PromotionWithCapture
}

// SameAs compares two moves on their meaningful fields only: CapturedPiece is
// ignored unless the type captures, PromotedPiece unless it promotes, and neither
// endpoint is compared for castling (whose From/To already fully determine it via
// Type). Useful in tests that build an expected move without bothering to set
// fields the type doesn't use.
func (m Move) SameAs(o Move) bool {
	if m.Side != o.Side || m.Type != o.Type {
		return false
	}
	if m.Type == KingsideCastling || m.Type == QueensideCastling {
		return true
	}
	if m.Kind != o.Kind || m.From != o.From || m.To != o.To {
		return false
	}
	if isCapture(m.Type) && m.CapturedPiece != o.CapturedPiece {
		return false
	}
	if isPromotion(m.Type) && m.PromotedPiece != o.PromotedPiece {
		return false
	}
	return true
}

func castlingNotation(t MoveType) string {
	switch t {
	case KingsideCastling:
		return "0-0"
	case QueensideCastling:
		return "0-0-0"
	default:
		return ""
	}
}

// ParseCastlingNotation recognizes "0-0"/"O-O" and "0-0-0"/"O-O-O".
func ParseCastlingNotation(s string) (MoveType, bool) {
	switch s {
	case "0-0", "O-O":
		return KingsideCastling, true
	case "0-0-0", "O-O-O":
		return QueensideCastling, true
	default:
		return 0, false
	}
}

// ToLongAlgebraic renders the move in the format used by the CLI's output:
// <PieceLetter><from>[x<capturedLetter>|-]<to>[=<promoted>][e.p.], or castling
// notation, with an optional trailing check/mate suffix.
func (m Move) ToLongAlgebraic(check, mate bool) string {
	var sb strings.Builder
	if m.Type == KingsideCastling || m.Type == QueensideCastling {
		sb.WriteString(castlingNotation(m.Type))
	} else {
		sb.WriteString(m.Kind.Letter())
		sb.WriteString(m.From.String())
		if isCapture(m.Type) {
			sb.WriteString("x")
			sb.WriteString(m.CapturedPiece.Letter())
		} else {
			sb.WriteString("-")
		}
		sb.WriteString(m.To.String())
		if isPromotion(m.Type) {
			sb.WriteString("=")
			sb.WriteString(m.PromotedPiece.Letter())
		}
		if m.Type == EnPassant {
			sb.WriteString("e.p.")
		}
	}
	if mate {
		sb.WriteString("#")
	} else if check {
		sb.WriteString("+")
	}
	return sb.String()
}

func (m Move) String() string {
	return m.ToLongAlgebraic(false, false)
}
