package chess

import "fmt"

// Validator checks a Position for internal consistency and retrograde
// plausibility. ValidateAndStrictenUserPosition is the stricter entry point run
// once on user-supplied input; Validate is the cheaper check run on every node a
// search visits.
type Validator struct{}

func validateUserKings(pieces []Piece) error {
	sawKing := false
	for _, piece := range pieces {
		if piece.Kind == King {
			if sawKing {
				return fmt.Errorf("more than one king assigned to the side")
			}
			sawKing = true
		}
	}
	if !sawKing {
		return fmt.Errorf("no king assigned to the side")
	}
	return nil
}

func validateCounts(counts PieceCounts) bool {
	extraQueens := max0(counts.Queen - 1)
	extraRooks := max0(counts.Rook - 2)
	extraLightBishops := max0(counts.LightSquareBishop - 1)
	extraDarkBishops := max0(counts.DarkSquareBishop - 1)
	extraKnights := max0(counts.Knight - 2)
	extra := extraQueens + extraRooks + extraLightBishops + extraDarkBishops + extraKnights
	return extra+counts.Pawn <= 8
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func validateUserCounts(counts PieceCounts) error {
	if 1+counts.Total() > 16 {
		return fmt.Errorf("more than 16 pieces assigned to the side")
	}
	if counts.Pawn > 8 {
		return fmt.Errorf("more than 8 pawns assigned to the side")
	}
	if !validateCounts(counts) {
		return fmt.Errorf("piece count is not possible in a legal game")
	}
	return nil
}

func validateUserPawns(pieces []Piece) error {
	for _, piece := range pieces {
		if piece.Kind == Pawn && (piece.Square.Rank == Rank1 || piece.Square.Rank == Rank8) {
			return fmt.Errorf("pawn placed on a boundary rank")
		}
	}
	return nil
}

func validateUserEnPassant(position *Position) error {
	ep, file := position.EnPassant()
	if ep != True {
		return nil
	}
	side := position.Turn().Opponent()
	rank, shift := Rank(3), -1
	if side == Black {
		rank, shift = Rank(4), 1
	}
	square := Square{File: file, Rank: rank}
	if !position.IsPieceInSquare(square, side, Pawn) ||
		!position.IsSquareEmpty(square.Shift(0, shift)) ||
		!position.IsSquareEmpty(square.Shift(0, 2*shift)) {
		return fmt.Errorf("en passant at file %q is incorrectly defined as possible", file.String())
	}
	return nil
}

func validateUserHalfMoves(position *Position) error {
	if position.HalfMoveLog() {
		ep, _ := position.EnPassant()
		if ep == True && position.HalfMoves() > 0 {
			return fmt.Errorf("the half-move clock cannot be positive when an en passant capture is possible")
		}
	}
	return nil
}

func validateUserFullMoves(position *Position) error {
	if !position.FullMoveLog() {
		return nil
	}
	fullMoves := position.FullMoves()
	if fullMoves < 1 {
		return fmt.Errorf("the full-move number should be positive")
	}
	if position.HalfMoveLog() && position.HalfMoves() >= position.PlyCounter() {
		return fmt.Errorf("the half-move clock exceeds (twice) the full-move counter")
	}
	if fullMoves == 1 && position.Turn() == White && !(Analyzer{}).CanBeStarting(position) {
		return fmt.Errorf("position is incorrectly defined as starting")
	}
	return nil
}

// ValidateChecks reports whether the side that just moved is not, in fact, left
// in check — the one rule every legal chess position must satisfy regardless of
// how it was reached.
func (Validator) ValidateChecks(position *Position) bool {
	return !(Analyzer{}).IsInCheck(position, position.Turn().Opponent())
}

// validateRequiredMoveNumber reports whether side's pieces could plausibly have
// reached their current squares within the number of moves side has completed so
// far, using the per-piece-type Matchers lower bound. It also tightens the bound
// by one when the opponent has lost pieces: the very first move of the game can
// never be a capture, so if side's opponent is missing N pieces, side must have
// completed strictly more than N moves, not merely N.
func validateRequiredMoveNumber(position *Position, side Side) bool {
	if !position.FullMoveLog() {
		return true
	}
	completedMoves := position.GetCompletedMoves(side)
	capturedOpposite := 16 - len(position.GetPieces(side.Opponent()))
	if capturedOpposite > 0 && completedMoves <= capturedOpposite {
		return false
	}

	pawn := NewZeroMatcher(Pawn, pawnMoveMap)
	king := NewZeroMatcher(King, kingMoveMap)
	queen := NewSingleMatcher(Queen, queenMoveMap, queenPromotedMoveMap)
	leftBishop := NewSingleMatcher(Bishop, leftBishopMoveMap, leftBishopPromotedMoveMap)
	rightBishop := NewSingleMatcher(Bishop, rightBishopMoveMap, rightBishopPromotedMoveMap)
	knight := NewDoubleMatcher(Knight, knightMoveMap, knightPromotedMoveMap)
	rook := NewDoubleMatcher(Rook, rookMoveMap, rookPromotedMoveMap)

	for _, piece := range position.GetPieces(side) {
		pawn.Add(piece)
		king.Add(piece)
		queen.Add(piece)
		leftBishop.Add(piece)
		rightBishop.Add(piece)
		knight.Add(piece)
		rook.Add(piece)
	}

	movesRequired := pawn.Count() + king.Count() + queen.Count() +
		leftBishop.Count() + rightBishop.Count() + knight.Count() + rook.Count()
	return movesRequired <= completedMoves
}

func validateInitial(position *Position) bool {
	return position.Turn() != White || !position.FullMoveLog() || position.FullMoves() > 1 ||
		(Analyzer{}).CanBeStarting(position)
}

// Validate is the cheap per-node check a search runs on every position it visits.
func (v Validator) Validate(position *Position) bool {
	return v.ValidateChecks(position) &&
		validateCounts(position.GetPieceCounts(White)) && validateCounts(position.GetPieceCounts(Black)) &&
		validateRequiredMoveNumber(position, White) && validateRequiredMoveNumber(position, Black) &&
		validateInitial(position)
}

// ValidateAndStrictenUserPosition runs the full battery of checks appropriate for
// user-supplied input, and additionally strictens position in place: any castling
// right whose king/rook is no longer in place is downgraded from Unknown to False
// (and rejected outright if the user claimed it True). It returns false with a
// human-readable reason on the first violation found.
func (Validator) ValidateAndStrictenUserPosition(position *Position) (bool, string) {
	for _, side := range []Side{White, Black} {
		label := side.Title()
		if err := validateUserKings(position.GetPieces(side)); err != nil {
			return false, fmt.Sprintf("%s: %v", label, err)
		}
		if err := validateUserCounts(position.GetPieceCounts(side)); err != nil {
			return false, fmt.Sprintf("%s: %v", label, err)
		}
		if err := validateUserPawns(position.GetPieces(side)); err != nil {
			return false, fmt.Sprintf("%s: %v", label, err)
		}
	}

	if position.GetKing(White).IsAdjacent(position.GetKing(Black)) {
		return false, "kings are attacking each other"
	}

	if !(Validator{}).ValidateChecks(position) {
		return false, "side that moved last is in check"
	}

	analyzer := Analyzer{}
	for _, side := range []Side{White, Black} {
		for _, cs := range []CastlingSide{Kingside, Queenside} {
			if !analyzer.IsInCastlingPosition(position, side, cs, false, nil) {
				if position.Castling(side, cs) == True {
					return false, fmt.Sprintf("%s's %s castling is incorrectly defined as possible", side.Title(), cs)
				}
				position.SetCastling(side, cs, False)
			}
		}
	}

	if err := validateUserEnPassant(position); err != nil {
		return false, err.Error()
	}
	if err := validateUserHalfMoves(position); err != nil {
		return false, err.Error()
	}
	if err := validateUserFullMoves(position); err != nil {
		return false, err.Error()
	}

	return true, ""
}
