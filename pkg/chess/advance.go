package chess

// Advancer generates and applies forward (legal-chess-rule) moves. It is the
// ordinary move generator that Retractor's inverse is checked against, and that
// Analyzer uses to compute legal moves and detect check/checkmate.
type Advancer struct{}

const advanceMovesCapacity = 400

func newMove(piece Piece, t MoveType, target Square, captured Kind) Move {
	return Move{Kind: piece.Kind, Side: piece.Side, Type: t, From: piece.Square, To: target, CapturedPiece: captured, PromotedPiece: King}
}

// EnumerateMoves lists every pseudo-legal move (ignoring whether it leaves the
// mover's own king in check) available to the side to move.
func (Advancer) EnumerateMoves(position *Position) []Move {
	moves := make([]Move, 0, advanceMovesCapacity)
	for _, piece := range position.GetPieces(position.Turn()) {
		switch piece.Kind {
		case King:
			advancerEnumerateKingMoves(position, piece, &moves)
		case Queen:
			advancerEnumerateRookLikeMoves(position, piece, &moves)
			advancerEnumerateBishopLikeMoves(position, piece, &moves)
		case Rook:
			advancerEnumerateRookLikeMoves(position, piece, &moves)
		case Bishop:
			advancerEnumerateBishopLikeMoves(position, piece, &moves)
		case Knight:
			advancerEnumerateKnightMoves(position, piece, &moves)
		case Pawn:
			advancerEnumeratePawnMoves(position, piece, &moves)
		}
	}
	return moves
}

func advancerEnumerateKingMoves(position *Position, piece Piece, moves *[]Move) {
	for fileDelta := -1; fileDelta <= 1; fileDelta++ {
		for rankDelta := -1; rankDelta <= 1; rankDelta++ {
			if fileDelta == 0 && rankDelta == 0 {
				continue
			}
			square := piece.Square.Shift(fileDelta, rankDelta)
			if !position.IsOnBoard(square) {
				continue
			}
			info, occupied := position.GetSquareInfo(square)
			if !occupied || info.Side != piece.Side {
				captured := King
				t := SimpleMove
				if occupied {
					captured = info.Kind
					t = Capture
				}
				*moves = append(*moves, newMove(piece, t, square, captured))
			}
		}
	}
	// Castling is considered only while the castling indicator is not False and the
	// king and that rook stand on their home squares; the intervening squares and
	// attacks are checked here as well.
	if position.Castling(piece.Side, Kingside) != False &&
		(Analyzer{}).IsInCastlingPosition(position, piece.Side, Kingside, false, nil) {
		if position.IsSquareEmpty(piece.Square.Shift(1, 0)) &&
			position.IsSquareEmpty(piece.Square.Shift(2, 0)) &&
			!(Analyzer{}).IsUnderAttack(position, piece.Side, piece.Square) &&
			!(Analyzer{}).IsUnderAttack(position, piece.Side, piece.Square.Shift(1, 0)) {
			*moves = append(*moves, newMove(piece, KingsideCastling, piece.Square.Shift(2, 0), King))
		}
	}
	if position.Castling(piece.Side, Queenside) != False &&
		(Analyzer{}).IsInCastlingPosition(position, piece.Side, Queenside, false, nil) {
		if position.IsSquareEmpty(piece.Square.Shift(-1, 0)) &&
			position.IsSquareEmpty(piece.Square.Shift(-2, 0)) &&
			position.IsSquareEmpty(piece.Square.Shift(-3, 0)) &&
			!(Analyzer{}).IsUnderAttack(position, piece.Side, piece.Square) &&
			!(Analyzer{}).IsUnderAttack(position, piece.Side, piece.Square.Shift(-1, 0)) {
			*moves = append(*moves, newMove(piece, QueensideCastling, piece.Square.Shift(-2, 0), King))
		}
	}
}

func advancerEnumerateLinearMoves(position *Position, piece Piece, fileDir, rankDir int, moves *[]Move) {
	fileDelta, rankDelta := fileDir, rankDir
	for {
		square := piece.Square.Shift(fileDelta, rankDelta)
		if !position.IsOnBoard(square) {
			break
		}
		info, occupied := position.GetSquareInfo(square)
		if occupied {
			if info.Side != piece.Side {
				*moves = append(*moves, newMove(piece, Capture, square, info.Kind))
			}
			break
		}
		*moves = append(*moves, newMove(piece, SimpleMove, square, King))
		fileDelta += fileDir
		rankDelta += rankDir
	}
}

func advancerEnumerateRookLikeMoves(position *Position, piece Piece, moves *[]Move) {
	advancerEnumerateLinearMoves(position, piece, -1, 0, moves)
	advancerEnumerateLinearMoves(position, piece, 1, 0, moves)
	advancerEnumerateLinearMoves(position, piece, 0, -1, moves)
	advancerEnumerateLinearMoves(position, piece, 0, 1, moves)
}

func advancerEnumerateBishopLikeMoves(position *Position, piece Piece, moves *[]Move) {
	advancerEnumerateLinearMoves(position, piece, -1, -1, moves)
	advancerEnumerateLinearMoves(position, piece, 1, -1, moves)
	advancerEnumerateLinearMoves(position, piece, -1, 1, moves)
	advancerEnumerateLinearMoves(position, piece, 1, 1, moves)
}

func advancerEnumerateKnightMoves(position *Position, piece Piece, moves *[]Move) {
	for fileDelta := -2; fileDelta <= 2; fileDelta++ {
		if fileDelta == 0 {
			continue
		}
		rankDelta := abs(fileDelta) - 3
		for {
			square := piece.Square.Shift(fileDelta, rankDelta)
			if position.IsOnBoard(square) {
				info, occupied := position.GetSquareInfo(square)
				if !occupied || info.Side != piece.Side {
					captured := King
					t := SimpleMove
					if occupied {
						captured = info.Kind
						t = Capture
					}
					*moves = append(*moves, newMove(piece, t, square, captured))
				}
			}
			if rankDelta > 0 {
				break
			}
			rankDelta = -rankDelta
		}
	}
}

var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

func advancerEnumeratePromotionMoves(move Move, moves *[]Move) {
	for _, promoted := range promotionKinds {
		m := move
		m.PromotedPiece = promoted
		*moves = append(*moves, m)
	}
}

func advancerEnumeratePawnMoves(position *Position, piece Piece, moves *[]Move) {
	enPassant, enPassantFile := position.EnPassant()
	initialRank := Rank(1)
	enPassantRank := Rank(4)
	lastRank := Rank(7)
	if piece.Side == Black {
		initialRank, enPassantRank, lastRank = Rank(6), Rank(3), Rank(0)
	}
	direction := piece.Side.Forward()

	{
		square := piece.Square.Shift(0, direction)
		if position.IsSquareEmpty(square) {
			if square.Rank == lastRank {
				advancerEnumeratePromotionMoves(newMove(piece, Promotion, square, King), moves)
			} else {
				*moves = append(*moves, newMove(piece, SimpleMove, square, King))
				if piece.Square.Rank == initialRank {
					forward := square.Shift(0, direction)
					if position.IsSquareEmpty(forward) {
						*moves = append(*moves, newMove(piece, SimpleMove, forward, King))
					}
				}
			}
		}
	}
	for fileDelta := -1; fileDelta <= 1; fileDelta += 2 {
		square := piece.Square.Shift(fileDelta, direction)
		if !position.IsOnBoard(square) {
			continue
		}
		info, occupied := position.GetSquareInfo(square)
		if occupied {
			if info.Side != piece.Side {
				if square.Rank == lastRank {
					advancerEnumeratePromotionMoves(newMove(piece, PromotionWithCapture, square, info.Kind), moves)
				} else {
					*moves = append(*moves, newMove(piece, Capture, square, info.Kind))
				}
			}
		} else if piece.Square.Rank == enPassantRank {
			behind := square.Shift(0, -direction)
			ahead := square.Shift(0, direction)
			if (enPassant == True && enPassantFile == square.File) ||
				(enPassant == Unknown &&
					position.IsPieceInSquare(behind, piece.Side.Opponent(), Pawn) &&
					position.IsSquareEmpty(ahead)) {
				*moves = append(*moves, newMove(piece, EnPassant, square, Pawn))
			}
		}
	}
}

func advancerUpdatePieces(position *Position, move Move) {
	switch move.Type {
	case SimpleMove:
		position.MovePiece(move.From, move.To)
	case Promotion:
		position.RemovePiece(move.From)
		position.AddPiece(move.To, move.PromotedPiece, move.Side)
	case Capture:
		position.RemovePiece(move.To)
		position.MovePiece(move.From, move.To)
	case PromotionWithCapture:
		position.RemovePiece(move.To)
		position.RemovePiece(move.From)
		position.AddPiece(move.To, move.PromotedPiece, move.Side)
	case EnPassant:
		capturedPawnRank := Rank(4)
		if move.Side == Black {
			capturedPawnRank = Rank(3)
		}
		position.RemovePiece(Square{File: move.To.File, Rank: capturedPawnRank})
		position.MovePiece(move.From, move.To)
	case KingsideCastling, QueensideCastling:
		firstRank := move.Side.HomeRank()
		position.MovePiece(move.From, move.To)
		if move.Type == KingsideCastling {
			position.MovePiece(Square{File: FileH, Rank: firstRank}, Square{File: FileF, Rank: firstRank})
		} else {
			position.MovePiece(Square{File: FileA, Rank: firstRank}, Square{File: FileD, Rank: firstRank})
		}
	}
}

func advancerUpdateCastling(position *Position) {
	for side := Side(0); side < NumSides; side++ {
		for _, cs := range []CastlingSide{Kingside, Queenside} {
			if !(Analyzer{}).IsInCastlingPosition(position, side, cs, false, nil) {
				position.SetCastling(side, cs, False)
			}
		}
	}
}

func advancerUpdateEnPassant(position *Position, move Move) {
	if move.Kind == Pawn && abs(int(move.From.Rank)-int(move.To.Rank)) == 2 {
		position.SetEnPassant(True, move.From.File)
	} else {
		position.SetEnPassant(False, 0)
	}
}

func advancerUpdateMoves(position *Position, move Move) {
	position.SetTurn(move.Side.Opponent())

	if position.HalfMoveLog() {
		if move.Kind == Pawn || move.Type == Capture {
			position.SetHalfMoves(true, 0)
		} else {
			position.IncrementHalfMoves()
		}
	}
	if position.FullMoveLog() && move.Side == Black {
		position.IncrementFullMoves()
	}
}

// Advance applies move to position in place, updating pieces, castling rights,
// en-passant state and the move counters.
func (Advancer) Advance(position *Position, move Move) {
	advancerUpdatePieces(position, move)
	advancerUpdateCastling(position)
	advancerUpdateEnPassant(position, move)
	advancerUpdateMoves(position, move)
}

// GetLegalMoves filters EnumerateMoves down to moves that do not leave the mover's
// own king in check. If returnFirst is set, it stops and returns after the first
// legal move found (used by IsCheckmated, which only needs to know whether one exists).
func (a Advancer) GetLegalMoves(position *Position, returnFirst bool) []Move {
	all := a.EnumerateMoves(position)
	capacity := len(all)
	if returnFirst {
		capacity = 1
	}
	legal := make([]Move, 0, capacity)
	analyzer := Analyzer{}
	for _, move := range all {
		next := position.Clone()
		a.Advance(next, move)
		if !analyzer.IsInCheck(next, position.Turn()) {
			legal = append(legal, move)
			if returnFirst {
				return legal
			}
		}
	}
	return legal
}
