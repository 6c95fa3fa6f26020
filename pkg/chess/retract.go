package chess

// Retractor generates and applies retrograde moves: the logical inverse of
// Advancer. EnumerateMoves asks, for each of the side not to move's pieces, "what
// move could have just placed this piece here?" and Retract undoes a chosen move,
// restoring the pieces and turn Advancer.Advance would have found; castling and
// en-passant fields that the position cannot determine are set to Unknown.
type Retractor struct{}

const retractMovesCapacity = 2500

func retractorConstructMove(piece Piece, t MoveType, from Square, captured Kind) Move {
	return Move{Kind: piece.Kind, Side: piece.Side, Type: t, From: from, To: piece.Square, CapturedPiece: captured, PromotedPiece: King}
}

var captureRetractionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

func retractorEnumerateCaptureMoves(template Move, moves *[]Move) {
	for _, captured := range captureRetractionKinds {
		m := template
		m.CapturedPiece = captured
		*moves = append(*moves, m)
	}
	if template.To.Rank != Rank1 && template.To.Rank != Rank8 {
		m := template
		m.CapturedPiece = Pawn
		*moves = append(*moves, m)
	}
}

// pawnOrCapture being True means "the last move must have been a pawn move or a
// capture" (half-move clock just reset to 0); False means it was neither; Unknown
// means either is possible, because the clock isn't tracked.
func retractorEnumeratePotentialCaptureMoves(piece Piece, square Square, pawnOrCapture Ternary, moves *[]Move) {
	if pawnOrCapture != True {
		*moves = append(*moves, retractorConstructMove(piece, SimpleMove, square, King))
	}
	if pawnOrCapture != False {
		retractorEnumerateCaptureMoves(retractorConstructMove(piece, Capture, square, King), moves)
	}
}

func retractorEnumerateKingMoves(position *Position, piece Piece, pawnOrCapture Ternary, moves *[]Move) {
	for fileDelta := -1; fileDelta <= 1; fileDelta++ {
		for rankDelta := -1; rankDelta <= 1; rankDelta++ {
			if fileDelta == 0 && rankDelta == 0 {
				continue
			}
			square := piece.Square.Shift(fileDelta, rankDelta)
			if position.IsOnBoard(square) && position.IsSquareEmpty(square) {
				retractorEnumeratePotentialCaptureMoves(piece, square, pawnOrCapture, moves)
			}
		}
	}
	firstRank := piece.Side.HomeRank()
	analyzer := Analyzer{}
	if pawnOrCapture != True && piece.Square.Rank == firstRank {
		switch piece.Square.File {
		case FileG:
			initialSquare := piece.Square.Shift(-2, 0)
			rookSquare := piece.Square.Shift(-1, 0)
			if position.IsPieceInSquare(rookSquare, piece.Side, Rook) &&
				position.IsSquareEmpty(initialSquare) &&
				position.IsSquareEmpty(piece.Square.Shift(1, 0)) &&
				!analyzer.IsUnderAttack(position, piece.Side, rookSquare) &&
				!analyzer.IsUnderAttack(position, piece.Side, initialSquare) {
				*moves = append(*moves, retractorConstructMove(piece, KingsideCastling, initialSquare, King))
			}
		case FileC:
			initialSquare := piece.Square.Shift(2, 0)
			rookSquare := piece.Square.Shift(1, 0)
			if position.IsPieceInSquare(rookSquare, piece.Side, Rook) &&
				position.IsSquareEmpty(initialSquare) &&
				position.IsSquareEmpty(piece.Square.Shift(-1, 0)) &&
				position.IsSquareEmpty(piece.Square.Shift(-2, 0)) &&
				!analyzer.IsUnderAttack(position, piece.Side, rookSquare) &&
				!analyzer.IsUnderAttack(position, piece.Side, initialSquare) {
				*moves = append(*moves, retractorConstructMove(piece, QueensideCastling, initialSquare, King))
			}
		}
	}
}

func retractorEnumerateLinearMoves(position *Position, piece Piece, fileDir, rankDir int, pawnOrCapture Ternary, moves *[]Move) {
	fileDelta, rankDelta := fileDir, rankDir
	for {
		square := piece.Square.Shift(fileDelta, rankDelta)
		if position.IsOnBoard(square) && position.IsSquareEmpty(square) {
			retractorEnumeratePotentialCaptureMoves(piece, square, pawnOrCapture, moves)
		} else {
			break
		}
		fileDelta += fileDir
		rankDelta += rankDir
	}
}

func retractorEnumerateRookLikeMoves(position *Position, piece Piece, pawnOrCapture Ternary, moves *[]Move) {
	retractorEnumerateLinearMoves(position, piece, -1, 0, pawnOrCapture, moves)
	retractorEnumerateLinearMoves(position, piece, 1, 0, pawnOrCapture, moves)
	retractorEnumerateLinearMoves(position, piece, 0, -1, pawnOrCapture, moves)
	retractorEnumerateLinearMoves(position, piece, 0, 1, pawnOrCapture, moves)
}

func retractorEnumerateBishopLikeMoves(position *Position, piece Piece, pawnOrCapture Ternary, moves *[]Move) {
	retractorEnumerateLinearMoves(position, piece, -1, -1, pawnOrCapture, moves)
	retractorEnumerateLinearMoves(position, piece, 1, -1, pawnOrCapture, moves)
	retractorEnumerateLinearMoves(position, piece, -1, 1, pawnOrCapture, moves)
	retractorEnumerateLinearMoves(position, piece, 1, 1, pawnOrCapture, moves)
}

func retractorEnumerateKnightMoves(position *Position, piece Piece, pawnOrCapture Ternary, moves *[]Move) {
	for fileDelta := -2; fileDelta <= 2; fileDelta++ {
		if fileDelta == 0 {
			continue
		}
		rankDelta := abs(fileDelta) - 3
		for {
			square := piece.Square.Shift(fileDelta, rankDelta)
			if position.IsOnBoard(square) && position.IsSquareEmpty(square) {
				retractorEnumeratePotentialCaptureMoves(piece, square, pawnOrCapture, moves)
			}
			if rankDelta > 0 {
				break
			}
			rankDelta = -rankDelta
		}
	}
}

func retractorEnumeratePawnMoves(position *Position, piece Piece, enPassant Ternary, moves *[]Move) {
	initialRank := Rank(1)
	enPassantRank := Rank(3)
	shift := -1
	if piece.Side == Black {
		initialRank, enPassantRank, shift = Rank(6), Rank(4), 1
	}
	if piece.Square.Rank == initialRank {
		return
	}

	_, epFile := position.EnPassant()
	if enPassant == True {
		if piece.Square.File == epFile && piece.Square.Rank == enPassantRank {
			*moves = append(*moves, retractorConstructMove(piece, SimpleMove, piece.Square.Shift(0, 2*shift), King))
		}
		return
	}
	if enPassant != False {
		if piece.Square.Rank == enPassantRank &&
			position.IsSquareEmpty(piece.Square.Shift(0, shift)) &&
			position.IsSquareEmpty(piece.Square.Shift(0, 2*shift)) {
			*moves = append(*moves, retractorConstructMove(piece, SimpleMove, piece.Square.Shift(0, 2*shift), King))
		}
	}
	{
		square := piece.Square.Shift(0, shift)
		if position.IsSquareEmpty(square) {
			*moves = append(*moves, retractorConstructMove(piece, SimpleMove, square, King))
		}
	}
	for fileDelta := -1; fileDelta <= 1; fileDelta += 2 {
		square := piece.Square.Shift(fileDelta, shift)
		if !position.IsOnBoard(square) {
			continue
		}
		if position.IsSquareEmpty(square) {
			retractorEnumerateCaptureMoves(retractorConstructMove(piece, Capture, square, King), moves)
			if square.Rank == Rank(int(enPassantRank)-shift) &&
				position.IsSquareEmpty(piece.Square.Shift(0, shift)) &&
				position.IsSquareEmpty(piece.Square.Shift(0, -shift)) {
				*moves = append(*moves, retractorConstructMove(piece, EnPassant, square, Pawn))
			}
		}
	}
}

// retractorEnumeratePromotionMoves considers whether piece, if standing on its
// side's last rank, could instead have just been a pawn promoting there — a
// candidate independent of piece's actual kind (any promoted piece can retract to
// a pawn), and checked for every non-king piece regardless of what enumerator
// handled it above.
func retractorEnumeratePromotionMoves(position *Position, piece Piece, moves *[]Move) {
	lastRank := Rank8
	if piece.Side == Black {
		lastRank = Rank1
	}
	if piece.Square.Rank != lastRank || piece.Kind == King {
		return
	}
	shift := -1
	if piece.Side == Black {
		shift = 1
	}
	{
		square := piece.Square.Shift(0, shift)
		if position.IsSquareEmpty(square) {
			*moves = append(*moves, Move{Kind: Pawn, Side: piece.Side, Type: Promotion, From: square, To: piece.Square, CapturedPiece: King, PromotedPiece: piece.Kind})
		}
	}
	for fileDelta := -1; fileDelta <= 1; fileDelta += 2 {
		square := piece.Square.Shift(fileDelta, shift)
		if position.IsOnBoard(square) && position.IsSquareEmpty(square) {
			retractorEnumerateCaptureMoves(Move{Kind: Pawn, Side: piece.Side, Type: PromotionWithCapture, From: square, To: piece.Square, CapturedPiece: King, PromotedPiece: piece.Kind}, moves)
		}
	}
}

// EnumerateMoves lists every pseudo-legal retraction available from position: for
// each piece of the side not to move and plausible prior square, one candidate per
// move type and captured piece that could have been involved. The
// result is empty when the move counters prove no move could have been made (full
// move 1, White to move: nothing precedes the start of the game).
func (Retractor) EnumerateMoves(position *Position) []Move {
	var moves []Move
	if position.FullMoveLog() && position.FullMoves() == 1 && position.Turn() == White {
		return moves
	}
	moves = make([]Move, 0, retractMovesCapacity)

	pawnOrCapture := Unknown
	if position.HalfMoveLog() {
		if position.HalfMoves() == 0 {
			pawnOrCapture = True
		} else {
			pawnOrCapture = False
		}
	}
	enPassant, _ := position.EnPassant()

	for _, piece := range position.GetPieces(position.Turn().Opponent()) {
		switch piece.Kind {
		case King:
			if enPassant != True {
				retractorEnumerateKingMoves(position, piece, pawnOrCapture, &moves)
			}
		case Queen:
			if enPassant != True {
				retractorEnumerateRookLikeMoves(position, piece, pawnOrCapture, &moves)
				retractorEnumerateBishopLikeMoves(position, piece, pawnOrCapture, &moves)
			}
		case Rook:
			if enPassant != True {
				retractorEnumerateRookLikeMoves(position, piece, pawnOrCapture, &moves)
			}
		case Bishop:
			if enPassant != True {
				retractorEnumerateBishopLikeMoves(position, piece, pawnOrCapture, &moves)
			}
		case Knight:
			if enPassant != True {
				retractorEnumerateKnightMoves(position, piece, pawnOrCapture, &moves)
			}
		case Pawn:
			if pawnOrCapture != False {
				retractorEnumeratePawnMoves(position, piece, enPassant, &moves)
			}
		}
		if pawnOrCapture != False && enPassant != True {
			retractorEnumeratePromotionMoves(position, piece, &moves)
		}
	}
	return moves
}

func retractorUpdatePieces(position *Position, move Move) {
	opponent := move.Side.Opponent()
	switch move.Type {
	case SimpleMove:
		position.MovePiece(move.To, move.From)
	case Promotion:
		position.RemovePiece(move.To)
		position.AddPiece(move.From, Pawn, move.Side)
	case Capture:
		position.MovePiece(move.To, move.From)
		position.AddPiece(move.To, move.CapturedPiece, opponent)
	case PromotionWithCapture:
		position.RemovePiece(move.To)
		position.AddPiece(move.From, Pawn, move.Side)
		position.AddPiece(move.To, move.CapturedPiece, opponent)
	case EnPassant:
		position.MovePiece(move.To, move.From)
		capturedPawnRank := Rank(4)
		if move.Side == Black {
			capturedPawnRank = Rank(3)
		}
		position.AddPiece(Square{File: move.To.File, Rank: capturedPawnRank}, Pawn, opponent)
	case KingsideCastling, QueensideCastling:
		firstRank := move.Side.HomeRank()
		position.MovePiece(move.To, move.From)
		if move.Type == KingsideCastling {
			position.MovePiece(Square{File: FileF, Rank: firstRank}, Square{File: FileH, Rank: firstRank})
		} else {
			position.MovePiece(Square{File: FileD, Rank: firstRank}, Square{File: FileA, Rank: firstRank})
		}
	}
}

func retractorUpdateCastling(position *Position, move Move) {
	side := move.Side
	opponent := side.Opponent()
	analyzer := Analyzer{}
	kingCastling := position.Castling(side, Kingside)
	queenCastling := position.Castling(side, Queenside)

	switch move.Type {
	case SimpleMove, Capture:
		if kingCastling != True {
			state := False
			if analyzer.IsInCastlingPosition(position, side, Kingside, kingCastling == False, &move) {
				state = Unknown
			}
			position.SetCastling(side, Kingside, state)
		}
		if queenCastling != True {
			state := False
			if analyzer.IsInCastlingPosition(position, side, Queenside, queenCastling == False, &move) {
				state = Unknown
			}
			position.SetCastling(side, Queenside, state)
		}
	case KingsideCastling:
		position.SetCastling(side, Kingside, True)
		state := False
		if analyzer.IsInCastlingPosition(position, side, Queenside, false, nil) {
			state = Unknown
		}
		position.SetCastling(side, Queenside, state)
	case QueensideCastling:
		state := False
		if analyzer.IsInCastlingPosition(position, side, Kingside, false, nil) {
			state = Unknown
		}
		position.SetCastling(side, Kingside, state)
		position.SetCastling(side, Queenside, True)
	}

	switch move.Type {
	case Capture, PromotionWithCapture:
		if analyzer.IsInCastlingPosition(position, opponent, Kingside, true, &move) {
			position.SetCastling(opponent, Kingside, Unknown)
		}
		if analyzer.IsInCastlingPosition(position, opponent, Queenside, true, &move) {
			position.SetCastling(opponent, Queenside, Unknown)
		}
	}
}

func retractorUpdateEnPassant(position *Position, move Move) {
	if move.Type == EnPassant {
		position.SetEnPassant(True, move.To.File)
	} else {
		position.SetEnPassant(Unknown, 0)
	}
}

func retractorUpdateMoves(position *Position, move Move) {
	position.SetTurn(move.Side)

	if position.HalfMoveLog() {
		if position.HalfMoves() == 0 {
			position.SetHalfMoves(false, 0)
		} else {
			position.DecrementHalfMoves()
		}
	}
	if position.FullMoveLog() && move.Side == Black {
		position.DecrementFullMoves()
	}
}

// Retract undoes move, which must have come from EnumerateMoves for this exact
// position, restoring the position to what it was one ply earlier.
func (Retractor) Retract(position *Position, move Move) {
	retractorUpdatePieces(position, move)
	retractorUpdateCastling(position, move)
	retractorUpdateEnPassant(position, move)
	retractorUpdateMoves(position, move)
}
