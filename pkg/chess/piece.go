package chess

// Piece is a piece kind and side, located on a square. Position hands these out by
// value from GetPieces/GetKing; callers must not hold onto a piece's index into the
// owning side's list across a mutation, since RemovePiece renumbers via swap-with-last
// (see Position.RemovePiece).
type Piece struct {
	Kind   Kind
	Side   Side
	Square Square
}

// IsAdjacent reports whether the two pieces occupy adjacent squares.
func (p Piece) IsAdjacent(o Piece) bool {
	return p.Square.IsAdjacent(o.Square)
}

// PieceCounts tracks, for one side, how many of each non-king piece type are on the
// board, split by bishop square color (light/dark) since that distinction matters
// to the piece-count check in validateCounts: a bishop can never change the
// color of square it stands on.
type PieceCounts struct {
	Queen             int
	Rook              int
	LightSquareBishop int
	DarkSquareBishop  int
	Knight            int
	Pawn              int
}

// IsLightSquare reports whether the square is a "light" square in the standard
// coloring (a1 is dark).
func (s Square) IsLightSquare() bool {
	return (int(s.File)+int(s.Rank))%2 == 1
}

func (c *PieceCounts) update(p Piece, delta int) {
	switch p.Kind {
	case Queen:
		c.Queen += delta
	case Rook:
		c.Rook += delta
	case Bishop:
		if p.Square.IsLightSquare() {
			c.LightSquareBishop += delta
		} else {
			c.DarkSquareBishop += delta
		}
	case Knight:
		c.Knight += delta
	case Pawn:
		c.Pawn += delta
	}
}

// Total returns the number of non-king pieces counted.
func (c PieceCounts) Total() int {
	return c.Queen + c.Rook + c.LightSquareBishop + c.DarkSquareBishop + c.Knight + c.Pawn
}
