package chess

// Matchers estimate, per piece type, the minimum number of moves that type's
// pieces must collectively have made to reach their current squares from the
// starting array — a cheap lower bound used by Validator to reject positions that
// claim fewer completed moves than they could possibly have taken.
//
// The per-square cost tables are derived at package initialization time: a
// breadth-first search over each piece kind's own move rules, played on an empty
// board. Occupancy is ignored, since a blocked path can only raise the true move
// count, never lower it, which is the property a lower bound needs. See DESIGN.md
// for the worked-through reasoning.

// rankFromHome reinterprets a piece's rank from the perspective of its own side, so
// a single table can describe both colors: 0 is the rank farthest from home (where
// pawns promote), 7 is the piece's own back rank.
func rankFromHome(piece Piece) Rank {
	if piece.Side == White {
		return Rank(7 - int(piece.Square.Rank))
	}
	return piece.Square.Rank
}

func emptyBoardTargets(kind Kind, from Square) []Square {
	var targets []Square
	line := func(fileDir, rankDir int) {
		f, r := fileDir, rankDir
		for {
			s := from.Shift(f, r)
			if !s.IsOnBoard() {
				return
			}
			targets = append(targets, s)
			f += fileDir
			r += rankDir
		}
	}
	switch kind {
	case King:
		for fd := -1; fd <= 1; fd++ {
			for rd := -1; rd <= 1; rd++ {
				if fd == 0 && rd == 0 {
					continue
				}
				if s := from.Shift(fd, rd); s.IsOnBoard() {
					targets = append(targets, s)
				}
			}
		}
	case Knight:
		deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
		for _, d := range deltas {
			if s := from.Shift(d[0], d[1]); s.IsOnBoard() {
				targets = append(targets, s)
			}
		}
	case Rook:
		line(-1, 0)
		line(1, 0)
		line(0, -1)
		line(0, 1)
	case Bishop:
		line(-1, -1)
		line(1, -1)
		line(-1, 1)
		line(1, 1)
	case Queen:
		line(-1, 0)
		line(1, 0)
		line(0, -1)
		line(0, 1)
		line(-1, -1)
		line(1, -1)
		line(-1, 1)
		line(1, 1)
	}
	return targets
}

// bfsDistance returns, for every square, the minimum number of kind's moves needed
// to reach it from origin on an otherwise empty board; -1 marks squares kind can
// never reach from origin regardless of move count (a dark-squared bishop from a
// light square, for instance).
func bfsDistance(kind Kind, origin Square) [NumRanks][NumFiles]int {
	var dist [NumRanks][NumFiles]int
	for r := range dist {
		for f := range dist[r] {
			dist[r][f] = -1
		}
	}
	dist[origin.Rank][origin.File] = 0
	queue := []Square{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range emptyBoardTargets(kind, cur) {
			if dist[next.Rank][next.File] != -1 {
				continue
			}
			dist[next.Rank][next.File] = dist[cur.Rank][cur.File] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// toHomeRelative reindexes an actual-board distance table (computed from a White
// origin, so actual rank 0 is White's back rank) into the home-relative convention
// Matchers use: index 0 is the rank farthest from home.
func toHomeRelative(actual [NumRanks][NumFiles]int) [NumRanks][NumFiles]int {
	var out [NumRanks][NumFiles]int
	for r := 0; r < int(NumRanks); r++ {
		out[r] = actual[int(NumRanks)-1-r]
	}
	return out
}

// bestOriginDistance picks, for every destination, the cheapest distance achievable
// from any one of candidateOrigins — used for promoted pieces, which may emerge
// from a promotion on any file.
func bestOriginDistance(kind Kind, candidateOrigins []Square) [NumRanks][NumFiles]int {
	var best [NumRanks][NumFiles]int
	for r := range best {
		for f := range best[r] {
			best[r][f] = -1
		}
	}
	for _, origin := range candidateOrigins {
		d := bfsDistance(kind, origin)
		for r := 0; r < int(NumRanks); r++ {
			for f := 0; f < int(NumFiles); f++ {
				if d[r][f] == -1 {
					continue
				}
				if best[r][f] == -1 || d[r][f] < best[r][f] {
					best[r][f] = d[r][f]
				}
			}
		}
	}
	return best
}

func allFilesOnRank(rank Rank) []Square {
	squares := make([]Square, 0, NumFiles)
	for f := File(0); f < NumFiles; f++ {
		squares = append(squares, Square{File: f, Rank: rank})
	}
	return squares
}

var (
	pawnMoveMap,
	kingMoveMap,
	queenMoveMap, queenPromotedMoveMap,
	leftBishopMoveMap, leftBishopPromotedMoveMap,
	rightBishopMoveMap, rightBishopPromotedMoveMap,
	knightMoveMap, knightPromotedMoveMap,
	rookMoveMap, rookPromotedMoveMap [NumRanks][NumFiles]int
)

// pawnJourney is the fewest moves a pawn can take from its home rank to
// promotion: one double push and four single pushes. Promoted-piece maps charge
// this on top of the piece's own distance from the promotion rank.
const pawnJourney = 5

func init() {
	for r := 0; r < int(NumRanks); r++ {
		advanced := 6 - r // home-relative pawn rank is 6; 0 is the promotion rank
		cost := advanced
		if advanced >= 2 {
			cost = advanced - 1 // the first move may be a double push
		}
		if cost < 0 {
			cost = 0
		}
		for f := 0; f < int(NumFiles); f++ {
			pawnMoveMap[r][f] = cost
		}
	}

	kingMoveMap = toHomeRelative(bfsDistance(King, Square{File: FileE, Rank: Rank1}))
	queenMoveMap = toHomeRelative(bfsDistance(Queen, Square{File: FileD, Rank: Rank1}))
	leftBishopMoveMap = toHomeRelative(bfsDistance(Bishop, Square{File: FileC, Rank: Rank1}))
	rightBishopMoveMap = toHomeRelative(bfsDistance(Bishop, Square{File: FileF, Rank: Rank1}))
	knightMoveMap = toHomeRelative(bfsDistance(Knight, Square{File: FileB, Rank: Rank1}))
	rookMoveMap = toHomeRelative(bfsDistance(Rook, Square{File: FileA, Rank: Rank1}))

	promotionRank := allFilesOnRank(Rank8)
	queenPromotedMoveMap = addJourney(toHomeRelative(bestOriginDistance(Queen, promotionRank)))
	knightPromotedMoveMap = addJourney(toHomeRelative(bestOriginDistance(Knight, promotionRank)))
	rookPromotedMoveMap = addJourney(toHomeRelative(bestOriginDistance(Rook, promotionRank)))
	leftBishopPromotedMoveMap = addJourney(toHomeRelative(bestOriginDistance(Bishop, promotionRank)))
	rightBishopPromotedMoveMap = leftBishopPromotedMoveMap
}

func addJourney(m [NumRanks][NumFiles]int) [NumRanks][NumFiles]int {
	for r := 0; r < int(NumRanks); r++ {
		for f := 0; f < int(NumFiles); f++ {
			if m[r][f] >= 0 {
				m[r][f] += pawnJourney
			}
		}
	}
	return m
}

// ZeroMatcher estimates moves for a piece type with no distinguishable individuals
// (king, pawns collectively): each piece's cost simply sums.
type ZeroMatcher struct {
	kind    Kind
	m       [NumRanks][NumFiles]int
	counter int
}

func NewZeroMatcher(kind Kind, m [NumRanks][NumFiles]int) *ZeroMatcher {
	return &ZeroMatcher{kind: kind, m: m}
}

func (z *ZeroMatcher) Add(piece Piece) {
	if piece.Kind != z.kind {
		return
	}
	z.counter += z.m[rankFromHome(piece)][piece.Square.File]
}

func (z *ZeroMatcher) Count() int {
	return z.counter
}

// SingleMatcher estimates moves for a piece type with one distinguished original
// (queen, one of the two same-colored bishops): every piece is charged as if
// promoted except the single piece for which staying "original" is cheapest.
// Pieces on squares the original could never reach are skipped and not charged.
type SingleMatcher struct {
	kind          Kind
	m, promoted   [NumRanks][NumFiles]int
	sumPromoted   int
	maxDifference int
}

func NewSingleMatcher(kind Kind, m, promoted [NumRanks][NumFiles]int) *SingleMatcher {
	return &SingleMatcher{kind: kind, m: m, promoted: promoted}
}

func (s *SingleMatcher) Add(piece Piece) {
	if piece.Kind != s.kind {
		return
	}
	rank := rankFromHome(piece)
	file := piece.Square.File
	if s.m[rank][file] < 0 {
		return
	}
	s.sumPromoted += s.promoted[rank][file]
	if difference := s.promoted[rank][file] - s.m[rank][file]; difference > s.maxDifference {
		s.maxDifference = difference
	}
}

func (s *SingleMatcher) Count() int {
	return s.sumPromoted - s.maxDifference
}

// DoubleMatcher estimates moves for a piece type with two distinguished originals
// on opposite wings (rooks, knights): every piece is charged as promoted except up
// to one piece that's cheapest to treat as the left original and one (a different
// piece, if possible) cheapest to treat as the right original.
type DoubleMatcher struct {
	kind                                                       Kind
	m, promoted                                                [NumRanks][NumFiles]int
	sumPromoted, totalPieces                                   int
	firstLeftMax, secondLeftMax, firstRightMax, secondRightMax int
	leftIndex, rightIndex                                      int
}

func NewDoubleMatcher(kind Kind, m, promoted [NumRanks][NumFiles]int) *DoubleMatcher {
	return &DoubleMatcher{kind: kind, m: m, promoted: promoted}
}

func (d *DoubleMatcher) Add(piece Piece) {
	if piece.Kind != d.kind {
		return
	}
	rank := rankFromHome(piece)
	leftFile := piece.Square.File
	rightFile := FileH - leftFile
	promotedValue := d.promoted[rank][leftFile]
	d.sumPromoted += promotedValue

	if leftDifference := promotedValue - d.m[rank][leftFile]; leftDifference > d.firstLeftMax {
		d.secondLeftMax = d.firstLeftMax
		d.firstLeftMax = leftDifference
		d.leftIndex = d.totalPieces
	} else if leftDifference > d.secondLeftMax {
		d.secondLeftMax = leftDifference
	}

	if rightDifference := promotedValue - d.m[rank][rightFile]; rightDifference > d.firstRightMax {
		d.secondRightMax = d.firstRightMax
		d.firstRightMax = rightDifference
		d.rightIndex = d.totalPieces
	} else if rightDifference > d.secondRightMax {
		d.secondRightMax = rightDifference
	}

	d.totalPieces++
}

func (d *DoubleMatcher) Count() int {
	if d.leftIndex != d.rightIndex {
		return d.sumPromoted - (d.firstLeftMax + d.firstRightMax)
	}
	a := d.firstLeftMax + d.secondRightMax
	b := d.firstRightMax + d.secondLeftMax
	if a > b {
		return d.sumPromoted - a
	}
	return d.sumPromoted - b
}
