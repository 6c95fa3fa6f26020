package search

import "github.com/seekerror/chass/pkg/chess"

// PositionFound is invoked by Backtracker each time it reaches the starting
// array, or the bottom of its search depth, along the retraction sequence
// built up in moves (oldest retraction first). fullExaminationDepth is passed
// through so a caller accumulating several callbacks can tell which search
// phase produced this one.
type PositionFound func(position *chess.Position, moves []chess.Move, fullExaminationDepth int)

// Backtracker proves position reachable from the starting array (or bounds
// how far back it can be traced) by recursively retracting moves depth-first.
// Below fullExaminationDepth it keeps searching every branch even after one
// succeeds, to enumerate every distinct sequence; from fullExaminationDepth
// onward it stops at the first sequence that reaches the goal, since beyond
// that depth proving reachability is enough.
type Backtracker struct {
	OnPosition PositionFound
	Reporter   *ProgressReporter

	fullExaminationDepth, totalDepth int
}

// NewBacktracker returns a Backtracker that reports each reached position to
// onPosition and its progress (if non-nil) to reporter.
func NewBacktracker(onPosition PositionFound, reporter *ProgressReporter) *Backtracker {
	if reporter == nil {
		reporter = NewProgressReporter(nil)
	}
	return &Backtracker{OnPosition: onPosition, Reporter: reporter}
}

// Search retraces position up to totalDepth moves into the past, calling
// OnPosition for every distinct sequence found within fullExaminationDepth
// moves, and for at most one continuation beyond it per such sequence. It returns whether any
// qualifying sequence was found at all.
func (b *Backtracker) Search(position *chess.Position, fullExaminationDepth, totalDepth int) bool {
	b.fullExaminationDepth = fullExaminationDepth
	b.totalDepth = totalDepth
	b.Reporter.Start()
	found := b.backtrack(position, nil, nil)
	b.Reporter.End()
	return found
}

func (b *Backtracker) backtrack(position *chess.Position, moves []chess.Move, progress []Frame) bool {
	if !(chess.Validator{}).Validate(position) {
		return false
	}

	currentDepth := len(moves)
	fullExamination := currentDepth < b.fullExaminationDepth
	atDeepest := currentDepth == b.totalDepth

	if atDeepest || (chess.Analyzer{}).CanBeStarting(position) {
		if b.OnPosition != nil {
			b.OnPosition(position, append([]chess.Move(nil), moves...), b.fullExaminationDepth)
		}
		if atDeepest || !fullExamination {
			return true
		}
	}

	found := false
	retractMoves := (chess.Retractor{}).EnumerateMoves(position)
	progress = append(progress, Frame{0, len(retractMoves)})
	for _, retractMove := range retractMoves {
		b.Reporter.Report(progress, false)

		previous := position.Clone()
		(chess.Retractor{}).Retract(previous, retractMove)
		moves = append(moves, retractMove)
		if b.backtrack(previous, moves, progress) {
			found = true
		}
		moves = moves[:len(moves)-1]
		if found && !fullExamination {
			return true
		}
		progress[len(progress)-1].Index++
	}
	return found
}
