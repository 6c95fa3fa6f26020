// Package output renders a found retrograde sequence as fullmove-numbered long
// algebraic notation, interleaved with the placement-only FEN of every position
// reached at the boundary of full examination.
package output

import (
	"fmt"
	"io"

	"github.com/seekerror/chass/pkg/chess"
)

// Write renders position and the retraction sequence moves (most-recent-move
// first, exactly as Backtracker and MeeterInTheMiddle report it) to w.
// fullExaminationDepth marks where the examination stopped being exhaustive;
// the position reached at that depth is printed again as its own FEN line so
// a reader can see where a proof-only tail begins.
func Write(w io.Writer, position *chess.Position, moves []chess.Move, fullExaminationDepth int) {
	fmt.Fprint(w, position.ToFENPlacement(false))

	totalDepth := len(moves)
	if totalDepth > 0 {
		currentMove := nextMoveNumber(position, moves)
		current := position.Clone()
		lineBreak := true

		for depth := totalDepth - 1; depth >= 0; depth-- {
			move := moves[depth]
			if lineBreak {
				fmt.Fprintf(w, "\n%d.", currentMove)
				if move.Side == chess.Black {
					fmt.Fprint(w, " -")
				}
			}

			(chess.Advancer{}).Advance(current, move)
			check := (chess.Analyzer{}).IsInCheck(current, current.Turn())
			mate := depth == 0 && check && (chess.Analyzer{}).IsCheckmated(current)

			fmt.Fprintf(w, " %s", move.ToLongAlgebraic(check, mate))
			lineBreak = false

			if depth == fullExaminationDepth && depth > 0 {
				fmt.Fprintf(w, "\n%s", current.ToFENPlacement(false))
				lineBreak = true
			}
			if move.Side == chess.Black {
				currentMove++
				lineBreak = true
			}
		}
	}

	fmt.Fprint(w, "\n-----\n")
}

// nextMoveNumber computes the fullmove number to print next to the first
// retracted move in the sequence: the position's own full-move number when that
// counter is logged; otherwise a non-positive number chosen so that the input
// position's own (unplayed) move is numbered 0.
func nextMoveNumber(position *chess.Position, moves []chess.Move) int {
	if position.FullMoveLog() {
		return position.FullMoves()
	}
	totalDepth := len(moves)
	offset := 0
	if moves[0].Side == chess.Black {
		offset = 1
	}
	return -(totalDepth + offset) / 2
}
