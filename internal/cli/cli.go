// Package cli implements chass's command-line behavior: parsing the depth
// flags, reading and validating the input position, choosing a search
// strategy, and writing every sequence it finds.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/seekerror/chass/internal/output"
	"github.com/seekerror/chass/pkg/chess"
	"github.com/seekerror/chass/pkg/chess/fen"
	"github.com/seekerror/chass/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Config holds the already-validated, non-negative depth parameters a run
// needs. At least one of FullExaminationDepth or ProofExtraDepth must have
// been requested by the user; the one left unset is zero.
type Config struct {
	FullExaminationDepth int
	ProofExtraDepth      int
	ShowProgress         bool
}

// TotalDepth is the deepest a search is allowed to retract: every sequence
// within FullExaminationDepth moves is enumerated exhaustively, and the
// search is permitted to keep looking for a single proof up to this depth.
func (c Config) TotalDepth() int {
	return c.FullExaminationDepth + c.ProofExtraDepth
}

// ReadPosition reads a single extended-FEN record from r, decodes it, and
// validates and strictens it per the rules user-supplied input must satisfy.
// It returns a descriptive error on either failure, distinguishing "FEN
// parsing failed" from "the position is not valid".
func ReadPosition(ctx context.Context, r io.Reader) (*chess.Position, error) {
	record, ok := <-readLineAsync(ctx, r)
	if !ok {
		return nil, fmt.Errorf("reading input: no line available on stdin")
	}

	position, err := fen.Decode(record)
	if err != nil {
		return nil, fmt.Errorf("FEN parsing failed: %w", err)
	}

	if ok, issue := (chess.Validator{}).ValidateAndStrictenUserPosition(position); !ok {
		return nil, fmt.Errorf("the position is not valid: %s", issue)
	}
	return position, nil
}

// readLineAsync reads a single line from r on its own goroutine: the channel
// carries at most one value and is then closed, and an AsyncCloser gives the
// goroutine's lifecycle an
// explicit, idempotent end signal a caller could also select on if it needed
// to time the read out (chass itself just waits for it).
func readLineAsync(ctx context.Context, r io.Reader) <-chan string {
	closer := iox.NewAsyncCloser()
	lines := make(chan string, 1)
	go func() {
		defer closer.Close()
		defer close(lines)

		scanner := bufio.NewScanner(r)
		if scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			lines <- scanner.Text()
		}
	}()
	go func() {
		<-closer.Closed()
		logw.Debugf(ctx, "stdin reader done")
	}()
	return lines
}

// usesMeetInTheMiddle reports whether position and cfg match the one case
// where the bidirectional search pays off: no extra proof
// depth requested, exhaustive examination deeper than a single ply, a logged
// fullmove counter, and a ply count exactly one past the examination depth
// (so the two frontiers are expected to meet in the middle rather than one
// side needing to cover the whole distance).
func usesMeetInTheMiddle(position *chess.Position, cfg Config) bool {
	return cfg.ProofExtraDepth == 0 && cfg.FullExaminationDepth > 1 &&
		position.FullMoveLog() && position.PlyCounter() == cfg.FullExaminationDepth+1
}

// Run executes one search over position according to cfg, writing every
// sequence found to w in output's format and (if cfg.ShowProgress) periodic
// progress reports to progressW.
func Run(ctx context.Context, position *chess.Position, cfg Config, w, progressW io.Writer) {
	var reporter *search.ProgressReporter
	if cfg.ShowProgress {
		reporter = search.NewProgressReporter(func(frames []search.Frame) {
			writeProgress(progressW, frames)
		})
	} else {
		reporter = search.NewProgressReporter(nil)
	}

	callback := func(found *chess.Position, moves []chess.Move, fullExaminationDepth int) {
		output.Write(w, found, moves, fullExaminationDepth)
	}

	if usesMeetInTheMiddle(position, cfg) {
		logw.Infof(ctx, "Searching with meeter-in-the-middle to depth %d", cfg.FullExaminationDepth)
		search.NewMeeterInTheMiddle(callback, reporter).Search(position, cfg.FullExaminationDepth)
		return
	}

	logw.Infof(ctx, "Searching with backtracker to depth %d (full examination to %d)", cfg.TotalDepth(), cfg.FullExaminationDepth)
	search.NewBacktracker(callback, reporter).Search(position, cfg.FullExaminationDepth, cfg.TotalDepth())
}

func writeProgress(w io.Writer, frames []search.Frame) {
	switch {
	case len(frames) == 0:
		fmt.Fprintln(w, "Done.")
	case len(frames) == 1 && frames[0].Total == 0:
		fmt.Fprintln(w, "Starting...")
	default:
		for i, frame := range frames {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d/%d", frame.Index+1, frame.Total)
		}
		fmt.Fprintln(w)
	}
}
