// chass proves, disproves, or enumerates the sequences of moves that could
// have led to a given chess position from the standard starting array.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/build"
	"github.com/seekerror/chass/internal/cli"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	fullExaminationDepth = flag.Int("d", 0, "Depth, in ply, of exhaustive retrograde examination")
	proofExtraDepth      = flag.Int("e", 0, "Extra ply beyond -d to search for a single proof, without enumerating further")
	showProgress         = flag.Bool("r", false, "Report search progress to stderr")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `chass %v - retrograde chess analysis

Reads a single extended-FEN position from stdin and writes every move
sequence it finds leading back to the starting array to stdout.

Usage: chass [-d depth] [-e extra proof depth] [-r]
`, version)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()
	logw.Infof(ctx, "chass %v", version)

	var fed, ped lang.Optional[int]
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			fed = lang.Some(*fullExaminationDepth)
		case "e":
			ped = lang.Some(*proofExtraDepth)
		}
	})

	cfg, err := parseConfig(fed, ped, *showProgress)
	if err != nil {
		flag.Usage()
		logw.Exitf(ctx, "%v", err)
	}

	position, err := cli.ReadPosition(ctx, os.Stdin)
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}

	cli.Run(ctx, position, cfg, os.Stdout, os.Stderr)
}

// parseConfig reconciles the two depth flags: a flag the user never passed is
// a genuine absence, not a zero, so it arrives here as an unset Optional
// rather than a sentinel value. At least one of the two must have been set;
// whichever wasn't defaults to zero once that's confirmed.
func parseConfig(fullExaminationDepth, proofExtraDepth lang.Optional[int], showProgress bool) (cli.Config, error) {
	fed, fedOK := fullExaminationDepth.V()
	ped, pedOK := proofExtraDepth.V()
	if !fedOK && !pedOK {
		return cli.Config{}, fmt.Errorf("at least one of -d or -e must be specified")
	}
	if (fedOK && fed < 0) || (pedOK && ped < 0) {
		return cli.Config{}, fmt.Errorf("depth must be non-negative")
	}
	return cli.Config{
		FullExaminationDepth: fed,
		ProofExtraDepth:      ped,
		ShowProgress:         showProgress,
	}, nil
}
