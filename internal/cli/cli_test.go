package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/seekerror/chass/internal/cli"
	"github.com/seekerror/chass/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPositionValid(t *testing.T) {
	in := strings.NewReader("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1\n")
	p, err := cli.ReadPosition(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, (chess.Analyzer{}).CanBeStarting(p))
}

func TestReadPositionParseError(t *testing.T) {
	in := strings.NewReader("not a fen\n")
	_, err := cli.ReadPosition(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEN parsing failed")
}

func TestReadPositionSemanticError(t *testing.T) {
	// Two White kings.
	in := strings.NewReader("4k3/8/8/8/8/8/8/3KK3 w - - 0 5\n")
	_, err := cli.ReadPosition(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid")
}

func TestReadPositionEmptyInput(t *testing.T) {
	_, err := cli.ReadPosition(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}

func TestConfigTotalDepth(t *testing.T) {
	cfg := cli.Config{FullExaminationDepth: 2, ProofExtraDepth: 3}
	assert.Equal(t, 5, cfg.TotalDepth())
}
