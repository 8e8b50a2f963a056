package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chesscoach/internal/analysis"
)

func TestNewLogger(t *testing.T) {
	l, err := newLogger("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l, err = newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestEngineConfigFlags(t *testing.T) {
	c := &cobra.Command{Use: "analyze"}
	addEngineFlags(c)
	require.NoError(t, c.Flags().Set("movetime", "2s"))

	cfg := engineConfig(c)
	assert.Equal(t, 0, cfg.Depth)
	assert.Equal(t, 2*time.Second, cfg.MoveTime)

	require.NoError(t, c.Flags().Set("depth", "20"))
	assert.Equal(t, 20, engineConfig(c).Depth, "an explicit depth wins")
}

func TestReadPGN(t *testing.T) {
	got, err := readPGN(strings.NewReader("1. e4 e5 *"), "-")
	require.NoError(t, err)
	assert.Equal(t, "1. e4 e5 *", got)

	_, err = readPGN(nil, "/does/not/exist.pgn")
	assert.ErrorContains(t, err, "read PGN")
}

func TestPrintResult(t *testing.T) {
	res := &analysis.Result{
		ID:     "a-1",
		Player: "bob",
		Color:  analysis.Black,
		White:  "alice",
		Black:  "bob",
		Records: []analysis.MoveRecord{
			{
				Ply: 2, MoveNumber: 1, Move: "e7e5", SAN: "e5",
				FENBefore:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
				EvalBefore:     0.3, EvalAfter: 0.3,
				Classification: analysis.Good,
				BestMove:       "e7e5",
			},
			{
				Ply: 4, MoveNumber: 2, Move: "f7f6", SAN: "f6",
				FENBefore:      "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
				EvalBefore:     0.3, EvalAfter: 1.6,
				Classification: analysis.Blunder,
				BestMove:       "b8c6",
			},
		},
	}

	var buf bytes.Buffer
	printResult(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "alice vs bob")
	assert.Contains(t, out, "bob playing black")
	assert.Contains(t, out, "1... e5")
	assert.Contains(t, out, "2... f6")
	assert.Contains(t, out, "b8c6")
	assert.Contains(t, out, "Good 1, Blunder 1")
}

func TestFindPly(t *testing.T) {
	records := []analysis.MoveRecord{{Ply: 1}, {Ply: 3}}
	rec, ok := findPly(records, 3)
	assert.True(t, ok)
	assert.Equal(t, 3, rec.Ply)

	_, ok = findPly(records, 2)
	assert.False(t, ok)
}
