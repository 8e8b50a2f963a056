package engine

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const fakeEngine = `#!/bin/sh
while read -r line; do
  case "$line" in
    uci) echo "id name Fake"; echo "uciok" ;;
    isready) echo "readyok" ;;
    go*)
      echo "info depth 1 multipv 1 score cp 10 pv d2d4"
      echo "info depth 12 multipv 1 score cp 35 pv e2e4 e7e5"
      echo "info depth 12 multipv 2 score mate 3 pv d2d4 d7d5"
      echo "info depth 12 multipv 3 score cp -20 pv g1f3"
      echo "bestmove e2e4 ponder e7e5" ;;
    quit) exit 0 ;;
  esac
done
`

// stallingEngine only answers a search once it is told to stop.
const stallingEngine = `#!/bin/sh
while read -r line; do
  case "$line" in
    uci) echo "uciok" ;;
    isready) echo "readyok" ;;
    stop) echo "bestmove e2e4" ;;
    quit) exit 0 ;;
  esac
done
`

// crashingEngine exits as soon as a search starts.
const crashingEngine = `#!/bin/sh
while read -r line; do
  case "$line" in
    uci) echo "uciok" ;;
    isready) echo "readyok" ;;
    go*) exit 3 ;;
  esac
done
`

// countingEngine scores each search with the number of searches run so far.
const countingEngine = `#!/bin/sh
n=0
while read -r line; do
  case "$line" in
    uci) echo "uciok" ;;
    isready) echo "readyok" ;;
    go*)
      n=$((n+1))
      echo "info depth 10 multipv 1 score cp $n pv e2e4"
      echo "bestmove e2e4" ;;
    quit) exit 0 ;;
  esac
done
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "engine.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func startFake(t *testing.T, body string) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Path = writeScript(t, body)
	cfg.MultiPV = 3

	e, err := Start(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func TestEngineEvaluate(t *testing.T) {
	e := startFake(t, fakeEngine)

	ev, err := e.Evaluate(context.Background(), startFEN)
	require.NoError(t, err)
	assert.InDelta(t, 0.35, ev.Score, 1e-9)
	assert.Nil(t, ev.Mate)
}

func TestEngineTopCandidates(t *testing.T) {
	e := startFake(t, fakeEngine)

	cands, err := e.TopCandidates(context.Background(), startFEN, 2)
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, "e2e4", cands[0].Move)
	assert.Equal(t, "d2d4", cands[1].Move)
	require.NotNil(t, cands[1].Mate)
	assert.Equal(t, 3, *cands[1].Mate)

	res, err := e.Search(context.Background(), startFEN, 3)
	require.NoError(t, err)
	assert.Equal(t, "e2e4", res.BestMove)
	assert.Equal(t, "e7e5", res.Ponder)
	assert.Len(t, res.Lines, 3)
}

func TestEngineReusesLastSearch(t *testing.T) {
	e := startFake(t, countingEngine)
	ctx := context.Background()

	ev, err := e.Evaluate(ctx, startFEN)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, ev.Score, 1e-9)

	cands, err := e.TopCandidates(ctx, startFEN, 2)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.InDelta(t, 0.01, cands[0].Score, 1e-9, "same position should not search again")

	const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	ev, err = e.Evaluate(ctx, afterE4)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, ev.Score, 1e-9)
}

func TestEngineSearchCancelled(t *testing.T) {
	e := startFake(t, stallingEngine)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := e.Search(ctx, startFEN, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, e.Alive(), "engine should survive a stopped search")
}

func TestEngineCrash(t *testing.T) {
	e := startFake(t, crashingEngine)

	_, err := e.Evaluate(context.Background(), startFEN)
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "process exited", opErr.Op, "the exit status should be reported")
	assert.Eventually(t, func() bool { return !e.Alive() }, 2*time.Second, 10*time.Millisecond)

	_, err = e.Evaluate(context.Background(), startFEN)
	require.Error(t, err)
}

func TestStartMissingBinary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Start(context.Background(), cfg, zerolog.Nop())
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "start process", opErr.Op)
}

func TestStartHandshakeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = writeScript(t, "#!/bin/sh\nexec sleep 5\n")
	cfg.StartTimeout = 100 * time.Millisecond

	_, err := Start(context.Background(), cfg, zerolog.Nop())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
