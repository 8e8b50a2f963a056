package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chesscoach/internal/analysis"
)

type fakeSearcher struct {
	id     int
	alive  atomic.Bool
	closed atomic.Bool
	busy   *atomic.Int32
	peak   *atomic.Int32
}

func (f *fakeSearcher) Evaluate(ctx context.Context, fen string) (analysis.Evaluation, error) {
	n := f.busy.Add(1)
	defer f.busy.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return analysis.Evaluation{Score: float64(f.id)}, nil
}

func (f *fakeSearcher) TopCandidates(ctx context.Context, fen string, k int) ([]analysis.Candidate, error) {
	return []analysis.Candidate{{Move: "e2e4", Score: float64(f.id)}}, nil
}

func (f *fakeSearcher) Alive() bool  { return f.alive.Load() }
func (f *fakeSearcher) Close() error { f.closed.Store(true); return nil }

type fakeFactory struct {
	mu      sync.Mutex
	started []*fakeSearcher
	busy    atomic.Int32
	peak    atomic.Int32
	fail    bool
}

func (f *fakeFactory) start(context.Context) (Searcher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("no engine")
	}
	s := &fakeSearcher{id: len(f.started) + 1, busy: &f.busy, peak: &f.peak}
	s.alive.Store(true)
	f.started = append(f.started, s)
	return s, nil
}

func TestPoolBoundsConcurrency(t *testing.T) {
	f := &fakeFactory{}
	p, err := newPool(context.Background(), 2, f.start, zerolog.Nop())
	require.NoError(t, err)
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Evaluate(context.Background(), startFEN)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, f.peak.Load(), int32(2))
	assert.Len(t, f.started, 2)
}

func TestPoolReplacesDeadEngine(t *testing.T) {
	f := &fakeFactory{}
	p, err := newPool(context.Background(), 1, f.start, zerolog.Nop())
	require.NoError(t, err)
	defer p.Close()

	f.started[0].alive.Store(false)

	ev, err := p.Evaluate(context.Background(), startFEN)
	require.NoError(t, err)
	assert.Equal(t, 2.0, ev.Score, "second engine should answer")
	assert.True(t, f.started[0].closed.Load())
}

func TestPoolClose(t *testing.T) {
	f := &fakeFactory{}
	p, err := newPool(context.Background(), 2, f.start, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, p.Close())
	for _, s := range f.started {
		assert.True(t, s.closed.Load())
	}

	_, err = p.TopCandidates(context.Background(), startFEN, 1)
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolStartFailure(t *testing.T) {
	f := &fakeFactory{fail: true}
	_, err := newPool(context.Background(), 2, f.start, zerolog.Nop())
	require.Error(t, err)
}

func TestPoolAcquireHonorsContext(t *testing.T) {
	f := &fakeFactory{}
	p, err := newPool(context.Background(), 1, f.start, zerolog.Nop())
	require.NoError(t, err)
	defer p.Close()

	held, err := p.acquire(context.Background())
	require.NoError(t, err)
	defer p.release(held)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = p.Evaluate(ctx, startFEN)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
