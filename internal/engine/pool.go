package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/analysis"
)

// Searcher is one engine a Pool can hand out.
type Searcher interface {
	analysis.Evaluator
	Alive() bool
	Close() error
}

// Pool shares a fixed set of engines between concurrent analyses. Each call
// borrows one engine for its duration. Engines that die are replaced on the
// next borrow.
type Pool struct {
	idle  chan Searcher
	done  chan struct{}
	start func(context.Context) (Searcher, error)
	log   zerolog.Logger

	mu     sync.Mutex
	closed bool
	all    []Searcher
}

var _ analysis.Evaluator = (*Pool)(nil)

// NewPool starts cfg.PoolSize engines.
func NewPool(ctx context.Context, cfg Config, log zerolog.Logger) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newPool(ctx, cfg.PoolSize, func(ctx context.Context) (Searcher, error) {
		return Start(ctx, cfg, log)
	}, log)
}

func newPool(ctx context.Context, size int, start func(context.Context) (Searcher, error), log zerolog.Logger) (*Pool, error) {
	p := &Pool{
		idle:  make(chan Searcher, size),
		done:  make(chan struct{}),
		start: start,
		log:   log,
	}
	for i := 0; i < size; i++ {
		s, err := start(ctx)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.all = append(p.all, s)
		p.idle <- s
	}
	return p, nil
}

func (p *Pool) acquire(ctx context.Context) (Searcher, error) {
	var s Searcher
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
		return nil, ErrPoolClosed
	case s = <-p.idle:
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrPoolClosed
	}

	if s.Alive() {
		return s, nil
	}

	p.log.Warn().Msg("replacing dead engine")
	_ = s.Close()
	fresh, err := p.start(ctx)
	if err != nil {
		// Keep the slot so a later call can try again.
		p.idle <- s
		return nil, err
	}
	p.mu.Lock()
	for i := range p.all {
		if p.all[i] == s {
			p.all[i] = fresh
		}
	}
	p.mu.Unlock()
	return fresh, nil
}

func (p *Pool) release(s Searcher) {
	p.idle <- s
}

func (p *Pool) Evaluate(ctx context.Context, fen string) (analysis.Evaluation, error) {
	s, err := p.acquire(ctx)
	if err != nil {
		return analysis.Evaluation{}, err
	}
	defer p.release(s)
	return s.Evaluate(ctx, fen)
}

func (p *Pool) TopCandidates(ctx context.Context, fen string, k int) ([]analysis.Candidate, error) {
	s, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.release(s)
	return s.TopCandidates(ctx, fen, k)
}

// Close shuts down every engine in the pool.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	all := p.all
	p.mu.Unlock()

	var errs []error
	for _, s := range all {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
