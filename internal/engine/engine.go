package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/analysis"
)

// stopGrace bounds how long a cancelled search waits for its bestmove.
const stopGrace = 500 * time.Millisecond

// Engine drives one UCI engine process. Searches are serialized.
//
// The most recent search is kept so that Evaluate followed by TopCandidates
// on the same position runs the engine once.
type Engine struct {
	cfg Config
	log zerolog.Logger

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	lines    chan string
	done     chan struct{}
	waitErr  error
	quit     chan struct{}
	alive    atomic.Bool
	closeOne sync.Once

	mu        sync.Mutex
	lastFEN   string
	lastMulti int
	last      SearchResult
}

var _ analysis.Evaluator = (*Engine)(nil)

// Start launches the engine binary and completes the UCI handshake.
func Start(ctx context.Context, cfg Config, log zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cmd := exec.Command(cfg.Path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &OpError{Op: "stdin pipe", Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &OpError{Op: "stdout pipe", Err: err}
	}
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return nil, &OpError{Op: "start process", Err: err}
	}

	e := &Engine{
		cfg:    cfg,
		log:    log.With().Str("component", "engine").Int("pid", cmd.Process.Pid).Logger(),
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		lines:  make(chan string, 256),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
	e.alive.Store(true)

	readDone := make(chan struct{})
	go func() {
		e.readLoop()
		close(readDone)
	}()
	// Wait closes stdout, so it must not run until the reader is done.
	go func() {
		<-readDone
		e.waitErr = cmd.Wait()
		e.alive.Store(false)
		close(e.done)
	}()

	hctx := ctx
	if cfg.StartTimeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, cfg.StartTimeout)
		defer cancel()
	}
	if err := e.handshake(hctx); err != nil {
		e.Close()
		return nil, err
	}

	e.log.Debug().Str("path", cfg.Path).Msg("engine started")
	return e, nil
}

func (e *Engine) handshake(ctx context.Context) error {
	if err := e.send("uci"); err != nil {
		return err
	}
	if err := e.waitFor(ctx, "uciok"); err != nil {
		return &OpError{Op: "wait uciok", Err: err}
	}
	for _, opt := range []string{
		"setoption name Threads value " + strconv.Itoa(e.cfg.Threads),
		"setoption name Hash value " + strconv.Itoa(e.cfg.HashMB),
		"setoption name Ponder value false",
	} {
		if err := e.send(opt); err != nil {
			return err
		}
	}
	return e.ready(ctx)
}

func (e *Engine) ready(ctx context.Context) error {
	if err := e.send("isready"); err != nil {
		return err
	}
	if err := e.waitFor(ctx, "readyok"); err != nil {
		return &OpError{Op: "wait readyok", Err: err}
	}
	return nil
}

// Search analyzes the position and reports up to multiPV ranked lines.
func (e *Engine) Search(ctx context.Context, fen string, multiPV int) (SearchResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.search(ctx, fen, multiPV)
}

func (e *Engine) search(ctx context.Context, fen string, multiPV int) (SearchResult, error) {
	if !e.alive.Load() {
		return SearchResult{}, ErrEngineStopped
	}
	if multiPV < 1 {
		multiPV = 1
	}
	if fen == e.lastFEN && multiPV <= e.lastMulti {
		return trim(e.last, multiPV), nil
	}

	if err := e.send("setoption name MultiPV value " + strconv.Itoa(multiPV)); err != nil {
		return SearchResult{}, err
	}
	if err := e.ready(ctx); err != nil {
		return SearchResult{}, err
	}
	if err := e.send("position fen " + fen); err != nil {
		return SearchResult{}, err
	}
	if err := e.send(e.goCommand()); err != nil {
		return SearchResult{}, err
	}

	col := newCollector(multiPV)
	for {
		select {
		case <-ctx.Done():
			e.abort()
			return SearchResult{}, ctx.Err()
		case <-e.done:
			return SearchResult{}, e.exitErr()
		case line, ok := <-e.lines:
			if !ok {
				<-e.done
				return SearchResult{}, e.exitErr()
			}
			if in, ok := parseInfo(line); ok {
				col.add(in)
				continue
			}
			if strings.HasPrefix(line, "bestmove") {
				best, ponder, ok := parseBestMove(line)
				if !ok {
					return SearchResult{}, &OpError{Op: "parse bestmove", Err: fmt.Errorf("invalid line %q", line)}
				}
				res := col.result(best, ponder)
				e.lastFEN, e.lastMulti, e.last = fen, multiPV, res
				e.log.Debug().Str("fen", fen).Str("best", best).Int("lines", len(res.Lines)).Msg("search finished")
				return res, nil
			}
		}
	}
}

// Evaluate scores the position from the side to move's perspective.
func (e *Engine) Evaluate(ctx context.Context, fen string) (analysis.Evaluation, error) {
	res, err := e.Search(ctx, fen, e.cfg.MultiPV)
	if err != nil {
		return analysis.Evaluation{}, err
	}
	if len(res.Lines) == 0 {
		return analysis.Evaluation{}, &OpError{Op: "evaluate", Err: fmt.Errorf("no score reported for %q", fen)}
	}
	return res.Lines[0].Evaluation(), nil
}

// TopCandidates returns up to k ranked moves for the position.
func (e *Engine) TopCandidates(ctx context.Context, fen string, k int) ([]analysis.Candidate, error) {
	res, err := e.Search(ctx, fen, max(k, e.cfg.MultiPV))
	if err != nil {
		return nil, err
	}
	return Candidates(res, k), nil
}

// Alive reports whether the engine process is still running.
func (e *Engine) Alive() bool {
	return e.alive.Load()
}

// Close asks the engine to quit and kills it if it does not.
func (e *Engine) Close() error {
	var err error
	e.closeOne.Do(func() {
		_ = e.send("quit")
		close(e.quit)
		select {
		case <-e.done:
		case <-time.After(2 * time.Second):
			if kerr := e.cmd.Process.Kill(); kerr != nil {
				err = &OpError{Op: "kill process", Err: kerr}
			}
			<-e.done
		}
		e.alive.Store(false)
		_ = e.stdin.Close()
	})
	return err
}

func (e *Engine) goCommand() string {
	if e.cfg.Depth > 0 {
		return "go depth " + strconv.Itoa(e.cfg.Depth)
	}
	return "go movetime " + strconv.FormatInt(max(e.cfg.MoveTime.Milliseconds(), 1), 10)
}

// abort stops a running search and drains its bestmove so the next search
// starts clean. An engine that does not answer in time is killed.
func (e *Engine) abort() {
	e.lastFEN = ""
	if err := e.send("stop"); err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopGrace)
	defer cancel()
	if err := e.waitFor(ctx, "bestmove"); err != nil {
		e.log.Warn().Err(err).Msg("engine ignored stop; killing it")
		e.alive.Store(false)
		_ = e.cmd.Process.Kill()
	}
}

func (e *Engine) send(command string) error {
	if !e.alive.Load() {
		return ErrEngineStopped
	}
	if _, err := io.WriteString(e.stdin, command+"\n"); err != nil {
		e.alive.Store(false)
		return &OpError{Op: "write command", Err: err}
	}
	return nil
}

// waitFor consumes output until a line starting with prefix arrives.
func (e *Engine) waitFor(ctx context.Context, prefix string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.done:
			return e.exitErr()
		case line, ok := <-e.lines:
			if !ok {
				<-e.done
				return e.exitErr()
			}
			if strings.HasPrefix(line, prefix) {
				return nil
			}
		}
	}
}

func (e *Engine) readLoop() {
	defer close(e.lines)
	scanner := bufio.NewScanner(e.stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case e.lines <- strings.TrimSpace(scanner.Text()):
		case <-e.quit:
			return
		}
	}
}

func (e *Engine) exitErr() error {
	select {
	case <-e.done:
		if e.waitErr != nil {
			return &OpError{Op: "process exited", Err: e.waitErr}
		}
	default:
	}
	return ErrEngineStopped
}

// Evaluation converts the line's score to pawns.
func (l Line) Evaluation() analysis.Evaluation {
	if l.Mate != nil {
		return analysis.MateIn(*l.Mate)
	}
	if l.CP != nil {
		return analysis.Evaluation{Score: float64(*l.CP) / 100}
	}
	return analysis.Evaluation{}
}

// Candidates turns up to k lines with a known first move into candidates.
func Candidates(res SearchResult, k int) []analysis.Candidate {
	var out []analysis.Candidate
	for _, l := range res.Lines {
		if len(out) == k {
			break
		}
		if len(l.PV) == 0 {
			continue
		}
		ev := l.Evaluation()
		out = append(out, analysis.Candidate{Move: l.PV[0], Score: ev.Score, Mate: ev.Mate})
	}
	return out
}

func trim(res SearchResult, n int) SearchResult {
	if len(res.Lines) > n {
		res.Lines = res.Lines[:n]
	}
	return res
}
