package engine

import (
	"sort"
	"strconv"
	"strings"
)

// Line is one ranked principal variation from a search.
type Line struct {
	Rank  int // multipv index, 1 is best
	Depth int
	CP    *int // centipawns, side to move
	Mate  *int // moves to mate, side to move
	PV    []string
}

// SearchResult is the outcome of one search.
type SearchResult struct {
	BestMove string
	Ponder   string
	Lines    []Line // best first
}

type info struct {
	rank  int
	depth int
	cp    *int
	mate  *int
	pv    []string
}

// parseInfo reads the fields of an "info" line the adapter cares about.
// Lines without a score (currmove, hashfull, string) report ok=false.
func parseInfo(line string) (info, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "info" {
		return info{}, false
	}

	in := info{rank: 1}
	scored := false
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "multipv":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil && n > 0 {
					in.rank = n
				}
				i++
			}
		case "depth":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					in.depth = n
				}
				i++
			}
		case "score":
			if i+2 < len(fields) {
				n, err := strconv.Atoi(fields[i+2])
				if err == nil {
					switch fields[i+1] {
					case "cp":
						in.cp, scored = &n, true
					case "mate":
						in.mate, scored = &n, true
					}
				}
				i += 2
			}
		case "lowerbound", "upperbound":
			// Bound scores are provisional; the exact one follows.
			return info{}, false
		case "pv":
			in.pv = append([]string(nil), fields[i+1:]...)
			i = len(fields)
		case "string":
			return info{}, false
		}
	}
	return in, scored
}

// parseBestMove reads a "bestmove" line. A position without legal moves
// reports "(none)", which yields an empty move.
func parseBestMove(line string) (best, ponder string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "bestmove" {
		return "", "", false
	}
	best = fields[1]
	if best == "(none)" {
		best = ""
	}
	for i := 2; i+1 < len(fields); i++ {
		if fields[i] == "ponder" {
			ponder = fields[i+1]
			break
		}
	}
	return best, ponder, true
}

// collector keeps the deepest report per multipv rank.
type collector struct {
	max   int
	lines map[int]Line
}

func newCollector(max int) *collector {
	return &collector{max: max, lines: make(map[int]Line, max)}
}

func (c *collector) add(in info) {
	if in.rank > c.max {
		return
	}
	l := c.lines[in.rank]
	l.Rank = in.rank
	l.Depth = in.depth
	l.CP, l.Mate = in.cp, in.mate
	if len(in.pv) > 0 {
		l.PV = in.pv
	}
	c.lines[in.rank] = l
}

func (c *collector) result(best, ponder string) SearchResult {
	res := SearchResult{BestMove: best, Ponder: ponder}
	for _, l := range c.lines {
		res.Lines = append(res.Lines, l)
	}
	sort.Slice(res.Lines, func(i, j int) bool { return res.Lines[i].Rank < res.Lines[j].Rank })
	return res
}
