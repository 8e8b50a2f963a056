package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBestMove(t *testing.T) {
	tests := []struct {
		line       string
		best, pond string
		ok         bool
	}{
		{"bestmove e2e4 ponder e7e5", "e2e4", "e7e5", true},
		{"bestmove e7e8q", "e7e8q", "", true},
		{"bestmove (none)", "", "", true},
		{"bestmove", "", "", false},
		{"info depth 3", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			best, ponder, ok := parseBestMove(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.best, best)
			assert.Equal(t, tt.pond, ponder)
		})
	}
}

func TestParseInfoCP(t *testing.T) {
	in, ok := parseInfo("info depth 18 seldepth 24 multipv 2 score cp 34 nodes 123 nps 1000 pv e2e4 e7e5 g1f3")
	require.True(t, ok)
	assert.Equal(t, 2, in.rank)
	assert.Equal(t, 18, in.depth)
	require.NotNil(t, in.cp)
	assert.Equal(t, 34, *in.cp)
	assert.Nil(t, in.mate)
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, in.pv)
}

func TestParseInfoMate(t *testing.T) {
	in, ok := parseInfo("info depth 22 score mate -3 pv h7h8q")
	require.True(t, ok)
	assert.Equal(t, 1, in.rank, "rank defaults to 1 without multipv")
	require.NotNil(t, in.mate)
	assert.Equal(t, -3, *in.mate)
	assert.Nil(t, in.cp)
}

func TestParseInfoIgnored(t *testing.T) {
	for _, line := range []string{
		"info depth 5 currmove e2e4 currmovenumber 1",
		"info string NNUE evaluation enabled",
		"info depth 10 score cp 20 lowerbound pv e2e4",
		"readyok",
		"",
	} {
		_, ok := parseInfo(line)
		assert.False(t, ok, line)
	}
}

func TestCollectorKeepsLatestPerRank(t *testing.T) {
	c := newCollector(2)
	for _, line := range []string{
		"info depth 1 multipv 1 score cp 10 pv d2d4",
		"info depth 1 multipv 2 score cp 5 pv e2e4",
		"info depth 2 multipv 1 score mate 4 pv g1f3",
		"info depth 2 multipv 3 score cp -50 pv a2a3",
	} {
		in, ok := parseInfo(line)
		require.True(t, ok)
		c.add(in)
	}

	res := c.result("g1f3", "")
	require.Len(t, res.Lines, 2)
	assert.Equal(t, 1, res.Lines[0].Rank)
	assert.Equal(t, []string{"g1f3"}, res.Lines[0].PV)
	assert.Nil(t, res.Lines[0].CP, "mate replaces the earlier cp score")
	assert.Equal(t, 4, *res.Lines[0].Mate)
	assert.Equal(t, 2, res.Lines[1].Rank)
}

func TestCandidates(t *testing.T) {
	cp, mate := 150, 2
	res := SearchResult{Lines: []Line{
		{Rank: 1, CP: &cp, PV: []string{"e2e4"}},
		{Rank: 2, Mate: &mate, PV: []string{"d1h5"}},
		{Rank: 3, CP: &cp},
	}}

	got := Candidates(res, 5)
	require.Len(t, got, 2, "lines without a pv are skipped")
	assert.Equal(t, "e2e4", got[0].Move)
	assert.InDelta(t, 1.5, got[0].Score, 1e-9)
	require.NotNil(t, got[1].Mate)
	assert.Equal(t, 2, *got[1].Mate)

	assert.Len(t, Candidates(res, 1), 1)
}
