package analyses

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chesscoach/internal/router"
	"github.com/abhisek/chesscoach/internal/screens/review"
	"github.com/abhisek/chesscoach/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func seed(t *testing.T, repo store.EventRepo) {
	t.Helper()
	ctx := context.Background()
	for i, opp := range []string{"bob", "carol"} {
		require.NoError(t, repo.AppendAnalysis(ctx, store.AnalysisEventData{
			AnalysisID: fmt.Sprintf("a-%d", i+1),
			Username:   "alice",
			Color:      "white",
			White:      "alice",
			Black:      opp,
			GameDate:   "2024.03.0" + fmt.Sprint(i+1),
			Outcome:    "1-0",
			MoveCount:  20 + i,
		}))
	}
	require.NoError(t, repo.AppendAnalysis(ctx, store.AnalysisEventData{
		AnalysisID: "a-3", Username: "dave", Color: "black", White: "erin", Black: "dave",
	}))
}

func load(t *testing.T, s *Screen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestAnalyses_ListsPlayerGamesNewestFirst(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)

	s := New(repo, nil, "alice")
	load(t, s)
	require.Empty(t, s.errMsg)
	require.Len(t, s.analyses, 2)
	assert.Equal(t, "a-2", s.analyses[0].AnalysisID)

	view := s.View(100, 20)
	assert.Contains(t, view, "alice vs carol")
	assert.Contains(t, view, "alice vs bob")
	assert.NotContains(t, view, "erin")
	assert.Equal(t, "Analyses for alice", s.Title())
}

func TestAnalyses_EmptyStore(t *testing.T) {
	s := New(openRepo(t), nil, "")
	load(t, s)
	assert.Contains(t, s.View(100, 20), "No analyses yet")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestAnalyses_EnterOpensReview(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)

	s := New(repo, nil, "")
	load(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "a-2", sel.AnalysisID)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*review.Screen)
	assert.True(t, ok)
}

func TestAnalyses_NavigationStaysInBounds(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)

	s := New(repo, nil, "alice")
	load(t, s)
	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 1, s.selected)
	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	assert.Equal(t, 0, s.selected)
}
