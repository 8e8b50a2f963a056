package analyses

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/router"
	"github.com/abhisek/chesscoach/internal/screen"
	"github.com/abhisek/chesscoach/internal/screens/review"
	"github.com/abhisek/chesscoach/internal/store"
	"github.com/abhisek/chesscoach/internal/ui/layout"
	"github.com/abhisek/chesscoach/internal/ui/theme"
)

// listLimit caps how many analyses are loaded.
const listLimit = 100

type loadedMsg struct {
	Analyses []store.AnalysisRecord
	Counts   map[string]int
	Err      error
}

// Screen lists stored analyses, newest first.
type Screen struct {
	repo     store.EventRepo
	coach    *coach.Service
	username string

	analyses []store.AnalysisRecord
	counts   map[string]int
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the list. An empty username lists every player; coach may be
// nil when no LLM is configured.
func New(repo store.EventRepo, c *coach.Service, username string) *Screen {
	return &Screen{repo: repo, coach: c, username: username}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		list, err := s.repo.QueryAnalyses(ctx, s.username, store.QueryOpts{Limit: listLimit})
		if err != nil {
			return loadedMsg{Err: err}
		}
		counts, err := s.repo.ClassificationCounts(ctx, s.username)
		if err != nil {
			return loadedMsg{Analyses: list}
		}
		return loadedMsg{Analyses: list, Counts: counts}
	}
}

func (s *Screen) Title() string {
	if s.username == "" {
		return "Analyses"
	}
	return "Analyses for " + s.username
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Review"},
		{Key: "r", Description: "Reload"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.analyses = msg.Analyses
		s.counts = msg.Counts
		if s.selected >= len(s.analyses) {
			s.selected = max(0, len(s.analyses)-1)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.analyses)-1 {
				s.selected++
			}
		case "r":
			s.loaded = false
			return s, s.Init()
		case "enter":
			if len(s.analyses) == 0 {
				return s, nil
			}
			next := review.New(s.repo, s.coach, s.analyses[s.selected].AnalysisID)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

// Selected returns the highlighted analysis, if any.
func (s *Screen) Selected() (store.AnalysisRecord, bool) {
	if s.selected < 0 || s.selected >= len(s.analyses) {
		return store.AnalysisRecord{}, false
	}
	return s.analyses[s.selected], true
}

func (s *Screen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.errMsg != "":
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\nLoading analyses...")
	case len(s.analyses) == 0:
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo analyses yet. Run `chesscoach analyze` first.")
	}

	var b strings.Builder
	b.WriteString("\n")
	if summary := s.summaryLine(); summary != "" {
		b.WriteString("  " + summary + "\n\n")
	}

	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	s.scrollTo(rows)

	end := min(len(s.analyses), s.offset+rows)
	for i := s.offset; i < end; i++ {
		line := layout.Truncate(formatRow(s.analyses[i]), width-4)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("> " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) scrollTo(rows int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
}

func (s *Screen) summaryLine() string {
	if len(s.counts) == 0 {
		return ""
	}
	var parts []string
	for _, label := range []string{"Brilliant", "Excellent", "Good", "Neutral", "Inaccuracy", "Mistake", "Blunder", "Missed Win"} {
		if n := s.counts[label]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", theme.Classification(label), n))
		}
	}
	return strings.Join(parts, "  ")
}

func formatRow(a store.AnalysisRecord) string {
	date := a.GameDate
	if date == "" || strings.Contains(date, "?") {
		date = a.Timestamp.Format("2006.01.02")
	}
	outcome := a.Outcome
	if outcome == "" {
		outcome = "*"
	}
	return fmt.Sprintf("%s  %s vs %s  %s  %s as %s, %d moves",
		date, a.White, a.Black, outcome, a.Username, a.Color, a.MoveCount)
}
