package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/screen"
	"github.com/abhisek/chesscoach/internal/store"
	"github.com/abhisek/chesscoach/internal/ui/components"
	"github.com/abhisek/chesscoach/internal/ui/layout"
	"github.com/abhisek/chesscoach/internal/ui/theme"
)

// ErrNoCoach is shown when an explanation is requested without an LLM.
var ErrNoCoach = errors.New("no LLM provider configured")

type loadedMsg struct {
	Analysis     *store.AnalysisRecord
	Moves        []analysis.MoveRecord
	Explanations []store.ExplanationRecord
	Err          error
}

type explainedMsg struct {
	Ply  int // 0 for the whole game
	Text string
	Err  error
}

type answeredMsg struct {
	Ply      int
	Question string
	Answer   string
	Err      error
}

// Screen walks through the classified moves of one stored analysis and
// asks the coach about them.
type Screen struct {
	repo       store.EventRepo
	coach      *coach.Service
	analysisID string

	header *store.AnalysisRecord
	moves  []analysis.MoveRecord
	notes  map[int][]string
	game   string

	threads  map[int]*coach.Thread
	selected int
	offset   int
	showGame bool
	loaded   bool
	busy     bool
	status   string
	errMsg   string

	asking bool
	input  components.TextInput
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the review screen for a stored analysis. c may be nil, in
// which case only stored explanations are shown.
func New(repo store.EventRepo, c *coach.Service, analysisID string) *Screen {
	s := &Screen{
		repo:       repo,
		analysisID: analysisID,
		notes:      make(map[int][]string),
		threads:    make(map[int]*coach.Thread),
	}
	if c != nil {
		s.coach = c.ForAnalysis(analysisID)
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		header, moves, err := s.repo.GetAnalysis(ctx, s.analysisID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		if header == nil {
			return loadedMsg{Err: fmt.Errorf("analysis %s not found", s.analysisID)}
		}
		exps, err := s.repo.QueryExplanations(ctx, s.analysisID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Analysis: header, Moves: analysis.FromMoveEvents(moves), Explanations: exps}
	}
}

func (s *Screen) Title() string {
	if s.header == nil {
		return "Review"
	}
	return fmt.Sprintf("%s vs %s", s.header.White, s.header.Black)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "e", Description: "Explain"},
		{Key: "?", Description: "Ask"},
		{Key: "g", Description: "Game review"},
		{Key: "Esc", Description: "Back"},
	}
}

// Capturing reports whether the question field has focus.
func (s *Screen) Capturing() bool {
	return s.asking
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.header = msg.Analysis
		s.moves = msg.Moves
		for _, e := range msg.Explanations {
			s.addStored(e)
		}
		return s, nil

	case explainedMsg:
		s.busy = false
		if msg.Err != nil {
			s.status = "Explanation failed: " + msg.Err.Error()
			return s, nil
		}
		s.status = ""
		if msg.Ply == 0 {
			s.game = msg.Text
		} else {
			s.notes[msg.Ply] = append(s.notes[msg.Ply], msg.Text)
		}
		return s, nil

	case answeredMsg:
		s.busy = false
		if msg.Err != nil {
			s.status = "Question failed: " + msg.Err.Error()
			return s, nil
		}
		s.status = ""
		s.notes[msg.Ply] = append(s.notes[msg.Ply], qa(msg.Question, msg.Answer))
		return s, nil

	case tea.KeyMsg:
		if s.asking {
			return s.updateAsking(msg)
		}
		return s.updateKeys(msg)
	}

	if s.asking {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) updateKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		s.showGame = false
	case "down", "j":
		if s.selected < len(s.moves)-1 {
			s.selected++
		}
		s.showGame = false
	case "e":
		return s, s.explainMove()
	case "g":
		s.showGame = true
		if s.game == "" {
			return s, s.explainGame()
		}
	case "?":
		if s.coach == nil {
			s.status = ErrNoCoach.Error()
			return s, nil
		}
		if len(s.moves) == 0 || s.busy {
			return s, nil
		}
		s.asking = true
		s.input = components.NewTextInput("Ask:", "Why is this move bad?", 300)
		return s, s.input.Init()
	}
	return s, nil
}

func (s *Screen) updateAsking(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.asking = false
		return s, nil
	case "enter":
		question := s.input.Value()
		s.asking = false
		if question == "" {
			return s, nil
		}
		return s, s.ask(question)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) explainMove() tea.Cmd {
	rec, ok := s.current()
	if !ok || s.busy {
		return nil
	}
	if s.coach == nil {
		s.status = ErrNoCoach.Error()
		return nil
	}
	s.busy = true
	s.status = "Asking the coach about " + rec.SAN + "..."
	c := s.coach
	return func() tea.Msg {
		exp, err := c.ExplainMove(context.Background(), rec)
		if err != nil {
			return explainedMsg{Ply: rec.Ply, Err: err}
		}
		return explainedMsg{Ply: rec.Ply, Text: exp.String()}
	}
}

func (s *Screen) explainGame() tea.Cmd {
	if len(s.moves) == 0 || s.busy {
		return nil
	}
	if s.coach == nil {
		s.status = ErrNoCoach.Error()
		return nil
	}
	s.busy = true
	s.status = "Reviewing the whole game..."
	c, moves := s.coach, s.moves
	return func() tea.Msg {
		exp, err := c.ExplainGame(context.Background(), moves)
		if err != nil {
			return explainedMsg{Err: err}
		}
		return explainedMsg{Text: exp.String()}
	}
}

func (s *Screen) ask(question string) tea.Cmd {
	rec, ok := s.current()
	if !ok {
		return nil
	}
	th, ok := s.threads[rec.Ply]
	if !ok {
		th = s.coach.Thread(rec)
		s.threads[rec.Ply] = th
	}
	s.busy = true
	s.status = "Thinking..."
	return func() tea.Msg {
		answer, err := th.Ask(context.Background(), question)
		return answeredMsg{Ply: rec.Ply, Question: question, Answer: answer, Err: err}
	}
}

func (s *Screen) addStored(e store.ExplanationRecord) {
	switch e.Kind {
	case coach.KindGame:
		s.game = e.Body
	case coach.KindMove:
		s.notes[e.Ply] = append(s.notes[e.Ply], e.Body)
	case coach.KindAnswer:
		s.notes[e.Ply] = append(s.notes[e.Ply], qa(e.Question, e.Body))
	}
}

func (s *Screen) current() (analysis.MoveRecord, bool) {
	if s.selected < 0 || s.selected >= len(s.moves) {
		return analysis.MoveRecord{}, false
	}
	return s.moves[s.selected], true
}

func qa(question, answer string) string {
	return "Q: " + question + "\nA: " + answer
}

func (s *Screen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.errMsg != "":
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\nLoading analysis...")
	case len(s.moves) == 0:
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\nThis analysis has no moves.")
	}

	bottom := s.statusLine(width)
	bodyHeight := height - lipgloss.Height(bottom)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if layout.IsCompactWidth(width) {
		listHeight := bodyHeight / 3
		list := s.renderMoves(width, listHeight)
		body = lipgloss.JoinVertical(lipgloss.Left, list, s.renderDetail(width, bodyHeight-lipgloss.Height(list)))
	} else {
		listWidth := width * 2 / 5
		list := lipgloss.NewStyle().Width(listWidth).Height(bodyHeight).Render(s.renderMoves(listWidth, bodyHeight))
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, s.renderDetail(width-listWidth, bodyHeight))
	}
	return body + "\n" + bottom
}

func (s *Screen) statusLine(width int) string {
	switch {
	case s.asking:
		return "  " + s.input.View()
	case s.status != "":
		return theme.Hint.Render("  " + layout.Truncate(s.status, width-4))
	}
	return ""
}

func (s *Screen) renderMoves(width, height int) string {
	if height < 1 {
		height = 1
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+height {
		s.offset = s.selected - height + 1
	}

	var lines []string
	end := min(len(s.moves), s.offset+height)
	for i := s.offset; i < end; i++ {
		rec := s.moves[i]
		label := lipgloss.NewStyle().Foreground(theme.ClassificationColor(string(rec.Classification))).
			Render(string(rec.Classification))
		line := fmt.Sprintf("%-10s %s", moveLabel(rec), label)
		if i == s.selected {
			line = theme.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		if len(s.notes[rec.Ply]) > 0 {
			line += theme.Hint.Render(" *")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) renderDetail(width, height int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	if s.showGame {
		b.WriteString(theme.Title.Render("Game review") + "\n\n")
		if s.game == "" {
			b.WriteString(theme.Hint.Render("No game review yet."))
		} else {
			b.WriteString(strings.Join(layout.Wrap(s.game, inner), "\n"))
		}
		return theme.Card.Width(width).Height(height).Render(b.String())
	}

	rec, _ := s.current()
	b.WriteString(theme.Title.Render(moveLabel(rec)) + "  " + theme.Classification(string(rec.Classification)) + "\n\n")
	b.WriteString("Before  " + components.NewEvalBar(rec.EvalBefore, inner-8).View() + "\n")
	b.WriteString("After   " + components.NewEvalBar(rec.EvalAfter, inner-8).View() + "\n\n")

	if rec.BestMove != "" && rec.BestMove != rec.Move {
		b.WriteString(theme.Subtitle.Render("Engine preferred ") + rec.BestMove + "\n")
	}
	if rec.BestReply != "" {
		b.WriteString(theme.Subtitle.Render("Best reply ") + rec.BestReply + "\n")
	}
	if len(rec.CandidatesBefore) > 0 && !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) {
		b.WriteString(theme.Subtitle.Render("Candidates ") + formatCandidates(rec.CandidatesBefore) + "\n")
	}

	for _, note := range s.notes[rec.Ply] {
		b.WriteString("\n" + strings.Join(layout.Wrap(note, inner), "\n") + "\n")
	}
	if len(s.notes[rec.Ply]) == 0 && s.coach != nil {
		b.WriteString("\n" + theme.Hint.Render("Press e for an explanation."))
	}

	return theme.Card.Width(width).Height(height).Render(b.String())
}

func moveLabel(rec analysis.MoveRecord) string {
	if rec.Mover() == analysis.Black {
		return fmt.Sprintf("%d... %s", rec.MoveNumber, rec.SAN)
	}
	return fmt.Sprintf("%d. %s", rec.MoveNumber, rec.SAN)
}

func formatCandidates(cands []analysis.Candidate) string {
	parts := make([]string, len(cands))
	for i, c := range cands {
		if c.Mate != nil {
			parts[i] = fmt.Sprintf("%s (#%d)", c.Move, *c.Mate)
		} else {
			parts[i] = fmt.Sprintf("%s (%+.2f)", c.Move, c.Score)
		}
	}
	return strings.Join(parts, ", ")
}
