package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/router"
	"github.com/abhisek/chesscoach/internal/screen"
	"github.com/abhisek/chesscoach/internal/screens/analyses"
	"github.com/abhisek/chesscoach/internal/screens/review"
	"github.com/abhisek/chesscoach/internal/store"
	"github.com/abhisek/chesscoach/internal/ui/layout"
)

// Options holds the dependencies of the review UI.
type Options struct {
	EventRepo store.EventRepo
	// Coach is nil when no LLM provider is configured.
	Coach *coach.Service
	// Username limits the list to one player; empty lists everyone.
	Username string
	// AnalysisID opens a single analysis directly.
	AnalysisID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	var first screen.Screen
	if opts.AnalysisID != "" {
		first = review.New(opts.EventRepo, opts.Coach, opts.AnalysisID)
	} else {
		first = analyses.New(opts.EventRepo, opts.Coach, opts.Username)
	}
	status := opts.Username
	if opts.Coach == nil {
		status = "offline"
		if opts.Username != "" {
			status = opts.Username + " · offline"
		}
	}
	return AppModel{router: router.New(first), status: status}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !capturing(m.router.Active()) {
				return m, tea.Quit
			}
		case "esc":
			if capturing(m.router.Active()) {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func capturing(s screen.Screen) bool {
	c, ok := s.(screen.InputCapturer)
	return ok && c.Capturing()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the review UI and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(newAppModel(opts)).Run()
	return err
}
