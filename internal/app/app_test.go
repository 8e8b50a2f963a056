package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chesscoach/internal/router"
	"github.com/abhisek/chesscoach/internal/screen"
)

type fieldScreen struct {
	capturing bool
	keys      []string
}

func (s *fieldScreen) Init() tea.Cmd { return nil }
func (s *fieldScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}
func (s *fieldScreen) View(int, int) string { return "field" }
func (s *fieldScreen) Title() string        { return "Field" }
func (s *fieldScreen) Capturing() bool      { return s.capturing }

func modelWith(screens ...screen.Screen) AppModel {
	r := router.New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return AppModel{router: r}
}

func TestEscPopsWhenNotTyping(t *testing.T) {
	m := modelWith(&fieldScreen{}, &fieldScreen{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscGoesToFocusedField(t *testing.T) {
	top := &fieldScreen{capturing: true}
	m := modelWith(&fieldScreen{}, top)
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})

	if len(top.keys) != 2 || top.keys[0] != "esc" || top.keys[1] != "q" {
		t.Errorf("screen received %v", top.keys)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
}

func TestViewUsesAltScreen(t *testing.T) {
	m := modelWith(&fieldScreen{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	v := next.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected the alternate screen")
	}
}
