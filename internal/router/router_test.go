package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/billel/trivia/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type pingMsg struct{}

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	r.Push(&stubScreen{title: "a"})
	r.Push(&stubScreen{title: "b"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 || r.Active() != root {
		t.Errorf("expected only root, got depth %d active %q", r.Depth(), r.Active().Title())
	}
}

func TestNavigationCommands(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)

	next := &stubScreen{title: "question"}
	r.Update(GoTo(next)())
	if r.Active() != next {
		t.Fatalf("GoTo: expected active 'question', got %q", r.Active().Title())
	}

	r.Update(Back()())
	if r.Active() != root {
		t.Fatalf("Back: expected active 'root', got %q", r.Active().Title())
	}

	r.Update(GoTo(next)())
	r.Update(GoHome()())
	if r.Active() != root {
		t.Fatalf("GoHome: expected active 'root', got %q", r.Active().Title())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	top := &stubScreen{title: "top"}
	r.Push(top)

	r.Update(pingMsg{})

	if len(top.got) != 1 || len(root.got) != 0 {
		t.Errorf("expected message only at top screen, top=%d root=%d", len(top.got), len(root.got))
	}
}

type resumingScreen struct {
	stubScreen
	resumed int
}

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestResumeOnReturn(t *testing.T) {
	root := &resumingScreen{stubScreen: stubScreen{title: "root"}}
	r := New(root)

	r.Push(&stubScreen{title: "a"})
	r.Pop()
	if root.resumed != 1 {
		t.Errorf("expected 1 resume after Pop, got %d", root.resumed)
	}

	r.Push(&stubScreen{title: "a"})
	r.Push(&stubScreen{title: "b"})
	r.PopToRoot()
	if root.resumed != 2 {
		t.Errorf("expected 2 resumes after PopToRoot, got %d", root.resumed)
	}

	r.Pop()
	r.PopToRoot()
	if root.resumed != 2 {
		t.Errorf("expected no resume when already at root, got %d", root.resumed)
	}
}
