package app

import (
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/billel/trivia/internal/quiz"
	"github.com/billel/trivia/internal/router"
	"github.com/billel/trivia/internal/screens/categories"
	"github.com/billel/trivia/internal/screens/question"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// pump runs cmd and feeds every resulting message back into the model,
// skipping the spinner's timer-driven ticks.
func pump(m AppModel, cmd tea.Cmd) AppModel {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = pump(m, c)
		}
		return m
	case nil, spinner.TickMsg:
		return m
	default:
		updated, next := m.Update(msg)
		return pump(updated.(AppModel), next)
	}
}

func testProvider() *quiz.MockProvider {
	p := quiz.NewMockProvider(quiz.MockResponse{Question: &quiz.QuestionRecord{
		Prompt:           "Who wrote &quot;Hamlet&quot;?",
		CorrectAnswer:    "Shakespeare",
		IncorrectAnswers: []string{"Marlowe", "Jonson", "Kyd"},
	}})
	p.Categories = []quiz.Category{
		{ID: 10, Name: "Books"},
		{ID: 22, Name: "Geography"},
	}
	return p
}

func TestApp_StartsAtCategories(t *testing.T) {
	p := testProvider()
	m := newAppModel(Options{Categories: p, Questions: p})
	m = pump(m, m.Init())

	cs, ok := m.router.Active().(*categories.CategoryScreen)
	if !ok {
		t.Fatalf("expected category screen, got %T", m.router.Active())
	}
	if len(cs.Categories()) != 2 {
		t.Errorf("expected 2 categories, got %d", len(cs.Categories()))
	}
}

func TestApp_ChooseCategoryAndAnswer(t *testing.T) {
	p := testProvider()
	m := newAppModel(Options{Categories: p, Questions: p})
	m = pump(m, m.Init())

	updated, cmd := m.Update(specialKey(tea.KeyEnter))
	m = pump(updated.(AppModel), cmd)

	qs, ok := m.router.Active().(*question.QuestionScreen)
	if !ok {
		t.Fatalf("expected question screen, got %T", m.router.Active())
	}
	if got := qs.State().Prompt(); got != `Who wrote "Hamlet"?` {
		t.Errorf("unexpected prompt %q", got)
	}
	if len(p.Calls) != 1 || p.Calls[0] != 10 {
		t.Errorf("expected a fetch for category 10, got %v", p.Calls)
	}

	if qs.Status() != "Books" {
		t.Errorf("expected header status Books, got %q", qs.Status())
	}
	if !hasHint(m, "Submit") {
		t.Error("expected question key hints in footer")
	}
}

func TestApp_StartCategory(t *testing.T) {
	p := testProvider()
	start := quiz.Category{ID: 22, Name: "Geography"}
	m := newAppModel(Options{Categories: p, Questions: p, StartCategory: &start})
	m = pump(m, m.Init())

	if _, ok := m.router.Active().(*question.QuestionScreen); !ok {
		t.Fatalf("expected question screen, got %T", m.router.Active())
	}

	updated, cmd := m.Update(keyPress('h'))
	m = pump(updated.(AppModel), cmd)

	cs, ok := m.router.Active().(*categories.CategoryScreen)
	if !ok {
		t.Fatalf("expected category screen after going home, got %T", m.router.Active())
	}
	if len(cs.Categories()) != 2 {
		t.Errorf("expected categories listed on return, got %d", len(cs.Categories()))
	}
}

func TestApp_EscGoesBack(t *testing.T) {
	p := testProvider()
	m := newAppModel(Options{Categories: p, Questions: p})
	m = pump(m, m.Init())

	updated, cmd := m.Update(specialKey(tea.KeyEnter))
	m = pump(updated.(AppModel), cmd)
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}

	_, cmd = m.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Categories: testProvider()})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestApp_WindowSize(t *testing.T) {
	m := newAppModel(Options{Categories: testProvider()})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)
	if m.width != 100 || m.height != 40 {
		t.Errorf("expected 100x40, got %dx%d", m.width, m.height)
	}
}

func hasHint(m AppModel, desc string) bool {
	for _, h := range m.footerHints(m.router.Active()) {
		if h.Description == desc {
			return true
		}
	}
	return false
}
