package question

import (
	"context"
	"errors"
	"strconv"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/billel/trivia/internal/quiz"
	"github.com/billel/trivia/internal/router"
	"github.com/billel/trivia/internal/screen"
	"github.com/billel/trivia/internal/ui/components"
	"github.com/billel/trivia/internal/ui/layout"
	"github.com/billel/trivia/internal/ui/theme"
)

// QuestionScreen drives one quiz.Session for a category. The screen only
// reads session state and forwards intents; the session owns all data.
type QuestionScreen struct {
	session  *quiz.Session
	category quiz.Category
	choices  components.Choices
	spinner  spinner.Model
	err      error
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates a question screen for category. The first fetch starts on Init.
func New(provider quiz.QuestionProvider, category quiz.Category, opts ...quiz.Option) *QuestionScreen {
	return &QuestionScreen{
		session:  quiz.NewSession(provider, opts...),
		category: category,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Spinner),
		),
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return s.begin(false)
}

func (s *QuestionScreen) Title() string {
	return "Question"
}

func (s *QuestionScreen) Status() string {
	return s.category.Name
}

// State exposes the session snapshot, mainly for tests.
func (s *QuestionScreen) State() quiz.State {
	return s.session.State()
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{{Key: "H", Description: "Home"}}
	}

	st := s.session.State()
	switch st.Phase {
	case quiz.PhaseReady:
		if st.Submitted {
			return []layout.KeyHint{
				{Key: "R", Description: "Play again"},
				{Key: "H", Description: "Home"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Space/1-9", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "H", Description: "Home"},
		}
	case quiz.PhaseNoQuestion, quiz.PhaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "H", Description: "Home"},
		}
	default:
		return []layout.KeyHint{{Key: "H", Description: "Home"}}
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if s.session.Apply(msg.Outcome) {
			s.choices = components.NewChoices(len(s.session.State().Answers))
		}
		return s, nil

	case spinner.TickMsg:
		if s.session.State().Phase != quiz.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// begin issues a new ticket and returns the command that fetches it.
func (s *QuestionScreen) begin(reset bool) tea.Cmd {
	var (
		t   quiz.Ticket
		err error
	)
	if reset {
		t, err = s.session.BeginReset()
	} else {
		t, err = s.session.Begin(s.category.ID)
	}
	if err != nil {
		s.err = err
		return nil
	}

	session := s.session
	fetch := func() tea.Msg {
		return fetchedMsg{Outcome: session.Fetch(context.Background(), t)}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *QuestionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "h" || key == "H" {
		return s, router.GoHome()
	}
	if s.err != nil {
		return s, nil
	}

	st := s.session.State()
	switch st.Phase {
	case quiz.PhaseNoQuestion, quiz.PhaseError:
		if key == "r" || key == "R" {
			return s, s.begin(true)
		}
		return s, nil
	case quiz.PhaseReady:
	default:
		return s, nil
	}

	if st.Submitted {
		switch key {
		case "r", "R", "enter":
			return s, s.begin(true)
		}
		return s, nil
	}

	switch key {
	case "enter":
		_, _ = s.session.Submit()
	case "space", " ":
		s.choose(st, s.choices.Cursor)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(st.Answers) {
			s.choices.Cursor = n - 1
			s.choose(st, n-1)
			return s, nil
		}
		s.choices, _ = s.choices.Update(msg)
	}
	return s, nil
}

func (s *QuestionScreen) choose(st quiz.State, i int) {
	if i < 0 || i >= len(st.Answers) {
		return
	}
	if err := s.session.Select(st.Answers[i].Value); err != nil && !errors.Is(err, quiz.ErrLocked) {
		s.err = err
	}
}
