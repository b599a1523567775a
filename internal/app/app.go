package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/billel/trivia/internal/quiz"
	"github.com/billel/trivia/internal/router"
	"github.com/billel/trivia/internal/screen"
	"github.com/billel/trivia/internal/screens/categories"
	"github.com/billel/trivia/internal/screens/question"
	"github.com/billel/trivia/internal/ui/layout"
)

// Options wires the collaborators of the TUI.
type Options struct {
	Categories quiz.CategoryDirectory
	Questions  quiz.QuestionProvider
	Logger     *zap.Logger

	// StartCategory, when set, opens a question for it instead of the
	// category list.
	StartCategory *quiz.Category
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	open   categories.Opener
	start  *quiz.Category
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the category screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	open := func(cat quiz.Category) screen.Screen {
		logger.Info("category chosen",
			zap.Int("category_id", cat.ID),
			zap.String("category", cat.Name))
		return question.New(opts.Questions, cat, quiz.WithLogger(logger))
	}

	return AppModel{
		router: router.New(categories.New(opts.Categories, open)),
		open:   open,
		start:  opts.StartCategory,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.start != nil {
		// The category list loads once the user goes home.
		return router.GoTo(m.open(*m.start))
	}
	return m.router.Active().Init()
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
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
