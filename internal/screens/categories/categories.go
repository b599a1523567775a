package categories

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/billel/trivia/internal/quiz"
	"github.com/billel/trivia/internal/router"
	"github.com/billel/trivia/internal/screen"
	"github.com/billel/trivia/internal/ui/components"
	"github.com/billel/trivia/internal/ui/layout"
	"github.com/billel/trivia/internal/ui/theme"
)

const (
	banner  = "Billel Quiz"
	tagline = "Challenge. Answer. Repeat"

	// ErrorText replaces the menu when the directory cannot be listed.
	ErrorText = "Error fetching categories"
)

// Opener builds the screen shown when a category is chosen.
type Opener func(quiz.Category) screen.Screen

type categoriesMsg struct {
	categories []quiz.Category
	err        error
}

// CategoryScreen lists the trivia categories and opens a question screen
// for the chosen one.
type CategoryScreen struct {
	directory  quiz.CategoryDirectory
	open       Opener
	menu       components.Menu
	spinner    spinner.Model
	categories []quiz.Category
	loading    bool
	failed     bool
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)
var _ screen.Resumer = (*CategoryScreen)(nil)

// New creates a category screen backed by directory.
func New(directory quiz.CategoryDirectory, open Opener) *CategoryScreen {
	return &CategoryScreen{
		directory: directory,
		open:      open,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Spinner),
		),
	}
}

func (c *CategoryScreen) Init() tea.Cmd {
	return c.list()
}

func (c *CategoryScreen) Title() string {
	return "Categories"
}

// Categories returns the listed categories.
func (c *CategoryScreen) Categories() []quiz.Category {
	return c.categories
}

func (c *CategoryScreen) KeyHints() []layout.KeyHint {
	if c.failed {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *CategoryScreen) list() tea.Cmd {
	c.loading = true
	c.failed = false

	dir := c.directory
	fetch := func() tea.Msg {
		cats, err := dir.ListCategories(context.Background())
		return categoriesMsg{categories: cats, err: err}
	}
	return tea.Batch(fetch, c.spinner.Tick)
}

func (c *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesMsg:
		c.loading = false
		if msg.err != nil {
			c.failed = true
			return c, nil
		}
		c.setCategories(msg.categories)
		return c, nil

	case spinner.TickMsg:
		if !c.loading {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyMsg:
		if c.loading {
			return c, nil
		}
		if c.failed {
			if k := msg.String(); k == "r" || k == "R" {
				return c, c.list()
			}
			return c, nil
		}
		var cmd tea.Cmd
		c.menu, cmd = c.menu.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *CategoryScreen) setCategories(cats []quiz.Category) {
	c.categories = cats

	items := make([]components.MenuItem, len(cats))
	for i, cat := range cats {
		items[i] = components.MenuItem{
			Label: cat.Name,
			Action: func() tea.Cmd {
				return router.GoTo(c.open(cat))
			},
		}
	}
	c.menu = components.NewMenu(items)
}

func (c *CategoryScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	if !layout.IsCompactHeight(height) {
		sections = append(sections, theme.Subtitle.Width(width).Render(tagline))
	}
	head := strings.Join(sections, "\n")

	var body string
	switch {
	case c.loading:
		body = c.spinner.View() + " Loading categories..."
	case c.failed:
		body = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(ErrorText)
	case len(c.categories) == 0:
		body = theme.Hint.Render("No categories available.")
	default:
		rows := max(height-lipgloss.Height(head)-5, 1)
		body = theme.Body.Render("Choose a category:") + "\n\n" + c.menu.View(rows)
	}

	content := head + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	return "\n" + content
}

// Resume lists the categories if that never completed, e.g. when the app
// started straight into a question.
func (c *CategoryScreen) Resume() tea.Cmd {
	if c.categories != nil || c.loading {
		return nil
	}
	return c.list()
}
