package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: soft mint on slate, green and red for grading
var (
	Primary   = lipgloss.Color("#ABD1C6") // Mint
	Secondary = lipgloss.Color("#5EAAA8") // Sea green
	Accent    = lipgloss.Color("#F9BC60") // Bulb yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#FCA5A5") // Soft red
	Text      = lipgloss.Color("#EFF0F3") // Off-white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Cards
var (
	QuestionCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 3)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Feedback badges, one per feedback kind.
var (
	FeedbackCorrect = lipgloss.NewStyle().
			Background(Success).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	FeedbackIncorrect = lipgloss.NewStyle().
				Background(Error).
				Foreground(BgDark).
				Bold(true).
				Padding(0, 2)

	FeedbackPrompt = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
)

// Components
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Accent)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)
