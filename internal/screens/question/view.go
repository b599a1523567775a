package question

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/billel/trivia/internal/quiz"
	"github.com/billel/trivia/internal/ui/components"
	"github.com/billel/trivia/internal/ui/layout"
	"github.com/billel/trivia/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	if s.err != nil {
		return renderMessage(width, height, "No category selected.", "Press H to pick one.")
	}

	st := s.session.State()
	switch st.Phase {
	case quiz.PhaseReady:
		return s.renderQuestion(st, width)
	case quiz.PhaseNoQuestion, quiz.PhaseError:
		msg := ""
		if st.Feedback != nil {
			msg = st.Feedback.Message
		}
		return renderMessage(width, height, msg, "Press R to try again or H to go home.")
	default:
		return layout.Centered(s.spinner.View()+" Loading question...", width, height)
	}
}

func (s *QuestionScreen) renderQuestion(st quiz.State, width int) string {
	var b strings.Builder

	cardWidth := min(width-4, 72)

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderMeta(st)))
	b.WriteString("\n\n")

	card := theme.QuestionCard.Width(cardWidth).Render(st.Prompt())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	options := lipgloss.NewStyle().Width(cardWidth).Render(s.choices.View(st))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options))
	b.WriteString("\n")

	if st.Feedback != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderFeedback(*st.Feedback)))
		b.WriteString("\n\n")
	}

	btn := components.NewButton("Submit", st.HasSelection)
	hint := "Press Enter to submit"
	if st.Submitted {
		btn = components.NewButton("Play again", true)
		hint = "Press R to play again"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(hint)))

	return b.String()
}

// renderMeta renders the category and difficulty line above the prompt.
func renderMeta(st quiz.State) string {
	q := st.Question
	if q == nil {
		return ""
	}

	parts := make([]string, 0, 2)
	if q.Category != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(q.Category))
	}
	if q.Difficulty != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.ToUpper(q.Difficulty)))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  "))
}

func renderFeedback(f quiz.Feedback) string {
	switch f.Kind {
	case quiz.FeedbackCorrect:
		return theme.FeedbackCorrect.Render(f.Message)
	case quiz.FeedbackIncorrect:
		return theme.FeedbackIncorrect.Render(f.Message)
	default:
		return theme.FeedbackPrompt.Render(f.Message)
	}
}

// renderMessage renders a lone status message with a hint below it.
func renderMessage(width, height int, msg, hint string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(msg),
		"",
		theme.Hint.Render(hint),
	)
	return layout.Centered(body, width, height)
}
