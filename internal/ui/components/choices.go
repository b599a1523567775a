package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/billel/trivia/internal/quiz"
	"github.com/billel/trivia/internal/ui/theme"
)

// Choices renders a radio list of answer options. It only tracks the
// cursor; which option is selected, and whether the answer was graded,
// come from the session state passed to View.
type Choices struct {
	Cursor int
	Count  int
}

// NewChoices creates a radio list for count options.
func NewChoices(count int) Choices {
	return Choices{Count: count}
}

// Update moves the cursor on arrow keys.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < c.Count-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// View renders the options. After grading the correct option is green and a
// wrong selection red.
func (c Choices) View(st quiz.State) string {
	var b strings.Builder

	for i, opt := range st.Answers {
		chosen := st.HasSelection && st.Selected == opt.Value

		radio := "( )"
		if chosen {
			radio = "(•)"
		}
		prefix := "  "
		if i == c.Cursor && !st.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, radio, opt.Value)

		switch {
		case st.Submitted && opt.Correct:
			b.WriteString(theme.Correct.Render(line))
		case st.Submitted && chosen:
			b.WriteString(theme.Incorrect.Render(line))
		case st.Submitted:
			b.WriteString(theme.Disabled.Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
