package question

import "github.com/billel/trivia/internal/quiz"

// fetchedMsg carries a finished fetch back to the screen that issued it.
type fetchedMsg struct {
	Outcome quiz.Outcome
}
