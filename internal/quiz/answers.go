package quiz

import (
	"html"
	"math/rand/v2"
)

// Intner draws a uniform integer in [0, n).
type Intner interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func decode(s string) string {
	return html.UnescapeString(s)
}

// DeriveAnswers decodes the record's answers and inserts the correct one at a
// uniformly random index among the incorrect answers. The incorrect answers
// keep the order the provider gave them. A nil rng uses the global source.
func DeriveAnswers(q QuestionRecord, rng Intner) []AnswerOption {
	if rng == nil {
		rng = globalRand{}
	}

	n := len(q.IncorrectAnswers)
	pos := rng.IntN(n + 1)

	answers := make([]AnswerOption, 0, n+1)
	for i, a := range q.IncorrectAnswers {
		if i == pos {
			answers = append(answers, AnswerOption{Value: decode(q.CorrectAnswer), Correct: true})
		}
		answers = append(answers, AnswerOption{Value: decode(a)})
	}
	if pos == n {
		answers = append(answers, AnswerOption{Value: decode(q.CorrectAnswer), Correct: true})
	}
	return answers
}

// CorrectIndex returns the position of the correct option, or -1.
func CorrectIndex(answers []AnswerOption) int {
	for i, a := range answers {
		if a.Correct {
			return i
		}
	}
	return -1
}

// Grade returns the feedback for a submission. Options are matched by decoded
// value, so when two options decode to the same text the first one decides.
func Grade(selected string, hasSelection bool, answers []AnswerOption) (Feedback, error) {
	if !hasSelection {
		return Feedback{Message: MsgNoSelection, Kind: FeedbackPrompt}, ErrNoSelection
	}
	for _, a := range answers {
		if a.Value != selected {
			continue
		}
		if a.Correct {
			return Feedback{Message: MsgCorrect, Kind: FeedbackCorrect}, nil
		}
		return Feedback{Message: MsgIncorrect, Kind: FeedbackIncorrect}, nil
	}
	return Feedback{Message: MsgIncorrect, Kind: FeedbackIncorrect}, nil
}
