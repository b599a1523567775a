package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns pos, clamped to the requested range.
type fixedRand struct{ pos int }

func (f fixedRand) IntN(n int) int {
	if f.pos >= n {
		return n - 1
	}
	return f.pos
}

func parisRecord() QuestionRecord {
	return QuestionRecord{
		Prompt:           "What is the capital of France?",
		CorrectAnswer:    "Paris",
		IncorrectAnswers: []string{"Rome", "Berlin", "Madrid"},
	}
}

func TestDeriveAnswers_InsertPositions(t *testing.T) {
	tests := []struct {
		pos  int
		want []string
	}{
		{0, []string{"Paris", "Rome", "Berlin", "Madrid"}},
		{1, []string{"Rome", "Paris", "Berlin", "Madrid"}},
		{2, []string{"Rome", "Berlin", "Paris", "Madrid"}},
		{3, []string{"Rome", "Berlin", "Madrid", "Paris"}},
	}

	for _, tt := range tests {
		answers := DeriveAnswers(parisRecord(), fixedRand{pos: tt.pos})
		require.Len(t, answers, 4)

		var got []string
		for _, a := range answers {
			got = append(got, a.Value)
		}
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.pos, CorrectIndex(answers))
	}
}

func TestDeriveAnswers_ExactlyOneCorrect(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for n := 0; n <= 6; n++ {
		q := QuestionRecord{CorrectAnswer: "right"}
		for i := 0; i < n; i++ {
			q.IncorrectAnswers = append(q.IncorrectAnswers, string(rune('a'+i)))
		}

		for trial := 0; trial < 50; trial++ {
			answers := DeriveAnswers(q, rng)
			require.Len(t, answers, n+1)

			correct := 0
			for _, a := range answers {
				if a.Correct {
					correct++
					assert.Equal(t, "right", a.Value)
				}
			}
			assert.Equal(t, 1, correct)
		}
	}
}

func TestDeriveAnswers_DecodesEntities(t *testing.T) {
	q := QuestionRecord{
		CorrectAnswer:    "Schr&ouml;dinger&#039;s cat",
		IncorrectAnswers: []string{"&quot;Maxwell&quot;", "Tom &amp; Jerry"},
	}

	answers := DeriveAnswers(q, fixedRand{pos: 2})
	assert.Equal(t, []AnswerOption{
		{Value: `"Maxwell"`},
		{Value: "Tom & Jerry"},
		{Value: "Schrödinger's cat", Correct: true},
	}, answers)
}

func TestDeriveAnswers_KeepsIncorrectOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 200; trial++ {
		answers := DeriveAnswers(parisRecord(), rng)

		var incorrect []string
		for _, a := range answers {
			if !a.Correct {
				incorrect = append(incorrect, a.Value)
			}
		}
		require.Equal(t, []string{"Rome", "Berlin", "Madrid"}, incorrect)
	}
}

func TestDeriveAnswers_UniformPosition(t *testing.T) {
	const trials = 10000
	rng := rand.New(rand.NewPCG(42, 1024))

	var counts [4]int
	for i := 0; i < trials; i++ {
		counts[CorrectIndex(DeriveAnswers(parisRecord(), rng))]++
	}

	expected := float64(trials) / 4
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}

	// df=3, p=0.001
	assert.Less(t, chi2, 16.266, "counts %v", counts)
}

func TestDeriveAnswers_NilRand(t *testing.T) {
	answers := DeriveAnswers(parisRecord(), nil)
	assert.Len(t, answers, 4)
	assert.GreaterOrEqual(t, CorrectIndex(answers), 0)
}

func TestGrade(t *testing.T) {
	answers := DeriveAnswers(parisRecord(), fixedRand{pos: 1})

	fb, err := Grade("", false, answers)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, Feedback{Message: MsgNoSelection, Kind: FeedbackPrompt}, fb)

	fb, err = Grade("Paris", true, answers)
	require.NoError(t, err)
	assert.Equal(t, Feedback{Message: MsgCorrect, Kind: FeedbackCorrect}, fb)

	for _, wrong := range []string{"Rome", "Berlin", "Madrid"} {
		fb, err = Grade(wrong, true, answers)
		require.NoError(t, err)
		assert.Equal(t, Feedback{Message: MsgIncorrect, Kind: FeedbackIncorrect}, fb, wrong)
	}
}

func TestGrade_DuplicateDecodedValuesUseFirstMatch(t *testing.T) {
	q := QuestionRecord{
		CorrectAnswer:    "A & B",
		IncorrectAnswers: []string{"A &amp; B", "C"},
	}
	answers := DeriveAnswers(q, fixedRand{pos: 1})
	require.Equal(t, "A & B", answers[0].Value)
	require.False(t, answers[0].Correct)
	require.True(t, answers[1].Correct)

	fb, err := Grade("A & B", true, answers)
	require.NoError(t, err)
	assert.Equal(t, FeedbackIncorrect, fb.Kind)
}
