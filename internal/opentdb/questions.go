package opentdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/billel/trivia/internal/quiz"
)

type questionsResponse struct {
	ResponseCode int              `json:"response_code"`
	Results      []questionResult `json:"results"`
}

type questionResult struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// FetchQuestion requests exactly one question for categoryID. An empty
// result set is reported as quiz.ErrEmptyResult; every other failure is a
// *quiz.FetchError.
func (c *Client) FetchQuestion(ctx context.Context, categoryID int) (*quiz.QuestionRecord, error) {
	q := url.Values{
		"amount":   {"1"},
		"category": {strconv.Itoa(categoryID)},
	}
	if c.difficulty != "" {
		q.Set("difficulty", c.difficulty)
	}

	var resp questionsResponse
	if err := c.getJSON(ctx, "/api.php", q, QuestionsSchema, &resp); err != nil {
		return nil, &quiz.FetchError{Op: "fetch question", Err: err}
	}

	switch resp.ResponseCode {
	case codeSuccess, codeNoResults:
	default:
		return nil, &quiz.FetchError{Op: "fetch question", Err: &ResponseCodeError{Code: resp.ResponseCode}}
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("category %d: %w", categoryID, quiz.ErrEmptyResult)
	}

	r := resp.Results[0]
	return &quiz.QuestionRecord{
		Prompt:           r.Question,
		CorrectAnswer:    r.CorrectAnswer,
		IncorrectAnswers: r.IncorrectAnswers,
		Category:         r.Category,
		Difficulty:       r.Difficulty,
		Type:             r.Type,
	}, nil
}
