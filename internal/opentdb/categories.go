package opentdb

import (
	"context"
	"net/url"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/billel/trivia/internal/quiz"
)

type categoriesResponse struct {
	TriviaCategories []quiz.Category `json:"trivia_categories"`
}

// ListCategories returns every category OpenTDB knows. Concurrent callers
// share a single request.
func (c *Client) ListCategories(ctx context.Context) ([]quiz.Category, error) {
	v, err, _ := c.sf.Do("categories", func() (any, error) {
		var resp categoriesResponse
		if err := c.getJSON(ctx, "/api_category.php", nil, CategoriesSchema, &resp); err != nil {
			return nil, &quiz.FetchError{Op: "list categories", Err: err}
		}
		return resp.TriviaCategories, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers get their own slice; the shared result stays untouched.
	shared := v.([]quiz.Category)
	out := make([]quiz.Category, len(shared))
	copy(out, shared)
	return out, nil
}

// CategoryCount holds the number of questions available in a category.
type CategoryCount struct {
	CategoryID int `json:"category_id" yaml:"category_id"`
	Total      int `json:"total" yaml:"total"`
	Easy       int `json:"easy" yaml:"easy"`
	Medium     int `json:"medium" yaml:"medium"`
	Hard       int `json:"hard" yaml:"hard"`
}

type countResponse struct {
	CategoryID int `json:"category_id"`
	Counts     struct {
		Total  int `json:"total_question_count"`
		Easy   int `json:"total_easy_question_count"`
		Medium int `json:"total_medium_question_count"`
		Hard   int `json:"total_hard_question_count"`
	} `json:"category_question_count"`
}

// CountQuestions returns the question counts for one category.
func (c *Client) CountQuestions(ctx context.Context, categoryID int) (CategoryCount, error) {
	q := url.Values{"category": {strconv.Itoa(categoryID)}}

	var resp countResponse
	if err := c.getJSON(ctx, "/api_count.php", q, CountSchema, &resp); err != nil {
		return CategoryCount{}, &quiz.FetchError{Op: "count questions", Err: err}
	}

	return CategoryCount{
		CategoryID: categoryID,
		Total:      resp.Counts.Total,
		Easy:       resp.Counts.Easy,
		Medium:     resp.Counts.Medium,
		Hard:       resp.Counts.Hard,
	}, nil
}

// CountAll fetches counts for every id with at most limit requests in flight.
// Results are ordered by category id.
func (c *Client) CountAll(ctx context.Context, ids []int, limit int) ([]CategoryCount, error) {
	if limit <= 0 {
		limit = 1
	}

	counts := make([]CategoryCount, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, id := range ids {
		g.Go(func() error {
			cc, err := c.CountQuestions(ctx, id)
			if err != nil {
				return err
			}
			counts[i] = cc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(counts, func(a, b int) bool { return counts[a].CategoryID < counts[b].CategoryID })
	return counts, nil
}
