package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingProvider(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Question: ptr(parisRecord())},
		MockResponse{Err: ErrEmptyResult},
		MockResponse{Err: &FetchError{Op: "fetch question", Err: errors.New("boom")}},
	)
	p := WithLogging(mock, zap.New(core))
	ctx := context.Background()

	q, err := p.FetchQuestion(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Paris", q.CorrectAnswer)

	_, err = p.FetchQuestion(ctx, 99)
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = p.FetchQuestion(ctx, 9)
	var fe *FetchError
	assert.ErrorAs(t, err, &fe)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "question fetched", entries[0].Message)
	assert.Equal(t, "no question for category", entries[1].Message)
	assert.Equal(t, "question fetch failed", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.EqualValues(t, 99, entries[1].ContextMap()["category_id"])
}

func TestFetchError(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	err := error(&FetchError{Op: "list categories", Err: inner})

	assert.Equal(t, "list categories: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "fetch question: fetch failed", (&FetchError{Op: "fetch question"}).Error())
}
