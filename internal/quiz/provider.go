package quiz

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// QuestionProvider fetches a single question for a category. When the
// provider has nothing for the category it returns an error wrapping
// ErrEmptyResult; a nil record with a nil error is treated the same way.
type QuestionProvider interface {
	FetchQuestion(ctx context.Context, categoryID int) (*QuestionRecord, error)
}

// CategoryDirectory lists the available categories. Failures are *FetchError.
type CategoryDirectory interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

// LoggingProvider is a decorator that logs every question fetch.
type LoggingProvider struct {
	inner  QuestionProvider
	logger *zap.Logger
}

// WithLogging wraps a QuestionProvider with fetch logging.
func WithLogging(p QuestionProvider, l *zap.Logger) QuestionProvider {
	if l == nil {
		l = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: l.Named("provider")}
}

func (l *LoggingProvider) FetchQuestion(ctx context.Context, categoryID int) (*QuestionRecord, error) {
	start := time.Now()
	q, err := l.inner.FetchQuestion(ctx, categoryID)

	fields := []zap.Field{
		zap.Int("category_id", categoryID),
		zap.Duration("latency", time.Since(start)),
	}

	switch {
	case err == nil && q != nil:
		l.logger.Info("question fetched", append(fields,
			zap.String("difficulty", q.Difficulty),
			zap.Int("options", len(q.IncorrectAnswers)+1))...)
	case err == nil, errors.Is(err, ErrEmptyResult):
		l.logger.Info("no question for category", fields...)
	default:
		l.logger.Error("question fetch failed", append(fields, zap.Error(err))...)
	}

	return q, err
}
