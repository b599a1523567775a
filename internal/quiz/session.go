package quiz

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ticket identifies one issued fetch. Only the most recently issued ticket of
// a session may apply its outcome.
type Ticket struct {
	SessionID  string
	Seq        uint64
	CategoryID int
}

// Outcome is the result of fetching a ticket's question.
type Outcome struct {
	Ticket   Ticket
	Question *QuestionRecord
	Err      error
}

// Session owns the lifecycle of the one active question for a category.
// All methods are safe for concurrent use; each is a single atomic transition.
type Session struct {
	id       string
	provider QuestionProvider
	rng      Intner
	logger   *zap.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the source used to place the correct answer.
func WithRand(rng Intner) Option {
	return func(s *Session) { s.rng = rng }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates an idle session backed by provider.
func NewSession(provider QuestionProvider, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		provider: provider,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.Question != nil {
		q := *st.Question
		q.IncorrectAnswers = slices.Clone(q.IncorrectAnswers)
		st.Question = &q
	}
	st.Answers = slices.Clone(st.Answers)
	if st.Feedback != nil {
		fb := *st.Feedback
		st.Feedback = &fb
	}
	return st
}

// Begin starts loading a question for categoryID. The session moves to
// PhaseLoading with all prior question data cleared, and the returned ticket
// supersedes every earlier one.
func (s *Session) Begin(categoryID int) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked(categoryID)
}

// BeginReset starts loading a brand-new question for the active category.
func (s *Session) BeginReset() (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked(s.state.CategoryID)
}

func (s *Session) beginLocked(categoryID int) (Ticket, error) {
	if categoryID <= 0 {
		return Ticket{}, ErrNoCategory
	}

	s.seq++
	s.state = State{
		Phase:      PhaseLoading,
		CategoryID: categoryID,
	}

	s.logger.Debug("question requested",
		zap.Int("category_id", categoryID),
		zap.Uint64("seq", s.seq))

	return Ticket{SessionID: s.id, Seq: s.seq, CategoryID: categoryID}, nil
}

// Fetch asks the provider for the ticket's question. It does not touch
// session state, so it may run on any goroutine.
func (s *Session) Fetch(ctx context.Context, t Ticket) Outcome {
	q, err := s.provider.FetchQuestion(ctx, t.CategoryID)
	if err == nil && q == nil {
		err = ErrEmptyResult
	}
	if err != nil {
		q = nil
	}
	return Outcome{Ticket: t, Question: q, Err: err}
}

// Apply installs a fetch outcome. It returns false, leaving the state alone,
// when the outcome belongs to a superseded ticket or another session.
func (s *Session) Apply(o Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Ticket.SessionID != s.id || o.Ticket.Seq != s.seq || s.state.Phase != PhaseLoading {
		s.logger.Debug("stale outcome discarded",
			zap.Uint64("seq", o.Ticket.Seq),
			zap.Uint64("current_seq", s.seq))
		return false
	}

	if o.Err == nil && o.Question == nil {
		o.Err = ErrEmptyResult
	}

	switch {
	case o.Err == nil:
		s.state.Phase = PhaseReady
		s.state.Question = o.Question
		s.state.Answers = DeriveAnswers(*o.Question, s.rng)
	case errors.Is(o.Err, ErrEmptyResult):
		s.state.Phase = PhaseNoQuestion
		s.state.Feedback = &Feedback{Message: MsgNoQuestion, Kind: FeedbackPrompt}
	default:
		s.state.Phase = PhaseError
		s.state.Feedback = &Feedback{Message: MsgFetchFailed, Kind: FeedbackPrompt}
		s.logger.Warn("question fetch failed",
			zap.Int("category_id", o.Ticket.CategoryID),
			zap.Error(o.Err))
	}

	s.logger.Debug("question applied",
		zap.Uint64("seq", o.Ticket.Seq),
		zap.Stringer("phase", s.state.Phase))
	return true
}

// Load fetches a question for categoryID and applies it. Fetch failures are
// reflected in the state; only ErrNoCategory is returned.
func (s *Session) Load(ctx context.Context, categoryID int) error {
	t, err := s.Begin(categoryID)
	if err != nil {
		return err
	}
	s.Apply(s.Fetch(ctx, t))
	return nil
}

// Reset discards the current question and loads a new one for the same category.
func (s *Session) Reset(ctx context.Context) error {
	t, err := s.BeginReset()
	if err != nil {
		return err
	}
	s.Apply(s.Fetch(ctx, t))
	return nil
}

// Select marks value as the chosen answer.
func (s *Session) Select(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.AcceptsInput() {
		return ErrLocked
	}
	for _, a := range s.state.Answers {
		if a.Value == value {
			s.state.Selected = value
			s.state.HasSelection = true
			return nil
		}
	}
	return ErrUnknownAnswer
}

// Submit grades the current selection. Without a selection it sets the
// "select an answer" prompt and leaves the session open for another try.
// Once graded, the session rejects further input until reset.
func (s *Session) Submit() (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.AcceptsInput() {
		var fb Feedback
		if s.state.Feedback != nil {
			fb = *s.state.Feedback
		}
		return fb, ErrLocked
	}

	fb, err := Grade(s.state.Selected, s.state.HasSelection, s.state.Answers)
	s.state.Feedback = &fb
	if err != nil {
		return fb, err
	}

	s.state.Submitted = true
	s.logger.Info("answer graded",
		zap.Int("category_id", s.state.CategoryID),
		zap.Stringer("result", fb.Kind))
	return fb, nil
}
