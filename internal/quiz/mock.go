package quiz

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Question *QuestionRecord
	Err      error
}

// MockProvider is a deterministic provider and directory for testing.
// It returns canned question responses in FIFO order and records every
// requested category id.
type MockProvider struct {
	mu         sync.Mutex
	responses  []MockResponse
	Categories []Category
	ListErr    error
	Calls      []int
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Enqueue appends more canned responses.
func (m *MockProvider) Enqueue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, responses...)
}

// FetchQuestion returns the next canned response, or ErrEmptyResult once the
// queue is drained.
func (m *MockProvider) FetchQuestion(_ context.Context, categoryID int) (*QuestionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, categoryID)

	if len(m.responses) == 0 {
		return nil, ErrEmptyResult
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp.Question, resp.Err
}

// ListCategories returns the configured categories or ListErr.
func (m *MockProvider) ListCategories(_ context.Context) ([]Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

// CallCount returns how many questions were requested.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
