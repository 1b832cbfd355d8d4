// Package triviatest provides an in-memory trivia.Repository and the standard
// fixture used across handler and service tests.
package triviatest

import (
	"context"
	"slices"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Memory is a trivia.Repository backed by slices. Failing, when set, is returned
// from every call so tests can exercise store failures.
type Memory struct {
	mu         sync.Mutex
	questions  []trivia.Question
	categories []trivia.Category
	nextID     int64

	Failing error
}

var _ trivia.Repository = (*Memory)(nil)

// NewMemory seeds a repository with copies of questions and categories.
func NewMemory(questions []trivia.Question, categories []trivia.Category) *Memory {
	m := &Memory{
		questions:  slices.Clone(questions),
		categories: slices.Clone(categories),
	}
	for _, q := range questions {
		m.nextID = max(m.nextID, q.ID)
	}
	return m
}

// NewFixture returns a repository holding Categories and Questions.
func NewFixture() *Memory {
	return NewMemory(Questions(), Categories())
}

func (m *Memory) ListQuestions(_ context.Context) ([]trivia.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing != nil {
		return nil, m.Failing
	}
	return slices.Clone(m.questions), nil
}

func (m *Memory) ListQuestionsByCategory(_ context.Context, categoryID int64) ([]trivia.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing != nil {
		return nil, m.Failing
	}
	out := make([]trivia.Question, 0)
	for _, q := range m.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

// SearchQuestions returns the whole corpus, leaving exact matching to the service.
func (m *Memory) SearchQuestions(ctx context.Context, _ string) ([]trivia.Question, error) {
	return m.ListQuestions(ctx)
}

func (m *Memory) GetCategory(_ context.Context, id int64) (trivia.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing != nil {
		return trivia.Category{}, m.Failing
	}
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return trivia.Category{}, trivia.ErrCategoryNotFound
}

func (m *Memory) ListCategories(_ context.Context) ([]trivia.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing != nil {
		return nil, m.Failing
	}
	return slices.Clone(m.categories), nil
}

func (m *Memory) InsertQuestion(_ context.Context, in trivia.NewQuestion) (trivia.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing != nil {
		return trivia.Question{}, m.Failing
	}
	m.nextID++
	q := trivia.Question{
		ID:         m.nextID,
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	m.questions = append(m.questions, q)
	return q, nil
}

func (m *Memory) DeleteQuestion(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing != nil {
		return m.Failing
	}
	i := slices.IndexFunc(m.questions, func(q trivia.Question) bool { return q.ID == id })
	if i < 0 {
		return trivia.ErrQuestionNotFound
	}
	m.questions = slices.Delete(m.questions, i, i+1)
	return nil
}

// Len reports the number of stored questions.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions)
}
