package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Store composes the question and category repositories into the trivia.Repository contract.
type Store struct {
	questions  *QuestionRepository
	categories *CategoryRepository
}

var _ trivia.Repository = (*Store)(nil)

func NewStore(questions *QuestionRepository, categories *CategoryRepository) *Store {
	return &Store{questions: questions, categories: categories}
}

func (s *Store) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	return s.questions.List(ctx)
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]trivia.Question, error) {
	return s.questions.ListByCategory(ctx, categoryID)
}

func (s *Store) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	return s.questions.Search(ctx, term)
}

func (s *Store) GetCategory(ctx context.Context, id int64) (trivia.Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *Store) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	return s.categories.List(ctx)
}

func (s *Store) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	return s.questions.Insert(ctx, q)
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	return s.questions.Delete(ctx, id)
}
