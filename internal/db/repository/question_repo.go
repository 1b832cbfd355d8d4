package repository

import (
	"context"
	"strings"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int64) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// QuestionRepository wraps sqlc queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]trivia.Question, error) {
	rows, err := r.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// Search runs a case-insensitive ILIKE match; wildcard characters in term match literally.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.store.SearchQuestions(ctx, escapeLike(term))
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// Insert stores a question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	row, err := r.store.InsertQuestion(ctx, sqlcgen.InsertQuestionParams{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: int32(q.Difficulty),
	})
	if err != nil {
		return trivia.Question{}, err
	}
	return toQuestion(row), nil
}

// Delete removes a question, reporting trivia.ErrQuestionNotFound when no row matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return trivia.ErrQuestionNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func toQuestion(row sqlcgen.Question) trivia.Question {
	return trivia.Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: int(row.Difficulty),
	}
}

func toQuestions(rows []sqlcgen.Question) []trivia.Question {
	out := make([]trivia.Question, len(rows))
	for i, row := range rows {
		out[i] = toQuestion(row)
	}
	return out
}
