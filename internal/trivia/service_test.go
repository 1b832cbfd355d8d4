package trivia_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/internal/trivia/triviatest"
)

func newService(repo trivia.Repository) *trivia.Service {
	return trivia.NewService(repo, trivia.NewSeededSelector(1), trivia.ServiceOptions{
		PageSize:         10,
		SearchTermMaxLen: 50,
	}, zerolog.Nop())
}

func TestServiceListQuestions(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	list, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list.Questions, 10)
	assert.Equal(t, 19, list.Total)
	assert.Len(t, list.Categories, 6)

	list, err = svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, list.Questions, 9)
}

func TestServiceListQuestionsPastLastPage(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	_, err := svc.ListQuestions(context.Background(), 100)
	assert.ErrorIs(t, err, trivia.ErrPageNotFound)
}

func TestServiceStoreFailurePropagates(t *testing.T) {
	repo := triviatest.NewFixture()
	repo.Failing = errors.New("connection reset")
	svc := newService(repo)

	_, err := svc.ListQuestions(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, trivia.ErrPageNotFound)
	assert.ErrorContains(t, err, "connection reset")
}

func TestServiceSearch(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	page, err := svc.SearchQuestions(context.Background(), "AutoBiography", 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, triviatest.AutobiographyID, page.Questions[0].ID)
	assert.Equal(t, 19, page.Total, "total counts the whole bank, not the matches")
}

func TestServiceSearchNoMatches(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	_, err := svc.SearchQuestions(context.Background(), "xylophone", 1)
	assert.ErrorIs(t, err, trivia.ErrNoMatches)
}

func TestServiceSearchPastLastPage(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	_, err := svc.SearchQuestions(context.Background(), "soccer", 2)
	assert.ErrorIs(t, err, trivia.ErrPageNotFound)
}

func TestServiceSearchTermTooLong(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	_, err := svc.SearchQuestions(context.Background(), strings.Repeat("a", 51), 1)
	assert.ErrorIs(t, err, trivia.ErrSearchTermLength)
}

func TestServiceCreateQuestion(t *testing.T) {
	repo := triviatest.NewFixture()
	svc := newService(repo)

	created, err := svc.CreateQuestion(context.Background(), trivia.NewQuestion{
		Question:   "What color was Napoleon's white horse?",
		Answer:     "White",
		Category:   triviatest.History,
		Difficulty: 1,
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(24), created.Question.ID)
	assert.Equal(t, 20, created.Page.Total)
	assert.Len(t, created.Page.Questions, 10)
	assert.Equal(t, created.Question, created.Page.Questions[9], "new question ends the last page")
	assert.Equal(t, 20, repo.Len())
}

func TestServiceCreateQuestionValidation(t *testing.T) {
	svc := newService(triviatest.NewFixture())
	valid := trivia.NewQuestion{Question: "Q?", Answer: "A", Category: 1, Difficulty: 3}

	cases := []struct {
		name  string
		edit  func(q *trivia.NewQuestion)
		field string
		tag   string
	}{
		{"empty question", func(q *trivia.NewQuestion) { q.Question = "" }, "question", "required"},
		{"empty answer", func(q *trivia.NewQuestion) { q.Answer = "" }, "answer", "required"},
		{"zero category", func(q *trivia.NewQuestion) { q.Category = 0 }, "category", "gt"},
		{"difficulty too low", func(q *trivia.NewQuestion) { q.Difficulty = 0 }, "difficulty", "min"},
		{"difficulty too high", func(q *trivia.NewQuestion) { q.Difficulty = 6 }, "difficulty", "max"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			tc.edit(&q)

			_, err := svc.CreateQuestion(context.Background(), q, 1)

			var verr *trivia.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.tag, verr.Tag)
			assert.ErrorIs(t, err, trivia.ErrInvalidQuestion)
		})
	}
}

func TestServiceDeleteQuestion(t *testing.T) {
	repo := triviatest.NewFixture()
	svc := newService(repo)

	require.NoError(t, svc.DeleteQuestion(context.Background(), 2))
	assert.Equal(t, 18, repo.Len())

	err := svc.DeleteQuestion(context.Background(), 2)
	assert.ErrorIs(t, err, trivia.ErrQuestionNotFound)
}

func TestServiceResolveCategory(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	category, err := svc.ResolveCategory(context.Background(), triviatest.Art)
	require.NoError(t, err)
	assert.Equal(t, "Art", category.Type)

	_, err = svc.ResolveCategory(context.Background(), 9999)
	assert.ErrorIs(t, err, trivia.ErrCategoryNotFound)
}

func TestServiceQuestionsByCategory(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	result, err := svc.QuestionsByCategory(context.Background(), triviatest.History, 1)
	require.NoError(t, err)
	assert.Equal(t, "History", result.Category.Type)
	assert.Equal(t, 4, result.Total)
	for _, q := range result.Questions {
		assert.Equal(t, triviatest.History, q.Category)
	}
}

func TestServiceQuestionsByCategoryErrorSplit(t *testing.T) {
	repo := triviatest.NewMemory(nil, triviatest.Categories())
	svc := newService(repo)

	_, err := svc.QuestionsByCategory(context.Background(), triviatest.Sports, 1)
	assert.ErrorIs(t, err, trivia.ErrPageNotFound, "known category with no questions")

	_, err = svc.QuestionsByCategory(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, trivia.ErrCategoryNotFound, "unknown category")
}

func TestServiceNextQuizQuestionAllCategories(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	q, ok, err := svc.NextQuizQuestion(context.Background(), trivia.AllCategories, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotZero(t, q.ID)
}

func TestServiceNextQuizQuestionScopedToCategory(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	asked := []int64{}
	for i := 0; i < 4; i++ {
		q, ok, err := svc.NextQuizQuestion(context.Background(), triviatest.History, asked)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, triviatest.History, q.Category)
		assert.NotContains(t, asked, q.ID)
		asked = append(asked, q.ID)
	}

	_, ok, err := svc.NextQuizQuestion(context.Background(), triviatest.History, asked)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceNextQuizQuestionUnknownCategory(t *testing.T) {
	svc := newService(triviatest.NewFixture())

	_, _, err := svc.NextQuizQuestion(context.Background(), 9999, nil)
	assert.ErrorIs(t, err, trivia.ErrCategoryNotFound)
}

func TestServiceDefaultsPageSize(t *testing.T) {
	svc := trivia.NewService(triviatest.NewFixture(), trivia.NewSeededSelector(1), trivia.ServiceOptions{}, zerolog.Nop())

	assert.Equal(t, trivia.DefaultPageSize, svc.PageSize())
}

func TestServiceLogsThroughRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.IntoContext(context.Background(), zerolog.New(&buf).With().Str("request_id", "req-1").Logger())
	svc := newService(triviatest.NewFixture())

	_, err := svc.CreateQuestion(ctx, trivia.NewQuestion{Question: "Q?", Answer: "A", Category: triviatest.Art, Difficulty: 2}, 1)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteQuestion(ctx, 2))

	assert.Contains(t, buf.String(), `"message":"question created"`)
	assert.Contains(t, buf.String(), `"message":"question deleted"`)
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestServiceSearchTotalSurvivesPaging(t *testing.T) {
	repo := triviatest.NewMemory(triviatest.Numbered(25), triviatest.Categories())
	svc := newService(repo)

	page, err := svc.SearchQuestions(context.Background(), "question 1", 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 1, "11 matches, second page holds one")
	assert.Equal(t, 25, page.Total)
}
