package trivia

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

// Repository is the storage contract the trivia service reads and mutates through.
// Implementations own persistence, ordering and consistency.
type Repository interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	// SearchQuestions may over-approximate; the service re-filters the candidates.
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	// GetCategory returns ErrCategoryNotFound when id is unknown.
	GetCategory(ctx context.Context, id int64) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	// DeleteQuestion returns ErrQuestionNotFound when id is unknown.
	DeleteQuestion(ctx context.Context, id int64) error
}

// ServiceOptions tunes listing behavior.
type ServiceOptions struct {
	PageSize         int
	SearchTermMaxLen int
}

// Service answers listing, search, mutation and quiz requests. It holds no
// per-request state; every call reads fresh data from the repository.
type Service struct {
	repo       Repository
	selector   *Selector
	validate   *validator.Validate
	pageSize   int
	maxTermLen int
	logger     zerolog.Logger
}

// NewService wires the repository and quiz selector into a service.
func NewService(repo Repository, selector *Selector, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		repo:       repo,
		selector:   selector,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		pageSize:   pageSize,
		maxTermLen: opts.SearchTermMaxLen,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// PageSize reports the configured number of questions per page.
func (s *Service) PageSize() int {
	return s.pageSize
}

// Categories lists every category.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListQuestions returns one page of all questions along with the categories.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionList, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return QuestionList{}, fmt.Errorf("list questions: %w", err)
	}
	window := Paginate(questions, page, s.pageSize)
	if len(window) == 0 {
		return QuestionList{}, ErrPageNotFound
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionList{}, err
	}
	return QuestionList{
		Page:       Page{Questions: window, Total: len(questions)},
		Categories: categories,
	}, nil
}

// SearchQuestions returns one page of the questions whose text contains term.
// Total is the size of the whole question bank, as on the unfiltered listing.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (Page, error) {
	if s.maxTermLen > 0 && utf8.RuneCountInString(term) > s.maxTermLen {
		return Page{}, ErrSearchTermLength
	}
	candidates, err := s.repo.SearchQuestions(ctx, term)
	if err != nil {
		return Page{}, fmt.Errorf("search questions: %w", err)
	}
	matches := Search(candidates, term)
	metrics.SearchResults.Observe(float64(len(matches)))
	if len(matches) == 0 {
		return Page{}, ErrNoMatches
	}
	window := Paginate(matches, page, s.pageSize)
	if len(window) == 0 {
		return Page{}, ErrPageNotFound
	}
	all, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count questions: %w", err)
	}
	return Page{Questions: window, Total: len(all)}, nil
}

// CreateQuestion validates and stores q, then returns it with the requested listing page.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion, page int) (Created, error) {
	if err := s.validateQuestion(q); err != nil {
		return Created{}, err
	}
	created, err := s.repo.InsertQuestion(ctx, q)
	if err != nil {
		return Created{}, fmt.Errorf("insert question: %w", err)
	}
	logger := logging.FromContext(ctx, s.logger)
	logger.Info().
		Int64("question_id", created.ID).
		Int64("category", created.Category).
		Msg("question created")

	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return Created{}, fmt.Errorf("list questions: %w", err)
	}
	return Created{
		Question: created,
		Page:     Page{Questions: Paginate(questions, page, s.pageSize), Total: len(questions)},
	}, nil
}

// DeleteQuestion removes the question with id.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	logger := logging.FromContext(ctx, s.logger)
	logger.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}

// ResolveCategory looks up a category, returning ErrCategoryNotFound when absent.
func (s *Service) ResolveCategory(ctx context.Context, id int64) (Category, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("resolve category %d: %w", id, err)
	}
	return category, nil
}

// QuestionsByCategory returns one page of the questions in category id. An unknown
// category and an empty page are reported as different errors.
func (s *Service) QuestionsByCategory(ctx context.Context, id int64, page int) (CategoryPage, error) {
	category, err := s.ResolveCategory(ctx, id)
	if err != nil {
		return CategoryPage{}, err
	}
	questions, err := s.repo.ListQuestionsByCategory(ctx, id)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("list questions for category %d: %w", id, err)
	}
	window := Paginate(questions, page, s.pageSize)
	if len(window) == 0 {
		return CategoryPage{}, ErrPageNotFound
	}
	return CategoryPage{
		Page:     Page{Questions: window, Total: len(questions)},
		Category: category,
	}, nil
}

// NextQuizQuestion draws an unasked question from category id, or from every
// question when id is AllCategories. It reports false when the round is over.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int64, asked []int64) (Question, bool, error) {
	pool, err := s.quizPool(ctx, categoryID)
	if err != nil {
		return Question{}, false, err
	}

	q, ok := s.selector.Next(pool, asked)
	logger := logging.FromContext(ctx, s.logger)
	if !ok {
		metrics.QuizSelections.WithLabelValues(metrics.OutcomeExhausted).Inc()
		logger.Debug().Int64("category", categoryID).Int("pool", len(pool)).Msg("quiz pool exhausted")
		return Question{}, false, nil
	}
	metrics.QuizSelections.WithLabelValues(metrics.OutcomeServed).Inc()
	logger.Debug().Int64("category", categoryID).Int64("question_id", q.ID).Msg("quiz question selected")
	return q, true, nil
}

func (s *Service) quizPool(ctx context.Context, categoryID int64) ([]Question, error) {
	if categoryID == AllCategories {
		pool, err := s.repo.ListQuestions(ctx)
		if err != nil {
			return nil, fmt.Errorf("list questions: %w", err)
		}
		return pool, nil
	}
	if _, err := s.ResolveCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	pool, err := s.repo.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	return pool, nil
}

func (s *Service) validateQuestion(q NewQuestion) error {
	err := s.validate.Struct(q)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	return &ValidationError{Field: field, Tag: fe.Tag(), Message: validationMessage(field, fe)}
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "min", "max":
		return field + " must be between 1 and 5"
	default:
		return field + " is invalid"
	}
}
