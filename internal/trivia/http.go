package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for trivia endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts the trivia routes on mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.GetCategoryQuestions)
	mux.HandleFunc("GET /questions", h.GetQuestions)
	mux.HandleFunc("POST /questions", h.PostQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", h.PostQuiz)

	// Method-less patterns only match when no method-specific route did.
	for _, path := range []string{"/categories", "/categories/{id}/questions", "/questions", "/questions/{id}", "/quizzes"} {
		mux.HandleFunc(path, methodNotAllowed)
	}
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httperrors.RespondMethodNotAllowed(w)
}

// GetCategories handles GET /categories
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": CategoryMap(categories),
	})
}

// GetQuestions handles GET /questions?page=N
func (h *HTTPHandlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListQuestions(r.Context(), ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        list.Questions,
		"total_questions":  list.Total,
		"categories":       CategoryMap(list.Categories),
		"current_category": nil,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w, httperrors.ErrCodeInvalidID)
		return
	}
	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

type postQuestionRequest struct {
	SearchTerm *string      `json:"searchTerm"`
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Category   *FlexibleInt `json:"category"`
	Difficulty *FlexibleInt `json:"difficulty"`
}

// PostQuestion handles POST /questions. A non-empty searchTerm runs a search,
// any other body creates a question.
func (h *HTTPHandlers) PostQuestion(w http.ResponseWriter, r *http.Request) {
	var req postQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest)
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		h.search(w, r, *req.SearchTerm, page)
		return
	}

	in, err := req.toNewQuestion()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.service.CreateQuestion(r.Context(), in, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"created":          created.Question.ID,
		"question_created": created.Question.Question,
		"questions":        created.Page.Questions,
		"total_questions":  created.Page.Total,
	})
}

func (h *HTTPHandlers) search(w http.ResponseWriter, r *http.Request, term string, page int) {
	result, err := h.service.SearchQuestions(r.Context(), term, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": nil,
	})
}

func (req postQuestionRequest) toNewQuestion() (NewQuestion, error) {
	switch {
	case req.Question == nil:
		return NewQuestion{}, missingField("question")
	case req.Answer == nil:
		return NewQuestion{}, missingField("answer")
	case req.Category == nil:
		return NewQuestion{}, missingField("category")
	case req.Difficulty == nil:
		return NewQuestion{}, missingField("difficulty")
	}
	return NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   int64(*req.Category),
		Difficulty: int(*req.Difficulty),
	}, nil
}

// GetCategoryQuestions handles GET /categories/{id}/questions?page=N
func (h *HTTPHandlers) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w, httperrors.ErrCodeInvalidID)
		return
	}
	result, err := h.service.QuestionsByCategory(r.Context(), id, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.Category.Type,
	})
}

type quizCategory struct {
	ID   *FlexibleInt `json:"id"`
	Type string       `json:"type"`
}

type quizRequest struct {
	PreviousQuestions *[]FlexibleInt `json:"previous_questions"`
	QuizCategory      *quizCategory  `json:"quiz_category"`
}

// PostQuiz handles POST /quizzes
func (h *HTTPHandlers) PostQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest)
		return
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil || req.QuizCategory.ID == nil {
		h.fail(w, r, ErrQuizFieldMissing)
		return
	}

	asked := make([]int64, len(*req.PreviousQuestions))
	for i, id := range *req.PreviousQuestions {
		asked[i] = int64(id)
	}

	q, ok, err := h.service.NextQuizQuestion(r.Context(), int64(*req.QuizCategory.ID), asked)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := map[string]interface{}{"success": true}
	if ok {
		resp["question"] = q
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Tag: "required", Message: field + " is required"}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// fail maps service errors onto the not-found / unprocessable response classes.
func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		code := httperrors.ErrCodeValidationFailed
		if verr.Tag == "required" {
			code = httperrors.ErrCodeMissingField
		}
		httperrors.RespondValidationError(w, code, verr.Field)
	case errors.Is(err, ErrPageNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodePageNotFound)
	case errors.Is(err, ErrNoMatches):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNoMatches)
	case errors.Is(err, ErrQuizFieldMissing):
		httperrors.RespondNotFound(w, httperrors.ErrCodeMissingField)
	case errors.Is(err, ErrCategoryNotFound):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeCategoryNotFound)
	case errors.Is(err, ErrQuestionNotFound):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeQuestionNotFound)
	case errors.Is(err, ErrSearchTermLength):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeSearchTermTooLong)
	case errors.Is(err, ErrInvalidQuestion):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeValidationFailed)
	default:
		logger := logging.FromContext(r.Context(), h.logger)
		logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("store operation failed")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeStoreFailure)
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
