package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AllCategories is the quiz category id meaning "every question".
const AllCategories int64 = 0

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 10

// Question is a single trivia item as stored and served to clients.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category groups questions under a display label.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion is the payload accepted for question creation.
type NewQuestion struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   int64  `validate:"gt=0"`
	Difficulty int    `validate:"min=1,max=5"`
}

// Page is one window over a larger ordered result set plus the size of that set.
type Page struct {
	Questions []Question
	Total     int
}

// QuestionList is a page of all questions together with the category lookup.
type QuestionList struct {
	Page
	Categories []Category
}

// CategoryPage is a page of questions scoped to one category.
type CategoryPage struct {
	Page
	Category Category
}

// Created reports a freshly inserted question and the refreshed listing page.
type Created struct {
	Question Question
	Page     Page
}

// FlexibleInt decodes integers sent either as JSON numbers or numeric strings.
// Browser clients built on object keys send "4" where others send 4.
type FlexibleInt int64

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", string(data), err)
	}
	*f = FlexibleInt(n)
	return nil
}

// CategoryMap renders categories as the id -> label object clients expect.
func CategoryMap(categories []Category) map[string]string {
	out := make(map[string]string, len(categories))
	for _, c := range categories {
		out[strconv.FormatInt(c.ID, 10)] = c.Type
	}
	return out
}
