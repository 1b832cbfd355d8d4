//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestCreateSearchDeleteFlow(t *testing.T) {
	marker := fmt.Sprintf("integration-%d", time.Now().UnixNano())

	status, body := doJSON(t, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "Which marker is this " + marker + "?",
		"answer":     marker,
		"category":   "1",
		"difficulty": 2,
	})
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("create failed: %d %v", status, body)
	}
	id, ok := body["created"].(float64)
	if !ok {
		t.Fatalf("created id missing: %v", body)
	}

	status, body = doJSON(t, http.MethodPost, "/questions", map[string]string{"searchTerm": marker})
	if status != http.StatusOK {
		t.Fatalf("search failed: %d %v", status, body)
	}
	if matches, _ := body["questions"].([]interface{}); len(matches) != 1 {
		t.Fatalf("expected exactly one match, got %v", body["questions"])
	}

	status, body = doJSON(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"type": "Science", "id": 1},
	})
	if status != http.StatusOK || body["question"] == nil {
		t.Fatalf("quiz failed: %d %v", status, body)
	}

	status, body = doJSON(t, http.MethodDelete, fmt.Sprintf("/questions/%d", int64(id)), nil)
	if status != http.StatusOK || body["deleted"] != id {
		t.Fatalf("delete failed: %d %v", status, body)
	}

	status, _ = doJSON(t, http.MethodPost, "/questions", map[string]string{"searchTerm": marker})
	if status != http.StatusNotFound {
		t.Fatalf("deleted question still searchable, status %d", status)
	}
}

func TestCategoriesListed(t *testing.T) {
	status, body := doJSON(t, http.MethodGet, "/categories", nil)
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	categories, ok := body["categories"].(map[string]interface{})
	if !ok || len(categories) == 0 {
		t.Fatalf("expected categories, got %v", body["categories"])
	}
}
