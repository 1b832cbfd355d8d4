package trivia

import "strconv"

// Paginate returns the 1-based page of items holding at most size elements.
// Non-positive page numbers fall back to the first page; pages past the end are empty.
func Paginate[T any](items []T, page, size int) []T {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (len(items) + size - 1) / size
	if page > pages {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end:end]
}

// ParsePage reads a page query value; anything unparsable means page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page <= 0 {
		return 1
	}
	return page
}
