package trivia

import (
	"strings"
	"unicode"
)

// Search keeps the questions whose text contains term under Unicode simple case
// folding, in corpus order.
func Search(corpus []Question, term string) []Question {
	needle := fold(term)
	matches := make([]Question, 0)
	for _, q := range corpus {
		if strings.Contains(fold(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}

// fold maps every rune to the smallest member of its simple-fold orbit, so two
// strings fold equal exactly when strings.EqualFold reports them equal.
func fold(s string) string {
	return strings.Map(foldRune, s)
}

func foldRune(r rune) rune {
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		least = min(least, f)
	}
	return least
}
