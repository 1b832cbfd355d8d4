package triviatest

import (
	"strconv"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Category ids in the fixture.
const (
	Science       int64 = 1
	Art           int64 = 2
	Geography     int64 = 3
	History       int64 = 4
	Entertainment int64 = 5
	Sports        int64 = 6
)

// AutobiographyID is the only fixture question mentioning "autobiography".
const AutobiographyID int64 = 5

// Categories mirrors the seed migration.
func Categories() []trivia.Category {
	return []trivia.Category{
		{ID: Science, Type: "Science"},
		{ID: Art, Type: "Art"},
		{ID: Geography, Type: "Geography"},
		{ID: History, Type: "History"},
		{ID: Entertainment, Type: "Entertainment"},
		{ID: Sports, Type: "Sports"},
	}
}

// Questions mirrors the seed migration, ordered by id.
func Questions() []trivia.Question {
	return []trivia.Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: Entertainment, Difficulty: 4},
		{ID: 4, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: Entertainment, Difficulty: 4},
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: History, Difficulty: 2},
		{ID: 6, Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: Entertainment, Difficulty: 3},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: History, Difficulty: 1},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: Sports, Difficulty: 3},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: Sports, Difficulty: 4},
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: History, Difficulty: 2},
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: Geography, Difficulty: 2},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: Geography, Difficulty: 3},
		{ID: 15, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: Geography, Difficulty: 2},
		{ID: 16, Question: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", Category: Art, Difficulty: 1},
		{ID: 17, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: Art, Difficulty: 3},
		{ID: 18, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: Art, Difficulty: 4},
		{ID: 19, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: Art, Difficulty: 2},
		{ID: 20, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: Science, Difficulty: 4},
		{ID: 21, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: Science, Difficulty: 3},
		{ID: 22, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: Science, Difficulty: 4},
		{ID: 23, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: History, Difficulty: 4},
	}
}

// Numbered returns n synthetic questions with ids 1..n in category Science.
func Numbered(n int) []trivia.Question {
	out := make([]trivia.Question, n)
	for i := range out {
		id := int64(i + 1)
		out[i] = trivia.Question{
			ID:         id,
			Question:   "Question " + strconv.FormatInt(id, 10),
			Answer:     "Answer " + strconv.FormatInt(id, 10),
			Category:   Science,
			Difficulty: 1,
		}
	}
	return out
}
