package question

// defaultQuestions is the fallback set used when no question source can be loaded.
var defaultQuestions = []Question{
	{
		Text:         "What is the capital of France?",
		Options:      []string{"London", "Berlin", "Paris", "Madrid"},
		CorrectIndex: 2,
		Category:     "Geography",
		Points:       10,
	},
	{
		Text:         "Which planet is known as the Red Planet?",
		Options:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
		CorrectIndex: 1,
		Category:     "Science",
		Points:       10,
	},
	{
		Text:         "Who painted the Mona Lisa?",
		Options:      []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Claude Monet"},
		CorrectIndex: 2,
		Category:     "Art",
		Points:       15,
	},
	{
		Text:         "What is the largest ocean on Earth?",
		Options:      []string{"Atlantic", "Indian", "Arctic", "Pacific"},
		CorrectIndex: 3,
		Category:     "Geography",
		Points:       10,
	},
	{
		Text:         "What is the chemical symbol for gold?",
		Options:      []string{"Go", "Gd", "Au", "Ag"},
		CorrectIndex: 2,
		Category:     "Science",
		Points:       15,
	},
}

// Defaults returns a copy of the built-in question set.
func Defaults() []Question {
	out := make([]Question, len(defaultQuestions))
	for i, q := range defaultQuestions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
