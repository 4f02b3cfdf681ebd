package question

// Question is a single multiple-choice trivia item.
type Question struct {
	// Text is the prompt shown to the player.
	Text string `json:"question" yaml:"question"`

	// Options are the answer choices, presented 1-based to the player.
	Options []string `json:"options" yaml:"options"`

	// CorrectIndex is the 0-based index into Options of the right answer.
	CorrectIndex int `json:"correct" yaml:"correct"`

	// Category groups questions in the final report.
	Category string `json:"category" yaml:"category"`

	// Points is the base reward for a correct answer.
	Points int `json:"points" yaml:"points"`
}

// HasValidAnswer reports whether CorrectIndex points at one of the options.
func (q Question) HasValidAnswer() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

// CorrectOption returns the text of the correct option, or "" if the index is out of range.
func (q Question) CorrectOption() string {
	if !q.HasValidAnswer() {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// TotalPoints sums the base points of all questions. Negative values count
// as zero, matching what a correct answer can earn.
func TotalPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += max(q.Points, 0)
	}
	return total
}
