package session

import (
	"fmt"

	"github.com/abhisek/trivia/internal/scoring"
)

// Rules returns the rule lines shown to the player. defaultTime is the
// per-question budget offered at game start (0 means untimed).
func Rules(defaultTime int) []string {
	timer := "Questions are untimed unless you pick a time limit when the game starts."
	if defaultTime > 0 {
		timer = fmt.Sprintf("Each question has a %d second time limit by default; you can change it when the game starts.", defaultTime)
	}
	return []string{
		"Answer each question by typing the number of an option (1-4) and pressing Enter.",
		"A correct answer earns the question's points. A wrong answer earns nothing.",
		timer,
		fmt.Sprintf("Answer correctly within half the time limit for a %d%% speed bonus.", int(scoring.BonusRate*100)),
		"Running out of time counts as a wrong answer.",
		`Type "skip" to pass on a question or "quit" to end the game early.`,
		"At the end you get your score, a grade, and a breakdown by category.",
	}
}
