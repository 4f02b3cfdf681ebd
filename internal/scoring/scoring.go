package scoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/trivia/internal/question"
)

// BonusRate is the share of a question's base points awarded as a speed bonus.
const BonusRate = 0.5

// Command is a control input typed at the answer prompt.
type Command int

const (
	CommandNone Command = iota // Not a command; treat as an answer.
	CommandSkip
	CommandQuit
)

// ParseCommand recognizes the "skip" and "quit" control inputs.
// Matching ignores case and surrounding whitespace.
func ParseCommand(raw string) Command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "skip":
		return CommandSkip
	case "quit":
		return CommandQuit
	default:
		return CommandNone
	}
}

// Result is the verdict on one answer.
type Result struct {
	// Accepted is false when the input is not an option number in range.
	Accepted bool

	// Choice is the 0-based option index the player picked (-1 if not accepted).
	Choice int

	Correct bool

	// PointsEarned includes Bonus.
	PointsEarned int

	Bonus int
}

// Evaluate judges rawInput against q. rawInput is a 1-based option number.
// A correct answer earns q.Points, plus a bonus of floor(q.Points * BonusRate)
// when the timer is enabled (budgetSeconds > 0) and the answer came in under
// half the budget.
func Evaluate(q question.Question, rawInput string, elapsed time.Duration, budgetSeconds int) Result {
	choice, ok := ParseChoice(rawInput, len(q.Options))
	if !ok {
		return Result{Choice: -1}
	}

	res := Result{Accepted: true, Choice: choice}
	if res.Choice != q.CorrectIndex {
		return res
	}

	// Negative point values earn nothing so the score never drops below 0.
	points := max(q.Points, 0)
	res.Correct = true
	res.PointsEarned = points
	if EarnsBonus(elapsed, budgetSeconds) {
		res.Bonus = Bonus(points)
		res.PointsEarned += res.Bonus
	}
	return res
}

// ParseChoice parses a 1-based option number out of numOptions and returns
// the 0-based index.
func ParseChoice(rawInput string, numOptions int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(rawInput))
	if err != nil || n < 1 || n > numOptions {
		return -1, false
	}
	return n - 1, true
}

// EarnsBonus reports whether an answer given after elapsed qualifies for the
// speed bonus under a budget of budgetSeconds.
func EarnsBonus(elapsed time.Duration, budgetSeconds int) bool {
	if budgetSeconds <= 0 {
		return false
	}
	return elapsed.Seconds() < float64(budgetSeconds)/2
}

// Bonus returns the speed bonus for a question worth points.
func Bonus(points int) int {
	return int(float64(points) * BonusRate)
}
