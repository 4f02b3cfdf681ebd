package scoring

import (
	"testing"
	"time"

	"github.com/abhisek/trivia/internal/question"
)

func fourOptions(correct, points int) question.Question {
	return question.Question{
		Text:         "Pick one",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Category:     "Test",
		Points:       points,
	}
}

func TestEvaluate_Parsing(t *testing.T) {
	q := fourOptions(2, 10)

	tests := []struct {
		input        string
		wantAccepted bool
		wantCorrect  bool
		wantChoice   int
	}{
		{"3", true, true, 2},
		{" 3 \n", true, true, 2},
		{"1", true, false, 0},
		{"4", true, false, 3},
		{"5", false, false, -1},
		{"0", false, false, -1},
		{"-1", false, false, -1},
		{"", false, false, -1},
		{"c", false, false, -1},
		{"2.0", false, false, -1},
		{"skip", false, false, -1},
	}

	for _, tt := range tests {
		got := Evaluate(q, tt.input, time.Second, 0)
		if got.Accepted != tt.wantAccepted || got.Correct != tt.wantCorrect || got.Choice != tt.wantChoice {
			t.Errorf("Evaluate(%q) = %+v, want accepted=%v correct=%v choice=%d",
				tt.input, got, tt.wantAccepted, tt.wantCorrect, tt.wantChoice)
		}
		if !got.Correct && got.PointsEarned != 0 {
			t.Errorf("Evaluate(%q) earned %d points on a non-correct answer", tt.input, got.PointsEarned)
		}
	}
}

func TestEvaluate_Points(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		elapsed    time.Duration
		budget     int
		wantPoints int
		wantBonus  int
	}{
		{"timer disabled, fast", 10, time.Second, 0, 10, 0},
		{"timer disabled, slow", 10, time.Hour, 0, 10, 0},
		{"30s budget at 10s gets bonus", 10, 10 * time.Second, 30, 15, 5},
		{"30s budget at 20s no bonus", 10, 20 * time.Second, 30, 10, 0},
		{"exactly half budget no bonus", 10, 15 * time.Second, 30, 10, 0},
		{"just under half budget", 10, 14900 * time.Millisecond, 30, 15, 5},
		{"odd points floor bonus", 15, time.Second, 30, 22, 7},
		{"one point bonus floors to zero", 1, time.Second, 30, 1, 0},
		{"odd budget half", 10, 7 * time.Second, 15, 15, 5},
		{"odd budget at 7.5s", 10, 7500 * time.Millisecond, 15, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := fourOptions(0, tt.points)
			got := Evaluate(q, "1", tt.elapsed, tt.budget)
			if !got.Correct {
				t.Fatalf("expected correct answer, got %+v", got)
			}
			if got.PointsEarned != tt.wantPoints {
				t.Errorf("PointsEarned = %d, want %d", got.PointsEarned, tt.wantPoints)
			}
			if got.Bonus != tt.wantBonus {
				t.Errorf("Bonus = %d, want %d", got.Bonus, tt.wantBonus)
			}
		})
	}
}

func TestEvaluate_WrongAnswerNoBonus(t *testing.T) {
	got := Evaluate(fourOptions(0, 10), "2", 0, 30)
	if got.Correct || got.PointsEarned != 0 || got.Bonus != 0 {
		t.Errorf("wrong answer result = %+v, want zero points", got)
	}
}

func TestEvaluate_NegativePointsEarnNothing(t *testing.T) {
	got := Evaluate(fourOptions(0, -10), "1", 0, 30)
	if !got.Correct || got.PointsEarned != 0 || got.Bonus != 0 {
		t.Errorf("negative points result = %+v, want correct with zero points", got)
	}
}

func TestEvaluate_OutOfRangeCorrectIndex(t *testing.T) {
	q := fourOptions(9, 10)
	for _, in := range []string{"1", "2", "3", "4"} {
		got := Evaluate(q, in, 0, 0)
		if !got.Accepted || got.Correct {
			t.Errorf("Evaluate(%q) = %+v, want accepted but incorrect", in, got)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"skip", CommandSkip},
		{"SKIP", CommandSkip},
		{"  Skip\n", CommandSkip},
		{"quit", CommandQuit},
		{"Quit ", CommandQuit},
		{"q", CommandNone},
		{"3", CommandNone},
		{"", CommandNone},
		{"skipper", CommandNone},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.input); got != tt.want {
			t.Errorf("ParseCommand(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input  string
		n      int
		want   int
		wantOK bool
	}{
		{"1", 4, 0, true},
		{" 4 ", 4, 3, true},
		{"5", 4, -1, false},
		{"0", 4, -1, false},
		{"-1", 4, -1, false},
		{"two", 4, -1, false},
		{"1", 0, -1, false},
	}
	for _, tt := range tests {
		got, ok := ParseChoice(tt.input, tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseChoice(%q, %d) = %d, %v; want %d, %v", tt.input, tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}
