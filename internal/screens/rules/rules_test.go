package rules

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/router"
)

func TestRulesScreen_View(t *testing.T) {
	r := New(30)
	view := r.View(100, 30)
	for _, want := range []string{"How to play", "30 second", "skip"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRulesScreen_EnterPops(t *testing.T) {
	r := New(0)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestRulesScreen_OtherKeysIgnored(t *testing.T) {
	r := New(0)
	if _, cmd := r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("expected no command for unrelated keys")
	}
}

func TestRulesScreen_Title(t *testing.T) {
	if got := New(0).Title(); got != "Rules" {
		t.Errorf("Title = %q, want Rules", got)
	}
}
