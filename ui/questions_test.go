package ui

import (
	"strings"
	"testing"

	"github.com/muhammadheryan/femnest/constant"
	questionmocks "github.com/muhammadheryan/femnest/mocks/application/question"
	cerr "github.com/muhammadheryan/femnest/utils/errors"
	"github.com/stretchr/testify/mock"
)

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func TestQuestionPanel_HiddenUntilRevealed(t *testing.T) {
	m := newTestModel(t, testDeps(t))

	press(m, ctrlG)
	if m.landing.questions.loading {
		t.Fatal("generate must be unavailable before login")
	}
	if strings.Contains(m.View(), "Get Profile Questions") {
		t.Error("panel rendered before login")
	}
}

func TestQuestionPanel_GenerateAndRegenerate(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	login(t, m)
	q := &m.landing.questions

	if !strings.Contains(m.View(), "Get Profile Questions") {
		t.Fatal("expected initial trigger label")
	}

	done := findMsg[questionsDoneMsg](t, runCmd(press(m, ctrlG)))
	m.Update(done)

	if len(q.questions) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(q.questions))
	}
	if !q.hasGenerated {
		t.Error("expected hasGenerated after success")
	}
	if m.toast.current.Title != "Questions Generated!" {
		t.Errorf("unexpected toast %q", m.toast.current.Title)
	}
	if !containsAll(m.View(), "Regenerate Questions", "Suggested Profile Questions") {
		t.Errorf("view missing regenerate state:\n%s", m.View())
	}

	cmd := press(m, ctrlG)
	if len(q.questions) != 0 {
		t.Error("regenerate must clear the list before the round trip")
	}
	if press(m, ctrlG) != nil {
		t.Error("trigger must be ignored while loading")
	}
	m.Update(findMsg[questionsDoneMsg](t, runCmd(cmd)))
	if len(q.questions) != 7 {
		t.Errorf("list must be replaced, not appended: got %d", len(q.questions))
	}
}

func TestQuestionPanel_FailureLeavesListEmpty(t *testing.T) {
	deps := testDeps(t)
	questionApp := questionmocks.NewQuestionApp(t)
	questionApp.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return(nil, cerr.SetCustomError(constant.ErrGenerationFailed)).
		Once()
	deps.Question = questionApp

	m := newTestModel(t, deps)
	login(t, m)

	m.Update(findMsg[questionsDoneMsg](t, runCmd(press(m, ctrlG))))

	q := &m.landing.questions
	if len(q.questions) != 0 || q.hasGenerated || q.loading {
		t.Fatalf("unexpected panel state: %+v", q.questions)
	}
	if m.toast.current == nil || m.toast.current.Title != "Generation Failed" {
		t.Fatalf("unexpected toast %+v", m.toast.current)
	}
}
