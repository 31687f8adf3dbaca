package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muhammadheryan/femnest/application/credential"
	"github.com/muhammadheryan/femnest/application/profile"
	"github.com/muhammadheryan/femnest/application/question"
	"github.com/muhammadheryan/femnest/cmd/config"
	"github.com/muhammadheryan/femnest/constant"
	questionrepo "github.com/muhammadheryan/femnest/repository/question"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", JWTExpiration: time.Hour},
		Demo: config.DemoConfig{Email: "test@example.com", Password: "password123"},
	}
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	cfg := testConfig()

	credentialApp, err := credential.NewCredentialApp(cfg)
	if err != nil {
		t.Fatalf("NewCredentialApp: %v", err)
	}
	repo, err := questionrepo.NewQuestionRepository()
	if err != nil {
		t.Fatalf("NewQuestionRepository: %v", err)
	}
	return Deps{
		Credential: credentialApp,
		Question:   question.NewQuestionApp(cfg, repo),
		Profile:    profile.NewProfileApp(cfg),
	}
}

func newTestModel(t *testing.T, deps Deps) *Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return New(ctx, deps)
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlG    = tea.KeyMsg{Type: tea.KeyCtrlG}
	ctrlP    = tea.KeyMsg{Type: tea.KeyCtrlP}
	ctrlB    = tea.KeyMsg{Type: tea.KeyCtrlB}
)

// runCmd executes cmd and any batched children, returning the produced messages.
// Only use it on commands built from immediate work; timer commands would block.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %d messages", zero, len(msgs))
	return zero
}

// login drives the credential form through a successful demo login.
func login(t *testing.T, m *Model) {
	t.Helper()
	typeText(m, "test@example.com")
	press(m, keyTab)
	typeText(m, "password123")
	done := findMsg[authDoneMsg](t, runCmd(press(m, keyEnter)))
	if done.err != nil {
		t.Fatalf("login failed: %v", done.err)
	}
	m.Update(done)
}

func TestModel_StartsOnLanding(t *testing.T) {
	m := newTestModel(t, testDeps(t))

	if m.route != routeLanding || m.landing == nil || m.personal != nil {
		t.Fatalf("expected a live landing page, got route %q", m.route)
	}
	if m.landing.showQuestions {
		t.Error("question panel must start hidden")
	}
	if m.landing.auth.mode != constant.AuthModeLogin {
		t.Errorf("expected login mode, got %q", m.landing.auth.mode)
	}
}

func TestModel_LoginRevealsQuestions(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	login(t, m)

	p := m.landing
	if !p.showQuestions {
		t.Fatal("expected question panel after login")
	}
	if p.sessionID == "" {
		t.Error("expected a session id from the reveal token")
	}
	if p.auth.loading {
		t.Error("form still loading after completion")
	}
	if m.toast.current == nil || m.toast.current.Title != "Login Successful" {
		t.Errorf("unexpected toast %+v", m.toast.current)
	}
}

func TestModel_LoginMismatchKeepsPanelHidden(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	typeText(m, "jane@mail.com")
	press(m, keyTab)
	typeText(m, "password123")

	done := findMsg[authDoneMsg](t, runCmd(press(m, keyEnter)))
	m.Update(done)

	if m.landing.showQuestions {
		t.Fatal("panel revealed for a rejected credential")
	}
	if m.toast.current == nil || m.toast.current.Title != "Login Failed" {
		t.Fatalf("unexpected toast %+v", m.toast.current)
	}
	if m.toast.current.Variant != constant.VariantDestructive {
		t.Error("expected destructive toast")
	}
}

func TestModel_SignupAlwaysSucceeds(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	press(m, ctrlN)
	typeText(m, "anyone@mail.com")
	press(m, keyTab)
	typeText(m, "secret1")
	press(m, keyTab)
	typeText(m, "secret1")

	done := findMsg[authDoneMsg](t, runCmd(press(m, keyEnter)))
	if done.mode != constant.AuthModeSignup {
		t.Fatalf("expected signup submission, got %q", done.mode)
	}
	m.Update(done)

	if !m.landing.showQuestions {
		t.Fatal("expected question panel after signup")
	}
	if m.toast.current.Title != "Account Created" {
		t.Errorf("unexpected toast %q", m.toast.current.Title)
	}
}

func TestModel_ValidationErrorsAndFieldClearing(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	press(m, ctrlN)
	typeText(m, "bad")
	press(m, keyTab)
	typeText(m, "123")

	if cmd := press(m, keyEnter); cmd == nil {
		t.Fatal("expected focus command for the first invalid field")
	}
	f := &m.landing.auth
	if f.loading {
		t.Fatal("invalid input must not start a round trip")
	}
	for _, name := range []string{constant.FieldEmail, constant.FieldPassword} {
		if f.errs[name] == "" {
			t.Errorf("expected error for %s", name)
		}
	}
	if f.errs[constant.FieldConfirmPassword] != "Passwords do not match." {
		t.Errorf("confirm error = %q", f.errs[constant.FieldConfirmPassword])
	}
	if f.focus != 0 {
		t.Errorf("expected focus on email, got %d", f.focus)
	}
	if m.toast.current == nil || m.toast.current.Title != "Validation Error" {
		t.Fatalf("unexpected toast %+v", m.toast.current)
	}

	typeText(m, "@mail.com")
	if _, ok := f.errs[constant.FieldEmail]; ok {
		t.Error("editing email must clear its error")
	}
	if f.errs[constant.FieldPassword] == "" {
		t.Error("other field errors must survive")
	}
}

func TestModel_ToggleModeClearsState(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	typeText(m, "x")
	press(m, keyEnter)

	f := &m.landing.auth
	if len(f.errs) == 0 {
		t.Fatal("expected errors before toggling")
	}

	press(m, ctrlN)
	if f.mode != constant.AuthModeSignup {
		t.Fatalf("expected signup mode, got %q", f.mode)
	}
	if len(f.errs) != 0 {
		t.Errorf("errors survived the toggle: %v", f.errs)
	}
	for i, in := range f.inputs {
		if in.Value() != "" {
			t.Errorf("input %d kept %q", i, in.Value())
		}
	}

	press(m, ctrlN)
	if f.mode != constant.AuthModeLogin {
		t.Errorf("expected login mode, got %q", f.mode)
	}
}

func TestModel_SubmitSuppressedWhileInFlight(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	typeText(m, "test@example.com")
	press(m, keyTab)
	typeText(m, "password123")

	if cmd := press(m, keyEnter); cmd == nil {
		t.Fatal("expected a submission command")
	}
	if !m.landing.auth.loading {
		t.Fatal("expected loading state")
	}
	if cmd := press(m, keyEnter); cmd != nil {
		t.Error("second submit while loading must be ignored")
	}
	if cmd := press(m, ctrlN); cmd != nil || m.landing.auth.mode != constant.AuthModeLogin {
		t.Error("mode toggle while loading must be ignored")
	}
}

func TestModel_CredentialInputsHaveNoLengthCap(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	email := strings.Repeat("a", 300) + "@mail.com"
	typeText(m, email)

	if got := m.landing.auth.inputs[0].Value(); got != email {
		t.Fatalf("email input kept %d chars, want %d", len(got), len(email))
	}
}

func TestModel_StaleResultsAreDropped(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	login(t, m)

	old := m.landing
	oldID := old.id
	press(m, ctrlP)

	if m.route != routePersonalInfo {
		t.Fatalf("expected personal info route, got %q", m.route)
	}
	if old.ctx.Err() == nil {
		t.Error("leaving a page must cancel its context")
	}

	before := m.toast.current
	m.Update(questionsDoneMsg{page: oldID, err: nil})
	m.Update(authDoneMsg{page: oldID})
	if m.toast.current != before {
		t.Error("stale results must not reach the notification area")
	}
	if m.route != routePersonalInfo {
		t.Error("stale results must not change the route")
	}
}

func TestModel_QuitCancelsPage(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	ctx := m.landing.ctx

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if ctx.Err() == nil {
		t.Error("quitting must cancel the live page")
	}
}

func TestModel_ViewReflectsState(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	if got := m.View(); !containsAll(got, "FemNest", "Welcome Back", "Sign In") {
		t.Fatalf("landing view missing content:\n%s", got)
	}

	press(m, ctrlN)
	if got := m.View(); !containsAll(got, "Join FemNest", "Confirm Password", "Create Account") {
		t.Fatalf("signup view missing content:\n%s", got)
	}
}
