package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muhammadheryan/femnest/application/credential"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	"github.com/muhammadheryan/femnest/utils/errors"
)

var authFields = []struct {
	name  string
	label string
}{
	{constant.FieldEmail, "Email"},
	{constant.FieldPassword, "Password"},
	{constant.FieldConfirmPassword, "Confirm Password"},
}

type authForm struct {
	app     credential.CredentialApp
	styles  Styles
	mode    constant.AuthMode
	inputs  []textinput.Model
	focus   int
	errs    map[string]string
	loading bool
	spinner spinner.Model
}

func newAuthForm(app credential.CredentialApp, styles Styles) authForm {
	f := authForm{
		app:     app,
		styles:  styles,
		mode:    constant.AuthModeLogin,
		errs:    make(map[string]string),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	f.inputs = make([]textinput.Model, len(authFields))
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		if authFields[i].name != constant.FieldEmail {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.inputs[i] = ti
	}
	f.setPlaceholders()
	f.inputs[0].Focus()
	return f
}

func (f *authForm) setPlaceholders() {
	f.inputs[0].Placeholder = "Enter your email"
	f.inputs[1].Placeholder = "Enter your password"
	if f.mode == constant.AuthModeSignup {
		f.inputs[1].Placeholder = "Create a password (min 6 chars)"
	}
	f.inputs[2].Placeholder = "Confirm your password"
}

// visible is the number of inputs shown in the current mode.
func (f *authForm) visible() int {
	if f.mode == constant.AuthModeSignup {
		return len(f.inputs)
	}
	return len(f.inputs) - 1
}

func (f *authForm) request() *model.CredentialRequest {
	req := &model.CredentialRequest{
		Email:    f.inputs[0].Value(),
		Password: f.inputs[1].Value(),
	}
	if f.mode == constant.AuthModeSignup {
		req.ConfirmPassword = f.inputs[2].Value()
	}
	return req
}

func (f *authForm) update(msg tea.Msg, pb pageBase, toast *toastModel) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.loading {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.ToggleMode):
			return f.toggleMode()
		case key.Matches(msg, keys.Next):
			return f.setFocus((f.focus + 1) % f.visible())
		case key.Matches(msg, keys.Prev):
			return f.setFocus((f.focus - 1 + f.visible()) % f.visible())
		case key.Matches(msg, keys.Submit):
			return f.submit(pb, toast)
		}
		return f.edit(msg)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// edit forwards a key to the focused input and clears that field's error if
// the value changed.
func (f *authForm) edit(msg tea.KeyMsg) tea.Cmd {
	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.inputs[f.focus].Value() != before {
		delete(f.errs, authFields[f.focus].name)
	}
	return cmd
}

func (f *authForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// toggleMode switches between login and signup, discarding entered values and
// errors. Ignored while a submission is pending.
func (f *authForm) toggleMode() tea.Cmd {
	if f.loading {
		return nil
	}
	f.mode = f.mode.Toggle()
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.errs = make(map[string]string)
	f.setPlaceholders()
	return f.setFocus(0)
}

func (f *authForm) submit(pb pageBase, toast *toastModel) tea.Cmd {
	if f.loading {
		return nil
	}

	req := f.request()
	if errs := f.app.Validate(f.mode, req); len(errs) > 0 {
		f.errs = errs
		cmd := f.focusFirstError()
		return tea.Batch(cmd, toast.show(errors.SetValidationError(errs).Notification()))
	}

	f.errs = make(map[string]string)
	f.loading = true
	return tea.Batch(f.spinner.Tick, authCmd(pb, f.app, f.mode, req))
}

func (f *authForm) focusFirstError() tea.Cmd {
	for i := 0; i < f.visible(); i++ {
		if _, ok := f.errs[authFields[i].name]; ok {
			return f.setFocus(i)
		}
	}
	return nil
}

// finish applies a submission result. It reports whether the credential was
// accepted, along with the notification to show.
func (f *authForm) finish(msg authDoneMsg) (model.Notification, bool) {
	f.loading = false
	if msg.err != nil {
		if ce, ok := msg.err.(errors.CustomError); ok && ce.Fields() != nil {
			f.errs = ce.Fields()
		}
		return notificationFor(msg.err), false
	}
	return msg.res.Notification, true
}

func authCmd(pb pageBase, app credential.CredentialApp, mode constant.AuthMode, req *model.CredentialRequest) tea.Cmd {
	return func() tea.Msg {
		msg := authDoneMsg{page: pb.id, mode: mode}
		if mode == constant.AuthModeSignup {
			msg.res, msg.err = app.Signup(pb.ctx, req)
		} else {
			msg.res, msg.err = app.Login(pb.ctx, req)
		}
		if msg.err != nil {
			return msg
		}
		msg.sessionID, msg.err = app.ValidateToken(pb.ctx, msg.res.Token)
		return msg
	}
}

func (f *authForm) View() string {
	s := f.styles
	login := f.mode == constant.AuthModeLogin

	title, subtitle := "Welcome Back", "Sign in to your account"
	if !login {
		title, subtitle = "Join FemNest", "Create your account today"
	}

	loginTab, signupTab := s.ActiveTab, s.Tab
	if !login {
		loginTab, signupTab = s.Tab, s.ActiveTab
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title) + "\n")
	b.WriteString(s.Subtitle.Render(subtitle) + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, loginTab.Render("Login"), signupTab.Render("Sign Up")) + "\n\n")

	for i := 0; i < f.visible(); i++ {
		label := s.Label
		if i == f.focus {
			label = s.FocusedLabel
		}
		b.WriteString(label.Render(authFields[i].label) + "\n")
		b.WriteString(f.inputs[i].View() + "\n")
		if msg := f.errs[authFields[i].name]; msg != "" {
			b.WriteString(s.FieldError.Render(msg) + "\n")
		}
		b.WriteString("\n")
	}

	switch {
	case f.loading && login:
		b.WriteString(s.ButtonBusy.Render(f.spinner.View() + " Signing In..."))
	case f.loading:
		b.WriteString(s.ButtonBusy.Render(f.spinner.View() + " Creating Account..."))
	case login:
		b.WriteString(s.Button.Render("Sign In"))
	default:
		b.WriteString(s.Button.Render("Create Account"))
	}
	b.WriteString("\n\n")

	if login {
		b.WriteString(s.Link.Render("Don't have an account? Sign up"))
	} else {
		b.WriteString(s.Link.Render("Already have an account? Sign in"))
	}

	return s.Card.Render(b.String())
}
