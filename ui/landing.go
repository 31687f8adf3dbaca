package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// landingPage hosts the credential form. A successful login or signup reveals
// the question panel and the way to the personal-info page.
type landingPage struct {
	pageBase
	styles        Styles
	toast         *toastModel
	auth          authForm
	questions     questionPanel
	showQuestions bool
	sessionID     string
}

func newLandingPage(base pageBase, deps Deps, styles Styles, toast *toastModel) *landingPage {
	return &landingPage{
		pageBase:  base,
		styles:    styles,
		toast:     toast,
		auth:      newAuthForm(deps.Credential, styles),
		questions: newQuestionPanel(deps.Question, styles),
	}
}

func (p *landingPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authDoneMsg:
		n, ok := p.auth.finish(msg)
		if ok {
			p.showQuestions = true
			p.sessionID = msg.sessionID
		}
		return p.toast.show(n)
	case questionsDoneMsg:
		return p.toast.show(p.questions.finish(msg))
	case spinner.TickMsg:
		return tea.Batch(p.auth.update(msg, p.pageBase, p.toast), p.questions.tick(msg))
	case tea.KeyMsg:
		if p.showQuestions {
			switch {
			case key.Matches(msg, keys.Generate):
				return p.questions.generate(p.pageBase, p.sessionID)
			case key.Matches(msg, keys.PersonalInfo):
				p.navigate(routePersonalInfo)
				return nil
			}
		}
	}
	return p.auth.update(msg, p.pageBase, p.toast)
}

func (p *landingPage) View() string {
	views := []string{p.auth.View()}
	if p.showQuestions {
		views = append(views,
			p.questions.View(),
			p.styles.Link.Render("Continue to personal info (ctrl+p)"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
