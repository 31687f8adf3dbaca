package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muhammadheryan/femnest/application/credential"
	"github.com/muhammadheryan/femnest/application/profile"
	"github.com/muhammadheryan/femnest/application/question"
	"github.com/muhammadheryan/femnest/utils/logger"
	"go.uber.org/zap"
)

// Deps are the application services the client drives.
type Deps struct {
	Credential credential.CredentialApp
	Question   question.QuestionApp
	Profile    profile.ProfileApp
	ToastTTL   time.Duration
}

// Model is the root program model. It owns routing and the notification area;
// exactly one page is live at a time.
type Model struct {
	deps     Deps
	ctx      context.Context
	styles   Styles
	toast    *toastModel
	help     help.Model
	route    route
	pageSeq  int
	landing  *landingPage
	personal *personalInfoPage
	width    int
}

func New(ctx context.Context, deps Deps) *Model {
	m := &Model{
		deps:   deps,
		ctx:    ctx,
		styles: DefaultStyles(),
		toast:  newToastModel(deps.ToastTTL),
		help:   help.New(),
	}
	m.navigate(routeLanding)
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// navigate closes the live page and builds a fresh one for r. Unknown routes
// fall back to the landing page.
func (m *Model) navigate(r route) tea.Cmd {
	m.closePage()
	m.pageSeq++
	base := newPageBase(m.ctx, m.pageSeq)

	switch r {
	case routePersonalInfo:
		m.route = routePersonalInfo
		m.personal = newPersonalInfoPage(base, m.deps.Profile, m.styles, m.toast)
	default:
		m.route = routeLanding
		m.landing = newLandingPage(base, m.deps, m.styles, m.toast)
	}
	logger.Debug("[navigate] page opened", zap.String("route", string(m.route)), zap.Int("page", m.pageSeq))
	return textinput.Blink
}

func (m *Model) closePage() {
	if m.landing != nil {
		m.landing.cancel()
		m.landing = nil
	}
	if m.personal != nil {
		m.personal.cancel()
		m.personal = nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case toastExpiredMsg:
		m.toast.expire(msg.id)
		return m, nil
	case pageMsg:
		if msg.pageID() != m.pageSeq {
			logger.Debug("[Update] dropping result of a closed page", zap.Int("page", msg.pageID()))
			return m, nil
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.closePage()
			return m, tea.Quit
		case key.Matches(msg, keys.Dismiss):
			m.toast.dismiss()
			return m, nil
		}
	}

	var (
		cmd  tea.Cmd
		next route
		ok   bool
	)
	switch m.route {
	case routePersonalInfo:
		cmd = m.personal.update(msg)
		next, ok = m.personal.takeNext()
	default:
		cmd = m.landing.update(msg)
		next, ok = m.landing.takeNext()
	}
	if ok {
		return m, tea.Batch(cmd, m.navigate(next))
	}
	return m, cmd
}

func (m *Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Brand.Render("FemNest"),
		m.styles.Tagline.Render("Where Women Thrive Together"),
	)

	var body, helpView string
	switch m.route {
	case routePersonalInfo:
		body = m.personal.View()
		helpView = m.help.View(personalInfoHelp{})
	default:
		body = m.landing.View()
		helpView = m.help.View(landingHelp{revealed: m.landing.showQuestions})
	}

	views := []string{header, "", body}
	if t := m.toast.View(m.styles); t != "" {
		views = append(views, "", t)
	}
	views = append(views, "", helpView)
	return lipgloss.JoinVertical(lipgloss.Left, views...) + "\n"
}
