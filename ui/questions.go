package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muhammadheryan/femnest/application/question"
	"github.com/muhammadheryan/femnest/model"
)

type questionPanel struct {
	app          question.QuestionApp
	styles       Styles
	questions    []string
	hasGenerated bool
	loading      bool
	spinner      spinner.Model
}

func newQuestionPanel(app question.QuestionApp, styles Styles) questionPanel {
	return questionPanel{
		app:     app,
		styles:  styles,
		spinner: spinner.New(spinner.WithSpinner(spinner.Points)),
	}
}

// generate clears the current list and starts a round trip. A trigger while one
// is pending does nothing.
func (q *questionPanel) generate(pb pageBase, sessionID string) tea.Cmd {
	if q.loading {
		return nil
	}
	q.loading = true
	q.questions = nil
	return tea.Batch(q.spinner.Tick, questionsCmd(pb, q.app, sessionID))
}

// finish replaces the list on success. On failure the list stays empty.
func (q *questionPanel) finish(msg questionsDoneMsg) model.Notification {
	q.loading = false
	if msg.err != nil {
		return notificationFor(msg.err)
	}
	q.questions = msg.res.Questions
	q.hasGenerated = true
	return msg.res.Notification
}

func (q *questionPanel) tick(msg spinner.TickMsg) tea.Cmd {
	if !q.loading {
		return nil
	}
	var cmd tea.Cmd
	q.spinner, cmd = q.spinner.Update(msg)
	return cmd
}

func questionsCmd(pb pageBase, app question.QuestionApp, sessionID string) tea.Cmd {
	return func() tea.Msg {
		res, err := app.Generate(pb.ctx, sessionID)
		return questionsDoneMsg{page: pb.id, res: res, err: err}
	}
}

func (q *questionPanel) buttonLabel() string {
	switch {
	case q.loading:
		return q.spinner.View() + " Generating Questions..."
	case q.hasGenerated:
		return "↻ Regenerate Questions"
	default:
		return "✦ Get Profile Questions"
	}
}

func (q *questionPanel) View() string {
	s := q.styles
	button := s.Button
	if q.loading {
		button = s.ButtonBusy
	}
	out := button.Render(q.buttonLabel())
	if len(q.questions) == 0 {
		return out
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("✦ Suggested Profile Questions") + "\n\n")
	for _, text := range q.questions {
		b.WriteString(s.Bullet.Render("•") + " " + text + "\n")
	}
	return out + "\n\n" + s.Card.Render(strings.TrimRight(b.String(), "\n"))
}
