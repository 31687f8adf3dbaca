package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
)

type toastExpiredMsg struct {
	id int
}

// toastModel is the notification area. It holds at most one notification; a new
// one replaces the current one.
type toastModel struct {
	ttl     time.Duration
	seq     int
	current *model.Notification
}

func newToastModel(ttl time.Duration) *toastModel {
	return &toastModel{ttl: ttl}
}

// show displays n and returns the command that expires it. A zero ttl keeps the
// notification until it is dismissed or replaced.
func (t *toastModel) show(n model.Notification) tea.Cmd {
	t.seq++
	t.current = &n
	if t.ttl <= 0 {
		return nil
	}
	id := t.seq
	return tea.Tick(t.ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// expire drops the notification only if it is the one the timer was started for.
func (t *toastModel) expire(id int) {
	if t.current != nil && t.seq == id {
		t.current = nil
	}
}

func (t *toastModel) dismiss() bool {
	if t.current == nil {
		return false
	}
	t.current = nil
	return true
}

func (t *toastModel) View(s Styles) string {
	if t.current == nil {
		return ""
	}
	style := s.Toast
	if t.current.Variant == constant.VariantDestructive {
		style = s.ToastError
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(t.current.Title),
		t.current.Description,
	))
}
