// Package ui is the FemNest terminal client: the credential form, the question
// panel and the personal-info form, driven in-process against the application layer.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Magenta     = lipgloss.Color("#C2185B")
	MagentaDark = lipgloss.Color("#880E4F")
	Foreground  = lipgloss.Color("#f2f2f2")
	Muted       = lipgloss.Color("#8a8f98")
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
)

// Styles holds the rendering styles shared by every page.
type Styles struct {
	Brand        lipgloss.Style
	Tagline      lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	FieldError   lipgloss.Style
	Option       lipgloss.Style
	ActiveOption lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	Button       lipgloss.Style
	ButtonBusy   lipgloss.Style
	Card         lipgloss.Style
	Bullet       lipgloss.Style
	Link         lipgloss.Style
	Toast        lipgloss.Style
	ToastError   lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Magenta).
		Padding(1, 2)

	toast := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		Padding(0, 1)

	return Styles{
		Brand:        lipgloss.NewStyle().Bold(true).Foreground(Magenta),
		Tagline:      lipgloss.NewStyle().Italic(true).Foreground(Muted),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(MagentaDark),
		Subtitle:     lipgloss.NewStyle().Foreground(Muted),
		Label:        lipgloss.NewStyle().Foreground(Foreground),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(Magenta),
		FieldError:   lipgloss.NewStyle().Foreground(Destructive),
		Option:       lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		ActiveOption: lipgloss.NewStyle().Foreground(Foreground).Background(Magenta).Padding(0, 1),
		Tab:          lipgloss.NewStyle().Foreground(Muted).Padding(0, 2),
		ActiveTab:    lipgloss.NewStyle().Bold(true).Foreground(Foreground).Background(Magenta).Padding(0, 2),
		Button:       lipgloss.NewStyle().Bold(true).Foreground(Foreground).Background(Magenta).Padding(0, 2),
		ButtonBusy:   lipgloss.NewStyle().Foreground(Muted).Background(MagentaDark).Padding(0, 2),
		Card:         card,
		Bullet:       lipgloss.NewStyle().Foreground(Magenta),
		Link:         lipgloss.NewStyle().Underline(true).Foreground(Magenta),
		Toast:        toast.BorderForeground(Success),
		ToastError:   toast.BorderForeground(Destructive).Foreground(Destructive),
	}
}
