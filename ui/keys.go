package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Submit       key.Binding
	ToggleMode   key.Binding
	Generate     key.Binding
	PersonalInfo key.Binding
	Back         key.Binding
	OptionNext   key.Binding
	OptionPrev   key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Next:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:         key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	ToggleMode:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "login / sign up")),
	Generate:     key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "profile questions")),
	PersonalInfo: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "personal info")),
	Back:         key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "back")),
	OptionNext:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
	OptionPrev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
	Dismiss:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// landingHelp lists the bindings shown under the landing page. The question
// bindings only appear once the panel is revealed.
type landingHelp struct {
	revealed bool
}

func (h landingHelp) ShortHelp() []key.Binding {
	b := []key.Binding{keys.Next, keys.Submit, keys.ToggleMode}
	if h.revealed {
		b = append(b, keys.Generate, keys.PersonalInfo)
	}
	return append(b, keys.Quit)
}

func (h landingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type personalInfoHelp struct{}

func (personalInfoHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.Next, keys.OptionPrev, keys.OptionNext, keys.Submit, keys.Back, keys.Quit}
}

func (h personalInfoHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
