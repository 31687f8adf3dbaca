package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muhammadheryan/femnest/application/profile"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	"github.com/muhammadheryan/femnest/utils/errors"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindTextArea
	kindSelect
)

type fieldSpec struct {
	name        string
	label       string
	kind        fieldKind
	placeholder string
	options     []string
	set         func(r *model.PersonalInfoRequest, v string)
}

// personalFields is the form in display order. Names match the json tags of
// model.PersonalInfoRequest so validation errors map back onto inputs.
var personalFields = []fieldSpec{
	{name: "fullName", label: "Full Name *", placeholder: "Your full name",
		set: func(r *model.PersonalInfoRequest, v string) { r.FullName = v }},
	{name: "dob", label: "Date of Birth *", placeholder: "YYYY-MM-DD",
		set: func(r *model.PersonalInfoRequest, v string) { r.Dob = v }},
	{name: "contact", label: "Contact Number *", placeholder: "e.g., 9876543210",
		set: func(r *model.PersonalInfoRequest, v string) { r.Contact = v }},
	{name: "email", label: "Email *", placeholder: "jane@mail.com",
		set: func(r *model.PersonalInfoRequest, v string) { r.Email = v }},
	{name: "city", label: "Current City *", placeholder: "City of residence",
		set: func(r *model.PersonalInfoRequest, v string) { r.City = v }},
	{name: "occupation", label: "Occupation *", placeholder: "e.g., IT Professional, Student",
		set: func(r *model.PersonalInfoRequest, v string) { r.Occupation = v }},
	{name: "org", label: "College/Workplace", placeholder: "e.g., Amity Univ, TCS",
		set: func(r *model.PersonalInfoRequest, v string) { r.Org = v }},
	{name: "aboutMe", label: "Describe Yourself (max 220 chars)", kind: kindTextArea,
		placeholder: "E.g., love plants, early riser, neat. I'm sociable but value alone time!",
		set:         func(r *model.PersonalInfoRequest, v string) { r.AboutMe = v }},
	{name: "smoke", label: "Smoking Habit *", kind: kindSelect, options: constant.HabitOptions,
		set: func(r *model.PersonalInfoRequest, v string) { r.Smoke = v }},
	{name: "drink", label: "Drinking Habit *", kind: kindSelect, options: constant.HabitOptions,
		set: func(r *model.PersonalInfoRequest, v string) { r.Drink = v }},
	{name: "food", label: "Food Preference *", kind: kindSelect, options: constant.FoodOptions,
		set: func(r *model.PersonalInfoRequest, v string) { r.Food = v }},
	{name: "pets", label: "Comfortable with Pets? *", kind: kindSelect, options: constant.PetOptions,
		set: func(r *model.PersonalInfoRequest, v string) { r.Pets = v }},
	{name: "wakeUp", label: "Usual Wake-up Time *", placeholder: "HH:MM",
		set: func(r *model.PersonalInfoRequest, v string) { r.WakeUp = v }},
	{name: "sleep", label: "Usual Sleep Time *", placeholder: "HH:MM",
		set: func(r *model.PersonalInfoRequest, v string) { r.Sleep = v }},
	{name: "guests", label: "Allow Guests at Home? *", kind: kindSelect, options: constant.GuestOptions,
		set: func(r *model.PersonalInfoRequest, v string) { r.Guests = v }},
	{name: "hobbies", label: "Hobbies/Interests", placeholder: "e.g., music, cooking, running",
		set: func(r *model.PersonalInfoRequest, v string) { r.Hobbies = v }},
}

type formField struct {
	spec     fieldSpec
	input    textinput.Model
	area     textarea.Model
	selected int
}

func (f *formField) value() string {
	switch f.spec.kind {
	case kindTextArea:
		return f.area.Value()
	case kindSelect:
		if f.selected < 0 {
			return ""
		}
		return f.spec.options[f.selected]
	}
	return f.input.Value()
}

func (f *formField) focus() tea.Cmd {
	switch f.spec.kind {
	case kindTextArea:
		return f.area.Focus()
	case kindText:
		return f.input.Focus()
	}
	return nil
}

func (f *formField) blur() {
	switch f.spec.kind {
	case kindTextArea:
		f.area.Blur()
	case kindText:
		f.input.Blur()
	}
}

// cycle moves a select through its options, wrapping at both ends. From the
// unselected state it lands on the first or last option.
func (f *formField) cycle(delta int) {
	n := len(f.spec.options)
	if f.selected < 0 {
		if delta > 0 {
			f.selected = 0
		} else {
			f.selected = n - 1
		}
		return
	}
	f.selected = (f.selected + delta + n) % n
}

type personalInfoPage struct {
	pageBase
	app     profile.ProfileApp
	styles  Styles
	toast   *toastModel
	fields  []formField
	focus   int
	errs    map[string]string
	loading bool
	spinner spinner.Model
}

func newPersonalInfoPage(base pageBase, app profile.ProfileApp, styles Styles, toast *toastModel) *personalInfoPage {
	p := &personalInfoPage{
		pageBase: base,
		app:      app,
		styles:   styles,
		toast:    toast,
		errs:     make(map[string]string),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	p.fields = make([]formField, len(personalFields))
	for i, spec := range personalFields {
		f := formField{spec: spec, selected: -1}
		switch spec.kind {
		case kindText:
			f.input = textinput.New()
			f.input.Prompt = "> "
			f.input.Placeholder = spec.placeholder
		case kindTextArea:
			f.area = textarea.New()
			f.area.Placeholder = spec.placeholder
			f.area.CharLimit = constant.AboutMeMaxLength
			f.area.ShowLineNumbers = false
			f.area.SetHeight(3)
		}
		p.fields[i] = f
	}
	p.fields[0].focus()
	return p
}

func (p *personalInfoPage) request() *model.PersonalInfoRequest {
	req := &model.PersonalInfoRequest{}
	for i := range p.fields {
		p.fields[i].spec.set(req, p.fields[i].value())
	}
	return req
}

func (p *personalInfoPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileSavedMsg:
		return p.finish(msg)
	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		cur := &p.fields[p.focus]
		switch {
		case key.Matches(msg, keys.Back):
			p.navigate(routeLanding)
			return nil
		case key.Matches(msg, keys.Next):
			return p.setFocus((p.focus + 1) % len(p.fields))
		case key.Matches(msg, keys.Prev):
			return p.setFocus((p.focus - 1 + len(p.fields)) % len(p.fields))
		case key.Matches(msg, keys.Submit) && cur.spec.kind != kindTextArea:
			return p.submit()
		case cur.spec.kind == kindSelect && key.Matches(msg, keys.OptionNext):
			cur.cycle(1)
			delete(p.errs, cur.spec.name)
			return nil
		case cur.spec.kind == kindSelect && key.Matches(msg, keys.OptionPrev):
			cur.cycle(-1)
			delete(p.errs, cur.spec.name)
			return nil
		}
		before := cur.value()
		cmd := p.forward(msg)
		if cur.value() != before {
			delete(p.errs, cur.spec.name)
		}
		return cmd
	}
	return p.forward(msg)
}

func (p *personalInfoPage) forward(msg tea.Msg) tea.Cmd {
	cur := &p.fields[p.focus]
	var cmd tea.Cmd
	switch cur.spec.kind {
	case kindText:
		cur.input, cmd = cur.input.Update(msg)
	case kindTextArea:
		cur.area, cmd = cur.area.Update(msg)
	}
	return cmd
}

func (p *personalInfoPage) setFocus(i int) tea.Cmd {
	p.fields[p.focus].blur()
	p.focus = i
	return p.fields[p.focus].focus()
}

func (p *personalInfoPage) focusField(name string) tea.Cmd {
	for i := range p.fields {
		if p.fields[i].spec.name == name {
			return p.setFocus(i)
		}
	}
	return nil
}

// submit runs the input-level checks first; only a complete form is handed to
// Save, which applies the name and contact rules.
func (p *personalInfoPage) submit() tea.Cmd {
	if p.loading {
		return nil
	}

	req := p.request()
	if err := validatorx.ValidateStruct(req); err != nil {
		fields := validatorx.FieldMessages(err)
		p.errs = fields
		return tea.Batch(
			p.focusField(validatorx.FirstField(err)),
			p.toast.show(errors.SetMissingFieldError(fields).Notification()),
		)
	}

	p.errs = make(map[string]string)
	p.loading = true
	return tea.Batch(p.spinner.Tick, saveCmd(p.pageBase, p.app, req))
}

func (p *personalInfoPage) finish(msg profileSavedMsg) tea.Cmd {
	p.loading = false
	if msg.err != nil {
		return p.toast.show(notificationFor(msg.err))
	}
	p.navigate(route(msg.res.Redirect))
	return p.toast.show(msg.res.Notification)
}

func saveCmd(pb pageBase, app profile.ProfileApp, req *model.PersonalInfoRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := app.Save(pb.ctx, req)
		return profileSavedMsg{page: pb.id, res: res, err: err}
	}
}

func (p *personalInfoPage) View() string {
	s := p.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Tell us about yourself") + "\n")
	b.WriteString(s.Subtitle.Render("Help us find your perfect roommate match") + "\n\n")

	for i := range p.fields {
		f := &p.fields[i]
		label := s.Label
		if i == p.focus {
			label = s.FocusedLabel
		}
		b.WriteString(label.Render(f.spec.label) + "\n")
		switch f.spec.kind {
		case kindText:
			b.WriteString(f.input.View())
		case kindTextArea:
			b.WriteString(f.area.View())
		case kindSelect:
			b.WriteString(p.selectView(f))
		}
		b.WriteString("\n")
		if msg := p.errs[f.spec.name]; msg != "" {
			b.WriteString(s.FieldError.Render(msg) + "\n")
		}
	}

	b.WriteString("\n" + s.Tab.Render("Back"))
	if p.loading {
		b.WriteString(s.ButtonBusy.Render(p.spinner.View() + " Saving..."))
	} else {
		b.WriteString(s.Button.Render("Save & Next"))
	}
	return s.Card.Render(b.String())
}

func (p *personalInfoPage) selectView(f *formField) string {
	s := p.styles
	if f.selected < 0 {
		return s.Option.Render("Select")
	}
	opts := make([]string, len(f.spec.options))
	for i, o := range f.spec.options {
		if label, ok := constant.FoodOptionLabel[o]; ok && f.spec.name == "food" {
			o = label
		}
		if i == f.selected {
			opts[i] = s.ActiveOption.Render(o)
		} else {
			opts[i] = s.Option.Render(o)
		}
	}
	return strings.Join(opts, "")
}
