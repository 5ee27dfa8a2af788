package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/schedule"
	"github.com/esportlab/elab/pkg/ui/common"
)

// FormClosedMsg is sent when the slot form is dismissed without saving.
type FormClosedMsg struct{}

// FormSubmittedMsg is sent when the slot form was saved successfully.
type FormSubmittedMsg struct{}

// formErrorMsg reports a failed save. The form returns to editing so the
// slot can be resubmitted or the form cancelled.
type formErrorMsg struct{ err error }

type formField int

const (
	fieldStart formField = iota
	fieldEnd
	fieldAvailable
	fieldNote
	fieldCount
)

type formPhase int

const (
	formEditing formPhase = iota
	formSubmitting
)

// Form is the slot create/edit form.
type Form struct {
	common  common.Common
	spinner spinner.Model

	loc       *time.Location
	day       time.Time
	slot      *proto.Slot
	available bool

	start textinput.Model
	end   textinput.Model
	note  textinput.Model

	focus   formField
	state   formPhase
	lastErr string
}

// NewForm returns a slot form for the given day. A non-nil slot makes it
// an edit form; start and end seed the time inputs as wall-clock instants.
func NewForm(c common.Common, loc *time.Location, day time.Time, slot *proto.Slot, start, end time.Time) *Form {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(c.Styles.Spinner))

	newInput := func(placeholder, value string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.CharLimit = limit
		return ti
	}

	f := &Form{
		common:    c,
		spinner:   sp,
		loc:       loc,
		day:       day,
		slot:      slot,
		available: true,
		start:     newInput("09:00", schedule.FormatTimeOfDay(start, loc), 5),
		end:       newInput("17:00", schedule.FormatTimeOfDay(end, loc), 5),
		note:      newInput("optional note", "", schedule.MaxNoteLength),
	}
	if slot != nil {
		f.available = slot.Available
		f.note.SetValue(slot.Note)
	}
	f.start.Focus()
	return f
}

// SetSize implements common.Component.
func (f *Form) SetSize(width, height int) {
	f.common.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (f *Form) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle available")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		f.common.KeyMap.Back,
	}
}

// FullHelp implements help.KeyMap.
func (f *Form) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if f.state == formSubmitting && f.spinner.ID() == msg.ID {
			s, cmd := f.spinner.Update(msg)
			f.spinner = s
			return f, cmd
		}
	case formErrorMsg:
		f.state = formEditing
		f.lastErr = msg.err.Error()
		return f, nil
	case tea.KeyMsg:
		if f.state == formSubmitting {
			return f, nil
		}
		switch {
		case key.Matches(msg, f.common.KeyMap.Back):
			return f, func() tea.Msg { return FormClosedMsg{} }
		case msg.String() == "tab":
			f.setFocus((f.focus + 1) % fieldCount)
		case msg.String() == "shift+tab":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		case msg.String() == " " && f.focus == fieldAvailable:
			f.available = !f.available
			return f, nil
		case msg.String() == "enter":
			if cmd := f.submit(); cmd != nil {
				return f, cmd
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldStart:
		f.start, cmd = f.start.Update(msg)
	case fieldEnd:
		f.end, cmd = f.end.Update(msg)
	case fieldNote:
		f.note, cmd = f.note.Update(msg)
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

func (f *Form) setFocus(field formField) {
	f.focus = field
	f.start.Blur()
	f.end.Blur()
	f.note.Blur()
	switch field {
	case fieldStart:
		f.start.Focus()
	case fieldEnd:
		f.end.Focus()
	case fieldNote:
		f.note.Focus()
	}
}

// submit validates the form and returns the save command, or nil when
// validation fails. Validation errors render inline; nothing reaches the
// network.
func (f *Form) submit() tea.Cmd {
	start, err := schedule.CombineDateAndTime(f.day, strings.TrimSpace(f.start.Value()))
	if err != nil {
		f.lastErr = "start time must be HH:MM"
		return nil
	}
	end, err := schedule.CombineDateAndTime(f.day, strings.TrimSpace(f.end.Value()))
	if err != nil {
		f.lastErr = "end time must be HH:MM"
		return nil
	}

	note := strings.TrimSpace(f.note.Value())
	if err := schedule.ValidateSlot(start, end, note); err != nil {
		f.lastErr = err.Error()
		return nil
	}

	f.lastErr = ""
	f.state = formSubmitting

	opts := proto.UpsertSlotOptions{
		StartsAt:  start,
		EndsAt:    end,
		Available: f.available,
		Note:      note,
		Timezone:  f.loc.String(),
	}

	save := func() tea.Msg {
		b := f.common.Backend()
		var err error
		if f.slot != nil {
			_, err = b.UpdateSlot(f.common.Context(), f.slot.ID, opts)
		} else {
			_, err = b.CreateSlot(f.common.Context(), opts)
		}
		if err != nil {
			return formErrorMsg{err}
		}
		return FormSubmittedMsg{}
	}

	return tea.Batch(f.spinner.Tick, save)
}

// View implements tea.Model.
func (f *Form) View() string {
	st := f.common.Styles

	title := "Add availability"
	if f.slot != nil {
		title = "Edit availability"
	}

	avail := "[ ] available"
	if f.available {
		avail = "[x] available"
	}
	if f.focus == fieldAvailable {
		avail = "> " + avail
	} else {
		avail = "  " + avail
	}

	lines := []string{
		st.FormTitle.Render(title + " · " + f.day.Format("Monday, Jan 2")),
		st.FormLabel.Render("start ") + f.start.View(),
		st.FormLabel.Render("end   ") + f.end.View(),
		avail,
		st.FormLabel.Render("note  ") + f.note.View(),
	}

	if f.lastErr != "" {
		lines = append(lines, st.FormError.Render(f.lastErr))
	}
	if f.state == formSubmitting {
		lines = append(lines, f.spinner.View()+" Saving…")
	} else {
		lines = append(lines, st.FormHint.Render("enter to save · esc to cancel"))
	}

	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}
