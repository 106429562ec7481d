package teaui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/record"
)

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Prompt = ""
	return ti
}

func (m *Model) openPersonForm(id int64, name, notes string, typ record.VisitType) {
	nameIn := newInput(m.tr("personName"))
	nameIn.SetValue(name)
	nameIn.Focus()
	notesIn := newInput(m.tr("personNotes"))
	notesIn.SetValue(notes)

	m.inputs = []textinput.Model{nameIn, notesIn}
	m.personType = typ
	m.formKind = formPerson
	m.formEditID = id
	m.formFocus = 0
	m.mode = modeForm
}

func (m *Model) openTextForm(id int64, reference, description string) {
	refIn := newInput(m.tr("textReference"))
	refIn.SetValue(reference)
	refIn.Focus()
	descIn := newInput(m.tr("textDescription"))
	descIn.SetValue(description)

	m.inputs = []textinput.Model{refIn, descIn}
	m.formKind = formText
	m.formEditID = id
	m.formFocus = 0
	m.mode = modeForm
}

func (m *Model) openNoteForm(id int64, content string) {
	in := newInput(m.tr("pageNotes"))
	in.CharLimit = 2048
	in.SetValue(content)
	in.Focus()

	m.inputs = []textinput.Model{in}
	m.formKind = formNote
	m.formEditID = id
	m.formFocus = 0
	m.mode = modeForm
}

func (m *Model) openGoal() {
	in := newInput("0")
	if m.svc != nil {
		if hours := m.svc.Goal(); hours > 0 {
			in.SetValue(strconv.Itoa(hours))
		}
	}
	in.Focus()
	m.goalInput = in
	m.mode = modeGoal
}

func (m *Model) openConfirm(action confirmAction, target int64, text string) {
	m.confirmAction = action
	m.confirmTarget = target
	m.confirmText = text
	m.mode = modeConfirm
}

func (m *Model) openAlert(text string) {
	m.alertText = text
	m.mode = modeAlert
}

func (m *Model) closeForm() {
	m.inputs = nil
	m.formKind = formNone
	m.formEditID = 0
	m.formFocus = 0
	m.mode = modeNormal
}

// personTypeRow is the extra focus slot of the person form, after the two
// text inputs.
func (m *Model) personTypeRow() int { return len(m.inputs) }

func (m *Model) formSlots() int {
	if m.formKind == formPerson {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return
	case "tab", "down":
		m.moveFormFocus(1, cmds)
		return
	case "shift+tab", "up":
		m.moveFormFocus(-1, cmds)
		return
	case "enter":
		m.submitForm(cmds)
		return
	}

	if m.formKind == formPerson && m.formFocus == m.personTypeRow() {
		switch msg.String() {
		case "left", "right", "h", "l", "space":
			if m.personType == record.Revisit {
				m.personType = record.Study
			} else {
				m.personType = record.Revisit
			}
		}
		return
	}

	if m.formFocus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.formFocus], cmd = m.inputs[m.formFocus].Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) moveFormFocus(dir int, cmds *[]tea.Cmd) {
	slots := m.formSlots()
	if slots == 0 {
		return
	}
	if m.formFocus < len(m.inputs) {
		m.inputs[m.formFocus].Blur()
	}
	m.formFocus = (m.formFocus + dir + slots) % slots
	if m.formFocus < len(m.inputs) {
		m.inputs[m.formFocus].Focus()
		*cmds = append(*cmds, textinput.Blink)
	}
}

func (m *Model) submitForm(cmds *[]tea.Cmd) {
	if m.svc == nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{errServiceUnavailable} })
		return
	}

	switch m.formKind {
	case formPerson:
		m.submitPerson(cmds)
	case formText:
		reference := strings.TrimSpace(m.inputs[0].Value())
		description := strings.TrimSpace(m.inputs[1].Value())
		if _, err := m.svc.UpsertText(m.formEditID, reference, description); err != nil {
			if errors.Is(err, app.ErrReferenceRequired) {
				m.openAlert(m.tr("alertTextRefRequired"))
				return
			}
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		m.closeForm()
		*cmds = append(*cmds, m.loadData())
	case formNote:
		content := strings.TrimSpace(m.inputs[0].Value())
		if content == "" {
			m.closeForm()
			return
		}
		if _, err := m.svc.UpsertNote(m.formEditID, content); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		m.closeForm()
		m.showToast(m.tr("noteSavedToast"), cmds)
		*cmds = append(*cmds, m.loadData())
	}
}

// submitPerson saves a person form. From the entry page the matching form
// counter is bumped as well, and an empty name and notes still counts the
// visit without leaving a person record.
func (m *Model) submitPerson(cmds *[]tea.Cmd) {
	name := strings.TrimSpace(m.inputs[0].Value())
	notes := strings.TrimSpace(m.inputs[1].Value())

	if m.formEditID != 0 {
		if err := m.svc.UpdatePerson(m.formEditID, name, notes); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		m.closeForm()
		*cmds = append(*cmds, m.loadData())
		return
	}

	day := record.Today()
	fromEntry := m.session.page == pageEntry
	if fromEntry {
		day = m.day
	}
	if _, err := m.svc.AddPerson(day, m.personType, name, notes); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	if fromEntry {
		if m.personType == record.Study {
			m.form.Studies++
		} else {
			m.form.Revisits++
		}
	}
	m.closeForm()
	*cmds = append(*cmds, m.loadData())
}

func (m *Model) handleGoalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
	case "enter":
		hours, err := strconv.Atoi(strings.TrimSpace(m.goalInput.Value()))
		if err != nil || hours < 0 {
			hours = 0
		}
		if m.svc != nil {
			if err := m.svc.SetGoal(hours); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				return
			}
		}
		m.mode = modeNormal
	default:
		var cmd tea.Cmd
		m.goalInput, cmd = m.goalInput.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// handleConfirmKey applies the pending action only on an explicit yes. Every
// other key dismisses the dialog and counts as a no.
func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	action, target := m.confirmAction, m.confirmTarget
	m.confirmAction = confirmNone
	m.confirmTarget = 0
	m.confirmText = ""
	m.mode = modeNormal

	if msg.String() != "y" {
		return
	}
	if m.svc == nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{errServiceUnavailable} })
		return
	}

	var err error
	switch action {
	case confirmDeletePerson:
		err = m.svc.DeletePerson(target)
	case confirmDeleteNote:
		err = m.svc.DeleteNote(target)
	case confirmDeleteText:
		err = m.svc.DeleteText(target)
	case confirmClearData:
		err = m.svc.ClearActivity()
	default:
		return
	}
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	*cmds = append(*cmds, m.loadData())
}

func (m *Model) handleAlertKey(msg tea.KeyPressMsg) {
	m.alertText = ""
	m.mode = modeNormal
	if m.formKind != formNone {
		// Return to the form the alert interrupted.
		m.mode = modeForm
	}
}
