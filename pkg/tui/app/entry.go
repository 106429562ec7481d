package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/timeutil"
)

// Editable fields of the entry form, in focus order.
const (
	fieldHours = iota
	fieldMinutes
	fieldRevisits
	fieldStudies
	fieldCount
)

func (m *Model) handleEntryKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "tab", "j", "down":
		m.fieldFocus = (m.fieldFocus + 1) % fieldCount
	case "shift+tab", "k", "up":
		m.fieldFocus = (m.fieldFocus + fieldCount - 1) % fieldCount
	case "+", "l", "right":
		m.stepField(1)
	case "-", "h", "left":
		m.stepField(-1)
	case "1":
		m.quickAdd(15)
	case "2":
		m.quickAdd(30)
	case "3":
		m.quickAdd(60)
	case "[":
		m.gotoDay(m.day.AddDays(-1))
	case "]":
		m.gotoDay(m.day.AddDays(1))
	case "t":
		m.gotoDay(record.Today())
	case "enter", "s":
		m.saveEntry(cmds)
	case "p":
		m.openPersonForm(0, "", "", record.Revisit)
	case "g":
		m.openGoal()
	case "r":
		m.shareReport(m.day.Time(), cmds)
	case "esc", "q":
		m.navigate(pageMenu)
	}
}

func (m *Model) gotoDay(day record.Day) {
	m.day = day
	m.syncEntryForm()
}

// stepField adjusts the focused field. Minutes move in five minute steps
// and renormalize into hours; the other fields move by one, floored at
// zero.
func (m *Model) stepField(dir int) {
	switch m.fieldFocus {
	case fieldHours:
		m.form.Hours = clampMin(m.form.Hours+dir, 0)
	case fieldMinutes:
		total := m.form.Hours*60 + m.form.Minutes + dir*5
		if total < 0 {
			total = 0
		}
		m.form.Hours, m.form.Minutes = timeutil.Normalize(total)
	case fieldRevisits:
		m.form.Revisits = clampMin(m.form.Revisits+dir, 0)
	case fieldStudies:
		m.form.Studies = clampMin(m.form.Studies+dir, 0)
	}
}

// quickAdd drops a block of minutes onto the form, renormalized.
func (m *Model) quickAdd(minutes int) {
	total := m.form.Hours*60 + m.form.Minutes + minutes
	m.form.Hours, m.form.Minutes = timeutil.Normalize(total)
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func (m *Model) saveEntry(cmds *[]tea.Cmd) {
	if m.svc == nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{errServiceUnavailable} })
		return
	}
	e := record.Entry{
		Date:     m.day,
		Hours:    m.form.Hours,
		Minutes:  m.form.Minutes,
		Revisits: m.form.Revisits,
		Studies:  m.form.Studies,
	}
	if err := m.svc.UpsertEntry(e); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.showToast(m.tr("toastDaySaved"), cmds)
	// The form moves on to the next day once a day is recorded.
	m.gotoDay(m.day.AddDays(1))
	*cmds = append(*cmds, m.loadData())
}
