package teaui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/report"
	"tableflip.dev/fieldlog/pkg/timeutil"
	"tableflip.dev/fieldlog/pkg/tui/theme"
)

type menuChoice int

const (
	menuLogDay menuChoice = iota
	menuSummary
	menuCalendar
	menuPeople
	menuTexts
	menuNotes
	menuCharts
	menuClearData
)

var menuChoices = []menuChoice{
	menuLogDay, menuSummary, menuCalendar, menuPeople,
	menuTexts, menuNotes, menuCharts, menuClearData,
}

func (m *Model) menuLabel(c menuChoice) string {
	switch c {
	case menuLogDay:
		return m.tr("pageEntry")
	case menuSummary:
		return m.tr("menuViewSummary")
	case menuCalendar:
		return m.tr("pageCalendar")
	case menuPeople:
		return m.tr("pagePeople")
	case menuTexts:
		return m.tr("pageTexts")
	case menuNotes:
		return m.tr("pageNotes")
	case menuCharts:
		return m.tr("pageCharts")
	case menuClearData:
		return m.tr("clearData")
	}
	return ""
}

func (m *Model) tr(key string, vars ...map[string]string) string {
	if m.t == nil {
		return key
	}
	return m.t.T(key, vars...)
}

func (m *Model) handleMenuKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.menuIndex < len(menuChoices)-1 {
			m.menuIndex++
		}
	case "k", "up":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "enter":
		m.selectMenu(menuChoices[m.menuIndex], cmds)
	case "l":
		m.toggleLanguage(cmds)
	case "t":
		m.toggleTheme(cmds)
	case "q", "esc":
		m.stopWatch()
		m.cancel()
		*cmds = append(*cmds, tea.Quit)
	}
}

func (m *Model) selectMenu(c menuChoice, cmds *[]tea.Cmd) {
	switch c {
	case menuLogDay:
		m.session.entryView = entryViewForm
		m.navigate(pageEntry)
	case menuSummary:
		m.session.entryView = entryViewSummary
		m.navigate(pageEntry)
	case menuCalendar:
		m.navigate(pageCalendar)
	case menuPeople:
		m.navigate(pagePeople)
	case menuTexts:
		m.navigate(pageTexts)
	case menuNotes:
		m.navigate(pageNotes)
	case menuCharts:
		m.navigate(pageCharts)
	case menuClearData:
		m.openConfirm(confirmClearData, 0, m.tr("alertConfirmDeleteAll"))
	}
	_ = cmds
}

func (m *Model) toggleLanguage(cmds *[]tea.Cmd) {
	if m.t == nil {
		return
	}
	next := i18n.English
	if m.t.Language() == i18n.English {
		next = i18n.Spanish
	}
	m.t.SetLanguage(next)
	if m.svc != nil && m.svc.Persistence != nil {
		if err := m.svc.Persistence.SaveLanguage(string(next)); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		}
	}
}

func (m *Model) toggleTheme(cmds *[]tea.Cmd) {
	m.theme = theme.Toggle(m.theme)
	if m.svc != nil && m.svc.Persistence != nil {
		if err := m.svc.Persistence.SaveTheme(m.theme.Name); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		}
	}
}

func (m *Model) handleSummaryKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.summaryMonth = timeutil.PrevMonth(m.summaryMonth)
	case "l", "right":
		m.summaryMonth = timeutil.NextMonth(m.summaryMonth)
	case "r":
		m.shareReport(m.summaryMonth, cmds)
	case "esc", "q":
		m.navigate(pageMenu)
	}
}

// shareReport copies the month report to the clipboard. Terminals without a
// clipboard get the unsupported alert instead of an error.
func (m *Model) shareReport(month time.Time, cmds *[]tea.Cmd) {
	s := report.ForMonth(m.entries, month.Year(), month.Month())
	title := m.tr("reportTitle", map[string]string{"month": m.monthName(month.Month())})
	text := report.ShareText(s, title,
		m.tr("totalTime"), m.tr("totalRevisits"), m.tr("totalStudies"))
	if err := clipboard.WriteAll(text); err != nil {
		m.openAlert(m.tr("shareNotSupported"))
		return
	}
	m.showToast(m.tr("reportCopied"), cmds)
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	days := timeutil.DaysIn(m.calMonth)
	switch msg.String() {
	case "h", "left":
		if m.calDay > 1 {
			m.calDay--
		}
	case "l", "right":
		if m.calDay < days {
			m.calDay++
		}
	case "k", "up":
		if m.calDay > 7 {
			m.calDay -= 7
		}
	case "j", "down":
		if m.calDay+7 <= days {
			m.calDay += 7
		}
	case "p", "pgup":
		m.calMonth = timeutil.PrevMonth(m.calMonth)
		m.clampCalDay()
	case "n", "pgdown":
		m.calMonth = timeutil.NextMonth(m.calMonth)
		m.clampCalDay()
	case "enter":
		day := record.NewDay(m.calMonth.AddDate(0, 0, m.calDay-1))
		if m.svc != nil && m.svc.Persistence != nil {
			if err := m.svc.Persistence.SetSelectedDay(day); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				return
			}
		}
		m.session.entryView = entryViewForm
		m.navigate(pageEntry)
	case "esc", "q":
		m.navigate(pageMenu)
	}
}

func (m *Model) clampCalDay() {
	if days := timeutil.DaysIn(m.calMonth); m.calDay > days {
		m.calDay = days
	}
}

func (m *Model) handlePeopleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "a":
		m.openPersonForm(0, "", "", record.Revisit)
	case "e":
		if p, ok := m.selectedPerson(); ok {
			m.openPersonForm(p.ID, p.Name, p.Notes, p.Type)
		}
	case "d":
		if p, ok := m.selectedPerson(); ok {
			m.openConfirm(confirmDeletePerson, p.ID,
				m.tr("confirmDeletePerson", map[string]string{"name": p.Name}))
		}
	case "esc", "q":
		m.navigate(pageMenu)
	default:
		var cmd tea.Cmd
		m.peopleList, cmd = m.peopleList.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleTextsKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "a":
		m.openTextForm(0, "", "")
	case "e":
		if t, ok := m.selectedText(); ok {
			m.openTextForm(t.ID, t.Reference, t.Description)
		}
	case "d":
		if t, ok := m.selectedText(); ok {
			m.openConfirm(confirmDeleteText, t.ID,
				m.tr("confirmDeleteText", map[string]string{"ref": t.Reference}))
		}
	case "esc", "q":
		m.navigate(pageMenu)
	default:
		var cmd tea.Cmd
		m.textsList, cmd = m.textsList.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleNotesKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "a":
		m.openNoteForm(0, "")
	case "e":
		if n, ok := m.selectedNote(); ok {
			m.openNoteForm(n.ID, n.Content)
		}
	case "d":
		if n, ok := m.selectedNote(); ok {
			m.openConfirm(confirmDeleteNote, n.ID, m.tr("confirmDeleteNote"))
		}
	case "enter":
		if n, ok := m.selectedNote(); ok {
			m.detailNote = n
			m.mode = modeNoteDetail
		}
	case "esc", "q":
		m.navigate(pageMenu)
	default:
		var cmd tea.Cmd
		m.notesList, cmd = m.notesList.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleChartsKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.navigate(pageMenu)
	}
	_ = cmds
}

func (m *Model) handleNoteDetailKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = modeNormal
		m.detailNote = record.Note{}
	}
}

func (m *Model) monthName(month time.Month) string {
	if m.t == nil {
		return month.String()
	}
	return m.t.MonthName(month)
}
