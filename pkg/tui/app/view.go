package teaui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/report"
	"tableflip.dev/fieldlog/pkg/timeutil"
	"tableflip.dev/fieldlog/pkg/tui/components/calendar"
	"tableflip.dev/fieldlog/pkg/tui/components/chart"
)

func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.theme.Title.Render(m.tr("appTitle"))+
		"  "+m.theme.Subtitle.Render(m.pageTitle()))

	switch m.mode {
	case modeConfirm:
		sections = append(sections, m.renderModal(m.tr("alertConfirm"), m.confirmText+"\n\n[y/n]"))
	case modeAlert:
		sections = append(sections, m.renderModal(m.tr("alertAttention"), m.alertText))
	case modeForm:
		sections = append(sections, m.renderForm())
	case modeGoal:
		sections = append(sections, m.renderModal(m.tr("goalLabel"), m.goalInput.View()))
	case modeNoteDetail:
		sections = append(sections, m.renderNoteDetail())
	default:
		sections = append(sections, m.renderPage())
	}

	if m.toast != "" {
		sections = append(sections, m.theme.Toast.Render(m.toast))
	}
	if m.status != "" {
		sections = append(sections, m.theme.Status.Render(m.status))
	}
	sections = append(sections, m.theme.Help.Render(m.helpLine()))

	return strings.Join(sections, "\n\n")
}

func (m *Model) pageTitle() string {
	switch m.session.page {
	case pageEntry:
		if m.session.entryView == entryViewSummary {
			return m.tr("menuViewSummary")
		}
		return m.tr("pageEntry")
	case pageCalendar:
		return m.tr("pageCalendar")
	case pagePeople:
		return m.tr("pagePeople")
	case pageTexts:
		return m.tr("pageTexts")
	case pageNotes:
		return m.tr("pageNotes")
	case pageCharts:
		return m.tr("pageCharts")
	}
	return m.tr("pageMenu")
}

func (m *Model) renderPage() string {
	switch m.session.page {
	case pageEntry:
		if m.session.entryView == entryViewSummary {
			return m.renderSummary()
		}
		return m.renderEntry()
	case pageCalendar:
		return m.renderCalendar()
	case pagePeople:
		if len(m.people) == 0 {
			return m.theme.Muted.Render(m.tr("peopleListEmpty"))
		}
		return m.peopleList.View()
	case pageTexts:
		if len(m.texts) == 0 {
			return m.theme.Muted.Render(m.tr("favTextsEmpty"))
		}
		return m.textsList.View()
	case pageNotes:
		if len(m.notes) == 0 {
			return m.theme.Muted.Render(m.tr("notesEmpty"))
		}
		return m.notesList.View()
	case pageCharts:
		return m.renderCharts()
	}
	return m.renderMenu()
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	for i, c := range menuChoices {
		label := m.menuLabel(c)
		if i == m.menuIndex {
			b.WriteString(m.theme.MenuSelected.Render("→ " + label))
		} else {
			b.WriteString(m.theme.MenuItem.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderEntry() string {
	var b strings.Builder
	b.WriteString(m.theme.Value.Render(m.tr("detailsFor", map[string]string{"date": m.day.String()})))
	b.WriteString("\n\n")

	rows := []struct {
		field int
		label string
		value string
	}{
		{fieldHours, m.tr("formHours"), fmt.Sprintf("%d", m.form.Hours)},
		{fieldMinutes, m.tr("formMinutes"), fmt.Sprintf("%d", m.form.Minutes)},
		{fieldRevisits, m.tr("formRevisits"), fmt.Sprintf("%d", m.form.Revisits)},
		{fieldStudies, m.tr("formStudies"), fmt.Sprintf("%d", m.form.Studies)},
	}
	for _, row := range rows {
		marker := "  "
		label := m.theme.Label.Render(row.label)
		if row.field == m.fieldFocus {
			marker = m.theme.MenuSelected.Render("→ ")
			label = m.theme.MenuSelected.Render(row.label)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", marker, label, m.theme.Value.Render(row.value)))
	}

	if hours := m.goalHours(); hours > 0 {
		s := report.ForMonth(m.entries, m.day.Time().Year(), m.day.Time().Month())
		pct := report.GoalProgress(s.TotalMinutes, hours)
		b.WriteString(fmt.Sprintf("\n%s %dh · %d%%\n", m.theme.Label.Render(m.tr("goalLabel")), hours, pct))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) goalHours() int {
	if m.svc == nil {
		return 0
	}
	return m.svc.Goal()
}

func (m *Model) renderSummary() string {
	s := report.ForMonth(m.entries, m.summaryMonth.Year(), m.summaryMonth.Month())

	var b strings.Builder
	b.WriteString(m.theme.Value.Render(m.tr("reportTitle",
		map[string]string{"month": m.monthName(m.summaryMonth.Month())})))
	b.WriteString("\n\n")

	if s.Days == 0 {
		b.WriteString(m.theme.Muted.Render(m.tr("entriesEmpty")))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s\n", m.theme.Label.Render(m.tr("summaryTotalHours")),
		m.theme.Value.Render(timeutil.FormatMinutes(s.TotalMinutes))))
	b.WriteString(fmt.Sprintf("%s %s\n", m.theme.Label.Render(m.tr("summaryTotalRevisits")),
		m.theme.Value.Render(fmt.Sprintf("%d", s.Revisits))))
	b.WriteString(fmt.Sprintf("%s %s\n", m.theme.Label.Render(m.tr("summaryTotalStudies")),
		m.theme.Value.Render(fmt.Sprintf("%d", s.Studies))))

	if hours := m.goalHours(); hours > 0 {
		pct := report.GoalProgress(s.TotalMinutes, hours)
		b.WriteString(fmt.Sprintf("\n%s %dh · %d%%\n", m.theme.Label.Render(m.tr("goalLabel")), hours, pct))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderCalendar() string {
	opts := calendar.Options{
		HeaderStyle:   m.theme.Calendar.Header,
		EmptyStyle:    m.theme.Calendar.Empty,
		EntryStyle:    m.theme.Calendar.Entry,
		TodayStyle:    m.theme.Calendar.Today,
		SelectedStyle: m.theme.Calendar.Selected,
		WeekdayHeader: m.tr("calWeekdays"),
		ShowHeader:    true,
	}
	title := m.theme.Value.Render(fmt.Sprintf("%s %d",
		m.monthName(m.calMonth.Month()), m.calMonth.Year()))
	grid := calendar.Render(m.calMonth, calendar.EntryDays(m.entries, m.calMonth), m.calDay, timeNow(), opts)
	return title + "\n\n" + grid
}

func (m *Model) renderCharts() string {
	var b strings.Builder

	dist := report.CurrentDistribution(m.entries, timeNow())
	b.WriteString(m.theme.Value.Render(m.tr("chartsMonthlyDistribution")))
	b.WriteString("\n")
	b.WriteString(chart.Horizontal([]chart.Bar{
		{Label: m.tr("menuHours"), Value: dist.Hours, Unit: "h"},
		{Label: m.tr("menuRevisits"), Value: float64(dist.Revisits)},
		{Label: m.tr("menuStudies"), Value: float64(dist.Studies)},
	}, m.chartOptions()))

	b.WriteString("\n\n")
	b.WriteString(m.theme.Value.Render(m.tr("chartsHoursTrend")))
	b.WriteString("\n")

	trend := report.Trend(m.entries, timeNow())
	bars := make([]chart.Bar, 0, len(trend))
	for _, p := range trend {
		name := m.monthName(p.Month)
		if len(name) > 3 {
			name = name[:3]
		}
		bars = append(bars, chart.Bar{Label: name, Value: p.Hours, Unit: "h"})
	}
	b.WriteString(chart.Horizontal(bars, m.chartOptions()))

	return b.String()
}

func (m *Model) chartOptions() chart.Options {
	return chart.Options{
		Width:      24,
		Low:        m.theme.ChartLow,
		High:       m.theme.ChartHigh,
		LabelStyle: m.theme.Label,
		ValueStyle: m.theme.Value,
		EmptyStyle: m.theme.Calendar.Empty,
	}
}

func (m *Model) renderForm() string {
	var b strings.Builder

	switch m.formKind {
	case formPerson:
		title := m.tr("addPerson")
		if m.formEditID != 0 {
			title = m.tr("editPerson")
		}
		b.WriteString(m.theme.Modal.Title.Render(title))
		b.WriteString("\n\n")
		b.WriteString(m.formRow(0, m.tr("personName"), m.inputs[0].View()))
		b.WriteString(m.formRow(1, m.tr("personNotes"), m.inputs[1].View()))
		typ := m.tr("menuRevisits")
		if m.personType == record.Study {
			typ = m.tr("menuStudies")
		}
		b.WriteString(m.formRow(m.personTypeRow(), m.tr("menuRevisits")+"/"+m.tr("menuStudies"), typ))
	case formText:
		title := m.tr("modalAddTextTitle")
		if m.formEditID != 0 {
			title = m.tr("editText")
		}
		b.WriteString(m.theme.Modal.Title.Render(title))
		b.WriteString("\n\n")
		b.WriteString(m.formRow(0, m.tr("textReference"), m.inputs[0].View()))
		b.WriteString(m.formRow(1, m.tr("textDescription"), m.inputs[1].View()))
	case formNote:
		b.WriteString(m.theme.Modal.Title.Render(m.tr("pageNotes")))
		b.WriteString("\n\n")
		b.WriteString(m.formRow(0, "", m.inputs[0].View()))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.tr("saveChanges") + ": enter · esc"))
	return m.theme.Modal.Frame.Render(b.String())
}

func (m *Model) formRow(slot int, label, value string) string {
	marker := "  "
	if slot == m.formFocus {
		marker = m.theme.MenuSelected.Render("→ ")
	}
	if label == "" {
		return fmt.Sprintf("%s%s\n", marker, value)
	}
	return fmt.Sprintf("%s%s  %s\n", marker, m.theme.Label.Render(label), value)
}

func (m *Model) renderNoteDetail() string {
	width := m.termWidth - 12
	if width < 24 {
		width = 24
	}
	body := m.detailNote.CreatedAt().Format("2006-01-02 15:04") + "\n\n" +
		wordwrap.String(m.detailNote.Content, width)
	return m.renderModal(m.tr("pageNotes"), body)
}

func (m *Model) renderModal(title, body string) string {
	return m.theme.Modal.Frame.Render(
		m.theme.Modal.Title.Render(title) + "\n\n" + m.theme.Modal.Body.Render(body))
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeConfirm:
		return "y/n"
	case modeAlert, modeNoteDetail:
		return "esc"
	case modeForm, modeGoal:
		return "tab · enter · esc"
	}
	switch m.session.page {
	case pageMenu:
		return "j/k · enter · l · t · q"
	case pageEntry:
		if m.session.entryView == entryViewSummary {
			return "h/l · r · esc"
		}
		return "j/k · +/- · 1/2/3 · [/] · p · g · r · enter · esc"
	case pageCalendar:
		return "h/j/k/l · n/p · enter · esc"
	case pagePeople, pageTexts:
		return "j/k · a · e · d · esc"
	case pageNotes:
		return "j/k · a · e · d · enter · esc"
	}
	return "esc"
}
