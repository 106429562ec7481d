package teaui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/store"
)

// fakePersistence is an in-memory store.Persistence for UI tests.
type fakePersistence struct {
	mu          sync.Mutex
	entries     []record.Entry
	people      []record.Person
	notes       []record.Note
	texts       []record.Text
	goal        string
	language    string
	theme       string
	selectedDay string
	reminders   map[string]bool
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{reminders: make(map[string]bool)}
}

func (f *fakePersistence) Entries() ([]record.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]record.Entry{}, f.entries...), nil
}

func (f *fakePersistence) SaveEntries(entries []record.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append([]record.Entry{}, entries...)
	return nil
}

func (f *fakePersistence) People() ([]record.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]record.Person{}, f.people...), nil
}

func (f *fakePersistence) SavePeople(people []record.Person) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.people = append([]record.Person{}, people...)
	return nil
}

func (f *fakePersistence) Notes() ([]record.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]record.Note{}, f.notes...), nil
}

func (f *fakePersistence) SaveNotes(notes []record.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append([]record.Note{}, notes...)
	return nil
}

func (f *fakePersistence) Texts() ([]record.Text, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]record.Text{}, f.texts...), nil
}

func (f *fakePersistence) SaveTexts(texts []record.Text) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append([]record.Text{}, texts...)
	return nil
}

func (f *fakePersistence) Goal() string {
	if f.goal == "" {
		return "0"
	}
	return f.goal
}

func (f *fakePersistence) SaveGoal(goal string) error     { f.goal = goal; return nil }
func (f *fakePersistence) Language() string               { return f.language }
func (f *fakePersistence) SaveLanguage(code string) error { f.language = code; return nil }
func (f *fakePersistence) Theme() string                  { return f.theme }
func (f *fakePersistence) SaveTheme(name string) error    { f.theme = name; return nil }

func (f *fakePersistence) TakeSelectedDay() (record.Day, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectedDay == "" {
		return "", false
	}
	day := record.Day(f.selectedDay)
	f.selectedDay = ""
	return day, true
}

func (f *fakePersistence) SetSelectedDay(day record.Day) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selectedDay = string(day)
	return nil
}

func (f *fakePersistence) ReminderSent(year int, month time.Month) bool {
	return f.reminders[reminderStamp(year, month)]
}

func (f *fakePersistence) MarkReminderSent(year int, month time.Month) error {
	f.reminders[reminderStamp(year, month)] = true
	return nil
}

func reminderStamp(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakePersistence) ClearActivity() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = nil
	f.people = nil
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestModel(p *fakePersistence) *Model {
	svc := &app.Service{Persistence: p}
	m := New(svc, i18n.New(i18n.Spanish))
	m.termWidth = 80
	m.termHeight = 24
	m.applySizes()
	return m
}

func (m *Model) reload(t *testing.T) {
	t.Helper()
	msg := m.loadData()()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("load data: %v", err.err)
	}
	m.Update(msg)
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		r := []rune(s)[0]
		return tea.KeyPressMsg{Text: s, Code: r}
	}
}

func (m *Model) press(keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func TestMenuNavigatesPages(t *testing.T) {
	m := newTestModel(newFakePersistence())

	cases := []struct {
		downs int
		want  page
	}{
		{0, pageEntry},
		{2, pageCalendar},
		{3, pagePeople},
		{4, pageTexts},
		{5, pageNotes},
		{6, pageCharts},
	}
	for _, tc := range cases {
		m.session = session{page: pageMenu}
		m.menuIndex = 0
		for i := 0; i < tc.downs; i++ {
			m.press("j")
		}
		m.press("enter")
		if m.session.page != tc.want {
			t.Fatalf("after %d downs expected page %d, got %d", tc.downs, tc.want, m.session.page)
		}
		m.press("esc")
		if m.session.page != pageMenu {
			t.Fatalf("esc did not return to menu from page %d", tc.want)
		}
	}
}

func TestMenuChoiceSetsEntryView(t *testing.T) {
	m := newTestModel(newFakePersistence())

	m.press("enter")
	if m.session.page != pageEntry || m.session.entryView != entryViewForm {
		t.Fatalf("expected entry form view, got page=%d view=%d", m.session.page, m.session.entryView)
	}
	m.press("esc")

	m.press("j", "enter")
	if m.session.page != pageEntry || m.session.entryView != entryViewSummary {
		t.Fatalf("expected entry summary view, got page=%d view=%d", m.session.page, m.session.entryView)
	}

	// The chosen view sticks for the session.
	m.press("esc")
	m.navigate(pageEntry)
	if m.session.entryView != entryViewSummary {
		t.Fatalf("entry view did not stick across navigation")
	}
}

func TestCalendarHandoffIsOneShot(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	m.reload(t)

	m.session = session{page: pageCalendar, entryView: entryViewForm}
	m.calMonth = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	m.calDay = 14
	m.press("enter")

	if m.session.page != pageEntry {
		t.Fatalf("expected entry page after calendar pick, got %d", m.session.page)
	}
	if got := m.day.String(); got != "2026-03-14" {
		t.Fatalf("expected day 2026-03-14, got %s", got)
	}

	// The handoff was consumed; a fresh entry visit keeps its own day.
	m.day = record.Today()
	m.navigate(pageEntry)
	if got := m.day; got != record.Today() {
		t.Fatalf("expected consumed handoff to leave day alone, got %s", got)
	}
}

func TestUnconfirmedDeleteLeavesPeople(t *testing.T) {
	p := newFakePersistence()
	p.people = []record.Person{
		{ID: 1, Name: "Ana", Date: "2026-02-10", Type: record.Revisit},
		{ID: 2, Name: "Luis", Date: "2026-02-11", Type: record.Study},
	}
	m := newTestModel(p)
	m.reload(t)
	m.navigate(pagePeople)

	m.press("d")
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode, got %d", m.mode)
	}
	m.press("esc")
	if got, _ := p.People(); len(got) != 2 {
		t.Fatalf("dismissed confirm must not delete; %d people left", len(got))
	}

	// Every non-yes key counts as a no.
	m.press("d", "n")
	if got, _ := p.People(); len(got) != 2 {
		t.Fatalf("'n' must not delete; %d people left", len(got))
	}

	m.press("d", "y")
	if got, _ := p.People(); len(got) != 1 {
		t.Fatalf("confirmed delete should drop one person; %d left", len(got))
	}
}

func TestClearDataConfirmed(t *testing.T) {
	p := newFakePersistence()
	p.entries = []record.Entry{{Date: "2026-02-10", Hours: 1}}
	p.people = []record.Person{{ID: 1, Name: "Ana", Date: "2026-02-10", Type: record.Revisit}}
	p.texts = []record.Text{{ID: 5, Reference: "ref"}}
	m := newTestModel(p)
	m.reload(t)

	// Last menu choice is clear data.
	m.menuIndex = len(menuChoices) - 1
	m.press("enter")
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode for clear data")
	}
	m.press("y")

	if entries, _ := p.Entries(); len(entries) != 0 {
		t.Fatalf("entries should be cleared")
	}
	if people, _ := p.People(); len(people) != 0 {
		t.Fatalf("people should be cleared")
	}
	if texts, _ := p.Texts(); len(texts) != 1 {
		t.Fatalf("favorite texts must survive a clear")
	}
}

func TestLanguageToggleOnMenuPersists(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)

	m.press("l")
	if m.t.Language() != i18n.English {
		t.Fatalf("expected language toggle to english, got %s", m.t.Language())
	}
	if p.Language() != "en" {
		t.Fatalf("expected persisted language en, got %q", p.Language())
	}

	m.press("l")
	if m.t.Language() != i18n.Spanish || p.Language() != "es" {
		t.Fatalf("expected toggle back to spanish")
	}
}

func TestThemeTogglePersists(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	first := m.theme.Name

	m.press("t")
	if m.theme.Name == first {
		t.Fatalf("theme did not toggle")
	}
	if p.Theme() != m.theme.Name {
		t.Fatalf("expected persisted theme %q, got %q", m.theme.Name, p.Theme())
	}
}

func TestEntryStepperRenormalizesMinutes(t *testing.T) {
	m := newTestModel(newFakePersistence())
	m.session = session{page: pageEntry, entryView: entryViewForm}
	m.form = entryForm{Hours: 0, Minutes: 55}
	m.fieldFocus = fieldMinutes

	m.press("+")
	if m.form.Hours != 1 || m.form.Minutes != 0 {
		t.Fatalf("55m +5 should renormalize to 1h 0m, got %dh %dm", m.form.Hours, m.form.Minutes)
	}

	m.press("-")
	if m.form.Hours != 0 || m.form.Minutes != 55 {
		t.Fatalf("1h 0m -5 should be 0h 55m, got %dh %dm", m.form.Hours, m.form.Minutes)
	}

	m.form = entryForm{}
	m.press("-")
	if m.form.Hours != 0 || m.form.Minutes != 0 {
		t.Fatalf("stepper must floor at zero, got %dh %dm", m.form.Hours, m.form.Minutes)
	}
}

func TestEntryQuickAdd(t *testing.T) {
	m := newTestModel(newFakePersistence())
	m.session = session{page: pageEntry, entryView: entryViewForm}
	m.form = entryForm{Hours: 0, Minutes: 50}

	m.press("1") // +15m
	if m.form.Hours != 1 || m.form.Minutes != 5 {
		t.Fatalf("50m +15 should be 1h 5m, got %dh %dm", m.form.Hours, m.form.Minutes)
	}

	m.press("3") // +1h
	if m.form.Hours != 2 || m.form.Minutes != 5 {
		t.Fatalf("1h5m +60 should be 2h 5m, got %dh %dm", m.form.Hours, m.form.Minutes)
	}
}

func TestSaveEntryPersistsAndToasts(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	m.reload(t)
	m.session = session{page: pageEntry, entryView: entryViewForm}
	m.day = record.Day("2026-02-10")
	m.form = entryForm{Hours: 2, Minutes: 15, Revisits: 1}

	m.press("enter")

	entries, _ := p.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one saved entry, got %d", len(entries))
	}
	if entries[0].Date != "2026-02-10" || entries[0].Hours != 2 || entries[0].Minutes != 15 {
		t.Fatalf("unexpected saved entry %+v", entries[0])
	}
	if m.toast == "" {
		t.Fatalf("expected save toast")
	}
	if m.day != record.Day("2026-02-11") {
		t.Fatalf("expected form to advance to the next day, got %s", m.day)
	}
}

func TestPersonFromEntryPageBumpsCounter(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	m.reload(t)
	m.session = session{page: pageEntry, entryView: entryViewForm}
	m.day = record.Day("2026-02-10")

	m.press("p")
	if m.mode != modeForm || m.formKind != formPerson {
		t.Fatalf("expected person form, mode=%d kind=%d", m.mode, m.formKind)
	}

	m.press("A", "n", "a")
	m.press("enter")

	if m.form.Revisits != 1 {
		t.Fatalf("expected revisit counter bump, got %d", m.form.Revisits)
	}
	people, _ := p.People()
	if len(people) != 1 || people[0].Name != "Ana" {
		t.Fatalf("expected saved person Ana, got %+v", people)
	}
	if people[0].Date != "2026-02-10" {
		t.Fatalf("person should carry the form day, got %s", people[0].Date)
	}
}

func TestAnonymousVisitLeavesNoPersonRecord(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	m.reload(t)
	m.session = session{page: pageEntry, entryView: entryViewForm}

	m.press("p", "enter")

	if m.form.Revisits != 1 {
		t.Fatalf("expected counter bump for anonymous visit, got %d", m.form.Revisits)
	}
	if people, _ := p.People(); len(people) != 0 {
		t.Fatalf("anonymous visit must not create a person, got %d", len(people))
	}
}

func TestTextFormRequiresReference(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	m.reload(t)
	m.navigate(pageTexts)

	m.press("a", "enter")
	if m.mode != modeAlert {
		t.Fatalf("expected reference-required alert, mode=%d", m.mode)
	}
	if texts, _ := p.Texts(); len(texts) != 0 {
		t.Fatalf("empty reference must not be saved")
	}

	// Dismissing the alert returns to the form.
	m.press("esc")
	if m.mode != modeForm {
		t.Fatalf("expected to land back on the form, mode=%d", m.mode)
	}
}

func TestGoalOverlaySaves(t *testing.T) {
	p := newFakePersistence()
	m := newTestModel(p)
	m.session = session{page: pageEntry, entryView: entryViewForm}

	m.press("g")
	if m.mode != modeGoal {
		t.Fatalf("expected goal overlay, mode=%d", m.mode)
	}
	m.press("2", "0", "enter")

	if p.Goal() != "20" {
		t.Fatalf("expected persisted goal 20, got %q", p.Goal())
	}
	if m.mode != modeNormal {
		t.Fatalf("goal overlay should close on enter")
	}
}

func TestToastExpires(t *testing.T) {
	m := newTestModel(newFakePersistence())
	var cmds []tea.Cmd
	m.showToast("hola", &cmds)
	if m.toast != "hola" {
		t.Fatalf("expected toast set")
	}

	m.Update(toastExpiredMsg{seq: m.toastSeq - 1})
	if m.toast == "" {
		t.Fatalf("stale tick must not clear a newer toast")
	}
	m.Update(toastExpiredMsg{seq: m.toastSeq})
	if m.toast != "" {
		t.Fatalf("expected toast cleared")
	}
}
