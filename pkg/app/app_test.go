package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/store"
)

// memoryPersistence is an in-memory store.Persistence for Service tests.
type memoryPersistence struct {
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

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{reminders: make(map[string]bool)}
}

func (m *memoryPersistence) Entries() ([]record.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]record.Entry{}, m.entries...), nil
}

func (m *memoryPersistence) SaveEntries(entries []record.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]record.Entry{}, entries...)
	return nil
}

func (m *memoryPersistence) People() ([]record.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]record.Person{}, m.people...), nil
}

func (m *memoryPersistence) SavePeople(people []record.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.people = append([]record.Person{}, people...)
	return nil
}

func (m *memoryPersistence) Notes() ([]record.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]record.Note{}, m.notes...), nil
}

func (m *memoryPersistence) SaveNotes(notes []record.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append([]record.Note{}, notes...)
	return nil
}

func (m *memoryPersistence) Texts() ([]record.Text, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]record.Text{}, m.texts...), nil
}

func (m *memoryPersistence) SaveTexts(texts []record.Text) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append([]record.Text{}, texts...)
	return nil
}

func (m *memoryPersistence) Goal() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.goal == "" {
		return "0"
	}
	return m.goal
}

func (m *memoryPersistence) SaveGoal(goal string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goal = goal
	return nil
}

func (m *memoryPersistence) Language() string            { return m.language }
func (m *memoryPersistence) SaveLanguage(c string) error { m.language = c; return nil }
func (m *memoryPersistence) Theme() string               { return m.theme }
func (m *memoryPersistence) SaveTheme(t string) error    { m.theme = t; return nil }

func (m *memoryPersistence) TakeSelectedDay() (record.Day, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selectedDay == "" {
		return "", false
	}
	day := record.Day(m.selectedDay)
	m.selectedDay = ""
	return day, true
}

func (m *memoryPersistence) SetSelectedDay(day record.Day) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedDay = day.String()
	return nil
}

func (m *memoryPersistence) ReminderSent(year int, month time.Month) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reminders[reminderKey(year, month)]
}

func (m *memoryPersistence) MarkReminderSent(year int, month time.Month) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders[reminderKey(year, month)] = true
	return nil
}

func reminderKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (m *memoryPersistence) ClearActivity() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.people = nil
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestService() (*Service, *memoryPersistence) {
	mp := newMemoryPersistence()
	return &Service{Persistence: mp}, mp
}

func TestUpsertEntryReplacesByDate(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.UpsertEntry(record.Entry{Date: record.Day("2024-01-01"), Hours: 1}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.UpsertEntry(record.Entry{Date: record.Day("2024-01-02"), Hours: 4}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if err := svc.UpsertEntry(record.Entry{Date: record.Day("2024-01-01"), Hours: 2, Minutes: 30, Revisits: 1}); err != nil {
		t.Fatalf("replacing upsert: %v", err)
	}

	entries, err := svc.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("upsert must not grow the collection, got %d entries", len(entries))
	}
	var jan1 record.Entry
	for _, e := range entries {
		if e.Date == record.Day("2024-01-01") {
			jan1 = e
		}
	}
	if jan1.Hours != 2 || jan1.Minutes != 30 || jan1.Revisits != 1 {
		t.Fatalf("expected replaced values, got %#v", jan1)
	}
	// The other date is untouched.
	for _, e := range entries {
		if e.Date == record.Day("2024-01-02") && e.Hours != 4 {
			t.Fatalf("unrelated entry was modified: %#v", e)
		}
	}
}

func TestEntriesSortedMostRecentFirst(t *testing.T) {
	svc, _ := newTestService()
	for _, d := range []string{"2024-01-05", "2024-03-01", "2024-02-10"} {
		if err := svc.UpsertEntry(record.Entry{Date: record.Day(d), Hours: 1}); err != nil {
			t.Fatalf("upsert %s: %v", d, err)
		}
	}
	entries, err := svc.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	want := []record.Day{"2024-03-01", "2024-02-10", "2024-01-05"}
	for i, e := range entries {
		if e.Date != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], e.Date)
		}
	}
}

func TestAddPersonConditionalCreate(t *testing.T) {
	svc, mp := newTestService()

	p, err := svc.AddPerson(record.Day("2024-01-01"), record.Revisit, "", "")
	if err != nil {
		t.Fatalf("add person: %v", err)
	}
	if p != nil {
		t.Fatalf("empty name and notes must not persist a record, got %#v", p)
	}
	if len(mp.people) != 0 {
		t.Fatalf("people collection must stay empty, got %d", len(mp.people))
	}

	p, err = svc.AddPerson(record.Day("2024-01-01"), record.Study, "Ana", "")
	if err != nil {
		t.Fatalf("add person: %v", err)
	}
	if p == nil || p.Name != "Ana" || p.Type != record.Study {
		t.Fatalf("expected persisted person, got %#v", p)
	}
	if len(mp.people) != 1 {
		t.Fatalf("expected one record, got %d", len(mp.people))
	}
}

func TestRecordVisitIncrementsCounterWithoutRecord(t *testing.T) {
	svc, mp := newTestService()

	e, p, err := svc.RecordVisit(record.Day("2024-01-01"), record.Revisit, "", "")
	if err != nil {
		t.Fatalf("record visit: %v", err)
	}
	if e.Revisits != 1 {
		t.Fatalf("expected counter 1, got %d", e.Revisits)
	}
	if p != nil {
		t.Fatalf("no person expected, got %#v", p)
	}
	if len(mp.people) != 0 {
		t.Fatalf("people must stay empty, got %d", len(mp.people))
	}

	// The counter and the people collection may diverge in count.
	e, p, err = svc.RecordVisit(record.Day("2024-01-01"), record.Revisit, "Ben", "borrowed a book")
	if err != nil {
		t.Fatalf("record visit: %v", err)
	}
	if e.Revisits != 2 {
		t.Fatalf("expected counter 2, got %d", e.Revisits)
	}
	if p == nil {
		t.Fatal("expected a persisted person")
	}
	if len(mp.people) != 1 {
		t.Fatalf("expected one person, got %d", len(mp.people))
	}
}

func TestUpdateMissingPersonIsSilent(t *testing.T) {
	svc, mp := newTestService()
	mp.people = []record.Person{{ID: 7, Name: "Ana", Date: record.Day("2024-01-01"), Type: record.Revisit}}

	if err := svc.UpdatePerson(99, "Nobody", ""); err != nil {
		t.Fatalf("update of missing id must not error: %v", err)
	}
	if mp.people[0].Name != "Ana" {
		t.Fatalf("existing record must be untouched, got %#v", mp.people[0])
	}
}

func TestDeletePerson(t *testing.T) {
	svc, mp := newTestService()
	mp.people = []record.Person{
		{ID: 1, Name: "Ana", Date: record.Day("2024-01-01"), Type: record.Revisit},
		{ID: 2, Name: "Ben", Date: record.Day("2024-01-02"), Type: record.Study},
	}

	if err := svc.DeletePerson(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(mp.people) != 1 || mp.people[0].ID != 2 {
		t.Fatalf("expected only id 2 to remain, got %#v", mp.people)
	}
	// Deleting an absent id is a silent no-op.
	if err := svc.DeletePerson(42); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if len(mp.people) != 1 {
		t.Fatalf("collection changed on missing delete: %#v", mp.people)
	}
}

func TestNotesNewestFirstAndUpsert(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.UpsertNote(0, "first")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned id")
	}
	// Force a known newer note for deterministic ordering.
	second := record.Note{ID: first.ID + 1000, Content: "second"}
	notes, _ := svc.Persistence.Notes()
	notes = append(notes, second)
	if err := svc.Persistence.SaveNotes(notes); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.Notes()
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if got[0].ID != second.ID {
		t.Fatalf("expected newest note first, got %#v", got)
	}

	if _, err := svc.UpsertNote(first.ID, "rewritten"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ = svc.Notes()
	for _, n := range got {
		if n.ID == first.ID && n.Content != "rewritten" {
			t.Fatalf("edit did not apply: %#v", n)
		}
	}

	// Editing a vanished id finds nothing and skips the write.
	if _, err := svc.UpsertNote(999, "ghost"); err != nil {
		t.Fatalf("missing edit must not error: %v", err)
	}
}

func TestUpsertTextRequiresReference(t *testing.T) {
	svc, mp := newTestService()

	if _, err := svc.UpsertText(0, "", "something"); err != ErrReferenceRequired {
		t.Fatalf("expected ErrReferenceRequired, got %v", err)
	}
	if len(mp.texts) != 0 {
		t.Fatal("aborted validation must leave no partial state")
	}

	txt, err := svc.UpsertText(0, "Matt. 24:14", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpsertText(txt.ID, "Matt. 24:14", "good news"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	texts, _ := svc.Texts()
	if len(texts) != 1 || texts[0].Description != "good news" {
		t.Fatalf("edit did not apply: %#v", texts)
	}
}

func TestGoalDefaultsToZero(t *testing.T) {
	svc, mp := newTestService()
	if got := svc.Goal(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	mp.goal = "not-a-number"
	if got := svc.Goal(); got != 0 {
		t.Fatalf("unparsable goal reads as 0, got %d", got)
	}
	if err := svc.SetGoal(30); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := svc.Goal(); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestClearActivity(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.UpsertEntry(record.Entry{Date: record.Day("2024-01-01"), Hours: 1}); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if _, err := svc.AddPerson(record.Day("2024-01-01"), record.Revisit, "Ana", ""); err != nil {
		t.Fatalf("seed person: %v", err)
	}

	if err := svc.ClearActivity(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, _ := svc.Entries()
	people, _ := svc.People()
	if len(entries) != 0 || len(people) != 0 {
		t.Fatalf("expected both collections empty, got %d entries, %d people", len(entries), len(people))
	}
}

func TestNoPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Entries(); err != ErrNoPersistence {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
	if err := svc.UpsertEntry(record.Entry{Date: record.Day("2024-01-01")}); err != ErrNoPersistence {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}
