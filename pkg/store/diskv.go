// Package store persists every record collection as a single JSON blob under
// a fixed key, plus a handful of string-valued scalars. Saves replace the
// whole value; there are no transactions, no migrations, and no locking
// between concurrent writers. Last write wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/fieldlog/pkg/record"
)

// Fixed store keys. These are the wire-compatible names inherited from the
// original data layout and must not change.
const (
	entriesKey     = "activityEntries"
	peopleKey      = "peopleList"
	goalKey        = "monthlyGoal"
	textsKey       = "favoriteTexts"
	notesKey       = "personalNotes"
	languageKey    = "app_language"
	themeKey       = "theme"
	selectedDayKey = "selectedDateFromCalendar"

	// Reminder dedup markers live in their own namespace, one key per
	// year+month.
	statusNamespace = "notification-status"

	defaultGoal = "0"
)

// Persistence is the storage contract for all record collections and
// scalars. Collection loads return an empty slice when the key is absent;
// malformed stored JSON propagates as an error. Every save is a full
// replace of the persisted value.
type Persistence interface {
	Entries() ([]record.Entry, error)
	SaveEntries([]record.Entry) error
	People() ([]record.Person, error)
	SavePeople([]record.Person) error
	Notes() ([]record.Note, error)
	SaveNotes([]record.Note) error
	Texts() ([]record.Text, error)
	SaveTexts([]record.Text) error

	// Goal returns the persisted monthly goal or "0" when absent.
	Goal() string
	SaveGoal(string) error

	Language() string
	SaveLanguage(string) error
	Theme() string
	SaveTheme(string) error

	// TakeSelectedDay consumes the one-shot calendar handoff value.
	TakeSelectedDay() (record.Day, bool)
	SetSelectedDay(record.Day) error

	ReminderSent(year int, month time.Month) bool
	MarkReminderSent(year int, month time.Month) error

	// ClearActivity erases the entries and people collections; both read
	// back as empty afterwards.
	ClearActivity() error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config, or
// the default config when nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) loadList(key string, out any) error {
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // absent key reads as empty
		}
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (p *persistence) saveList(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) loadScalar(key, fallback string) string {
	data, err := p.d.Read(key)
	if err != nil {
		return fallback
	}
	return string(data)
}

func (p *persistence) saveScalar(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Entries() ([]record.Entry, error) {
	out := []record.Entry{}
	if err := p.loadList(entriesKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *persistence) SaveEntries(entries []record.Entry) error {
	if entries == nil {
		entries = []record.Entry{}
	}
	return p.saveList(entriesKey, entries)
}

func (p *persistence) People() ([]record.Person, error) {
	out := []record.Person{}
	if err := p.loadList(peopleKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *persistence) SavePeople(people []record.Person) error {
	if people == nil {
		people = []record.Person{}
	}
	return p.saveList(peopleKey, people)
}

func (p *persistence) Notes() ([]record.Note, error) {
	out := []record.Note{}
	if err := p.loadList(notesKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *persistence) SaveNotes(notes []record.Note) error {
	if notes == nil {
		notes = []record.Note{}
	}
	return p.saveList(notesKey, notes)
}

func (p *persistence) Texts() ([]record.Text, error) {
	out := []record.Text{}
	if err := p.loadList(textsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *persistence) SaveTexts(texts []record.Text) error {
	if texts == nil {
		texts = []record.Text{}
	}
	return p.saveList(textsKey, texts)
}

func (p *persistence) Goal() string {
	return p.loadScalar(goalKey, defaultGoal)
}

func (p *persistence) SaveGoal(goal string) error {
	return p.saveScalar(goalKey, goal)
}

func (p *persistence) Language() string {
	return p.loadScalar(languageKey, "")
}

func (p *persistence) SaveLanguage(code string) error {
	return p.saveScalar(languageKey, code)
}

func (p *persistence) Theme() string {
	return p.loadScalar(themeKey, "")
}

func (p *persistence) SaveTheme(theme string) error {
	return p.saveScalar(themeKey, theme)
}

func (p *persistence) TakeSelectedDay() (record.Day, bool) {
	raw := p.loadScalar(selectedDayKey, "")
	if raw == "" {
		return "", false
	}
	// One-shot: consumed on first read.
	if err := p.erase(selectedDayKey); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	day, err := record.ParseDay(raw)
	if err != nil {
		return "", false
	}
	return day, true
}

func (p *persistence) SetSelectedDay(day record.Day) error {
	return p.saveScalar(selectedDayKey, day.String())
}

func reminderKey(year int, month time.Month) string {
	return fmt.Sprintf("%s/last_notification_%d_%02d", statusNamespace, year, month)
}

func (p *persistence) ReminderSent(year int, month time.Month) bool {
	return p.d.Has(reminderKey(year, month))
}

func (p *persistence) MarkReminderSent(year int, month time.Month) error {
	return p.saveScalar(reminderKey(year, month), "sent")
}

func (p *persistence) ClearActivity() error {
	if err := p.erase(entriesKey); err != nil {
		return err
	}
	return p.erase(peopleKey)
}

// Keys may carry a single namespace prefix separated by "/"; namespaced keys
// map to a subdirectory, flat keys live at the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
