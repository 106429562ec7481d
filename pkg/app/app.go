// Package app provides the mutation and query operations for every record
// collection. UIs and CLI commands both go through Service, so any action is
// callable directly, independent of a UI event. The store is the single
// source of truth: every operation re-reads the full collection, mutates in
// memory, and writes the whole collection back.
package app

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/store"
)

// Service provides high-level operations over the persisted collections.
type Service struct {
	Persistence store.Persistence
}

var (
	ErrNoPersistence     = errors.New("app: no persistence configured")
	ErrReferenceRequired = errors.New("app: text reference required")
)

// Entries returns all activity entries, most recent date first.
func (s *Service) Entries() ([]record.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	entries, err := s.Persistence.Entries()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].Date.Before(entries[i].Date)
	})
	return entries, nil
}

// EntryFor returns the entry stored for day, if any.
func (s *Service) EntryFor(day record.Day) (record.Entry, bool, error) {
	if s.Persistence == nil {
		return record.Entry{}, false, ErrNoPersistence
	}
	entries, err := s.Persistence.Entries()
	if err != nil {
		return record.Entry{}, false, err
	}
	for _, e := range entries {
		if e.Date == day {
			return e, true, nil
		}
	}
	return record.Entry{}, false, nil
}

// UpsertEntry stores e, replacing any existing entry for the same date in
// place. The collection holds at most one entry per calendar day.
func (s *Service) UpsertEntry(e record.Entry) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if e.Date.IsZero() {
		return errors.New("app: entry date required")
	}
	entries, err := s.Persistence.Entries()
	if err != nil {
		return err
	}
	replaced := false
	for i := range entries {
		if entries[i].Date == e.Date {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}
	return s.Persistence.SaveEntries(entries)
}

// MonthEntries returns the entries whose date falls in the given calendar
// month, most recent first.
func (s *Service) MonthEntries(year int, month time.Month) ([]record.Entry, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	out := make([]record.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.SameMonth(anchor) {
			out = append(out, e)
		}
	}
	return out, nil
}

// AddPerson persists a person record for a visit, but only when a name or
// notes was supplied; otherwise nothing is stored and (nil, nil) is
// returned. The caller's visible counter increments either way, so the
// counter and the people collection can diverge in count.
func (s *Service) AddPerson(day record.Day, typ record.VisitType, name, notes string) (*record.Person, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if name == "" && notes == "" {
		return nil, nil
	}
	people, err := s.Persistence.People()
	if err != nil {
		return nil, err
	}
	p := record.Person{
		ID:    record.NewID(),
		Name:  name,
		Notes: notes,
		Date:  day,
		Type:  typ,
	}
	people = append(people, p)
	if err := s.Persistence.SavePeople(people); err != nil {
		return nil, err
	}
	return &p, nil
}

// RecordVisit increments the day's counter for the given visit type,
// upserting the day's entry, and conditionally persists a person record.
func (s *Service) RecordVisit(day record.Day, typ record.VisitType, name, notes string) (record.Entry, *record.Person, error) {
	e, _, err := s.EntryFor(day)
	if err != nil {
		return record.Entry{}, nil, err
	}
	e.Date = day
	switch typ {
	case record.Study:
		e.Studies++
	default:
		e.Revisits++
	}
	if err := s.UpsertEntry(e); err != nil {
		return record.Entry{}, nil, err
	}
	p, err := s.AddPerson(day, typ, name, notes)
	if err != nil {
		return record.Entry{}, nil, err
	}
	return e, p, nil
}

// People returns all person records, most recent date first.
func (s *Service) People() ([]record.Person, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	people, err := s.Persistence.People()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(people, func(i, j int) bool {
		return people[j].Date.Before(people[i].Date)
	})
	return people, nil
}

// UpdatePerson rewrites the name and notes of the person with the given id.
// An id no longer present is silently skipped.
func (s *Service) UpdatePerson(id int64, name, notes string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	people, err := s.Persistence.People()
	if err != nil {
		return err
	}
	for i := range people {
		if people[i].ID == id {
			people[i].Name = name
			people[i].Notes = notes
			return s.Persistence.SavePeople(people)
		}
	}
	return nil
}

// DeletePerson removes the person with the given id, if present.
func (s *Service) DeletePerson(id int64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	people, err := s.Persistence.People()
	if err != nil {
		return err
	}
	kept := people[:0]
	for _, p := range people {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.Persistence.SavePeople(kept)
}

// Notes returns all notes, newest first. The id doubles as creation time, so
// id order is creation order.
func (s *Service) Notes() ([]record.Note, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	notes, err := s.Persistence.Notes()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].ID > notes[j].ID
	})
	return notes, nil
}

// UpsertNote creates a note when id is zero, otherwise rewrites the content
// of the existing note. Empty content or a missing id is a silent no-op.
func (s *Service) UpsertNote(id int64, content string) (record.Note, error) {
	if s.Persistence == nil {
		return record.Note{}, ErrNoPersistence
	}
	if content == "" {
		return record.Note{}, nil
	}
	notes, err := s.Persistence.Notes()
	if err != nil {
		return record.Note{}, err
	}
	if id != 0 {
		for i := range notes {
			if notes[i].ID == id {
				notes[i].Content = content
				return notes[i], s.Persistence.SaveNotes(notes)
			}
		}
		return record.Note{}, nil
	}
	n := record.Note{ID: record.NewID(), Content: content}
	notes = append(notes, n)
	return n, s.Persistence.SaveNotes(notes)
}

// DeleteNote removes the note with the given id, if present.
func (s *Service) DeleteNote(id int64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	notes, err := s.Persistence.Notes()
	if err != nil {
		return err
	}
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return s.Persistence.SaveNotes(kept)
}

// Texts returns all favorite texts in insertion order.
func (s *Service) Texts() ([]record.Text, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Texts()
}

// UpsertText creates a text when id is zero, otherwise rewrites the existing
// text. The reference is required; ErrReferenceRequired aborts the operation
// with no state change.
func (s *Service) UpsertText(id int64, reference, description string) (record.Text, error) {
	if s.Persistence == nil {
		return record.Text{}, ErrNoPersistence
	}
	if reference == "" {
		return record.Text{}, ErrReferenceRequired
	}
	texts, err := s.Persistence.Texts()
	if err != nil {
		return record.Text{}, err
	}
	if id != 0 {
		for i := range texts {
			if texts[i].ID == id {
				texts[i].Reference = reference
				texts[i].Description = description
				return texts[i], s.Persistence.SaveTexts(texts)
			}
		}
		return record.Text{}, nil
	}
	t := record.Text{ID: record.NewID(), Reference: reference, Description: description}
	texts = append(texts, t)
	return t, s.Persistence.SaveTexts(texts)
}

// DeleteText removes the text with the given id, if present.
func (s *Service) DeleteText(id int64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	texts, err := s.Persistence.Texts()
	if err != nil {
		return err
	}
	kept := texts[:0]
	for _, t := range texts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.Persistence.SaveTexts(kept)
}

// Goal returns the monthly goal in hours. Absent or unparsable values read
// as zero (no goal).
func (s *Service) Goal() int {
	if s.Persistence == nil {
		return 0
	}
	goal, err := strconv.Atoi(s.Persistence.Goal())
	if err != nil {
		return 0
	}
	return goal
}

// SetGoal persists the monthly goal in hours.
func (s *Service) SetGoal(hours int) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveGoal(strconv.Itoa(hours))
}

// ClearActivity erases the entries and people collections.
func (s *Service) ClearActivity() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.ClearActivity()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
