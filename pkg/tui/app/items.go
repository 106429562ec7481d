package teaui

import (
	"github.com/charmbracelet/bubbles/v2/list"

	"tableflip.dev/fieldlog/pkg/record"
)

type personItem struct {
	person record.Person
	typ    string
	empty  string
}

func (i personItem) Title() string { return i.person.Name }
func (i personItem) Description() string {
	desc := i.person.Date.String() + " · " + i.typ
	if i.person.Notes != "" {
		return desc + " · " + i.person.Notes
	}
	if i.empty != "" {
		return desc + " · " + i.empty
	}
	return desc
}
func (i personItem) FilterValue() string { return i.person.Name }

type noteItem struct {
	note record.Note
}

func (i noteItem) Title() string {
	return i.note.CreatedAt().Format("2006-01-02 15:04")
}
func (i noteItem) Description() string { return firstLine(i.note.Content) }
func (i noteItem) FilterValue() string { return i.note.Content }

type textItem struct {
	text  record.Text
	empty string
}

func (i textItem) Title() string { return i.text.Reference }
func (i textItem) Description() string {
	if i.text.Description != "" {
		return i.text.Description
	}
	return i.empty
}
func (i textItem) FilterValue() string { return i.text.Reference }

func firstLine(s string) string {
	for idx, r := range s {
		if r == '\n' {
			return s[:idx]
		}
	}
	return s
}

// syncLists rebuilds the three page lists from the loaded collections,
// keeping each selection in range.
func (m *Model) syncLists() {
	people := make([]list.Item, 0, len(m.people))
	for _, p := range m.people {
		typ := m.tr("menuRevisits")
		if p.Type == record.Study {
			typ = m.tr("menuStudies")
		}
		people = append(people, personItem{person: p, typ: typ, empty: m.tr("noNotes")})
	}
	m.peopleList.SetItems(people)

	notes := make([]list.Item, 0, len(m.notes))
	for _, n := range m.notes {
		notes = append(notes, noteItem{note: n})
	}
	m.notesList.SetItems(notes)

	texts := make([]list.Item, 0, len(m.texts))
	for _, t := range m.texts {
		texts = append(texts, textItem{text: t, empty: m.tr("noDescription")})
	}
	m.textsList.SetItems(texts)
}

func (m *Model) selectedPerson() (record.Person, bool) {
	if it, ok := m.peopleList.SelectedItem().(personItem); ok {
		return it.person, true
	}
	return record.Person{}, false
}

func (m *Model) selectedNote() (record.Note, bool) {
	if it, ok := m.notesList.SelectedItem().(noteItem); ok {
		return it.note, true
	}
	return record.Note{}, false
}

func (m *Model) selectedText() (record.Text, bool) {
	if it, ok := m.textsList.SelectedItem().(textItem); ok {
		return it.text, true
	}
	return record.Text{}, false
}
