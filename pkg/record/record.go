// Package record defines the persisted record kinds: activity entries,
// people, notes, and favorite texts. The JSON field names are the wire
// format of the store and must not change.
package record

import (
	"fmt"
	"sync"
	"time"
)

// Entry is one day's logged activity. At most one entry exists per Date;
// saving an entry for an existing date replaces it in place.
//
// Minutes may legitimately hold values of 60 or more: only the stepper and
// quick-add paths renormalize minutes into hours, a directly submitted value
// is stored verbatim. Totals always compute hours*60+minutes, so aggregation
// is unaffected.
type Entry struct {
	Date     Day `json:"date"`
	Hours    int `json:"hours"`
	Minutes  int `json:"minutes"`
	Revisits int `json:"revisits"`
	Studies  int `json:"studies"`
}

// TotalMinutes returns the logged time as whole minutes.
func (e Entry) TotalMinutes() int {
	return e.Hours*60 + e.Minutes
}

// VisitType tags a person record as a revisit or a study.
type VisitType string

const (
	Revisit VisitType = "revisits"
	Study   VisitType = "studies"
)

// ParseVisitType resolves the wire value of a visit type.
func ParseVisitType(s string) (VisitType, error) {
	switch VisitType(s) {
	case Revisit, Study:
		return VisitType(s), nil
	}
	return "", fmt.Errorf("unknown visit type %q", s)
}

func (v VisitType) String() string {
	return string(v)
}

// Person is a visited person worth remembering. A Person is only persisted
// when a name or notes was supplied; bare counter increments leave no record.
type Person struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Notes string    `json:"notes"`
	Date  Day       `json:"date"`
	Type  VisitType `json:"type"`
}

// Note is a free-form personal note. The ID doubles as the creation time.
type Note struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// CreatedAt returns the note's creation time derived from its ID.
func (n Note) CreatedAt() time.Time {
	return time.UnixMilli(n.ID)
}

// Text is a favorite text: a required reference and an optional description.
type Text struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a fresh record id. IDs are creation timestamps in
// milliseconds, matching the store's historical id format; two calls within
// the same millisecond still yield distinct ids.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
