// Package book implements the address book: an insertion-ordered collection
// of contact records keyed by name.
package book

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkovalov/rolodex/internal/contact"
)

// ErrNotFound indicates a lookup for a name with no record in the book.
var ErrNotFound = errors.New("book: contact not found")

// Book maps contact names to records. Iteration order is insertion order;
// overwriting a name keeps its original position.
type Book struct {
	records map[string]*contact.Record
	order   []string
}

// New returns an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Len returns the number of records in the book.
func (b *Book) Len() int {
	return len(b.order)
}

// AddRecord inserts rec keyed by its name. An existing record under the
// same name is replaced wholesale, not merged.
func (b *Book) AddRecord(rec *contact.Record) {
	name := rec.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// Find returns the record for name, or false. Exact, case-sensitive match.
func (b *Book) Find(name string) (*contact.Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// bookWire is the on-disk JSON shape of a Book. A flat list keeps
// insertion order without relying on map key ordering.
type bookWire struct {
	Contacts []*contact.Record `json:"contacts"`
}

// MarshalJSON implements json.Marshaler.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookWire{Contacts: b.Records()})
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate names in the file
// follow AddRecord semantics: the last record wins.
func (b *Book) UnmarshalJSON(data []byte) error {
	var w bookWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	fresh := New()
	for _, rec := range w.Contacts {
		if rec == nil {
			return fmt.Errorf("book: null contact entry")
		}
		fresh.AddRecord(rec)
	}

	*b = *fresh
	return nil
}
