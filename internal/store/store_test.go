package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkovalov/rolodex/internal/book"
	"github.com/mkovalov/rolodex/internal/contact"
)

func sampleBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()

	john := contact.NewRecord("John")
	if err := john.AddPhone("1234567890"); err != nil {
		t.Fatal(err)
	}
	if err := john.SetBirthday("04.11.1975"); err != nil {
		t.Fatal(err)
	}
	b.AddRecord(john)

	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		t.Fatal(err)
	}
	b.AddRecord(jane)

	return b
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	// Given a book to persist
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "addressbook.json"))
	b := sampleBook(t)

	// When Save is called
	if err := store.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Then Load returns an equivalent book
	loaded := store.Load()
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}
	john, ok := loaded.Find("John")
	if !ok {
		t.Fatal("Find(John) ok = false, want true")
	}
	if phones := john.Phones(); len(phones) != 1 || phones[0].String() != "1234567890" {
		t.Errorf("Phones() = %v, want [1234567890]", phones)
	}
	if bday, ok := john.Birthday(); !ok || bday.String() != "04.11.1975" {
		t.Errorf("Birthday() = %v, %v, want 04.11.1975", bday, ok)
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	// Given no file on disk
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	// When Load is called
	b := store.Load()

	// Then an empty book is returned, not an error
	if b == nil {
		t.Fatal("Load() = nil, want empty book")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "truncated json", data: `{"contacts":[{"name":"Jo`},
		{name: "not json", data: "hello world"},
		{name: "wrong shape", data: `{"contacts":"nope"}`},
		{name: "invalid stored phone", data: `{"contacts":[{"name":"John","phones":["12"]}]}`},
		{name: "empty file", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "addressbook.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}

			b := NewFileStore(path).Load()
			if b.Len() != 0 {
				t.Errorf("Len() = %d, want 0 (corrupt file degrades to empty)", b.Len())
			}
		})
	}
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "addressbook.json")
	store := NewFileStore(path)

	if err := store.Save(sampleBook(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat(%s) error = %v", path, err)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	// Given a saved book
	store := NewFileStore(filepath.Join(t.TempDir(), "addressbook.json"))
	if err := store.Save(sampleBook(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// When an empty book is saved over it
	if err := store.Save(book.New()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Then Load reflects the newer state
	if got := store.Load().Len(); got != 0 {
		t.Errorf("Len() = %d after overwrite, want 0", got)
	}
}

func TestFileStore_RemoveNotFound(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	// Removing an absent file is idempotent.
	if err := store.Remove(); err != nil {
		t.Errorf("Remove() error = %v, want nil", err)
	}
}
