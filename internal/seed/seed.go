// Package seed populates a brand-new address book with sample contacts.
package seed

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/mkovalov/rolodex/internal/book"
	"github.com/mkovalov/rolodex/internal/contact"
)

// File is the seed filename looked up in the provided filesystem.
const File = "contacts.yaml"

// ErrEmpty indicates a seed file exists but lists no contacts.
var ErrEmpty = errors.New("seed: no contacts in seed file")

// seedFile is the YAML shape of a seed contacts file.
type seedFile struct {
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday"`
}

// Load parses the seed file from fsys into records. Seed entries pass
// through the regular field validators, so a bad phone or date in the
// seed file is an error rather than a silently broken contact.
func Load(fsys fs.FS) ([]*contact.Record, error) {
	data, err := fs.ReadFile(fsys, File)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", File, err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("seed: parsing %s: %w", File, err)
	}
	if len(sf.Contacts) == 0 {
		return nil, ErrEmpty
	}

	records := make([]*contact.Record, 0, len(sf.Contacts))
	for _, sc := range sf.Contacts {
		if sc.Name == "" {
			return nil, fmt.Errorf("seed: contact with empty name")
		}
		rec := contact.NewRecord(sc.Name)
		for _, number := range sc.Phones {
			if err := rec.AddPhone(number); err != nil {
				return nil, fmt.Errorf("seed: contact %q: %w", sc.Name, err)
			}
		}
		if sc.Birthday != "" {
			if err := rec.SetBirthday(sc.Birthday); err != nil {
				return nil, fmt.Errorf("seed: contact %q: %w", sc.Name, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Apply inserts seed contacts into b. A book that already holds records
// is left untouched so loaded data is never duplicated.
func Apply(b *book.Book, fsys fs.FS) error {
	if b.Len() > 0 {
		return nil
	}

	records, err := Load(fsys)
	if err != nil {
		return err
	}
	for _, rec := range records {
		b.AddRecord(rec)
	}
	return nil
}
