// Package contact implements validated contact fields and the per-person record.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for caller-checkable validation and lookup failures.
var (
	ErrInvalidPhone    = errors.New("contact: phone number must contain exactly 10 digits")
	ErrInvalidBirthday = errors.New("contact: invalid date format, use DD.MM.YYYY")
	ErrPhoneNotFound   = errors.New("contact: old number not found")
)

// BirthdayLayout is the only accepted input and display format for birthdays.
const BirthdayLayout = "02.01.2006"

// Phone is a validated phone number: exactly 10 ASCII digits, stored verbatim.
type Phone struct {
	value string
}

// ParsePhone validates s as a phone number. Separators are not stripped;
// anything other than a run of exactly 10 digits fails.
func ParsePhone(s string) (Phone, error) {
	if len(s) != 10 {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, s)
		}
	}
	return Phone{value: s}, nil
}

// String returns the digit string the phone was parsed from.
func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date with no time-of-day component.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates s against the strict DD.MM.YYYY layout.
// Two-digit day and month, four-digit year, dot separators, nothing else.
// Out-of-range dates (29.02.2023) fail the same way as malformed text.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, s)
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as a time.Time at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the birthday back in DD.MM.YYYY form.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// Record aggregates a contact: an immutable name, an ordered phone list,
// and at most one birthday. Mutate only through the methods below.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with the given name and no phones or birthday.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the record's identity within a book.
func (r *Record) Name() string {
	return r.name
}

// Phones returns the phone list in insertion order. The slice is a copy.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates number and appends it to the phone list.
// On validation failure the list is unchanged.
func (r *Record) AddPhone(number string) error {
	p, err := ParsePhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone deletes every phone equal to number. Removing a number
// that is not present is not an error.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != number {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldNumber with newNumber,
// preserving its position. Returns ErrPhoneNotFound when oldNumber is
// absent and ErrInvalidPhone when newNumber fails validation; the record
// is unchanged in both cases.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	for i, p := range r.phones {
		if p.value == oldNumber {
			replacement, err := ParsePhone(newNumber)
			if err != nil {
				return err
			}
			r.phones[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldNumber)
}

// FindPhone returns the first phone equal to number and whether it was found.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == number {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates s and sets it as the record's birthday,
// replacing any existing one.
func (r *Record) SetBirthday(s string) error {
	b, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders the record for the "all" listing.
func (r *Record) String() string {
	phones := "—"
	if len(r.phones) > 0 {
		parts := make([]string, len(r.phones))
		for i, p := range r.phones {
			parts[i] = p.value
		}
		phones = strings.Join(parts, "; ")
	}

	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, phones)
	if r.birthday != nil {
		s += fmt.Sprintf(", birthday: %s", r.birthday)
	}
	return s
}
