package command

import (
	"fmt"
	"strings"

	"github.com/mkovalov/rolodex/internal/book"
	"github.com/mkovalov/rolodex/internal/contact"
)

// addContact handles "add <name> <phone>". A new contact is created on
// first sight; an existing one gets the phone appended.
func (e *Executor) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArgs
	}
	name, phone := args[0], args[1]

	rec, ok := e.book.Find(name)
	msg := "Contact updated."
	if !ok {
		rec = contact.NewRecord(name)
		e.book.AddRecord(rec)
		msg = "Contact added."
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return msg, nil
}

// changeContact handles "change <name> <old_phone> <new_phone>".
func (e *Executor) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrNotEnoughArgs
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, ok := e.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// showPhone handles "phone <name>".
func (e *Executor) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	name := args[0]

	rec, ok := e.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}

	phones := rec.Phones()
	if len(phones) == 0 {
		return "No phones saved.", nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", "), nil
}

// showAll handles "all".
func (e *Executor) showAll() (string, error) {
	records := e.book.Records()
	if len(records) == 0 {
		return "No contacts yet.", nil
	}
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n"), nil
}

// addBirthday handles "add-birthday <name> <DD.MM.YYYY>", creating the
// contact when it does not exist yet.
func (e *Executor) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArgs
	}
	name, birthday := args[0], args[1]

	rec, ok := e.book.Find(name)
	msg := "Birthday added."
	if !ok {
		rec = contact.NewRecord(name)
		e.book.AddRecord(rec)
		msg = "Contact created and birthday added."
	}

	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	return msg, nil
}

// showBirthday handles "show-birthday <name>".
func (e *Executor) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	name := args[0]

	rec, ok := e.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}

	bday, ok := rec.Birthday()
	if !ok {
		return "No birthday set.", nil
	}
	return bday.String(), nil
}

// birthdays handles "birthdays": one line per upcoming congratulation,
// in book order.
func (e *Executor) birthdays() (string, error) {
	upcoming := e.book.UpcomingBirthdays(e.now())
	if len(upcoming) == 0 {
		return "No birthdays in the next 7 days.", nil
	}
	lines := make([]string, len(upcoming))
	for i, g := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", g.FormattedDate(), g.Name)
	}
	return strings.Join(lines, "\n"), nil
}
