// Package command parses user input lines and dispatches them against an
// address book, collapsing domain errors into generic user-facing replies.
package command

import (
	"errors"
	"strings"
	"time"

	"github.com/mkovalov/rolodex/internal/book"
)

// Sentinel errors raised by the dispatch layer itself.
var (
	ErrNotEnoughArgs = errors.New("command: not enough arguments")
	ErrUnknown       = errors.New("command: unknown command")
)

// Generic user replies. Every domain error collapses into one of these;
// the user never sees which validation actually failed.
const (
	replyBadData     = "Give me correct data, please."
	replyNotFound    = "Contact not found."
	replyMissingArgs = "Not enough arguments."
	replyInvalid     = "Invalid command."
	replyGoodbye     = "Good bye!"
	replyHello       = "How can I help you?"
)

// Parse splits a raw input line into a lowercased command keyword and its
// argument tokens. Returns an empty command for blank lines.
func Parse(line string) (string, []string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Reply maps a domain error to its generic user-facing message.
func Reply(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotEnoughArgs):
		return replyMissingArgs
	case errors.Is(err, book.ErrNotFound):
		return replyNotFound
	case errors.Is(err, ErrUnknown):
		return replyInvalid
	default:
		// Validation failures of any kind: invalid phone, invalid
		// birthday, edit of a phone that is not on the record.
		return replyBadData
	}
}

// Executor runs commands against a single address book instance.
type Executor struct {
	book *book.Book
	now  func() time.Time
}

// Option configures an Executor.
type Option func(*Executor)

// WithClock overrides the time source used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		e.now = now
	}
}

// NewExecutor creates an Executor bound to b.
func NewExecutor(b *book.Book, opts ...Option) *Executor {
	e := &Executor{book: b, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one input line and returns the reply to print plus whether
// the session should end. Blank lines produce an empty reply.
func (e *Executor) Execute(line string) (reply string, quit bool) {
	cmd, args := Parse(line)

	switch cmd {
	case "":
		return "", false
	case "close", "exit":
		return replyGoodbye, true
	case "hello":
		return replyHello, false
	}

	out, err := e.Handle(cmd, args)
	if err != nil {
		return Reply(err), false
	}
	return out, false
}

// Handle dispatches a pre-tokenized command without collapsing errors,
// so one-shot CLI subcommands can share the same handlers.
func (e *Executor) Handle(cmd string, args []string) (string, error) {
	switch cmd {
	case "add":
		return e.addContact(args)
	case "change":
		return e.changeContact(args)
	case "phone":
		return e.showPhone(args)
	case "all":
		return e.showAll()
	case "add-birthday":
		return e.addBirthday(args)
	case "show-birthday":
		return e.showBirthday(args)
	case "birthdays":
		return e.birthdays()
	default:
		return "", ErrUnknown
	}
}
