package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mkovalov/rolodex/internal/book"
	"github.com/mkovalov/rolodex/internal/contact"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{name: "command with args", line: "add John 1234567890", wantCmd: "add", wantArgs: []string{"John", "1234567890"}},
		{name: "uppercase command", line: "ADD John 1234567890", wantCmd: "add", wantArgs: []string{"John", "1234567890"}},
		{name: "surrounding whitespace", line: "  hello  ", wantCmd: "hello", wantArgs: nil},
		{name: "multiple spaces between tokens", line: "phone   John", wantCmd: "phone", wantArgs: []string{"John"}},
		{name: "blank line", line: "   ", wantCmd: "", wantArgs: nil},
		{name: "args keep their case", line: "add JOHN 1234567890", wantCmd: "add", wantArgs: []string{"JOHN", "1234567890"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.line)
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %q, want %q", cmd, tt.wantCmd)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestReply(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "invalid phone", err: contact.ErrInvalidPhone, want: "Give me correct data, please."},
		{name: "invalid birthday", err: contact.ErrInvalidBirthday, want: "Give me correct data, please."},
		{name: "phone not found", err: contact.ErrPhoneNotFound, want: "Give me correct data, please."},
		{name: "contact not found", err: book.ErrNotFound, want: "Contact not found."},
		{name: "wrapped contact not found", err: fmt.Errorf("wrap: %w", book.ErrNotFound), want: "Contact not found."},
		{name: "not enough args", err: ErrNotEnoughArgs, want: "Not enough arguments."},
		{name: "unknown command", err: ErrUnknown, want: "Invalid command."},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.err); got != tt.want {
				t.Errorf("Reply(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestExecutor_Execute(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantReply string
		wantQuit  bool
	}{
		{name: "hello", line: "hello", wantReply: "How can I help you?"},
		{name: "close", line: "close", wantReply: "Good bye!", wantQuit: true},
		{name: "exit", line: "exit", wantReply: "Good bye!", wantQuit: true},
		{name: "exit uppercase", line: "EXIT", wantReply: "Good bye!", wantQuit: true},
		{name: "blank line", line: "   ", wantReply: ""},
		{name: "unknown command", line: "frobnicate", wantReply: "Invalid command."},
		{name: "add then generic validation reply", line: "add John 123", wantReply: "Give me correct data, please."},
		{name: "missing args", line: "add John", wantReply: "Not enough arguments."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExecutor(book.New())
			reply, quit := e.Execute(tt.line)
			if reply != tt.wantReply {
				t.Errorf("reply = %q, want %q", reply, tt.wantReply)
			}
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestExecutor_HandleUnknown(t *testing.T) {
	e := NewExecutor(book.New())
	_, err := e.Handle("bogus", nil)
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Handle(bogus) error = %v, want ErrUnknown", err)
	}
}
