package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	rolodex "github.com/mkovalov/rolodex"
	"github.com/mkovalov/rolodex/internal/book"
	"github.com/mkovalov/rolodex/internal/command"
	"github.com/mkovalov/rolodex/internal/config"
	"github.com/mkovalov/rolodex/internal/seed"
	"github.com/mkovalov/rolodex/internal/shell"
	"github.com/mkovalov/rolodex/internal/store"
	"github.com/mkovalov/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`

	Shell        ShellCmd        `cmd:"" default:"1" help:"Start the interactive shell."`
	Browse       BrowseCmd       `cmd:"" help:"Browse contacts in a TUI."`
	Add          AddCmd          `cmd:"" help:"Add a contact or append a phone."`
	Change       ChangeCmd       `cmd:"" help:"Replace a contact's phone number."`
	Phone        PhoneCmd        `cmd:"" help:"Show a contact's phone numbers."`
	All          AllCmd          `cmd:"" help:"List all contacts."`
	AddBirthday  AddBirthdayCmd  `cmd:"" help:"Set a contact's birthday (DD.MM.YYYY)."`
	ShowBirthday ShowBirthdayCmd `cmd:"" help:"Show a contact's birthday."`
	Birthdays    BirthdaysCmd    `cmd:"" help:"List birthdays in the next 7 days."`
}

// errCommandFailed signals a one-shot command whose generic reply was
// already printed; main exits nonzero without extra output.
var errCommandFailed = errors.New("command failed")

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openBook loads the persisted book and applies demo seeding when enabled.
// Seed problems are warnings: a working empty book beats a failed start.
func openBook(w io.Writer, cfg *config.Config) (*book.Book, *store.FileStore) {
	st := store.NewFileStore(cfg.Storage.File)
	b := st.Load()

	if cfg.Seed.Demo {
		fsys := rolodex.OverlayFS(".rolodex/seed", rolodex.Seed)
		if err := seed.Apply(b, fsys); err != nil {
			_, _ = fmt.Fprintf(w, "warning: seeding skipped: %v\n", err)
		}
	}
	return b, st
}

// saveBook persists the book. Save failures are reported but never block
// exit; the session's data is already in memory and the process is ending.
func saveBook(w io.Writer, st *store.FileStore, b *book.Book) {
	if err := st.Save(b); err != nil {
		_, _ = fmt.Fprintf(w, "warning: %v\n", err)
		return
	}
}

// --- Shell command ---

// ShellCmd starts the interactive read-eval-print loop.
type ShellCmd struct{}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	b, st := openBook(os.Stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = s.run(ctx, os.Stdin, os.Stdout, cfg, b, st)

	// The final save runs no matter how the loop ended: normal close,
	// end of input, or interrupt.
	saveBook(os.Stderr, st, b)
	return err
}

// run drives the shell against explicit streams, enabling testable wiring.
func (s *ShellCmd) run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, b *book.Book, st *store.FileStore) error {
	_, _ = fmt.Fprintln(out, "Welcome to the assistant bot!")
	_, _ = fmt.Fprintf(out, "(Loaded %d contacts from %q)\n", b.Len(), st.Path())

	sh := shell.New(command.NewExecutor(b),
		shell.WithInput(in),
		shell.WithOutput(out),
		shell.WithPrompt(cfg.Shell.Prompt),
	)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

// --- Browse command ---

// BrowseCmd opens the read-only contact browser TUI.
type BrowseCmd struct{}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the browser.
func (c *BrowseCmd) Run() error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	b, _ := openBook(os.Stderr, cfg)

	m := tui.NewModel(b, time.Now())
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return c.run(isTTY, prog)
}

// run executes the tea program, enabling testable wiring.
func (c *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// --- One-shot commands ---

// runOne loads the book, dispatches a single command, prints the reply
// (generic on failure, like the shell), and saves when the command mutates.
func runOne(w io.Writer, cmd string, args []string, mutates bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	b, st := openBook(os.Stderr, cfg)
	exec := command.NewExecutor(b)

	out, err := exec.Handle(cmd, args)
	if err != nil {
		_, _ = fmt.Fprintln(w, command.Reply(err))
		return errCommandFailed
	}

	_, _ = fmt.Fprintln(w, out)
	if mutates {
		saveBook(os.Stderr, st, b)
	}
	return nil
}

// AddCmd adds a contact or appends a phone to an existing one.
type AddCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"10-digit phone number."`
}

// Run executes the add command.
func (c *AddCmd) Run() error {
	return runOne(os.Stdout, "add", []string{c.Name, c.Phone}, true)
}

// ChangeCmd replaces a phone number on an existing contact.
type ChangeCmd struct {
	Name     string `arg:"" help:"Contact name."`
	OldPhone string `arg:"" help:"Phone number to replace."`
	NewPhone string `arg:"" help:"Replacement 10-digit phone number."`
}

// Run executes the change command.
func (c *ChangeCmd) Run() error {
	return runOne(os.Stdout, "change", []string{c.Name, c.OldPhone, c.NewPhone}, true)
}

// PhoneCmd shows a contact's phone numbers.
type PhoneCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the phone command.
func (c *PhoneCmd) Run() error {
	return runOne(os.Stdout, "phone", []string{c.Name}, false)
}

// AllCmd lists every contact.
type AllCmd struct{}

// Run executes the all command.
func (c *AllCmd) Run() error {
	return runOne(os.Stdout, "all", nil, false)
}

// AddBirthdayCmd sets a contact's birthday, creating the contact if needed.
type AddBirthdayCmd struct {
	Name     string `arg:"" help:"Contact name."`
	Birthday string `arg:"" help:"Birthday in DD.MM.YYYY form."`
}

// Run executes the add-birthday command.
func (c *AddBirthdayCmd) Run() error {
	return runOne(os.Stdout, "add-birthday", []string{c.Name, c.Birthday}, true)
}

// ShowBirthdayCmd shows a contact's birthday.
type ShowBirthdayCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the show-birthday command.
func (c *ShowBirthdayCmd) Run() error {
	return runOne(os.Stdout, "show-birthday", []string{c.Name}, false)
}

// BirthdaysCmd lists contacts with birthdays in the next seven days.
type BirthdaysCmd struct{}

// Run executes the birthdays command.
func (c *BirthdaysCmd) Run() error {
	return runOne(os.Stdout, "birthdays", nil, false)
}

// Exit codes.
const (
	exitSuccess = 0
	exitCommand = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errCommandFailed):
		return exitCommand
	default:
		return exitSetup
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		// One-shot failures already printed their generic reply.
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(exitCode(err))
	}
}
