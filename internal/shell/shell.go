// Package shell implements the interactive read-eval-print loop.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mkovalov/rolodex/internal/command"
)

// Shell reads command lines, executes them, and prints replies until the
// user closes the session or the context is cancelled. Cancellation (for
// example Ctrl+C) ends the loop normally so the caller can still save.
type Shell struct {
	exec   *command.Executor
	in     io.Reader
	out    io.Writer
	prompt string
}

// Option configures a Shell.
type Option func(*Shell)

// WithInput overrides the input stream (default: os.Stdin).
func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.in = r
	}
}

// WithOutput overrides the output stream (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithPrompt overrides the input prompt.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// New creates a Shell that executes commands through exec.
func New(exec *command.Executor, opts ...Option) *Shell {
	s := &Shell{
		exec:   exec,
		in:     os.Stdin,
		out:    os.Stdout,
		prompt: "Enter a command: ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the loop until close/exit, end of input, or ctx cancellation.
// All three are normal terminations: the error is always nil unless
// reading input itself failed.
func (s *Shell) Run(ctx context.Context) error {
	// Input is read on a separate goroutine so the wait for the next
	// line can be abandoned when ctx is cancelled mid-read.
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nInterrupted. Saving and exiting...")
			return nil

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				if err := <-errc; err != nil {
					return fmt.Errorf("shell: reading input: %w", err)
				}
				return nil
			}

			reply, quit := s.exec.Execute(line)
			if reply != "" {
				fmt.Fprintln(s.out, reply)
			}
			if quit {
				return nil
			}
		}
	}
}
