// Package confirmations provides the yes/no prompts shown before agentkit
// overwrites or removes anything.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Confirmer asks the operator a single yes/no question
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConsoleDialog implements Confirmer with a line-based exchange
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a console confirmation dialog reading from in and
// writing prompts to out
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm writes prompt, blocks for one line of input and approves only
// when that line is "y" in any case. Empty input and EOF decline.
func (d *ConsoleDialog) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprint(d.out, prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	if err == io.EOF && line == "" {
		// keep the terminal tidy when input ends without a newline
		fmt.Fprintln(d.out)
	}

	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// AutoConfirm approves every prompt without any I/O
type AutoConfirm struct{}

// Confirm always returns true
func (AutoConfirm) Confirm(string) (bool, error) {
	return true, nil
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
