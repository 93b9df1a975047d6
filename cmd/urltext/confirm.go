package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/urltext"
)

// Ensure StdioConfirmer implements urltext.Confirmer at compile time.
var _ urltext.Confirmer = (*StdioConfirmer)(nil)

// StdioConfirmer asks yes/no questions on the terminal. Anything other
// than "y" or "yes" (case-insensitive) counts as a no, including EOF.
type StdioConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdioConfirmer creates a StdioConfirmer reading answers from in and
// writing prompts to out.
func NewStdioConfirmer(in io.Reader, out io.Writer) *StdioConfirmer {
	return &StdioConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt and reads one line as the answer.
func (c *StdioConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
