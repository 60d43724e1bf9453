// Package prompt implements the blocking validated-input loop used during
// the review phase. Reader and writer are injectable so the loop is testable
// without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultFailureMessage is printed when input cannot be converted and the
// caller supplied no message of its own.
const DefaultFailureMessage = "Your input could not be converted."

// Prompter reads validated values from an input stream, reprompting until a
// line parses. Only end of input breaks the loop with an error.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New constructs a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Ask prints label, reads one line, and applies parse. Invalid input prints
// the failure message and reprompts indefinitely; io errors and end of input
// surface to the caller.
func Ask[T any](p *Prompter, label string, parse func(string) (T, error), failure string) (T, error) {
	var zero T
	if failure == "" {
		failure = DefaultFailureMessage
	}

	for {
		if label != "" {
			fmt.Fprint(p.out, label)
		}
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return zero, fmt.Errorf("read input: %w", err)
			}
			return zero, io.EOF
		}
		value, err := parse(strings.TrimSpace(p.scanner.Text()))
		if err != nil {
			fmt.Fprintln(p.out, failure)
			continue
		}
		return value, nil
	}
}

// PositiveInt parses a strictly positive integer, for batch-size prompts.
func PositiveInt(text string) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", value)
	}
	return value, nil
}
