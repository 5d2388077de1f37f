// Package input gathers and validates the answers a poster is built from.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream ends before an answer is read.
var ErrNoInput = errors.New("no input")

// Question is one prompt shown to the user.
type Question struct {
	Field       string
	Label       string
	Placeholder string
}

// Prompter asks a single question and returns the raw answer.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// LinePrompter writes each label to out and reads one line from in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter over plain streams.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the label and returns the next line without its terminator.
func (p *LinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, q.Label); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", fmt.Errorf("reading %s: %w", q.Field, ErrNoInput)
		}
		return "", fmt.Errorf("reading %s: %w", q.Field, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
