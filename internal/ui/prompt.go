package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the operator aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Prompter reads one line of operator input.
//
// Prompt shows text together with def and returns what was typed, or def when
// the line is empty. It blocks until a line is available or ctx is done.
type Prompter interface {
	Prompt(ctx context.Context, text, def string) (string, error)
}

// NewPrompter returns a line-editing prompter when both in and out are
// terminals and a plain line reader otherwise (pipes, redirected files, tee).
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) && isTerminal(out) {
		return &TermPrompter{out: out}
	}
	return NewLinePrompter(in, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Confirm asks a yes/no question. Only "y" (any case) counts as yes.
func Confirm(ctx context.Context, p Prompter, text, def string) (bool, error) {
	answer, err := p.Prompt(ctx, text+" (y/n)", def)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// orDefault trims the typed line and falls back to def when nothing remains.
func orDefault(line, def string) string {
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		return trimmed
	}
	return def
}

// decorate renders the colored question, e.g. "? Claude model [claude-opus-4-5]".
func decorate(text, def string) string {
	q := cyan("?") + " " + white(text)
	if def != "" {
		q += " " + gray("["+def+"]")
	}
	return q
}

// inputMarker is the liner prompt. liner refuses control characters in its
// prompt, so the colored question goes on the line above.
const inputMarker = "› "

type lineResult struct {
	line string
	err  error
}

// await runs read aside and returns its result, or ctx.Err() as soon as ctx is
// done. A read still pending after cancellation is abandoned; the process is
// about to exit.
func await(ctx context.Context, read func() (string, error)) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := read()
		done <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}

// LinePrompter reads newline-terminated input from any reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a prompter reading from in and echoing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter. End of input is treated like an empty line.
func (p *LinePrompter) Prompt(ctx context.Context, text, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, decorate(text, def)+": ")
	line, err := await(ctx, func() (string, error) { return p.in.ReadString('\n') })
	fmt.Fprintln(p.out)

	if err != nil && !errors.Is(err, io.EOF) {
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return orDefault(line, def), nil
}

// TermPrompter reads input with line editing on an interactive terminal.
// The terminal is switched to raw mode only while a prompt is active.
type TermPrompter struct {
	out io.Writer
}

// Prompt implements Prompter. Ctrl-C inside the prompt yields ErrInterrupted;
// a signal cancelling ctx ends the wait even when liner has fallen back to a
// cooked-mode read.
func (p *TermPrompter) Prompt(ctx context.Context, text, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintln(p.out, decorate(text, def))

	state := liner.NewLiner()
	defer state.Close() // restores cooked mode
	state.SetCtrlCAborts(true)

	line, err := await(ctx, func() (string, error) { return state.Prompt(inputMarker) })
	switch {
	case ctx.Err() != nil:
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return def, nil
	case err != nil:
		return "", fmt.Errorf("read input: %w", err)
	}
	return orDefault(line, def), nil
}
