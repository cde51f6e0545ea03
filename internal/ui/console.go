package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Title is the text shown inside the boxed header on every screen.
const Title = "🚀 Compound Learning System Setup"

// Palette used by the wizard. Each entry is a Sprint-style function so callers
// can color individual segments of a line.
var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	white  = color.New(color.FgWhite).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

var headerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("6")).
	Foreground(lipgloss.Color("7")).
	Bold(true).
	Padding(0, 2).
	Width(60)

// Console renders the wizard's screens onto a writer.
type Console struct {
	out      io.Writer
	terminal bool
}

// NewConsole returns a Console writing to out. Screen clearing is only
// performed when out is an interactive terminal.
func NewConsole(out io.Writer) *Console {
	c := &Console{out: out}
	if f, ok := out.(*os.File); ok {
		c.terminal = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// Writer exposes the underlying writer, used by prompters to share the same stream.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Header clears the screen and prints the boxed title.
func (c *Console) Header() {
	if c.terminal {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
	fmt.Fprintln(c.out, headerStyle.Render(Title))
	fmt.Fprintln(c.out)
}

// Section prints a titled divider block.
func (c *Console) Section(title string) {
	rule := strings.Repeat("━", 56)
	fmt.Fprintf(c.out, "\n%s\n", yellow(rule))
	fmt.Fprintf(c.out, "%s\n", yellow("  "+title))
	fmt.Fprintf(c.out, "%s\n\n", yellow(rule))
}

// Success prints a green check marker followed by msg.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", green("✓"), white(msg))
}

// Failure prints a red cross marker followed by msg.
// It is used for every non-fatal warning; the flow always continues afterwards.
func (c *Console) Failure(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", red("✗"), white(msg))
}

// Info prints a dimmed informational line.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", gray("ℹ"), gray(msg))
}

// Text prints a plain white line.
func (c *Console) Text(msg string) {
	fmt.Fprintln(c.out, white(msg))
}

// Blank prints an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.out)
}

// Bullet prints an indented list item.
func (c *Console) Bullet(msg string) {
	fmt.Fprintf(c.out, "  %s %s\n", cyan("•"), msg)
}

// Step announces a long-running action.
func (c *Console) Step(msg string) {
	fmt.Fprintf(c.out, "%s %s\n\n", cyan("▶"), white(msg))
}

// Heading prints a cyan label on its own line, e.g. "Schedule:".
func (c *Console) Heading(label string) {
	fmt.Fprintln(c.out, cyan(label))
}

// Entry prints an indented dimmed key followed by text.
func (c *Console) Entry(key, text string) {
	fmt.Fprintf(c.out, "  %s %s\n", gray(key), text)
}

// Muted prints an indented dimmed line, used for copy-pasteable commands.
func (c *Console) Muted(msg string) {
	fmt.Fprintf(c.out, "  %s\n", gray(msg))
}

// Command prints a cyan label followed by a dimmed shell command.
func (c *Console) Command(label, command string) {
	fmt.Fprintf(c.out, "%s %s\n", cyan(label), gray(command))
}

// Rule prints a full-width green double line.
func (c *Console) Rule() {
	fmt.Fprintln(c.out, green(strings.Repeat("═", 59)))
}
