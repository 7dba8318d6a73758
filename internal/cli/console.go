package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console owns line-oriented terminal IO. Workflows read through it so tests
// and the godog features can drive them with scripted input.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	colors palette
}

// NewConsole wraps the given reader and writer.
func NewConsole(in io.Reader, out io.Writer, colorEnabled bool) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		colors: palette{enabled: colorEnabled},
	}
}

// ReadLine prints the prompt and returns the next input line, trimmed.
// Returns io.EOF when the input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Pause blocks until the user presses Enter. Input errors are ignored; the
// pause is purely cosmetic.
func (c *Console) Pause() {
	fmt.Fprint(c.out, "\nPress Enter to continue.")
	c.in.Scan()
	fmt.Fprintln(c.out)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Warn prints an error line in red.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.colors.red(msg))
}

// Success prints a confirmation line in green.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.colors.green(msg))
}
