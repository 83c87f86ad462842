// Package terminal checks that the user's terminal can display the
// application before it is launched.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"golang.org/x/term"
)

// SizeFunc reports the terminal width and height.
type SizeFunc func() (width, height int, err error)

// Gatekeeper implements ports.Gatekeeper.
type Gatekeeper struct {
	logger ports.Logger
	size   SizeFunc
	in     io.Reader
	out    io.Writer
}

// Option configures a Gatekeeper.
type Option func(*Gatekeeper)

// WithSize overrides the terminal size query.
func WithSize(size SizeFunc) Option {
	return func(g *Gatekeeper) {
		g.size = size
	}
}

// WithPrompt overrides the streams used for the confirmation prompt.
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(g *Gatekeeper) {
		g.in = in
		g.out = out
	}
}

// New creates a Gatekeeper that queries the size of stdout.
func New(logger ports.Logger, opts ...Option) *Gatekeeper {
	g := &Gatekeeper{
		logger: logger,
		size:   StdoutSize,
		in:     os.Stdin,
		out:    os.Stderr,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StdoutSize queries the size of the terminal attached to stdout.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Admit returns true when the terminal meets the minimum size or the user
// confirms launching anyway. An unknown size is admitted without prompting.
func (g *Gatekeeper) Admit(ctx context.Context, spec domain.TerminalSpec) (bool, error) {
	minW, minH := spec.MinWidth, spec.MinHeight
	if minW <= 0 {
		minW = domain.MinTerminalWidth
	}
	if minH <= 0 {
		minH = domain.MinTerminalHeight
	}

	width, height, err := g.size()
	if err != nil {
		return true, nil
	}

	if width >= minW && height >= minH {
		return true, nil
	}

	g.logger.Warn(fmt.Sprintf(
		"terminal is %dx%d, the application needs at least %dx%d and may not display correctly",
		width, height, minW, minH,
	))

	return g.confirm(ctx)
}

// confirm asks the user to continue. Only a single "y" or "Y" counts as yes.
// Cancellation while waiting counts as no.
func (g *Gatekeeper) confirm(ctx context.Context) (bool, error) {
	if _, err := io.WriteString(g.out, "Continue anyway? [y/N] "); err != nil {
		return false, err
	}

	answers := make(chan string, 1)
	go func() {
		answers <- readLine(g.in)
	}()

	select {
	case <-ctx.Done():
		return false, nil
	case line := <-answers:
		answer := strings.TrimSpace(line)
		return answer == "y" || answer == "Y", nil
	}
}

// readLine reads up to and including the first newline one byte at a time,
// leaving anything typed after it unread for the application.
func readLine(r io.Reader) string {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return line.String()
			}
			line.WriteByte(buf[0])
		}
		if err != nil {
			return line.String()
		}
	}
}
