package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/game"
)

// Console reads answers one line at a time. It implements game.Input and is
// used for --plain mode and for piped input.
type Console struct {
	in     io.Reader
	out    io.Writer
	prompt lipgloss.Style

	once      sync.Once
	closeOnce sync.Once
	lines     chan lineResult
	done      chan struct{}
}

type lineResult struct {
	line string
	err  error
}

// NewConsole creates a line reader over in that writes questions to out
func NewConsole(in io.Reader, out io.Writer, profile termenv.Profile) *Console {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)

	return &Console{
		in:     in,
		out:    out,
		prompt: NewStyles(r).Prompt,
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
	}
}

// Close stops the reader goroutine. A read already blocked on the
// underlying stream returns when that stream is closed or delivers a line.
func (c *Console) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// readLoop owns the reader so a cancelled Ask never leaves two goroutines
// reading the same stream.
func (c *Console) readLoop() {
	defer close(c.lines)

	reader := bufio.NewReader(c.in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" && !c.send(lineResult{line: line}) {
			return
		}
		if err != nil {
			c.send(lineResult{err: err})
			return
		}
	}
}

// send hands a result to Ask, giving up once the console is closed
func (c *Console) send(r lineResult) bool {
	select {
	case c.lines <- r:
		return true
	case <-c.done:
		return false
	}
}

// Ask writes the question and waits for a line of input. A closed input
// stream or a cancelled context both end the session with game.ErrQuit.
func (c *Console) Ask(ctx context.Context, p game.Prompt) (string, error) {
	if ctx.Err() != nil {
		return "", game.ErrQuit
	}
	select {
	case <-c.done:
		return "", game.ErrQuit
	default:
	}
	c.once.Do(func() { go c.readLoop() })

	fmt.Fprintf(c.out, "%s ", c.prompt.Render(p.Question))

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", game.ErrQuit
	case <-c.done:
		return "", game.ErrQuit
	case r, ok := <-c.lines:
		if !ok || r.err != nil {
			if r.err != nil && !errors.Is(r.err, io.EOF) {
				return "", fmt.Errorf("%w: %v", game.ErrQuit, r.err)
			}
			fmt.Fprintln(c.out)
			return "", game.ErrQuit
		}
		return strings.TrimRight(r.line, "\r\n"), nil
	}
}
