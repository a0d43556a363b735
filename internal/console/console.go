// Package console reads one line per prompt and writes dialogue text. A line
// is the unit of input: whatever the user typed before pressing enter is
// handed over whole, so a rejected line never leaves leftovers behind.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type Console struct {
	r *bufio.Reader
	w io.Writer

	start sync.Once
	lines chan string
	// readErr is set before lines is closed.
	readErr error
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{r: bufio.NewReader(r), w: w, lines: make(chan string)}
}

// Writer exposes the output stream for renderers.
func (c *Console) Writer() io.Writer {
	return c.w
}

// Prompt writes prompt (if any) and returns the next line without its line
// terminator. A final line without a newline is still returned; io.EOF is
// reported only once nothing is left.
//
// A blocked read does not hold Prompt: when ctx is done it returns ctx.Err()
// and the pending line, if one arrives, is handed to the next call.
func (c *Console) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		if _, err := io.WriteString(c.w, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	c.start.Do(func() { go c.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.readErr
		}
		return line, nil
	}
}

// readLines feeds c.lines until the reader fails, then closes it.
func (c *Console) readLines() {
	for {
		line, err := c.r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			c.readErr = err
			close(c.lines)
			return
		}
		line = strings.TrimSuffix(line, "\n")
		c.lines <- strings.TrimSuffix(line, "\r")
	}
}

func (c *Console) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.w, format, args...)
	return err
}

func (c *Console) Println(s string) error {
	_, err := io.WriteString(c.w, s+"\n")
	return err
}
