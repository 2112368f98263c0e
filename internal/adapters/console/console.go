package console

import (
	"bufio"
	"io"
	"sync"
)

// Writer prints the simulation transcript, one entry per line.
type Writer struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func New(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }

// Println writes lines and flushes, so a batch reaches the terminal whole.
func (c *Writer) Println(lines ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range lines {
		if _, err := c.w.WriteString(l); err != nil {
			return err
		}
		if err := c.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return c.w.Flush()
}
