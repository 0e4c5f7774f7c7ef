package cwriter

import (
	"bytes"
	"errors"
	"io"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen = "\x1b["
	cuu     = "A"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// Writer rewrites a single status line of the underlying io.Writer.
// Lines are carriage-return prefixed and padded with spaces, so a
// shorter line fully erases a longer previous one without relying on
// terminal escape sequences. Lines with position > 0 are drawn that
// many rows below the cursor, which is restored afterwards.
//
// The first failed write puts Writer into a broken state: the error is
// returned once, every subsequent call is a no-op returning nil.
type Writer struct {
	out       io.Writer
	buf       bytes.Buffer
	fd        int
	terminal  bool
	lastWidth int
	err       error
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{out: out, fd: -1}
	if f, ok := out.(fdWriter); ok {
		w.fd = int(f.Fd())
		w.terminal = IsTerminal(w.fd)
	}
	return w
}

// IsTerminal reports whether underlying writer is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}

// GetWidth returns width of underlying terminal.
func (w *Writer) GetWidth() (int, error) {
	if !w.terminal {
		return -1, ErrNotTTY
	}
	tw, _, err := GetSize(w.fd)
	return tw, err
}

// Err returns the write error which broke the writer, if any.
func (w *Writer) Err() error {
	return w.err
}

// WriteLine replaces previously written line with line. The width is
// the display width of line, used to pad over leftovers of a wider
// previous line.
func (w *Writer) WriteLine(line string, width, position int) error {
	if w.err != nil {
		return nil
	}
	w.buf.Reset()
	w.moveDown(position)
	w.buf.WriteByte('\r')
	w.buf.WriteString(line)
	w.pad(w.lastWidth - width)
	w.moveUp(position)
	w.lastWidth = width
	return w.flush()
}

// Finalize terminates the line. With leave the line stays as is and,
// on position zero, the cursor moves to the next line. Without leave
// the line is blanked out.
func (w *Writer) Finalize(position int, leave bool) error {
	if w.err != nil {
		return nil
	}
	w.buf.Reset()
	switch {
	case leave && position == 0:
		w.buf.WriteByte('\n')
	case leave:
		return nil
	default:
		w.moveDown(position)
		w.buf.WriteByte('\r')
		w.pad(w.lastWidth)
		w.buf.WriteByte('\r')
		w.moveUp(position)
	}
	w.lastWidth = 0
	return w.flush()
}

func (w *Writer) flush() error {
	if _, err := w.out.Write(w.buf.Bytes()); err != nil {
		w.err = err
		return err
	}
	return nil
}

func (w *Writer) pad(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(' ')
	}
}

func (w *Writer) moveDown(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte('\n')
	}
}

func (w *Writer) moveUp(n int) {
	if n < 1 {
		return
	}
	var esc [16]byte
	b := strconv.AppendInt(append(esc[:0], escOpen...), int64(n), 10)
	w.buf.Write(append(b, cuu...))
}
