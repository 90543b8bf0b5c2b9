package link

import "errors"

// MaxLine is the longest line accepted from the serial port.
const MaxLine = 512

var ErrLineTooLong = errors.New("link: line too long")

// LineBuffer assembles bytes into lines with a fixed upper bound. A line
// that outgrows the bound is dropped and everything up to the next newline
// is discarded.
type LineBuffer struct {
	buf        []byte
	limit      int
	discarding bool
	overflows  int
}

// NewLineBuffer returns a buffer for lines of at most limit bytes. A limit
// <= 0 selects MaxLine.
func NewLineBuffer(limit int) *LineBuffer {
	if limit <= 0 {
		limit = MaxLine
	}
	return &LineBuffer{buf: make([]byte, 0, limit), limit: limit}
}

// Push adds one byte. It returns a complete, non-empty line when c ends
// one; the slice is only valid until the next Push. ErrLineTooLong is
// returned once, on the byte that overflowed.
func (b *LineBuffer) Push(c byte) ([]byte, error) {
	switch {
	case c == '\n':
		if b.discarding {
			b.discarding = false
			b.buf = b.buf[:0]
			return nil, nil
		}
		if len(b.buf) == 0 {
			return nil, nil
		}
		line := b.buf
		b.buf = b.buf[:0]
		return line, nil
	case c == '\r':
		return nil, nil
	case b.discarding:
		return nil, nil
	}

	if len(b.buf) >= b.limit {
		b.buf = b.buf[:0]
		b.discarding = true
		b.overflows++
		return nil, ErrLineTooLong
	}
	b.buf = append(b.buf, c)
	return nil, nil
}

// Len is the number of bytes pending.
func (b *LineBuffer) Len() int { return len(b.buf) }

// Overflows counts lines dropped for length.
func (b *LineBuffer) Overflows() int { return b.overflows }

// Reset drops any partial line.
func (b *LineBuffer) Reset() {
	b.buf = b.buf[:0]
	b.discarding = false
}
