//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.bug.st/serial"
)

// ErrNoData is returned by ReadByte when nothing is buffered.
var ErrNoData = errors.New("serial: no data")

const hostSerialBuffer = 4096

// hostSerial adapts a blocking reader to the non-blocking Serial contract.
// A background goroutine fills a bounded FIFO; bytes that arrive while it
// is full are dropped and counted, as a UART RX buffer would.
type hostSerial struct {
	mu      sync.Mutex
	w       io.Writer
	fifo    []byte
	head    int
	n       int
	dropped int
	err     error
	closer  io.Closer
}

func newHostSerial(r io.Reader, w io.Writer, c io.Closer) *hostSerial {
	s := &hostSerial{w: w, fifo: make([]byte, hostSerialBuffer), closer: c}
	if r != nil {
		go s.pump(r)
	}
	return s
}

// openHostSerial selects the link: "" or "stdio" uses stdin/stdout, "none"
// is a disconnected link, anything else is a serial device or pty path.
func openHostSerial(name string, baud int) (*hostSerial, error) {
	switch name {
	case "", "stdio":
		return newHostSerial(os.Stdin, os.Stdout, nil), nil
	case "none":
		return newHostSerial(nil, io.Discard, nil), nil
	}
	if baud <= 0 {
		baud = 115200
	}
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", name, err)
	}
	return newHostSerial(port, port, port), nil
}

func (s *hostSerial) pump(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.push(buf[:n])
		}
		if err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			return
		}
	}
}

func (s *hostSerial) push(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range p {
		if s.n == len(s.fifo) {
			s.dropped++
			continue
		}
		s.fifo[(s.head+s.n)%len(s.fifo)] = c
		s.n++
	}
}

func (s *hostSerial) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

func (s *hostSerial) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.n == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, ErrNoData
	}
	c := s.fifo[s.head]
	s.head = (s.head + 1) % len(s.fifo)
	s.n--
	return c, nil
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Dropped reports bytes lost to a full FIFO.
func (s *hostSerial) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *hostSerial) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
