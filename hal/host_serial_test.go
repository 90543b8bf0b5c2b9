//go:build !tinygo

package hal

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

func waitBuffered(t *testing.T, s *hostSerial, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Buffered() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Buffered() = %d, want %d", s.Buffered(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHostSerialNonBlocking(t *testing.T) {
	pr, pw := io.Pipe()
	var out bytes.Buffer
	s := newHostSerial(pr, &out, nil)

	if _, err := s.ReadByte(); !errors.Is(err, ErrNoData) {
		t.Fatalf("ReadByte() on empty = %v, want ErrNoData", err)
	}

	go pw.Write([]byte("ok\n"))
	waitBuffered(t, s, 3)

	var got []byte
	for s.Buffered() > 0 {
		c, err := s.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte: %v", err)
		}
		got = append(got, c)
	}
	if string(got) != "ok\n" {
		t.Fatalf("read %q, want %q", got, "ok\n")
	}

	if _, err := s.Write([]byte(`{"action":"reboot"}` + "\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out.String() != `{"action":"reboot"}`+"\n" {
		t.Fatalf("wrote %q", out.String())
	}
	pw.Close()
}

func TestHostSerialDropsWhenFull(t *testing.T) {
	s := newHostSerial(nil, io.Discard, nil)
	s.push(bytes.Repeat([]byte{'x'}, hostSerialBuffer+10))
	if s.Buffered() != hostSerialBuffer || s.Dropped() != 10 {
		t.Fatalf("Buffered() = %d Dropped() = %d", s.Buffered(), s.Dropped())
	}
}

func TestHostSerialReportsEOF(t *testing.T) {
	s := newHostSerial(bytes.NewReader([]byte("a")), io.Discard, nil)
	waitBuffered(t, s, 1)
	if c, err := s.ReadByte(); err != nil || c != 'a' {
		t.Fatalf("ReadByte() = %q, %v", c, err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		_, err := s.ReadByte()
		if errors.Is(err, io.EOF) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("ReadByte() = %v, want EOF", err)
		}
		time.Sleep(time.Millisecond)
	}
}
