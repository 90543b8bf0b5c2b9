package app

import (
	"errors"
	"testing"
)

func TestLogKV(t *testing.T) {
	l := &fakeLogger{}
	logKV(l, "send", "action", "reboot", "n", 3, "err", errors.New("bus busy"), "msg", "")
	want := `# send action=reboot n=3 err="bus busy" msg=""`
	if len(l.lines) != 1 || l.lines[0] != want {
		t.Fatalf("logKV() = %q, want %q", l.lines, want)
	}
}
