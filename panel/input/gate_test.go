package input

import (
	"testing"
	"time"

	"cydpanel/panel/touch"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestGateDebounce(t *testing.T) {
	g := NewGate(DefaultWindow, touch.DefaultCalibration(320, 240))
	s := touch.RawSample{Z: 900, X: 2000, Y: 2000}

	steps := []struct {
		at       int
		present  bool
		want     bool
		wantLast int
	}{
		{at: 100, present: true, want: false, wantLast: 0},
		{at: 300, present: true, want: false, wantLast: 0},
		{at: 301, present: true, want: true, wantLast: 301},
		{at: 500, present: true, want: false, wantLast: 301},
		{at: 601, present: true, want: false, wantLast: 301},
		{at: 650, present: false, want: false, wantLast: 301},
		{at: 902, present: true, want: true, wantLast: 902},
		{at: 2000, present: false, want: false, wantLast: 902},
		{at: 2001, present: true, want: true, wantLast: 2001},
	}
	for _, st := range steps {
		tap, ok := g.OnSample(s, st.present, ms(st.at))
		if ok != st.want {
			t.Fatalf("OnSample(at=%dms) ok = %v, want %v", st.at, ok, st.want)
		}
		if g.LastAccepted() != ms(st.wantLast) {
			t.Fatalf("LastAccepted() after %dms = %v, want %v", st.at, g.LastAccepted(), ms(st.wantLast))
		}
		if ok && (tap.At != ms(st.at) || tap.Point != (touch.Point{X: 159, Y: 119})) {
			t.Fatalf("OnSample(at=%dms) = %+v", st.at, tap)
		}
	}
}

func TestGateAcceptedTapsAreSpaced(t *testing.T) {
	g := NewGate(0, touch.DefaultCalibration(320, 240))
	var prev time.Duration
	var seen bool
	for now := ms(0); now < 5*time.Second; now += 7 * time.Millisecond {
		tap, ok := g.OnSample(touch.RawSample{Z: 500}, true, now)
		if !ok {
			continue
		}
		if seen && tap.At-prev <= DefaultWindow {
			t.Fatalf("taps at %v and %v closer than window", prev, tap.At)
		}
		prev, seen = tap.At, true
	}
	if !seen {
		t.Fatal("no taps accepted")
	}
}
