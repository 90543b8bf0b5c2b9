package ui

import (
	"reflect"
	"testing"
	"time"

	"cydpanel/panel/touch"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestStepScenarios(t *testing.T) {
	// A: background tap on the status page.
	st := Initial()
	target := Classify(touch.Point{X: 10, Y: 10}, st)
	if target.Kind != TargetBackground {
		t.Fatalf("Classify(10,10) = %v, want background", target)
	}
	next, effects := Step(st, TapEvent(target), ms(1000))
	if next != st || len(effects) != 0 {
		t.Fatalf("Step(background) = %v %v, want no-op", next, effects)
	}

	// B: reboot button opens the confirmation.
	st = AppState{Tab: TabControls}
	x, y := Buttons[5].Rect.Center()
	next, effects = Step(st, TapEvent(Classify(touch.Point{X: x, Y: y}, st)), ms(2000))
	want := AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogConfirming, Button: 5}}
	if next != want {
		t.Fatalf("Step(reboot) = %v, want %v", next, want)
	}
	if !reflect.DeepEqual(effects, []Effect{Redraw(RegionDialog)}) {
		t.Fatalf("Step(reboot) effects = %v", effects)
	}

	// C: yes sends the command and shows the toast.
	st = next
	x, y = YesRect.Center()
	next, effects = Step(st, TapEvent(Classify(touch.Point{X: x, Y: y}, st)), ms(3000))
	want = AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogShowingSent, Since: ms(3000)}}
	if next != want {
		t.Fatalf("Step(yes) = %v, want %v", next, want)
	}
	if !reflect.DeepEqual(effects, []Effect{Transmit("reboot"), Redraw(RegionOverlay)}) {
		t.Fatalf("Step(yes) effects = %v", effects)
	}

	// D: the toast clears itself after the feedback period.
	st = next
	if again, effects := Step(st, TickEvent(), ms(4500)); again != st || effects != nil {
		t.Fatalf("Step(tick at exactly 1500ms) = %v %v, want no-op", again, effects)
	}
	next, effects = Step(st, TickEvent(), ms(4600))
	if next != (AppState{Tab: TabControls}) {
		t.Fatalf("Step(tick) = %v, want controls/none", next)
	}
	if !reflect.DeepEqual(effects, []Effect{Redraw(RegionFull)}) {
		t.Fatalf("Step(tick) effects = %v", effects)
	}
}

func TestStepTabs(t *testing.T) {
	st := Initial()
	next, effects := Step(st, TapEvent(Target{Kind: TargetTabBar, Index: 0}), 0)
	if next != st || effects != nil {
		t.Fatalf("Step(same tab) = %v %v", next, effects)
	}
	next, effects = Step(st, TapEvent(Target{Kind: TargetTabBar, Index: 1}), 0)
	if next.Tab != TabControls || !reflect.DeepEqual(effects, []Effect{Redraw(RegionFull)}) {
		t.Fatalf("Step(controls tab) = %v %v", next, effects)
	}
	next, effects = Step(next, TapEvent(Target{Kind: TargetTabBar, Index: 7}), 0)
	if next.Tab != TabControls || effects != nil {
		t.Fatalf("Step(bogus tab) = %v %v", next, effects)
	}
}

func TestStepCancel(t *testing.T) {
	st := AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogConfirming, Button: 2}}
	for _, k := range []TargetKind{TargetDialogNo, TargetDialogOutside} {
		next, effects := Step(st, TapEvent(Target{Kind: k}), ms(10))
		if next != (AppState{Tab: TabControls}) {
			t.Fatalf("Step(%v) = %v", Target{Kind: k}, next)
		}
		if !reflect.DeepEqual(effects, []Effect{Redraw(RegionFull)}) {
			t.Fatalf("Step(%v) effects = %v", Target{Kind: k}, effects)
		}
	}
}

func TestStepTelemetry(t *testing.T) {
	next, effects := Step(Initial(), TelemetryEvent(), 0)
	if next != Initial() || !reflect.DeepEqual(effects, []Effect{Redraw(RegionStatus)}) {
		t.Fatalf("Step(telemetry on status) = %v %v", next, effects)
	}
	st := AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogConfirming, Button: 1}}
	next, effects = Step(st, TelemetryEvent(), 0)
	if next != st || effects != nil {
		t.Fatalf("Step(telemetry on controls) = %v %v", next, effects)
	}
}

func TestStepShowingSentIgnoresTaps(t *testing.T) {
	st := AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogShowingSent, Since: ms(100)}}
	for _, tgt := range allTargets() {
		next, effects := Step(st, TapEvent(tgt), ms(200))
		if next != st || effects != nil {
			t.Fatalf("Step(sent, %v) = %v %v", tgt, next, effects)
		}
	}
}

func allTargets() []Target {
	ts := []Target{
		{Kind: TargetBackground},
		{Kind: TargetTabBar, Index: 0},
		{Kind: TargetTabBar, Index: 1},
		{Kind: TargetDialogYes},
		{Kind: TargetDialogNo},
		{Kind: TargetDialogOutside},
	}
	for i := 0; i < NumButtons; i++ {
		ts = append(ts, Target{Kind: TargetControl, Index: i})
	}
	return ts
}

func TestStepIsTotal(t *testing.T) {
	states := []AppState{Initial(), {Tab: TabControls}}
	for b := 0; b < NumButtons; b++ {
		states = append(states, AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogConfirming, Button: b}})
	}
	states = append(states, AppState{Tab: TabControls, Dialog: Dialog{Kind: DialogShowingSent, Since: ms(50)}})

	var events []Event
	for _, tgt := range allTargets() {
		events = append(events, TapEvent(tgt))
	}
	events = append(events, TelemetryEvent(), TickEvent())

	for _, st := range states {
		for _, ev := range events {
			next, effects := Step(st, ev, ms(5000))
			if next.Dialog.Kind == DialogConfirming && (next.Dialog.Button < 0 || next.Dialog.Button >= NumButtons) {
				t.Fatalf("Step(%v, %+v) = %v: button out of range", st, ev, next)
			}
			if st.Dialog.Kind == DialogShowingSent && ev.Kind == EventTap && next != st {
				t.Fatalf("Step(%v, %+v) left the toast early", st, ev)
			}
			for _, e := range effects {
				if e.Kind == EffectTransmit && e.Command.Action != Buttons[st.Dialog.Button].Action {
					t.Fatalf("Step(%v, %+v) sent %q", st, ev, e.Command.Action)
				}
			}
		}
	}
}
