package ui

import "time"

// DefaultFeedback is how long the "Sent!" toast stays up.
const DefaultFeedback = 1500 * time.Millisecond

// Machine carries the timing parameters of the transition function.
type Machine struct {
	Feedback time.Duration
}

// Step applies Machine{DefaultFeedback}.
func Step(st AppState, ev Event, now time.Duration) (AppState, []Effect) {
	return Machine{Feedback: DefaultFeedback}.Step(st, ev, now)
}

// Step returns the next state and the effects the caller must perform, in
// order. Combinations without a rule return st unchanged and no effects.
func (m Machine) Step(st AppState, ev Event, now time.Duration) (AppState, []Effect) {
	switch ev.Kind {
	case EventTelemetry:
		if st.Tab == TabStatus {
			return st, []Effect{Redraw(RegionStatus)}
		}
		return st, nil
	case EventTick:
		return m.tick(st, now)
	case EventTap:
		return m.tap(st, ev.Target, now)
	}
	return st, nil
}

func (m Machine) tick(st AppState, now time.Duration) (AppState, []Effect) {
	if st.Dialog.Kind != DialogShowingSent {
		return st, nil
	}
	feedback := m.Feedback
	if feedback <= 0 {
		feedback = DefaultFeedback
	}
	if now-st.Dialog.Since <= feedback {
		return st, nil
	}
	st.Dialog = Dialog{Kind: DialogNone}
	return st, []Effect{Redraw(RegionFull)}
}

func (m Machine) tap(st AppState, t Target, now time.Duration) (AppState, []Effect) {
	switch st.Dialog.Kind {
	case DialogNone:
		switch t.Kind {
		case TargetTabBar:
			tab := Tab(t.Index)
			if (tab != TabStatus && tab != TabControls) || tab == st.Tab {
				return st, nil
			}
			st.Tab = tab
			return st, []Effect{Redraw(RegionFull)}
		case TargetControl:
			if st.Tab != TabControls || t.Index < 0 || t.Index >= NumButtons {
				return st, nil
			}
			st.Dialog = Dialog{Kind: DialogConfirming, Button: t.Index}
			return st, []Effect{Redraw(RegionDialog)}
		}

	case DialogConfirming:
		switch t.Kind {
		case TargetDialogYes:
			b := st.Dialog.Button
			if b < 0 || b >= NumButtons {
				st.Dialog = Dialog{Kind: DialogNone}
				return st, []Effect{Redraw(RegionFull)}
			}
			st.Dialog = Dialog{Kind: DialogShowingSent, Since: now}
			return st, []Effect{Transmit(Buttons[b].Action), Redraw(RegionOverlay)}
		case TargetDialogNo, TargetDialogOutside:
			st.Dialog = Dialog{Kind: DialogNone}
			return st, []Effect{Redraw(RegionFull)}
		}
	}
	return st, nil
}
