package ui

import "cydpanel/panel/touch"

// Classify maps a tap position to the target it hits in state st.
// A pending confirmation captures every tap.
func Classify(p touch.Point, st AppState) Target {
	if st.Dialog.Kind == DialogConfirming {
		switch {
		case YesRect.Contains(p.X, p.Y):
			return Target{Kind: TargetDialogYes}
		case NoRect.Contains(p.X, p.Y):
			return Target{Kind: TargetDialogNo}
		// The panel's outline pixels on the right and bottom still count
		// as the panel, so a tap on the border does not cancel.
		case DialogRect.ContainsClosed(p.X, p.Y):
			return Target{Kind: TargetBackground}
		default:
			return Target{Kind: TargetDialogOutside}
		}
	}

	if p.Y >= TabBarY {
		if p.X < TabW {
			return Target{Kind: TargetTabBar, Index: int(TabStatus)}
		}
		return Target{Kind: TargetTabBar, Index: int(TabControls)}
	}

	if st.Tab == TabControls {
		for _, b := range Buttons {
			if b.Rect.Contains(p.X, p.Y) {
				return Target{Kind: TargetControl, Index: b.ID}
			}
		}
	}
	return Target{Kind: TargetBackground}
}
