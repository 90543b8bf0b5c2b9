package ui

import (
	"fmt"
	"time"

	"cydpanel/panel/link"
)

// Tab selects the page shown above the tab bar.
type Tab uint8

const (
	TabStatus Tab = iota
	TabControls
)

func (t Tab) String() string {
	switch t {
	case TabStatus:
		return "status"
	case TabControls:
		return "controls"
	default:
		return fmt.Sprintf("tab(%d)", uint8(t))
	}
}

// DialogKind tags the Dialog sum type.
type DialogKind uint8

const (
	DialogNone DialogKind = iota
	DialogConfirming
	DialogShowingSent
)

func (k DialogKind) String() string {
	switch k {
	case DialogNone:
		return "none"
	case DialogConfirming:
		return "confirming"
	case DialogShowingSent:
		return "sent"
	default:
		return fmt.Sprintf("dialog(%d)", uint8(k))
	}
}

// Dialog is the overlay state. Button is meaningful only while
// Confirming, Since only while ShowingSent.
type Dialog struct {
	Kind   DialogKind
	Button int
	Since  time.Duration
}

// AppState is all mutable interaction state.
type AppState struct {
	Tab    Tab
	Dialog Dialog
}

// Initial is the state at power-on.
func Initial() AppState {
	return AppState{Tab: TabStatus, Dialog: Dialog{Kind: DialogNone}}
}

func (s AppState) String() string {
	switch s.Dialog.Kind {
	case DialogConfirming:
		return fmt.Sprintf("%s/confirming(%d)", s.Tab, s.Dialog.Button)
	case DialogShowingSent:
		return fmt.Sprintf("%s/sent(%v)", s.Tab, s.Dialog.Since)
	default:
		return s.Tab.String()
	}
}

// TargetKind tags what a tap landed on.
type TargetKind uint8

const (
	TargetBackground TargetKind = iota
	TargetTabBar
	TargetControl
	TargetDialogYes
	TargetDialogNo
	TargetDialogOutside
)

// Target is the result of hit testing. Index is the tab for TargetTabBar
// and the button ID for TargetControl.
type Target struct {
	Kind  TargetKind
	Index int
}

func (t Target) String() string {
	switch t.Kind {
	case TargetBackground:
		return "background"
	case TargetTabBar:
		return fmt.Sprintf("tab(%d)", t.Index)
	case TargetControl:
		return fmt.Sprintf("button(%d)", t.Index)
	case TargetDialogYes:
		return "yes"
	case TargetDialogNo:
		return "no"
	case TargetDialogOutside:
		return "outside"
	default:
		return fmt.Sprintf("target(%d)", uint8(t.Kind))
	}
}

// EventKind tags an input to Step.
type EventKind uint8

const (
	EventTap EventKind = iota
	EventTelemetry
	EventTick
)

// Event is one input to the state machine.
type Event struct {
	Kind   EventKind
	Target Target
}

func TapEvent(t Target) Event { return Event{Kind: EventTap, Target: t} }
func TelemetryEvent() Event   { return Event{Kind: EventTelemetry} }
func TickEvent() Event        { return Event{Kind: EventTick} }

// Region names the part of the screen a redraw covers.
type Region uint8

const (
	RegionFull Region = iota
	RegionDialog
	RegionOverlay
	RegionStatus
)

func (r Region) String() string {
	switch r {
	case RegionFull:
		return "full"
	case RegionDialog:
		return "dialog"
	case RegionOverlay:
		return "overlay"
	case RegionStatus:
		return "status"
	default:
		return fmt.Sprintf("region(%d)", uint8(r))
	}
}

// EffectKind tags an output of Step.
type EffectKind uint8

const (
	EffectRedraw EffectKind = iota
	EffectTransmit
)

// Effect is work the caller performs after a transition.
type Effect struct {
	Kind    EffectKind
	Region  Region
	Command link.Command
}

func Redraw(r Region) Effect { return Effect{Kind: EffectRedraw, Region: r} }

func Transmit(action string) Effect {
	return Effect{Kind: EffectTransmit, Command: link.Command{Action: action}}
}
