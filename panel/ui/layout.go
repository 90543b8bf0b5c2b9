// Package ui holds the panel's screen geometry, hit testing and the
// interaction state machine.
package ui

// Surface size in landscape orientation.
const (
	ScreenW = 320
	ScreenH = 240
)

// Tab bar along the bottom edge, split into two equal halves.
const (
	TabBarH = 36
	TabBarY = ScreenH - TabBarH
	TabW    = ScreenW / 2
)

// ContentH is the height above the tab bar.
const ContentH = ScreenH - TabBarH

// Rect is a half-open rectangle [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContainsClosed is Contains with the right and bottom edges included.
func (r Rect) ContainsClosed(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the middle pixel of r.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RGB565 colors used by the layout.
const (
	ColorOrange uint16 = 0xFC00
	ColorRed    uint16 = 0xD000
	ColorDkRed  uint16 = 0x8000
	ColorGreen  uint16 = 0x0640
	ColorYellow uint16 = 0xF5A0
)

// ButtonSpec is one control on the Controls tab. ID equals its index.
type ButtonSpec struct {
	ID     int
	Rect   Rect
	Label  string
	Action string
	Color  uint16
}

const (
	buttonW   = 148
	buttonH   = 42
	buttonPad = 8
	buttonX1  = 4
	buttonX2  = 168
	buttonY0  = 6
)

func buttonRect(col, row int) Rect {
	x := buttonX1
	if col == 1 {
		x = buttonX2
	}
	return Rect{X: x, Y: buttonY0 + row*(buttonH+buttonPad), W: buttonW, H: buttonH}
}

// NumButtons is the size of the control grid.
const NumButtons = 7

// Buttons is the control grid in display order.
var Buttons = [NumButtons]ButtonSpec{
	{ID: 0, Rect: buttonRect(0, 0), Label: "Reset Net", Action: "reset_network", Color: ColorOrange},
	{ID: 1, Rect: buttonRect(1, 0), Label: "FW Strict", Action: "fw_strict", Color: ColorRed},
	{ID: 2, Rect: buttonRect(0, 1), Label: "FW Maint", Action: "fw_maint", Color: ColorYellow},
	{ID: 3, Rect: buttonRect(1, 1), Label: "Start SMB", Action: "start_smb", Color: ColorGreen},
	{ID: 4, Rect: buttonRect(0, 2), Label: "Stop SMB", Action: "stop_smb", Color: ColorRed},
	{ID: 5, Rect: buttonRect(1, 2), Label: "Reboot", Action: "reboot", Color: ColorOrange},
	{ID: 6, Rect: buttonRect(0, 3), Label: "Shutdown", Action: "shutdown", Color: ColorDkRed},
}

// Confirmation dialog geometry.
var (
	DialogRect = Rect{X: (ScreenW - 280) / 2, Y: (ScreenH-140)/2 - 10, W: 280, H: 140}
	YesRect    = Rect{X: DialogRect.X + 20, Y: DialogRect.Y + DialogRect.H - 40 - 12, W: 110, H: 40}
	NoRect     = Rect{X: DialogRect.X + DialogRect.W - 110 - 20, Y: YesRect.Y, W: 110, H: 40}
	ToastRect  = Rect{X: (ScreenW - 180) / 2, Y: (ScreenH - 36) / 2, W: 180, H: 36}
)

// TabRect returns the tab bar half for tab t.
func TabRect(t Tab) Rect {
	return Rect{X: int(t) * TabW, Y: TabBarY, W: TabW, H: TabBarH}
}
