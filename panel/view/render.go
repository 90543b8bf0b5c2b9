package view

import (
	"fmt"
	"image/color"

	"cydpanel/internal/mathx"
	"cydpanel/panel/link"
	"cydpanel/panel/ui"

	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// Palette, RGB565.
const (
	ColorBG          uint16 = 0x1082
	ColorText        uint16 = 0xFFFF
	ColorDim         uint16 = 0x8410
	ColorAccent      uint16 = 0x04FF
	ColorBarBG       uint16 = 0x2945
	ColorCPU         uint16 = 0x07E0
	ColorRAM         uint16 = 0x051F
	ColorDisk        uint16 = 0xFBE0
	ColorTempOK      uint16 = 0x07E0
	ColorTempWarn    uint16 = 0xFD20
	ColorTempHot     uint16 = 0xF800
	ColorTabInactive uint16 = 0x3186
	ColorBackdrop    uint16 = 0x0841
	ColorBlack       uint16 = 0x0000
)

// Temperature bands in degrees C. A reading strictly above a band uses
// its color.
const (
	TempWarn = 55
	TempHot  = 70
)

// WaitingText is shown on the status page until telemetry arrives.
const WaitingText = "Waiting for host..."

var (
	small = face{font: &proggy.TinySZ8pt7b, ascent: 10}
	label = face{font: &freesans.Bold9pt7b, ascent: 13}
	large = face{font: &freesans.Bold12pt7b, ascent: 17}
)

// Renderer draws AppState and telemetry. It holds no interaction state.
type Renderer struct {
	c Canvas
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{c: c}
}

// Draw repaints region and pushes the result to the display.
func (r *Renderer) Draw(region ui.Region, st ui.AppState, snap link.Snapshot) error {
	var err error
	switch region {
	case ui.RegionFull:
		err = r.full(st, snap)
	case ui.RegionDialog:
		err = r.dialog(st)
	case ui.RegionOverlay:
		err = r.toast()
	case ui.RegionStatus:
		if st.Tab == ui.TabStatus {
			err = r.status(snap)
		}
	default:
		return fmt.Errorf("view: unknown region %v", region)
	}
	if err != nil {
		return err
	}
	return r.c.Display()
}

func (r *Renderer) full(st ui.AppState, snap link.Snapshot) error {
	if err := r.tabBar(st.Tab); err != nil {
		return err
	}
	var err error
	if st.Tab == ui.TabStatus {
		err = r.status(snap)
	} else {
		err = r.controls()
	}
	if err != nil {
		return err
	}
	switch st.Dialog.Kind {
	case ui.DialogConfirming:
		return r.dialog(st)
	case ui.DialogShowingSent:
		return r.toast()
	}
	return nil
}

func (r *Renderer) tabBar(active ui.Tab) error {
	names := [2]string{"STATUS", "CONTROL"}
	for i, name := range names {
		t := ui.Tab(i)
		rect := ui.TabRect(t)
		bg := ColorTabInactive
		if t == active {
			bg = ColorAccent
		}
		if err := fill(r.c, rect.X, rect.Y, rect.W, rect.H, RGBA(bg)); err != nil {
			return err
		}
		label.writeCentered(r.c, int16(rect.X), int16(rect.Y+10), int16(rect.W), name, RGBA(ColorText))
	}
	return fill(r.c, ui.TabW, ui.TabBarY, 1, ui.TabBarH, RGBA(ColorBG))
}

func (r *Renderer) status(snap link.Snapshot) error {
	if err := fill(r.c, 0, 0, ui.ScreenW, ui.ContentH, RGBA(ColorBG)); err != nil {
		return err
	}
	if !snap.Received {
		large.writeCentered(r.c, 0, 80, ui.ScreenW, WaitingText, RGBA(ColorDim))
		return nil
	}

	const (
		labelX = 4
		barX   = 52
		barW   = 200
		barH   = 16
		valX   = 258
	)
	y := 4

	meter := func(name string, pct float64, col uint16) error {
		small.write(r.c, labelX, int16(y+3), name, RGBA(col))
		if err := bar(r.c, barX, y, barW, barH, pct, RGBA(col)); err != nil {
			return err
		}
		small.write(r.c, valX, int16(y+3), fmt.Sprintf("%.0f%%", pct), RGBA(ColorText))
		return nil
	}

	if err := meter("CPU", snap.CPU, ColorCPU); err != nil {
		return err
	}
	y += 24

	if err := meter("RAM", snap.RAM.Percent, ColorRAM); err != nil {
		return err
	}
	y += 18
	small.write(r.c, barX, int16(y), fmt.Sprintf("%d / %d MB", snap.RAM.Used, snap.RAM.Total), RGBA(ColorDim))
	y += 18

	if err := meter("DSK", snap.Disk.Percent, ColorDisk); err != nil {
		return err
	}
	y += 18
	small.write(r.c, barX, int16(y), fmt.Sprintf("%d / %d GB", snap.Disk.Used, snap.Disk.Total), RGBA(ColorDim))
	y += 22

	large.write(r.c, labelX, int16(y), fmt.Sprintf("%.1f'C", snap.Temp), RGBA(TempColor(snap.Temp)))
	up := FormatUptime(snap.Uptime)
	large.write(r.c, int16(ui.ScreenW-int(large.width(up))-4), int16(y), up, RGBA(ColorDim))
	y += 30

	if err := fill(r.c, 4, y, ui.ScreenW-8, 1, RGBA(ColorTabInactive)); err != nil {
		return err
	}
	y += 8

	addr := func(x int, name, value string) {
		small.write(r.c, int16(x), int16(y), name, RGBA(ColorAccent))
		small.write(r.c, int16(x)+small.width(name), int16(y), value, RGBA(ColorText))
	}
	addr(labelX, "AP ", snap.Net.Primary)
	addr(ui.ScreenW/2, "WAN ", snap.Net.Secondary)
	return nil
}

// TempColor picks the temperature color band.
func TempColor(c float64) uint16 {
	switch {
	case c > TempHot:
		return ColorTempHot
	case c > TempWarn:
		return ColorTempWarn
	default:
		return ColorTempOK
	}
}

// FormatUptime renders seconds as "UP <h>h<m>m".
func FormatUptime(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("UP %dh%dm", secs/3600, (secs%3600)/60)
}

// BarFill is the filled width of a w-pixel bar at pct percent.
func BarFill(w int, pct float64) int {
	inner := w - 2
	if inner <= 0 {
		return 0
	}
	return mathx.Clamp(int(float64(inner)*pct/100), 0, inner)
}

func bar(c Canvas, x, y, w, h int, pct float64, col color.RGBA) error {
	if err := fill(c, x, y, w, h, RGBA(ColorBarBG)); err != nil {
		return err
	}
	return fill(c, x+1, y+1, BarFill(w, pct), h-2, col)
}

func (r *Renderer) controls() error {
	if err := fill(r.c, 0, 0, ui.ScreenW, ui.ContentH, RGBA(ColorBG)); err != nil {
		return err
	}
	for _, b := range ui.Buttons {
		if err := button(r.c, b.Rect, b.Label, RGBA(b.Color)); err != nil {
			return err
		}
	}
	return nil
}

func button(c Canvas, rect ui.Rect, text string, col color.RGBA) error {
	if err := fill(c, rect.X, rect.Y, rect.W, rect.H, col); err != nil {
		return err
	}
	top := rect.Y + (rect.H-int(label.ascent))/2
	label.writeCentered(c, int16(rect.X), int16(top), int16(rect.W), text, RGBA(ColorText))
	return nil
}

func (r *Renderer) dialog(st ui.AppState) error {
	if st.Dialog.Kind != ui.DialogConfirming {
		return nil
	}
	b := st.Dialog.Button
	if b < 0 || b >= ui.NumButtons {
		return nil
	}
	d := ui.DialogRect

	if err := fill(r.c, 0, 0, ui.ScreenW, ui.ScreenH, RGBA(ColorBackdrop)); err != nil {
		return err
	}
	if err := fill(r.c, d.X, d.Y, d.W, d.H, RGBA(ColorBarBG)); err != nil {
		return err
	}
	if err := outline(r.c, d.X, d.Y, d.W, d.H, RGBA(ColorAccent)); err != nil {
		return err
	}
	large.writeCentered(r.c, int16(d.X), int16(d.Y+14), int16(d.W), "Confirm?", RGBA(ColorText))
	large.writeCentered(r.c, int16(d.X), int16(d.Y+48), int16(d.W), ui.Buttons[b].Label, RGBA(ColorAccent))

	if err := button(r.c, ui.YesRect, "YES", RGBA(ui.ColorGreen)); err != nil {
		return err
	}
	return button(r.c, ui.NoRect, "NO", RGBA(ui.ColorRed))
}

func (r *Renderer) toast() error {
	t := ui.ToastRect
	if err := fill(r.c, t.X, t.Y, t.W, t.H, RGBA(ColorAccent)); err != nil {
		return err
	}
	large.writeCentered(r.c, int16(t.X), int16(t.Y+8), int16(t.W), "Sent!", RGBA(ColorBlack))
	return nil
}
