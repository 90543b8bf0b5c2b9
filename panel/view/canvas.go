// Package view draws the panel pages onto any drivers display that can
// fill rectangles, such as ili9341.Device or the host framebuffer.
package view

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Canvas is the drawing surface the renderer needs.
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// RGBA expands an RGB565 color.
func RGBA(p uint16) color.RGBA {
	r := (p >> 11) & 0x1F
	g := (p >> 5) & 0x3F
	b := p & 0x1F
	return color.RGBA{
		R: uint8((r * 255) / 31),
		G: uint8((g * 255) / 63),
		B: uint8((b * 255) / 31),
		A: 0xFF,
	}
}

// face pairs a font with the distance from the top of a line to its
// baseline, since tinyfont positions text by baseline.
type face struct {
	font   tinyfont.Fonter
	ascent int16
}

func (f face) width(s string) int16 {
	w, _ := tinyfont.LineWidth(f.font, s)
	return int16(w)
}

func (f face) write(c Canvas, x, top int16, s string, col color.RGBA) {
	tinyfont.WriteLine(c, f.font, x, top+f.ascent, s, col)
}

func (f face) writeCentered(c Canvas, x, top, w int16, s string, col color.RGBA) {
	f.write(c, x+(w-f.width(s))/2, top, s, col)
}

func fill(c Canvas, x, y, w, h int, col color.RGBA) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	return c.FillRectangle(int16(x), int16(y), int16(w), int16(h), col)
}

func outline(c Canvas, x, y, w, h int, col color.RGBA) error {
	if err := fill(c, x, y, w, 1, col); err != nil {
		return err
	}
	if err := fill(c, x, y+h-1, w, 1, col); err != nil {
		return err
	}
	if err := fill(c, x, y, 1, h, col); err != nil {
		return err
	}
	return fill(c, x+w-1, y, 1, h, col)
}

// Crosshair draws a 21-pixel cross centered on (x, y).
func Crosshair(c Canvas, x, y int, col color.RGBA) error {
	if err := fill(c, x-10, y, 21, 1, col); err != nil {
		return err
	}
	return fill(c, x, y-10, 1, 21, col)
}

// Dot marks a touch point with a 5x5 square.
func Dot(c Canvas, x, y int, col color.RGBA) error {
	return fill(c, x-2, y-2, 5, 5, col)
}
