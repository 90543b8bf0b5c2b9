package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"cydpanel/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// showFault logs a recovered panic and paints it on the display so a
// board without a serial console still shows why it stopped.
func showFault(h hal.HAL, v any) {
	stack := string(debug.Stack())
	logKV(h.Logger(), "panic", "value", fmt.Sprint(v))
	for _, line := range strings.Split(stack, "\n") {
		if line != "" {
			h.Logger().WriteLineString("# " + line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	c := disp.Canvas()
	if c == nil {
		return
	}
	w, ht := c.Size()
	_ = c.FillRectangle(0, 0, w, ht, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	font := &proggy.TinySZ8pt7b
	const lineH, ascent = int16(13), int16(10)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	cols := int16(60)
	if outboxWidth > 0 {
		cols = w / int16(outboxWidth)
	}
	if cols <= 0 {
		cols = 1
	}

	lines := []string{"Panel fault:", fmt.Sprintf("panic: %v", v), "stack:"}
	lines = append(lines, strings.Split(stack, "\n")...)

	fg := color.RGBA{A: 255}
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineH > ht {
				_ = c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(c, font, 0, y+ascent, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = c.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
