//go:build !tinygo && cgo

package hal

import (
	"image"

	"cydpanel/internal/buildinfo"
	"cydpanel/panel/touch"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows the framebuffer. The left
// mouse button (or a touchscreen finger) acts as the stylus. It blocks
// until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig) error {
	h, err := newHostHAL(cfg)
	if err != nil {
		return err
	}
	defer h.close()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(buildinfo.Name + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*2, h.fb.height*2)
	ebiten.SetTPS(100)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	touches []ebiten.TouchID
	step    func() error
}

func (g *hostGame) pointer() (touch.Point, bool) {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		return touch.Point{X: x, Y: y}, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return touch.Point{X: x, Y: y}, true
	}
	return touch.Point{}, false
}

func (g *hostGame) Update() error {
	if p, down := g.pointer(); down && p.X >= 0 && p.Y >= 0 && p.X < g.h.fb.width && p.Y < g.h.fb.height {
		g.h.emu.Press(p)
	} else {
		g.h.emu.Release()
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
