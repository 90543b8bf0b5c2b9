//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"cydpanel/internal/mathx"

	"tinygo.org/x/drivers"
)

// hostFramebuffer is a little-endian RGB565 pixel buffer that implements
// Canvas. The window copies it out under the lock.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	pixel := rgb565From(c)
	off := iy*f.stride + ix*2

	f.mu.Lock()
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
	f.mu.Unlock()
}

func (f *hostFramebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := mathx.Clamp(int(x), 0, f.width)
	y0 := mathx.Clamp(int(y), 0, f.height)
	x1 := mathx.Clamp(int(x)+int(width), 0, f.width)
	y1 := mathx.Clamp(int(y)+int(height), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	f.mu.Lock()
	defer f.mu.Unlock()
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
	return nil
}

// Display is a no-op; the window reads the buffer on its own schedule.
func (f *hostFramebuffer) Display() error { return nil }

func (f *hostFramebuffer) SetScroll(line int16) {}

func (f *hostFramebuffer) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return ErrNotImplemented
	}
	return nil
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Canvas() Canvas { return d.fb }
