package touch

import "cydpanel/internal/mathx"

// Point is a position on the screen, always inside the surface.
type Point struct {
	X, Y int
}

// Calibration is the fixed raw-to-screen mapping for one panel. The panel is
// mounted so the controller's Y channel runs along the screen's X axis.
type Calibration struct {
	Width, Height    int
	RawYMin, RawYMax int // screen X
	RawXMin, RawXMax int // screen Y
}

// DefaultCalibration is the factory mapping of the 2.8" CYD panel.
func DefaultCalibration(width, height int) Calibration {
	return Calibration{
		Width:   width,
		Height:  height,
		RawYMin: 200,
		RawYMax: 3800,
		RawXMin: 300,
		RawXMax: 3700,
	}
}

// Map converts a raw sample to a clamped screen point.
func (c Calibration) Map(s RawSample) Point {
	x := mathx.Map(int(s.Y), c.RawYMin, c.RawYMax, 0, c.Width-1)
	y := mathx.Map(int(s.X), c.RawXMin, c.RawXMax, 0, c.Height-1)
	return Point{
		X: mathx.Clamp(x, 0, c.Width-1),
		Y: mathx.Clamp(y, 0, c.Height-1),
	}
}

// Unmap returns raw X/Y readings that Map turns back into p. Points outside
// the surface are clamped first.
func (c Calibration) Unmap(p Point) (rawX, rawY uint16) {
	px := mathx.Clamp(p.X, 0, c.Width-1)
	py := mathx.Clamp(p.Y, 0, c.Height-1)
	ry := inverse(px, c.RawYMin, c.RawYMax, c.Width-1)
	rx := inverse(py, c.RawXMin, c.RawXMax, c.Height-1)
	return uint16(mathx.Clamp(rx, 0, ADCMax)), uint16(mathx.Clamp(ry, 0, ADCMax))
}

func inverse(v, inMin, inMax, outMax int) int {
	if outMax <= 0 {
		return inMin
	}
	return mathx.CeilDiv(v*(inMax-inMin), outMax) + inMin
}
