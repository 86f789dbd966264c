// Package geom maps template-local coordinates onto absolute drawing units.
//
// Every shape in the generated views is copied from a single-pin reference
// SVG drawn at the 0.5mm base pitch. A local value v is scaled by the part
// pitch and, for the anchor point of a shape, translated by the pin's grid
// index. Drawing units are 1/1000 inch.
package geom

import (
	"math"
	"strconv"
)

// UnitsPerPitch is the base 0.5mm pitch expressed in thousandths of an inch.
// One pitch step on the grid moves a pin by pitch*UnitsPerPitch drawing units.
const UnitsPerPitch = 19.6850

// ScaleOnly is the index sentinel that scales a value without translating
// it. Relative path coordinates and sizes use it so the local geometry grows
// with the pitch but is not re-positioned per point.
const ScaleOnly = 0

// precision is the number of fractional digits kept in every coordinate.
const precision = 4

// Coord is an absolute drawing-unit value, already rounded.
type Coord float64

// String renders the coordinate as a fixed-point decimal with at most four
// fractional digits.
func (c Coord) String() string {
	v := float64(c)
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Float returns the coordinate as a float64.
func (c Coord) Float() float64 {
	return float64(c)
}

// Round rounds v to the transformer's fixed precision.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// Transform converts local template coordinates for a single pitch.
type Transform struct {
	Pitch         float64 // pitch in base-pitch multiples (0.5mm == 1)
	UnitsPerPitch float64 // drawing units per pitch step
}

// NewTransform creates a transform for pitch using the default units per pitch.
func NewTransform(pitch float64) Transform {
	return Transform{Pitch: pitch, UnitsPerPitch: UnitsPerPitch}
}

// step is the drawing-unit distance between adjacent grid cells.
func (t Transform) step() float64 {
	return t.Pitch * t.UnitsPerPitch
}

// Scale scales v by the pitch without any grid offset.
func (t Transform) Scale(v float64) Coord {
	return Coord(Round(v*t.Pitch, precision))
}

// Forward scales v and moves it to grid index i (1-based), growing away
// from the origin as i increases.
func (t Transform) Forward(v float64, i int) Coord {
	if i == ScaleOnly {
		return t.Scale(v)
	}
	offset := t.step() * float64(i-1)
	return Coord(Round(v*t.Pitch+offset, precision))
}

// Reverse scales v and moves it to grid index i of n cells, counted from the
// far edge: index n sits at the origin and index 1 at the maximal offset.
// Breadboard and PCB views use it on the vertical axis so pin 0 stays at the
// bottom of the drawing whatever the column count.
func (t Transform) Reverse(v float64, i, n int) Coord {
	if i == ScaleOnly {
		return t.Scale(v)
	}
	offset := t.step() * float64(n-i)
	return Coord(Round(v*t.Pitch+offset, precision))
}
