// Package part describes the header parts the factory can generate and the
// configuration tables shared by every generation stage.
package part

import (
	"fmt"
	"strings"
)

// Kind is the part family.
type Kind string

const (
	MaleHeader   Kind = "male-header"
	FemaleHeader Kind = "female-header"
)

// Mount is the PCB mounting technology.
type Mount string

const (
	THT Mount = "tht" // through hole: copper0 and copper1
	SMD Mount = "smd" // surface mount: copper1 only
)

// Pad is the PCB pad shape.
type Pad string

const (
	Circle    Pad = "circle"    // THT only
	Oblong    Pad = "oblong"    // THT only
	Rectangle Pad = "rectangle" // SMD only
)

// Order selects how connector numbers advance across the grid.
type Order string

const (
	// ByRow numbers every row position of a column before moving to the
	// next column.
	ByRow Order = "row"
	// ByColumn numbers every column position of a row before moving to the
	// next row.
	ByColumn Order = "column"
)

// View is one of the three Fritzing views.
type View string

const (
	Breadboard View = "breadboard"
	Schematic  View = "schematic"
	PCB        View = "pcb"
)

// AllViews lists the views in generation order.
var AllViews = []View{Breadboard, Schematic, PCB}

// Spec is a validated, immutable part description.
type Spec struct {
	Kind    Kind
	Rows    int
	Columns int
	Pitch   float64 // multiples of the 0.5mm base pitch
	Mount   Mount
	Pad     Pad
	Order   Order
	Color   string // #rrggbb
	Version int
}

// Pins returns the number of pins in the grid.
func (s Spec) Pins() int {
	return s.Rows * s.Columns
}

// Normalized returns a copy of s with derived fields settled. Single-column
// parts have nothing to number across, so their order is always ByRow.
func (s Spec) Normalized() Spec {
	if s.Columns == 1 {
		s.Order = ByRow
	}
	return s
}

// String gives a short human-readable summary.
func (s Spec) String() string {
	return fmt.Sprintf("%s %dx%d pitch %g %s %s %s %s v%d",
		s.Kind, s.Rows, s.Columns, s.Pitch, s.Mount, s.Pad, s.Order, s.Color, s.Version)
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case MaleHeader, FemaleHeader:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown part kind %q", ErrInvalidSpec, s)
}

// ParseMount converts a string to a Mount.
func ParseMount(s string) (Mount, error) {
	switch m := Mount(strings.ToLower(strings.TrimSpace(s))); m {
	case THT, SMD:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mount type %q", ErrInvalidSpec, s)
}

// ParsePad converts a string to a Pad.
func ParsePad(s string) (Pad, error) {
	switch p := Pad(strings.ToLower(strings.TrimSpace(s))); p {
	case Circle, Oblong, Rectangle:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown pad type %q", ErrInvalidSpec, s)
}

// ParseOrder converts a string to an Order.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case ByRow, ByColumn:
		return o, nil
	}
	return "", fmt.Errorf("%w: unknown pin order %q", ErrInvalidSpec, s)
}

// ParseView converts a string to a View.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case Breadboard, Schematic, PCB:
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown view %q", ErrInvalidSpec, s)
}
