package shapes

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
)

const copper = "#ffbf00"

// ColumnRole is the position of a pin within its row of an oblong pad
// strip. Adjacent oblong pads along the column axis merge into one slot, so
// the end pads get rounded caps and the pads in between are bare rings.
type ColumnRole int

const (
	Single ColumnRole = iota // the only pin of a one-column part
	First                    // column 1 of several
	Middle                   // any column strictly between first and last
	Last                     // the final column
)

func (r ColumnRole) String() string {
	switch r {
	case Single:
		return "single"
	case First:
		return "first"
	case Middle:
		return "middle"
	case Last:
		return "last"
	}
	return fmt.Sprintf("ColumnRole(%d)", int(r))
}

// RoleOf returns the role of column (1-based) in a part with columns columns.
func RoleOf(column, columns int) ColumnRole {
	switch {
	case columns == 1:
		return Single
	case column == 1:
		return First
	case column == columns:
		return Last
	}
	return Middle
}

// PadEmitter draws the PCB pad of one pin.
type PadEmitter func(t geom.Transform, p Pin) Emitted

// Pad returns the emitter for a pad type. Oblong pads dispatch again on the
// pin's column role.
func Pad(pad part.Pad) (PadEmitter, error) {
	switch pad {
	case part.Circle:
		return CirclePad, nil
	case part.Oblong:
		return OblongPad, nil
	case part.Rectangle:
		return RectanglePad, nil
	}
	return nil, fmt.Errorf("%w: pad type %q", part.ErrUnimplemented, pad)
}

// CirclePad is a plain annular ring, from svg.pcb.circle_1_pin-0.1in_0.038hole.
func CirclePad(t geom.Transform, p Pin) Emitted {
	g := grid{t, p}
	ring := svg.NewElement("circle").
		WithIndent(5).
		Set("id", ConnectorID(p.Connector, "pin")).
		Set("fill", "none").
		Set("stroke", copper).
		Set("r", g.s(5.70866)).
		Set("stroke-width", g.s(3.937)).
		Set("cx", g.x(10.23)).
		Set("cy", g.y(12.89))

	return Emitted{Connectors: []*svg.Element{ring}}
}

// RectanglePad is the SMD landing pad.
func RectanglePad(t geom.Transform, p Pin) Emitted {
	g := grid{t, p}
	pad := svg.NewElement("rect").
		WithIndent(5).
		Set("id", ConnectorID(p.Connector, "pad")).
		Set("fill", copper).
		Set("stroke", "none").
		Set("stroke-width", 0).
		Set("x", g.x(4.5213)).
		Set("y", g.y(7.1813)).
		Set("width", g.s(11.4173)).
		Set("height", g.s(11.4173))

	return Emitted{Connectors: []*svg.Element{pad}}
}

// oblongShape is the geometry of one column role.
type oblongShape struct {
	outline     func(g grid) *svg.Path // nil for bare rings
	radius      float64
	strokeWidth float64
}

var oblongShapes = map[ColumnRole]oblongShape{
	Single: {outline: singleOutline, radius: 4.2, strokeWidth: 0.9},
	First:  {outline: firstOutline, radius: 4.2, strokeWidth: 0.9},
	Middle: {radius: 4.75, strokeWidth: 2},
	Last:   {outline: lastOutline, radius: 4.2, strokeWidth: 0.9},
}

// OblongPad draws a pad of the oblong strip, from
// svg.pcb.oblong_single-pin-0.1in_0.038hole.
func OblongPad(t geom.Transform, p Pin) Emitted {
	g := grid{t, p}
	shape := oblongShapes[RoleOf(p.Column, p.Columns)]

	var out Emitted
	if shape.outline != nil {
		out.Decor = append(out.Decor, svg.NewElement("path").
			Set("id", g.id("oblong")).
			Set("stroke-width", 0).
			Set("stroke", "none").
			Set("fill", copper).
			Set("d", shape.outline(g)))
	}

	ring := svg.NewElement("circle").
		WithIndent(5).
		Set("id", ConnectorID(p.Connector, "pin")).
		Set("fill", "#ffffff").
		Set("stroke", copper).
		Set("r", g.s(shape.radius)).
		Set("stroke-width", g.s(shape.strokeWidth)).
		Set("cx", g.x(11)).
		Set("cy", g.y(14))
	out.Connectors = append(out.Connectors, ring)

	return out
}

// singleOutline is the full stadium around a lone pin.
func singleOutline(g grid) *svg.Path {
	return svg.NewPath().
		Cmd("m", g.x(16.3), g.y(8.8)).
		Cmd("c",
			g.s(0), g.s(2.7), g.s(0), g.s(7.2), g.s(0), g.s(10),
			g.s(0), g.s(3.9), g.s(-2.6), g.s(5.4), g.s(-5.3), g.s(5.5),
			g.s(-2.6), g.s(0), g.s(-5.3), g.s(-1.5), g.s(-5.3), g.s(-5.5)).
		Cmd("v", g.s(-10.28)).
		Cmd("c",
			g.s(0), g.s(-3.1), g.s(2.6), g.s(-4.8), g.s(5.2), g.s(-4.8),
			g.s(2.7), g.s(0), g.s(5.3), g.s(1.5), g.s(5.4), g.s(4.9)).
		Close()
}

// capOutline is the rounded end cap shared by the first and last columns.
func capOutline(g grid, startY, closeX float64) *svg.Path {
	return svg.NewPath().
		Cmd("m", g.x(11), g.y(startY)).
		Cmd("c", g.s(3.2), g.s(0), g.s(5.9), g.s(2.6), g.s(5.9), g.s(4.9)).
		Cmd("v", g.s(8.3)).
		Cmd("c", g.s(0), g.s(2.3), g.s(-2.6), g.s(4.1), g.s(-5.9), g.s(4.1)).
		Cmd("v", g.s(0)).
		Cmd("c", g.s(-3.2), g.s(0), g.s(-5.9), g.s(-1.8), g.s(-5.9), g.s(-4.1)).
		Cmd("v", g.s(-8.4)).
		Cmd("c", g.s(0), g.s(-2.2), g.s(2.7), g.s(-4.8), g.s(closeX), g.s(-4.8)).
		Close()
}

func firstOutline(g grid) *svg.Path { return capOutline(g, 7.5, 5.9) }

func lastOutline(g grid) *svg.Path { return capOutline(g, 3.7, 5.86) }

// Silkscreen draws the part outline and the pin 0 marker of the PCB view.
func Silkscreen(t geom.Transform, rows, columns int) []*svg.Element {
	stroke := t.Scale(1.968)
	half := geom.Coord(geom.Round(stroke.Float()*0.5, 5))
	height := t.Forward(23.9, columns)

	outline := svg.NewElement("rect").
		Set("id", "rect").
		Set("stroke", "#000000").
		Set("fill", "none").
		Set("stroke-width", stroke).
		Set("x", t.Scale(0.984)).
		Set("y", t.Scale(0.984)).
		Set("height", height).
		Set("width", t.Forward(18.51, rows))

	marker := svg.NewElement("line").
		Set("id", "pin0marker").
		Set("stroke", "#000000").
		Set("stroke-width", half).
		Set("x2", half).
		Set("x1", t.Scale(5.19)).
		Set("y2", t.Reverse(20.66, 1, columns)).
		Set("y1", geom.Coord(geom.Round(height.Float()+half.Float(), 5)))

	return []*svg.Element{outline, marker}
}
