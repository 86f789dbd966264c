// Package shapes contains the per-view shape emitters for a single pin.
//
// Every emitter reproduces one element of a single-pin reference SVG drawn at
// the 0.5mm base pitch. Anchor points are moved to the pin's grid cell;
// everything else is only scaled, so the local geometry keeps its shape at
// any pitch. Element ids end in the connector number so every pin's shapes
// stay unique within a view.
package shapes

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
)

// Pin locates one pin for the emitters.
type Pin struct {
	Connector int // zero-based connector number
	Row       int // 1-based horizontal grid index (schematic: vertical slot)
	Column    int // 1-based vertical grid index
	Columns   int // number of columns, the size of the reversed axis
}

// ConnectorID is the id of the connector element of a view.
func ConnectorID(connector int, role string) string {
	return fmt.Sprintf("connector%d%s", connector, role)
}

// Emitted is the output of a pad emitter: decorative shapes and the
// connector shapes, kept apart so views can write connectors last.
type Emitted struct {
	Decor      []*svg.Element
	Connectors []*svg.Element
}

// grid places breadboard and PCB shapes: rows grow to the right and
// columns grow upward from the bottom edge.
type grid struct {
	t geom.Transform
	p Pin
}

func (g grid) x(v float64) geom.Coord { return g.t.Forward(v, g.p.Row) }
func (g grid) y(v float64) geom.Coord { return g.t.Reverse(v, g.p.Column, g.p.Columns) }
func (g grid) s(v float64) geom.Coord { return g.t.Scale(v) }

func (g grid) id(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, g.p.Connector)
}

// column places schematic shapes: every pin sits in column 1 and the slot
// number (carried in Row) moves it down.
type column struct {
	t geom.Transform
	p Pin
}

func (c column) x(v float64) geom.Coord { return c.t.Forward(v, c.p.Column) }
func (c column) y(v float64) geom.Coord { return c.t.Forward(v, c.p.Row) }
func (c column) s(v float64) geom.Coord { return c.t.Scale(v) }
