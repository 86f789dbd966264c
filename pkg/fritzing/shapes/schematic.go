package shapes

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
)

// Schematic male header, from svg.schematic.male_1_pin-0.1in_schematic.
// All pins share column 1; Pin.Row carries the vertical slot.

const schematicStroke = 1.9685

// PinNumber is the label printed next to the pin.
func PinNumber(t geom.Transform, p Pin) *svg.Element {
	c := column{t, p}
	return svg.NewElement("text").
		Set("id", "pintext"+strconv.Itoa(p.Connector)).
		Set("fill", "#555555").
		Set("stroke-width", 0).
		Set("text-anchor", "middle").
		Set("font-family", "'Droid Sans'").
		Set("font-size", c.s(6.9)).
		Set("x", c.x(15.4)).
		Set("y", c.y(6.9)).
		WithText(strconv.Itoa(p.Connector))
}

// ArrowLines are the three strokes of the male arrow head and shaft, in
// upper, middle, lower order.
func ArrowLines(t geom.Transform, p Pin) []*svg.Element {
	c := column{t, p}
	n := strconv.Itoa(p.Connector)

	line := func(id string, x1, x2, y1, y2 float64) *svg.Element {
		return svg.NewElement("line").
			Set("id", id).
			Set("fill", "none").
			Set("stroke", "#000000").
			Set("stroke-width", c.s(schematicStroke)).
			Set("stroke-linecap", "round").
			Set("x1", c.x(x1)).
			Set("x2", c.x(x2)).
			Set("y1", c.y(y1)).
			Set("y2", c.y(y2))
	}

	return []*svg.Element{
		line("pinline1-"+n, 38.36, 27.36, 9.8, 4.299),
		line("pinline2-"+n, 38.385, 20.699, 9.8425, 9.8425),
		line("pinline3-"+n, 38.36, 27.36, 9.799, 15),
	}
}

// SchematicPin is the connector line wires attach to.
func SchematicPin(t geom.Transform, p Pin) *svg.Element {
	c := column{t, p}
	return svg.NewElement("line").
		Set("id", ConnectorID(p.Connector, "pin")).
		Set("fill", "none").
		Set("stroke", "#555555").
		Set("stroke-width", c.s(schematicStroke)).
		Set("stroke-linecap", "round").
		Set("x1", c.x(1)).
		Set("x2", c.x(21.7)).
		Set("y1", c.y(9.85)).
		Set("y2", c.y(9.85))
}

// SchematicTerminal is the connection point at the outer end of the pin.
func SchematicTerminal(t geom.Transform, p Pin) *svg.Element {
	c := column{t, p}
	return svg.NewElement("rect").
		Set("id", ConnectorID(p.Connector, "terminal")).
		Set("fill", "#555555").
		Set("stroke", "none").
		Set("stroke-width", c.s(0)).
		Set("x", c.x(0.3)).
		Set("y", c.y(9.74)).
		Set("height", 1).
		Set("width", 1)
}
