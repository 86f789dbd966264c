package shapes

import (
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
)

// Breadboard male header, from svg.breadboard.male_1_pin-0.1in-cons-lines.

// MaleOutline is the octagonal plastic body around one pin.
func MaleOutline(t geom.Transform, p Pin, color string) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("M", g.x(0), g.y(3.83)).
		Cmd("l", g.s(3.83), g.s(-3.83)).
		Cmd("h", g.s(12.1)).
		Cmd("l", g.s(3.83), g.s(3.83)).
		Cmd("v", g.s(0), g.s(12.1)).
		Cmd("l", g.s(-3.83), g.s(3.83)).
		Cmd("h", g.s(-12.1)).
		Cmd("l", g.s(-3.83), g.s(-3.83)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("outline")).
		Set("d", d).
		Set("fill", color).
		Set("stroke-width", 0)
}

// MalePinLeft is the left bevel of the square pin.
func MalePinLeft(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("M", g.x(6), g.y(6)).
		Cmd("l", g.s(2), g.s(2)).
		Cmd("v", g.s(4)).
		Cmd("l", g.s(-2), g.s(2)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pinleft")).
		Set("d", d).
		Set("fill", "#9a916c").
		Set("stroke-width", 0)
}

// MalePinTop is the top bevel of the square pin.
func MalePinTop(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("M", g.x(6), g.y(6)).
		Cmd("h", g.s(8)).
		Cmd("l", g.s(-2), g.s(2)).
		Cmd("h", g.s(-4)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pintop")).
		Set("d", d).
		Set("fill", "#b8af82").
		Set("stroke-width", 0)
}

// MalePinRight is the right bevel of the square pin.
func MalePinRight(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("M", g.x(12), g.y(8)).
		Cmd("l", g.s(2), g.s(-2)).
		Cmd("v", g.s(8)).
		Cmd("l", g.s(-2), g.s(-2)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pinright")).
		Set("d", d).
		Set("fill", "#9a916c").
		Set("stroke-width", 0)
}

// MalePinBottom is the bottom bevel of the square pin.
func MalePinBottom(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("M", g.x(6), g.y(14)).
		Cmd("l", g.s(2), g.s(-2)).
		Cmd("h", g.s(4)).
		Cmd("l", g.s(2), g.s(2)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pinbottom")).
		Set("d", d).
		Set("fill", "#5e5b43").
		Set("stroke-width", 0)
}

// MaleConnector is the pin face Fritzing connects wires to.
func MaleConnector(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	return svg.NewElement("rect").
		Set("id", ConnectorID(p.Connector, "pin")).
		Set("fill", "#8c8663").
		Set("stroke-width", 0).
		Set("x", g.x(8)).
		Set("width", g.s(4)).
		Set("y", g.y(8)).
		Set("height", g.s(4))
}

// Breadboard female header, socket drawn in shades of grey.

// FemaleOutline is the square socket body. The body color is fixed; the
// part color does not apply to sockets.
func FemaleOutline(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	return svg.NewElement("rect").
		Set("id", g.id("outline")).
		Set("fill", "#404040").
		Set("stroke", "none").
		Set("stroke-width", 0).
		Set("x", g.x(-1)).
		Set("y", g.y(-1)).
		Set("height", g.s(20.68)).
		Set("width", g.s(20.68))
}

// FemalePinLeft is the left wall of the socket opening.
func FemalePinLeft(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("m", g.x(6), g.y(6)).
		Cmd("v", g.s(7.6)).
		Cmd("l", g.s(-2.8), g.s(2.8)).
		Cmd("v", g.s(-13.2)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pinleft")).
		Set("d", d).
		Set("fill", "#373737").
		Set("stroke-width", 0)
}

// FemalePinTop is the top wall of the socket opening.
func FemalePinTop(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("m", g.x(3.24), g.y(3.24)).
		Cmd("h", g.s(13.2)).
		Cmd("l", g.s(-2.8), g.s(2.8)).
		Cmd("h", g.s(-7.6)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pintop")).
		Set("d", d).
		Set("fill", "#2a2a2a").
		Set("stroke-width", 0)
}

// FemalePinRight is the right wall of the socket opening.
func FemalePinRight(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("m", g.x(13.65), g.y(6), g.s(2.8), g.s(-2.8)).
		Cmd("v", g.s(13.2)).
		Cmd("l", g.s(-2.8), g.s(-2.8)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pinright")).
		Set("d", d).
		Set("fill", "#474747").
		Set("stroke-width", 0)
}

// FemalePinBottom is the bottom wall of the socket opening.
func FemalePinBottom(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	d := svg.NewPath().
		Cmd("m", g.x(6), g.y(13.65)).
		Cmd("h", g.s(7)).
		Cmd("l", g.s(2.8), g.s(2.8)).
		Cmd("h", g.s(-13.2)).
		Close()

	return svg.NewElement("path").
		Set("id", g.id("pinbottom")).
		Set("d", d).
		Set("fill", "#595959").
		Set("stroke-width", 0)
}

// FemaleConnector is the socket opening Fritzing connects wires to.
func FemaleConnector(t geom.Transform, p Pin) *svg.Element {
	g := grid{t, p}
	return svg.NewElement("rect").
		Set("id", ConnectorID(p.Connector, "pin")).
		Set("fill", "#000000").
		Set("stroke-width", 0).
		Set("x", g.x(6)).
		Set("width", g.s(7.6)).
		Set("y", g.y(6)).
		Set("height", g.s(7.6))
}
