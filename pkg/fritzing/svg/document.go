package svg

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
)

// DrawingUnitsPerInch fixes the document coordinate system: the viewBox is
// 1000 times the physical size, so one drawing unit is 1/1000 inch.
const DrawingUnitsPerInch = 1000

// Group is a <g> element holding shapes and nested groups. Shapes are
// written before child groups.
type Group struct {
	ID       string
	Elements []*Element
	Children []*Group
}

// NewGroup creates an empty group with the given id.
func NewGroup(id string) *Group {
	return &Group{ID: id}
}

// Add appends shapes to the group.
func (g *Group) Add(elems ...*Element) *Group {
	g.Elements = append(g.Elements, elems...)
	return g
}

// Nest appends a child group and returns it.
func (g *Group) Nest(id string) *Group {
	child := NewGroup(id)
	g.Children = append(g.Children, child)
	return child
}

// Walk visits every element of the group in document order.
func (g *Group) Walk(fn func(*Element)) {
	for _, e := range g.Elements {
		fn(e)
	}
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

func (g *Group) lines(depth int) []string {
	pad := strings.Repeat("  ", depth)
	lines := []string{
		pad + "<g",
		fmt.Sprintf("%s  id=\"%s\">", pad, g.ID),
	}
	for _, e := range g.Elements {
		lines = append(lines, e.Lines()...)
	}
	for _, c := range g.Children {
		lines = append(lines, c.lines(depth+1)...)
	}
	return append(lines, pad+"</g>")
}

// Document is one complete view: the envelope and its layer groups.
type Document struct {
	// Box is the physical extent of the drawing in inches, anchored at 0,0.
	Box rect.Rect
	// ReferenceFile names the single-pin template the geometry was copied from.
	ReferenceFile string
	Groups        []*Group
}

// NewDocument creates a document of the given size in inches.
func NewDocument(width, height float64, referenceFile string) *Document {
	return &Document{
		Box:           rect.Rect{LLx: 0, LLy: 0, URx: width, URy: height},
		ReferenceFile: referenceFile,
	}
}

// AddGroup appends a top-level group and returns it.
func (d *Document) AddGroup(id string) *Group {
	g := NewGroup(id)
	d.Groups = append(d.Groups, g)
	return g
}

// Width returns the document width in inches.
func (d *Document) Width() float64 { return d.Box.Dx() }

// Height returns the document height in inches.
func (d *Document) Height() float64 { return d.Box.Dy() }

// ViewBox returns Box in drawing units, rounded the way the viewBox
// attribute is written.
func (d *Document) ViewBox() rect.Rect {
	return rect.Rect{
		LLx: geom.Round(d.Box.LLx*DrawingUnitsPerInch, 5),
		LLy: geom.Round(d.Box.LLy*DrawingUnitsPerInch, 5),
		URx: geom.Round(d.Box.URx*DrawingUnitsPerInch, 5),
		URy: geom.Round(d.Box.URy*DrawingUnitsPerInch, 5),
	}
}

// Elements returns every shape in document order.
func (d *Document) Elements() []*Element {
	var out []*Element
	for _, g := range d.Groups {
		g.Walk(func(e *Element) { out = append(out, e) })
	}
	return out
}

// FindByID returns the first element with the given id.
func (d *Document) FindByID(id string) (*Element, bool) {
	for _, e := range d.Elements() {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// Lines renders the full SVG document.
func (d *Document) Lines() []string {
	width := d.Width()
	height := d.Height()
	vb := d.ViewBox()

	lines := []string{
		`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`,
		"<svg",
		`  y="0in"`,
		`  x="0in"`,
		fmt.Sprintf(`  height="%fin"`, height),
		fmt.Sprintf(`  width="%fin"`, width),
		fmt.Sprintf(`  viewBox="%s %s %f %f"`,
			strconv.FormatFloat(vb.LLx, 'f', -1, 64),
			strconv.FormatFloat(vb.LLy, 'f', -1, 64),
			vb.Dx(), vb.Dy()),
		`  version="1.2"`,
		`  id="svg21"`,
		`  xmlns="http://www.w3.org/2000/svg"`,
		`  xmlns:svg="http://www.w3.org/2000/svg">`,
		"  <defs",
		`    id="defs25"`,
		"  />",
		"  <desc",
		`    id="desc2">`,
		fmt.Sprintf("      <referenceFile>%s</referenceFile>", d.ReferenceFile),
		"  </desc>",
	}

	for _, g := range d.Groups {
		lines = append(lines, g.lines(1)...)
	}

	return append(lines, "</svg>")
}
