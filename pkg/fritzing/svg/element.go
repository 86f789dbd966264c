// Package svg holds the small SVG element model used by the view generators.
//
// Elements keep their attributes in insertion order so the generated
// documents are byte-for-byte reproducible. Each attribute is written on its
// own line, which keeps diffs between generated parts readable.
package svg

import (
	"fmt"
	"strings"
)

// Attr is a single ordered attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one vector primitive (path, rect, circle, line, text).
type Element struct {
	Tag    string
	Attrs  []Attr
	Text   string // character data, only used by <text>
	Indent int    // leading spaces before the opening tag
}

// NewElement creates an element with the default shape indentation.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, Indent: 4}
}

// Set appends an attribute. Values are formatted with %v, so geom.Coord and
// other fmt.Stringer values render through their String method.
func (e *Element) Set(name string, value any) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: fmt.Sprint(value)})
	return e
}

// WithText sets the character data of the element.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// WithIndent overrides the indentation of the opening tag.
func (e *Element) WithIndent(n int) *Element {
	e.Indent = n
	return e
}

// Get returns the value of the named attribute.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the element identifier, or "" if it has none.
func (e *Element) ID() string {
	id, _ := e.Get("id")
	return id
}

// Lines renders the element as text lines:
//
//	<tag
//	  name="value"
//	/>
//
// Elements with character data close with >text</tag> on the last attribute line.
func (e *Element) Lines() []string {
	pad := strings.Repeat(" ", e.Indent)
	attrPad := pad + "  "

	lines := make([]string, 0, len(e.Attrs)+2)
	lines = append(lines, pad+"<"+e.Tag)
	for _, a := range e.Attrs {
		lines = append(lines, fmt.Sprintf("%s%s=\"%s\"", attrPad, a.Name, a.Value))
	}

	if e.Text != "" {
		if len(e.Attrs) == 0 {
			lines[0] += ">" + e.Text + "</" + e.Tag + ">"
			return lines
		}
		lines[len(lines)-1] += ">" + e.Text + "</" + e.Tag + ">"
		return lines
	}

	lines = append(lines, pad+"/>")
	return lines
}
