package svg

import (
	"fmt"
	"strings"
)

// Path builds SVG path data one command at a time.
//
// Coordinates passed to a command are grouped into x,y pairs; a trailing
// odd coordinate is written on its own. Commands are separated by a single
// space, for example "M 0,12 l 3.83,-3.83 h 12.1 z".
type Path struct {
	parts []string
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// Cmd appends a command letter followed by its coordinates.
func (p *Path) Cmd(letter string, coords ...fmt.Stringer) *Path {
	var b strings.Builder
	b.WriteString(letter)
	for i := 0; i < len(coords); i += 2 {
		b.WriteByte(' ')
		b.WriteString(coords[i].String())
		if i+1 < len(coords) {
			b.WriteByte(',')
			b.WriteString(coords[i+1].String())
		}
	}
	p.parts = append(p.parts, b.String())
	return p
}

// Close appends the close-path command.
func (p *Path) Close() *Path {
	p.parts = append(p.parts, "z")
	return p
}

// String returns the path data.
func (p *Path) String() string {
	return strings.Join(p.parts, " ")
}
