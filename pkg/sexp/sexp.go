// Package sexp is a small streaming S-expression reader used for part
// request files.
//
// Atoms and quoted strings both read as Symbol. Comments run from ';' to the
// end of the line, which leaves '#' free for color values such as #404040.
package sexp

import (
	"io"
	"strings"
)

// Sexp is an S-expression node: a Symbol atom or a *List.
type Sexp interface {
	// IsLeaf reports whether the node is an atom.
	IsLeaf() bool

	// Len returns the number of elements of a list (0 for atoms).
	Len() int

	String() string
}

// Symbol is an atom.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) Len() int       { return 0 }
func (s Symbol) String() string { return string(s) }

// List is a parenthesized list of nodes.
type List struct {
	elements []Sexp
	line     int
}

// NewList builds a list from its elements.
func NewList(elems ...Sexp) *List {
	return &List{elements: elems}
}

func (l *List) IsLeaf() bool { return false }

func (l *List) Len() int { return len(l.elements) }

// Line is the 1-based source line of the opening parenthesis, or 0 for
// lists built in code.
func (l *List) Line() int { return l.line }

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Head returns the first element, or nil for the empty list.
func (l *List) Head() Sexp {
	return l.Get(0)
}

// Items returns the elements after the head.
func (l *List) Items() []Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return l.elements[1:]
}

func (l *List) String() string {
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Parse reads every top-level expression from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString reads every top-level expression from s.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
