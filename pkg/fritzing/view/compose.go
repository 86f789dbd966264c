// Package view turns a part.Spec into the three Fritzing view documents.
//
// A view is built in three layers: the walker numbers the pin grid, the
// composer draws each pin into a pair of buffers, and the assembler wraps
// the buffers in the view's envelope. Decorations and connectors never
// interleave; every connector is written after all decorations, in
// ascending connector order.
package view

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/shapes"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
)

// Buffers collects the shapes of one view.
type Buffers struct {
	Decorations []*svg.Element
	Connectors  []*svg.Element
}

// Merged returns the decorations followed by the connectors.
func (b *Buffers) Merged() []*svg.Element {
	out := make([]*svg.Element, 0, len(b.Decorations)+len(b.Connectors))
	out = append(out, b.Decorations...)
	return append(out, b.Connectors...)
}

func (b *Buffers) decorate(elems ...*svg.Element) {
	b.Decorations = append(b.Decorations, elems...)
}

func (b *Buffers) connect(elems ...*svg.Element) {
	b.Connectors = append(b.Connectors, elems...)
}

// PinFunc draws one pin into b.
type PinFunc func(p shapes.Pin, b *Buffers)

type composeKey struct {
	view part.View
	kind part.Kind
}

type composeFunc func(t geom.Transform, spec part.Spec) (PinFunc, error)

var composers = map[composeKey]composeFunc{
	{part.Breadboard, part.MaleHeader}:   breadboardMale,
	{part.Breadboard, part.FemaleHeader}: breadboardFemale,
	{part.Schematic, part.MaleHeader}:    schematicMale,
	{part.PCB, part.MaleHeader}:          pcbPin,
	{part.PCB, part.FemaleHeader}:        pcbPin,
}

// Composer returns the pin drawing function for view of spec, using
// transform t. Combinations without geometry fail with part.ErrUnimplemented.
func Composer(view part.View, t geom.Transform, spec part.Spec) (PinFunc, error) {
	compose, ok := composers[composeKey{view, spec.Kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %s view for %s", part.ErrUnimplemented, view, spec.Kind)
	}
	return compose(t, spec)
}

func breadboardMale(t geom.Transform, spec part.Spec) (PinFunc, error) {
	return func(p shapes.Pin, b *Buffers) {
		b.decorate(
			shapes.MaleOutline(t, p, spec.Color),
			shapes.MalePinLeft(t, p),
			shapes.MalePinTop(t, p),
			shapes.MalePinRight(t, p),
			shapes.MalePinBottom(t, p),
		)
		b.connect(shapes.MaleConnector(t, p))
	}, nil
}

func breadboardFemale(t geom.Transform, _ part.Spec) (PinFunc, error) {
	return func(p shapes.Pin, b *Buffers) {
		b.decorate(
			shapes.FemaleOutline(t, p),
			shapes.FemalePinLeft(t, p),
			shapes.FemalePinTop(t, p),
			shapes.FemalePinRight(t, p),
			shapes.FemalePinBottom(t, p),
		)
		b.connect(shapes.FemaleConnector(t, p))
	}, nil
}

func schematicMale(t geom.Transform, _ part.Spec) (PinFunc, error) {
	return func(p shapes.Pin, b *Buffers) {
		b.decorate(shapes.PinNumber(t, p))
		b.decorate(shapes.ArrowLines(t, p)...)
		b.connect(shapes.SchematicPin(t, p), shapes.SchematicTerminal(t, p))
	}, nil
}

func pcbPin(t geom.Transform, spec part.Spec) (PinFunc, error) {
	emit, err := shapes.Pad(spec.Pad)
	if err != nil {
		return nil, err
	}
	return func(p shapes.Pin, b *Buffers) {
		out := emit(t, p)
		b.decorate(out.Decor...)
		b.connect(out.Connectors...)
	}, nil
}
