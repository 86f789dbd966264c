package view

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/shapes"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/svg"
)

// Layer group ids.
const (
	LayerBreadboard = "breadboard"
	LayerSchematic  = "schematic"
	LayerSilkscreen = "silkscreen"
	LayerCopper0    = "copper0"
	LayerCopper1    = "copper1"
)

// Assembler builds view documents with a fixed configuration.
type Assembler struct {
	cfg part.Config
}

// NewAssembler creates an assembler for cfg.
func NewAssembler(cfg part.Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Build validates spec and returns the complete document for view.
func (a *Assembler) Build(spec part.Spec, view part.View) (*svg.Document, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Supports(view); err != nil {
		return nil, err
	}
	spec = spec.Normalized()

	pitch := spec.Pitch
	if view == part.Schematic {
		pitch = a.cfg.SchematicPitch()
	}
	t := a.cfg.Transform(pitch)

	drawPin, err := Composer(view, t, spec)
	if err != nil {
		return nil, err
	}

	ref, err := a.cfg.ReferenceFile(view, spec)
	if err != nil {
		return nil, err
	}

	var buf Buffers
	for _, p := range Walk(spec, view) {
		drawPin(p, &buf)
	}

	width, height := Size(view, spec, pitch)
	doc := svg.NewDocument(width, height, ref)

	switch view {
	case part.Breadboard:
		doc.AddGroup(LayerBreadboard).Add(buf.Merged()...)
	case part.Schematic:
		doc.AddGroup(LayerSchematic).Add(buf.Merged()...)
	case part.PCB:
		doc.AddGroup(LayerSilkscreen).Add(shapes.Silkscreen(t, spec.Rows, spec.Columns)...)
		copper := doc.AddGroup(LayerCopper1)
		if spec.Mount == part.THT {
			copper = copper.Nest(LayerCopper0)
		}
		copper.Add(buf.Merged()...)
	default:
		return nil, fmt.Errorf("%w: view %q", part.ErrUnimplemented, view)
	}

	return doc, nil
}

// Size returns the width and height in inches of view for spec drawn at
// pitch.
func Size(view part.View, spec part.Spec, pitch float64) (width, height float64) {
	rows := float64(spec.Rows)
	columns := float64(spec.Columns)

	switch view {
	case part.Schematic:
		slots := (columns - 1) + rows*columns
		return 0.2, geom.Round(100*slots/1000, 2)
	case part.PCB:
		stroke := 1.968 * pitch / 1000
		return geom.Round(pitch*rows*0.0185+stroke, 5), geom.Round(pitch*columns*0.024+stroke, 5)
	}
	return geom.Round(pitch*rows*0.0198, 5), geom.Round(pitch*columns*0.0198, 5)
}

// Render returns the document as SVG text.
func Render(doc *svg.Document) string {
	return strings.Join(doc.Lines(), "\n") + "\n"
}

// ConnectorIDs returns the ids of the elements of doc that look like
// connector shapes, in document order.
func ConnectorIDs(doc *svg.Document) []string {
	var ids []string
	for _, e := range doc.Elements() {
		if id := e.ID(); strings.HasPrefix(id, "connector") {
			ids = append(ids, id)
		}
	}
	return ids
}
