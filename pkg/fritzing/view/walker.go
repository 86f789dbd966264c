package view

import (
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/part"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/shapes"
)

// Walk lists the pins of spec in connector order for view.
//
// With part.ByRow every row position of column 1 is numbered before column
// 2; with part.ByColumn every column of row 1 comes first. Breadboard and
// PCB pins keep their grid cell. Schematic pins are stacked in a single
// column: each pin gets a slot below the previous column group, and every
// column group after the first is pushed down one extra slot to leave a gap.
func Walk(spec part.Spec, view part.View) []shapes.Pin {
	spec = spec.Normalized()
	pins := make([]shapes.Pin, 0, spec.Pins())

	visit := func(row, column int) {
		p := shapes.Pin{
			Connector: len(pins),
			Row:       row,
			Column:    column,
			Columns:   spec.Columns,
		}
		if view == part.Schematic {
			p.Row = SchematicSlot(spec.Rows, row, column)
			p.Column = 1
		}
		pins = append(pins, p)
	}

	switch spec.Order {
	case part.ByColumn:
		for row := 1; row <= spec.Rows; row++ {
			for column := 1; column <= spec.Columns; column++ {
				visit(row, column)
			}
		}
	default:
		for column := 1; column <= spec.Columns; column++ {
			for row := 1; row <= spec.Rows; row++ {
				visit(row, column)
			}
		}
	}

	return pins
}

// SchematicSlot is the 1-based vertical slot of grid cell (row, column) in
// the schematic view.
func SchematicSlot(rows, row, column int) int {
	return (column-1)*rows + row + (column - 1)
}
