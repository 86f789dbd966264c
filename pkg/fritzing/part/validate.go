package part

import (
	"fmt"
	"math"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// finitePositive rejects zero, negatives, NaN and both infinities.
func finitePositive(p float64) bool {
	return p > 0 && !math.IsInf(p, 1)
}

// Validate checks the part invariants. It reports the first violation found,
// wrapped around ErrInvalidSpec.
func (s Spec) Validate() error {
	if s.Rows <= 0 || s.Columns <= 0 {
		return fmt.Errorf("%w: rows and columns must be > 0 (got %d x %d)", ErrInvalidSpec, s.Rows, s.Columns)
	}

	if !finitePositive(s.Pitch) {
		return fmt.Errorf("%w: pitch must be > 0 (got %g)", ErrInvalidSpec, s.Pitch)
	}

	if _, err := ParseKind(string(s.Kind)); err != nil {
		return err
	}
	if _, err := ParseOrder(string(s.Order)); err != nil {
		return err
	}
	if _, err := ParsePad(string(s.Pad)); err != nil {
		return err
	}

	switch s.Mount {
	case SMD:
		if s.Pad != Rectangle {
			return fmt.Errorf("%w: SMD parts require %s pads (got %s)", ErrInvalidSpec, Rectangle, s.Pad)
		}
	case THT:
		if s.Pad == Rectangle {
			return fmt.Errorf("%w: %s pads are not valid for THT parts", ErrInvalidSpec, Rectangle)
		}
	default:
		return fmt.Errorf("%w: unknown mount type %q", ErrInvalidSpec, s.Mount)
	}

	if !hexColor.MatchString(s.Color) {
		return fmt.Errorf("%w: color must be #rrggbb (got %q)", ErrInvalidSpec, s.Color)
	}

	if s.Version < 1 {
		return fmt.Errorf("%w: version must be >= 1 (got %d)", ErrInvalidSpec, s.Version)
	}

	return nil
}

// Supports reports whether the factory can draw view for this part. Only the
// schematic female header has no geometry.
func (s Spec) Supports(view View) error {
	if view == Schematic && s.Kind == FemaleHeader {
		return fmt.Errorf("%w: %s view for %s", ErrUnimplemented, view, s.Kind)
	}
	return nil
}
