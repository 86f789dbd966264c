package part

import "errors"

var (
	// ErrInvalidSpec reports a part description that violates an invariant
	// (empty grid, pad shape not allowed for the mount type, bad color...).
	ErrInvalidSpec = errors.New("invalid part spec")

	// ErrUnimplemented reports a view, part kind and pad combination the
	// factory has no geometry for.
	ErrUnimplemented = errors.New("not implemented")
)
