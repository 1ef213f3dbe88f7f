package cube

import "errors"

var (
	// ErrInvalidCube indicates a coordinate whose components do not sum to zero.
	ErrInvalidCube = errors.New("cube: components must sum to zero")

	// ErrNotFound indicates that no spiral position matches the coordinate.
	ErrNotFound = errors.New("cube: no matching spiral position")
)
