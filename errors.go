package cad

import (
	"errors"
	"fmt"
)

// Error conditions surfaced by the scene core. Specific errors wrap one of
// these so callers can test the category with errors.Is.
var (
	// ErrInvalidArgument is returned for a missing required argument or an
	// out-of-range value.
	ErrInvalidArgument = errors.New("cad: invalid argument")

	// ErrInvalidState is returned when an operation conflicts with the
	// current ownership state of an object.
	ErrInvalidState = errors.New("cad: invalid state")
)

var (
	// ErrNonPositiveZoom is returned when a zoom of zero or less is requested.
	ErrNonPositiveZoom = fmt.Errorf("%w: zoom must be larger than zero", ErrInvalidArgument)

	// ErrNilObject is returned when a nil draw object or collection is passed.
	ErrNilObject = fmt.Errorf("%w: draw object is nil", ErrInvalidArgument)

	// ErrAlreadyAttached is returned when adding an object that a layer
	// already holds.
	ErrAlreadyAttached = fmt.Errorf("%w: draw object belongs to a layer, remove it first", ErrInvalidState)

	// ErrNotOwned is returned when removing an object from a layer that does
	// not hold it.
	ErrNotOwned = fmt.Errorf("%w: layer does not own the draw object", ErrInvalidState)
)
