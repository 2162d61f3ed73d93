package mathworld

import (
	"errors"

	"github.com/njchilds90/mathworld/reader"
)

// Reader errors, re-exported so callers can match them without importing
// the reader package.
var (
	ErrInvalidValueType  = reader.ErrInvalidValueType
	ErrInvalidExpression = reader.ErrInvalidExpression
	ErrInvalidEquation   = reader.ErrInvalidEquation
)

var (
	ErrDegenerateLine         = errors.New("degenerate line")
	ErrNoUniqueIntersection   = errors.New("no unique intersection")
	ErrInsufficientParameters = errors.New("insufficient parameters")
	ErrPointNotOnLine         = errors.New("point not on line")
	ErrConflictingParameters  = errors.New("conflicting line parameters")
	ErrNotLinear              = errors.New("equation is not linear in x and y")
	ErrDivisionByZero         = errors.New("division by zero")
	ErrDegenerateSegment      = errors.New("segment endpoints are equal")
	ErrInvalidDistance        = errors.New("invalid distance")
	ErrNoRealSolution         = errors.New("no real solution")

	// ErrNotNumeric is returned by the float exports when a coordinate
	// has free symbols.
	ErrNotNumeric = errors.New("value is not numeric")
)
