package nav

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nav package
var (
	// ErrShape matches every *ShapeError via errors.Is
	ErrShape = errors.New("malformed sidebar")

	// ErrNoResolver indicates Expand was called without a resolver
	ErrNoResolver = errors.New("no resolver for autogenerated items")
)

// ShapeError reports a structural problem in a sidebar literal
type ShapeError struct {
	Path Path
	Msg  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sidebar shape error at %s: %s", e.Path, e.Msg)
}

// Is reports whether target is ErrShape
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

func shapeErrorf(p Path, format string, args ...any) *ShapeError {
	return &ShapeError{Path: p, Msg: fmt.Sprintf(format, args...)}
}
