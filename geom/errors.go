package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry reports a degenerate or self-intersecting input: a
// polygon with fewer than three distinct vertices, a polyline with fewer than
// two, or a self-intersecting ring. Malformed geometry is never silently
// repaired; callers decide whether to skip the object or abort.
var ErrInvalidGeometry = errors.New("invalid geometry")

func invalidGeometryf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}
