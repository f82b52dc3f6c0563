package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrEmptyNetwork is returned by NewNetwork when no layers are given.
	ErrEmptyNetwork = errors.New("network needs at least one layer")

	// ErrStaleCache is returned by Network.Backward when there is no
	// forward cache to consume, either because Forward was never
	// called or because the previous Backward already used it.
	ErrStaleCache = errors.New("backward without a preceding forward pass")
)

// ShapeError reports a vector whose length does not match the width a
// layer or network expects. Shape mismatches abort the operation in
// progress; vectors are never truncated or padded.
type ShapeError struct {
	Op   string // Operation that detected the mismatch (e.g., "Dense.Output")
	Want int    // Expected length
	Got  int    // Actual length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected vector of length %d, got %d", e.Op, e.Want, e.Got)
}
