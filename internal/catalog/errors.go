package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned when a category id is not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidCatalog is returned when a catalog definition is malformed.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// ValidationError describes why a catalog definition was rejected.
type ValidationError struct {
	Category string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("invalid catalog: category %q: %s", e.Category, e.Message)
	}
	return fmt.Sprintf("invalid catalog: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}
