package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrItemRepositoryRequired indicates the service was constructed
	// without an item repository.
	ErrItemRepositoryRequired = errors.New("gallery: item repository is required")
	// ErrTermRepositoryRequired indicates the service was constructed
	// without a term repository.
	ErrTermRepositoryRequired = errors.New("gallery: term repository is required")
)

// RouteError reports a failed permalink lookup against the route manager.
type RouteError struct {
	Group string
	Route string
	Cause any
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("gallery: route %s.%s unavailable: %v", e.Group, e.Route, e.Cause)
}
