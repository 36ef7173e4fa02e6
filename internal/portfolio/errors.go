package portfolio

import (
	"errors"
	"fmt"
)

var (
	ErrItemTitleRequired = errors.New("portfolio: item title is required")
	ErrItemSlugRequired  = errors.New("portfolio: item slug is required")
	ErrTermSlugRequired  = errors.New("portfolio: term slug is required")
	ErrTermNameRequired  = errors.New("portfolio: term name is required")
	ErrSlugInvalid       = errors.New("portfolio: slug contains invalid characters")
)

// NotFoundError reports a missing item or term lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("portfolio: %s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
