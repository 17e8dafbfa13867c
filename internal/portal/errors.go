package portal

import "errors"

var (
	// ErrNotFound signals an expected absence: a detail lookup matched
	// no published row. Callers render a not-found page; infrastructure
	// failures never map to this.
	ErrNotFound = errors.New("portal: not found")

	// ErrInvalidType signals an unknown post type in the request.
	ErrInvalidType = errors.New("portal: invalid post type")
)
