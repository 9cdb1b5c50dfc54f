package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuery = errors.New("query is empty")
)
