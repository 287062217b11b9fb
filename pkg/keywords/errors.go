package keywords

import "errors"

// ErrInvalidThreshold is returned when a caller-supplied frequency or
// keyword-count threshold is out of range. It is rejected before any
// tokenization work begins.
var ErrInvalidThreshold = errors.New("invalid keyword threshold")
