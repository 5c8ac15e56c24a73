package practitioner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound means the relevant source(s) yielded no usable data: the
// upstreams answered, but with empty or error documents.
var ErrNotFound = errors.New("no practitioner found")

// UnavailableError means at least one upstream transport call failed.
// Sources names the failed upstream(s) so the caller can report which
// directory is down.
type UnavailableError struct {
	Sources []Source
}

func (e *UnavailableError) Error() string {
	names := make([]string, len(e.Sources))
	for i, s := range e.Sources {
		names[i] = string(s)
	}
	return fmt.Sprintf("upstream unavailable: %s", strings.Join(names, ", "))
}

// InvalidRequestError means the caller supplied no usable search key.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}
