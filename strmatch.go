package strmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'strmatch'.
func T() tracing.Trace {
	return tracing.Select("strmatch")
}

// MatchError is an error type for the strmatch module
type MatchError string

func (e MatchError) Error() string {
	return string(e)
}

// ErrNoPatterns is returned by searches which have not been given any pattern
// at all. It is distinct from "no match found", which yields a live result
// without match records.
const ErrNoPatterns = MatchError("no patterns to search for")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MatchError("illegal arguments")

// ErrRangeOutOfBounds is flagged whenever a byte range does not fit into
// a text.
const ErrRangeOutOfBounds = MatchError("range out of bounds")
