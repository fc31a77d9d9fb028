/*
Package journal records the changes strmatch edits make to a text.

A journal is attached to a search result as an observer. Every splice of the
result's text (one per match record and edit) is recorded as a Change, giving
the affected byte ranges before and after the change together with the old and
new text. Recorded changes may be replayed onto the original text, and they
are broadcast to subscribers as they happen.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package journal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strmatch'
func tracer() tracing.Trace {
	return tracing.Select("strmatch")
}
