/*
Package highlight displays search results with their matches marked.

Console output colors matched text and underlines it with carets, measuring
characters by their display width (UAX#11), so markers line up for wide
East Asian characters as well:

	r, _ := strmatch.FindAll(text, strmatch.FilterAll, strmatch.Literal("DEF"))
	highlight.Console(os.Stdout, r, nil)

	ABCDEFGHIDEFJKL
	   ^^^   ^^^

HTML output wraps matches in mark elements.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package highlight

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strmatch'
func tracer() tracing.Trace {
	return tracing.Select("strmatch")
}
