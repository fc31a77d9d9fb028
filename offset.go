package strmatch

import "fmt"

// Offset is a match record: the half-open byte range [Start, End) of a match
// within the current text of a result, and the pattern which produced it.
//
// Offsets held by a result are updated with every edit of the result, so that
// they always refer to the current text. Offsets handed out to clients are
// copies and will not change.
type Offset struct {
	Start   int
	End     int
	Pattern Pattern
}

// Len returns the number of bytes covered by o.
func (o Offset) Len() int {
	return o.End - o.Start
}

// IsEmpty is true for zero-width records, e.g., after a match has been removed.
func (o Offset) IsEmpty() bool {
	return o.Start == o.End
}

// In returns the substring of text covered by o. If o does not fit into
// text, the empty string is returned.
func (o Offset) In(text string) string {
	if o.Start < 0 || o.Start > o.End || o.End > len(text) {
		return ""
	}
	return text[o.Start:o.End]
}

func (o Offset) String() string {
	if o.Pattern == nil {
		return fmt.Sprintf("[%d,%d)", o.Start, o.End)
	}
	return fmt.Sprintf("[%d,%d) %q", o.Start, o.End, o.Pattern)
}
