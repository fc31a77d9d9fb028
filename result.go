package strmatch

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
	"sync"
)

// Result is the outcome of a search: a text together with the records of
// the matches found in it. Results are created by the search functions and
// own both their text and their match records exclusively.
//
// A result is either a single-match result (from FindOne), holding zero or
// one match record, or a multi-match result (from FindAll), holding any number
// of match records.
//
// The text of a result is edited by Before, After, Replace and Remove. Every
// edit is applied at all match locations at once, and match records are
// updated so that they keep referring to the (now changed) text:
//
//	r, _ := strmatch.FindAll("ABCDEFGHIDEFJKL", strmatch.FilterAll, strmatch.Literal("DEF"))
//	r.Before("XYZ")  // text: ABCXYZDEFGHIXYZDEFJKL, records: [6,9) [15,18)
//
// An edit copies the text once, so its cost is linear in the length of the
// text plus the text inserted. Overlapping match records add the length of
// the overlap for each of them.
//
// Edits return the result itself, which allows chaining. Applying an edit to a
// result without match records, or to a nil result, does nothing.
//
// All methods are safe to call from multiple goroutines; each call is applied
// atomically. However, callers interleaving edit chains on a shared result
// will get interleaved edits. Callers needing independent edits have to search
// separately.
type Result struct {
	mu       sync.Mutex
	buf      []byte
	offsets  []Offset
	multi    bool
	observer Observer
}

func newResult(text string, offsets []Offset, multi bool) *Result {
	return &Result{
		buf:     []byte(text),
		offsets: offsets,
		multi:   multi,
	}
}

// IsMulti is true for multi-match results.
func (r *Result) IsMulti() bool {
	if r == nil {
		return false
	}
	return r.multi
}

// Offset returns the first match record. For single-match results this is
// the only one. If there is no match record, Offset returns false.
func (r *Result) Offset() (Offset, bool) {
	if r == nil {
		return Offset{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.offsets) == 0 {
		return Offset{}, false
	}
	return r.offsets[0], true
}

// Offsets returns a copy of the match records, sorted by start position.
// For single-match results without a match, Offsets returns nil. For
// multi-match results without matches, an empty slice is returned.
func (r *Result) Offsets() []Offset {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.offsets == nil {
		return nil
	}
	return slices.Clone(r.offsets)
}

// Count returns the number of match records.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.offsets)
}

// All iterates over the match records, in order. It iterates over a
// snapshot taken at the start of the iteration.
func (r *Result) All() iter.Seq2[int, Offset] {
	offsets := r.Offsets()
	return func(yield func(int, Offset) bool) {
		for i, o := range offsets {
			if !yield(i, o) {
				return
			}
		}
	}
}

// Matches returns the current text covered by each of the match records.
// Records collapsed by Remove yield empty strings.
func (r *Result) Matches() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	text := string(r.buf)
	m := make([]string, len(r.offsets))
	for i, o := range r.offsets {
		m[i] = o.In(text)
	}
	return m
}

// Text returns the current text, reflecting all edits so far.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.buf)
}

// String returns the current text. It is the same as Text.
func (r *Result) String() string {
	return r.Text()
}

// Observe sets an observer which will be notified about every change of
// the text. Setting nil removes the observer.
func (r *Result) Observe(o Observer) *Result {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
	return r
}
