package strmatch

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"slices"

	"github.com/coregx/ahocorasick"
)

// FilterMode controls how a multi-match search combines the matches of
// a list of patterns.
type FilterMode int

const (
	// FilterAll collects the matches of every pattern. This is the default.
	FilterAll FilterMode = iota
	// FilterFirst uses the first pattern (in list order) which matches at all.
	// Its matches are the complete result; subsequent patterns act as fallbacks
	// and are not consulted.
	FilterFirst
)

func (m FilterMode) String() string {
	switch m {
	case FilterAll:
		return "all"
	case FilterFirst:
		return "first"
	}
	return "unknown"
}

// FindOne searches text for the first match of any of the patterns. Patterns
// are tried in order, and the first pattern which matches determines the
// result. Unsupported patterns are skipped.
//
// If no pattern matches, a result without a match record is returned. It is
// safe to apply edits to it, they will leave the text unchanged.
// If patterns is empty or none of them is supported, FindOne returns
// ErrNoPatterns and a nil result.
func FindOne(text string, patterns ...Pattern) (*Result, error) {
	s, err := Compile(patterns...)
	if err != nil {
		return nil, err
	}
	return s.FindOne(text), nil
}

// FindAll searches text for all matches of the patterns, combining them
// according to mode. Unsupported patterns are skipped.
//
// If no pattern matches, a result with an empty set of match records is
// returned. If patterns is empty or none of them is supported, FindAll
// returns ErrNoPatterns and a nil result.
func FindAll(text string, mode FilterMode, patterns ...Pattern) (*Result, error) {
	s, err := Compile(patterns...)
	if err != nil {
		return nil, err
	}
	return s.FindAll(text, mode), nil
}

// --- Searcher --------------------------------------------------------------

// Searcher is a compiled list of patterns, ready to be matched against
// any number of texts. A Searcher is immutable and may be used concurrently.
// Each search creates a new result with match records of its own.
type Searcher struct {
	patterns []compiledPattern
	literals *ahocorasick.Automaton // prefilter for >1 literal patterns, may be nil
}

type compiledPattern struct {
	pattern Pattern
	find    finder
	literal bool
}

// Compile prepares a list of patterns for searching. Unsupported patterns are
// dropped silently (they are traced on info level).
// A list without any supported pattern results in ErrNoPatterns.
func Compile(patterns ...Pattern) (*Searcher, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	s := &Searcher{}
	var lits [][]byte
	for i, p := range patterns {
		f, ok := compilePattern(p)
		if !ok {
			T().Infof("strmatch: skipping unsupported pattern #%d of type %T", i, p)
			continue
		}
		_, isLit := f.(literalFinder)
		if isLit {
			lits = append(lits, []byte(p.String()))
		}
		s.patterns = append(s.patterns, compiledPattern{pattern: p, find: f, literal: isLit})
	}
	if len(s.patterns) == 0 {
		T().Infof("strmatch: none of %d pattern(s) is usable", len(patterns))
		return nil, ErrNoPatterns
	}
	if len(lits) > 1 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range lits {
			builder.AddPattern(lit)
		}
		if auto, err := builder.Build(); err == nil {
			s.literals = auto
		} else {
			T().Infof("strmatch: no literal prefilter: %v", err)
		}
	}
	return s, nil
}

// Patterns returns the supported patterns of s, in search order.
func (s *Searcher) Patterns() []Pattern {
	if s == nil {
		return nil
	}
	patterns := make([]Pattern, len(s.patterns))
	for i, cp := range s.patterns {
		patterns[i] = cp.pattern
	}
	return patterns
}

// FindOne searches text for the first match of the first matching pattern.
// It returns a single-match result.
func (s *Searcher) FindOne(text string) *Result {
	if s == nil {
		return nil
	}
	skipLiterals := !s.anyLiteralIn(text)
	for _, cp := range s.patterns {
		if cp.literal && skipLiterals {
			continue
		}
		if start, end, ok := cp.find.first(text); ok {
			T().Debugf("strmatch: %q matches at [%d,%d)", cp.pattern, start, end)
			return newResult(text, []Offset{{Start: start, End: end, Pattern: cp.pattern}}, false)
		}
	}
	return newResult(text, nil, false)
}

// FindAll searches text for all matches, combining the matches of the patterns
// according to mode. It returns a multi-match result, with match records sorted
// by start position. Records of different patterns may overlap in FilterAll mode;
// records with equal start positions keep the order of their patterns.
func (s *Searcher) FindAll(text string, mode FilterMode) *Result {
	if s == nil {
		return nil
	}
	skipLiterals := !s.anyLiteralIn(text)
	records := []Offset{}
	contributors := 0
	for _, cp := range s.patterns {
		if cp.literal && skipLiterals {
			continue
		}
		spans := cp.find.all(text)
		for _, span := range spans {
			records = append(records, Offset{Start: span[0], End: span[1], Pattern: cp.pattern})
		}
		if len(spans) > 0 {
			contributors++
			if mode == FilterFirst {
				break
			}
		}
	}
	if contributors > 1 {
		slices.SortStableFunc(records, func(a, b Offset) int {
			return cmp.Compare(a.Start, b.Start)
		})
	}
	T().Debugf("strmatch: %d match(es) in filter mode %s", len(records), mode)
	return newResult(text, records, true)
}

// anyLiteralIn reports if any of the literal patterns may occur in text.
func (s *Searcher) anyLiteralIn(text string) bool {
	if s.literals == nil {
		return true
	}
	return s.literals.IsMatch([]byte(text))
}
