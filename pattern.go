package strmatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coregx/coregex"
)

// Pattern is what to search for. Supported patterns are
//
//	Literal         an exact substring
//	RegExp          a regular expression given by source and flags
//	*coregex.Regex  a compiled regular expression
//	*regexp.Regexp  a compiled regular expression from the standard library
//
// Compiled regular expressions are never used directly: they are
// re-created from their source, as are RegExp patterns. Any other kind of
// pattern is unsupported and will be skipped by searches.
type Pattern interface {
	String() string
}

// Literal is a pattern matching an exact substring. The empty literal is
// unsupported.
type Literal string

func (l Literal) String() string {
	return string(l)
}

// Literals is a convenience function to create a list of literal patterns.
func Literals(s ...string) []Pattern {
	patterns := make([]Pattern, len(s))
	for i, l := range s {
		patterns[i] = Literal(l)
	}
	return patterns
}

// RegExp is a regular expression pattern, given as a source expression in
// RE2 syntax plus a set of flags. Flags are single letters:
//
//	i   case-insensitive
//	m   ^ and $ match at line boundaries
//	s   . matches \n
//	g   global (accepted, ignored)
//	u   unicode (accepted, ignored)
//	d   indices (accepted, ignored)
//
// Whether a search collects one or all matches is decided by the search
// function, not by flag 'g'. Any other flag renders the pattern unsupported.
type RegExp struct {
	Source string
	Flags  string
}

func (re RegExp) String() string {
	return "/" + re.Source + "/" + re.Flags
}

// expr returns the source expression with flags turned into an inline
// flag group.
func (re RegExp) expr() (string, error) {
	var inline strings.Builder
	for _, f := range re.Flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(inline.String(), f) {
				inline.WriteRune(f)
			}
		case 'g', 'u', 'd':
		default:
			return "", fmt.Errorf("unsupported flag %q in %s", f, re)
		}
	}
	if inline.Len() == 0 {
		return re.Source, nil
	}
	return "(?" + inline.String() + ")" + re.Source, nil
}

// --- Finders ---------------------------------------------------------------

// finder locates occurrences of a single pattern. Finders are stateless:
// every call is a pure function of the text.
type finder interface {
	first(text string) (int, int, bool)
	all(text string) [][]int
}

// compilePattern creates a finder for a pattern. It returns false for
// patterns which are unsupported.
func compilePattern(p Pattern) (finder, bool) {
	var source string
	switch p := p.(type) {
	case nil:
		return nil, false
	case Literal:
		if p == "" {
			return nil, false
		}
		return literalFinder(p), true
	case RegExp:
		expr, err := p.expr()
		if err != nil {
			T().Infof("strmatch: %v", err)
			return nil, false
		}
		source = expr
	case *RegExp:
		if p == nil {
			return nil, false
		}
		return compilePattern(*p)
	case *coregex.Regex:
		if p == nil {
			return nil, false
		}
		source = p.String()
	case *regexp.Regexp:
		if p == nil {
			return nil, false
		}
		source = p.String()
	default:
		return nil, false
	}
	re, err := coregex.Compile(source)
	if err != nil {
		T().Infof("strmatch: cannot compile regular expression %q: %v", source, err)
		return nil, false
	}
	return regexFinder{re: re}, true
}

type literalFinder string

func (lf literalFinder) first(text string) (int, int, bool) {
	i := strings.Index(text, string(lf))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(lf), true
}

// all steps one byte past the start of each hit, not past its end.
// Self-overlapping literals therefore report overlapping occurrences,
// e.g. "aa" is found at 0, 1 and 2 in "aaaa".
func (lf literalFinder) all(text string) [][]int {
	var spans [][]int
	for at := 0; at < len(text); {
		i := strings.Index(text[at:], string(lf))
		if i < 0 {
			break
		}
		start := at + i
		spans = append(spans, []int{start, start + len(lf)})
		at = start + 1
	}
	return spans
}

type regexFinder struct {
	re *coregex.Regex
}

func (rf regexFinder) first(text string) (int, int, bool) {
	loc := rf.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (rf regexFinder) all(text string) [][]int {
	return rf.re.FindAllStringIndex(text, -1)
}
