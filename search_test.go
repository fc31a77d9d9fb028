package strmatch

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/coregx/coregex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const abc = "ABCDEFGHIDEFJKL"

type span struct{ start, end int }

func spansOf(r *Result) []span {
	var spans []span
	for _, o := range r.Offsets() {
		spans = append(spans, span{o.Start, o.End})
	}
	return spans
}

func equalSpans(a, b []span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindOne(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	for _, p := range []Pattern{
		Literal("DEF"),
		RegExp{Source: "DEF", Flags: "g"},
		regexp.MustCompile("DEF"),
		coregex.MustCompile("DEF"),
	} {
		r, err := FindOne(abc, p)
		if err != nil {
			t.Fatalf("search for %v failed: %v", p, err)
		}
		if r.IsMulti() {
			t.Errorf("expected single-match result for %v", p)
		}
		o, ok := r.Offset()
		if !ok {
			t.Fatalf("expected a match for %v, have none", p)
		}
		if o.Start != 3 || o.End != 6 {
			t.Errorf("expected match for %v at [3,6), is %v", p, o)
		}
		if o.Pattern != p {
			t.Errorf("expected match record to carry pattern %v, has %v", p, o.Pattern)
		}
		if r.Text() != abc {
			t.Errorf("search must not alter text, have %q", r.Text())
		}
	}
}

func TestFindOneFirstPatternWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	// GHI occurs earlier than JKL, but pattern order decides
	r, _ := FindOne(abc, Literal("XYZ"), Literal("JKL"), Literal("GHI"))
	o, ok := r.Offset()
	if !ok || o.Pattern != Literal("JKL") || o.Start != 12 {
		t.Errorf("expected JKL at 12, have %v", o)
	}
	if len(r.Offsets()) != 1 {
		t.Errorf("single-match result must hold exactly one record, has %d", len(r.Offsets()))
	}
}

func TestFindOneNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	r, err := FindOne(abc, Literal("XYZ"))
	if err != nil {
		t.Fatal(err)
	}
	if r == nil {
		t.Fatalf("no match must still yield a result")
	}
	if _, ok := r.Offset(); ok {
		t.Errorf("expected no match record")
	}
	if r.Offsets() != nil {
		t.Errorf("expected nil records for single-match result without match")
	}
}

func TestFindAllLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	r, err := FindAll(abc, FilterAll, Literal("DEF"))
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsMulti() {
		t.Errorf("expected multi-match result")
	}
	if want := []span{{3, 6}, {9, 12}}; !equalSpans(spansOf(r), want) {
		t.Errorf("expected records %v, have %v", want, spansOf(r))
	}
	for i, o := range r.All() {
		if o.Pattern != Literal("DEF") {
			t.Errorf("record #%d: expected pattern DEF, have %v", i, o.Pattern)
		}
	}
}

func TestFindAllSelfOverlappingLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	r, _ := FindAll("aaaa", FilterAll, Literal("aa"))
	if want := []span{{0, 2}, {1, 3}, {2, 4}}; !equalSpans(spansOf(r), want) {
		t.Errorf("expected records %v, have %v", want, spansOf(r))
	}
	r, _ = FindAll("aa", FilterAll, Literal("a"))
	if want := []span{{0, 1}, {1, 2}}; !equalSpans(spansOf(r), want) {
		t.Errorf("expected records %v, have %v", want, spansOf(r))
	}
}

func TestFindAllRegExp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	want := []span{{0, 4}, {5, 8}, {9, 15}, {16, 20}, {21, 22}, {23, 28}}
	for _, p := range []Pattern{
		RegExp{Source: `\w+`, Flags: "g"},
		regexp.MustCompile(`\w+`),
	} {
		r, _ := FindAll(dad, FilterAll, p)
		if !equalSpans(spansOf(r), want) {
			t.Errorf("%v: expected records %v, have %v", p, want, spansOf(r))
		}
	}
}

func TestFindAllFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	const str = "ABCDEFGHIDEFGHIJKL"
	def := []span{{3, 6}, {9, 12}}
	ghi := []span{{6, 9}, {12, 15}}
	tests := []struct {
		name     string
		patterns []string
		want     []span
		pattern  Literal
	}{
		{"DEF", []string{"DEF"}, def, "DEF"},
		{"GHI", []string{"GHI"}, ghi, "GHI"},
		{"DEF, fallback GHI", []string{"DEF", "GHI"}, def, "DEF"},
		{"XYZ, fallback DEF", []string{"XYZ", "DEF"}, def, "DEF"},
		{"XYZ, fallback GHI", []string{"XYZ", "GHI"}, ghi, "GHI"},
		{"XYZ, DEF, GHI", []string{"XYZ", "DEF", "GHI"}, def, "DEF"},
		{"DEF, XYZ, GHI", []string{"DEF", "XYZ", "GHI"}, def, "DEF"},
		{"XYZ, GHI, DEF", []string{"XYZ", "GHI", "DEF"}, ghi, "GHI"},
		{"GHI, XYZ, DEF", []string{"GHI", "XYZ", "DEF"}, ghi, "GHI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FindAll(str, FilterFirst, Literals(tt.patterns...)...)
			if err != nil {
				t.Fatal(err)
			}
			if !equalSpans(spansOf(r), tt.want) {
				t.Errorf("expected records %v, have %v", tt.want, spansOf(r))
			}
			for _, o := range r.Offsets() {
				if o.Pattern != tt.pattern {
					t.Errorf("expected only matches of %s, have %v", tt.pattern, o)
				}
			}
		})
	}
}

func TestFindAllUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	r, _ := FindAll("ABCDEFGHIDEFGHIJKL", FilterAll, Literal("DEF"), Literal("GHI"))
	want := []span{{3, 6}, {6, 9}, {9, 12}, {12, 15}}
	if !equalSpans(spansOf(r), want) {
		t.Fatalf("expected records %v, have %v", want, spansOf(r))
	}
	patterns := []Literal{"DEF", "GHI", "DEF", "GHI"}
	for i, o := range r.Offsets() {
		if o.Pattern != patterns[i] {
			t.Errorf("record #%d: expected pattern %s, have %v", i, patterns[i], o.Pattern)
		}
	}
}

func TestRegExpFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	r, _ := FindAll("Abc abc ABC", FilterAll, RegExp{Source: "abc", Flags: "gi"})
	if r.Count() != 3 {
		t.Errorf("expected 3 case-insensitive matches, have %d", r.Count())
	}
	r, _ = FindAll("one\ntwo", FilterAll, RegExp{Source: `^\w+$`, Flags: "m"})
	if want := []span{{0, 3}, {4, 7}}; !equalSpans(spansOf(r), want) {
		t.Errorf("expected line matches %v, have %v", want, spansOf(r))
	}
	if _, err := (RegExp{Source: "x", Flags: "y"}).expr(); err == nil {
		t.Errorf("expected flag 'y' to be unsupported")
	}
}

func TestUnsupportedPatternsAreSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	var nilRE *regexp.Regexp
	s, err := Compile(
		nil,
		Literal(""),
		time.Duration(53),
		nilRE,
		RegExp{Source: "("},
		RegExp{Source: "DEF", Flags: "y"},
		Literal("JKL"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if p := s.Patterns(); len(p) != 1 || p[0] != Literal("JKL") {
		t.Errorf("expected JKL to be the only usable pattern, have %v", p)
	}
	o, ok := s.FindOne(abc).Offset()
	if !ok || o.Start != 12 {
		t.Errorf("expected match of JKL at 12, have %v", o)
	}
}

func TestNoPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	if r, err := FindOne(abc); r != nil || !errors.Is(err, ErrNoPatterns) {
		t.Errorf("expected ErrNoPatterns from FindOne, have %v, %v", r, err)
	}
	if r, err := FindAll(abc, FilterAll); r != nil || !errors.Is(err, ErrNoPatterns) {
		t.Errorf("expected ErrNoPatterns from FindAll, have %v, %v", r, err)
	}
	unusable := []Pattern{nil, Literal(""), time.Duration(53), RegExp{Source: "("}}
	if r, err := FindOne(abc, unusable...); r != nil || !errors.Is(err, ErrNoPatterns) {
		t.Errorf("expected ErrNoPatterns from FindOne without usable patterns, have %v, %v", r, err)
	}
	if r, err := FindAll(abc, FilterFirst, unusable...); r != nil || !errors.Is(err, ErrNoPatterns) {
		t.Errorf("expected ErrNoPatterns from FindAll without usable patterns, have %v, %v", r, err)
	}
	if s, err := Compile(unusable...); s != nil || !errors.Is(err, ErrNoPatterns) {
		t.Errorf("expected ErrNoPatterns from Compile without usable patterns, have %v", err)
	}
	// a usable pattern without a match is not the same as no patterns at all
	if r, err := FindOne(abc, Literal("XYZ")); r == nil || err != nil {
		t.Errorf("expected live result for a pattern without match, have %v, %v", r, err)
	}
}

func TestSearcherIsReusable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	s, err := Compile(Literal("XYZ"), Literal("DEF"), RegExp{Source: `J\w`})
	if err != nil {
		t.Fatal(err)
	}
	if s.literals == nil {
		t.Errorf("expected literal prefilter for two literal patterns")
	}
	r1 := s.FindAll(abc, FilterAll)
	r1.Remove()
	r2 := s.FindAll(abc, FilterAll)
	if want := []span{{3, 6}, {9, 12}, {12, 14}}; !equalSpans(spansOf(r2), want) {
		t.Errorf("expected records %v, have %v", want, spansOf(r2))
	}
	// no literal in text: the regular expression is still consulted
	r3 := s.FindAll("-JK-", FilterAll)
	if want := []span{{1, 3}}; !equalSpans(spansOf(r3), want) {
		t.Errorf("expected records %v, have %v", want, spansOf(r3))
	}
	if r1.Text() == r2.Text() {
		t.Errorf("results of a searcher must not share text")
	}
}

func TestOffsetHelpers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strmatch")
	defer teardown()
	//
	r, _ := FindAll(abc, FilterAll, Literal("DEF"))
	o, _ := r.Offset()
	if o.Len() != 3 || o.IsEmpty() || o.In(r.Text()) != "DEF" {
		t.Errorf("expected record of DEF, have %v (len %d)", o, o.Len())
	}
	if o.String() != `[3,6) "DEF"` {
		t.Errorf("unexpected record format %s", o)
	}
	if o.In("ABC") != "" {
		t.Errorf("record beyond text must yield empty string")
	}
	r.Remove()
	o, _ = r.Offset()
	if o.Len() != 0 || !o.IsEmpty() || o.In(r.Text()) != "" {
		t.Errorf("expected removed record to be empty, have %v", o)
	}
	if (Offset{Start: 4, End: 2}).In(abc) != "" {
		t.Errorf("inverted record must yield empty string")
	}
}
