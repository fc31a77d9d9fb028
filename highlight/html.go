package highlight

import (
	"io"

	"github.com/npillmayer/strmatch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the text of a search result as a pre-formatted HTML element,
//
//	<pre class="strmatch">ABC<mark data-pattern="DEF">DEF</mark>GHI</pre>
//
// wrapping every match in a mark element. The pattern which produced a match
// is given as attribute data-pattern. Overlapping matches are merged into a
// single mark element, attributed to the first of them. Zero-width matches
// produce empty mark elements.
func HTML(w io.Writer, r *strmatch.Result) error {
	if w == nil || r == nil {
		tracer().Errorf("highlight: HTML output needs writer and result")
		return strmatch.ErrIllegalArguments
	}
	return html.Render(w, MarkedNode(r))
}

// MarkedNode creates an HTML node tree for the text of a search result, as
// rendered by HTML. Clients may insert it into a document of their own.
func MarkedNode(r *strmatch.Result) *html.Node {
	pre := element(atom.Pre, html.Attribute{Key: "class", Val: "strmatch"})
	text := r.Text()
	offsets := r.Offsets()
	pos := 0
	for i := 0; i < len(offsets); {
		first := offsets[i]
		start, end := first.Start, first.End
		j := i + 1
		for j < len(offsets) && offsets[j].Start < end {
			end = max(end, offsets[j].End)
			j++
		}
		if start > pos {
			pre.AppendChild(textNode(text[pos:start]))
		}
		start = max(start, pos)
		var mark *html.Node
		if first.Pattern != nil {
			mark = element(atom.Mark, html.Attribute{Key: "data-pattern", Val: first.Pattern.String()})
		} else {
			mark = element(atom.Mark)
		}
		if end > start {
			mark.AppendChild(textNode(text[start:end]))
		}
		pre.AppendChild(mark)
		pos = max(pos, end)
		i = j
	}
	if pos < len(text) {
		pre.AppendChild(textNode(text[pos:]))
	}
	return pre
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
