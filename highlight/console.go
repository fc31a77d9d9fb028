package highlight

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/strmatch"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for highlighting.
type Config struct {
	LineWidth int            // wrap lines longer than this (in ‘en’s); 0 = no wrapping
	Context   *uax11.Context // context for character widths; nil = uax11.LatinContext
	Match     *color.Color   // color for matched text; nil = bold red
	NoColor   bool           // do not color matched text at all
}

var setupGraphemes sync.Once

// Console outputs the text of a search result to w, line by line. Matched
// text is colored, and every line containing matches is followed by a marker
// line with carets (^) below the matched text. Zero-width match records (e.g.,
// after strmatch.Result.Remove) are marked with a single caret at their position.
//
// If config is nil, ConfigFromTerminal is consulted.
func Console(w io.Writer, r *strmatch.Result, config *Config) error {
	if w == nil || r == nil {
		tracer().Errorf("highlight: console output needs writer and result")
		return strmatch.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	c := config.Match
	if c == nil {
		c = color.New(color.FgRed, color.Bold)
	}
	out := bufio.NewWriter(w)
	con := &console{out: out, color: c, nocolor: config.NoColor}
	offsets := r.Offsets()
	text := r.Text()
	base := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		content := strings.TrimSuffix(line, "\n")
		col := 0
		for i, ch := range content {
			pos := base + i
			con.zeroWidthAt(pos, col, offsets)
			wd := runeWidth(ch, ctx)
			if config.LineWidth > 0 && col > 0 && col+wd > config.LineWidth {
				con.newline()
				col = 0
			}
			con.put(string(ch), col, wd, covered(pos, offsets))
			col += wd
		}
		con.zeroWidthAt(base+len(content), col, offsets)
		if len(line) > 0 || len(con.carets) > 0 {
			con.newline()
		}
		base += len(line)
	}
	return out.Flush()
}

// console collects a single output line together with its marker line.
type console struct {
	out     *bufio.Writer
	color   *color.Color
	nocolor bool
	text    strings.Builder
	marked  strings.Builder // pending run of matched text
	carets  []rune
}

func (con *console) put(s string, col, width int, marked bool) {
	if marked {
		con.marked.WriteString(s)
	} else {
		con.flushMarked()
		con.text.WriteString(s)
	}
	for len(con.carets) < col+width {
		con.carets = append(con.carets, ' ')
	}
	if marked {
		for k := col; k < col+width; k++ {
			con.carets[k] = '^'
		}
	}
}

// zeroWidthAt marks the column col if a zero-width record is located at
// byte position pos.
func (con *console) zeroWidthAt(pos, col int, offsets []strmatch.Offset) {
	for _, o := range offsets {
		if o.IsEmpty() && o.Start == pos {
			for len(con.carets) <= col {
				con.carets = append(con.carets, ' ')
			}
			con.carets[col] = '^'
			return
		}
	}
}

func (con *console) flushMarked() {
	if con.marked.Len() == 0 {
		return
	}
	if con.nocolor {
		con.text.WriteString(con.marked.String())
	} else {
		con.text.WriteString(con.color.Sprint(con.marked.String()))
	}
	con.marked.Reset()
}

func (con *console) newline() {
	con.flushMarked()
	con.out.WriteString(con.text.String())
	con.out.WriteByte('\n')
	if carets := strings.TrimRight(string(con.carets), " "); carets != "" {
		con.out.WriteString(carets)
		con.out.WriteByte('\n')
	}
	con.text.Reset()
	con.carets = con.carets[:0]
}

// covered is true if any non-empty match record covers byte position pos.
func covered(pos int, offsets []strmatch.Offset) bool {
	for _, o := range offsets {
		if o.Start > pos {
			break
		}
		if pos < o.End {
			return true
		}
	}
	return false
}

func runeWidth(r rune, ctx *uax11.Context) int {
	if r == '\t' {
		return 1
	}
	return uax11.StringWidth(grapheme.StringFromString(string(r)), ctx)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a highlighting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. If stdout is not a
// terminal, colors are switched off.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 65
		}
	} else {
		config.NoColor = true
	}
	tracer().P("highlight", "console").Debugf("setting line length to %d en", config.LineWidth)
	return config
}
