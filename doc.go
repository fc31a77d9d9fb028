/*
Package strmatch locates matches in a string and edits the string at the
match locations, keeping track of where the matches are.

Searching

A search takes a text and one or more patterns. Patterns are either literal
substrings or regular expressions:

	r, err := strmatch.FindAll(text, strmatch.FilterAll,
	    strmatch.Literal("DEF"),
	    strmatch.RegExp{Source: `\bg\w+`, Flags: "i"})

FindOne stops at the first match of the first matching pattern. FindAll
collects all the matches, either of every pattern (FilterAll) or of the first
pattern which matches at all (FilterFirst), with subsequent patterns acting as
fallbacks. Regular expressions are re-created from their source, and matching
them carries no scan state from one search to another. A Searcher pre-compiles
a list of patterns for re-use with many texts.

Editing

The result of a search owns a copy of the text and a record (an Offset) for
every match. Edits are applied at every match at once:

	r.Before("<").After(">")   // wrap every match in angle brackets
	r.Replace("lol")           // replace every match
	r.Remove()                 // remove every match

Inserting or removing text shifts every subsequent position in the text.
Edits handle this by processing the match records in order and accumulating
the length changes made so far, so records always refer to the current text
and edits may be chained without searching again.

Results without matches accept all edits, leaving the text unchanged.

Positions

Positions are byte offsets into the text. Match records are half-open
ranges [Start, End).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package strmatch
