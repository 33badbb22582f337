//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	thor "github.com/OrangeXarot/thor/types"
)

func TestSyntaxForFilename(t *testing.T) {
	cases := []struct {
		filename string
		filetype string
	}{
		{"main.c", "c"},
		{"defs.h", "c"},
		{"prog.cpp", "c"},
		{"main.go", "go"},
		{"install.sh", "shell"},
		{"notes.txt", "text"},
		{"README", ""},
		{"", ""},
	}
	for _, c := range cases {
		s := SyntaxForFilename(c.filename)
		got := ""
		if s != nil {
			got = s.Filetype()
		}
		if got != c.filetype {
			t.Errorf("SyntaxForFilename(%q) = %q, want %q", c.filename, got, c.filetype)
		}
	}
}

func TestNilSyntaxClassifiesNormal(t *testing.T) {
	var s *Syntax
	hl, open := s.Highlight([]byte(`int x = "10"; // hi`), false)
	if open {
		t.Errorf("Nil syntax reported an open comment")
	}
	for i, h := range hl {
		if h != thor.HighlightNormal {
			t.Errorf("Byte %d not normal under nil syntax: %d", i, h)
		}
	}
}

func TestLineCommentStopsRow(t *testing.T) {
	s := SyntaxForFilename("main.c")
	hl, _ := s.Highlight([]byte("x; // done"), false)
	for i := 3; i < len(hl); i++ {
		if hl[i] != thor.HighlightComment {
			t.Errorf("Byte %d after // not a comment: %d", i, hl[i])
		}
	}
	if hl[0] != thor.HighlightNormal {
		t.Errorf("Byte before the comment recolored: %d", hl[0])
	}
}

func TestStringEscapes(t *testing.T) {
	s := SyntaxForFilename("main.c")
	// the escaped quote must not close the string
	hl, _ := s.Highlight([]byte(`"a\"b" x`), false)
	for i := 0; i < 6; i++ {
		if hl[i] != thor.HighlightString {
			t.Errorf("String byte %d not classified: %d", i, hl[i])
		}
	}
	if hl[7] == thor.HighlightString {
		t.Errorf("String ran past its closing quote")
	}
}

func TestNumberClassification(t *testing.T) {
	s := SyntaxForFilename("main.c")
	hl, _ := s.Highlight([]byte("x = 10.5;"), false)
	for i := 4; i < 8; i++ { // "10.5"
		if hl[i] != thor.HighlightNumber {
			t.Errorf("Number byte %d not classified: %d", i, hl[i])
		}
	}
	if hl[0] != thor.HighlightNormal || hl[8] != thor.HighlightNormal {
		t.Errorf("Number classification bled into neighbors")
	}
}

func TestDigitInsideWordIsNotANumber(t *testing.T) {
	s := SyntaxForFilename("main.c")
	hl, _ := s.Highlight([]byte("var2"), false)
	if hl[3] == thor.HighlightNumber {
		t.Errorf("Digit inside an identifier classified as a number")
	}
}

func TestKeywordNeedsTrailingSeparator(t *testing.T) {
	s := SyntaxForFilename("main.c")

	hl, _ := s.Highlight([]byte("if (x)"), false)
	if hl[0] != thor.HighlightKeyword1 || hl[1] != thor.HighlightKeyword1 {
		t.Errorf("'if' not classified as a keyword")
	}

	hl, _ = s.Highlight([]byte("iffy"), false)
	for i, h := range hl {
		if h != thor.HighlightNormal {
			t.Errorf("Byte %d of 'iffy' classified as %d", i, h)
		}
	}

	// a keyword at end of row counts as terminated
	hl, _ = s.Highlight([]byte("return"), false)
	if hl[5] != thor.HighlightKeyword1 {
		t.Errorf("Keyword at end of row not classified")
	}
}

func TestKeywordClassesByMarker(t *testing.T) {
	s := SyntaxForFilename("main.c")
	hl, _ := s.Highlight([]byte("int if"), false)
	if hl[0] != thor.HighlightKeyword2 {
		t.Errorf("'int' should be the secondary class: %d", hl[0])
	}
	if hl[4] != thor.HighlightKeyword1 {
		t.Errorf("'if' should be the primary class: %d", hl[4])
	}
}

func TestBlockCommentWithinRow(t *testing.T) {
	s := SyntaxForFilename("main.c")
	hl, open := s.Highlight([]byte("a /* b */ c"), false)
	if open {
		t.Errorf("Closed comment reported open")
	}
	for i := 2; i < 9; i++ {
		if hl[i] != thor.HighlightMLComment {
			t.Errorf("Comment byte %d not classified: %d", i, hl[i])
		}
	}
	if hl[0] != thor.HighlightNormal || hl[10] != thor.HighlightNormal {
		t.Errorf("Comment classification bled into neighbors")
	}
}

func TestCommentStartInsideStringIgnored(t *testing.T) {
	s := SyntaxForFilename("main.c")
	hl, open := s.Highlight([]byte(`"/*" x`), false)
	if open {
		t.Errorf("Comment opened inside a string")
	}
	for i := 0; i < 4; i++ {
		if hl[i] != thor.HighlightString {
			t.Errorf("String byte %d not classified: %d", i, hl[i])
		}
	}
}

func TestShellHashComment(t *testing.T) {
	s := SyntaxForFilename("run.sh")
	hl, _ := s.Highlight([]byte("echo hi # note"), false)
	if hl[0] != thor.HighlightKeyword1 {
		t.Errorf("'echo' not classified as a keyword")
	}
	for i := 8; i < len(hl); i++ {
		if hl[i] != thor.HighlightComment {
			t.Errorf("Byte %d after # not a comment: %d", i, hl[i])
		}
	}
}

func TestTextProfileNumbersOnly(t *testing.T) {
	s := SyntaxForFilename("notes.txt")
	hl, _ := s.Highlight([]byte(`say "42" 7`), false)
	if hl[5] != thor.HighlightNormal {
		t.Errorf("Text profile should not classify strings: %d", hl[5])
	}
	if hl[9] != thor.HighlightNumber {
		t.Errorf("Text profile should classify numbers: %d", hl[9])
	}
}
