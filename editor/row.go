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
	thor "github.com/OrangeXarot/thor/types"
)

// tab stops sit every eight rendered columns
const tabStop = 8

// A row of text in the buffer. The raw bytes are the source of truth;
// render holds the tab-expanded form and hl holds one highlight class per
// render byte. Both caches are rebuilt on every edit.
type Row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []thor.HighlightClass
	hlOpenComment bool
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]byte(text))
	return r
}

func (r *Row) setText(text []byte) {
	r.chars = text
	r.updateRender()
}

// rebuilds the render cache, expanding each tab to the next tab stop, and
// resizes the highlight cache to match
func (r *Row) updateRender() {
	render := make([]byte, 0, len(r.chars))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	r.hl = make([]thor.HighlightClass, len(render))
}

func (r *Row) Length() int {
	return len(r.chars)
}

func (r *Row) Text() string {
	return string(r.chars)
}

func (r *Row) Render() []byte {
	return r.render
}

func (r *Row) Highlight() []thor.HighlightClass {
	return r.hl
}

// CxToRx converts a raw column to its rendered column, widening tabs.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a rendered column back to the raw column whose rendering
// covers it.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// insert character at col, appending if col is out of range
func (r *Row) insertChar(col int, c byte) {
	if col < 0 || col > len(r.chars) {
		col = len(r.chars)
	}
	line := make([]byte, 0, len(r.chars)+1)
	line = append(line, r.chars[:col]...)
	line = append(line, c)
	line = append(line, r.chars[col:]...)
	r.setText(line)
}

// delete the character at col, ignoring out-of-range columns
func (r *Row) deleteChar(col int) {
	if col < 0 || col >= len(r.chars) {
		return
	}
	r.setText(append(r.chars[:col], r.chars[col+1:]...))
}

func (r *Row) appendText(text []byte) {
	line := make([]byte, 0, len(r.chars)+len(text))
	line = append(line, r.chars...)
	line = append(line, text...)
	r.setText(line)
}

// split truncates the row at col and returns the removed tail
func (r *Row) split(col int) []byte {
	if col < 0 {
		col = 0
	}
	if col > len(r.chars) {
		col = len(r.chars)
	}
	after := append([]byte(nil), r.chars[col:]...)
	r.setText(r.chars[:col])
	return after
}
