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
	"bytes"
)

// A Buffer holds the ordered rows of the file being edited. Mutations keep
// row indexes and highlight caches current and advance the dirty counter.
type Buffer struct {
	rows   []*Row
	syntax *Syntax
	dirty  int
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

// Row returns the row at an index, or nil when the index is out of range.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

func (b *Buffer) RowLength(at int) int {
	if at < 0 || at >= len(b.rows) {
		return 0
	}
	return b.rows[at].Length()
}

// Dirty counts content mutations since the last load or save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

func (b *Buffer) Syntax() *Syntax {
	return b.syntax
}

// SetSyntax switches the active language profile and recolors every row.
func (b *Buffer) SetSyntax(s *Syntax) {
	b.syntax = s
	b.highlightAll()
}

// InsertRow inserts a row at an index, appending when the index is the row
// count and ignoring other out-of-range positions.
func (b *Buffer) InsertRow(at int, text string) {
	if at < 0 || at > len(b.rows) {
		return
	}
	row := NewRow(text)
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	b.renumber(at)
	b.updateSyntax(row)
	b.dirty++
}

// DeleteRow removes the row at an index and recolors the row that takes its
// place, since that row's comment context may have changed.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.renumber(at)
	if at < len(b.rows) {
		b.updateSyntax(b.rows[at])
	}
	b.dirty++
}

// InsertChar inserts a byte into a row, clamping the column to the row end.
func (b *Buffer) InsertChar(at, col int, c byte) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	row := b.rows[at]
	row.insertChar(col, c)
	b.updateSyntax(row)
	b.dirty++
}

// DeleteChar removes a byte from a row if the column is in range.
func (b *Buffer) DeleteChar(at, col int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	row := b.rows[at]
	if col < 0 || col >= row.Length() {
		return
	}
	row.deleteChar(col)
	b.updateSyntax(row)
	b.dirty++
}

// AppendText appends text to the tail of a row.
func (b *Buffer) AppendText(at int, text string) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	row := b.rows[at]
	row.appendText([]byte(text))
	b.updateSyntax(row)
	b.dirty++
}

// SplitRow truncates a row at a column and moves the removed tail into a
// new row below it.
func (b *Buffer) SplitRow(at, col int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	row := b.rows[at]
	tail := row.split(col)
	b.InsertRow(at+1, string(tail))
	b.updateSyntax(row)
}

// Bytes serializes every row followed by a newline, the last row included.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for _, row := range b.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// ReadBytes replaces the buffer contents. Lines are split on newlines;
// trailing carriage returns are dropped. The dirty counter resets.
func (b *Buffer) ReadBytes(data []byte) {
	b.rows = make([]*Row, 0)
	lines := bytes.Split(data, []byte{'\n'})
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		line = bytes.TrimRight(line, "\r")
		b.rows = append(b.rows, NewRow(string(line)))
	}
	b.renumber(0)
	b.highlightAll()
	b.dirty = 0
}

func (b *Buffer) renumber(from int) {
	for i := from; i < len(b.rows); i++ {
		b.rows[i].idx = i
	}
}

// updateSyntax recolors a row and walks forward while the open-comment flag
// keeps changing, so unterminated block comments color the rows they cover.
func (b *Buffer) updateSyntax(row *Row) {
	for {
		open := row.idx > 0 && b.rows[row.idx-1].hlOpenComment
		hl, endsOpen := b.syntax.Highlight(row.render, open)
		row.hl = hl
		changed := row.hlOpenComment != endsOpen
		row.hlOpenComment = endsOpen
		if !changed || row.idx+1 >= len(b.rows) {
			return
		}
		row = b.rows[row.idx+1]
	}
}

func (b *Buffer) highlightAll() {
	for _, row := range b.rows {
		b.updateSyntax(row)
	}
}
