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
	"fmt"
	"os"
	"time"

	thor "github.com/OrangeXarot/thor/types"
)

const Version = "0.2.0"

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	cursor     thor.Point // cursor position in the buffer
	rx         int        // rendered cursor column, derived on scroll
	offset     thor.Size  // first visible row and rendered column
	size       thor.Size  // size of the editing area
	mode       int        // command or insert
	filename   string
	buffer     *Buffer
	register   *Register
	find       findState
	status     string
	statusTime time.Time
}

func NewEditor() *Editor {
	e := &Editor{}
	e.buffer = NewBuffer()
	e.register = NewRegister()
	e.mode = thor.ModeCommand
	e.find.lastMatch = -1
	e.find.direction = 1
	return e
}

// Open loads a file into the buffer and selects its language profile.
func (e *Editor) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.filename = path
	e.buffer.SetSyntax(SyntaxForFilename(path))
	e.buffer.ReadBytes(data)
	return nil
}

// Save writes the whole buffer to its file, truncating previous contents.
// The outcome lands in the status message either way; the buffer is only
// marked clean on success.
func (e *Editor) Save() error {
	data := e.buffer.Bytes()
	f, err := os.Create(e.filename)
	if err == nil {
		_, err = f.Write(data)
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
	}
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return err
	}
	e.buffer.dirty = 0
	e.SetStatusMessage("%d bytes written to disk", len(data))
	return nil
}

// SetFilename names an unnamed buffer and reselects the language profile.
func (e *Editor) SetFilename(name string) {
	e.filename = name
	e.buffer.SetSyntax(SyntaxForFilename(name))
}

func (e *Editor) Filename() string {
	return e.filename
}

func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.status = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

func (e *Editor) StatusMessage() (string, time.Time) {
	return e.status, e.statusTime
}

func (e *Editor) Mode() int {
	return e.mode
}

func (e *Editor) SetMode(mode int) {
	e.mode = mode
}

func (e *Editor) Cursor() thor.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor thor.Point) {
	e.cursor = cursor
}

// RX is the rendered cursor column computed by the last Scroll.
func (e *Editor) RX() int {
	return e.rx
}

func (e *Editor) Offset() thor.Size {
	return e.offset
}

func (e *Editor) SetOffset(offset thor.Size) {
	e.offset = offset
}

func (e *Editor) SetSize(size thor.Size) {
	e.size = size
}

func (e *Editor) Size() thor.Size {
	return e.size
}

func (e *Editor) Buffer() *Buffer {
	return e.buffer
}

func (e *Editor) Register() *Register {
	return e.register
}

func (e *Editor) Dirty() int {
	return e.buffer.dirty
}

// Scroll derives the rendered cursor column and drags the offsets so the
// cursor stays inside the editing area. Horizontal clamps compare rendered
// columns, which keeps tabs from desynchronizing the view.
func (e *Editor) Scroll() {
	e.rx = 0
	if row := e.buffer.Row(e.cursor.Row); row != nil {
		e.rx = row.CxToRx(e.cursor.Col)
	}
	if e.cursor.Row < e.offset.Rows {
		e.offset.Rows = e.cursor.Row
	}
	if e.cursor.Row >= e.offset.Rows+e.size.Rows {
		e.offset.Rows = e.cursor.Row - e.size.Rows + 1
	}
	if e.rx < e.offset.Cols {
		e.offset.Cols = e.rx
	}
	if e.rx >= e.offset.Cols+e.size.Cols {
		e.offset.Cols = e.rx - e.size.Cols + 1
	}
}

// MoveCursor moves one step, wrapping at row ends and clamping the column
// to the destination row's length. The row past the last is a valid home
// for the cursor; typing there appends a row.
func (e *Editor) MoveCursor(key thor.Key) {
	row := e.buffer.Row(e.cursor.Row)
	switch key {
	case thor.KeyArrowLeft:
		if e.cursor.Col != 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = e.buffer.RowLength(e.cursor.Row)
		}
	case thor.KeyArrowRight:
		if row != nil && e.cursor.Col < row.Length() {
			e.cursor.Col++
		} else if row != nil && e.cursor.Col == row.Length() {
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case thor.KeyArrowUp:
		if e.cursor.Row != 0 {
			e.cursor.Row--
		}
	case thor.KeyArrowDown:
		if e.cursor.Row < e.buffer.RowCount() {
			e.cursor.Row++
		}
	}
	rowLength := e.buffer.RowLength(e.cursor.Row)
	if e.cursor.Col > rowLength {
		e.cursor.Col = rowLength
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.cursor.Col = e.buffer.RowLength(e.cursor.Row)
}

func (e *Editor) MoveToFirstRow() {
	e.cursor.Row = 0
}

func (e *Editor) MoveToLastRow() {
	e.cursor.Row = e.buffer.RowCount()
}

// GoToLine walks the cursor to a 1-based line, clamped to the buffer.
func (e *Editor) GoToLine(line int) {
	if e.buffer.RowCount() == 0 {
		return
	}
	if line < 1 {
		line = 1
	}
	if line > e.buffer.RowCount() {
		line = e.buffer.RowCount()
	}
	for e.cursor.Row != line-1 {
		if e.cursor.Row > line-1 {
			e.MoveCursor(thor.KeyArrowUp)
		} else {
			e.MoveCursor(thor.KeyArrowDown)
		}
	}
}

// PageUp moves the cursor to the top of the window, then up a screenful.
func (e *Editor) PageUp() {
	e.cursor.Row = e.offset.Rows
	for times := e.size.Rows; times > 0; times-- {
		e.MoveCursor(thor.KeyArrowUp)
	}
}

// PageDown moves the cursor to the bottom of the window, then down a
// screenful.
func (e *Editor) PageDown() {
	e.cursor.Row = e.offset.Rows + e.size.Rows - 1
	if e.cursor.Row > e.buffer.RowCount() {
		e.cursor.Row = e.buffer.RowCount()
	}
	for times := e.size.Rows; times > 0; times-- {
		e.MoveCursor(thor.KeyArrowDown)
	}
}

// ScrollView shifts the visible window one row without keeping the cursor
// fixed, dragging it along when it would leave the window.
func (e *Editor) ScrollView(key thor.Key) {
	switch key {
	case thor.KeyCtrlE:
		if e.offset.Rows == e.buffer.RowCount() {
			return
		}
		if e.cursor.Row == e.offset.Rows {
			e.cursor.Row++
		}
		e.offset.Rows++
	case thor.KeyCtrlY:
		if e.offset.Rows == 0 {
			return
		}
		if e.cursor.Row == e.offset.Rows+e.size.Rows-2 {
			e.cursor.Row--
		}
		e.offset.Rows--
	}
}

// InsertChar inserts a byte at the cursor, appending a fresh row when the
// cursor sits past the last one.
func (e *Editor) InsertChar(c byte) {
	if e.cursor.Row == e.buffer.RowCount() {
		e.buffer.InsertRow(e.buffer.RowCount(), "")
	}
	e.buffer.InsertChar(e.cursor.Row, e.cursor.Col, c)
	e.cursor.Col++
}

// InsertNewline splits the current row at the cursor. At column zero the
// new empty row lands above instead.
func (e *Editor) InsertNewline() {
	if e.cursor.Col == 0 {
		e.buffer.InsertRow(e.cursor.Row, "")
	} else {
		e.buffer.SplitRow(e.cursor.Row, e.cursor.Col)
	}
	e.cursor.Row++
	e.cursor.Col = 0
}

// DelChar deletes the character left of the cursor, merging the row into
// the one above at column zero.
func (e *Editor) DelChar() {
	if e.cursor.Row == e.buffer.RowCount() {
		return
	}
	if e.cursor.Col == 0 && e.cursor.Row == 0 {
		return
	}
	if e.cursor.Col > 0 {
		e.buffer.DeleteChar(e.cursor.Row, e.cursor.Col-1)
		e.cursor.Col--
	} else {
		row := e.buffer.Row(e.cursor.Row)
		e.cursor.Col = e.buffer.RowLength(e.cursor.Row - 1)
		e.buffer.AppendText(e.cursor.Row-1, row.Text())
		e.buffer.DeleteRow(e.cursor.Row)
		e.cursor.Row--
	}
}

// OpenRowBelow starts a blank row under the cursor and moves onto it.
func (e *Editor) OpenRowBelow() {
	e.buffer.InsertRow(e.cursor.Row+1, "")
	e.MoveCursor(thor.KeyArrowDown)
	e.cursor.Col = 0
}

// OpenRowAbove starts a blank row at the cursor; the old row slides down
// and the cursor stays on the new one.
func (e *Editor) OpenRowAbove() {
	e.buffer.InsertRow(e.cursor.Row, "")
	e.cursor.Col = 0
}
