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
	"strings"

	"github.com/atotto/clipboard"

	thor "github.com/OrangeXarot/thor/types"
)

// A Register holds the rows most recently yanked or cut. Each yank replaces
// its contents. The text is mirrored to the system clipboard for other
// programs; pasting inside the editor always reads the register itself.
type Register struct {
	lines []string
}

func NewRegister() *Register {
	return &Register{}
}

func (r *Register) Set(lines []string) {
	r.lines = append([]string(nil), lines...)
	// best effort; headless sessions have no clipboard
	_ = clipboard.WriteAll(strings.Join(r.lines, "\n"))
}

func (r *Register) Lines() []string {
	return r.lines
}

func (r *Register) Len() int {
	return len(r.lines)
}

func (r *Register) Empty() bool {
	return len(r.lines) == 0
}

// copyRows snapshots up to count rows starting at the cursor row, clamped
// to the end of the buffer.
func (e *Editor) copyRows(at, count int) []string {
	if count > e.buffer.RowCount()-at {
		count = e.buffer.RowCount() - at
	}
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, e.buffer.Row(at+i).Text())
	}
	return lines
}

// YankRows copies rows starting at the cursor row into the register.
func (e *Editor) YankRows(count int) {
	at := e.cursor.Row
	if e.buffer.Row(at) == nil {
		return
	}
	lines := e.copyRows(at, count)
	e.register.Set(lines)
	e.SetStatusMessage("Yanked %d lines", len(lines))
}

// CutRows copies rows into the register like YankRows, then deletes them.
func (e *Editor) CutRows(count int) {
	at := e.cursor.Row
	if e.buffer.Row(at) == nil {
		return
	}
	lines := e.copyRows(at, count)
	e.register.Set(lines)
	for i := 0; i < len(lines); i++ {
		e.buffer.DeleteRow(at)
	}
	e.SetStatusMessage("Deleted %d lines", len(lines))
}

// PasteRows inserts the register contents below the cursor row and leaves
// the cursor on the last row pasted.
func (e *Editor) PasteRows() {
	if e.register.Empty() {
		e.SetStatusMessage("Nothing in Yank Buffer")
		return
	}
	at := e.cursor.Row
	for i, line := range e.register.Lines() {
		e.buffer.InsertRow(at+1+i, line)
	}
	for i := 0; i < e.register.Len(); i++ {
		e.MoveCursor(thor.KeyArrowDown)
	}
	e.SetStatusMessage("Pasted %d lines", e.register.Len())
}
