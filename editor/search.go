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

	thor "github.com/OrangeXarot/thor/types"
)

// findState carries incremental search progress between keystrokes: the
// row of the last hit, the scan direction, and the highlight classes the
// match overlay replaced.
type findState struct {
	lastMatch  int
	direction  int
	savedHlRow int
	savedHl    []thor.HighlightClass
}

// A FindObserver drives incremental search from a prompt, re-running the
// match after every keystroke.
type FindObserver struct {
	editor *Editor
}

func (e *Editor) NewFindObserver() *FindObserver {
	return &FindObserver{editor: e}
}

func (f *FindObserver) Observe(query string, key thor.Key) {
	f.editor.findStep(query, key)
}

func (e *Editor) findStep(query string, key thor.Key) {
	// put back the colors the previous match overlaid
	if e.find.savedHl != nil {
		if row := e.buffer.Row(e.find.savedHlRow); row != nil && len(row.hl) == len(e.find.savedHl) {
			copy(row.hl, e.find.savedHl)
		}
		e.find.savedHl = nil
	}

	switch key {
	case thor.KeyEnter, thor.KeyEscape:
		e.find.lastMatch = -1
		e.find.direction = 1
		return
	case thor.KeyArrowRight, thor.KeyArrowDown:
		e.find.direction = 1
	case thor.KeyArrowLeft, thor.KeyArrowUp:
		e.find.direction = -1
	default:
		// the query changed; restart a forward scan
		e.find.lastMatch = -1
		e.find.direction = 1
	}

	if e.find.lastMatch == -1 {
		e.find.direction = 1
	}
	current := e.find.lastMatch
	for i := 0; i < e.buffer.RowCount(); i++ {
		current += e.find.direction
		if current == -1 {
			current = e.buffer.RowCount() - 1
		} else if current == e.buffer.RowCount() {
			current = 0
		}
		row := e.buffer.Row(current)
		at := bytes.Index(row.render, []byte(query))
		if at < 0 {
			continue
		}
		e.find.lastMatch = current
		e.cursor.Row = current
		e.cursor.Col = row.RxToCx(at)
		// push the offset past the end so the next scroll snaps the
		// match row to the top of the window
		e.offset.Rows = e.buffer.RowCount()
		e.find.savedHlRow = current
		e.find.savedHl = append([]thor.HighlightClass(nil), row.hl...)
		for j := at; j < at+len(query); j++ {
			row.hl[j] = thor.HighlightMatch
		}
		break
	}
}
