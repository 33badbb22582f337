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
package types

// Editor modes
const (
	ModeCommand = 0
	ModeInsert  = 1
)

// Key is a decoded keystroke. Plain bytes are their own values; keys that
// arrive as escape sequences get values above the byte range.
type Key int

// KeyNone is returned when no input arrives within the read timeout.
const KeyNone Key = -1

// Control keys
const (
	KeyCtrlE     Key = 5
	KeyCtrlH     Key = 8
	KeyTab       Key = 9
	KeyCtrlL     Key = 12
	KeyEnter     Key = 13
	KeyCtrlY     Key = 25
	KeyEscape    Key = 27
	KeyBackspace Key = 127
)

// Escape-sequence keys
const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyShiftArrowLeft
	KeyShiftArrowRight
	KeyShiftArrowUp
	KeyShiftArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// HighlightClass labels one rendered byte for coloring.
type HighlightClass byte

const (
	HighlightNormal HighlightClass = iota
	HighlightComment
	HighlightMLComment
	HighlightKeyword1
	HighlightKeyword2
	HighlightString
	HighlightNumber
	HighlightMatch
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// KeySource produces decoded keystrokes.
type KeySource interface {
	ReadKey() (Key, error)
}

// WindowSizer reports the current terminal dimensions.
type WindowSizer interface {
	Size() (rows int, cols int, err error)
}

// PromptObserver is notified after each keystroke handled by a prompt,
// with the input accumulated so far.
type PromptObserver interface {
	Observe(input string, key Key)
}

// NopObserver ignores prompt keystrokes.
type NopObserver struct{}

func (NopObserver) Observe(string, Key) {}
