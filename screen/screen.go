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
package screen

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/OrangeXarot/thor/editor"
	thor "github.com/OrangeXarot/thor/types"
)

// The Screen draws the state of an Editor as full terminal frames. Each
// frame is assembled in one buffer and written with a single Write, so a
// repaint never flickers partially drawn rows.
type Screen struct {
	w    io.Writer
	ws   thor.WindowSizer
	size thor.Size // most recent terminal size
	buf  bytes.Buffer
}

func NewScreen(w io.Writer, ws thor.WindowSizer) *Screen {
	return &Screen{w: w, ws: ws}
}

// Render draws one frame: text rows, status bar, message bar, and the
// cursor, whose shape follows the mode. The terminal size is polled every
// frame, which also picks up resizes.
func (s *Screen) Render(e *editor.Editor) error {
	rows, cols, err := s.ws.Size()
	if err != nil {
		return err
	}
	s.size = thor.Size{Rows: rows, Cols: cols}

	// the bottom two lines belong to the status and message bars
	editSize := thor.Size{Rows: rows - 2, Cols: cols}
	e.SetSize(editSize)
	e.Scroll()

	s.buf.Reset()
	s.buf.WriteString("\x1b[?25l")
	s.buf.WriteString("\x1b[H")
	if e.Mode() == thor.ModeCommand {
		s.buf.WriteString("\x1b[1 q")
	} else {
		s.buf.WriteString("\x1b[5 q")
	}
	s.drawRows(e, editSize)
	s.drawStatusBar(e, editSize)
	s.drawMessageBar(e)
	fmt.Fprintf(&s.buf, "\x1b[%d;%dH",
		e.Cursor().Row-e.Offset().Rows+1, e.RX()-e.Offset().Cols+1)
	s.buf.WriteString("\x1b[?25h")
	_, err = s.w.Write(s.buf.Bytes())
	return err
}

// Clear blanks the terminal and homes the cursor, for shutdown.
func (s *Screen) Clear() error {
	_, err := s.w.Write([]byte("\x1b[2J\x1b[H"))
	return err
}

func (s *Screen) drawRows(e *editor.Editor, size thor.Size) {
	b := e.Buffer()
	offset := e.Offset()
	for y := 0; y < size.Rows; y++ {
		filerow := y + offset.Rows
		if filerow >= b.RowCount() {
			if b.RowCount() == 0 {
				s.drawWelcomeRow(y, size)
			} else {
				s.buf.WriteString("\x1b[94m~\x1b[39m")
			}
		} else {
			s.drawTextRow(b.Row(filerow), offset.Cols, size.Cols)
		}
		s.buf.WriteString("\x1b[K")
		s.buf.WriteString("\r\n")
	}
}

// welcomeText places the greeting block a third of the way down an empty
// buffer's window.
func welcomeText(y, rows int) (string, bool) {
	switch y - rows/3 {
	case 0:
		return "THOR - The Text EdiTHOR", true
	case 2:
		return "version " + editor.Version, true
	case 3:
		return "made by OrangeXarot", true
	case 5:
		return ":help     prints help commands", true
	case 6:
		return ":q                  exits thor", true
	case 7:
		return ":w              saves the file", true
	case 8:
		return ":creds  prints all the credits", true
	}
	return "", false
}

func (s *Screen) drawWelcomeRow(y int, size thor.Size) {
	text, ok := welcomeText(y, size.Rows)
	if !ok {
		s.buf.WriteString("\x1b[94m~\x1b[39m")
		return
	}
	if len(text) > size.Cols {
		text = text[:size.Cols]
	}
	padding := (size.Cols - len(text)) / 2
	if padding > 0 {
		s.buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		s.buf.WriteByte(' ')
	}
	s.buf.WriteString(text)
}

// drawTextRow emits the visible slice of one row, switching colors only
// when the highlight class changes. Control bytes show inverse as @-coded
// symbols. The match class paints black on yellow; the yellow background
// is dropped at the end of the row.
func (s *Screen) drawTextRow(row *editor.Row, coloff, cols int) {
	render := row.Render()
	hl := row.Highlight()
	if coloff > len(render) {
		coloff = len(render)
	}
	line := render[coloff:]
	lineHl := hl[coloff:]
	if len(line) > cols {
		line = line[:cols]
		lineHl = lineHl[:cols]
	}
	currentColor := -1
	for j, c := range line {
		switch {
		case c < 32 || c == 127:
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			s.buf.WriteString("\x1b[7m")
			s.buf.WriteByte(sym)
			s.buf.WriteString("\x1b[m")
			if currentColor != -1 {
				fmt.Fprintf(&s.buf, "\x1b[%dm", currentColor)
			}
		case lineHl[j] == thor.HighlightNormal:
			if currentColor != -1 {
				s.buf.WriteString("\x1b[39m")
				currentColor = -1
			}
			s.buf.WriteByte(c)
		default:
			color := syntaxToColor(lineHl[j])
			if color != currentColor {
				currentColor = color
				if color == 43 {
					s.buf.WriteString("\x1b[30;43m")
				} else {
					fmt.Fprintf(&s.buf, "\x1b[%dm", color)
				}
			}
			s.buf.WriteByte(c)
		}
	}
	s.buf.WriteString("\x1b[39m")
	s.buf.WriteString("\x1b[49m")
}

func syntaxToColor(hl thor.HighlightClass) int {
	switch hl {
	case thor.HighlightComment, thor.HighlightMLComment:
		return 96
	case thor.HighlightKeyword1:
		return 93
	case thor.HighlightKeyword2:
		return 92
	case thor.HighlightString:
		return 95
	case thor.HighlightNumber:
		return 91
	case thor.HighlightMatch:
		return 43
	default:
		return 37
	}
}

func (s *Screen) drawStatusBar(e *editor.Editor, size thor.Size) {
	s.buf.WriteString("\x1b[7m")

	filename := e.Filename()
	if filename == "" {
		filename = "[New File]"
	}
	if len(filename) > 20 {
		filename = filename[:20]
	}
	dirtyMark := ""
	if e.Dirty() > 0 {
		dirtyMark = "*"
	}
	status := fmt.Sprintf(" %s%s - %d lines", filename, dirtyMark, e.Buffer().RowCount())

	filetype := "filetype not detected"
	if syn := e.Buffer().Syntax(); syn != nil {
		filetype = syn.Filetype()
	}
	percent := 100
	if rowCount := e.Buffer().RowCount(); rowCount > size.Rows {
		percent = 100 * e.Offset().Rows / (rowCount - size.Rows)
		if percent > 100 {
			percent = 100
		}
	}
	rstatus := fmt.Sprintf("%s | %d%% %d,%d ",
		filetype, percent, e.Cursor().Row+1, e.Cursor().Col+1)

	if len(status) > size.Cols {
		status = status[:size.Cols]
	}
	s.buf.WriteString(status)
	for length := len(status); length < size.Cols; {
		if size.Cols-length == len(rstatus) {
			s.buf.WriteString(rstatus)
			break
		}
		s.buf.WriteByte(' ')
		length++
	}
	s.buf.WriteString("\x1b[m")
	s.buf.WriteString("\r\n")
}

func (s *Screen) drawMessageBar(e *editor.Editor) {
	s.buf.WriteString("\x1b[K")
	msg, when := e.StatusMessage()
	if len(msg) > s.size.Cols {
		msg = msg[:s.size.Cols]
	}
	if msg != "" && time.Since(when) < 5*time.Second {
		for padding := (s.size.Cols - len(msg)) / 2; padding > 0; padding-- {
			s.buf.WriteByte(' ')
		}
		s.buf.WriteString(msg)
	}
}
