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
package commander

import (
	"log"
	"strconv"

	"github.com/OrangeXarot/thor/editor"
	"github.com/OrangeXarot/thor/screen"
	thor "github.com/OrangeXarot/thor/types"
)

var nop = thor.NopObserver{}

// The Commander converts keystrokes into commands for the Editor. Prompts
// for colon commands, searches, yanks and deletes run as nested input
// loops on the message bar, so the Commander renders through the Screen
// and reads keys itself while one is open.
type Commander struct {
	editor  *editor.Editor
	screen  *screen.Screen
	keys    thor.KeySource
	running bool
}

func NewCommander(e *editor.Editor, s *screen.Screen, keys thor.KeySource) *Commander {
	return &Commander{editor: e, screen: s, keys: keys, running: true}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ProcessKey(key thor.Key) error {
	if key == thor.KeyNone {
		return nil
	}
	switch c.editor.Mode() {
	case thor.ModeInsert:
		return c.processKeyInsertMode(key)
	default:
		return c.processKeyCommandMode(key)
	}
}

func (c *Commander) processKeyCommandMode(key thor.Key) error {
	e := c.editor
	switch key {
	case thor.KeyArrowUp, thor.KeyArrowDown, thor.KeyArrowLeft, thor.KeyArrowRight:
		e.MoveCursor(key)
	case thor.KeyShiftArrowUp:
		c.repeatMove(thor.KeyArrowUp, 4)
	case thor.KeyShiftArrowDown:
		c.repeatMove(thor.KeyArrowDown, 4)
	case thor.KeyShiftArrowLeft:
		c.repeatMove(thor.KeyArrowLeft, 4)
	case thor.KeyShiftArrowRight:
		c.repeatMove(thor.KeyArrowRight, 4)
	case ',':
		c.repeatMove(thor.KeyArrowLeft, 5)
	case '.':
		c.repeatMove(thor.KeyArrowRight, 5)
	case thor.KeyPageUp:
		e.PageUp()
	case thor.KeyPageDown:
		e.PageDown()
	case thor.KeyHome:
		e.MoveToBeginningOfLine()
	case thor.KeyEnd:
		e.MoveToEndOfLine()
	case thor.KeyCtrlY, thor.KeyCtrlE:
		e.ScrollView(key)
	case 'g':
		e.MoveToFirstRow()
		e.SetStatusMessage("The Beginning Of Time")
	case 'G':
		e.MoveToLastRow()
		e.SetStatusMessage("The End Of Time")
	case 'x', thor.KeyDelete:
		e.MoveCursor(thor.KeyArrowRight)
		e.DelChar()
		e.SetStatusMessage("To lazy to enter insert mode huh?")
	case 'X':
		e.DelChar()
	case 'i':
		e.SetMode(thor.ModeInsert)
		e.SetStatusMessage("-- INSERT MODE --")
	case 'o':
		e.OpenRowBelow()
		e.SetMode(thor.ModeInsert)
	case 'O':
		e.OpenRowAbove()
		e.SetMode(thor.ModeInsert)
	case 'y':
		return c.yankPrompt()
	case 'd':
		return c.deletePrompt()
	case 'p':
		e.PasteRows()
	case ':':
		return c.commandPrompt()
	case '/':
		return c.searchPrompt()
	}
	return nil
}

func (c *Commander) processKeyInsertMode(key thor.Key) error {
	e := c.editor
	switch key {
	case thor.KeyEnter:
		e.InsertNewline()
	case thor.KeyBackspace, thor.KeyCtrlH:
		e.DelChar()
	case thor.KeyDelete:
		e.MoveCursor(thor.KeyArrowRight)
		e.DelChar()
	case thor.KeyTab:
		for i := 0; i < 4; i++ {
			e.InsertChar(' ')
		}
	case thor.KeyArrowUp, thor.KeyArrowDown, thor.KeyArrowLeft, thor.KeyArrowRight:
		e.MoveCursor(key)
	case thor.KeyPageUp:
		e.PageUp()
	case thor.KeyPageDown:
		e.PageDown()
	case thor.KeyHome:
		e.MoveToBeginningOfLine()
	case thor.KeyEnd:
		e.MoveToEndOfLine()
	case thor.KeyCtrlY, thor.KeyCtrlE:
		e.ScrollView(key)
	case thor.KeyEscape, thor.KeyCtrlL:
		e.SetMode(thor.ModeCommand)
	case '(':
		c.insertPair('(', ')')
	case '[':
		c.insertPair('[', ']')
	case '{':
		c.insertPair('{', '}')
	case '"':
		c.insertPair('"', '"')
	case '\'':
		c.insertPair('\'', '\'')
	default:
		if key > 0 && key < 128 {
			e.InsertChar(byte(key))
		}
	}
	return nil
}

func (c *Commander) repeatMove(key thor.Key, times int) {
	for i := 0; i < times; i++ {
		c.editor.MoveCursor(key)
	}
}

// insertPair types a bracket pair and backs the cursor in between.
func (c *Commander) insertPair(open, closing byte) {
	c.editor.InsertChar(open)
	c.editor.InsertChar(closing)
	c.editor.MoveCursor(thor.KeyArrowLeft)
}

// prompt runs a nested input loop on the message bar. The label needs a
// %s for the input typed so far. The observer sees every keystroke.
// Escape cancels and returns the empty string; Enter submits, but only
// once the input is non-empty.
func (c *Commander) prompt(label string, observer thor.PromptObserver) (string, error) {
	e := c.editor
	var input []byte
	for {
		e.SetStatusMessage(label, input)
		if err := c.screen.Render(e); err != nil {
			return "", err
		}
		key, err := c.keys.ReadKey()
		if err != nil {
			return "", err
		}
		if key == thor.KeyNone {
			continue
		}
		switch {
		case key == thor.KeyBackspace || key == thor.KeyCtrlH || key == thor.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case key == thor.KeyEscape:
			e.SetStatusMessage("")
			observer.Observe(string(input), key)
			return "", nil
		case key == thor.KeyEnter:
			if len(input) > 0 {
				e.SetStatusMessage("")
				observer.Observe(string(input), key)
				return string(input), nil
			}
		case key > 31 && key < 127:
			input = append(input, byte(key))
		}
		observer.Observe(string(input), key)
	}
}

func (c *Commander) commandPrompt() error {
	command, err := c.prompt("Command: :%s", nop)
	if err != nil {
		return err
	}
	if command == "" {
		return nil
	}
	return c.PerformCommand(command)
}

// PerformCommand executes one colon command.
func (c *Commander) PerformCommand(command string) error {
	e := c.editor
	switch command {
	case "q":
		if e.Dirty() > 0 {
			e.SetStatusMessage("Unsaved Changes Detected (use ! to override)")
			return nil
		}
		c.running = false
	case "q!":
		c.running = false
	case "w":
		_, err := c.save()
		return err
	case "wq":
		saved, err := c.save()
		if err != nil {
			return err
		}
		if saved {
			c.running = false
		}
	case "help":
		e.SetStatusMessage(":help quit | :help editor | :help other")
	case "help quit":
		e.SetStatusMessage(":q = quit | :q! = override quit | :w = save | :wq = save and quit")
	case "help editor":
		e.SetStatusMessage(":num = goto line num | / = search")
	case "help other":
		e.SetStatusMessage(":help = shows help | :creds = shows credits")
	case "creds":
		e.SetStatusMessage("Made by OrangeXarot, Named by i._.tram")
	default:
		if line, err := strconv.Atoi(command); err == nil {
			e.GoToLine(line)
			return nil
		}
		e.SetStatusMessage("Invalid Syntax \":%s\"", command)
	}
	return nil
}

// save writes the buffer out, prompting for a file name the first time.
func (c *Commander) save() (bool, error) {
	e := c.editor
	if e.Filename() == "" {
		name, err := c.prompt("Save as: %s", nop)
		if err != nil {
			return false, err
		}
		if name == "" {
			e.SetStatusMessage("Save Aborted")
			return false, nil
		}
		e.SetFilename(name)
	}
	if err := e.Save(); err != nil {
		log.Printf("save failed: %v", err)
		return false, nil
	}
	return true, nil
}

func (c *Commander) yankPrompt() error {
	input, err := c.prompt("Yanking: %s", nop)
	if err != nil {
		return err
	}
	if count, ok := parseCount(input, 'y'); ok {
		c.editor.YankRows(count)
	}
	return nil
}

func (c *Commander) deletePrompt() error {
	input, err := c.prompt("Deleting: %s", nop)
	if err != nil {
		return err
	}
	if count, ok := parseCount(input, 'd'); ok {
		c.editor.CutRows(count)
	}
	return nil
}

// parseCount reads a yank or delete prompt reply: the echoed verb means
// one row, digits give a count, anything else is ignored.
func parseCount(input string, verb byte) (int, bool) {
	if input == "" {
		return 0, false
	}
	if input[0] == verb {
		return 1, true
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 0 {
		return n, true
	}
	return 0, false
}

// searchPrompt runs incremental search, restoring the view on cancel.
func (c *Commander) searchPrompt() error {
	e := c.editor
	savedCursor := e.Cursor()
	savedOffset := e.Offset()
	query, err := c.prompt("Search: %s", e.NewFindObserver())
	if err != nil {
		return err
	}
	if query == "" {
		e.SetCursor(savedCursor)
		e.SetOffset(savedOffset)
	}
	return nil
}
