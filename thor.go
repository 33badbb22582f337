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
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/OrangeXarot/thor/commander"
	"github.com/OrangeXarot/thor/editor"
	"github.com/OrangeXarot/thor/screen"
	"github.com/OrangeXarot/thor/terminal"
)

func main() {
	config, args := InitConfig()

	if config.ShowVersion {
		fmt.Printf("thor %s\n", editor.Version)
		return
	}

	// Log quietly unless asked to; stray writes would land on the raw
	// terminal.
	log.SetOutput(io.Discard)
	if config.UseLogFile {
		f, err := os.OpenFile(config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.SetOutput(f)
		defer f.Close()
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if len(args) > 0 {
		if err := e.Open(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// The terminal provides raw keystrokes and the window size.
	t, err := terminal.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := t.EnableRaw(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The screen draws frames to standard output.
	s := screen.NewScreen(os.Stdout, t)

	// The commander converts keystrokes into commands for the editor.
	c := commander.NewCommander(e, s, t)

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e); err != nil {
			die(t, err)
		}
		key, err := t.ReadKey()
		if err != nil {
			die(t, err)
		}
		if err := c.ProcessKey(key); err != nil {
			die(t, err)
		}
	}

	s.Clear()
	if err := t.Restore(); err != nil {
		log.Printf("restore terminal: %v", err)
	}
}

// die restores the terminal before reporting a fatal error.
func die(t *terminal.Terminal, err error) {
	t.Restore()
	log.Printf("fatal: %v", err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
