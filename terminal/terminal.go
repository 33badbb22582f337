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

// Package terminal owns the tty: raw mode, window size, and decoding
// keystrokes from the input byte stream.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	thor "github.com/OrangeXarot/thor/types"
)

// A Terminal wraps standard input in raw mode. Reads use a tenth-second
// kernel timeout, so ReadKey reports KeyNone on idle instead of blocking.
type Terminal struct {
	fd       int
	original *unix.Termios
	buf      [1]byte
}

// New wraps standard input, which must be a tty.
func New() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}
	return &Terminal{fd: fd}, nil
}

// EnableRaw saves the current termios state and switches to raw mode with
// VMIN=0, VTIME=1.
func (t *Terminal) EnableRaw() error {
	original, err := unix.IoctlGetTermios(t.fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("get termios: %v", err)
	}
	t.original = original
	raw := *original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("set termios: %v", err)
	}
	return nil
}

// Restore puts back the termios state saved by EnableRaw.
func (t *Terminal) Restore() error {
	if t.original == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, t.original); err != nil {
		return fmt.Errorf("restore termios: %v", err)
	}
	return nil
}

// Size reports the terminal dimensions as rows, columns.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %v", err)
	}
	return rows, cols, nil
}

// ReadKey returns the next decoded keystroke, or KeyNone when the read
// timeout passes without input. It reads with unix.Read so the termios
// timeout applies; reading through the runtime poller would block instead.
func (t *Terminal) ReadKey() (thor.Key, error) {
	n, err := unix.Read(t.fd, t.buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return thor.KeyNone, nil
		}
		return thor.KeyNone, fmt.Errorf("read key: %v", err)
	}
	if n != 1 {
		return thor.KeyNone, nil
	}
	c := t.buf[0]
	if c != 0x1b {
		return thor.Key(c), nil
	}
	return decodeEscape(t.readByte), nil
}

// readByte fetches one byte of an escape sequence. The short VTIME window
// doubles as the lone-Escape detector.
func (t *Terminal) readByte() (byte, bool) {
	n, err := unix.Read(t.fd, t.buf[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return t.buf[0], true
}

// decodeEscape maps the bytes following an ESC to a key. next reports
// false when the sequence ends early, which decodes as a bare Escape.
func decodeEscape(next func() (byte, bool)) thor.Key {
	seq0, ok := next()
	if !ok {
		return thor.KeyEscape
	}
	seq1, ok := next()
	if !ok {
		return thor.KeyEscape
	}
	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok := next()
			if !ok {
				return thor.KeyEscape
			}
			switch seq2 {
			case '~':
				switch seq1 {
				case '1', '7':
					return thor.KeyHome
				case '3':
					return thor.KeyDelete
				case '4', '8':
					return thor.KeyEnd
				case '5':
					return thor.KeyPageUp
				case '6':
					return thor.KeyPageDown
				}
			case ';':
				// modified keys arrive as ESC [ 1 ; <mod> <dir>
				mod, ok := next()
				if !ok {
					return thor.KeyEscape
				}
				dir, ok := next()
				if !ok {
					return thor.KeyEscape
				}
				if seq1 == '1' && mod == '2' {
					switch dir {
					case 'A':
						return thor.KeyShiftArrowUp
					case 'B':
						return thor.KeyShiftArrowDown
					case 'C':
						return thor.KeyShiftArrowRight
					case 'D':
						return thor.KeyShiftArrowLeft
					}
				}
			}
		} else {
			switch seq1 {
			case 'A':
				return thor.KeyArrowUp
			case 'B':
				return thor.KeyArrowDown
			case 'C':
				return thor.KeyArrowRight
			case 'D':
				return thor.KeyArrowLeft
			case 'H':
				return thor.KeyHome
			case 'F':
				return thor.KeyEnd
			case 'P':
				return thor.KeyDelete
			}
		}
	case 'O':
		switch seq1 {
		case 'H':
			return thor.KeyHome
		case 'F':
			return thor.KeyEnd
		}
	}
	return thor.KeyEscape
}
