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
package terminal

import (
	"testing"

	thor "github.com/OrangeXarot/thor/types"
)

// sequenceReader feeds decodeEscape the bytes that followed an ESC.
func sequenceReader(seq string) func() (byte, bool) {
	i := 0
	return func() (byte, bool) {
		if i >= len(seq) {
			return 0, false
		}
		b := seq[i]
		i++
		return b, true
	}
}

func TestDecodeEscape(t *testing.T) {
	cases := []struct {
		seq string
		key thor.Key
	}{
		{"[A", thor.KeyArrowUp},
		{"[B", thor.KeyArrowDown},
		{"[C", thor.KeyArrowRight},
		{"[D", thor.KeyArrowLeft},
		{"[1;2A", thor.KeyShiftArrowUp},
		{"[1;2B", thor.KeyShiftArrowDown},
		{"[1;2C", thor.KeyShiftArrowRight},
		{"[1;2D", thor.KeyShiftArrowLeft},
		{"[1~", thor.KeyHome},
		{"[7~", thor.KeyHome},
		{"[H", thor.KeyHome},
		{"OH", thor.KeyHome},
		{"[4~", thor.KeyEnd},
		{"[8~", thor.KeyEnd},
		{"[F", thor.KeyEnd},
		{"OF", thor.KeyEnd},
		{"[3~", thor.KeyDelete},
		{"[P", thor.KeyDelete},
		{"[5~", thor.KeyPageUp},
		{"[6~", thor.KeyPageDown},
	}
	for _, c := range cases {
		if got := decodeEscape(sequenceReader(c.seq)); got != c.key {
			t.Errorf("decodeEscape(ESC %q) = %d, want %d", c.seq, got, c.key)
		}
	}
}

// sequences that end early or mean nothing decode as a bare Escape
func TestDecodeEscapeFallsBackToEscape(t *testing.T) {
	for _, seq := range []string{"", "[", "O", "[Z", "[9", "[1;3A", "OA"} {
		if got := decodeEscape(sequenceReader(seq)); got != thor.KeyEscape {
			t.Errorf("decodeEscape(ESC %q) = %d, want Escape", seq, got)
		}
	}
}
