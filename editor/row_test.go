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
	"testing"
)

func TestRenderExpandsTabs(t *testing.T) {
	row := NewRow("a\tb")
	if got := string(row.Render()); got != "a       b" {
		t.Errorf("Unexpected render: '%s'", got)
	}
	row = NewRow("\t")
	if got := string(row.Render()); got != "        " {
		t.Errorf("Unexpected render: '%s'", got)
	}
}

func TestCxToRxAroundTabs(t *testing.T) {
	row := NewRow("a\tbc")
	cases := []struct{ cx, rx int }{
		{0, 0},
		{1, 1},
		{2, 8},
		{3, 9},
		{4, 10},
	}
	for _, c := range cases {
		if got := row.CxToRx(c.cx); got != c.rx {
			t.Errorf("CxToRx(%d) = %d, want %d", c.cx, got, c.rx)
		}
	}
}

func TestRxToCxInsideTabSpan(t *testing.T) {
	row := NewRow("a\tbc")
	cases := []struct{ rx, cx int }{
		{0, 0},
		{1, 1},
		{4, 1},
		{7, 1},
		{8, 2},
		{9, 3},
		{10, 4},
		{99, 4},
	}
	for _, c := range cases {
		if got := row.RxToCx(c.rx); got != c.cx {
			t.Errorf("RxToCx(%d) = %d, want %d", c.rx, got, c.cx)
		}
	}
}

func TestTabRoundTrip(t *testing.T) {
	row := NewRow("\tx\ty z")
	for cx := 0; cx <= row.Length(); cx++ {
		if got := row.RxToCx(row.CxToRx(cx)); got != cx {
			t.Errorf("Round trip broke at %d: %d", cx, got)
		}
	}
}

// an insert undone by a delete must leave every row cache byte-identical
func TestInsertDeleteRestoresCaches(t *testing.T) {
	b := NewBuffer()
	b.SetSyntax(SyntaxForFilename("main.c"))
	b.ReadBytes([]byte("int x = 10;\n"))
	row := b.Row(0)
	chars := row.Text()
	render := string(row.Render())
	hl := hlString(row)

	b.InsertChar(0, 4, 'y')
	b.DeleteChar(0, 4)

	if got := row.Text(); got != chars {
		t.Errorf("Unexpected chars after restore: '%s'", got)
	}
	if got := string(row.Render()); got != render {
		t.Errorf("Unexpected render after restore: '%s'", got)
	}
	if got := hlString(row); got != hl {
		t.Errorf("Unexpected highlight after restore: '%s'", got)
	}
}

func TestRowEditsClampColumns(t *testing.T) {
	row := NewRow("abc")
	row.insertChar(99, 'd')
	if got := row.Text(); got != "abcd" {
		t.Errorf("Unexpected text after out-of-range insert: '%s'", got)
	}
	row.deleteChar(99)
	if got := row.Text(); got != "abcd" {
		t.Errorf("Out-of-range delete should not change text: '%s'", got)
	}
}
