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
	"path/filepath"
	"strings"
)

const (
	highlightNumbers = 1 << 0
	highlightStrings = 1 << 1
)

// A Syntax describes one language for the highlighter: the file patterns
// that select it, its keywords (a trailing | marks the secondary class),
// and its comment markers. Empty markers disable that comment form.
type Syntax struct {
	filetype               string
	filematch              []string
	keywords               []string
	singleLineCommentStart string
	multiLineCommentStart  string
	multiLineCommentEnd    string
	flags                  int
}

func (s *Syntax) Filetype() string {
	return s.filetype
}

var languages = []*Syntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|",
			"signed|", "void|", "#define|", "#include|", "NULL|",
		},
		singleLineCommentStart: "//",
		multiLineCommentStart:  "/*",
		multiLineCommentEnd:    "*/",
		flags:                  highlightNumbers | highlightStrings,
	},
	{
		filetype:  "go",
		filematch: []string{".go"},
		keywords: []string{
			"break", "default", "func", "interface", "select", "case",
			"defer", "go", "map", "struct", "chan", "else", "goto",
			"package", "switch", "const", "fallthrough", "if", "range",
			"type", "continue", "for", "import", "return", "var",
			"bool|", "byte|", "rune|", "string|", "error|", "int|",
			"int8|", "int16|", "int32|", "int64|", "uint|", "uint8|",
			"uint16|", "uint32|", "uint64|", "float32|", "float64|",
			"nil|", "true|", "false|", "iota|",
		},
		singleLineCommentStart: "//",
		multiLineCommentStart:  "/*",
		multiLineCommentEnd:    "*/",
		flags:                  highlightNumbers | highlightStrings,
	},
	{
		filetype:  "shell",
		filematch: []string{".sh"},
		keywords: []string{
			"if", "fi", "read", "echo", "for", "while", "do", "done",
			"elif", "else",
		},
		singleLineCommentStart: "#",
		multiLineCommentStart:  "/*",
		multiLineCommentEnd:    "*/",
		flags:                  highlightNumbers | highlightStrings,
	},
	{
		filetype:               "text",
		filematch:              []string{".txt"},
		keywords:               []string{},
		singleLineCommentStart: "",
		multiLineCommentStart:  "",
		multiLineCommentEnd:    "",
		flags:                  highlightNumbers,
	},
}

// SyntaxForFilename returns the first language profile claiming a file
// name, or nil when none does. Patterns beginning with a dot match the
// file extension; other patterns match anywhere in the name.
func SyntaxForFilename(filename string) *Syntax {
	ext := filepath.Ext(filename)
	for _, s := range languages {
		for _, pattern := range s.filematch {
			if strings.HasPrefix(pattern, ".") {
				if ext != "" && ext == pattern {
					return s
				}
			} else if pattern != "" && strings.Contains(filename, pattern) {
				return s
			}
		}
	}
	return nil
}
