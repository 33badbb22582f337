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
	"strings"

	thor "github.com/OrangeXarot/thor/types"
)

const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == 0 || strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Highlight classifies every byte of a rendered row in one left-to-right
// pass. startsInComment carries an unterminated block comment in from the
// previous row; the second result reports whether this row leaves one open.
//
// Precedence per byte: single-line comment, block comment, string, number,
// keyword, normal. A nil receiver classifies everything as normal.
func (s *Syntax) Highlight(render []byte, startsInComment bool) ([]thor.HighlightClass, bool) {
	hl := make([]thor.HighlightClass, len(render))
	if s == nil {
		return hl, false
	}

	scs := []byte(s.singleLineCommentStart)
	mcs := []byte(s.multiLineCommentStart)
	mce := []byte(s.multiLineCommentEnd)

	prevSep := true
	inString := byte(0)
	inComment := startsInComment

	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := thor.HighlightNormal
		if i > 0 {
			prevHl = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				for j := i; j < len(render); j++ {
					hl[j] = thor.HighlightComment
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = thor.HighlightMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := i; j < i+len(mce); j++ {
						hl[j] = thor.HighlightMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := i; j < i+len(mcs); j++ {
					hl[j] = thor.HighlightMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if s.flags&highlightStrings != 0 {
			if inString != 0 {
				hl[i] = thor.HighlightString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = thor.HighlightString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' || c == '`' {
				inString = c
				hl[i] = thor.HighlightString
				i++
				continue
			}
		}

		if s.flags&highlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == thor.HighlightNumber)) ||
				(c == '.' && prevHl == thor.HighlightNumber) {
				hl[i] = thor.HighlightNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, keyword := range s.keywords {
				kw := keyword
				class := thor.HighlightKeyword1
				if strings.HasSuffix(kw, "|") {
					kw = kw[:len(kw)-1]
					class = thor.HighlightKeyword2
				}
				if !bytes.HasPrefix(render[i:], []byte(kw)) {
					continue
				}
				// a keyword only counts when a separator or the row end follows
				if i+len(kw) < len(render) && !isSeparator(render[i+len(kw)]) {
					continue
				}
				for j := i; j < i+len(kw); j++ {
					hl[j] = class
				}
				i += len(kw)
				matched = true
				break
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}
