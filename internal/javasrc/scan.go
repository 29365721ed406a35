package javasrc

import "strings"

// MatchBrace scans text from start, where start is the offset just after an
// opening '{', and returns the offset of the '}' that closes it. It returns
// -1 when the text ends before the depth returns to zero.
//
// Braces inside string literals, text blocks, char literals and comments are
// not counted.
func MatchBrace(text string, start int) int {
	if start < 0 || start > len(text) {
		return -1
	}
	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		case '/':
			if i+1 >= len(text) {
				continue
			}
			switch text[i+1] {
			case '/':
				nl := strings.IndexByte(text[i:], '\n')
				if nl < 0 {
					return -1
				}
				i += nl
			case '*':
				end := strings.Index(text[i+2:], "*/")
				if end < 0 {
					return -1
				}
				i += 2 + end + 1
			}
		case '"':
			if strings.HasPrefix(text[i:], `"""`) {
				end := strings.Index(text[i+3:], `"""`)
				if end < 0 {
					return -1
				}
				i += 3 + end + 2
				continue
			}
			i = skipQuoted(text, i)
			if i < 0 {
				return -1
			}
		case '\'':
			i = skipQuoted(text, i)
			if i < 0 {
				return -1
			}
		}
	}
	return -1
}

// skipQuoted returns the offset of the quote closing the literal opened at
// text[open]. An unterminated literal ends at the next newline.
func skipQuoted(text string, open int) int {
	quote := text[open]
	for i := open + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case quote, '\n':
			return i
		}
	}
	return -1
}
