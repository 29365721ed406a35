package javasrc

import (
	"regexp"
	"strings"
)

var tryRe = regexp.MustCompile(`\btry\s*\{`)

// Strip removes the monitor's instrumentation from text and reports whether
// anything changed. In order it removes the import line, every start call
// whose try block ends in a finally holding only the end call (both halves of
// the wrapper go together), then unwraps any other try block whose finally
// holds only an end call, and last drops the remaining start and end
// statements. Try blocks the monitor never touched are kept, even when their
// finally block is empty.
//
// Text that never mentions the monitor class is returned as is. On text
// produced by Instrument and AddImport, Strip restores the original bytes.
func (m *Monitor) Strip(text string) (string, bool) {
	if !strings.Contains(text, m.Class) {
		return text, false
	}
	out := m.loneImportRe.ReplaceAllString(text, "${1}${2}")
	out = m.importRe.ReplaceAllString(out, "")
	out = m.unwrap(out)
	out = m.unwrapOrphans(out)
	out = m.strayRe.ReplaceAllString(out, "")
	return out, out != text
}

// unwrap removes each start call + try header together with the
// finally block closing that try.
func (m *Monitor) unwrap(text string) string {
	pos := 0
	for {
		loc := m.openRe.FindStringIndex(text[pos:])
		if loc == nil {
			return text
		}
		open, body := pos+loc[0], pos+loc[1]
		end := MatchBrace(text, body)
		if end < 0 {
			pos = body
			continue
		}
		fin := m.finallyRe.FindStringIndex(text[end+1:])
		if fin == nil {
			pos = body
			continue
		}
		text = text[:open] + text[body:trimIndent(text, end)] + text[end+1+fin[1]:]
		pos = open
	}
}

// unwrapOrphans replaces every `try { X } finally { end }` that has no start
// call in front of it with X.
func (m *Monitor) unwrapOrphans(text string) string {
	pos := 0
	for {
		loc := tryRe.FindStringIndex(text[pos:])
		if loc == nil {
			return text
		}
		open, body := pos+loc[0], pos+loc[1]
		end := MatchBrace(text, body)
		if end < 0 {
			pos = body
			continue
		}
		fin := m.finallyRe.FindStringIndex(text[end+1:])
		if fin == nil {
			pos = body
			continue
		}
		cut := trimIndent(text, open)
		text = text[:cut] + text[body:trimIndent(text, end)] + text[end+1+fin[1]:]
		pos = cut
	}
}

// trimIndent moves i back over horizontal whitespace and, if that whitespace
// begins a line, over the line break too.
func trimIndent(text string, i int) int {
	j := i
	for j > 0 && (text[j-1] == ' ' || text[j-1] == '\t') {
		j--
	}
	if j > 0 && text[j-1] == '\n' {
		j--
		if j > 0 && text[j-1] == '\r' {
			j--
		}
	}
	return j
}
