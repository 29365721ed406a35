package javasrc

import (
	"regexp"
	"strings"
)

// DefaultIndent is used when a method body has no indented line to copy.
const DefaultIndent = "        "

var indentRe = regexp.MustCompile(`\n([ \t]+)\S`)

// Indent returns the leading whitespace of the first indented, non-blank
// line in body.
func Indent(body string) string {
	if m := indentRe.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return DefaultIndent
}

// LineEnding returns "\r\n" when text uses CRLF line endings, else "\n".
func LineEnding(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// Instrument wraps the body of the first method called name in a start call
// and a try/finally that ends with the matching end call, using the text's
// own line ending. On any outcome other than OK the text is returned
// unchanged.
func (m *Monitor) Instrument(text, name, label string) (string, Outcome) {
	meth, outcome := Locate(text, name)
	if outcome != OK {
		return text, outcome
	}
	body := meth.Body(text)
	if outcome := Classify(body); outcome != OK {
		return text, outcome
	}
	if m.Instrumented(meth.Span(text)) {
		return text, AlreadyInstrumented
	}

	indent := Indent(body)
	nl := LineEnding(text)
	quoted := `"` + label + `"`

	var b strings.Builder
	b.Grow(len(text) + 4*len(indent) + 2*len(quoted) + 64)
	b.WriteString(text[:meth.BodyStart])
	b.WriteString(nl + indent + m.Class + ".start(" + quoted + ");")
	b.WriteString(nl + indent + "try {")
	b.WriteString(body)
	b.WriteString(nl + indent + "} finally {")
	b.WriteString(nl + indent + "    " + m.Class + ".end(" + quoted + ");")
	b.WriteString(nl + indent + "}")
	b.WriteString(text[meth.BodyEnd:])
	return b.String(), OK
}
