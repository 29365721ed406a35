package javasrc

import "regexp"

var (
	importStmtRe = regexp.MustCompile(`(?m)^[ \t]*import\s+(?:static\s+)?[\w.*]+\s*;`)
	packageRe    = regexp.MustCompile(`(?m)^[ \t]*package\s+[\w.]+\s*;`)
	typeDeclRe   = regexp.MustCompile(`(?m)^[ \t]*(?:@\w+(?:\([^)]*\))?\s+)*(?:(?:public|protected|private|abstract|final|sealed|static)\s+)*(?:class|interface|enum|record|@interface)\s`)
)

// AddImport inserts the monitor import after the last import declaration
// that precedes the first type declaration. Files without imports get it
// after the package declaration. It reports false when the import is already
// present or there is no place to put it.
func (m *Monitor) AddImport(text string) (string, bool) {
	if m.HasImport(text) {
		return text, false
	}
	nl := LineEnding(text)
	limit := len(text)
	if loc := typeDeclRe.FindStringIndex(text); loc != nil {
		limit = loc[0]
	}
	at := -1
	for _, loc := range importStmtRe.FindAllStringIndex(text[:limit], -1) {
		at = loc[1]
	}
	if at >= 0 {
		return text[:at] + nl + m.ImportLine() + text[at:], true
	}
	if loc := packageRe.FindStringIndex(text[:limit]); loc != nil {
		return text[:loc[1]] + nl + nl + m.ImportLine() + text[loc[1]:], true
	}
	return text, false
}
