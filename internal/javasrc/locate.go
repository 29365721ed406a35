package javasrc

import "regexp"

// Method is a located method declaration. Offsets index the text it was
// located in.
type Method struct {
	Name      string
	Start     int // first byte of the signature
	BodyStart int // just after the opening brace
	BodyEnd   int // the closing brace
}

// Body returns the text between the method's braces.
func (m Method) Body(text string) string {
	return text[m.BodyStart:m.BodyEnd]
}

// Span returns the whole declaration, signature through closing brace.
func (m Method) Span(text string) string {
	return text[m.Start : m.BodyEnd+1]
}

func signatureRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?[\w<>\[\]]+\s+` +
		regexp.QuoteMeta(name) +
		`\s*\([^)]*\)\s*(?:throws\s+[\w\s,]+)?\s*\{`)
}

// FindSignature returns the offsets of the first declaration of name: the
// signature start and the offset just after its opening brace.
func FindSignature(text, name string) (start, bodyStart int, ok bool) {
	loc := signatureRe(name).FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Locate finds the first declaration of name and bounds its body. It reports
// NotFound or Unbounded when either step fails.
func Locate(text, name string) (Method, Outcome) {
	start, bodyStart, ok := FindSignature(text, name)
	if !ok {
		return Method{}, NotFound
	}
	end := MatchBrace(text, bodyStart)
	if end < 0 {
		return Method{}, Unbounded
	}
	return Method{Name: name, Start: start, BodyStart: bodyStart, BodyEnd: end}, OK
}
