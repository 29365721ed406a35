package javasrc

import "strings"

// MeaningfulLines returns the trimmed lines of body, dropping blank lines,
// line comments and lines that are a bare brace.
func MeaningfulLines(body string) []string {
	var lines []string
	for _, l := range strings.Split(body, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "//") || l == "{" || l == "}" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Classify reports whether body can be wrapped. A body whose only meaningful
// line is a return is SingleReturn; any other body with fewer than two
// meaningful lines is TooShort.
func Classify(body string) Outcome {
	lines := MeaningfulLines(body)
	if len(lines) == 1 && strings.HasPrefix(lines[0], "return") {
		return SingleReturn
	}
	if len(lines) < 2 {
		return TooShort
	}
	return OK
}

// Safe reports whether body passes Classify.
func Safe(body string) bool {
	return Classify(body) == OK
}
