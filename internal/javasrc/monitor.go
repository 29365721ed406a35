package javasrc

import (
	"regexp"
	"strings"
)

// Monitor identifies the profiling class whose calls are injected into and
// stripped from Java sources.
type Monitor struct {
	Class  string // simple name used at call sites, e.g. PerformanceMonitor
	Import string // fully qualified name, e.g. com.example.debug.PerformanceMonitor

	importRe     *regexp.Regexp
	loneImportRe *regexp.Regexp // the import with a blank line on each side
	openRe       *regexp.Regexp
	finallyRe    *regexp.Regexp
	strayRe      *regexp.Regexp
}

// NewMonitor compiles the patterns for class, imported as fqcn.
func NewMonitor(class, fqcn string) *Monitor {
	c := regexp.QuoteMeta(class)
	imp := `import\s+` + regexp.QuoteMeta(fqcn) + `\s*;[ \t]*`
	return &Monitor{
		Class:        class,
		Import:       fqcn,
		importRe:     regexp.MustCompile(`(?m)^[ \t]*` + imp + `\r?\n?`),
		loneImportRe: regexp.MustCompile(`(\r?\n)[ \t]*\r?\n[ \t]*` + imp + `\r?\n([ \t]*\r?\n)`),
		openRe:       regexp.MustCompile(`\r?\n[ \t]*` + c + `\.start\("[^"\n]*"\);[ \t]*\r?\n[ \t]*try\s*\{`),
		finallyRe:    regexp.MustCompile(`^\s*finally\s*\{\s*` + c + `\.end\([^)\n]*\);\s*\}`),
		strayRe:      regexp.MustCompile(`[ \t]*` + c + `\.(?:start|end)\([^)]*\);[ \t]*(?:\r?\n)?`),
	}
}

// ImportLine returns the import declaration for the monitor class.
func (m *Monitor) ImportLine() string {
	return "import " + m.Import + ";"
}

// HasImport reports whether text already imports the monitor class.
func (m *Monitor) HasImport(text string) bool {
	return m.importRe.MatchString(text)
}

func (m *Monitor) startCall() string {
	return m.Class + ".start("
}

// Instrumented reports whether text contains a start call.
func (m *Monitor) Instrumented(text string) bool {
	return strings.Contains(text, m.startCall())
}
