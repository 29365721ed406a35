package ux

import (
	"fmt"
	"strings"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

const rule = "══════════════════════════════════════════════════════════"

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Banner prints the title block a pipeline starts with.
func Banner(title, subtitle string) {
	fmt.Printf("%s%s%s\n", Cyan, rule, Reset)
	fmt.Printf("  %s%s%s\n", Bold, title, Reset)
	if subtitle != "" {
		fmt.Printf("  %s%s%s\n", Dim, subtitle, Reset)
	}
	fmt.Printf("%s%s%s\n", Cyan, rule, Reset)
}

// Section prints a directory section header.
func Section(name, dir string) {
	fmt.Printf("\n%s📁 %s:%s %s\n", Bold, capitalize(name), Reset, dir)
}

// FileHeader prints a timestamped header for one source file.
func FileHeader(name string) {
	fmt.Printf("\n%s[%s]%s %sProcessing: %s%s\n", Dim, timestamp(), Reset, Bold, name, Reset)
}

// ImportAdded reports that the monitor import was inserted.
func ImportAdded() {
	fmt.Printf("  %s✓ Added import%s\n", Green, Reset)
}

// Instrumented reports one wrapped method.
func Instrumented(method, label string) {
	fmt.Printf("  %s✓ %s%s → %s\n", Green, method, Reset, label)
}

// Skipped reports the methods left alone in a file.
func Skipped(n int) {
	fmt.Printf("  %s⊘ Skipped %d (not found or unsafe)%s\n", Dim, n, Reset)
}

// Saved reports a file written back.
func Saved(modifications int) {
	fmt.Printf("  %s✅ Saved %d modification(s)%s\n", Green, modifications, Reset)
}

// WouldSave reports a file that a dry run left alone.
func WouldSave(modifications int) {
	fmt.Printf("  %s○ Would save %d modification(s) (dry run)%s\n", Yellow, modifications, Reset)
}

// NoChanges reports a file that needed no rewrite.
func NoChanges() {
	fmt.Printf("  %sℹ No changes%s\n", Dim, Reset)
}

// FileError reports a failed read, write or check for one file.
func FileError(action string, err error) {
	fmt.Printf("  %s❌ Error %s: %v%s\n", Red, action, err, Reset)
}

// Cleaned reports one file stripped of instrumentation.
func Cleaned(name string, dryRun bool) {
	if dryRun {
		fmt.Printf("  %s○ Would clean: %s%s\n", Yellow, name, Reset)
		return
	}
	fmt.Printf("  %s✓ Cleaned: %s%s\n", Green, name, Reset)
}

// Scanning prints the source directory being walked.
func Scanning(dir string) {
	fmt.Printf("\n%sScanning:%s %s\n", Bold, Reset, dir)
}

// DirRemoved reports a deleted directory.
func DirRemoved(dir string, dryRun bool) {
	if dryRun {
		fmt.Printf("\n%s○ Would remove: %s%s\n", Yellow, dir, Reset)
		return
	}
	fmt.Printf("\n%s✓ Removed: %s%s\n", Green, dir, Reset)
}

// Complete prints the closing summary line between two rules.
func Complete(format string, args ...any) {
	fmt.Printf("\n%s%s%s\n", Cyan, rule, Reset)
	fmt.Printf("%s%s✅ %s%s\n", Bold, Green, fmt.Sprintf(format, args...), Reset)
	fmt.Printf("%s%s%s\n", Cyan, rule, Reset)
}

// Hint prints a block of follow-up lines.
func Hint(title string, lines ...string) {
	fmt.Printf("\n%s%s%s\n", Yellow, title, Reset)
	for _, l := range lines {
		fmt.Printf("  %s\n", l)
	}
}

// Table prints rows with the first column padded.
func Table(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	for _, r := range rows {
		fmt.Printf("  %s%-*s%s  %s\n", Cyan, width, r[0], Reset, r[1])
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
