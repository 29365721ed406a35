package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks the table for errors.
func Validate(t *Table) error {
	if !identRe.MatchString(t.Monitor) {
		return fmt.Errorf("config: 'monitor' must be a Java identifier, got %q", t.Monitor)
	}
	if !strings.HasSuffix(t.Import, "."+t.Monitor) {
		return fmt.Errorf("config: 'import' %q does not name class %q", t.Import, t.Monitor)
	}
	if len(t.Roots) == 0 {
		return fmt.Errorf("config: at least one root is required")
	}

	groups := make(map[string]bool)
	for i, g := range t.Groups {
		if g.Name == "" {
			return fmt.Errorf("config: group %d: 'name' is required", i+1)
		}
		if g.Dir == "" {
			return fmt.Errorf("config: group %q: 'dir' is required", g.Name)
		}
		if filepath.IsAbs(g.Dir) {
			return fmt.Errorf("config: group %q: dir %q must be relative", g.Name, g.Dir)
		}
		if groups[g.Name] {
			return fmt.Errorf("config: duplicate group %q", g.Name)
		}
		groups[g.Name] = true
	}

	seen := make(map[string]bool)
	for i, f := range t.Files {
		if f.File == "" {
			return fmt.Errorf("config: file %d: 'file' is required", i+1)
		}
		if !strings.HasSuffix(f.File, ".java") || strings.ContainsAny(f.File, `/\`) {
			return fmt.Errorf("config: file %q must be a bare .java file name", f.File)
		}
		if !groups[f.Group] {
			return fmt.Errorf("config: file %q: unknown group %q", f.File, f.Group)
		}
		key := f.Group + "/" + f.File
		if seen[key] {
			return fmt.Errorf("config: duplicate file %q in group %q", f.File, f.Group)
		}
		seen[key] = true
		if f.Prefix == "" {
			return fmt.Errorf("config: file %q: 'prefix' is required", f.File)
		}
		if strings.ContainsAny(f.Prefix, "\"\\\n") {
			return fmt.Errorf("config: file %q: prefix %q cannot appear in a string literal", f.File, f.Prefix)
		}
		if len(f.Methods) == 0 {
			return fmt.Errorf("config: file %q: at least one method is required", f.File)
		}
		methods := make(map[string]bool)
		for _, m := range f.Methods {
			if !identRe.MatchString(m) {
				return fmt.Errorf("config: file %q: %q is not a valid method name", f.File, m)
			}
			if methods[m] {
				return fmt.Errorf("config: file %q: duplicate method %q", f.File, m)
			}
			methods[m] = true
		}
	}
	return nil
}
