package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed methods.yaml
var defaultTable []byte

// Group maps a group name to a directory relative to the chosen root.
type Group struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// Target lists the methods to instrument in one source file.
type Target struct {
	File    string   `yaml:"file"`
	Group   string   `yaml:"group"`
	Prefix  string   `yaml:"prefix"`
	Methods []string `yaml:"methods"`
}

// Label returns the monitor label for one of the target's methods.
func (t Target) Label(method string) string {
	return t.Prefix + "." + method
}

// Clean names the trees stripped by clean and the debug directories it
// deletes afterwards, relative to the project directory.
type Clean struct {
	SourceDirs []string `yaml:"source-dirs"`
	DebugDirs  []string `yaml:"debug-dirs"`
}

// Table is the instrumentation allowlist. It is read once and never mutated.
type Table struct {
	Monitor string   `yaml:"monitor"`
	Import  string   `yaml:"import"`
	Roots   []string `yaml:"roots"`
	Groups  []Group  `yaml:"groups"`
	Files   []Target `yaml:"files"`
	Clean   Clean    `yaml:"clean"`
}

// Default returns the table compiled into the binary.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Parse decodes a YAML table and returns it validated.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Targets returns the targets of the named group in table order.
func (t *Table) Targets(group string) []Target {
	var out []Target
	for _, f := range t.Files {
		if f.Group == group {
			out = append(out, f)
		}
	}
	return out
}

// MethodCount returns the number of configured methods across all files.
func (t *Table) MethodCount() int {
	n := 0
	for _, f := range t.Files {
		n += len(f.Methods)
	}
	return n
}
