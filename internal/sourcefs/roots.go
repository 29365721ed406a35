package sourcefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/perfmon/internal/config"
)

// ErrNoSourceRoot is returned when none of the configured roots exist.
var ErrNoSourceRoot = errors.New("could not find source directories")

// Layout is the resolved set of group directories under one root.
type Layout struct {
	Root   string
	Groups []GroupDir
}

// GroupDir is a group resolved against the chosen root.
type GroupDir struct {
	Name string
	Path string
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Resolve probes the table's roots under projectDir in order. The first one
// that exists fixes where every group lives.
func Resolve(projectDir string, tbl *config.Table) (*Layout, error) {
	for _, r := range tbl.Roots {
		root := filepath.Join(projectDir, filepath.FromSlash(r))
		if !IsDir(root) {
			continue
		}
		l := &Layout{Root: root}
		for _, g := range tbl.Groups {
			l.Groups = append(l.Groups, GroupDir{
				Name: g.Name,
				Path: filepath.Join(root, filepath.FromSlash(g.Dir)),
			})
		}
		return l, nil
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrNoSourceRoot, strings.Join(tbl.Roots, ", "))
}
