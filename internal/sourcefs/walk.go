package sourcefs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are never descended into when collecting sources. Only names that
// cannot be Java packages belong here: a package may well be called build.
var skipDirs = map[string]bool{
	".git":    true,
	".gradle": true,
	".idea":   true,
}

// JavaFiles returns every .java file under root in lexical order. A missing
// root yields no files.
func JavaFiles(root string) ([]string, error) {
	if !IsDir(root) {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".java") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// RemoveDir deletes dir and everything in it. It reports false when dir did
// not exist.
func RemoveDir(dir string) (bool, error) {
	if !IsDir(dir) {
		return false, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return false, err
	}
	return true, nil
}
