package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/perfmon/internal/config"
	"github.com/jorge-barreto/perfmon/internal/javasrc"
	"github.com/jorge-barreto/perfmon/internal/sourcefs"
	"github.com/jorge-barreto/perfmon/internal/ux"
)

// CleanSummary tallies a clean run.
type CleanSummary struct {
	FilesScanned int
	FilesCleaned int
	FilesFailed  int
	DirsRemoved  []string
}

// Cleaner strips instrumentation from every Java file under the table's
// source directories and deletes the debug directories.
type Cleaner struct {
	Options
	Table   *config.Table
	Monitor *javasrc.Monitor
}

// NewCleaner returns a Cleaner for tbl.
func NewCleaner(tbl *config.Table, opts Options) *Cleaner {
	return &Cleaner{Options: opts, Table: tbl, Monitor: newMonitor(tbl)}
}

// Run cleans every source directory that exists. Missing directories and
// per-file failures never stop the run; only a cancelled ctx does.
func (c *Cleaner) Run(ctx context.Context) (*CleanSummary, error) {
	debugDirs := c.debugDirs()
	sum := &CleanSummary{}

	for _, d := range c.Table.Clean.SourceDirs {
		dir := filepath.Join(c.projectDir(), filepath.FromSlash(d))
		if !sourcefs.IsDir(dir) {
			continue
		}
		ux.Scanning(dir)

		files, err := sourcefs.JavaFiles(dir)
		if err != nil {
			ux.FileError("scanning", err)
			c.logger().Error("walk failed", "dir", dir, "err", err)
			continue
		}
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			if within(f, debugDirs) {
				continue
			}
			sum.FilesScanned++
			cleaned, err := c.CleanFile(ctx, f)
			switch {
			case err != nil:
				sum.FilesFailed++
			case cleaned:
				sum.FilesCleaned++
			}
		}
	}

	for _, dir := range debugDirs {
		if !sourcefs.IsDir(dir) {
			continue
		}
		if c.DryRun {
			ux.DirRemoved(dir, true)
			sum.DirsRemoved = append(sum.DirsRemoved, dir)
			continue
		}
		removed, err := sourcefs.RemoveDir(dir)
		if err != nil {
			c.logger().Warn("could not remove directory", "dir", dir, "err", err)
			continue
		}
		if removed {
			ux.DirRemoved(dir, false)
			sum.DirsRemoved = append(sum.DirsRemoved, dir)
		}
	}

	ux.Complete("Complete: Cleaned %d of %d file(s)", sum.FilesCleaned, sum.FilesScanned)
	return sum, nil
}

// CleanFile strips one file and writes it back if it changed.
func (c *Cleaner) CleanFile(ctx context.Context, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		ux.FileError("reading "+filepath.Base(path), err)
		c.logger().Error("read failed", "file", path, "err", err)
		return false, err
	}
	out, changed := c.Monitor.Strip(string(data))
	if !changed {
		return false, nil
	}
	if err := c.verify(ctx, data, out); err != nil {
		ux.FileError("verifying "+filepath.Base(path), err)
		c.logger().Error("rewrite rejected", "file", path, "err", err)
		return false, err
	}
	if !c.DryRun {
		if err := sourcefs.WriteFileAtomic(path, []byte(out)); err != nil {
			ux.FileError("saving "+filepath.Base(path), err)
			c.logger().Error("write failed", "file", path, "err", err)
			return false, err
		}
	}
	ux.Cleaned(filepath.Base(path), c.DryRun)
	return true, nil
}

func (c *Cleaner) debugDirs() []string {
	dirs := make([]string, 0, len(c.Table.Clean.DebugDirs))
	for _, d := range c.Table.Clean.DebugDirs {
		dirs = append(dirs, filepath.Join(c.projectDir(), filepath.FromSlash(d)))
	}
	return dirs
}

// within reports whether path lies inside one of dirs.
func within(path string, dirs []string) bool {
	for _, d := range dirs {
		if strings.HasPrefix(path, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
