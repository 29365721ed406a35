package runner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/perfmon/internal/config"
	"github.com/jorge-barreto/perfmon/internal/javasrc"
	"github.com/jorge-barreto/perfmon/internal/sourcefs"
	"github.com/jorge-barreto/perfmon/internal/ux"
)

// InjectSummary tallies an inject run.
type InjectSummary struct {
	FilesScanned  int
	FilesModified int
	FilesFailed   int
	Instrumented  int
	Skipped       int
}

// FileResult is the outcome of instrumenting one file.
type FileResult struct {
	Labels  []string // labels of the methods wrapped, in table order
	Skipped int
	Changed bool // written back, or would be on a dry run
	Err     error
}

// Injector instruments the methods listed in a table.
type Injector struct {
	Options
	Table   *config.Table
	Monitor *javasrc.Monitor
}

// NewInjector returns an Injector for tbl.
func NewInjector(tbl *config.Table, opts Options) *Injector {
	return &Injector{Options: opts, Table: tbl, Monitor: newMonitor(tbl)}
}

// Run instruments every configured file found under the first existing root.
// It fails only when no root exists or ctx is cancelled; per-file problems
// are reported and counted.
func (in *Injector) Run(ctx context.Context) (*InjectSummary, error) {
	layout, err := sourcefs.Resolve(in.projectDir(), in.Table)
	if err != nil {
		return nil, err
	}
	in.logger().Debug("resolved source root", "root", layout.Root)

	sum := &InjectSummary{}
	for _, g := range layout.Groups {
		targets := in.Table.Targets(g.Name)
		if len(targets) == 0 || !sourcefs.IsDir(g.Path) {
			continue
		}
		ux.Section(g.Name, g.Path)

		for _, t := range targets {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			path := filepath.Join(g.Path, t.File)
			if !sourcefs.IsFile(path) {
				in.logger().Debug("file not present", "file", path)
				continue
			}
			sum.FilesScanned++
			res := in.InjectFile(ctx, path, t)
			sum.Skipped += res.Skipped
			if res.Err != nil {
				sum.FilesFailed++
				continue
			}
			if res.Changed {
				sum.FilesModified++
				sum.Instrumented += len(res.Labels)
			}
		}
	}

	ux.Complete("COMPLETE: %d/%d files modified, %d methods instrumented, %d skipped",
		sum.FilesModified, sum.FilesScanned, sum.Instrumented, sum.Skipped)
	return sum, nil
}

// InjectFile instruments one file and writes it back if it changed.
func (in *Injector) InjectFile(ctx context.Context, path string, t config.Target) FileResult {
	ux.FileHeader(filepath.Base(path))

	data, err := os.ReadFile(path)
	if err != nil {
		ux.FileError("reading", err)
		in.logger().Error("read failed", "file", path, "err", err)
		return FileResult{Err: err}
	}

	out, res := in.Instrument(string(data), t)
	if res.Skipped > 0 {
		ux.Skipped(res.Skipped)
	}
	if out == string(data) {
		ux.NoChanges()
		return res
	}

	if err := in.verify(ctx, data, out); err != nil {
		ux.FileError("verifying", err)
		in.logger().Error("rewrite rejected", "file", path, "err", err)
		res.Err = err
		return res
	}
	if in.DryRun {
		ux.WouldSave(len(res.Labels))
		res.Changed = true
		return res
	}
	if err := sourcefs.WriteFileAtomic(path, []byte(out)); err != nil {
		ux.FileError("saving", err)
		in.logger().Error("write failed", "file", path, "err", err)
		res.Err = err
		return res
	}
	ux.Saved(len(res.Labels))
	res.Changed = true
	return res
}

// Instrument applies every method of t to text in order and adds the import
// when at least one method was wrapped.
func (in *Injector) Instrument(text string, t config.Target) (string, FileResult) {
	var res FileResult
	for _, name := range t.Methods {
		label := t.Label(name)
		out, outcome := in.Monitor.Instrument(text, name, label)
		if outcome != javasrc.OK {
			res.Skipped++
			in.logger().Debug("skipped method", "file", t.File, "method", name, "reason", outcome)
			continue
		}
		text = out
		res.Labels = append(res.Labels, label)
		ux.Instrumented(name, label)
	}
	if len(res.Labels) == 0 {
		return text, res
	}
	out, added := in.Monitor.AddImport(text)
	if added {
		ux.ImportAdded()
	} else if !in.Monitor.HasImport(text) {
		in.logger().Warn("no place to insert import", "file", t.File, "import", in.Monitor.Import)
	}
	return out, res
}
