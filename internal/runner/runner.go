package runner

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/jorge-barreto/perfmon/internal/config"
	"github.com/jorge-barreto/perfmon/internal/javasrc"
)

// Verifier rejects a rewrite that breaks the source it was applied to.
type Verifier interface {
	Check(ctx context.Context, before, after []byte) error
}

// Options are shared by both pipelines.
type Options struct {
	ProjectDir string      // directory the table's relative paths are resolved against
	DryRun     bool        // report what would change without writing or deleting
	Verifier   Verifier    // nil disables the post-rewrite check
	Logger     *log.Logger // nil uses the default logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o *Options) projectDir() string {
	if o.ProjectDir == "" {
		return "."
	}
	return o.ProjectDir
}

// verify runs the configured check, if any.
func (o *Options) verify(ctx context.Context, before []byte, after string) error {
	if o.Verifier == nil {
		return nil
	}
	return o.Verifier.Check(ctx, before, []byte(after))
}

func newMonitor(tbl *config.Table) *javasrc.Monitor {
	return javasrc.NewMonitor(tbl.Monitor, tbl.Import)
}
