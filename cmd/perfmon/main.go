package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jorge-barreto/perfmon/internal/config"
	"github.com/jorge-barreto/perfmon/internal/docs"
	"github.com/jorge-barreto/perfmon/internal/runner"
	"github.com/jorge-barreto/perfmon/internal/ux"
	"github.com/jorge-barreto/perfmon/internal/verify"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "perfmon",
		Usage:       "Inject and strip performance monitoring in the mod's Java sources",
		Description: "Run 'perfmon clean' first, then 'perfmon inject'. Run 'perfmon docs' for details.",
		Commands: []*cli.Command{
			cleanCmd(),
			injectCmd(),
			methodsCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "dir", Value: ".", Usage: "Project directory containing src/"},
		&cli.BoolFlag{Name: "dry-run", Usage: "Report changes without writing or deleting anything"},
		&cli.BoolFlag{Name: "verify", Usage: "Reject rewrites that introduce Java syntax errors"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log why each method was skipped"},
	}
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "perfmon"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func pipelineOptions(cmd *cli.Command) runner.Options {
	opts := runner.Options{
		ProjectDir: cmd.String("dir"),
		DryRun:     cmd.Bool("dry-run"),
		Logger:     newLogger(cmd.Bool("verbose")),
	}
	if cmd.Bool("verify") {
		opts.Verifier = verify.Java{}
	}
	return opts
}

func cleanCmd() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove all monitoring code and the debug directory",
		Flags: pipelineFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tbl, err := config.Default()
			if err != nil {
				return fmt.Errorf("loading method table: %w", err)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			ux.Banner("CLEANUP: Removing Old Monitoring Code", "")
			sum, err := runner.NewCleaner(tbl, pipelineOptions(cmd)).Run(ctx)
			if err != nil {
				return err
			}

			if sum.FilesCleaned > 0 || len(sum.DirsRemoved) > 0 {
				ux.Hint("✓ Old monitoring code removed!",
					"Now ready for fresh installation",
					"Next: run 'perfmon inject'")
			} else {
				ux.Hint("✓ No old monitoring code found", "Project is clean!")
			}
			return nil
		},
	}
}

func injectCmd() *cli.Command {
	return &cli.Command{
		Name:  "inject",
		Usage: "Wrap the allowlisted methods with start/end monitoring calls",
		Flags: pipelineFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tbl, err := config.Default()
			if err != nil {
				return fmt.Errorf("loading method table: %w", err)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			ux.Banner("PERFORMANCE MONITOR INJECTOR", "Uses the try/finally pattern so every exit path is timed")
			sum, err := runner.NewInjector(tbl, pipelineOptions(cmd)).Run(ctx)
			if err != nil {
				return err
			}

			if sum.FilesModified > 0 && !cmd.Bool("dry-run") {
				debugDir := filepath.ToSlash(filepath.Join(tbl.Roots[0], "debug"))
				ux.Hint("Next steps:",
					"1. Copy "+tbl.Monitor+".java to:",
					"   "+debugDir+"/",
					"2. Build: gradlew clean build",
					"3. Test: gradlew runClient")
			}
			return nil
		},
	}
}

func methodsCmd() *cli.Command {
	return &cli.Command{
		Name:  "methods",
		Usage: "List the methods inject instruments",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tbl, err := config.Default()
			if err != nil {
				return fmt.Errorf("loading method table: %w", err)
			}
			for _, g := range tbl.Groups {
				targets := tbl.Targets(g.Name)
				if len(targets) == 0 {
					continue
				}
				fmt.Printf("\n%s%s%s %s(%s)%s\n", ux.Bold, g.Name, ux.Reset, ux.Dim, g.Dir, ux.Reset)
				rows := make([][2]string, 0, len(targets))
				for _, t := range targets {
					labels := make([]string, 0, len(t.Methods))
					for _, m := range t.Methods {
						labels = append(labels, t.Label(m))
					}
					rows = append(rows, [2]string{t.File, strings.Join(labels, ", ")})
				}
				ux.Table(rows)
			}
			fmt.Printf("\n%d files, %d methods\n", len(tbl.Files), tbl.MethodCount())
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'perfmon docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
