package runner

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/perfmon/internal/sourcefs"
)

const handInstrumented = `package com.example.automation;

import com.example.debug.PerformanceMonitor;
import java.util.List;

public class RecipeOverlayRenderer {
    public static void hide() {
        PerformanceMonitor.start("RecipeOverlay.hide");
        try {
            overlayVisible = false;
            currentMachine = null;
        } finally {
            PerformanceMonitor.end("RecipeOverlay.hide");
        }
    }
}
`

func TestClean_RestoresInjectedSources(t *testing.T) {
	dir := writeProject(t, map[string]string{
		managerPath: automationManager,
		handlerPath: recipeHandler,
		debugPath:   "package com.example.debug;\n\npublic class PerformanceMonitor {}\n",
	})
	if _, err := NewInjector(testTable(), quietOptions(dir)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if readFile(t, dir, managerPath) == automationManager {
		t.Fatal("inject did not modify the file")
	}

	sum, err := NewCleaner(testTable(), quietOptions(dir)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesScanned != 2 {
		t.Fatalf("FilesScanned = %d, want 2", sum.FilesScanned)
	}
	if sum.FilesCleaned != 1 {
		t.Fatalf("FilesCleaned = %d, want 1", sum.FilesCleaned)
	}
	if len(sum.DirsRemoved) != 1 {
		t.Fatalf("DirsRemoved = %v", sum.DirsRemoved)
	}
	if got := readFile(t, dir, managerPath); got != automationManager {
		t.Fatalf("clean did not restore the original:\n%s", got)
	}
	if sourcefs.IsDir(filepath.Join(dir, "src", "client", "java", "com", "example", "debug")) {
		t.Fatal("debug directory still exists")
	}
}

func TestClean_HandInstrumented(t *testing.T) {
	rel := "src/main/java/com/example/automation/RecipeOverlayRenderer.java"
	dir := writeProject(t, map[string]string{rel: handInstrumented})

	sum, err := NewCleaner(testTable(), quietOptions(dir)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesCleaned != 1 {
		t.Fatalf("FilesCleaned = %d, want 1", sum.FilesCleaned)
	}
	got := readFile(t, dir, rel)
	if strings.Contains(got, "PerformanceMonitor") {
		t.Fatalf("marker left behind:\n%s", got)
	}
	if !strings.Contains(got, "overlayVisible = false;\n            currentMachine = null;\n    }") {
		t.Fatalf("body not kept:\n%s", got)
	}
}

func TestClean_NothingToDo(t *testing.T) {
	dir := writeProject(t, map[string]string{handlerPath: recipeHandler})

	sum, err := NewCleaner(testTable(), quietOptions(dir)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesScanned != 1 || sum.FilesCleaned != 0 || len(sum.DirsRemoved) != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if readFile(t, dir, handlerPath) != recipeHandler {
		t.Fatal("clean file was modified")
	}
}

func TestClean_NoSourceDirs(t *testing.T) {
	sum, err := NewCleaner(testTable(), quietOptions(t.TempDir())).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesScanned != 0 {
		t.Fatalf("FilesScanned = %d, want 0", sum.FilesScanned)
	}
}

func TestClean_DryRun(t *testing.T) {
	rel := "src/client/java/com/example/automation/RecipeOverlayRenderer.java"
	dir := writeProject(t, map[string]string{
		rel:       handInstrumented,
		debugPath: "package com.example.debug;\n",
	})
	opts := quietOptions(dir)
	opts.DryRun = true

	sum, err := NewCleaner(testTable(), opts).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesCleaned != 1 || len(sum.DirsRemoved) != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if readFile(t, dir, rel) != handInstrumented {
		t.Fatal("dry run wrote the file")
	}
	if !sourcefs.IsFile(filepath.Join(dir, filepath.FromSlash(debugPath))) {
		t.Fatal("dry run removed the debug directory")
	}
}

func TestClean_VerifierRejects(t *testing.T) {
	rel := "src/client/java/com/example/automation/RecipeOverlayRenderer.java"
	dir := writeProject(t, map[string]string{rel: handInstrumented})
	opts := quietOptions(dir)
	opts.Verifier = &rejectAll{}

	sum, err := NewCleaner(testTable(), opts).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesFailed != 1 || sum.FilesCleaned != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if readFile(t, dir, rel) != handInstrumented {
		t.Fatal("rejected rewrite was written")
	}
}

func TestClean_PackageNamedBuild(t *testing.T) {
	rel := "src/main/java/com/example/build/RecipeOverlayRenderer.java"
	dir := writeProject(t, map[string]string{
		rel:       handInstrumented,
		debugPath: "package com.example.debug;\n",
	})

	sum, err := NewCleaner(testTable(), quietOptions(dir)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesScanned != 1 || sum.FilesCleaned != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if got := readFile(t, dir, rel); strings.Contains(got, "PerformanceMonitor") {
		t.Fatalf("marker left behind:\n%s", got)
	}
}

func TestClean_WriteFailureContinues(t *testing.T) {
	// no room left in the file name for the temporary suffix
	long := "src/main/java/com/example/automation/" + strings.Repeat("Overlay", 34) + ".java"
	rel := "src/main/java/com/example/automation/RecipeOverlayRenderer.java"
	dir := writeProject(t, map[string]string{
		long: handInstrumented,
		rel:  handInstrumented,
	})

	sum, err := NewCleaner(testTable(), quietOptions(dir)).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.FilesScanned != 2 || sum.FilesFailed != 1 || sum.FilesCleaned != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if readFile(t, dir, long) != handInstrumented {
		t.Fatal("failed file was modified")
	}
	if strings.Contains(readFile(t, dir, rel), "PerformanceMonitor") {
		t.Fatal("batch stopped after the failed file")
	}
}
