package javasrc

import (
	"strings"
	"testing"
)

func TestAddImport_AfterLastImport(t *testing.T) {
	got, added := newTestMonitor().AddImport(automationManager)
	if !added {
		t.Fatal("import not added")
	}
	want := "import net.minecraft.world.item.ItemStack;\nimport " + testFQCN + ";\n\npublic class"
	if !strings.Contains(got, want) {
		t.Fatalf("import not placed after the last import:\n%s", got)
	}
}

func TestAddImport_AlreadyPresent(t *testing.T) {
	text := "package a;\n\nimport " + testFQCN + ";\n\npublic class A {}\n"
	got, added := newTestMonitor().AddImport(text)
	if added || got != text {
		t.Fatal("import added twice")
	}
}

func TestAddImport_IgnoresImportsInsideClass(t *testing.T) {
	text := "package a;\n\nimport b.C;\n\n/**\n * Doc.\n */\npublic class A {\n    String s = \"x\";\n}\nimport d.E;\n"
	got, added := newTestMonitor().AddImport(text)
	if !added {
		t.Fatal("import not added")
	}
	if !strings.Contains(got, "import b.C;\nimport "+testFQCN+";\n\n/**") {
		t.Fatalf("unexpected placement:\n%s", got)
	}
}

func TestAddImport_AfterPackageWhenNoImports(t *testing.T) {
	text := "package a;\n\npublic class A {}\n"
	got, added := newTestMonitor().AddImport(text)
	if !added {
		t.Fatal("import not added")
	}
	if !strings.HasPrefix(got, "package a;\n\nimport "+testFQCN+";\n\npublic class A") {
		t.Fatalf("unexpected placement:\n%s", got)
	}
}

func TestAddImport_NoAnchor(t *testing.T) {
	text := "public class A {}\n"
	if got, added := newTestMonitor().AddImport(text); added || got != text {
		t.Fatal("import added without a package or import anchor")
	}
}

func TestAddImport_Once(t *testing.T) {
	m := newTestMonitor()
	once, _ := m.AddImport(automationManager)
	twice, added := m.AddImport(once)
	if added || twice != once {
		t.Fatal("second AddImport changed the text")
	}
	if n := strings.Count(twice, m.ImportLine()); n != 1 {
		t.Fatalf("import lines = %d, want 1", n)
	}
}

func TestAddImport_KeepsCRLF(t *testing.T) {
	src := strings.ReplaceAll(automationManager, "\n", "\r\n")
	got, added := newTestMonitor().AddImport(src)
	if !added {
		t.Fatal("import not added")
	}
	if !strings.Contains(got, "ItemStack;\r\nimport "+testFQCN+";\r\n\r\npublic class") {
		t.Fatalf("unexpected placement:\n%q", got)
	}
}
