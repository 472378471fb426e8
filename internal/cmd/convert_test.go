package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runConvert(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"convert"}, args...))
	defer func() {
		convertOutput = ""
		convertFormat = "xml"
		convertTitle = ""
		convertQuiet = false
	}()
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTempDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertCommand_XMLOutput(t *testing.T) {
	path := writeTempDoc(t, "doc.md", "# Intro\n\n1. first\n")

	out, err := runConvert(t, path, "--quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `<Header level="1">Intro`) {
		t.Errorf("expected xml output, got:\n%s", out)
	}
}

func TestConvertCommand_MarkdownFormat(t *testing.T) {
	path := writeTempDoc(t, "doc.md", "# Intro\n\n- item\n")

	out, err := runConvert(t, path, "--format", "md", "--quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "# Intro") {
		t.Errorf("expected markdown output, got:\n%s", out)
	}
}

func TestConvertCommand_OutputFile(t *testing.T) {
	path := writeTempDoc(t, "doc.md", "# Intro\n")
	dest := filepath.Join(t.TempDir(), "out.xml")

	if _, err := runConvert(t, path, "-o", dest, "--quiet"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if !strings.Contains(string(data), "<Document>") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}

func TestConvertCommand_MultipleFilesWriteSiblings(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("# Doc\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := runConvert(t, a, b, "--quiet"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"a.xml", "b.xml"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("expected sibling output %s: %v", want, err)
		}
	}
}

func TestConvertCommand_MultipleFilesOutputDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	a := writeTempDoc(t, "a.md", "# A\n")
	b := writeTempDoc(t, "b.md", "# B\n")

	if _, err := runConvert(t, a, b, "-o", outDir, "--quiet"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"a.xml", "b.xml"} {
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("expected output %s in directory: %v", want, err)
		}
	}
}

func TestConvertCommand_UnknownFormat(t *testing.T) {
	path := writeTempDoc(t, "doc.md", "# Intro\n")

	if _, err := runConvert(t, path, "--format", "docx", "--quiet"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConvertCommand_MissingFile(t *testing.T) {
	if _, err := runConvert(t, "/nonexistent/doc.md", "--quiet"); err == nil {
		t.Error("expected error for missing file")
	}
}
