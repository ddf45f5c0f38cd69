package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewManagerCreatesLayout(t *testing.T) {
	root := t.TempDir()
	m, err := NewManager(root)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	for _, dir := range []string{m.InputDir(), m.OutputDir()} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s should exist", dir)
		}
	}
	if !strings.Contains(m.InputDir(), filepath.Join("USER-FILES", "01.INPUT")) {
		t.Errorf("unexpected input dir: %s", m.InputDir())
	}
}

func TestFindTSVFiles(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	sub := filepath.Join(m.InputDir(), "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, name := range []string{
		filepath.Join(m.InputDir(), "a.tsv"),
		filepath.Join(sub, "b.TSV"),
		filepath.Join(m.InputDir(), "notes.txt"),
	} {
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	found, err := m.FindTSVFiles()
	if err != nil {
		t.Fatalf("FindTSVFiles failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 TSV files (case-insensitive, recursive), got %d: %v", len(found), found)
	}
}

func TestOutputPathMirrorsInput(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	runDir, err := m.NewRunDir()
	if err != nil {
		t.Fatalf("NewRunDir failed: %v", err)
	}

	in := filepath.Join(m.InputDir(), "sub", "shots.tsv")
	out, err := m.OutputPath(in, runDir)
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}

	want := filepath.Join(runDir, "sub", "shots.yaml")
	if out != want {
		t.Errorf("output path mismatch: got %s, want %s", out, want)
	}
	if _, err := os.Stat(filepath.Dir(out)); err != nil {
		t.Errorf("output subdirectory should be created: %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(m.InputDir(), "a.tsv"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(m.InputDir(), "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	analysis, err := m.Analyze()
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if analysis.TotalFiles != 2 {
		t.Errorf("expected 2 files, got %d", analysis.TotalFiles)
	}
	if analysis.ValidTSV != 1 {
		t.Errorf("expected 1 TSV file, got %d", analysis.ValidTSV)
	}
	for _, fi := range analysis.Files {
		if !fi.IsTSV && fi.Err == "" {
			t.Errorf("non-TSV file %s should carry an error note", fi.Path)
		}
	}
}
