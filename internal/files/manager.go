// Package files manages the on-disk project layout: input discovery,
// timestamped output runs, and input-tree analysis.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	userFilesDir  = "USER-FILES"
	inputDirName  = "01.INPUT"
	outputDirName = "02.OUTPUT"
)

// Manager owns the USER-FILES directory structure under a project
// root. Directories are created on demand.
type Manager struct {
	root      string
	inputDir  string
	outputDir string
}

// NewManager creates a Manager and ensures the directory layout
// exists.
func NewManager(projectRoot string) (*Manager, error) {
	userFiles := filepath.Join(projectRoot, userFilesDir)
	m := &Manager{
		root:      projectRoot,
		inputDir:  filepath.Join(userFiles, inputDirName),
		outputDir: filepath.Join(userFiles, outputDirName),
	}
	for _, dir := range []string{userFiles, m.inputDir, m.outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return m, nil
}

// InputDir returns the directory scanned for TSV files.
func (m *Manager) InputDir() string { return m.inputDir }

// OutputDir returns the root output directory (runs are subdirectories).
func (m *Manager) OutputDir() string { return m.outputDir }

// NewRunDir creates and returns a timestamped output directory for one
// processing run.
func (m *Manager) NewRunDir() (string, error) {
	stamp := time.Now().Format("060102_150405")
	dir := filepath.Join(m.outputDir, stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}
	return dir, nil
}

// FindTSVFiles returns all *.tsv files under the input directory,
// recursively, in walk order.
func (m *Manager) FindTSVFiles() ([]string, error) {
	var found []string
	err := filepath.WalkDir(m.inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".tsv") {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}
	return found, nil
}

// OutputPath maps an input TSV file to its destination inside a run
// directory, mirroring the input-relative path with a .yaml suffix.
func (m *Manager) OutputPath(tsvPath, runDir string) (string, error) {
	rel, err := filepath.Rel(m.inputDir, tsvPath)
	if err != nil {
		return "", fmt.Errorf("input file %s is outside the input directory: %w", tsvPath, err)
	}
	out := filepath.Join(runDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".yaml")
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output subdirectory: %w", err)
	}
	return out, nil
}

// FileInfo describes one file found during analysis.
type FileInfo struct {
	Path      string
	SizeBytes int64
	Modified  time.Time
	IsTSV     bool
	Rows      int
	Columns   []string
	Err       string
}

// Analysis summarizes the input tree without converting anything.
type Analysis struct {
	InputDir   string
	TotalFiles int
	ValidTSV   int
	Files      []FileInfo
}

// Analyze walks the input directory and records every regular file.
// TSV validation is the caller's concern; Analyze only classifies by
// extension so it stays independent of the reader.
func (m *Manager) Analyze() (*Analysis, error) {
	result := &Analysis{InputDir: m.inputDir}
	err := filepath.WalkDir(m.inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(m.inputDir, path)
		fi := FileInfo{
			Path:      rel,
			SizeBytes: info.Size(),
			Modified:  info.ModTime(),
			IsTSV:     strings.EqualFold(filepath.Ext(path), ".tsv"),
		}
		if !fi.IsTSV {
			fi.Err = "not a TSV file"
		}
		result.TotalFiles++
		if fi.IsTSV {
			result.ValidTSV++
		}
		result.Files = append(result.Files, fi)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze input directory: %w", err)
	}
	return result, nil
}
