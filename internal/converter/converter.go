// Package converter runs the per-file pipeline (read → normalize →
// build hierarchy → assemble → emit) and the batch driver over an
// input directory.
package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/assemble"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/config"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/emit"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/files"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/hierarchy"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/model"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/normalize"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/tsv"
)

// FileError records one failed file in a batch.
type FileError struct {
	File string
	Err  string
	Time time.Time
}

// RunStats summarizes a batch run. Files are independent: one failure
// never stops the batch.
type RunStats struct {
	TotalFiles int
	Processed  int
	Failed     int
	Phases     int
	Scenes     int
	Shots      int
	Start      time.Time
	End        time.Time
	Errors     []FileError
}

// HasErrors reports whether any file in the run failed.
func (s *RunStats) HasErrors() bool { return s.Failed > 0 }

// Converter wires the pipeline components for one project root.
type Converter struct {
	cfg     *config.Config
	manager *files.Manager
	norm    *normalize.Normalizer
	emitter *emit.Emitter
	log     *zap.Logger
}

// New builds a Converter. The project layout is created on demand and
// the mappings file referenced by the config, if any, is loaded here.
func New(projectRoot string, cfg *config.Config, logger *zap.Logger) (*Converter, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	manager, err := files.NewManager(projectRoot)
	if err != nil {
		return nil, err
	}

	mappings, err := config.LoadMappings(cfg.MappingsFile)
	if err != nil {
		return nil, err
	}

	return &Converter{
		cfg:     cfg,
		manager: manager,
		norm:    normalize.New(mappings),
		emitter: emit.New(cfg.YAMLIndent, cfg.YAMLWidth),
		log:     logger,
	}, nil
}

// Manager exposes the directory layout to the CLI commands.
func (c *Converter) Manager() *files.Manager { return c.manager }

// ConvertFile runs the full pipeline for one TSV file and writes the
// document to outPath. The document is only written after the whole
// entity tree assembled successfully; failures leave no partial
// output.
func (c *Converter) ConvertFile(tsvPath, outPath string) (model.Stats, error) {
	table, err := tsv.ReadFile(tsvPath)
	if err != nil {
		return model.Stats{}, fmt.Errorf("%s: %w", filepath.Base(tsvPath), err)
	}
	c.log.Debug("read TSV file",
		zap.String("file", filepath.Base(tsvPath)),
		zap.Int("rows", table.Len()),
	)

	rows := c.norm.Rows(table)

	phases, err := hierarchy.Build(rows)
	if err != nil {
		return model.Stats{}, fmt.Errorf("%s: %w", filepath.Base(tsvPath), err)
	}

	project := assemble.Project(
		c.projectTitle(tsvPath),
		table.Len(),
		phases,
		assemble.Options{
			NoCameraMovement: c.cfg.NoCameraMovement,
			NoShotTimecode:   c.cfg.NoShotTimecode,
		},
	)

	if err := c.emitter.WriteFile(project, outPath); err != nil {
		return model.Stats{}, fmt.Errorf("%s: %w", filepath.Base(tsvPath), err)
	}

	stats := project.Count()
	c.log.Info("wrote YAML",
		zap.String("output", filepath.Base(outPath)),
		zap.Int("phases", stats.Phases),
		zap.Int("scenes", stats.Scenes),
		zap.Int("shots", stats.Shots),
	)
	return stats, nil
}

// ProcessAll converts every TSV file under the input directory into a
// fresh timestamped run directory. A failing file is recorded and the
// batch continues.
func (c *Converter) ProcessAll() (*RunStats, error) {
	stats := &RunStats{Start: time.Now()}

	tsvFiles, err := c.manager.FindTSVFiles()
	if err != nil {
		return nil, err
	}
	stats.TotalFiles = len(tsvFiles)

	if len(tsvFiles) == 0 {
		c.log.Warn("no TSV files found in input directory",
			zap.String("dir", c.manager.InputDir()))
		stats.End = time.Now()
		return stats, nil
	}

	runDir, err := c.manager.NewRunDir()
	if err != nil {
		return nil, err
	}
	c.log.Info("starting batch",
		zap.Int("files", len(tsvFiles)),
		zap.String("run_dir", runDir),
	)

	for _, tsvPath := range tsvFiles {
		outPath, err := c.manager.OutputPath(tsvPath, runDir)
		if err == nil {
			var fileStats model.Stats
			fileStats, err = c.ConvertFile(tsvPath, outPath)
			if err == nil {
				stats.Processed++
				stats.Phases += fileStats.Phases
				stats.Scenes += fileStats.Scenes
				stats.Shots += fileStats.Shots
				continue
			}
		}
		stats.Failed++
		stats.Errors = append(stats.Errors, FileError{
			File: tsvPath,
			Err:  err.Error(),
			Time: time.Now(),
		})
		c.log.Error("file failed", zap.String("file", tsvPath), zap.Error(err))
	}

	stats.End = time.Now()
	c.log.Info("batch complete",
		zap.Int("total", stats.TotalFiles),
		zap.Int("processed", stats.Processed),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}

// projectTitle returns the configured title, or one inferred from the
// filename: underscores and hyphens become spaces, words title-cased.
func (c *Converter) projectTitle(tsvPath string) string {
	if c.cfg.ProjectTitle != "" {
		return c.cfg.ProjectTitle
	}
	stem := strings.TrimSuffix(filepath.Base(tsvPath), filepath.Ext(tsvPath))
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = strings.ReplaceAll(stem, "-", " ")
	words := strings.Fields(stem)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
