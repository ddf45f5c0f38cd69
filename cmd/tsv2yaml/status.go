package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/files"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the project directory status",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := files.NewManager(projectRoot)
		if err != nil {
			return err
		}

		inputs, err := manager.FindTSVFiles()
		if err != nil {
			return err
		}
		outputs := countByExt(manager.OutputDir(), ".yaml")

		inputStatus := ui.RenderWarn("empty")
		if len(inputs) > 0 {
			inputStatus = ui.RenderPass("ready")
		}
		outputStatus := ui.RenderDim("empty")
		if outputs > 0 {
			outputStatus = ui.RenderPass("has output")
		}

		fmt.Print(ui.Table("Project Status", [][2]string{
			{"01.INPUT", fmt.Sprintf("%s (%d TSV files)", inputStatus, len(inputs))},
			{"02.OUTPUT", fmt.Sprintf("%s (%d YAML files)", outputStatus, outputs)},
		}))

		if len(inputs) > 0 {
			fmt.Printf("\nReady to process %d file(s):\n", len(inputs))
			for _, p := range inputs {
				rel, _ := filepath.Rel(manager.InputDir(), p)
				fmt.Printf("  %s %s\n", ui.RenderAccent("•"), rel)
			}
		}
		return nil
	},
}

func countByExt(dir, ext string) int {
	n := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			n++
		}
		return nil
	})
	return n
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
