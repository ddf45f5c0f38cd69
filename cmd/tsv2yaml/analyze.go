package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/files"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/tsv"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Inspect input files without converting them",
	Long: `Walk the input directory and report every file found: TSV files are
parsed to confirm they are readable and to count rows and columns;
other files are listed as invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := files.NewManager(projectRoot)
		if err != nil {
			return err
		}

		analysis, err := manager.Analyze()
		if err != nil {
			return err
		}

		// Parse each TSV to confirm it is structurally valid.
		invalid := 0
		for i := range analysis.Files {
			fi := &analysis.Files[i]
			if !fi.IsTSV {
				invalid++
				continue
			}
			v := tsv.Validate(filepath.Join(manager.InputDir(), fi.Path))
			if !v.Valid {
				fi.IsTSV = false
				fi.Err = v.Err
				analysis.ValidTSV--
				invalid++
				continue
			}
			fi.Rows = v.Rows
			fi.Columns = v.Columns
		}

		fmt.Print(ui.Table("File Analysis", [][2]string{
			{"Input directory", analysis.InputDir},
			{"Total files", fmt.Sprintf("%d", analysis.TotalFiles)},
			{"Valid TSV files", fmt.Sprintf("%d", analysis.ValidTSV)},
			{"Invalid files", fmt.Sprintf("%d", invalid)},
		}))

		for _, fi := range analysis.Files {
			if fi.IsTSV {
				fmt.Printf("  %s %s %s\n", ui.RenderPass("✓"), fi.Path,
					ui.RenderDim(fmt.Sprintf("(%d rows, %d columns)", fi.Rows, len(fi.Columns))))
			} else {
				fmt.Printf("  %s %s %s\n", ui.RenderWarn("⚠"), fi.Path,
					ui.RenderDim(fi.Err))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
