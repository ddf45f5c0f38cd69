package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/config"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/converter"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/ui"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert all TSV files in the input directory",
	Long: `Convert every TSV file under USER-FILES/01.INPUT into YAML documents
in a fresh timestamped directory under USER-FILES/02.OUTPUT.

Each file runs through the full pipeline independently; a failing file
is recorded and the batch continues with the next one. The command
exits non-zero if any file failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		conv, err := converter.New(projectRoot, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize converter: %w", err)
		}

		stats, err := conv.ProcessAll()
		if err != nil {
			return err
		}

		printRunSummary(stats)

		if stats.HasErrors() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().String("config", "", "Configuration file path")
	processCmd.Flags().Bool("no-camera-movement", false, "Exclude camera_movement sections from YAML output")
	processCmd.Flags().Bool("no-shot-timecode", false, "Exclude shot_timecode sections from YAML output")

	rootCmd.AddCommand(processCmd)
}

// loadConfig reads the --config file (defaults when absent) and layers
// the exclusion flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, err := cmd.Flags().GetBool("no-camera-movement"); err == nil && v {
		cfg.NoCameraMovement = true
	}
	if v, err := cmd.Flags().GetBool("no-shot-timecode"); err == nil && v {
		cfg.NoShotTimecode = true
	}
	return cfg, nil
}

func printRunSummary(stats *converter.RunStats) {
	elapsed := stats.End.Sub(stats.Start).Round(time.Millisecond)

	fmt.Println()
	fmt.Print(ui.Table("Batch Summary", [][2]string{
		{"Total files", fmt.Sprintf("%d", stats.TotalFiles)},
		{"Processed", fmt.Sprintf("%d", stats.Processed)},
		{"Failed", fmt.Sprintf("%d", stats.Failed)},
		{"Phases", fmt.Sprintf("%d", stats.Phases)},
		{"Scenes", fmt.Sprintf("%d", stats.Scenes)},
		{"Shots", fmt.Sprintf("%d", stats.Shots)},
		{"Elapsed", elapsed.String()},
	}))

	if stats.HasErrors() {
		fmt.Printf("\n%s Errors encountered:\n", ui.RenderWarn("⚠"))
		for _, fe := range stats.Errors {
			fmt.Printf("  %s %s: %s\n", ui.RenderFail("✗"), fe.File, fe.Err)
		}
		return
	}
	if stats.Processed > 0 {
		fmt.Printf("\n%s Processing completed successfully\n", ui.RenderPass("✓"))
	}
}
