package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/converter"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/ui"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the input directory and convert TSV files as they appear",
	Long: `Watch USER-FILES/01.INPUT for new or modified TSV files and convert
each one as soon as it settles. Every converted file goes into its own
timestamped run directory, same as process.

Press Ctrl+C to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debounce, _ := cmd.Flags().GetDuration("debounce")

		conv, err := converter.New(projectRoot, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize converter: %w", err)
		}
		manager := conv.Manager()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		fmt.Printf("%s Watching %s for TSV files...\n", ui.RenderAccent("👁"), manager.InputDir())
		fmt.Println("Press Ctrl+C to stop...")

		convertOne := func(path string) error {
			runDir, err := manager.NewRunDir()
			if err != nil {
				return err
			}
			outPath, err := manager.OutputPath(path, runDir)
			if err != nil {
				return err
			}
			stats, err := conv.ConvertFile(path, outPath)
			if err != nil {
				return err
			}
			rel, _ := filepath.Rel(manager.InputDir(), path)
			fmt.Printf("%s %s %s\n", ui.RenderPass("✓"), rel,
				ui.RenderDim(fmt.Sprintf("(%d phases, %d scenes, %d shots)",
					stats.Phases, stats.Scenes, stats.Shots)))
			return nil
		}

		onError := func(err error) {
			msg := strings.TrimSpace(err.Error())
			fmt.Fprintf(os.Stderr, "%s %s\n", ui.RenderFail("✗"), msg)
		}

		err = watch.Run(ctx, manager.InputDir(), debounce, convertOne, onError)
		fmt.Println("\nWatch stopped")
		return err
	},
}

func init() {
	watchCmd.Flags().String("config", "", "Configuration file path")
	watchCmd.Flags().Bool("no-camera-movement", false, "Exclude camera_movement sections from YAML output")
	watchCmd.Flags().Bool("no-shot-timecode", false, "Exclude shot_timecode sections from YAML output")
	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "Quiet period before a changed file is converted")

	rootCmd.AddCommand(watchCmd)
}
