// Command tsv2yaml converts TSV shot lists into hierarchical YAML
// documents (Phase → Scene → Shot).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	projectRoot string
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tsv2yaml",
	Short: "TSV to YAML shot list converter",
	Long: `Convert TSV shot lists into hierarchical YAML documents.

Input rows (one per shot) are grouped into a Phase → Scene → Shot tree
by contiguous runs of their declared phase and scene numbers, then
emitted as YAML with human-friendly layout.

The project layout is created under the project root:
  USER-FILES/01.INPUT    place .tsv files here
  USER-FILES/02.OUTPUT   timestamped run directories appear here`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile := filepath.Join(projectRoot, "tsv2yaml.log")
		logger = logging.New(verbose, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tsv2yaml version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tsv2yaml %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", ".", "Project root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
