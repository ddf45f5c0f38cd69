package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/config"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/ui"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if err := config.WriteDefault(output); err != nil {
			return err
		}
		fmt.Printf("%s Configuration file created: %s\n", ui.RenderPass("✓"), output)
		fmt.Println("Edit the file to customize your settings.")
		return nil
	},
}

var initMappingsCmd = &cobra.Command{
	Use:   "init-mappings",
	Short: "Write a starter field-mappings file",
	Long: `Write the default token → display-string mapping table. The table is
consulted per column before cosmetic formatting, e.g. DIURNAL "GH"
becomes "Golden Hour". Reference it from config.yaml via mappings_file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("mappings-file")
		if err := config.WriteDefaultMappings(output); err != nil {
			return err
		}
		fmt.Printf("%s Mappings file created: %s\n", ui.RenderPass("✓"), output)
		fmt.Println("Edit the file to customize your field mappings.")
		return nil
	},
}

func init() {
	initConfigCmd.Flags().String("output", "config.yaml", "Output configuration file path")
	initMappingsCmd.Flags().String("mappings-file", "mappings.toml", "Output mappings file path")

	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(initMappingsCmd)
}
