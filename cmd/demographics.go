package main

import (
	"github.com/spf13/cobra"

	"github.com/dc-analytics/crimelens/internal/demographics"
)

var (
	demoRefDir string
	demoRegion string
	demoOut    string
)

var demographicsCmd = &cobra.Command{
	Use:   "demographics",
	Short: "Load the reference tables and print the derived regional metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if demoRefDir != "" {
			cfg.Demographics.Dir = demoRefDir
		}
		if demoRegion != "" {
			cfg.Demographics.Region = demoRegion
		}

		d, err := demographics.NewLoader(cfg.Demographics).Load()
		if err != nil {
			return err
		}

		return writeJSON(demoOut, d)
	},
}

func init() {
	demographicsCmd.Flags().StringVar(&demoRefDir, "reference-dir", "", "reference table directory (overrides config)")
	demographicsCmd.Flags().StringVar(&demoRegion, "region", "", "target region key (overrides config)")
	demographicsCmd.Flags().StringVarP(&demoOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(demographicsCmd)
}
