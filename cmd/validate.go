package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dc-analytics/crimelens/internal/ingest"
)

var (
	validateSource string
	validateOut    string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Decode and normalize an extract, reporting row quality statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		applySourceFlags(validateSource, "")

		_, stats, err := ingest.LoadFile(cfg.Source.Path, cfg.Source)
		if err != nil {
			return err
		}

		zap.L().Info("extract validated",
			zap.Int("kept", stats.Kept),
			zap.Int("corrupt", stats.CorruptRows),
			zap.Int("rejected", stats.RejectedRows),
			zap.Int("zero_coordinates", stats.ZeroCoordinates),
		)

		return writeJSON(validateOut, stats)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSource, "source", "", "incident extract file (overrides config)")
	validateCmd.Flags().StringVarP(&validateOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(validateCmd)
}
