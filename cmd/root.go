package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dc-analytics/crimelens/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "crimelens",
	Short: "Municipal incident analytics pipeline",
	Long:  "Ingests a geocoded crime incident extract plus demographic reference tables and derives heatmap, shift, category, trend, and area views for visualization.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
