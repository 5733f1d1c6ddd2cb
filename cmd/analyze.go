package main

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/dc-analytics/crimelens/internal/model"
	"github.com/dc-analytics/crimelens/internal/pipeline"
)

var (
	analyzeSource     string
	analyzeRefDir     string
	analyzeStart      string
	analyzeEnd        string
	analyzeCategories []string
	analyzeShifts     []string
	analyzeOut        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build the derived views for an extract and print them as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		applySourceFlags(analyzeSource, analyzeRefDir)

		spec, err := specFromFlags(analyzeStart, analyzeEnd, analyzeCategories, analyzeShifts)
		if err != nil {
			return err
		}

		sess, err := pipeline.Load(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if err := sess.SetFilter(cmd.Context(), spec); err != nil {
			return err
		}

		return writeJSON(analyzeOut, sess.Views())
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSource, "source", "", "incident extract file (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeRefDir, "reference-dir", "", "demographic reference table directory (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeStart, "start", "", "filter: earliest report date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeEnd, "end", "", "filter: latest report date (YYYY-MM-DD, inclusive)")
	analyzeCmd.Flags().StringSliceVar(&analyzeCategories, "category", nil, "filter: allowed categories (repeatable)")
	analyzeCmd.Flags().StringSliceVar(&analyzeShifts, "shift", nil, "filter: allowed shifts (DAY/EVENING/MIDNIGHT, repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(analyzeCmd)
}

// applySourceFlags copies non-empty path flags over the loaded config.
func applySourceFlags(source, refDir string) {
	if source != "" {
		cfg.Source.Path = source
	}
	if refDir != "" {
		cfg.Demographics.Dir = refDir
	}
}

// specFromFlags normalizes CLI filter flags into a FilterSpec. The end date
// is inclusive: it extends to the last instant of that day.
func specFromFlags(start, end string, categories, shifts []string) (model.FilterSpec, error) {
	var spec model.FilterSpec

	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return spec, eris.Wrapf(err, "parse --start %q", start)
		}
		spec.Start = &t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return spec, eris.Wrapf(err, "parse --end %q", end)
		}
		t = t.AddDate(0, 0, 1).Add(-time.Second)
		spec.End = &t
	}

	spec.Categories = categories
	for _, s := range shifts {
		spec.Shifts = append(spec.Shifts, model.ParseShift(strings.ToUpper(s)))
	}

	return spec, nil
}

func writeJSON(path string, v any) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "create %s", path)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
