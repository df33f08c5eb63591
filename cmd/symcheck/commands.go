package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skufu/vitalsense/internal/insights"
	"github.com/Skufu/vitalsense/internal/knowledge"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

func newRootCmd() *cobra.Command {
	var kbPath string

	root := &cobra.Command{
		Use:           "symcheck",
		Short:         "Offline symptom analysis and history insights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&kbPath, "kb", "", "YAML knowledge base (defaults to the bundled table)")

	root.AddCommand(newAnalyzeCmd(&kbPath), newInsightsCmd())
	return root
}

func newAnalyzeCmd(kbPath *string) *cobra.Command {
	var list []string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank candidate conditions for a set of symptoms",
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := knowledge.LoadFile(*kbPath)
			if err != nil {
				return err
			}

			vitals := vitalsFromFlags(cmd)

			selected := append(list, args...)
			res := symptoms.NewEngine(kb).Analyze(selected, vitals)
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringSliceVarP(&list, "symptoms", "s", nil, "comma separated symptom identifiers")
	for _, f := range vitalFlags {
		cmd.Flags().Float64(f.name, 0, f.usage)
	}
	return cmd
}

var vitalFlags = []struct {
	name  string
	usage string
	field func(v *symptoms.VitalSigns) **float64
}{
	{"systolic", "systolic blood pressure (mmHg)", func(v *symptoms.VitalSigns) **float64 { return &v.Systolic }},
	{"diastolic", "diastolic blood pressure (mmHg)", func(v *symptoms.VitalSigns) **float64 { return &v.Diastolic }},
	{"heart-rate", "heart rate (bpm)", func(v *symptoms.VitalSigns) **float64 { return &v.HeartRate }},
	{"temperature", "body temperature (°F)", func(v *symptoms.VitalSigns) **float64 { return &v.Temperature }},
	{"blood-glucose", "blood glucose (mg/dL)", func(v *symptoms.VitalSigns) **float64 { return &v.BloodGlucose }},
	{"weight", "body weight", func(v *symptoms.VitalSigns) **float64 { return &v.Weight }},
}

// vitalsFromFlags copies the vital flags that were set. Unset flags were
// not measured.
func vitalsFromFlags(cmd *cobra.Command) *symptoms.VitalSigns {
	vitals := &symptoms.VitalSigns{}
	for _, f := range vitalFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(f.name)
		if err != nil {
			continue
		}
		*f.field(vitals) = &v
	}
	return vitals
}

func newInsightsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyse a JSON history (newest record first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open history: %w", err)
				}
				defer f.Close()
				r = f
			}

			var history []insights.Record
			if err := json.NewDecoder(r).Decode(&history); err != nil {
				return fmt.Errorf("decode history: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), insights.NewAnalyzer().Analyze(history))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "history JSON file, - for stdin")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
