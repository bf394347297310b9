package main

import (
	"github.com/spf13/cobra"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/observability"
)

var (
	scoreJSON    bool
	scoreOutFile string
)

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a resume for ATS compatibility",
	Long:  "Extract the text of a resume and score it for ATS compatibility. Without GEMINI_API_KEY the fallback report is printed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the report as JSON")
	scoreCmd.Flags().StringVarP(&scoreOutFile, "out", "o", "", "Write the JSON report to this file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	text, err := a.extractText(args[0])
	if err != nil {
		return err
	}

	report := a.scorer.Analyze(cmd.Context(), text)

	if scoreJSON || scoreOutFile != "" {
		return writeJSON(cmd.OutOrStdout(), scoreOutFile, report)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintATSReport(&report)
	return nil
}
