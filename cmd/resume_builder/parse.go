package main

import (
	"github.com/spf13/cobra"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/observability"
)

var (
	parseJSON    bool
	parseOutFile string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract structured resume fields",
	Long:  "Extract the text of a resume and parse it into structured fields. Empty fields are dropped; without GROQ_API_KEY the result is empty.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the record as JSON")
	parseCmd.Flags().StringVarP(&parseOutFile, "out", "o", "", "Write the JSON record to this file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	text, err := a.extractText(args[0])
	if err != nil {
		return err
	}

	record := a.parser.Parse(cmd.Context(), text)

	if parseJSON || parseOutFile != "" {
		return writeJSON(cmd.OutOrStdout(), parseOutFile, record)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintResumeRecord(record)
	return nil
}
