package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/ats"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/observability"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/resume"
)

var inspectJSON bool

// Inspection is the combined output of the inspect command
type Inspection struct {
	ATS    ats.Report    `json:"ats"`
	Resume resume.Record `json:"resume"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Score a resume and extract its fields in one pass",
	Long:  "Extract the text of a resume once, then run ATS scoring and field extraction concurrently.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print both results as one JSON document")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	text, err := a.extractText(args[0])
	if err != nil {
		return err
	}

	var result Inspection
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		result.ATS = a.scorer.Analyze(ctx, text)
		return nil
	})
	g.Go(func() error {
		result.Resume = a.parser.Parse(ctx, text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if inspectJSON {
		return writeJSON(cmd.OutOrStdout(), "", result)
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintATSReport(&result.ATS)
	printer.PrintResumeRecord(result.Resume)
	return nil
}
