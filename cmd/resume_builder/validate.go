package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/schemas"
)

var validateSchema bool

var validateCmd = &cobra.Command{
	Use:   "validate <json-file>",
	Short: "Validate a resume record against the resume schema",
	Long: `Validate a resume record against the resume schema.

With --schema the schema itself is printed and no file is needed.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if validateSchema {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateSchema, "schema", false, "Print the resume schema instead of validating")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateSchema {
		return writeJSON(cmd.OutOrStdout(), "", json.RawMessage(schemas.ResumeSchema()))
	}

	err := schemas.ValidateResumeFile(args[0])

	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
		return err
	case errors.As(err, &validationErr):
		fmt.Fprint(cmd.OutOrStdout(), validationErr.Error()) //nolint:errcheck
		return fmt.Errorf("validation failed")
	default:
		return err
	}
}
