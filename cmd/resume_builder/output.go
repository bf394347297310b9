package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"
)

// writeJSON writes v as indented JSON to out, or to path when it is set
func writeJSON(out io.Writer, path string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	formatted := pretty.Pretty(raw)

	if path != "" {
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = out.Write(formatted)
	return err
}
