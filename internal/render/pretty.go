// Package render turns command results into terminal output: indented JSON
// for raw records, a templated report for device health, and a styled
// numbered chooser for profiles.
package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// Pretty writes v as 2-space indented JSON followed by a newline. Field
// values pass through verbatim; nothing is escaped or redacted beyond what
// JSON encoding requires.
func Pretty(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
