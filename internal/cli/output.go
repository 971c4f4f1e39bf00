package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// parseArg parses a positional float argument, naming it in the error.
func parseArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// row prints "label = value" with the configured precision.
func row(w io.Writer, prec int, label string, v float64) {
	fmt.Fprintf(w, "%-8s= %.*f\n", label, prec, v)
}
