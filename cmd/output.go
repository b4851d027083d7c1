package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// rule prints a horizontal line of width n.
func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("─", n))
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
