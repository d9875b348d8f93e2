// Package notify implements the email reminder engine: placeholder template
// rendering, the mail collaborator boundary, and the automatic/manual
// dispatch passes over overdue invoices.
package notify

import "strings"

// Render substitutes every literal occurrence of each [token] key in the
// template. This is plain string substitution, not a template language:
// tokens missing from the map stay in the output verbatim, and substitution
// values are never re-scanned for tokens.
func Render(template string, replacements map[string]string) string {
	out := template
	for token, value := range replacements {
		out = strings.ReplaceAll(out, "["+token+"]", value)
	}
	return out
}
